package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command failures so hosts can route them
// without matching on message strings.
const (
	codeValidationFailed = "CMSNAV_COMMAND_VALIDATION_FAILED"
	codeCanceled         = "CMSNAV_COMMAND_CANCELED"
	codeDeadlineExceeded = "CMSNAV_COMMAND_DEADLINE_EXCEEDED"
	codeContextFailed    = "CMSNAV_COMMAND_CONTEXT_FAILED"
	codeExecutionFailed  = "CMSNAV_COMMAND_EXECUTION_FAILED"
)

// alreadyTagged reports whether an upstream layer wrapped err. Tagging is
// applied once, at the outermost command boundary.
func alreadyTagged(err error) bool {
	return goerrors.IsWrapped(err)
}

func tagValidation(err error) error {
	if err == nil || alreadyTagged(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(codeValidationFailed)
}

func tagContext(err error) error {
	if err == nil || alreadyTagged(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command canceled before completion").
			WithTextCode(codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command exceeded its deadline").
			WithTextCode(codeDeadlineExceeded)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context failed").
			WithTextCode(codeContextFailed)
	}
}

func tagExecution(err error) error {
	if err == nil || alreadyTagged(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command handler failed").
		WithTextCode(codeExecutionFailed)
}
