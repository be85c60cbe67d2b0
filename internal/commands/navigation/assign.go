package navigationcmd

import (
	"context"

	"github.com/eventfabrik/go-cms-nav/internal/commands"
	"github.com/eventfabrik/go-cms-nav/internal/menus"
	"github.com/eventfabrik/go-cms-nav/pkg/interfaces"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const assignMenuMessageType = "cmsnav.navigation.assign"

// AssignMenuCommand binds a slot within a namespace/locale/page scope to a
// menu.
type AssignMenuCommand struct {
	Namespace string    `json:"namespace"`
	Slot      string    `json:"slot"`
	Locale    string    `json:"locale"`
	MenuID    int64     `json:"menu_id"`
	PageID    *int64    `json:"page_id,omitempty"`
	Actor     uuid.UUID `json:"actor"`
}

// Type implements command.Message.
func (AssignMenuCommand) Type() string { return assignMenuMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m AssignMenuCommand) Validate() error {
	errs := validation.Errors{}
	if err := validation.Validate(m.Namespace, validation.Required); err != nil {
		errs["namespace"] = validation.NewError("cmsnav.navigation.assign.namespace_required", "namespace is required")
	}
	if err := validation.Validate(m.Slot, validation.Required); err != nil {
		errs["slot"] = validation.NewError("cmsnav.navigation.assign.slot_required", "slot is required")
	}
	if err := validation.Validate(m.Locale, validation.Required); err != nil {
		errs["locale"] = validation.NewError("cmsnav.navigation.assign.locale_required", "locale is required")
	}
	if m.MenuID <= 0 {
		errs["menu_id"] = validation.NewError("cmsnav.navigation.assign.menu_id_invalid", "menu_id must be greater than zero")
	}
	if m.PageID != nil && *m.PageID <= 0 {
		errs["page_id"] = validation.NewError("cmsnav.navigation.assign.page_id_invalid", "page_id must be greater than zero")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AssignMenuHandler creates slot assignments via the admin menu service.
type AssignMenuHandler struct {
	inner *commands.Handler[AssignMenuCommand]
}

// NewAssignMenuHandler constructs a handler wired to the provided menu service.
func NewAssignMenuHandler(service menus.Service, logger interfaces.Logger, opts ...commands.HandlerOption[AssignMenuCommand]) *AssignMenuHandler {
	exec := func(ctx context.Context, msg AssignMenuCommand) error {
		_, err := service.AssignMenu(ctx, menus.AssignMenuInput{
			Namespace: msg.Namespace,
			Slot:      msg.Slot,
			Locale:    msg.Locale,
			MenuID:    msg.MenuID,
			PageID:    msg.PageID,
			Actor:     msg.Actor,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[AssignMenuCommand]{
		commands.WithLogger[AssignMenuCommand](logger),
		commands.WithOperation[AssignMenuCommand]("navigation.assign"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AssignMenuHandler{
		inner: commands.NewHandler[AssignMenuCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AssignMenuCommand].Execute.
func (h *AssignMenuHandler) Execute(ctx context.Context, msg AssignMenuCommand) error {
	return h.inner.Execute(ctx, msg)
}

const unassignMenuMessageType = "cmsnav.navigation.unassign"

// UnassignMenuCommand removes a slot assignment by id.
type UnassignMenuCommand struct {
	Namespace    string    `json:"namespace"`
	AssignmentID int64     `json:"assignment_id"`
	Actor        uuid.UUID `json:"actor"`
}

// Type implements command.Message.
func (UnassignMenuCommand) Type() string { return unassignMenuMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UnassignMenuCommand) Validate() error {
	errs := validation.Errors{}
	if err := validation.Validate(m.Namespace, validation.Required); err != nil {
		errs["namespace"] = validation.NewError("cmsnav.navigation.unassign.namespace_required", "namespace is required")
	}
	if m.AssignmentID <= 0 {
		errs["assignment_id"] = validation.NewError("cmsnav.navigation.unassign.assignment_id_invalid", "assignment_id must be greater than zero")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnassignMenuHandler removes slot assignments via the admin menu service.
type UnassignMenuHandler struct {
	inner *commands.Handler[UnassignMenuCommand]
}

// NewUnassignMenuHandler constructs a handler wired to the provided menu service.
func NewUnassignMenuHandler(service menus.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UnassignMenuCommand]) *UnassignMenuHandler {
	exec := func(ctx context.Context, msg UnassignMenuCommand) error {
		return service.UnassignMenu(ctx, menus.UnassignMenuInput{
			Namespace:    msg.Namespace,
			AssignmentID: msg.AssignmentID,
			Actor:        msg.Actor,
		})
	}

	handlerOpts := []commands.HandlerOption[UnassignMenuCommand]{
		commands.WithLogger[UnassignMenuCommand](logger),
		commands.WithOperation[UnassignMenuCommand]("navigation.unassign"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnassignMenuHandler{
		inner: commands.NewHandler[UnassignMenuCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UnassignMenuCommand].Execute.
func (h *UnassignMenuHandler) Execute(ctx context.Context, msg UnassignMenuCommand) error {
	return h.inner.Execute(ctx, msg)
}
