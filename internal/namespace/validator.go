package namespace

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Default is the backstop tenant identifier used when no request signal
// resolves to a namespace.
const Default = "default"

// MaxLength bounds namespace identifiers, measured in Unicode codepoints.
const MaxLength = 100

var namespacePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	ErrEmpty   = errors.New("namespace: identifier is required")
	ErrLength  = errors.New("namespace: identifier exceeds maximum length")
	ErrPattern = errors.New("namespace: identifier must match [a-z0-9][a-z0-9-]*")
)

// ValidationError reports why a namespace identifier was rejected by a write
// path. Read paths never see it; they filter silently via NormalizeCandidate.
type ValidationError struct {
	Kind  string
	Value string
}

const (
	KindEmpty  = "empty"
	KindLength = "length"
	KindFormat = "format"
)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("namespace: invalid identifier %q (%s)", e.Value, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindEmpty:
		return ErrEmpty
	case KindLength:
		return ErrLength
	default:
		return ErrPattern
	}
}

// Normalize trims and lowercases a raw namespace string. It never rejects.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeCandidate converts an arbitrary request hint into a usable
// namespace. Non-string values, empty strings, overlong identifiers, and
// pattern violations all report ok == false; callers treat that as "no
// signal" rather than an error.
func NormalizeCandidate(value any) (string, bool) {
	raw, ok := value.(string)
	if !ok {
		return "", false
	}

	candidate := Normalize(raw)
	if candidate == "" {
		return "", false
	}
	if utf8.RuneCountInString(candidate) > MaxLength {
		return "", false
	}
	if !namespacePattern.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

// AssertValid rejects malformed namespace identifiers loudly. It backs the
// admin write paths, which must fail instead of degrading the way the
// resolution read paths do.
func AssertValid(ns string) error {
	candidate := Normalize(ns)
	if candidate == "" {
		return &ValidationError{Kind: KindEmpty, Value: ns}
	}
	if utf8.RuneCountInString(candidate) > MaxLength {
		return &ValidationError{Kind: KindLength, Value: ns}
	}
	if !namespacePattern.MatchString(candidate) {
		return &ValidationError{Kind: KindFormat, Value: ns}
	}
	return nil
}
