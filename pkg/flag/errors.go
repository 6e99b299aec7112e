// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Error codes for registry and container failures.
const (
	CodeUnregistered    = "FLAG_UNREGISTERED"
	CodeTypeMismatch    = "FLAG_TYPE_MISMATCH"
	CodeInvalidName     = "FLAG_INVALID_NAME"
	CodeDuplicateName   = "FLAG_DUPLICATE_NAME"
	CodeNameChanged     = "FLAG_NAME_CHANGED"
	CodeNilFlag         = "FLAG_NIL"
	CodeContainerClosed = "CONTAINER_CLOSED"
	CodeForeignParent   = "CONTAINER_FOREIGN_PARENT"
	CodeParentCycle     = "CONTAINER_PARENT_CYCLE"
	CodeRootImmutable   = "ROOT_IMMUTABLE"
	CodeHandlerPanic    = "FLAG_HANDLER_PANIC"
)

// ParseError reports a raw string that is not a legal value for a flag type.
// The caller should reject the input and keep its prior state.
type ParseError struct {
	// Flag is the instance whose type rejected the value.
	Flag Flag
	// Name is the name of the flag type that rejected the value.
	Name string
	// Value is the raw string that was rejected.
	Value string
	// Reason explains why the value was rejected.
	Reason string
}

// NewParseError creates a ParseError for the flag f.
func NewParseError(f Flag, value, reason string) *ParseError {
	return &ParseError{Flag: f, Name: f.Name(), Value: value, Reason: reason}
}

// RejectedBy attributes the ParseError in err, if any, to f. Concrete flag types
// use it when the value was rejected by an embedded value family.
func RejectedBy(f Flag, err error) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	return &ParseError{Flag: f, Name: f.Name(), Value: pe.Value, Reason: pe.Reason}
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("failed to parse flag of type '%s': value '%s' was not accepted", e.Name, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ErrUnregistered creates an error for a kind with no instance anywhere in a container chain.
// This is a programming error: flag types must be registered before first use.
func ErrUnregistered(kind Kind) error {
	return oops.Code(CodeUnregistered).
		With("kind", kindName(kind)).
		Errorf("unrecognized flag %s: all flag types must be registered in the root container", kindName(kind))
}

// ErrTypeMismatch creates an error for a stored flag whose type is not the requested one.
func ErrTypeMismatch(want Kind, got Flag) error {
	return oops.Code(CodeTypeMismatch).
		With("want", kindName(want)).
		With("got", kindName(KindOf(got))).
		Errorf("flag %s is %s, not %s", got.Name(), kindName(KindOf(got)), kindName(want))
}

// ErrInvalidName creates an error for a flag name that is not lower-case kebab-case.
func ErrInvalidName(name string) error {
	return oops.Code(CodeInvalidName).
		With("flag", name).
		Errorf("flag name %q must start with a-z, contain only a-z, 0-9, hyphens, and not end with a hyphen", name)
}

// ErrDuplicateName creates an error for a name already bound to another flag type.
func ErrDuplicateName(name string, existing, rejected Kind) error {
	return oops.Code(CodeDuplicateName).
		With("flag", name).
		With("existing", kindName(existing)).
		With("rejected", kindName(rejected)).
		Errorf("flag name %q already registered by %s", name, kindName(existing))
}

// ErrNameChanged creates an error for a registered kind offered again under another name.
func ErrNameChanged(kind Kind, registered, offered string) error {
	return oops.Code(CodeNameChanged).
		With("kind", kindName(kind)).
		With("flag", registered).
		With("offered", offered).
		Errorf("flag type %s is registered as %q and cannot be renamed to %q", kindName(kind), registered, offered)
}

// ErrNilFlag creates an error for a nil flag argument.
func ErrNilFlag() error {
	return oops.Code(CodeNilFlag).Errorf("flag cannot be nil")
}

func errContainerClosed(c *Container) error {
	return oops.Code(CodeContainerClosed).
		With("container", c.id.String()).
		Errorf("container %s is closed", c.id)
}

func errForeignParent(c *Container) error {
	return oops.Code(CodeForeignParent).
		With("container", c.id.String()).
		Errorf("parent container %s belongs to another registry", c.id)
}

func errParentCycle(c *Container) error {
	return oops.Code(CodeParentCycle).
		With("container", c.id.String()).
		Errorf("container %s would become its own ancestor", c.id)
}

func errRootImmutable(operation string) error {
	return oops.Code(CodeRootImmutable).
		With("operation", operation).
		Errorf("root container refuses %s: registered defaults must stay present", operation)
}

func errHandlerPanic(c *Container, f Flag, t UpdateType, recovered any) error {
	return oops.Code(CodeHandlerPanic).
		With("container", c.id.String()).
		With("flag", f.Name()).
		With("update", t.String()).
		Errorf("update handler panicked: %v", recovered)
}

func kindName(kind Kind) string {
	if kind == nil {
		return "<nil>"
	}
	return kind.String()
}
