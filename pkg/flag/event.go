// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag

// UpdateType identifies a change to a container's local values.
type UpdateType int

const (
	// Added indicates a flag type gained a local value.
	Added UpdateType = iota
	// Removed indicates a local value was removed.
	Removed
	// Updated indicates a local value was replaced by a new instance.
	Updated
)

// String returns the update type name.
func (u UpdateType) String() string {
	switch u {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// Handler reacts to a flag being added, removed or updated in a container.
// Handlers run synchronously on the mutating goroutine, after the container
// lock has been released.
type Handler func(f Flag, t UpdateType)

// Subscription represents a handler registered with Container.Subscribe.
type Subscription struct {
	id        uint64
	container *Container
}

// Unsubscribe removes the handler. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.container == nil {
		return
	}
	s.container.unsubscribe(s.id)
}

type subscriber struct {
	id      uint64
	handler Handler
}

// ResolveOutcome is the result of retrying an unknown value after its type was registered.
type ResolveOutcome string

// Resolution outcomes.
const (
	ResolveInstalled ResolveOutcome = "installed"
	ResolveFailed    ResolveOutcome = "failed"
)

// Scope tells registry defaults apart from values stored in owner containers.
type Scope string

// Update scopes.
const (
	ScopeRoot      Scope = "root"
	ScopeContainer Scope = "container"
)

// Recorder receives container events for metrics.
type Recorder interface {
	RecordUpdate(name string, scope Scope, t UpdateType)
	RecordHandlerPanic(name string)
	RecordResolution(name string, outcome ResolveOutcome)
}

type nopRecorder struct{}

func (nopRecorder) RecordUpdate(string, Scope, UpdateType) {}

func (nopRecorder) RecordHandlerPanic(string) {}

func (nopRecorder) RecordResolution(string, ResolveOutcome) {}

// ResolveFailureHandler is told about a pending value that failed to parse once
// its flag type was registered. The value is dropped after this call.
type ResolveFailureHandler func(c *Container, name, raw string, err error)
