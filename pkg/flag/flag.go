// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package flag provides typed, named, parseable attributes ("flags") that can be
// attached to any owning object through a Container. Containers inherit values
// from their parent and every chain ends at the root container of a Registry,
// which holds the default instance of each registered flag type.
package flag

import (
	"reflect"

	"github.com/samber/oops"
)

// Flag is the type-erased view of a flag instance.
// Flags are immutable values: parsing or merging always yields a new instance.
type Flag interface {
	// Name returns the unique, lower-case name of the flag type.
	Name() string
	// String returns the canonical text form. Parsing it yields an equal flag.
	String() string
	// Example returns a string that is guaranteed to parse.
	Example() string
	// ValueSuggestions returns completion candidates, possibly none.
	ValueSuggestions() []string
	// ParseFlag parses raw into a new instance of the same concrete type.
	ParseFlag(raw string) (Flag, error)
}

// Type is the typed contract implemented by concrete flag types.
// F is the concrete type itself, so Parse, Merge and FlagOf keep static types.
type Type[T any, F Flag] interface {
	Flag
	Value() T
	Parse(raw string) (F, error)
	// Merge combines the receiver's value with v. The combination law is
	// defined by the flag type; the receiver is left untouched.
	Merge(v T) F
	FlagOf(v T) F
}

// Kind identifies a concrete flag type. Containers hold at most one flag per Kind.
type Kind = reflect.Type

// KindOf returns the Kind of f.
func KindOf(f Flag) Kind {
	return reflect.TypeOf(f)
}

// KindFor returns the Kind of the concrete flag type F.
func KindFor[F Flag]() Kind {
	return reflect.TypeOf((*F)(nil)).Elem()
}

// Base stores the name and value of a flag. Concrete types embed it.
type Base[T any] struct {
	name  string
	value T
}

// NewBase creates a Base holding value under name.
func NewBase[T any](name string, value T) Base[T] {
	return Base[T]{name: name, value: value}
}

// Name returns the flag name.
func (b Base[T]) Name() string {
	return b.name
}

// Value returns the flag value.
func (b Base[T]) Value() T {
	return b.value
}

// ValueSuggestions returns no suggestions.
func (b Base[T]) ValueSuggestions() []string {
	return nil
}

// New creates an instance of proto's type holding v.
// A nil pointer, interface, func or channel value is rejected.
func New[T any, F Type[T, F]](proto F, v T) (F, error) {
	if isNil(v) {
		var zero F
		return zero, oops.Code(CodeNilFlag).
			With("flag", proto.Name()).
			Errorf("flag %s: value may not be nil", proto.Name())
	}
	return proto.FlagOf(v), nil
}

// Erase adapts the result of a typed Parse to ParseFlag.
//
//	func (f PvpFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }
func Erase[F Flag](f F, err error) (Flag, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

type equaler interface {
	Equal(other Flag) bool
}

// Equal reports whether a and b are the same concrete flag type holding equal values.
func Equal(a, b Flag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if KindOf(a) != KindOf(b) {
		return false
	}
	if eq, ok := a.(equaler); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
