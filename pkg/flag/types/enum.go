// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package types

import (
	"slices"
	"strings"

	"github.com/holomush/holoflags/pkg/flag"
)

// Enum holds one value out of a fixed set. Parsing ignores case; merging replaces.
type Enum[E ~string] struct {
	flag.Base[E]
	allowed []E
}

// NewEnum creates an Enum named name holding value. At least one value must be
// allowed; first is also the example.
func NewEnum[E ~string](name string, value E, first E, more ...E) Enum[E] {
	allowed := make([]E, 0, 1+len(more))
	allowed = append(allowed, first)
	return Enum[E]{Base: flag.NewBase(name, value), allowed: append(allowed, more...)}
}

// With returns a copy holding v with the same allowed set.
func (e Enum[E]) With(v E) Enum[E] {
	return Enum[E]{Base: flag.NewBase(e.Name(), v), allowed: e.allowed}
}

// ParseValue returns the allowed value matching raw, ignoring case.
func (e Enum[E]) ParseValue(raw string) (E, error) {
	for _, v := range e.allowed {
		if strings.EqualFold(strings.TrimSpace(raw), string(v)) {
			return v, nil
		}
	}
	var zero E
	return zero, flag.NewParseError(e, raw, "value has to be one of: "+strings.Join(e.ValueSuggestions(), ", "))
}

// ParseFlag parses raw into an Enum with the same allowed set.
func (e Enum[E]) ParseFlag(raw string) (flag.Flag, error) {
	v, err := e.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return e.With(v), nil
}

// Allowed returns the accepted values.
func (e Enum[E]) Allowed() []E {
	return slices.Clone(e.allowed)
}

func (e Enum[E]) String() string {
	return string(e.Value())
}

// Example returns the first allowed value.
func (e Enum[E]) Example() string {
	return string(e.allowed[0])
}

// ValueSuggestions returns every allowed value.
func (e Enum[E]) ValueSuggestions() []string {
	out := make([]string, len(e.allowed))
	for i, v := range e.allowed {
		out[i] = string(v)
	}
	return out
}
