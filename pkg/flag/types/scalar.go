// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holomush/holoflags/pkg/flag"
)

// Bool holds a boolean. Merging replaces.
type Bool struct {
	flag.Base[bool]
}

// NewBool creates a Bool named name holding value.
func NewBool(name string, value bool) Bool {
	return Bool{Base: flag.NewBase(name, value)}
}

// With returns a copy holding v.
func (b Bool) With(v bool) Bool {
	return NewBool(b.Name(), v)
}

// ParseValue accepts true/false, yes/no, on/off and 1/0, ignoring case.
func (b Bool) ParseValue(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, flag.NewParseError(b, raw, "value has to be one of: true, false")
	}
}

// ParseFlag parses raw into a Bool.
func (b Bool) ParseFlag(raw string) (flag.Flag, error) {
	v, err := b.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return b.With(v), nil
}

func (b Bool) String() string {
	return strconv.FormatBool(b.Value())
}

// Example returns "true".
func (b Bool) Example() string {
	return "true"
}

// ValueSuggestions returns true and false.
func (b Bool) ValueSuggestions() []string {
	return []string{"true", "false"}
}

// Int holds an integer within inclusive bounds. Merging replaces.
type Int struct {
	flag.Base[int]
	minimum int
	maximum int
}

// NewInt creates an Int named name holding value, accepting minimum..maximum.
func NewInt(name string, value, minimum, maximum int) Int {
	return Int{Base: flag.NewBase(name, value), minimum: minimum, maximum: maximum}
}

// With returns a copy holding v with the same bounds.
func (i Int) With(v int) Int {
	return NewInt(i.Name(), v, i.minimum, i.maximum)
}

// Bounds returns the inclusive bounds.
func (i Int) Bounds() (minimum, maximum int) {
	return i.minimum, i.maximum
}

// ParseValue parses a base 10 integer and checks the bounds.
func (i Int) ParseValue(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, flag.NewParseError(i, raw, "value has to be a whole number")
	}
	if v < i.minimum || v > i.maximum {
		return 0, flag.NewParseError(i, raw, fmt.Sprintf("value has to be between %d and %d", i.minimum, i.maximum))
	}
	return v, nil
}

// ParseFlag parses raw into an Int with the same bounds.
func (i Int) ParseFlag(raw string) (flag.Flag, error) {
	v, err := i.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return i.With(v), nil
}

func (i Int) String() string {
	return strconv.Itoa(i.Value())
}

// Example returns the lower bound.
func (i Int) Example() string {
	return strconv.Itoa(i.minimum)
}

// Text holds free-form text. Merging appends the new text.
type Text struct {
	flag.Base[string]
}

// NewText creates a Text named name holding value.
func NewText(name, value string) Text {
	return Text{Base: flag.NewBase(name, value)}
}

// With returns a copy holding v.
func (t Text) With(v string) Text {
	return NewText(t.Name(), v)
}

// ParseValue accepts any input unchanged.
func (t Text) ParseValue(raw string) (string, error) {
	return raw, nil
}

// MergeValues returns the receiver's text followed by more.
func (t Text) MergeValues(more string) string {
	return t.Value() + more
}

func (t Text) String() string {
	return t.Value()
}

// Example returns an empty string.
func (t Text) Example() string {
	return ""
}
