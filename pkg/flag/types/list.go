// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package types

import (
	"slices"
	"strconv"
	"strings"

	"github.com/holomush/holoflags/pkg/flag"
)

// ListSeparator separates elements in the text form of a list flag.
const ListSeparator = ","

// List holds an ordered list of values. Merging appends:
// a.Merge(b).Merge(c) equals a.Merge(append(b, c...)).
type List[V any] struct {
	flag.Base[[]V]
	parseElem  func(string) (V, error)
	formatElem func(V) string
}

// NewList creates a List named name holding values. parse and format convert
// single elements to and from text.
func NewList[V any](name string, values []V, parse func(string) (V, error), format func(V) string) List[V] {
	return List[V]{
		Base:       flag.NewBase(name, cloneList(values)),
		parseElem:  parse,
		formatElem: format,
	}
}

// NewStringList creates a List of strings.
func NewStringList(name string, values ...string) List[string] {
	return NewList(name, values,
		func(s string) (string, error) { return s, nil },
		func(s string) string { return s },
	)
}

// With returns a copy holding values.
func (l List[V]) With(values []V) List[V] {
	return List[V]{
		Base:       flag.NewBase(l.Name(), cloneList(values)),
		parseElem:  l.parseElem,
		formatElem: l.formatElem,
	}
}

// Value returns a copy of the list so callers cannot modify the flag.
func (l List[V]) Value() []V {
	return cloneList(l.Base.Value())
}

// MergeValues returns the receiver's values followed by more.
func (l List[V]) MergeValues(more []V) []V {
	merged := make([]V, 0, len(l.Base.Value())+len(more))
	merged = append(merged, l.Base.Value()...)
	return append(merged, more...)
}

// ParseValue splits raw on ListSeparator and parses each trimmed element.
// Elements may be double-quoted Go string literals, which is how String writes
// elements that contain the separator or a quote, have surrounding whitespace or
// are empty. Empty unquoted elements yield no values.
func (l List[V]) ParseValue(raw string) ([]V, error) {
	parts, ok := splitList(raw)
	if !ok {
		return nil, flag.NewParseError(l, raw, "unterminated quoted element")
	}

	values := []V{}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, `"`) {
			unquoted, err := strconv.Unquote(part)
			if err != nil {
				return nil, flag.NewParseError(l, raw, "invalid quoted element "+part)
			}
			part = unquoted
		}
		v, err := l.parseElem(part)
		if err != nil {
			return nil, flag.NewParseError(l, raw, "invalid element '"+part+"': "+err.Error())
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseFlag parses raw into a List with the same element codec.
func (l List[V]) ParseFlag(raw string) (flag.Flag, error) {
	values, err := l.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return l.With(values), nil
}

func (l List[V]) String() string {
	parts := make([]string, 0, len(l.Base.Value()))
	for _, v := range l.Base.Value() {
		elem := l.formatElem(v)
		if needsQuote(elem) {
			elem = strconv.Quote(elem)
		}
		parts = append(parts, elem)
	}
	return strings.Join(parts, ListSeparator)
}

// Example returns the empty list.
func (l List[V]) Example() string {
	return ""
}

// splitList splits raw on separators outside double quotes. A quote only opens
// at the start of an element. It reports false for an unterminated quote.
func splitList(raw string) ([]string, bool) {
	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(raw):
			cur.WriteByte(c)
			i++
			cur.WriteByte(raw[i])
			continue
		case inQuote && c == '"':
			inQuote = false
		case !inQuote && c == '"' && strings.TrimSpace(cur.String()) == "":
			inQuote = true
		case !inQuote && strings.HasPrefix(raw[i:], ListSeparator):
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	if inQuote {
		return nil, false
	}
	return append(parts, cur.String()), true
}

func needsQuote(elem string) bool {
	return elem == "" ||
		strings.Contains(elem, ListSeparator) ||
		strings.HasPrefix(elem, `"`) ||
		strings.TrimSpace(elem) != elem
}

// Equal reports whether other is the same flag type holding the same elements.
// An empty list equals a nil list.
func (l List[V]) Equal(other flag.Flag) bool {
	if other == nil {
		return false
	}
	return l.Name() == other.Name() && l.String() == other.String()
}

func cloneList[V any](values []V) []V {
	if values == nil {
		return []V{}
	}
	return slices.Clone(values)
}
