// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag_test

import (
	"strconv"

	"github.com/holomush/holoflags/pkg/flag"
)

// TestFlag holds text; merging appends.
type TestFlag struct{ flag.Base[string] }

var _ flag.Type[string, TestFlag] = TestFlag{}

func NewTestFlag(v string) TestFlag { return TestFlag{flag.NewBase("test", v)} }

func (f TestFlag) Parse(raw string) (TestFlag, error)      { return f.FlagOf(raw), nil }
func (f TestFlag) Merge(v string) TestFlag                 { return f.FlagOf(f.Value() + v) }
func (f TestFlag) FlagOf(v string) TestFlag                { return NewTestFlag(v) }
func (f TestFlag) String() string                          { return f.Value() }
func (f TestFlag) Example() string                         { return "" }
func (f TestFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

// CountFlag holds a non-negative integer.
type CountFlag struct{ flag.Base[int] }

var _ flag.Type[int, CountFlag] = CountFlag{}

func NewCountFlag(v int) CountFlag { return CountFlag{flag.NewBase("count", v)} }

func (f CountFlag) Parse(raw string) (CountFlag, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return CountFlag{}, flag.NewParseError(f, raw, "value has to be a non-negative whole number")
	}
	return f.FlagOf(v), nil
}
func (f CountFlag) Merge(v int) CountFlag                   { return f.FlagOf(v) }
func (f CountFlag) FlagOf(v int) CountFlag                  { return NewCountFlag(v) }
func (f CountFlag) String() string                          { return strconv.Itoa(f.Value()) }
func (f CountFlag) Example() string                         { return "3" }
func (f CountFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

// PlotTypeFlag and PlotType derive the same name and must collide.
type PlotTypeFlag struct{ flag.Base[string] }

func NewPlotTypeFlag(v string) PlotTypeFlag {
	return PlotTypeFlag{flag.NewBase(flag.DeriveName("PlotTypeFlag"), v)}
}

func (f PlotTypeFlag) String() string                          { return f.Value() }
func (f PlotTypeFlag) Example() string                         { return "road" }
func (f PlotTypeFlag) ParseFlag(raw string) (flag.Flag, error) { return NewPlotTypeFlag(raw), nil }

type PlotType struct{ flag.Base[string] }

func NewPlotType(v string) PlotType {
	return PlotType{flag.NewBase(flag.DeriveName("PlotType"), v)}
}

func (f PlotType) String() string                          { return f.Value() }
func (f PlotType) Example() string                         { return "road" }
func (f PlotType) ParseFlag(raw string) (flag.Flag, error) { return NewPlotType(raw), nil }

// NoteFlag holds an optional note and exercises nil checks.
type NoteFlag struct{ flag.Base[*string] }

var _ flag.Type[*string, NoteFlag] = NoteFlag{}

func (f NoteFlag) Parse(raw string) (NoteFlag, error) { return f.FlagOf(&raw), nil }
func (f NoteFlag) Merge(v *string) NoteFlag           { return f.FlagOf(v) }
func (f NoteFlag) FlagOf(v *string) NoteFlag          { return NoteFlag{flag.NewBase("note", v)} }
func (f NoteFlag) String() string {
	if f.Value() == nil {
		return ""
	}
	return *f.Value()
}
func (f NoteFlag) Example() string                         { return "hello" }
func (f NoteFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

// event is one handler invocation.
type event struct {
	who   string
	value string
	typ   flag.UpdateType
}

// recordTo returns a handler appending to events under the label who.
func recordTo(events *[]event, who string) flag.Handler {
	return func(f flag.Flag, t flag.UpdateType) {
		*events = append(*events, event{who: who, value: f.String(), typ: t})
	}
}
