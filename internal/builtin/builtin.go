// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package builtin defines the flag types shipped with holoflags.
package builtin

import (
	"github.com/holomush/holoflags/pkg/flag"
	"github.com/holomush/holoflags/pkg/flag/types"
)

// Defaults returns the default instance of every built-in flag type.
func Defaults() []flag.Flag {
	return []flag.Flag{
		NewPvpFlag(false),
		NewMaxPlayersFlag(0),
		NewWeatherFlag(WeatherClear),
		NewBlockedCommandsFlag(),
		NewGreetingFlag(""),
	}
}

// Register adds every built-in flag type to reg.
func Register(reg *flag.Registry) error {
	for _, f := range Defaults() {
		if err := reg.Register(f); err != nil {
			return err
		}
	}
	return nil
}

// PvpFlag controls whether players may damage each other.
type PvpFlag struct{ types.Bool }

var _ flag.Type[bool, PvpFlag] = PvpFlag{}

// NewPvpFlag creates a PvpFlag.
func NewPvpFlag(v bool) PvpFlag { return PvpFlag{types.NewBool("pvp", v)} }

// FlagOf returns a PvpFlag holding v.
func (f PvpFlag) FlagOf(v bool) PvpFlag { return PvpFlag{f.With(v)} }

// Merge replaces the value of f with v.
func (f PvpFlag) Merge(v bool) PvpFlag { return f.FlagOf(v) }

// Parse reads raw into a PvpFlag. Errors name PvpFlag as the rejecting flag.
func (f PvpFlag) Parse(raw string) (PvpFlag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return PvpFlag{}, flag.RejectedBy(f, err)
	}
	return f.FlagOf(v), nil
}

// ParseFlag is Parse returning a flag.Flag.
func (f PvpFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

// maxPlayersLimit bounds MaxPlayersFlag. Zero means unlimited.
const maxPlayersLimit = 1000

// MaxPlayersFlag caps the number of players inside an area.
type MaxPlayersFlag struct{ types.Int }

var _ flag.Type[int, MaxPlayersFlag] = MaxPlayersFlag{}

// NewMaxPlayersFlag creates a MaxPlayersFlag.
func NewMaxPlayersFlag(v int) MaxPlayersFlag {
	return MaxPlayersFlag{types.NewInt("max-players", v, 0, maxPlayersLimit)}
}

// FlagOf returns a MaxPlayersFlag holding v.
func (f MaxPlayersFlag) FlagOf(v int) MaxPlayersFlag { return MaxPlayersFlag{f.With(v)} }

// Merge replaces the value of f with v.
func (f MaxPlayersFlag) Merge(v int) MaxPlayersFlag { return f.FlagOf(v) }

// Parse reads raw into a MaxPlayersFlag. Errors name MaxPlayersFlag as the rejecting flag.
func (f MaxPlayersFlag) Parse(raw string) (MaxPlayersFlag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return MaxPlayersFlag{}, flag.RejectedBy(f, err)
	}
	return f.FlagOf(v), nil
}

// ParseFlag is Parse returning a flag.Flag.
func (f MaxPlayersFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

// Weather is the forced weather of an area.
type Weather string

// Weather values.
const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherStorm Weather = "storm"
	WeatherSnow  Weather = "snow"
)

// WeatherFlag forces the weather of an area.
type WeatherFlag struct{ types.Enum[Weather] }

var _ flag.Type[Weather, WeatherFlag] = WeatherFlag{}

// NewWeatherFlag creates a WeatherFlag.
func NewWeatherFlag(v Weather) WeatherFlag {
	return WeatherFlag{types.NewEnum("weather", v, WeatherClear, WeatherRain, WeatherStorm, WeatherSnow)}
}

// FlagOf returns a WeatherFlag holding v.
func (f WeatherFlag) FlagOf(v Weather) WeatherFlag { return WeatherFlag{f.With(v)} }

// Merge replaces the value of f with v.
func (f WeatherFlag) Merge(v Weather) WeatherFlag { return f.FlagOf(v) }

// Parse reads raw into a WeatherFlag. Errors name WeatherFlag as the rejecting flag.
func (f WeatherFlag) Parse(raw string) (WeatherFlag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return WeatherFlag{}, flag.RejectedBy(f, err)
	}
	return f.FlagOf(v), nil
}

// ParseFlag is Parse returning a flag.Flag.
func (f WeatherFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

// BlockedCommandsFlag lists commands that cannot be used inside an area.
// Merging appends.
type BlockedCommandsFlag struct{ types.List[string] }

var _ flag.Type[[]string, BlockedCommandsFlag] = BlockedCommandsFlag{}

// NewBlockedCommandsFlag creates a BlockedCommandsFlag.
func NewBlockedCommandsFlag(commands ...string) BlockedCommandsFlag {
	return BlockedCommandsFlag{types.NewStringList("blocked-commands", commands...)}
}

// FlagOf returns a BlockedCommandsFlag holding v.
func (f BlockedCommandsFlag) FlagOf(v []string) BlockedCommandsFlag {
	return BlockedCommandsFlag{f.With(v)}
}

// Merge appends v to the value of f.
func (f BlockedCommandsFlag) Merge(v []string) BlockedCommandsFlag {
	return f.FlagOf(f.MergeValues(v))
}

// Parse reads raw into a BlockedCommandsFlag. Errors name BlockedCommandsFlag as the rejecting flag.
func (f BlockedCommandsFlag) Parse(raw string) (BlockedCommandsFlag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return BlockedCommandsFlag{}, flag.RejectedBy(f, err)
	}
	return f.FlagOf(v), nil
}

// ParseFlag is Parse returning a flag.Flag.
func (f BlockedCommandsFlag) ParseFlag(raw string) (flag.Flag, error) {
	return flag.Erase(f.Parse(raw))
}

// Example returns a sample command list.
func (f BlockedCommandsFlag) Example() string { return "home,spawn" }

// GreetingFlag is shown to players entering an area. Merging appends text.
type GreetingFlag struct{ types.Text }

var _ flag.Type[string, GreetingFlag] = GreetingFlag{}

// NewGreetingFlag creates a GreetingFlag.
func NewGreetingFlag(v string) GreetingFlag { return GreetingFlag{types.NewText("greeting", v)} }

// FlagOf returns a GreetingFlag holding v.
func (f GreetingFlag) FlagOf(v string) GreetingFlag { return GreetingFlag{f.With(v)} }

// Merge appends v to the value of f.
func (f GreetingFlag) Merge(v string) GreetingFlag { return f.FlagOf(f.MergeValues(v)) }

// Parse reads raw into a GreetingFlag. Errors name GreetingFlag as the rejecting flag.
func (f GreetingFlag) Parse(raw string) (GreetingFlag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return GreetingFlag{}, flag.RejectedBy(f, err)
	}
	return f.FlagOf(v), nil
}

// ParseFlag is Parse returning a flag.Flag.
func (f GreetingFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

// Example returns a sample greeting.
func (f GreetingFlag) Example() string { return "Welcome!" }
