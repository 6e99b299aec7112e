// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package types provides the value handling shared by families of concrete
// flag types. A concrete flag embeds one of these and adds the few methods
// that must return its own type:
//
//	type WeatherFlag struct{ types.Enum[Weather] }
//
//	func (f WeatherFlag) FlagOf(v Weather) WeatherFlag { return WeatherFlag{f.With(v)} }
//	func (f WeatherFlag) Merge(v Weather) WeatherFlag  { return f.FlagOf(v) }
//	func (f WeatherFlag) Parse(raw string) (WeatherFlag, error) {
//		v, err := f.ParseValue(raw)
//		if err != nil {
//			return WeatherFlag{}, flag.RejectedBy(f, err)
//		}
//		return f.FlagOf(v), nil
//	}
//	func (f WeatherFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }
package types
