// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package types_test

import (
	"strconv"

	"github.com/holomush/holoflags/pkg/flag"
	"github.com/holomush/holoflags/pkg/flag/types"
)

type Biome string

type biomeFlag struct{ types.Enum[Biome] }

var _ flag.Type[Biome, biomeFlag] = biomeFlag{}

func newBiomeFlag(v Biome) biomeFlag {
	return biomeFlag{types.NewEnum("biome", v, "plains", "desert", "ocean")}
}

func (f biomeFlag) FlagOf(v Biome) biomeFlag { return biomeFlag{f.With(v)} }
func (f biomeFlag) Merge(v Biome) biomeFlag  { return f.FlagOf(v) }
func (f biomeFlag) Parse(raw string) (biomeFlag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return biomeFlag{}, flag.RejectedBy(f, err)
	}
	return f.FlagOf(v), nil
}
func (f biomeFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

type portsFlag struct{ types.List[int] }

var _ flag.Type[[]int, portsFlag] = portsFlag{}

func newPortsFlag(v ...int) portsFlag {
	return portsFlag{types.NewList("ports", v, strconv.Atoi, strconv.Itoa)}
}

func (f portsFlag) FlagOf(v []int) portsFlag { return portsFlag{f.With(v)} }
func (f portsFlag) Merge(v []int) portsFlag  { return f.FlagOf(f.MergeValues(v)) }
func (f portsFlag) Parse(raw string) (portsFlag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return portsFlag{}, err
	}
	return f.FlagOf(v), nil
}
func (f portsFlag) Example() string                         { return "25565,25566" }
func (f portsFlag) ParseFlag(raw string) (flag.Flag, error) { return flag.Erase(f.Parse(raw)) }

type tagsFlag struct{ types.List[string] }

func newTagsFlag(v ...string) tagsFlag { return tagsFlag{types.NewStringList("tags", v...)} }

func (f tagsFlag) FlagOf(v []string) tagsFlag { return tagsFlag{f.With(v)} }
func (f tagsFlag) Merge(v []string) tagsFlag  { return f.FlagOf(f.MergeValues(v)) }
func (f tagsFlag) Example() string            { return "spawn,market" }
func (f tagsFlag) ParseFlag(raw string) (flag.Flag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return f.FlagOf(v), nil
}

type fireFlag struct{ types.Bool }

func (f fireFlag) ParseFlag(raw string) (flag.Flag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return fireFlag{f.With(v)}, nil
}

type mobCapFlag struct{ types.Int }

func (f mobCapFlag) ParseFlag(raw string) (flag.Flag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return mobCapFlag{f.With(v)}, nil
}

type motdFlag struct{ types.Text }

func (f motdFlag) ParseFlag(raw string) (flag.Flag, error) {
	v, err := f.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return motdFlag{f.With(v)}, nil
}
