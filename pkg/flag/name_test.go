// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/holomush/holoflags/pkg/flag"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{identifier: "BuildFlag", want: "build"},
		{identifier: "PlotTypeFlag", want: "plot-type"},
		{identifier: "PlotType", want: "plot-type"},
		{identifier: "PvpFlag", want: "pvp"},
		{identifier: "MaxPlayersFlag", want: "max-players"},
		{identifier: "weather", want: "weather"},
		{identifier: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, flag.DeriveName(tt.identifier))
		})
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"a", "pvp", "plot-type", "max-players", "mob-cap-2"}
	for _, name := range valid {
		assert.NoError(t, flag.ValidateName(name), name)
	}

	invalid := []string{"", "-pvp", "pvp-", "Pvp", "plot_type", "2fast", "with space", strings.Repeat("a", 65)}
	for _, name := range invalid {
		assert.Error(t, flag.ValidateName(name), name)
	}
}
