// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength is the maximum allowed length for flag names.
const maxNameLength = 64

// namePattern matches lower-case kebab-case names that do not end with a hyphen.
var namePattern = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

// ValidateName checks that name can be registered as a flag name.
func ValidateName(name string) error {
	if len(name) > maxNameLength || !namePattern.MatchString(name) {
		return ErrInvalidName(name)
	}
	return nil
}

// DeriveName converts a type identifier into a flag name: every "Flag" is
// removed, the first rune is lower-cased and each following upper-case rune
// becomes a hyphen plus its lower-case form.
//
//	DeriveName("BuildFlag")    == "build"
//	DeriveName("PlotTypeFlag") == "plot-type"
func DeriveName(identifier string) string {
	var b strings.Builder
	for i, r := range []rune(strings.ReplaceAll(identifier, "Flag", "")) {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsUpper(r):
			b.WriteRune('-')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
