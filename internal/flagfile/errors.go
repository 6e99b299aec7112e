// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flagfile

import "github.com/samber/oops"

// CodeInvalid marks a flag file that cannot be decoded or fails validation.
const CodeInvalid = "FLAGFILE_INVALID"

// ErrInvalid creates a CodeInvalid error. kv are alternating context keys and values.
func ErrInvalid(msg string, kv ...any) error {
	b := oops.Code(CodeInvalid)
	for i := 0; i+1 < len(kv); i += 2 {
		b = b.With(kv[i], kv[i+1])
	}
	return b.Errorf("%s", msg)
}
