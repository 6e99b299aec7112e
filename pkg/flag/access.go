// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag

// Get returns the effective flag of type F for c, walking up to the root.
// The stored instance is checked against F before it is returned.
func Get[F Flag](c *Container) (F, error) {
	var zero F
	kind := KindFor[F]()
	f, err := c.Flag(kind)
	if err != nil {
		return zero, err
	}
	typed, ok := f.(F)
	if !ok {
		return zero, ErrTypeMismatch(kind, f)
	}
	return typed, nil
}

// MustGet is like Get but panics when F was never registered.
// Use it where registration is guaranteed at startup.
func MustGet[F Flag](c *Container) F {
	f, err := Get[F](c)
	if err != nil {
		panic(err)
	}
	return f
}

// QueryLocal returns the flag of type F stored directly in c, if any.
func QueryLocal[F Flag](c *Container) (F, bool) {
	var zero F
	f, ok := c.Local(KindFor[F]())
	if !ok {
		return zero, false
	}
	typed, ok := f.(F)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Value returns the effective value of the flag type F for c.
func Value[T any, F Type[T, F]](c *Container) (T, error) {
	f, err := Get[F](c)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.Value(), nil
}
