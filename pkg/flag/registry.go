// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// Registry is the authority on flag types. Its root container holds the default
// instance of every registered type and ends every container chain; its index
// maps lower-case names to kinds and only ever grows.
// It is safe for concurrent use by multiple goroutines.
type Registry struct {
	root             *Container
	logger           *slog.Logger
	recorder         Recorder
	onResolveFailure ResolveFailureHandler

	mu    sync.RWMutex
	index map[string]Kind
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for handler panics and dropped values.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder Recorder) Option {
	return func(r *Registry) {
		if recorder != nil {
			r.recorder = recorder
		}
	}
}

// WithResolveFailureHandler sets a callback for pending values that fail to
// parse once their flag type is registered.
func WithResolveFailureHandler(h ResolveFailureHandler) Option {
	return func(r *Registry) {
		r.onResolveFailure = h
	}
}

var (
	sharedOnce     sync.Once
	sharedRegistry *Registry
)

// NewRegistry creates a registry with an empty root container.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:   slog.Default(),
		recorder: nopRecorder{},
		index:    make(map[string]Kind),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.root = newContainer(r, nil, r.indexFlag)
	return r
}

// Shared returns the process-wide registry, creating it on first use.
// Code that can be handed a *Registry should prefer that; Shared exists for
// plugins and package-level registration.
func Shared() *Registry {
	sharedOnce.Do(func() {
		sharedRegistry = NewRegistry()
	})
	return sharedRegistry
}

// Root returns the parentless root container.
func (r *Registry) Root() *Container {
	return r.root
}

// NewContainer creates a container inheriting from parent, or from the root when
// parent is nil. handler, if not nil, runs before subscribers on every change.
// The container subscribes to the root so values recorded with AddUnknown are
// resolved once their type is registered; call Close when the owner goes away.
func (r *Registry) NewContainer(parent *Container, handler Handler) (*Container, error) {
	if parent == nil {
		parent = r.root
	}
	if parent.registry != r {
		return nil, errForeignParent(parent)
	}
	c := newContainer(r, parent, handler)
	c.rootSub = r.root.Subscribe(c.resolveUnknown)
	return c, nil
}

// Register adds f as the default instance of its flag type.
// The name must be valid and not already used by another type. Registering the
// same type again replaces its default.
func (r *Registry) Register(f Flag) error {
	if err := r.root.Add(f); err != nil {
		return oops.Wrapf(err, "register flag")
	}
	return nil
}

// MustRegister registers f, panicking on error.
// This is intended for package initialization only.
func (r *Registry) MustRegister(f Flag) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Flag returns the default instance for kind, failing with CodeUnregistered
// when the type was never registered.
func (r *Registry) Flag(kind Kind) (Flag, error) {
	return r.root.Flag(kind)
}

// KindOf returns the kind registered under name, ignoring case.
func (r *Registry) KindOf(name string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.index[normalizeName(name)]
	return kind, ok
}

// FlagFromString returns the default instance registered under name, ignoring case.
func (r *Registry) FlagFromString(name string) (Flag, bool) {
	kind, ok := r.KindOf(name)
	if !ok {
		return nil, false
	}
	return r.root.Local(kind)
}

// Recognized returns the default instance of every registered type, sorted by name.
func (r *Registry) Recognized() []Flag {
	flags := r.root.LocalFlags()
	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Name() < flags[j].Name()
	})
	return flags
}

// Match returns the registered defaults whose names match a glob pattern,
// such as "max-*" or "{pvp,weather}", sorted by name.
func (r *Registry) Match(pattern string) ([]Flag, error) {
	g, err := glob.Compile(normalizeName(pattern))
	if err != nil {
		return nil, oops.With("pattern", pattern).Wrapf(err, "compile flag pattern")
	}

	var matches []Flag
	for _, f := range r.Recognized() {
		if g.Match(f.Name()) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// admit checks that f may be stored in the root. A kind keeps the name it was
// first registered under. The root lock must be held
// and local is the root's value map, so concurrent registrations of colliding
// names are serialized.
func (r *Registry) admit(f Flag, local map[Kind]Flag) error {
	name := f.Name()
	if err := ValidateName(name); err != nil {
		return err
	}
	kind := KindOf(f)
	if def, ok := local[kind]; ok && def.Name() != name {
		return ErrNameChanged(kind, def.Name(), name)
	}
	if existing, ok := r.KindOf(name); ok && existing != kind {
		return ErrDuplicateName(name, existing, kind)
	}
	for existing, def := range local {
		if existing != kind && def.Name() == name {
			return ErrDuplicateName(name, existing, kind)
		}
	}
	return nil
}

// indexFlag is the root container's own handler: every newly added type is
// recorded in the name index.
func (r *Registry) indexFlag(f Flag, t UpdateType) {
	if t != Added {
		return
	}

	r.mu.Lock()
	r.index[normalizeName(f.Name())] = KindOf(f)
	r.mu.Unlock()

	r.logger.Debug("flag type registered", "flag", f.Name(), "kind", kindName(KindOf(f)))
}
