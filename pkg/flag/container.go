// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flag

import (
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/holomush/holoflags/pkg/errutil"
)

// Container holds at most one flag per Kind for an owning object and inherits
// everything else from its parent. Containers are created by a Registry and every
// parent chain ends at the registry root.
// It is safe for concurrent use by multiple goroutines.
type Container struct {
	id       ulid.ULID
	registry *Registry
	handler  Handler

	mu      sync.RWMutex
	parent  *Container
	local   map[Kind]Flag
	order   []Kind
	unknown map[string]string
	subs    []subscriber
	nextSub uint64
	rootSub *Subscription
	closed  bool
}

func newContainer(registry *Registry, parent *Container, handler Handler) *Container {
	return &Container{
		id:       newID(),
		registry: registry,
		handler:  handler,
		parent:   parent,
		local:    make(map[Kind]Flag),
		unknown:  make(map[string]string),
	}
}

// ID returns the container identifier used in logs and errors.
func (c *Container) ID() ulid.ULID {
	return c.id
}

// Registry returns the registry the container belongs to.
func (c *Container) Registry() *Registry {
	return c.registry
}

// Parent returns the parent container, or nil for the registry root.
func (c *Container) Parent() *Container {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parent
}

// SetParent moves the container under p. A nil p means the registry root.
// The parent must belong to the same registry and must not descend from c.
func (c *Container) SetParent(p *Container) error {
	if c.isRoot() {
		return errRootImmutable("set parent")
	}
	if p == nil {
		p = c.registry.root
	}
	if p.registry != c.registry {
		return errForeignParent(p)
	}
	for cur := p; cur != nil; cur = cur.Parent() {
		if cur == c {
			return errParentCycle(c)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.parent = p
	return nil
}

// Add stores f as the local value for its Kind, replacing any previous instance.
// The container handler and then every subscriber, in subscription order, are
// told about the change. A panicking handler is recovered and logged; it neither
// stops the remaining handlers nor undoes the change.
func (c *Container) Add(f Flag) error {
	if f == nil || isNil(f) {
		return ErrNilFlag()
	}
	kind := KindOf(f)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errContainerClosed(c)
	}
	if c.isRoot() {
		if err := c.registry.admit(f, c.local); err != nil {
			c.mu.Unlock()
			return err
		}
	}
	updateType := Updated
	if _, exists := c.local[kind]; !exists {
		updateType = Added
		c.order = append(c.order, kind)
	}
	c.local[kind] = f
	subs := c.subscribersLocked()
	c.mu.Unlock()

	c.notify(f, updateType, subs)
	return nil
}

// AddAll adds each flag in order. It stops at the first error.
func (c *Container) AddAll(flags ...Flag) error {
	for _, f := range flags {
		if err := c.Add(f); err != nil {
			return err
		}
	}
	return nil
}

// AddAllFrom copies the local values of other into c, in other's insertion order.
func (c *Container) AddAllFrom(other *Container) error {
	return c.AddAll(other.LocalFlags()...)
}

// Remove deletes the local value for f's Kind and returns it.
// Handlers receive the removed instance with Removed. Nothing is fired when no
// local value existed. The root refuses removals.
func (c *Container) Remove(f Flag) (Flag, bool) {
	if f == nil || isNil(f) {
		return nil, false
	}
	if c.isRoot() {
		errutil.LogWarn(c.registry.logger, "flag removal refused", errRootImmutable("remove"), "flag", f.Name())
		return nil, false
	}
	kind := KindOf(f)

	c.mu.Lock()
	old, ok := c.local[kind]
	if !ok {
		c.mu.Unlock()
		return nil, false
	}
	delete(c.local, kind)
	for i, k := range c.order {
		if k == kind {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	subs := c.subscribersLocked()
	c.mu.Unlock()

	c.notify(old, Removed, subs)
	return old, true
}

// ClearLocal drops every local value without firing events.
// The root refuses to clear its defaults.
func (c *Container) ClearLocal() {
	if c.isRoot() {
		errutil.LogWarn(c.registry.logger, "clearing root refused", errRootImmutable("clear"))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.local = make(map[Kind]Flag)
	c.order = nil
}

// Flag returns the effective flag for kind: the local value if present,
// otherwise the parent's. Reaching the root without a value is a programming
// error reported with CodeUnregistered.
func (c *Container) Flag(kind Kind) (Flag, error) {
	for cur := c; cur != nil; cur = cur.Parent() {
		if f, ok := cur.Local(kind); ok {
			return f, nil
		}
	}
	return nil, ErrUnregistered(kind)
}

// Local returns the value stored in this container for kind, without delegation.
func (c *Container) Local(kind Kind) (Flag, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.local[kind]
	return f, ok
}

// LocalFlags returns the local values in insertion order.
func (c *Container) LocalFlags() []Flag {
	c.mu.RLock()
	defer c.mu.RUnlock()

	flags := make([]Flag, 0, len(c.order))
	for _, kind := range c.order {
		flags = append(flags, c.local[kind])
	}
	return flags
}

// RecognizedFlags returns the default instance of every registered flag type.
func (c *Container) RecognizedFlags() []Flag {
	return c.registry.Recognized()
}

// Subscribe registers h for every local add, remove and update.
func (c *Container) Subscribe(h Handler) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSub++
	c.subs = append(c.subs, subscriber{id: c.nextSub, handler: h})
	return &Subscription{id: c.nextSub, container: c}
}

func (c *Container) unsubscribe(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

// AddUnknown records a raw value for a flag type that is not registered yet.
// The name is case-insensitive. When a type with that name is later added to or
// updated in the registry root, the value is parsed once and installed with Add.
func (c *Container) AddUnknown(name, raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unknown[normalizeName(name)] = raw
}

// Unknown returns a copy of the values still waiting for their flag type.
func (c *Container) Unknown() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pending := make(map[string]string, len(c.unknown))
	for name, raw := range c.unknown {
		pending[name] = raw
	}
	return pending
}

// Close detaches the container from the registry root. Later calls to Add fail;
// lookups keep working. Close is idempotent.
func (c *Container) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	rootSub := c.rootSub
	c.rootSub = nil
	c.subs = nil
	c.mu.Unlock()

	rootSub.Unsubscribe()
}

func (c *Container) isRoot() bool {
	return c == c.registry.root
}

func (c *Container) scope() Scope {
	if c.isRoot() {
		return ScopeRoot
	}
	return ScopeContainer
}

// subscribersLocked returns a snapshot of the subscribers. c.mu must be held.
func (c *Container) subscribersLocked() []subscriber {
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	return subs
}

func (c *Container) notify(f Flag, t UpdateType, subs []subscriber) {
	c.registry.recorder.RecordUpdate(f.Name(), c.scope(), t)
	if c.handler != nil {
		c.safeHandle(c.handler, f, t)
	}
	for _, s := range subs {
		c.safeHandle(s.handler, f, t)
	}
}

// safeHandle calls h with panic recovery.
func (c *Container) safeHandle(h Handler, f Flag, t UpdateType) {
	defer func() {
		if recovered := recover(); recovered != nil {
			c.registry.recorder.RecordHandlerPanic(f.Name())
			errutil.LogError(c.registry.logger, "flag update handler panicked", errHandlerPanic(c, f, t, recovered))
		}
	}()
	h(f, t)
}

// resolveUnknown is subscribed to the registry root by every other container.
func (c *Container) resolveUnknown(f Flag, t UpdateType) {
	if t == Removed {
		return
	}
	name := normalizeName(f.Name())

	c.mu.Lock()
	raw, ok := c.unknown[name]
	if ok {
		delete(c.unknown, name)
	}
	c.mu.Unlock()
	if !ok {
		return
	}

	parsed, err := f.ParseFlag(raw)
	if err == nil {
		err = c.Add(parsed)
	}
	if err != nil {
		c.registry.recorder.RecordResolution(name, ResolveFailed)
		errutil.LogWarn(c.registry.logger, "dropping unresolved flag value", err,
			"container", c.id.String(),
			"flag", name,
			"value", raw,
		)
		if c.registry.onResolveFailure != nil {
			c.registry.onResolveFailure(c, name, raw, err)
		}
		return
	}

	c.registry.recorder.RecordResolution(name, ResolveInstalled)
	c.registry.logger.Debug("resolved pending flag value",
		"container", c.id.String(),
		"flag", name,
	)
}
