// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flagfile

import (
	"context"
	"slices"
	"sort"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/holomush/holoflags/pkg/flag"
)

var tracer = otel.Tracer("holoflags/flagfile")

// Tree is the set of containers built from a Document, by name.
type Tree struct {
	reg        *flag.Registry
	names      []string
	containers map[string]*flag.Container
}

// Registry returns the registry the tree was built in.
func (t *Tree) Registry() *flag.Registry {
	return t.reg
}

// Names returns the container names in declaration order.
func (t *Tree) Names() []string {
	return slices.Clone(t.names)
}

// Container returns the container declared under name.
func (t *Tree) Container(name string) (*flag.Container, bool) {
	c, ok := t.containers[name]
	return c, ok
}

// Close closes every container in the tree.
func (t *Tree) Close() {
	for _, name := range t.names {
		t.containers[name].Close()
	}
}

// Entry is one flag value of one container.
type Entry struct {
	Container string
	Flag      string
	Value     string
}

// Rejection is a value that named a registered flag but did not parse.
type Rejection struct {
	Entry
	Err error
}

// Report lists what happened to every value while applying a document.
type Report struct {
	Applied  []Entry
	Pending  []Entry
	Rejected []Rejection
}

// OK reports whether no value was rejected.
func (r *Report) OK() bool {
	return len(r.Rejected) == 0
}

// Apply builds the document's containers in reg. Values for registered flags are
// parsed and added; values for unknown names are kept with AddUnknown until their
// type is registered. A value that fails to parse is reported and not stored, so
// the inherited value stays in effect.
func Apply(ctx context.Context, reg *flag.Registry, doc *Document) (tree *Tree, report *Report, err error) {
	_, span := tracer.Start(ctx, "flagfile.apply",
		trace.WithAttributes(attribute.Int("flagfile.containers", len(doc.Containers))),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err = doc.Validate(); err != nil {
		return nil, nil, err
	}

	tree = &Tree{reg: reg, containers: make(map[string]*flag.Container, len(doc.Containers))}
	report = &Report{}
	for _, spec := range doc.Containers {
		var parent *flag.Container
		if spec.Parent != "" {
			parent = tree.containers[spec.Parent]
		}
		c, cerr := reg.NewContainer(parent, nil)
		if cerr != nil {
			tree.Close()
			err = oops.With("container", spec.Name).Wrapf(cerr, "create container")
			return nil, nil, err
		}
		tree.names = append(tree.names, spec.Name)
		tree.containers[spec.Name] = c

		applyValues(reg, c, spec, report)
	}

	span.SetAttributes(
		attribute.Int("flagfile.applied", len(report.Applied)),
		attribute.Int("flagfile.pending", len(report.Pending)),
		attribute.Int("flagfile.rejected", len(report.Rejected)),
	)
	return tree, report, nil
}

func applyValues(reg *flag.Registry, c *flag.Container, spec ContainerSpec, report *Report) {
	names := make([]string, 0, len(spec.Flags))
	for name := range spec.Flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := Entry{Container: spec.Name, Flag: name, Value: string(spec.Flags[name])}

		def, ok := reg.FlagFromString(name)
		if !ok {
			c.AddUnknown(name, entry.Value)
			report.Pending = append(report.Pending, entry)
			continue
		}
		parsed, err := def.ParseFlag(entry.Value)
		if err == nil {
			err = c.Add(parsed)
		}
		if err != nil {
			report.Rejected = append(report.Rejected, Rejection{Entry: entry, Err: err})
			continue
		}
		report.Applied = append(report.Applied, entry)
	}
}

// Export writes the local values of every container back into a document.
// Values still waiting for their flag type are included so they survive a save.
func Export(tree *Tree) *Document {
	byContainer := make(map[*flag.Container]string, len(tree.containers))
	for name, c := range tree.containers {
		byContainer[c] = name
	}

	doc := &Document{Version: FormatVersion}
	for _, name := range tree.names {
		c := tree.containers[name]
		spec := ContainerSpec{Name: name, Parent: byContainer[c.Parent()]}

		local := c.LocalFlags()
		pending := c.Unknown()
		if len(local)+len(pending) > 0 {
			spec.Flags = make(map[string]Value, len(local)+len(pending))
		}
		for raw, value := range pending {
			spec.Flags[raw] = Value(value)
		}
		for _, f := range local {
			spec.Flags[f.Name()] = Value(f.String())
		}
		doc.Containers = append(doc.Containers, spec)
	}
	return doc
}
