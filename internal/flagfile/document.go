// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package flagfile reads and writes flag container trees as YAML documents.
//
// A flag file lists containers in dependency order. Each container names its
// parent (empty for the registry root) and maps flag names to raw values:
//
//	version: 1.0.0
//	containers:
//	  - name: world
//	    flags:
//	      pvp: "false"
//	  - name: arena
//	    parent: world
//	    flags:
//	      pvp: "true"
//	      weather: storm
package flagfile

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/holomush/holoflags/pkg/flag"
)

// FormatVersion is the flag file format written by Export.
const FormatVersion = "1.0.0"

// supportedVersions accepts every file written by this major format version.
var supportedVersions = mustConstraint("^1.0.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// Document is the decoded form of a flag file.
type Document struct {
	Version    string          `yaml:"version,omitempty" jsonschema:"description=Flag file format version; defaults to the current version"`
	Containers []ContainerSpec `yaml:"containers" jsonschema:"description=Containers in dependency order"`
}

// ContainerSpec describes one container and its local values.
type ContainerSpec struct {
	Name   string           `yaml:"name" jsonschema:"minLength=1,description=Unique container name"`
	Parent string           `yaml:"parent,omitempty" jsonschema:"description=Name of an earlier container; empty for the registry root"`
	Flags  map[string]Value `yaml:"flags,omitempty" jsonschema:"description=Raw flag values keyed by flag name"`
}

// Value is a raw flag value. YAML scalars of any type are accepted and kept as
// their source text, so "pvp: true" and "pvp: \"true\"" are the same value.
type Value string

// JSONSchema allows any scalar for a raw value.
func (Value) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "number"},
			{Type: "boolean"},
		},
	}
}

// Parse decodes and validates a flag file.
func Parse(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrInvalid("flag file is empty")
	}
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oops.Code(CodeInvalid).Wrapf(err, "invalid YAML")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the flag file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, oops.With("path", path).Wrapf(err, "read flag file")
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	return doc, nil
}

// Validate checks the format version, that container names are valid and
// unique and that every parent is declared before its children.
func (d *Document) Validate() error {
	if d.Version != "" {
		v, err := semver.StrictNewVersion(d.Version)
		if err != nil {
			return ErrInvalid("version must be a semantic version", "version", d.Version)
		}
		if !supportedVersions.Check(v) {
			return ErrInvalid("unsupported flag file version",
				"version", d.Version, "supported", supportedVersions.String())
		}
	}

	seen := make(map[string]bool, len(d.Containers))
	for _, spec := range d.Containers {
		if err := flag.ValidateName(spec.Name); err != nil {
			return ErrInvalid("invalid container name", "container", spec.Name, "reason", err.Error())
		}
		if seen[spec.Name] {
			return ErrInvalid("container declared twice", "container", spec.Name)
		}
		if spec.Parent != "" && !seen[spec.Parent] {
			return ErrInvalid("parent must be declared before the container",
				"container", spec.Name, "parent", spec.Parent)
		}
		seen[spec.Name] = true
	}
	return nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, oops.Wrapf(err, "encode flag file")
	}
	return data, nil
}
