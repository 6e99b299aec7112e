// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package flagfile_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/holoflags/internal/builtin"
	"github.com/holomush/holoflags/internal/flagfile"
	"github.com/holomush/holoflags/pkg/errutil"
	"github.com/holomush/holoflags/pkg/flag"
)

const worldFile = `
containers:
  - name: world
    flags:
      pvp: false
      max-players: 200
      weather: rain
  - name: arena
    parent: world
    flags:
      PVP: yes
      weather: hail
      fire-spread: "on"
  - name: lobby
    flags:
      greeting: Welcome to the lobby
`

var _ = Describe("Parse", func() {
	It("decodes containers in order", func() {
		doc, err := flagfile.Parse([]byte(worldFile))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Containers).To(HaveLen(3))
		Expect(doc.Containers[1].Name).To(Equal("arena"))
		Expect(doc.Containers[1].Parent).To(Equal("world"))
		Expect(doc.Containers[0].Flags).To(HaveKeyWithValue("pvp", flagfile.Value("false")))
		Expect(doc.Containers[0].Flags).To(HaveKeyWithValue("max-players", flagfile.Value("200")))
	})

	DescribeTable("rejects invalid documents",
		func(data string) {
			_, err := flagfile.Parse([]byte(data))
			Expect(err).To(HaveOccurred())
			Expect(errutil.Code(err)).To(Equal(flagfile.CodeInvalid))
		},
		Entry("empty input", ""),
		Entry("malformed YAML", "containers: [\n"),
		Entry("missing containers", "flags: {}\n"),
		Entry("unknown field", "containers:\n  - name: world\n    colour: red\n"),
		Entry("missing name", "containers:\n  - parent: world\n"),
		Entry("nested flag value", "containers:\n  - name: world\n    flags:\n      pvp: [true]\n"),
		Entry("invalid container name", "containers:\n  - name: World Spawn\n"),
		Entry("duplicate container", "containers:\n  - name: world\n  - name: world\n"),
		Entry("parent declared later", "containers:\n  - name: arena\n    parent: world\n  - name: world\n"),
		Entry("malformed version", "version: latest\ncontainers: []\n"),
		Entry("unsupported version", "version: 2.0.0\ncontainers: []\n"),
	)

	It("accepts compatible format versions", func() {
		doc, err := flagfile.Parse([]byte("version: 1.4.0\ncontainers: []\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Version).To(Equal("1.4.0"))
	})

	It("loads from disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "flags.yaml")
		Expect(os.WriteFile(path, []byte(worldFile), 0o600)).To(Succeed())

		doc, err := flagfile.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Containers).To(HaveLen(3))
	})

	It("fails to load a missing file", func() {
		_, err := flagfile.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Apply", func() {
	var (
		reg    *flag.Registry
		tree   *flagfile.Tree
		report *flagfile.Report
	)

	BeforeEach(func() {
		reg = flag.NewRegistry()
		Expect(builtin.Register(reg)).To(Succeed())

		doc, err := flagfile.Parse([]byte(worldFile))
		Expect(err).NotTo(HaveOccurred())
		tree, report, err = flagfile.Apply(context.Background(), reg, doc)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(tree.Close)
	})

	It("builds the container tree", func() {
		Expect(tree.Names()).To(Equal([]string{"world", "arena", "lobby"}))

		world, ok := tree.Container("world")
		Expect(ok).To(BeTrue())
		arena, _ := tree.Container("arena")
		lobby, _ := tree.Container("lobby")
		Expect(arena.Parent()).To(BeIdenticalTo(world))
		Expect(world.Parent()).To(BeIdenticalTo(reg.Root()))
		Expect(lobby.Parent()).To(BeIdenticalTo(reg.Root()))
	})

	It("applies registered values", func() {
		arena, _ := tree.Container("arena")
		pvp, err := flag.Value[bool, builtin.PvpFlag](arena)
		Expect(err).NotTo(HaveOccurred())
		Expect(pvp).To(BeTrue())

		players, err := flag.Value[int, builtin.MaxPlayersFlag](arena)
		Expect(err).NotTo(HaveOccurred())
		Expect(players).To(Equal(200), "inherited from world")

		lobby, _ := tree.Container("lobby")
		greeting, err := flag.Value[string, builtin.GreetingFlag](lobby)
		Expect(err).NotTo(HaveOccurred())
		Expect(greeting).To(Equal("Welcome to the lobby"))
	})

	It("rejects values that do not parse and keeps the inherited value", func() {
		Expect(report.OK()).To(BeFalse())
		Expect(report.Rejected).To(HaveLen(1))
		rejected := report.Rejected[0]
		Expect(rejected.Container).To(Equal("arena"))
		Expect(rejected.Flag).To(Equal("weather"))

		var parseErr *flag.ParseError
		Expect(errors.As(rejected.Err, &parseErr)).To(BeTrue())
		Expect(parseErr.Value).To(Equal("hail"))

		arena, _ := tree.Container("arena")
		weather, err := flag.Value[builtin.Weather, builtin.WeatherFlag](arena)
		Expect(err).NotTo(HaveOccurred())
		Expect(weather).To(Equal(builtin.WeatherRain))
	})

	It("keeps unknown names pending until the type is registered", func() {
		Expect(report.Pending).To(ConsistOf(flagfile.Entry{Container: "arena", Flag: "fire-spread", Value: "on"}))

		arena, _ := tree.Container("arena")
		Expect(arena.Unknown()).To(HaveKeyWithValue("fire-spread", "on"))

		Expect(reg.Register(newFireSpreadFlag(false))).To(Succeed())
		Expect(arena.Unknown()).To(BeEmpty())
		fire, err := flag.Value[bool, fireSpreadFlag](arena)
		Expect(err).NotTo(HaveOccurred())
		Expect(fire).To(BeTrue())
	})

	It("counts applied values", func() {
		Expect(report.Applied).To(HaveLen(5))
	})
})

var _ = Describe("Export", func() {
	It("round trips local and pending values", func() {
		reg := flag.NewRegistry()
		Expect(builtin.Register(reg)).To(Succeed())

		doc, err := flagfile.Parse([]byte(worldFile))
		Expect(err).NotTo(HaveOccurred())
		tree, _, err := flagfile.Apply(context.Background(), reg, doc)
		Expect(err).NotTo(HaveOccurred())
		defer tree.Close()

		exported := flagfile.Export(tree)
		Expect(exported.Version).To(Equal(flagfile.FormatVersion))
		Expect(exported.Containers).To(HaveLen(3))

		arena := exported.Containers[1]
		Expect(arena.Parent).To(Equal("world"))
		Expect(arena.Flags).To(Equal(map[string]flagfile.Value{
			"pvp":         "true",
			"fire-spread": "on",
		}))
		Expect(exported.Containers[2].Parent).To(BeEmpty())

		data, err := exported.Marshal()
		Expect(err).NotTo(HaveOccurred())
		again, err := flagfile.Parse(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(exported))
	})

	It("omits flags for empty containers", func() {
		reg := flag.NewRegistry()
		doc := &flagfile.Document{Containers: []flagfile.ContainerSpec{{Name: "empty"}}}
		tree, _, err := flagfile.Apply(context.Background(), reg, doc)
		Expect(err).NotTo(HaveOccurred())
		defer tree.Close()

		Expect(flagfile.Export(tree).Containers[0].Flags).To(BeNil())
	})
})

var _ = Describe("Schema", func() {
	It("is valid JSON with the schema id", func() {
		data, err := flagfile.Schema()
		Expect(err).NotTo(HaveOccurred())

		var schema map[string]any
		Expect(json.Unmarshal(data, &schema)).To(Succeed())
		Expect(schema).To(HaveKeyWithValue("$id", flagfile.SchemaID))
		Expect(schema).To(HaveKey("properties"))
	})
})

type fireSpreadFlag struct {
	flag.Base[bool]
}

func newFireSpreadFlag(v bool) fireSpreadFlag {
	return fireSpreadFlag{flag.NewBase("fire-spread", v)}
}

func (f fireSpreadFlag) String() string {
	if f.Value() {
		return "true"
	}
	return "false"
}

func (fireSpreadFlag) Example() string { return "true" }

func (f fireSpreadFlag) FlagOf(v bool) fireSpreadFlag { return newFireSpreadFlag(v) }

func (f fireSpreadFlag) Merge(v bool) fireSpreadFlag { return newFireSpreadFlag(f.Value() || v) }

func (f fireSpreadFlag) Parse(raw string) (fireSpreadFlag, error) {
	switch raw {
	case "true", "on":
		return newFireSpreadFlag(true), nil
	case "false", "off":
		return newFireSpreadFlag(false), nil
	}
	return fireSpreadFlag{}, flag.NewParseError(f, raw, "")
}

func (f fireSpreadFlag) ParseFlag(raw string) (flag.Flag, error) {
	return flag.Erase(f.Parse(raw))
}
