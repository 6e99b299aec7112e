// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holoflags/internal/flagfile"
	"github.com/holomush/holoflags/pkg/flag"
)

// sourceDefault marks a value that comes from the registry root.
const sourceDefault = "(default)"

// ResolvedFlag is the effective value of one flag for a container.
type ResolvedFlag struct {
	Flag   string `json:"flag"`
	Value  string `json:"value"`
	Source string `json:"source"`
	Local  bool   `json:"local"`
}

// Resolution is the effective state of a container.
type Resolution struct {
	Container string            `json:"container"`
	Flags     []ResolvedFlag    `json:"flags"`
	Pending   map[string]string `json:"pending,omitempty"`
}

type resolveConfig struct {
	jsonOutput bool
}

func newResolveCmd(a *app) *cobra.Command {
	cfg := &resolveConfig{}

	cmd := &cobra.Command{
		Use:   "resolve <file> <container>",
		Short: "Show the effective flag values of a container",
		Long: `Load a flag file and print the effective value of every registered flag
for one container, with the container the value is inherited from.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, a, cfg, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output as JSON")

	return cmd
}

func runResolve(cmd *cobra.Command, a *app, cfg *resolveConfig, path, name string) error {
	tree, _, err := a.apply(cmd, path)
	if err != nil {
		return err
	}
	defer tree.Close()

	res, err := resolve(tree, name)
	if err != nil {
		return err
	}

	if cfg.jsonOutput {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return oops.Wrapf(err, "format JSON")
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return oops.Wrap(err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FLAG\tVALUE\tSOURCE")
	for _, f := range res.Flags {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", f.Flag, orDash(f.Value), f.Source)
	}
	pending := make([]string, 0, len(res.Pending))
	for flagName := range res.Pending {
		pending = append(pending, flagName)
	}
	sort.Strings(pending)
	for _, flagName := range pending {
		_, _ = fmt.Fprintf(w, "%s\t%s\t(pending)\n", flagName, res.Pending[flagName])
	}
	return w.Flush()
}

// resolve computes the effective value of every registered flag for the named
// container, recording which container in the chain supplies it.
func resolve(tree *flagfile.Tree, name string) (*Resolution, error) {
	c, ok := tree.Container(name)
	if !ok {
		return nil, oops.Code("CONTAINER_NOT_FOUND").With("container", name).Errorf("no container named %q", name)
	}

	names := make(map[*flag.Container]string, len(tree.Names()))
	for _, n := range tree.Names() {
		other, _ := tree.Container(n)
		names[other] = n
	}

	res := &Resolution{Container: name, Pending: c.Unknown()}
	for _, def := range tree.Registry().Recognized() {
		kind := flag.KindOf(def)
		effective, err := c.Flag(kind)
		if err != nil {
			return nil, err
		}
		res.Flags = append(res.Flags, ResolvedFlag{
			Flag:   def.Name(),
			Value:  effective.String(),
			Source: source(c, kind, names),
			Local:  isLocal(c, kind),
		})
	}
	return res, nil
}

func source(c *flag.Container, kind flag.Kind, names map[*flag.Container]string) string {
	for cur := c; cur != nil; cur = cur.Parent() {
		if _, ok := cur.Local(kind); !ok {
			continue
		}
		if n, ok := names[cur]; ok {
			return n
		}
		break
	}
	return sourceDefault
}

func isLocal(c *flag.Container, kind flag.Kind) bool {
	_, ok := c.Local(kind)
	return ok
}
