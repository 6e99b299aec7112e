// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holoflags/pkg/flag"
)

// FlagInfo describes a registered flag type.
type FlagInfo struct {
	Name        string   `json:"name"`
	Default     string   `json:"default"`
	Example     string   `json:"example"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type listConfig struct {
	match      string
	jsonOutput bool
}

func newListCmd(a *app) *cobra.Command {
	cfg := &listConfig{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered flag types",
		Long:  `List every registered flag type with its default value, an example value and value suggestions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, a, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.match, "match", "*", "only list flags whose name matches this glob")
	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output as JSON")

	return cmd
}

func runList(cmd *cobra.Command, a *app, cfg *listConfig) error {
	flags, err := a.registry.Match(cfg.match)
	if err != nil {
		return err
	}

	infos := make([]FlagInfo, 0, len(flags))
	for _, f := range flags {
		infos = append(infos, describeFlag(f))
	}

	if cfg.jsonOutput {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return oops.Wrapf(err, "format JSON")
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return oops.Wrap(err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDEFAULT\tEXAMPLE\tSUGGESTIONS")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			info.Name, orDash(info.Default), orDash(info.Example), orDash(strings.Join(info.Suggestions, ",")))
	}
	return w.Flush()
}

func describeFlag(f flag.Flag) FlagInfo {
	return FlagInfo{
		Name:        f.Name(),
		Default:     f.String(),
		Example:     f.Example(),
		Suggestions: f.ValueSuggestions(),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
