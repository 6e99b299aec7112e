// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holoflags/internal/flagfile"
	"github.com/holomush/holoflags/internal/xdg"
)

type exportConfig struct {
	out string
}

func newExportCmd(a *app) *cobra.Command {
	cfg := &exportConfig{}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Rewrite a flag file in canonical form",
		Long: `Load a flag file into containers and write it back. Values are written in
their canonical form, rejected values are dropped and values for unknown flags
are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, a, cfg, args[0])
		},
	}

	cmd.Flags().StringVarP(&cfg.out, "out", "o", "", "write to this file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, a *app, cfg *exportConfig, path string) error {
	tree, _, err := a.apply(cmd, path)
	if err != nil {
		return err
	}
	defer tree.Close()

	data, err := flagfile.Export(tree).Marshal()
	if err != nil {
		return err
	}

	if cfg.out == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return oops.Wrap(err)
	}
	if err := xdg.EnsureDir(filepath.Dir(cfg.out)); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.out, data, 0o600); err != nil {
		return oops.With("path", cfg.out).Wrapf(err, "write flag file")
	}
	return nil
}
