// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"log/slog"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holoflags/internal/builtin"
	"github.com/holomush/holoflags/internal/config"
	"github.com/holomush/holoflags/internal/flagfile"
	"github.com/holomush/holoflags/internal/logging"
	"github.com/holomush/holoflags/internal/metrics"
	"github.com/holomush/holoflags/internal/xdg"
	"github.com/holomush/holoflags/pkg/errutil"
	"github.com/holomush/holoflags/pkg/flag"
)

// app is the state shared by every subcommand, built before any of them runs.
type app struct {
	configFile string
	cfg        config.Config
	logger     *slog.Logger
	gatherer   *prometheus.Registry
	registry   *flag.Registry
}

// NewRootCmd creates the root command for the holoflags CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "holoflags",
		Short: "Inspect and validate flag container files",
		Long: `holoflags loads flag files into a tree of flag containers backed by the
built-in flag types, and reports how every value resolves.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	defaults := config.Default()
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path (default "+xdg.DefaultConfigFile()+")")
	cmd.PersistentFlags().String("log-format", defaults.LogFormat, "log format: json or text")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newResolveCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.Setup("holoflags", version, cfg.Format(), level, cmd.ErrOrStderr())
	a.gatherer = prometheus.NewRegistry()

	a.registry = flag.NewRegistry(
		flag.WithLogger(a.logger),
		flag.WithRecorder(metrics.NewRecorder(a.gatherer)),
	)
	if err := builtin.Register(a.registry); err != nil {
		return oops.Wrapf(err, "register built-in flags")
	}
	return nil
}

// apply loads the flag file at path into a new container tree.
func (a *app) apply(cmd *cobra.Command, path string) (*flagfile.Tree, *flagfile.Report, error) {
	doc, err := flagfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	tree, report, err := flagfile.Apply(cmd.Context(), a.registry, doc)
	if err != nil {
		return nil, nil, err
	}
	for _, r := range report.Rejected {
		errutil.LogWarn(a.logger, "flag value rejected", r.Err, "container", r.Container, "flag", r.Flag)
	}
	return tree, report, nil
}

// writeMetrics writes the gathered metrics when an output file is configured.
func (a *app) writeMetrics() error {
	if a.cfg.MetricsOut == "" {
		return nil
	}
	if err := xdg.EnsureDir(filepath.Dir(a.cfg.MetricsOut)); err != nil {
		return err
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsOut, a.gatherer); err != nil {
		return oops.With("path", a.cfg.MetricsOut).Wrapf(err, "write metrics")
	}
	a.logger.Debug("metrics written", "path", a.cfg.MetricsOut)
	return nil
}
