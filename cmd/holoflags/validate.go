// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a flag file against the registered flag types",
		Long: `Load a flag file and report every value as applied, pending (no flag type
with that name is registered) or rejected (the value does not parse).
Exits non-zero when any value is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, a, args[0])
		},
	}

	cmd.Flags().String("metrics-out", "", "write Prometheus metrics to this textfile")

	return cmd
}

func runValidate(cmd *cobra.Command, a *app, path string) error {
	tree, report, err := a.apply(cmd, path)
	if err != nil {
		return err
	}
	defer tree.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STATUS\tCONTAINER\tFLAG\tVALUE\tREASON")
	for _, e := range report.Applied {
		_, _ = fmt.Fprintf(w, "applied\t%s\t%s\t%s\t-\n", e.Container, e.Flag, e.Value)
	}
	for _, e := range report.Pending {
		_, _ = fmt.Fprintf(w, "pending\t%s\t%s\t%s\tunknown flag\n", e.Container, e.Flag, e.Value)
	}
	for _, r := range report.Rejected {
		_, _ = fmt.Fprintf(w, "rejected\t%s\t%s\t%s\t%s\n", r.Container, r.Flag, r.Value, r.Err)
	}
	if err := w.Flush(); err != nil {
		return oops.Wrapf(err, "write report")
	}

	if err := a.writeMetrics(); err != nil {
		return err
	}
	if !report.OK() {
		return oops.Code("FLAGFILE_REJECTED").
			With("path", path).
			Errorf("%d flag value(s) rejected", len(report.Rejected))
	}
	return nil
}
