// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/schemargs/cmd/schemargs/internal/clierr"
	"github.com/bartekus/schemargs/internal/runner"
)

func newVerifyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run conformance cases from a YAML case file",
		Long: `Run conformance cases from a YAML case file.
State is kept in the state directory so failed cases can be resumed.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "run FILE [CASE...]",
		Short: "Run all cases, or only the named ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			r, err := a.newRunner(cmd, argv[0])
			if err != nil {
				return err
			}
			if len(argv) > 1 {
				return verifyResult(r.RunList(cmd.Context(), argv[1:]))
			}
			return verifyResult(r.RunAll(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resume FILE",
		Short: "Re-run the cases that failed in the last run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			r, err := a.newRunner(cmd, argv[0])
			if err != nil {
				return err
			}
			return verifyResult(r.Resume(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Show last run status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			last, err := runner.NewStateStore(a.cfg.StateDir).ReadLastRun()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Output == "json" {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(last)
			}

			if last == nil {
				_, _ = fmt.Fprintln(out, "No run state found.")
				return nil
			}

			_, _ = fmt.Fprintf(out, "Status: %s\n", last.Status)
			if len(last.Failed) > 0 {
				_, _ = fmt.Fprintln(out, "Failed:")
				for _, f := range last.Failed {
					_, _ = fmt.Fprintf(out, "  - %s\n", f)
				}
			} else {
				_, _ = fmt.Fprintln(out, "All passed.")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear verification state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug("removing verification state", "dir", a.cfg.StateDir)
			return runner.NewStateStore(a.cfg.StateDir).Reset()
		},
	})

	return cmd
}

func (a *app) newRunner(cmd *cobra.Command, file string) (*runner.Runner, error) {
	cases, err := runner.LoadCases(file)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitConfig, "loading cases", err)
	}
	a.logger.Debug("cases loaded", "file", file, "cases", len(cases))
	store := runner.NewStateStore(a.cfg.StateDir)
	return runner.NewRunner(file, cases, store, cmd.OutOrStdout(), a.logger), nil
}

func verifyResult(err error) error {
	if errors.Is(err, runner.ErrFailed) {
		return clierr.Wrap(clierr.ExitVerifyFailed, "verify", err)
	}
	return err
}
