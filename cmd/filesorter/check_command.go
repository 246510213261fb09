package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filesorter/internal/config"
	"filesorter/internal/dirlock"
	"filesorter/internal/fault"
	"filesorter/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var readOnly bool

	cmd := &cobra.Command{
		Use:         "check",
		Short:       "Check that a directory and the configuration are ready for a run",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ExpandPath(strings.TrimSpace(dirFlag))
			if err != nil {
				return fault.Wrap(fault.ErrListing, "check", "resolve directory", dirFlag, err)
			}
			configPath := ctx.resolvedConfigPath()
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			results := preflight.RunAll(dir, configPath, !readOnly)
			if results[len(results)-1].Passed {
				results = append(results, checkConfigValid(ctx))
			}
			if results[0].Passed {
				results = append(results, checkLockFree(dir))
			}

			lines := make([]statusLine, 0, len(results))
			failed := 0
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
					failed++
				}
				lines = append(lines, statusLine{label: r.Name, kind: kind, detail: r.Detail})
			}
			writeStatusBlock(out, "Preflight", lines, colorize)
			if failed > 0 {
				return fault.Wrap(fault.ErrListing, "check", "", fmt.Sprintf("%d of %d checks failed", failed, len(results)), preflight.Failed(results))
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory to check")
	cmd.Flags().BoolVar(&readOnly, "dry-run", false, "Only require read access, as a dry run does")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func checkConfigValid(ctx *commandContext) preflight.Result {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return preflight.Result{Name: "Config rules", Detail: err.Error()}
	}
	return preflight.Result{
		Name:   "Config rules",
		Passed: true,
		Detail: fmt.Sprintf("%d rules, %d ignore patterns", len(cfg.Rules), len(cfg.Ignore)),
	}
}

func checkLockFree(dir string) preflight.Result {
	lock, err := dirlock.Acquire(dir, true)
	if err != nil {
		if errors.Is(err, dirlock.ErrBusy) {
			return preflight.Result{Name: "Directory lock", Detail: "held by another run"}
		}
		return preflight.Result{Name: "Directory lock", Detail: err.Error()}
	}
	path := lock.Path()
	if err := lock.Release(); err != nil {
		return preflight.Result{Name: "Directory lock", Detail: fmt.Sprintf("release %s: %v", path, err)}
	}
	return preflight.Result{Name: "Directory lock", Passed: true, Detail: "free (" + path + ")"}
}
