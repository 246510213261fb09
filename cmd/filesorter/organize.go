package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"filesorter/internal/config"
	"filesorter/internal/dirlock"
	"filesorter/internal/fault"
	"filesorter/internal/logging"
	"filesorter/internal/organizer"
	"filesorter/internal/preflight"
	"filesorter/internal/scan"
)

type organizeOptions struct {
	dir         string
	dryRun      bool
	deduplicate bool
	summary     bool
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, opts organizeOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	dir, err := config.ExpandPath(strings.TrimSpace(opts.dir))
	if err != nil {
		return fault.Wrap(fault.ErrListing, "organize", "resolve directory", opts.dir, err)
	}

	runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
	logger = logging.WithContext(runCtx, logger)

	if err := preflight.Failed(preflight.RunAll(dir, "", false)); err != nil {
		return fault.Wrap(fault.ErrListing, "preflight", "check directory", "", err)
	}

	lock, err := dirlock.Acquire(dir, opts.dryRun)
	if err != nil {
		if errors.Is(err, dirlock.ErrBusy) {
			return fault.Wrap(fault.ErrLocked, "dirlock", "acquire", "", err)
		}
		return fault.Wrap(fault.ErrFileIO, "dirlock", "acquire", dir, err)
	}
	logger.Debug("directory lock acquired",
		logging.String("dir", lock.Dir()),
		logging.String("lock", lock.Path()),
		logging.Bool("shared", opts.dryRun),
	)
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release directory lock failed",
				logging.String("lock", lock.Path()),
				logging.Error(err),
				logging.String(logging.FieldEventType, "lock_release_failed"),
			)
		}
	}()

	entries, err := scan.List(dir, scan.Options{
		ConfigName: filepath.Base(ctx.resolvedConfigPath()),
		Ignore:     cfg.Ignore,
	})
	if err != nil {
		return fault.Wrap(fault.ErrListing, "scan", "read directory", dir, err)
	}
	logger.Debug("directory listed", logging.String("dir", dir), logging.Int("entries", len(entries)))

	printer := newConsolePrinter(cmd.OutOrStdout(), dir, shouldColorize(cmd.OutOrStdout()))
	printer.header(dir, opts)

	org := organizer.New(cfg.RuleSet(), organizer.Options{
		DryRun:      opts.dryRun,
		Deduplicate: opts.deduplicate,
	}, logger, printer)

	summary, runErr := org.Run(runCtx, dir, entries)
	if runErr != nil {
		return runErr
	}

	printer.completed(summary)
	if opts.summary {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), renderSummary(summary))
	}
	return nil
}
