package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"filesorter/internal/config"
	"filesorter/internal/fault"
	"filesorter/internal/logging"
	"filesorter/internal/scan"
)

const stageName = "organizer"

// Options holds the per-run switches.
type Options struct {
	DryRun      bool
	Deduplicate bool
}

// Organizer applies the dedup and classification policies to a listing.
type Organizer struct {
	rules    config.RuleSet
	opts     Options
	fs       FileSystem
	reporter Reporter
	logger   *slog.Logger
}

// New constructs an organizer backed by the real filesystem.
func New(rules config.RuleSet, opts Options, logger *slog.Logger, reporter Reporter) *Organizer {
	return NewWithDependencies(rules, opts, logger, reporter, OSFileSystem{})
}

// NewWithDependencies allows injecting collaborators (used in tests).
func NewWithDependencies(rules config.RuleSet, opts Options, logger *slog.Logger, reporter Reporter, fs FileSystem) *Organizer {
	if fs == nil {
		fs = OSFileSystem{}
	}
	if reporter == nil {
		reporter = ReporterFunc(func(Outcome) {})
	}
	return &Organizer{
		rules:    rules,
		opts:     opts,
		fs:       fs,
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, stageName),
	}
}

// Run processes entries in order and stops at the first failure. The returned
// summary covers the entries completed before any error.
func (o *Organizer) Run(ctx context.Context, dir string, entries []scan.Entry) (Summary, error) {
	logger := logging.WithContext(ctx, o.logger)
	started := time.Now()
	summary := Summary{DryRun: o.opts.DryRun}

	var registry *Registry
	if o.opts.Deduplicate {
		registry = NewRegistry()
	}

	logger.Info(
		"starting organization",
		logging.String("dir", dir),
		logging.Int("entries", len(entries)),
		logging.Bool("dry_run", o.opts.DryRun),
		logging.Bool("deduplicate", o.opts.Deduplicate),
		logging.Int("rules", len(o.rules)),
	)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(started)
			return summary, fault.Wrap(fault.ErrInterrupted, stageName, "run", fmt.Sprintf("stopped before %s", entry.Path), err)
		}
		outcome, err := o.ProcessEntry(ctx, dir, entry, registry)
		if err != nil {
			summary.Elapsed = time.Since(started)
			logging.ErrorWithContext(logger, "organization aborted", "entry_failed",
				logging.String("path", entry.Path),
				logging.String("error_kind", fault.Kind(err)),
				logging.Int("completed", summary.Scanned),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "earlier entries were already processed; fix the cause and rerun"),
			)
			return summary, err
		}
		summary.record(outcome)
		o.reporter.Report(outcome)
	}

	summary.Elapsed = time.Since(started)
	attrs := []slog.Attr{
		logging.Int("scanned", summary.Scanned),
		logging.Int("duplicates", summary.Duplicates),
		logging.Int("moved", summary.Moved),
		logging.Int("left_in_place", summary.LeftInPlace()),
		logging.Duration("elapsed", summary.Elapsed),
	}
	if registry != nil {
		attrs = append(attrs, logging.Int("unique_digests", registry.Len()))
	}
	logger.Info("organization completed", logging.Args(attrs...)...)
	return summary, nil
}

// ProcessEntry runs one entry through dedup (when registry is non-nil) and
// classification. It is the single-file step of Run.
func (o *Organizer) ProcessEntry(ctx context.Context, dir string, entry scan.Entry, registry *Registry) (Outcome, error) {
	logger := logging.WithContext(ctx, o.logger).With(logging.String("path", entry.Path))

	if registry != nil {
		outcome, duplicate, err := o.deduplicate(logger, entry, registry)
		if err != nil || duplicate {
			return outcome, err
		}
	}
	return o.classify(logger, dir, entry)
}

func (o *Organizer) deduplicate(logger *slog.Logger, entry scan.Entry, registry *Registry) (Outcome, bool, error) {
	digest, err := o.fs.Hash(entry.Path)
	if err != nil {
		return Outcome{}, false, fault.Wrap(fault.ErrFileIO, stageName, "hash file", entry.Path, err)
	}

	original, duplicate := registry.Observe(digest, entry.Path)
	if !duplicate {
		logger.Debug("registered content digest", logging.String("digest", digest))
		return Outcome{}, false, nil
	}

	outcome := Outcome{
		Action:   ActionDuplicate,
		Source:   entry.Path,
		Original: original,
		Digest:   digest,
		DryRun:   o.opts.DryRun,
	}
	if o.opts.DryRun {
		logger.Info("duplicate found (dry run)", logging.String("original", original))
		return outcome, true, nil
	}
	if err := o.fs.Remove(entry.Path); err != nil {
		return Outcome{}, true, fault.Wrap(fault.ErrFileIO, stageName, "remove duplicate", entry.Path, err)
	}
	logger.Info("duplicate removed", logging.String("original", original), logging.String("digest", digest))
	return outcome, true, nil
}

func (o *Organizer) classify(logger *slog.Logger, dir string, entry scan.Entry) (Outcome, error) {
	ext := entry.Ext()
	if ext == "" {
		logger.Debug("left in place", logging.String("reason", string(ActionNoExtension)))
		return Outcome{Action: ActionNoExtension, Source: entry.Path, DryRun: o.opts.DryRun}, nil
	}

	rule, ok := o.rules.Match(ext)
	if !ok {
		logger.Debug("left in place", logging.String("reason", string(ActionNoRule)), logging.String("extension", ext))
		return Outcome{Action: ActionNoRule, Source: entry.Path, DryRun: o.opts.DryRun}, nil
	}

	folder := filepath.Join(dir, rule.Folder)
	destination := filepath.Join(folder, entry.Name)
	outcome := Outcome{
		Action:      ActionMoved,
		Source:      entry.Path,
		Destination: destination,
		Folder:      rule.Folder,
		DryRun:      o.opts.DryRun,
	}
	if o.opts.DryRun {
		logger.Info("would move file", logging.String("destination", destination))
		return outcome, nil
	}

	if err := o.fs.MkdirAll(folder); err != nil {
		return Outcome{}, fault.Wrap(fault.ErrFileIO, stageName, "create folder", folder, err)
	}
	if err := o.fs.Move(entry.Path, destination); err != nil {
		return Outcome{}, fault.Wrap(fault.ErrFileIO, stageName, "move file", fmt.Sprintf("%s -> %s", entry.Path, destination), err)
	}
	logger.Info("file moved",
		logging.String("destination", destination),
		logging.Group("rule", logging.String("folder", rule.Folder), logging.Int("priority", rule.Priority)),
	)
	return outcome, nil
}
