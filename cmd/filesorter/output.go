package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"filesorter/internal/organizer"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// consolePrinter renders organizer outcomes as one line per notable action.
type consolePrinter struct {
	out      io.Writer
	dir      string
	colorize bool
}

func newConsolePrinter(out io.Writer, dir string, colorize bool) *consolePrinter {
	return &consolePrinter{out: out, dir: dir, colorize: colorize}
}

func (p *consolePrinter) header(dir string, opts organizeOptions) {
	fmt.Fprintf(p.out, "Directory to organize: %s\n", dir)
	if opts.dryRun {
		fmt.Fprintln(p.out, p.paint(ansiYellow, "Dry-run mode enabled; no files will be changed."))
	}
	if opts.deduplicate {
		fmt.Fprintln(p.out, "Duplicate detection enabled.")
	}
}

// Report implements organizer.Reporter.
func (p *consolePrinter) Report(o organizer.Outcome) {
	switch o.Action {
	case organizer.ActionDuplicate:
		line := fmt.Sprintf("Duplicate: %s is a copy of %s", p.rel(o.Source), p.rel(o.Original))
		fmt.Fprintln(p.out, p.paint(ansiYellow, line))
		if o.DryRun {
			fmt.Fprintf(p.out, "  [dry run] would remove %s\n", p.rel(o.Source))
		} else {
			fmt.Fprintln(p.out, p.paint(ansiRed, "  --> removed "+p.rel(o.Source)))
		}
	case organizer.ActionMoved:
		if o.DryRun {
			fmt.Fprintf(p.out, "[dry run] would move %s to %s\n", p.rel(o.Source), p.rel(o.Destination))
			return
		}
		fmt.Fprintln(p.out, p.paint(ansiGreen, fmt.Sprintf("Moved %s to %s", p.rel(o.Source), p.rel(o.Destination))))
	}
}

func (p *consolePrinter) completed(summary organizer.Summary) {
	label := "Organization complete"
	if summary.DryRun {
		label = "Dry run complete"
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.paint(ansiBlue, fmt.Sprintf("%s: %d moved, %d duplicates, %d left in place.",
		label, summary.Moved, summary.Duplicates, summary.LeftInPlace())))
}

func (p *consolePrinter) rel(path string) string {
	if path == "" {
		return path
	}
	if rel, err := filepath.Rel(p.dir, path); err == nil {
		return rel
	}
	return path
}

func (p *consolePrinter) paint(color, line string) string {
	if !p.colorize || color == "" {
		return line
	}
	return color + line + ansiReset
}

func shouldColorize(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
