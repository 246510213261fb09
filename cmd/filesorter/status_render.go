package main

import (
	"fmt"
	"io"
	"strings"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

var statusTags = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

// statusLine is one labelled row of the check report.
type statusLine struct {
	label  string
	kind   statusKind
	detail string
}

// writeStatusBlock prints a titled block with labels padded to the widest one.
func writeStatusBlock(w io.Writer, title string, lines []statusLine, colorize bool) {
	heading := "== " + strings.TrimSpace(title) + " =="
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, strings.Repeat("-", len(heading)))

	width := 0
	for _, l := range lines {
		width = max(width, len(l.label)+1)
	}
	for _, l := range lines {
		fmt.Fprintln(w, renderStatusLine(l, width, colorize))
	}
}

func renderStatusLine(l statusLine, width int, colorize bool) string {
	tag := statusTags[l.kind]
	text := fmt.Sprintf("  %-*s [%s]", width, l.label+":", tag.label)
	if l.detail != "" {
		text += " " + l.detail
	}
	if colorize && tag.color != "" {
		return tag.color + text + ansiReset
	}
	return text
}
