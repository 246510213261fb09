package main

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"filesorter/internal/organizer"
)

var (
	countPrinter = message.NewPrinter(language.English)
	titleCaser   = cases.Title(language.English)
)

func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

func actionLabel(action organizer.Action) string {
	return titleCaser.String(strings.ReplaceAll(string(action), "_", " "))
}

func renderSummary(summary organizer.Summary) string {
	title := "Run summary"
	if summary.DryRun {
		title = "Run summary (dry run)"
	}
	rows := [][]string{
		{"Scanned", formatCount(summary.Scanned)},
		{actionLabel(organizer.ActionMoved), formatCount(summary.Moved)},
		{actionLabel(organizer.ActionDuplicate), formatCount(summary.Duplicates)},
		{actionLabel(organizer.ActionNoExtension), formatCount(summary.NoExtension)},
		{actionLabel(organizer.ActionNoRule), formatCount(summary.NoRule)},
	}
	out := renderTable(tableSpec{
		Title:   title,
		Headers: []string{"Outcome", "Files"},
		Rows:    rows,
		Footer:  []string{"Elapsed", summary.Elapsed.Round(time.Millisecond).String()},
		Aligns:  []columnAlignment{alignLeft, alignRight},
	})

	if len(summary.Folders) == 0 {
		return out
	}
	folders := make([]string, 0, len(summary.Folders))
	for folder := range summary.Folders {
		folders = append(folders, folder)
	}
	sort.Strings(folders)
	folderRows := make([][]string, 0, len(folders))
	for _, folder := range folders {
		folderRows = append(folderRows, []string{folder, formatCount(summary.Folders[folder])})
	}
	return out + renderTable(tableSpec{
		Headers: []string{"Folder", "Files"},
		Rows:    folderRows,
		Aligns:  []columnAlignment{alignLeft, alignRight},
	})
}
