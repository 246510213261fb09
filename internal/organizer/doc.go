// Package organizer runs the per-directory pipeline: optional duplicate
// elimination followed by extension-based routing into subfolders.
//
// Entries are processed strictly in listing order. With deduplication on, each
// file is hashed and checked against a run-scoped Registry; the first path
// seen for a digest is the original and later copies are deleted (or only
// reported in dry-run) and never organized. Survivors are matched against the
// RuleSet and renamed into <dir>/<Folder>/<name>, refusing to overwrite.
//
// Any filesystem failure stops the run. Work already done for earlier entries
// is kept; ProcessEntry is the isolated per-file step a resume feature would
// build on.
package organizer
