// Package config loads, normalizes, and validates filesorter configuration.
//
// A configuration file is TOML: an optional top-level ignore list, one
// [rules.<Folder>] table per destination folder listing the extensions routed
// there, and an optional [logging] section. Load expands user paths, applies
// defaults, rejects unknown keys, and validates folder names and extensions so
// the organizer only ever sees a well-formed RuleSet.
//
// Rule iteration order is fixed by RuleSet: ascending priority, then folder
// name in byte order. The first matching rule wins.
package config
