// Package main hosts the filesorter CLI entrypoint and command graph.
//
// The root command organizes one directory: it loads the rule table, checks
// the target, takes the directory lock, lists candidate files, and hands them
// to the organizer. Subcommands cover rule inspection, preflight checks, and
// configuration scaffolding.
//
// Keep this package lean: behaviour lives in the internal packages and is only
// surfaced here through flags and console rendering.
package main
