// Package fault defines the error markers shared by every filesorter stage.
//
// Failures are tagged with one of the exported sentinels (configuration,
// listing, per-file I/O, lock contention, interruption) through Wrap, which
// prefixes the stage and operation so the CLI can print a contextual message
// and choose an exit code without inspecting error strings.
package fault
