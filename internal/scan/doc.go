// Package scan produces the ordered snapshot of files the organizer works on.
//
// List reads a single directory without recursing, drops subdirectories, the
// configuration file, and names matching the ignore globs, then sorts the
// remaining entries by full path in byte order. That order decides which of a
// set of identical files is kept as the original, so it must not change
// between runs over the same directory state.
package scan
