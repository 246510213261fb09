// Package fileutil holds the low-level file operations the organizer relies
// on: streaming content digests and moves that refuse to overwrite.
package fileutil
