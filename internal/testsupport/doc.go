// Package testsupport provides fixtures shared by filesorter tests: directory
// builders, whole-tree snapshots, and config helpers.
package testsupport
