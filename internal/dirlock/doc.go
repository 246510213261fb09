// Package dirlock guards a target directory against two filesorter runs at
// once.
//
// Locks are advisory flock files kept outside the directory being organized
// (under XDG_RUNTIME_DIR, falling back to the system temp dir) so they never
// show up in a listing. Mutating runs hold an exclusive lock; dry runs hold a
// shared one, so any number of previews can overlap but never with a real run.
package dirlock
