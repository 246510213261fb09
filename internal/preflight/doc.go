// Package preflight provides readiness checks for the paths a filesorter run
// depends on.
//
// These checks run in two contexts:
//   - The organize command calls RunAll before listing the target directory.
//     A failed check aborts before any mutation.
//   - The "filesorter check" command renders every result as a table.
package preflight
