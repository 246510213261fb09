package preflight

import (
	"errors"
	"strings"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks for a run over targetDir. The config file is
// only checked when configPath is non-empty; write is false for dry runs.
func RunAll(targetDir, configPath string, write bool) []Result {
	results := []Result{CheckDirectoryAccess("Target directory", targetDir, write)}
	if strings.TrimSpace(configPath) != "" {
		results = append(results, CheckFileReadable("Config file", configPath))
	}
	return results
}

// Failed joins the details of every failed check, or returns nil.
func Failed(results []Result) error {
	var errs []error
	for _, r := range results {
		if !r.Passed {
			errs = append(errs, errors.New(r.Name+": "+r.Detail))
		}
	}
	return errors.Join(errs...)
}
