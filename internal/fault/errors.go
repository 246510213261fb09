package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrListing       = errors.New("listing error")
	ErrFileIO        = errors.New("file i/o error")
	ErrLocked        = errors.New("directory locked")
	ErrInterrupted   = errors.New("run interrupted")
)

// Exit codes returned by the CLI.
const (
	ExitFailure       = 1
	ExitConfiguration = 2
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker. The marker should be one of the exported sentinels above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrFileIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	default:
		return ExitFailure
	}
}

// Kind returns a short label for the marker carried by err, used in logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrListing):
		return "listing"
	case errors.Is(err, ErrFileIO):
		return "file_io"
	case errors.Is(err, ErrLocked):
		return "locked"
	case errors.Is(err, ErrInterrupted):
		return "interrupted"
	default:
		return "unknown"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "run failure"
	}
	return strings.Join(parts, ": ")
}
