package organizer

import "time"

// Action is the terminal state of one processed entry.
type Action string

const (
	ActionDuplicate   Action = "duplicate"
	ActionMoved       Action = "moved"
	ActionNoExtension Action = "no_extension"
	ActionNoRule      Action = "no_rule"
)

// Outcome describes what happened (or, in dry-run, would happen) to an entry.
type Outcome struct {
	Action      Action
	Source      string
	Destination string
	Folder      string
	Original    string
	Digest      string
	DryRun      bool
}

// Reporter receives one Outcome per processed entry, in processing order.
type Reporter interface {
	Report(Outcome)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Outcome)

func (f ReporterFunc) Report(o Outcome) { f(o) }

// Summary aggregates the outcomes of a run.
type Summary struct {
	Scanned     int
	Duplicates  int
	Moved       int
	NoExtension int
	NoRule      int
	DryRun      bool
	Folders     map[string]int
	Elapsed     time.Duration
}

// LeftInPlace counts entries that matched no rule or had no extension.
func (s Summary) LeftInPlace() int {
	return s.NoExtension + s.NoRule
}

func (s *Summary) record(o Outcome) {
	s.Scanned++
	switch o.Action {
	case ActionDuplicate:
		s.Duplicates++
	case ActionMoved:
		s.Moved++
		if s.Folders == nil {
			s.Folders = make(map[string]int)
		}
		s.Folders[o.Folder]++
	case ActionNoExtension:
		s.NoExtension++
	case ActionNoRule:
		s.NoRule++
	}
}
