package organizer

import (
	"time"

	"github.com/fenilsonani/file-organizer/internal/mover"
	"github.com/fenilsonani/file-organizer/internal/scanner"
)

// Result collects the outcome of one organize batch
type Result struct {
	RunID   string
	Mode    Mode
	Filter  string // extension filter of a ModeType run
	Folder  string // custom folder of a ModeKeyword run
	Keyword string
	WorkDir string
	Root    string
	DryRun  bool

	// Outcomes holds one entry per attempted move, in scan order
	Outcomes []mover.Result

	// Matched counts the regular files that passed the filter or keyword,
	// including unclassified ones
	Matched    int
	Moved      int
	MovedBytes int64

	// Unclassified lists matched files whose extension belongs to no
	// category. They are left in place.
	Unclassified []scanner.FileEntry
	Failures     []*mover.MoveError

	// ScanErrors lists entries of the working directory that could not be
	// inspected
	ScanErrors []error

	Started  time.Time
	Finished time.Time
}

// HasFailures reports whether any move failed
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// Succeeded returns the outcomes of the files that were moved
func (r *Result) Succeeded() []mover.Result {
	var out []mover.Result
	for _, o := range r.Outcomes {
		if o.Moved {
			out = append(out, o)
		}
	}
	return out
}

// Duration returns how long the batch ran
func (r *Result) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}

func (r *Result) record(outcome mover.Result) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch {
	case outcome.Err != nil:
		r.Failures = append(r.Failures, outcome.Err)
	case outcome.Moved:
		r.Moved++
		r.MovedBytes += outcome.Size
	}
}
