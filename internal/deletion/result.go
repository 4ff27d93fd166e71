package deletion

// Result is the outcome of a single strategy.
type Result int

const (
	// NotApplicable means the strategy found nothing to delete.
	NotApplicable Result = iota
	// Failed means the strategy errored; the next one is tried.
	Failed
	// Succeeded means the strategy removed the entry and/or the file.
	Succeeded
)

func (r Result) String() string {
	switch r {
	case Succeeded:
		return "succeeded"
	case NotApplicable:
		return "not_applicable"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt records what one strategy did during a run.
type Attempt struct {
	Strategy string
	Result   Result
	Err      error
}

// Report describes a whole run. Only Deleted is exposed to callers of
// Delete; the rest feeds logs and audit events.
type Report struct {
	Path     string
	Deleted  bool
	Strategy string // name of the strategy that succeeded, empty otherwise
	Attempts []Attempt
	Panic    interface{}
}
