package grid

// Severity classifies a user-facing message
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// String returns the severity name
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Display receives the output of a Controller
type Display interface {
	// Clear removes every materialized square and the current message
	Clear()
	// Append materializes n new squares in one insertion
	Append(n int64)
	// ShowMessage replaces the current message
	ShowMessage(text string, sev Severity)
	// SetContinueVisible shows or hides the "show more" control
	SetContinueVisible(visible bool)
}
