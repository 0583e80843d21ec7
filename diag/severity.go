package diag

// Severity ranks a diagnostic. Higher values are more severe.
type Severity uint8

const (
	// SevInfo carries notes that never affect the exit status.
	SevInfo Severity = iota
	// SevWarning flags questionable but accepted input.
	SevWarning
	// SevError marks input that does not conform to the grammar. Any
	// diagnostic at this level makes a parse unsuccessful.
	SevError
)

// AtLeast reports whether s is as severe as floor.
func (s Severity) AtLeast(floor Severity) bool { return s >= floor }

// Outranks orders severities for sorting: the more severe one first.
func (s Severity) Outranks(other Severity) bool { return s > other }

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
