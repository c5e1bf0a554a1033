package msg

// Level classifies message types by severity.
type Level uint8

const (
	// Convention is for stylistic findings.
	Convention Level = iota
	// Warning is for findings that are probably defects.
	Warning
	Error
)

// Letter returns the one-letter class used in rendered type identities.
func (l Level) Letter() byte {
	switch l {
	case Convention:
		return 'C'
	case Warning:
		return 'W'
	case Error:
		return 'E'
	}
	return '?'
}

func (l Level) String() string {
	switch l {
	case Convention:
		return "convention"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}
