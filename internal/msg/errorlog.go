package msg

// LogEntry is the subset of a parser error-log entry this adapter consumes.
// Filtering by the concrete entry's kind discriminant is the caller's job.
type LogEntry interface {
	LogFilename() string
	LogLine() int
	LogColumn() int
	LogMessage() string
}

// RecordLogEntry translates one parser error-log entry into a record on s.
func RecordLogEntry(s Sink, t *Type, entry LogEntry) *Record {
	loc := Location{
		Filename: entry.LogFilename(),
		Line:     entry.LogLine(),
		Col:      entry.LogColumn(),
	}
	return s.Record(t, loc, "%s", entry.LogMessage())
}

// RecordLog translates a whole error log, entry by entry, in order.
func RecordLog(s Sink, t *Type, entries []LogEntry) {
	for _, entry := range entries {
		RecordLogEntry(s, t, entry)
	}
}
