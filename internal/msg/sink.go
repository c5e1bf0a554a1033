package msg

// Sink is the capability checks record findings through, implemented by both
// Store and Context. Checks never need to know which one they hold.
type Sink interface {
	// Record builds a message at loc, fills an absent filename with the
	// sink's default, wraps it in a fresh record and returns the live
	// record handle. Recording is total: it always succeeds.
	Record(t *Type, loc Location, format string, args ...any) *Record

	// Attach appends a further message to a previously returned record. The
	// message goes through the same filename and coordinate transforms as
	// Record, but no new top-level record is created.
	Attach(to *Record, t *Type, loc Location, format string, args ...any)

	// Scope creates a nested recording context that buffers locally and
	// forwards to this sink at scope exit.
	Scope(opts ScopeOptions) *Context
}

// ScopeOptions configures a nested recording context.
type ScopeOptions struct {
	// LineOffset shifts every recorded location down by this many lines, on
	// top of any offset the enclosing scopes already apply.
	LineOffset int

	// Filename, when set, replaces the filename of every recorded location.
	Filename string

	// DiscardOnSuccess drops the buffered records when the scope exits
	// cleanly. A failure exit always flushes.
	DiscardOnSuccess bool
}

// receiver is the upward path a context flushes into. Flushing applies no
// further transforms; records are already in the parent's coordinate space.
type receiver interface {
	absorb(records []*Record)
}
