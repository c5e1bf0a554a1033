package msg

import "errors"

// Context is a scoped sink for one bounded analysis sub-task, such as
// validating an embedded example. Records buffer locally, with this scope's
// coordinate transform applied at record time, and flow to the parent sink
// exactly once at scope exit. Scopes nest in strict LIFO order.
type Context struct {
	recv receiver
	buf  []*Record

	// effective transform: enclosing offsets are folded in at construction,
	// so flushing never re-transforms
	lineOffset      int
	override        string
	defaultFilename string

	discardOnSuccess bool
	closed           bool
}

func newContext(recv receiver, defaultFilename string, baseOffset int, opts ScopeOptions) *Context {
	c := &Context{
		recv:             recv,
		lineOffset:       baseOffset + opts.LineOffset,
		defaultFilename:  defaultFilename,
		discardOnSuccess: opts.DiscardOnSuccess,
	}
	if opts.Filename != "" {
		c.override = opts.Filename
	}
	return c
}

func (c *Context) prep(loc Location) Location {
	loc = loc.WithOffset(c.lineOffset)
	if c.override != "" {
		loc.Filename = c.override
	} else if loc.Filename == "" {
		loc.Filename = c.defaultFilename
	}
	return loc
}

// Record implements Sink.
func (c *Context) Record(t *Type, loc Location, format string, args ...any) *Record {
	rec := &Record{Main: Message{Location: c.prep(loc), Type: t, Format: format, Args: args}}
	c.buf = append(c.buf, rec)
	return rec
}

// Attach implements Sink.
func (c *Context) Attach(to *Record, t *Type, loc Location, format string, args ...any) {
	to.attach(Message{Location: c.prep(loc), Type: t, Format: format, Args: args})
}

// Scope implements Sink. The child stacks its transform on top of this
// scope's already-effective one and inherits the filename context.
func (c *Context) Scope(opts ScopeOptions) *Context {
	defaultFilename := c.defaultFilename
	if c.override != "" {
		defaultFilename = c.override
	}
	return newContext(c, defaultFilename, c.lineOffset, opts)
}

func (c *Context) absorb(records []*Record) {
	c.buf = append(c.buf, records...)
}

// Clear discards everything buffered so far without ending the scope, for
// when earlier findings turn out to be superseded mid-pass. The discarded
// records are sealed against further attaching.
func (c *Context) Clear() {
	for _, rec := range c.buf {
		rec.seal()
	}
	c.buf = nil
}

// Close ends the scope: err == nil is a clean exit. Buffered records are
// forwarded to the parent, unless the scope discards on success and the exit
// was clean. Close is idempotent; only the first call acts.
func (c *Context) Close(err error) {
	if c.closed {
		return
	}
	c.closed = true
	if c.discardOnSuccess && err == nil {
		for _, rec := range c.buf {
			rec.seal()
		}
		c.buf = nil
		return
	}
	c.recv.absorb(c.buf)
	c.buf = nil
}

// errPanicked marks a scope exit caused by a panic, so DiscardOnSuccess
// never swallows findings recorded before the failure.
var errPanicked = errors.New("msg: panic during scope")

// InScope runs fn inside a fresh scope on s and guarantees the scope is
// closed exactly once on every exit path. A returned error or a panic counts
// as a failure exit and always flushes; panics are re-raised.
func InScope(s Sink, opts ScopeOptions, fn func(*Context) error) (err error) {
	ctx := s.Scope(opts)
	defer func() {
		if p := recover(); p != nil {
			ctx.Close(errPanicked)
			panic(p)
		}
		ctx.Close(err)
	}()
	err = fn(ctx)
	return err
}
