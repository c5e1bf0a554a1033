package msg

import "fmt"

// Message is one immutable diagnostic occurrence. Format and Args follow fmt
// verb conventions and are substituted only at render time.
type Message struct {
	Location Location
	Type     *Type
	Format   string
	Args     []any
}

// Text renders the message body.
func (m Message) Text() string {
	return fmt.Sprintf(m.Format, m.Args...)
}

// String renders the full output line for this message.
func (m Message) String() string {
	return fmt.Sprintf("%s: %s: %s", m.Location, m.Type, m.Text())
}

// Record groups one main message with its related messages. Related is a
// live slice owned by the record itself: the handle returned by Sink.Record
// is shared by reference between the caller and sink storage, so attaching
// still works after the record has been flushed upward.
type Record struct {
	Main    Message
	Related []Message

	// set when the owning scope discarded its buffer; attaching to a sealed
	// record is a contract violation in the calling check
	sealed bool
}

func (r *Record) attach(m Message) {
	if r.sealed {
		panic("msg: attach to a record whose scope has been discarded")
	}
	r.Related = append(r.Related, m)
}

func (r *Record) seal() {
	r.sealed = true
}
