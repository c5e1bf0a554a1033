package msg

import (
	"fmt"
	"io"
	"sort"
)

// Store is the root sink: it accumulates every record for one analyzed
// document and owns final ordering and rendering.
type Store struct {
	defaultFilename string
	records         []*Record
}

// NewStore creates a store for one document. defaultFilename fills the
// filename of any location recorded without one.
func NewStore(defaultFilename string) *Store {
	return &Store{defaultFilename: defaultFilename}
}

func (s *Store) prep(loc Location) Location {
	if loc.Filename == "" {
		loc.Filename = s.defaultFilename
	}
	return loc
}

// Record implements Sink.
func (s *Store) Record(t *Type, loc Location, format string, args ...any) *Record {
	rec := &Record{Main: Message{Location: s.prep(loc), Type: t, Format: format, Args: args}}
	s.records = append(s.records, rec)
	return rec
}

// Attach implements Sink.
func (s *Store) Attach(to *Record, t *Type, loc Location, format string, args ...any) {
	to.attach(Message{Location: s.prep(loc), Type: t, Format: format, Args: args})
}

// Scope implements Sink.
func (s *Store) Scope(opts ScopeOptions) *Context {
	return newContext(s, s.defaultFilename, 0, opts)
}

func (s *Store) absorb(records []*Record) {
	s.records = append(s.records, records...)
}

// Len returns the number of top-level records.
func (s *Store) Len() int {
	return len(s.records)
}

// HasErrors reports whether any main message is Error-level.
func (s *Store) HasErrors() bool {
	for _, rec := range s.records {
		if rec.Main.Type.Level >= Error {
			return true
		}
	}
	return false
}

// Count returns the number of records whose main message has the given level.
func (s *Store) Count(level Level) int {
	n := 0
	for _, rec := range s.records {
		if rec.Main.Type.Level == level {
			n++
		}
	}
	return n
}

// Sorted returns the records ordered by the main message's location. The
// sort is stable: records at equal locations keep recording order, and
// related messages stay inside their record in attach order.
func (s *Store) Sorted() []*Record {
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Main.Location.Less(out[j].Main.Location)
	})
	return out
}

// Render writes one line per main or related message in the deterministic
// order defined by Sorted. Rendering itself never fails; only writer errors
// are returned.
func (s *Store) Render(w io.Writer) error {
	for _, rec := range s.Sorted() {
		if _, err := fmt.Fprintln(w, rec.Main.String()); err != nil {
			return err
		}
		for _, rel := range rec.Related {
			if _, err := fmt.Fprintln(w, rel.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
