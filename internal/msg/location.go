package msg

import "fmt"

// Location is a (filename, line, col) coordinate. Zero values stand for
// absent fields, so the zero Location is valid and sorts first.
type Location struct {
	Filename string
	Line     int
	Col      int
}

// Less orders locations lexicographically on (Filename, Line, Col), with
// absent fields treated as their minimum value.
func (l Location) Less(other Location) bool {
	if l.Filename != other.Filename {
		return l.Filename < other.Filename
	}
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Col < other.Col
}

// WithOffset derives a copy shifted down by delta lines.
func (l Location) WithOffset(delta int) Location {
	l.Line += delta
	return l
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Col)
}
