package xmltree

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// ErrorKind discriminates parse failures the way callers need to react to
// them.
type ErrorKind int

const (
	// ErrSyntax is a malformedness error inside an otherwise started document.
	ErrSyntax ErrorKind = iota
	// ErrNotXML means the input never produced a document element; callers
	// typically suppress these (the fragment was not XML at all).
	ErrNotXML
	// ErrExtraContent means a well-formed document element was followed by
	// more content; callers typically retry with a synthetic wrapper root.
	ErrExtraContent
)

// ParseError is one entry of the parser's error log. It satisfies the
// message sink's log-entry adapter, so checks can feed it straight into a
// diagnostic record.
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Message  string
	Kind     ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

func (e *ParseError) LogFilename() string { return e.Filename }
func (e *ParseError) LogLine() int        { return e.Line }
func (e *ParseError) LogColumn() int      { return e.Column }
func (e *ParseError) LogMessage() string  { return e.Message }

func convertError(err error, filename string, sawElement bool) *ParseError {
	kind := ErrSyntax
	if !sawElement {
		kind = ErrNotXML
	}
	if syn, ok := err.(*xml.SyntaxError); ok {
		return &ParseError{
			Filename: filename,
			Line:     syn.Line,
			Message:  syn.Msg,
			Kind:     kind,
		}
	}
	return &ParseError{
		Filename: filename,
		Message:  strings.TrimPrefix(err.Error(), "xml: "),
		Kind:     kind,
	}
}
