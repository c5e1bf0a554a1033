package msgfmt

import (
	"encoding/json"
	"io"

	"xeplint/internal/msg"
)

// LocationJSON is a message location in JSON output.
type LocationJSON struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// MessageJSON is one rendered message in JSON output.
type MessageJSON struct {
	Location LocationJSON `json:"location"`
	Severity string       `json:"severity"`
	Code     int          `json:"code"`
	Name     string       `json:"name"`
	Text     string       `json:"text"`
}

// RecordJSON is one finding: a main message plus its related messages.
type RecordJSON struct {
	Main    MessageJSON   `json:"main"`
	Related []MessageJSON `json:"related,omitempty"`
}

// OutputJSON is the root structure of JSON output.
type OutputJSON struct {
	Findings []RecordJSON `json:"findings"`
	Count    int          `json:"count"`
}

func makeMessage(m msg.Message) MessageJSON {
	return MessageJSON{
		Location: LocationJSON{
			File: m.Location.Filename,
			Line: m.Location.Line,
			Col:  m.Location.Col,
		},
		Severity: m.Type.Level.String(),
		Code:     m.Type.Code,
		Name:     m.Type.Name,
		Text:     m.Text(),
	}
}

// JSON writes every record in the store's deterministic order.
func JSON(w io.Writer, store *msg.Store) error {
	out := OutputJSON{Findings: []RecordJSON{}}
	for _, rec := range store.Sorted() {
		rj := RecordJSON{Main: makeMessage(rec.Main)}
		for _, rel := range rec.Related {
			rj.Related = append(rj.Related, makeMessage(rel))
		}
		out.Findings = append(out.Findings, rj)
	}
	out.Count = len(out.Findings)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
