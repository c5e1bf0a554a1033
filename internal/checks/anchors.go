package checks

import (
	"golang.org/x/text/unicode/norm"

	"xeplint/internal/msg"
	"xeplint/internal/xmltree"
)

var sectionTags = []string{
	"section1", "section2", "section3", "section4", "section5", "section6",
}

// Anchors verifies that every section carries an anchor and that no anchor
// is used twice across the document.
type Anchors struct {
	duplicate *msg.Type
	missing   *msg.Type
	style     *msg.Type
}

func (c *Anchors) Name() string { return "anchors" }

func (c *Anchors) Register(reg *msg.Registry) error {
	var err error
	if c.duplicate, err = reg.Register(msg.Error, 3, "duplicate-anchor"); err != nil {
		return err
	}
	if c.missing, err = reg.Register(msg.Error, 5, "missing-anchor"); err != nil {
		return err
	}
	if c.style, err = reg.Register(msg.Convention, 6, "anchor-style"); err != nil {
		return err
	}
	return nil
}

func (c *Anchors) Run(doc *xmltree.Document, sink msg.Sink) {
	seen := make(map[string]*xmltree.Element)

	for _, section := range doc.FindAll(sectionTags...) {
		anchor, ok := section.Attr("anchor")
		if !ok {
			topic, _ := section.Attr("topic")
			sink.Record(c.missing, msg.Location{Line: section.Line},
				"section %q has no anchor", topic)
			continue
		}

		if !anchorStyleOK(anchor) {
			sink.Record(c.style, msg.Location{Line: section.Line},
				"anchor %q is not in lowercase-hyphen style", anchor)
		}

		// visually identical anchors are duplicates regardless of their
		// Unicode composition form
		key := norm.NFC.String(anchor)
		if existing, dup := seen[key]; dup {
			rec := sink.Record(c.duplicate, msg.Location{Line: section.Line},
				"anchor %q has been used already", anchor)
			sink.Attach(rec, c.duplicate, msg.Location{Line: existing.Line},
				"anchor %q has been first used here", anchor)
			continue
		}
		seen[key] = section
	}
}

func anchorStyleOK(anchor string) bool {
	if anchor == "" {
		return false
	}
	for _, r := range anchor {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
