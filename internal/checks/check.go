// Package checks holds the fixed set of document checks. Each check
// registers its message types during an explicit start-up phase and then runs
// once per document against a message sink; its only observable effect is
// the set of records it produces.
package checks

import (
	"xeplint/internal/msg"
	"xeplint/internal/xmltree"
)

// Check is one self-contained analysis pass.
type Check interface {
	Name() string

	// Register creates the check's message types in the shared registry.
	// A conflict is a programming defect in the check set, not a document
	// problem, and fails the whole run.
	Register(reg *msg.Registry) error

	// Run records findings about doc through sink. Findings never escalate
	// to failures; a check that cannot make sense of the document records
	// that as a diagnostic and returns.
	Run(doc *xmltree.Document, sink msg.Sink)
}

// All returns fresh instances of every check, in execution order. The set is
// static; there is no plugin mechanism.
func All() []Check {
	return []Check{
		&Anchors{},
		&Examples{},
		&Schemas{},
	}
}
