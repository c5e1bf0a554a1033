package checks

import (
	"errors"
	"strings"

	"xeplint/internal/msg"
	"xeplint/internal/xmltree"
)

const xsdNamespace = "http://www.w3.org/2001/XMLSchema"

var errSchemaProblems = errors.New("schema block has problems")

// Schemas scans code blocks for embedded XML Schema documents, validates
// their structure and reports namespaces defined by more than one schema.
// Code blocks that are not schemas produce no findings: each block is
// examined inside a discard-on-success scope, so parse noise from arbitrary
// code listings is dropped while real schema problems force a failure exit
// and flush.
type Schemas struct {
	parser    *msg.Type
	duplicate *msg.Type
}

func (c *Schemas) Name() string { return "schemas" }

func (c *Schemas) Register(reg *msg.Registry) error {
	var err error
	if c.parser, err = reg.Register(msg.Error, 1, "xml-schema-parser"); err != nil {
		return err
	}
	if c.duplicate, err = reg.Register(msg.Error, 2, "xml-schema-duplicate"); err != nil {
		return err
	}
	return nil
}

func (c *Schemas) Run(doc *xmltree.Document, sink msg.Sink) {
	seen := make(map[string]*xmltree.Element)

	for _, block := range doc.FindAll("code") {
		if strings.TrimSpace(block.Text) == "" {
			continue
		}

		_ = msg.InScope(sink, msg.ScopeOptions{
			LineOffset:       block.Line,
			Filename:         doc.Filename,
			DiscardOnSuccess: true,
		}, func(ctx *msg.Context) error {
			tree, err := xmltree.ParseString(block.Text, "")
			if err != nil {
				var perr *xmltree.ParseError
				if errors.As(err, &perr) {
					// buffered; only surfaces if the block proves to matter,
					// which an unparseable block never can
					msg.RecordLogEntry(ctx, c.parser, perr)
				}
				return nil
			}
			if tree.Root.Space != xsdNamespace || tree.Root.Name != "schema" {
				return nil
			}

			problems := c.validate(tree, ctx)

			target, ok := tree.Root.Attr("targetNamespace")
			if ok {
				if existing, dup := seen[target]; dup {
					rec := sink.Record(c.duplicate, msg.Location{Line: block.Line},
						"multiple schemas found for namespace %q", target)
					sink.Attach(rec, c.duplicate, msg.Location{Line: existing.Line},
						"namespace %q has been first defined here", target)
				} else {
					seen[target] = block
				}
			}

			if problems {
				return errSchemaProblems
			}
			return nil
		})
	}
}

// validate performs the structural schema checks, recording findings in
// sub-document coordinates; the scope translates them.
func (c *Schemas) validate(tree *xmltree.Document, ctx *msg.Context) bool {
	problems := false

	if _, ok := tree.Root.Attr("targetNamespace"); !ok {
		ctx.Record(c.parser, msg.Location{Line: tree.Root.Line},
			"schema has no targetNamespace")
		problems = true
	}
	for _, child := range tree.Root.Children {
		if child.Space != xsdNamespace {
			ctx.Record(c.parser, msg.Location{Line: child.Line},
				"unexpected non-schema element %q", child.Name)
			problems = true
		}
	}
	return problems
}
