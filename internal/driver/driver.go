// Package driver orchestrates one lint run: load, parse, run the checks,
// render, with optional caching and parallelism across input files.
package driver

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"xeplint/internal/checks"
	"xeplint/internal/msg"
	"xeplint/internal/xmltree"
)

// Result is the outcome of linting one document. Store is nil when the
// result was served from the cache.
type Result struct {
	Path        string
	Store       *msg.Store
	Rendered    string
	Errors      int
	Warnings    int
	Conventions int
	FromCache   bool
}

// HasErrors reports whether any Error-level finding was recorded. The CLI
// maps this to the process exit code; the core never does.
func (r *Result) HasErrors() bool {
	return r.Errors > 0
}

// Options configures a lint run.
type Options struct {
	// Disable lists check names excluded from the run.
	Disable []string

	// Jobs limits parallel workers for multi-file runs; 0 means one per CPU.
	Jobs int

	// Cache, when set, serves unchanged files from disk.
	Cache *Cache
}

// EnabledChecks returns fresh check instances minus the disabled ones. An
// unknown name in disable is an error, so typos in configuration do not
// silently re-enable a check.
func EnabledChecks(disable []string) ([]checks.Check, error) {
	all := checks.All()
	known := make(map[string]bool, len(all))
	for _, check := range all {
		known[check.Name()] = true
	}
	for _, name := range disable {
		if !known[name] {
			return nil, fmt.Errorf("unknown check %q in disable list", name)
		}
	}

	disabled := make(map[string]bool, len(disable))
	for _, name := range disable {
		disabled[name] = true
	}
	enabled := all[:0]
	for _, check := range all {
		if !disabled[check.Name()] {
			enabled = append(enabled, check)
		}
	}
	return enabled, nil
}

// Lint runs the enabled checks over one file. Findings about the document,
// including a document that does not parse at all, are diagnostics in the
// result, never errors; only I/O problems and check-set defects return one.
func Lint(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LintBytes(path, data, opts)
}

// LintBytes is Lint over in-memory content.
func LintBytes(path string, data []byte, opts Options) (*Result, error) {
	enabled, err := EnabledChecks(opts.Disable)
	if err != nil {
		return nil, err
	}

	reg := msg.NewRegistry()
	docParser, err := reg.Register(msg.Error, 7, "document-parser")
	if err != nil {
		return nil, err
	}
	for _, check := range enabled {
		if err := check.Register(reg); err != nil {
			return nil, fmt.Errorf("registering check %s: %w", check.Name(), err)
		}
	}

	store := msg.NewStore(path)
	doc, err := xmltree.Parse(bytes.NewReader(data), path)
	if err != nil {
		var perr *xmltree.ParseError
		if !errors.As(err, &perr) {
			return nil, err
		}
		msg.RecordLogEntry(store, docParser, perr)
	} else {
		for _, check := range enabled {
			check.Run(doc, store)
		}
	}

	var rendered bytes.Buffer
	if err := store.Render(&rendered); err != nil {
		return nil, err
	}
	return &Result{
		Path:        path,
		Store:       store,
		Rendered:    rendered.String(),
		Errors:      store.Count(msg.Error),
		Warnings:    store.Count(msg.Warning),
		Conventions: store.Count(msg.Convention),
	}, nil
}
