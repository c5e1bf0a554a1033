// Package msg defines the diagnostics model shared by all checks.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     by checks running over a parsed document.
//   - Offer a narrow Sink capability so producers can record findings
//     without coupling to concrete storage or formatting layers.
//   - Support scoped, nestable recording contexts that remap the coordinates
//     of findings produced while validating embedded sub-documents.
//
// # Data model
//
// Type is the identity of a message class: a severity Level, a process-wide
// unique numeric code and a process-wide unique symbolic name, registered
// once at start-up through a Registry.
//
// Record is the central unit of storage. It groups one main Message with
// zero or more related Messages that always render directly after it,
// regardless of where their own locations would sort.
//
// # Recording
//
// Checks record through the Sink interface, implemented by both Store (the
// root accumulator, one per document) and Context (a scoped buffer with a
// line-offset and filename transform). A Context flushes to its parent
// exactly once at scope exit; when created with DiscardOnSuccess, a clean
// exit drops the buffer instead, while a failure exit always flushes so that
// partial findings are never lost. Use InScope to get flush-or-discard on
// every exit path, including panics.
//
// Rendering lives here only in its canonical plain-text form (Store.Render);
// richer output formats live in internal/msgfmt.
package msg
