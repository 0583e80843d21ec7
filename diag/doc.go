// Package diag defines the diagnostic model shared by the tokenizer, the
// parser and any downstream phase (for example a semantic validator).
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable string form
//     (LEX1001, SYN2004, LIM2901).
//   - Message – short, actionable text.
//   - Primary – the span the diagnostic is about.
//   - Labels – secondary spans, each with its own message.
//   - Notes – free text shown after the snippet.
//   - Fixes – optional text edits that would resolve the problem.
//
// # Emitting
//
// Producers emit through a Reporter. ReportBuilder chains WithLabel, WithNote
// and WithFix before Emit. BagReporter collects into a Bag, which keeps
// discovery order and supports Sort, Dedup, Filter and Merge.
//
// Diagnostics are data: no phase inspects them to decide what to parse next.
//
// Package diag does no formatting beyond the golden single-line form; snippet
// rendering lives in package report.
package diag
