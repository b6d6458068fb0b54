// Package diag defines the diagnostic model shared by the re-indentation passes.
//
// # Purpose
//
//   - Provide deterministic data structures for findings produced while
//     scanning brackets (mismatched closers, unclosed openers).
//   - Offer light-weight utilities (Reporter, Bag) that let passes emit
//     diagnostics without coupling to storage or rendering.
//
// # Scope
//
// Package diag does not perform formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form (BRK1001).
//   - Message – short text, e.g. "mismatched '}'".
//   - Primary – 0-based row/column of the offending character.
//   - Notes – optional secondary positions ("opened here").
//
// Bracket findings are warnings: the tool is best-effort and always emits
// output for the whole file.
package diag
