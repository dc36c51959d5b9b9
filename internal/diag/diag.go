// Package diag implements the diagnostic sink: the collector of
// (line, column, message) records that name analysis reports to, and
// the "any error" flag the driver checks on exit.
package diag

import (
	"fmt"
	"io"
)

// Diagnostic is a single reported occurrence.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// Sink collects diagnostics in report order and tracks whether any
// were ever reported. It is an object threaded explicitly through the
// walk rather than a package-level mutable flag, so a driver that
// processes several files in one process never leaks state between
// them.
type Sink struct {
	diagnostics []Diagnostic
}

// New returns an empty sink.
func New() *Sink {
	return &Sink{}
}

// Report records a diagnostic at the given source position. Messages
// are free-form, but name analysis only ever passes the exact strings
// its protocol defines.
func (s *Sink) Report(line, column int, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Line: line, Column: column, Message: message})
}

// AnyError reports whether Report has been called at least once.
func (s *Sink) AnyError() bool {
	return len(s.diagnostics) > 0
}

// Diagnostics returns the reported diagnostics in report order —
// depth-first, left-to-right tree-walk order, since that's the order
// name analysis calls Report in.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// WriteTo writes every diagnostic to w, one per line, in report order.
func (s *Sink) WriteTo(w io.Writer) error {
	for _, d := range s.diagnostics {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}
