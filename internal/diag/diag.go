// Package diag defines the front-end's typed diagnostics: the error
// taxonomy from spec §7 (Lexical, Syntactic, Schema, Ambiguity,
// Unsupported, Internal), each carrying a source locus when one is
// available, plus a Collector that lets a batch of statements report as
// many errors as possible instead of stopping at the first one.
package diag

import "fmt"

// Kind is the closed set of diagnostic categories.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	Schema
	Ambiguity
	Unsupported
	Internal
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case Schema:
		return "schema"
	case Ambiguity:
		return "ambiguity"
	case Unsupported:
		return "unsupported"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Locus is a source position: line/column are 1-indexed, Offset is the
// 0-indexed byte offset into the original source text.
type Locus struct {
	Line   int
	Column int
	Offset int
}

func (l Locus) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Error is a single diagnostic. It implements the error interface so it
// composes with the rest of Go's error handling (errors.As/Is), while
// still exposing Kind and Locus to callers that want to render or filter
// on them.
type Error struct {
	Kind       Kind
	Message    string
	Locus      Locus
	HasLocus   bool
	Suggestion string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s error", e.Kind)
	if e.HasLocus {
		msg += fmt.Sprintf(" at %s", e.Locus)
	}
	msg += ": " + e.Message
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// New builds an Error with a locus.
func New(kind Kind, locus Locus, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Locus: locus, HasLocus: true}
}

// NewNoLocus builds an Error with no associated source position — used
// for desugaring failures that span a whole subtree rather than a point.
func NewNoLocus(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Collector accumulates diagnostics across a batch of statements so one
// bad statement never masks the rest (spec §4.4/§7 propagation policy).
type Collector struct {
	errs []*Error
}

func (c *Collector) Add(e *Error) {
	if e != nil {
		c.errs = append(c.errs, e)
	}
}

func (c *Collector) HasErrors() bool { return len(c.errs) > 0 }

func (c *Collector) Errors() []*Error { return c.errs }
