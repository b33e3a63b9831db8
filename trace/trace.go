// Package trace provides the injectable diagnostic sink for sequence
// walks, plus run-token generators for correlating the trace of one
// top-level search.
//
// Tracing is not part of the engine's contract: a sink observes the
// search, it never influences it.
package trace

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sink receives one message per significant search event. depth is the
// recursion depth, usable for indentation.
type Sink interface {
	Step(depth int, msg string)
}

// Nop discards all events.
type Nop struct{}

func (Nop) Step(int, string) {}

// SlogSink writes search events as slog debug records, each carrying the
// run token so interleaved searches can be told apart.
type SlogSink struct {
	logger *slog.Logger
	token  string
}

// NewSlogSink creates a sink logging through logger, stamped with a fresh
// token from gen.
func NewSlogSink(logger *slog.Logger, gen TokenGenerator) *SlogSink {
	return &SlogSink{logger: logger, token: gen.Generate()}
}

// Token returns the run token this sink stamps on every record.
func (s *SlogSink) Token() string {
	return s.token
}

func (s *SlogSink) Step(depth int, msg string) {
	s.logger.Debug(msg,
		"run", s.token,
		"depth", depth,
	)
}

// WriterSink writes indented plain-text events, one per line. Used by the
// CLI's verbose mode, where records go to stderr to keep JSON output
// clean.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Step(depth int, msg string) {
	fmt.Fprintf(s.W, "%s%s\n", strings.Repeat("  ", depth), msg)
}
