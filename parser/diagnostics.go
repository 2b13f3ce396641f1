package parser

import (
	"fmt"
	"io"
)

// Sink receives one diagnostic per recovered parse failure. It is
// write-only and unstructured: the parser never inspects what the sink
// does with a report, and no diagnostic ever aborts a parse.
type Sink interface {
	Report(line int, message string)
}

// WriterSink writes each diagnostic as a line to an io.Writer, in the
// style of a stderr-like collaborator.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Report(line int, message string) {
	fmt.Fprintf(s.W, "%s\n", message)
}

// RecordingSink accumulates diagnostics in memory, for tests that assert
// on parser recovery behavior without coupling to an io.Writer.
type RecordingSink struct {
	Messages []string
}

func (s *RecordingSink) Report(line int, message string) {
	s.Messages = append(s.Messages, message)
}
