package parser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/k0kubun/rbparse/encoding"
)

// Tokenize scans source and writes one line per token to w, in the form
// "<start>-<end> <category> <text>\n". Byte offsets are counted from the
// start of source. It stops at the first EOF token the scanner produces
// and does not write a line for it, matching the reference tokenizer's
// `while (current.type != TOKEN_EOF)` loop.
func Tokenize(source []byte, w io.Writer) error {
	sc := New(source, encoding.ASCII)
	for {
		tok := sc.Next()
		if tok.Kind == EOF {
			if tok.Start < len(source) {
				// The scanner's universal "I don't know" signal, reached mid-source
				// rather than at true end-of-input: either the bare-'.' limitation
				// or an unrecognized byte. Not an error the core reports; worth a
				// debug breadcrumb for a caller investigating unexpected output.
				slog.Debug("scanner emitted EOF before end of source", "offset", tok.Start)
			}
			return nil
		}
		if _, err := fmt.Fprintf(w, "%d-%d %s %s\n", tok.Start, tok.End, tok.Kind.Category(), tok.Text(source)); err != nil {
			return err
		}
	}
}
