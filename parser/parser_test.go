package parser_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k0kubun/rbparse/encoding"
	"github.com/k0kubun/rbparse/parser"
	"github.com/k0kubun/rbparse/printer"
	"github.com/k0kubun/rbparse/testutil"
)

func linesOf(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// TestGoldenScenarios runs every fixture in testdata/scenarios.yml against
// whichever of printer/tokenize it declares expectations for.
func TestGoldenScenarios(t *testing.T) {
	scenarios, err := testutil.LoadScenarios("../testdata/*.yml")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for name, sc := range scenarios {
		sc := sc
		t.Run(name, func(t *testing.T) {
			source := []byte(sc.Input)

			if sc.Printer != nil {
				var buf bytes.Buffer
				p := printer.New(&buf, source)
				parser.Parse(source, p)
				assert.Equal(t, sc.Printer, linesOf(buf.String()))
			}

			if sc.Tokenize != nil {
				sc2 := parser.New(source, encoding.ASCII)
				var got []string
				for {
					tok := sc2.Next()
					got = append(got, tok.Kind.String())
					if tok.Kind == parser.EOF {
						break
					}
				}
				// Drop the trailing synthetic EOF kind name to compare only
				// the named tokens the scenario enumerates.
				assert.Equal(t, sc.Tokenize, got[:len(got)-1])
			}
		})
	}
}

// TestTokenize exercises parser.Tokenize itself (not the raw scanner loop)
// against scenario 9: it must write exactly one line per named token and
// no trailing line for the terminal EOF.
func TestTokenize(t *testing.T) {
	scenarios, err := testutil.LoadScenarios("../testdata/*.yml")
	require.NoError(t, err)

	sc, ok := scenarios["tokenize_sigils"]
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, parser.Tokenize([]byte(sc.Input), &buf))

	lines := linesOf(buf.String())
	require.Len(t, lines, len(sc.Tokenize))
	for i, kind := range sc.Tokenize {
		assert.Contains(t, lines[i], kindCategory(t, kind))
	}
}

// kindCategory maps each Kind name used by the tokenize_sigils scenario to
// the Category() it renders as, from a fixed table.
// Scenario fixtures list Kind names; Tokenize's line format uses Category.
func kindCategory(t *testing.T, kindName string) string {
	t.Helper()
	switch kindName {
	case "NTH_REFERENCE":
		return "gvar"
	case "GLOBAL_VARIABLE":
		return "gvar"
	case "BACK_REFERENCE":
		return "backref"
	case "SHIFT_LEFT_EQUAL":
		return "op"
	case "TRIPLE_EQUAL":
		return "op"
	case "DEFINED":
		return "kw"
	default:
		t.Fatalf("no category mapping for %s", kindName)
		return ""
	}
}

// TestSpanMonotonicity checks invariant 1: successive tokens never overlap.
func TestSpanMonotonicity(t *testing.T) {
	source := []byte("foo = bar.baz + 1 * (2 - 3) [x, y]\nwhile z\nend\n")
	sc := parser.New(source, encoding.ASCII)

	prevEnd := 0
	for {
		tok := sc.Next()
		assert.GreaterOrEqual(t, tok.Start, prevEnd)
		prevEnd = tok.End
		if tok.Kind == parser.EOF {
			break
		}
	}
}

// TestContextBalance exercises every context type and asserts the parser
// returns without panicking.
func TestContextBalance(t *testing.T) {
	source := []byte("begin\n1\nensure\n2\nend\nwhile x\ny\nend\n[1, 2]\n")
	var buf bytes.Buffer
	p := printer.New(&buf, source)
	assert.NotPanics(t, func() {
		parser.Parse(source, p)
	})
}

// TestKeywordIdentifierDisambiguation checks invariant 6: a trailing !/?
// turns what would be a keyword spelling into a method identifier instead.
func TestKeywordIdentifierDisambiguation(t *testing.T) {
	sc := parser.New([]byte("if if? end!"), encoding.ASCII)

	tok := sc.Next()
	assert.Equal(t, parser.IF, tok.Kind)

	tok = sc.Next()
	assert.Equal(t, parser.METHOD_IDENTIFIER, tok.Kind)

	tok = sc.Next()
	assert.Equal(t, parser.METHOD_IDENTIFIER, tok.Kind)
}

// TestDiagnosticRecovery checks that a missing ')' is recorded but does not
// abort the parse.
func TestDiagnosticRecovery(t *testing.T) {
	source := []byte("(1 + 2\n")
	sink := &parser.RecordingSink{}
	var buf bytes.Buffer
	p := printer.New(&buf, source)
	parser.ParseWithDiagnostics(source, p, sink)

	assert.NotEmpty(t, sink.Messages)
	assert.Equal(t, []string{"INTEGER=1", "INTEGER=2", "ADD", "GROUP"}, linesOf(buf.String()))
}

// TestBareDotLimitation checks the documented bare-'.' scanner limitation:
// it yields EOF rather than a token of its own.
func TestBareDotLimitation(t *testing.T) {
	sc := parser.New([]byte("a.b"), encoding.ASCII)

	tok := sc.Next()
	assert.Equal(t, parser.IDENTIFIER, tok.Kind)

	tok = sc.Next()
	assert.Equal(t, parser.EOF, tok.Kind)
}
