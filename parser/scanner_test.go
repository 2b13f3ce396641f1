package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k0kubun/rbparse/encoding"
	"github.com/k0kubun/rbparse/parser"
)

// TestMaximalMunchOperators checks that each multi-character operator wins
// over its shorter prefixes.
func TestMaximalMunchOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind parser.Kind
	}{
		{"<", parser.LESS},
		{"<=", parser.LESS_EQUAL},
		{"<<", parser.SHIFT_LEFT},
		{"<<=", parser.SHIFT_LEFT_EQUAL},
		{"<=>", parser.COMPARE},
		{"=", parser.EQUAL},
		{"==", parser.DOUBLE_EQUAL},
		{"===", parser.TRIPLE_EQUAL},
		{"=~", parser.EQUAL_TILDE},
		{"!", parser.BANG},
		{"!=", parser.BANG_EQUAL},
		{"!~", parser.BANG_TILDE},
		{"&", parser.AMPERSAND},
		{"&&", parser.DOUBLE_AMPERSAND},
		{"&&=", parser.DOUBLE_AMPERSAND_EQUAL},
		{"**", parser.DOUBLE_STAR},
		{"**=", parser.DOUBLE_STAR_EQUAL},
		{"..", parser.DOUBLE_DOT},
		{"...", parser.TRIPLE_DOT},
	}

	for _, c := range cases {
		sc := parser.New([]byte(c.src), encoding.ASCII)
		tok := sc.Next()
		assert.Equal(t, c.kind, tok.Kind, "scanning %q", c.src)
		assert.Equal(t, len(c.src), tok.End, "token should consume the whole literal for %q", c.src)
	}
}

// TestGlobalVariableSigils exercises every sigil branch, including the
// documented $-X one-extra-byte quirk.
func TestGlobalVariableSigils(t *testing.T) {
	cases := []struct {
		src  string
		kind parser.Kind
		end  int
	}{
		{"$foo", parser.GLOBAL_VARIABLE, 4},
		{"$_", parser.GLOBAL_VARIABLE, 2},
		{"$_foo", parser.GLOBAL_VARIABLE, 5},
		{"$~", parser.GLOBAL_VARIABLE, 2},
		{"$&", parser.BACK_REFERENCE, 2},
		{"$1", parser.NTH_REFERENCE, 2},
		{"$12", parser.NTH_REFERENCE, 3},
		{"$-x", parser.GLOBAL_VARIABLE, 3},
		{"$-", parser.GLOBAL_VARIABLE, 2},
	}

	for _, c := range cases {
		sc := parser.New([]byte(c.src), encoding.ASCII)
		tok := sc.Next()
		assert.Equal(t, c.kind, tok.Kind, "scanning %q", c.src)
		assert.Equal(t, c.end, tok.End, "scanning %q", c.src)
	}
}

// TestWhitespaceCoalescing checks that a run of whitespace is skipped in
// one step and never emitted as a token.
func TestWhitespaceCoalescing(t *testing.T) {
	sc := parser.New([]byte("a   \t\f\v  b"), encoding.ASCII)
	first := sc.Next()
	second := sc.Next()
	assert.Equal(t, parser.IDENTIFIER, first.Kind)
	assert.Equal(t, parser.IDENTIFIER, second.Kind)
	assert.Equal(t, "a", string(first.Text([]byte("a   \t\f\v  b"))))
	assert.Equal(t, "b", string(second.Text([]byte("a   \t\f\v  b"))))
}

// TestNewlineCoalescingCountsLines checks that a run of blank lines only
// produces a single NEWLINE token but still advances the line counter once
// per '\n' byte.
func TestNewlineCoalescingCountsLines(t *testing.T) {
	sc := parser.New([]byte("\n\n\na"), encoding.ASCII)
	tok := sc.Next()
	assert.Equal(t, parser.NEWLINE, tok.Kind)
	assert.Equal(t, 4, sc.Line())

	tok = sc.Next()
	assert.Equal(t, parser.IDENTIFIER, tok.Kind)
}

// TestKeywordTable checks every keyword spelling maps to its own kind, not
// IDENTIFIER.
func TestKeywordTable(t *testing.T) {
	for _, kw := range parser.Keywords() {
		sc := parser.New([]byte(kw), encoding.ASCII)
		tok := sc.Next()
		assert.NotEqual(t, parser.IDENTIFIER, tok.Kind, "keyword %q should not scan as a plain identifier", kw)
	}
}
