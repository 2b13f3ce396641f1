// Package printer implements the reference printer visitor: one line per
// recognized node, in the call order the parser emits them. It is the
// visitor the parse CLI subcommand uses by default, and the one the
// worked-example scenarios are written against.
package printer

import (
	"fmt"
	"io"

	"github.com/k0kubun/rbparse/parser"
)

// Printer writes one line per visited node to W. Source must be the same
// buffer the parse was run over, since nodes only carry byte spans.
type Printer struct {
	W      io.Writer
	Source []byte
}

func New(w io.Writer, source []byte) *Printer {
	return &Printer{W: w, Source: source}
}

func (p *Printer) text(tok parser.Token) string {
	return string(tok.Text(p.Source))
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprintf(p.W, format+"\n", args...)
}

// Literal prints the kind-specific value form. VCALL names a bare
// identifier or method-identifier reference (there is no receiver in this
// subset, so every such reference reads as a call with no arguments).
func (p *Printer) Literal(tok parser.Token) {
	switch tok.Kind {
	case parser.IDENTIFIER, parser.METHOD_IDENTIFIER:
		p.line("VCALL=%s", p.text(tok))
	case parser.INTEGER:
		p.line("INTEGER=%s", p.text(tok))
	case parser.NIL:
		p.line("NIL")
	case parser.TRUE:
		p.line("TRUE")
	case parser.FALSE:
		p.line("FALSE")
	case parser.SELF:
		p.line("SELF")
	case parser.GLOBAL_VARIABLE:
		p.line("GVAR=%s", p.text(tok))
	case parser.BACK_REFERENCE:
		p.line("BACKREF=%s", p.text(tok))
	case parser.NTH_REFERENCE:
		p.line("NTHREF=%s", p.text(tok))
	default:
		p.line("LITERAL=%s", p.text(tok))
	}
}

func (p *Printer) Unary(op parser.Token) {
	p.line("UNARY_%s", unaryName(op.Kind))
}

// Binary names a binary op by the keyword's modifier role when the operator
// is one of if/unless/while/until/rescue, by its composition role for
// and/or, and by the operator's own name otherwise.
func (p *Printer) Binary(op parser.Token) {
	p.line(binaryName(op.Kind))
}

func (p *Printer) Assign(op parser.Token) {
	p.line("ASSIGN")
}

func (p *Printer) Range(op parser.Token, hasLeft bool) {
	if op.Kind == parser.TRIPLE_DOT {
		p.line("RANGE_EXCLUSIVE")
		return
	}
	p.line("RANGE")
}

func (p *Printer) Group(open, close parser.Token) {
	p.line("GROUP")
}

func (p *Printer) Array(open, close parser.Token, size int) {
	p.line("ARRAY=%d", size)
}

func (p *Printer) IndexCall(open, close parser.Token) {
	p.line("INDEX_CALL")
}

func (p *Printer) IndexExpr(open, close parser.Token) {
	p.line("INDEX_EXPR")
}

func (p *Printer) Ternary(question, colon parser.Token) {
	p.line("TERNARY")
}

func (p *Printer) Defined(kw parser.Token) {
	p.line("DEFINED")
}

func (p *Printer) Not(kw parser.Token) {
	p.line("NOT")
}

func (p *Printer) Begin(open, close parser.Token, hasEnsure bool) {
	p.line("BEGIN")
}

func (p *Printer) WhileBlock(kw, end parser.Token) {
	p.line("WHILE")
}

func (p *Printer) UntilBlock(kw, end parser.Token) {
	p.line("UNTIL")
}

func unaryName(k parser.Kind) string {
	switch k {
	case parser.BANG:
		return "NOT"
	case parser.TILDE:
		return "COMPLEMENT"
	case parser.PLUS:
		return "PLUS"
	case parser.MINUS:
		return "MINUS"
	default:
		return k.String()
	}
}

func binaryName(k parser.Kind) string {
	switch k {
	case parser.IF:
		return "IF"
	case parser.UNLESS:
		return "UNLESS"
	case parser.WHILE:
		return "MODIFIER_WHILE"
	case parser.UNTIL:
		return "MODIFIER_UNTIL"
	case parser.RESCUE:
		return "RESCUE"
	case parser.AND:
		return "COMPOSITION_AND"
	case parser.OR:
		return "COMPOSITION_OR"
	case parser.DOUBLE_PIPE:
		return "LOGICAL_OR"
	case parser.DOUBLE_AMPERSAND:
		return "LOGICAL_AND"
	case parser.DOUBLE_EQUAL:
		return "EQUAL"
	case parser.BANG_EQUAL:
		return "NOT_EQUAL"
	case parser.TRIPLE_EQUAL:
		return "CASE_EQUAL"
	case parser.EQUAL_TILDE:
		return "MATCH"
	case parser.BANG_TILDE:
		return "NOT_MATCH"
	case parser.COMPARE:
		return "COMPARE"
	case parser.LESS:
		return "LESS"
	case parser.LESS_EQUAL:
		return "LESS_EQUAL"
	case parser.GREATER:
		return "GREATER"
	case parser.GREATER_EQUAL:
		return "GREATER_EQUAL"
	case parser.PIPE:
		return "BITWISE_OR"
	case parser.CARET:
		return "BITWISE_XOR"
	case parser.AMPERSAND:
		return "BITWISE_AND"
	case parser.SHIFT_LEFT:
		return "SHIFT_LEFT"
	case parser.SHIFT_RIGHT:
		return "SHIFT_RIGHT"
	case parser.PLUS:
		return "ADD"
	case parser.MINUS:
		return "SUBTRACT"
	case parser.STAR:
		return "MULTIPLY"
	case parser.SLASH:
		return "DIVIDE"
	case parser.PERCENT:
		return "MODULO"
	case parser.DOUBLE_STAR:
		return "EXPONENT"
	default:
		return k.String()
	}
}
