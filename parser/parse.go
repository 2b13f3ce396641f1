package parser

import (
	"fmt"
	"os"

	"github.com/k0kubun/rbparse/encoding"
)

// Parser holds all state for exactly one parse. It is not reentrant and
// must not be shared across goroutines; nothing in it is safe to touch
// from a visitor callback.
type Parser struct {
	source   []byte
	previous Token
	current  Token
	line     int
	enc      encoding.Set
	ctx      *context
	visitor  Visitor
	scanner  *Scanner
	sink     Sink
}

// NewParser constructs a Parser over source. The first lookahead token is
// primed immediately, matching the reference driver's "read first
// lookahead token" step before any handler runs.
func NewParser(source []byte, enc encoding.Set, visitor Visitor, sink Sink) *Parser {
	p := &Parser{
		source:  source,
		enc:     enc,
		visitor: visitor,
		sink:    sink,
		scanner: New(source, enc),
	}
	p.current = p.scanner.Next()
	p.line = p.scanner.Line()
	return p
}

// Parse runs the Pratt parser over source as a top-level statement list,
// invoking visitor for each recognized node. Diagnostics for recovered
// parse failures go to os.Stderr; use ParseWithDiagnostics to capture them.
func Parse(source []byte, visitor Visitor) {
	ParseWithDiagnostics(source, visitor, WriterSink{W: os.Stderr})
}

// ParseWithDiagnostics is Parse with an explicit diagnostic Sink.
func ParseWithDiagnostics(source []byte, visitor Visitor, sink Sink) {
	p := NewParser(source, encoding.ASCII, visitor, sink)
	p.ParseList(ContextMain)
}

// ParseExprString parses a single expression (no statement list, no
// separators) and returns after the first top-level expression — useful
// for isolating one precedence/associativity scenario without wrapping it
// in a program.
func ParseExprString(source []byte, visitor Visitor, sink Sink) {
	p := NewParser(source, encoding.ASCII, visitor, sink)
	p.ParseExpression()
}

func (p *Parser) diagnostic(message string) {
	p.sink.Report(p.line, message)
}

func (p *Parser) diagnosticf(what, after string) {
	p.diagnostic(fmt.Sprintf("Expected %s after %s.", what, after))
}

// advance commits Current into Previous and pulls the next token from the
// scanner.
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.scanner.Next()
	p.line = p.scanner.Line()
}

// expect consumes Current if it matches kind, returning the consumed
// token. Otherwise it reports a diagnostic and returns a synthetic
// zero-width token at the current position without consuming anything, so
// the caller proceeds exactly as if the token had been present.
func (p *Parser) expect(kind Kind, what, after string) Token {
	if p.current.Kind == kind {
		p.advance()
		return p.previous
	}
	p.diagnosticf(what, after)
	return Token{Kind: kind, Start: p.current.Start, End: p.current.Start}
}

func (p *Parser) atSeparator() bool {
	return p.current.Kind == NEWLINE || p.current.Kind == SEMICOLON
}

// ParsePrecedence is the Pratt driver: dispatch the prefix handler for the
// committed token, then keep consuming infix operators while their
// left-binding power is at least minBind.
func (p *Parser) ParsePrecedence(minBind int) {
	if p.current.Kind == EOF {
		return
	}
	if p.ctx.terminates(p.current.Kind) {
		return
	}

	p.advance()
	prefixRule := rules[p.previous.Kind]
	if prefixRule.Prefix == nil {
		// Orphan token in prefix position: silent parse failure, per spec.
		return
	}
	prefixRule.Prefix(p, p.previous)

	for {
		infixCandidate := rules[p.current.Kind]
		if infixCandidate.LeftBind < minBind {
			return
		}
		p.advance()
		infixRule := rules[p.previous.Kind]
		if infixRule.Infix == nil {
			return
		}
		infixRule.Infix(p, p.previous)
	}
}

// ParseExpression parses one full expression, including modifier forms.
func (p *Parser) ParseExpression() {
	p.ParsePrecedence(levelLiteral + 1)
}

// ParseList pushes a new context frame of the given type, repeatedly
// parses an expression followed by that context's separator, and pops the
// frame before returning the count of expressions parsed.
func (p *Parser) ParseList(typ ContextType) int {
	p.ctx = &context{typ: typ, parent: p.ctx}
	defer func() { p.ctx = p.ctx.parent }()

	count := 0
	for {
		if p.current.Kind == EOF || p.ctx.terminates(p.current.Kind) {
			return count
		}
		p.ParseExpression()
		count++

		if typ == ContextArray {
			if p.current.Kind != COMMA {
				return count
			}
			p.advance()
			continue
		}

		if !p.atSeparator() {
			return count
		}
		p.advance()
	}
}

// --- Expression handlers -----------------------------------------------

func parseLiteral(p *Parser, tok Token) {
	p.visitor.Literal(tok)
}

func parseUnary(p *Parser, op Token) {
	p.ParsePrecedence(levelUnary)
	p.visitor.Unary(op)
}

func parseBinary(p *Parser, op Token) {
	p.ParsePrecedence(rules[op.Kind].RightBind)
	p.visitor.Binary(op)
}

func parseAssign(p *Parser, op Token) {
	p.ParsePrecedence(rules[op.Kind].RightBind)
	p.visitor.Assign(op)
}

func parseRangePrefix(p *Parser, op Token) { parseRangeCommon(p, op, false) }
func parseRangeInfix(p *Parser, op Token)  { parseRangeCommon(p, op, true) }

func parseRangeCommon(p *Parser, op Token, hasLeft bool) {
	p.ParsePrecedence(rules[op.Kind].RightBind)
	p.visitor.Range(op, hasLeft)
}

func parseGrouping(p *Parser, open Token) {
	p.ParseExpression()
	closeTok := p.expect(RIGHT_PARENTHESIS, "')'", "expression")
	p.visitor.Group(open, closeTok)
}

func parseArray(p *Parser, open Token) {
	if p.current.Kind == RIGHT_BRACKET {
		p.advance()
		p.visitor.Array(open, p.previous, 0)
		return
	}
	count := p.ParseList(ContextArray)
	closeTok := p.expect(RIGHT_BRACKET, "']'", "array elements")
	p.visitor.Array(open, closeTok, count)
}

func parseIndex(p *Parser, open Token) {
	if p.current.Kind == RIGHT_BRACKET {
		p.advance()
		p.visitor.IndexCall(open, p.previous)
		return
	}
	p.ParsePrecedence(levelModifierRescue + 1)
	closeTok := p.expect(RIGHT_BRACKET, "']'", "index expression")
	p.visitor.IndexExpr(open, closeTok)
}

func parseTernary(p *Parser, question Token) {
	bind := rules[QUESTION_MARK].RightBind
	p.ParsePrecedence(bind)
	colon := p.expect(COLON, "':'", "ternary true-branch")
	p.ParsePrecedence(bind)
	p.visitor.Ternary(question, colon)
}

func parseDefined(p *Parser, kw Token) {
	parseOptionallyParenthesized(p, "defined? expression", levelDefined)
	p.visitor.Defined(kw)
}

func parseNot(p *Parser, kw Token) {
	parseOptionallyParenthesized(p, "not expression", levelNot)
	p.visitor.Not(kw)
}

// parseOptionallyParenthesized parses defined?/not's operand. Parenthesized
// the operand is a free expression, same as any other grouping. Bare, it
// binds at the keyword's own table level rather than a full parse_expression
// — so `not a and b` closes `not`'s operand at `a`, leaving `and b` for the
// enclosing composition (see the worked example this keyword pairs with).
func parseOptionallyParenthesized(p *Parser, what string, bareBind int) {
	if p.current.Kind == LEFT_PARENTHESIS {
		p.advance()
		p.ParseExpression()
		p.expect(RIGHT_PARENTHESIS, "')'", what)
		return
	}
	p.ParsePrecedence(bareBind)
}

func parseBeginBlock(p *Parser, open Token) {
	if p.atSeparator() {
		p.advance()
	}
	p.ParseList(ContextBegin)

	hasEnsure := false
	if p.current.Kind == ENSURE {
		hasEnsure = true
		p.advance()
		if p.atSeparator() {
			p.advance()
		}
		p.ParseList(ContextEnsure)
	}

	closeTok := p.expect(END, "'end'", "begin block")
	p.visitor.Begin(open, closeTok, hasEnsure)
}

func parseLoop(p *Parser, kw Token) {
	p.ParseExpression()
	if p.atSeparator() {
		p.advance()
	} else {
		p.diagnosticf("a newline or ';'", "loop predicate")
	}
	p.ParseList(ContextLoop)
	end := p.expect(END, "'end'", "loop body")

	if kw.Kind == WHILE {
		p.visitor.WhileBlock(kw, end)
	} else {
		p.visitor.UntilBlock(kw, end)
	}
}
