package parser

// Visitor is the callback bundle the Pratt driver invokes bottom-up as it
// recognizes each syntactic form. It is the only polymorphism point in the
// core: the driver never builds a tree of its own, so whatever the visitor
// returns (if anything, via its own side channel) is the caller's tree.
//
// Every method receives the operator/keyword token(s) that bracket the
// node. Implementations must not mutate the source buffer or parser state;
// doing so is undefined since tokens are borrowed spans into that buffer.
type Visitor interface {
	// Literal visits an identifier, literal, or bare keyword value token
	// (INTEGER, IDENTIFIER, METHOD_IDENTIFIER, NIL, TRUE, FALSE, SELF,
	// GLOBAL_VARIABLE, BACK_REFERENCE, NTH_REFERENCE).
	Literal(tok Token)

	// Unary visits a prefix operator (!, ~, unary + or -) applied to the
	// value produced by the immediately preceding parse.
	Unary(op Token)

	// Binary visits an infix binary operator, including the modifier forms
	// of if/unless/while/until/rescue and the composition and/or forms.
	Binary(op Token)

	// Assign visits an infix assignment operator.
	Assign(op Token)

	// Range visits a `..`/`...` range. hasLeft is false for a beginless
	// range (the prefix role of these tokens).
	Range(op Token, hasLeft bool)

	// Group visits a parenthesized expression.
	Group(open, close Token)

	// Array visits an array literal of the given size.
	Array(open, close Token, size int)

	// IndexCall visits `recv[]` (an empty index expression).
	IndexCall(open, close Token)

	// IndexExpr visits `recv[expr]`.
	IndexExpr(open, close Token)

	// Ternary visits a `cond ? a : b` expression.
	Ternary(question, colon Token)

	// Defined visits a `defined?` expression.
	Defined(kw Token)

	// Not visits a `not` expression.
	Not(kw Token)

	// Begin visits a `begin ... [ensure ...] end` block. hasEnsure reports
	// whether an ensure clause was present.
	Begin(open, close Token, hasEnsure bool)

	// WhileBlock visits a `while cond ... end` statement block.
	WhileBlock(kw, end Token)

	// UntilBlock visits an `until cond ... end` statement block.
	UntilBlock(kw, end Token)
}
