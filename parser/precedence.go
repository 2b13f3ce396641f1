package parser

// Binding-power levels, lowest to highest. Associativity is encoded in how
// a Rule turns a level into {LeftBind, RightBind}: left-associative sets
// RightBind = level+1, right-associative sets RightBind = level.
const (
	levelLiteral = iota + 1
	levelModifier
	levelComposition
	levelNot
	levelDefined
	levelAssignment
	levelModifierRescue
	levelTernary
	levelRange
	levelLogicalOr
	levelLogicalAnd
	levelEquality
	levelComparison
	levelBitwiseOr
	levelBitwiseAnd
	levelShift
	levelTerm
	levelFactor
	levelExponent
	levelUnary
	levelIndex
)

// PrefixFn parses a prefix (or "nud") construct once its leading token has
// been committed to Previous.
type PrefixFn func(p *Parser, op Token)

// InfixFn parses an infix (or "led") construct given the operator token
// committed to Previous; the left operand was already handed to the
// visitor by whatever produced it.
type InfixFn func(p *Parser, op Token)

// Rule is one row of the static precedence table.
type Rule struct {
	Prefix    PrefixFn
	Infix     InfixFn
	LeftBind  int
	RightBind int
}

func leftAssoc(level int) (int, int)  { return level, level + 1 }
func rightAssoc(level int) (int, int) { return level, level }

var rules = map[Kind]Rule{}

func rule(k Kind, prefix PrefixFn, infix InfixFn, left, right int) {
	rules[k] = Rule{Prefix: prefix, Infix: infix, LeftBind: left, RightBind: right}
}

func init() {
	// Literals, grouping, begin.
	rule(IDENTIFIER, parseLiteral, nil, 0, 0)
	rule(METHOD_IDENTIFIER, parseLiteral, nil, 0, 0)
	rule(INTEGER, parseLiteral, nil, 0, 0)
	rule(NIL, parseLiteral, nil, 0, 0)
	rule(TRUE, parseLiteral, nil, 0, 0)
	rule(FALSE, parseLiteral, nil, 0, 0)
	rule(SELF, parseLiteral, nil, 0, 0)
	rule(GLOBAL_VARIABLE, parseLiteral, nil, 0, 0)
	rule(BACK_REFERENCE, parseLiteral, nil, 0, 0)
	rule(NTH_REFERENCE, parseLiteral, nil, 0, 0)
	rule(LEFT_PARENTHESIS, parseGrouping, nil, 0, 0)
	rule(BEGIN, parseBeginBlock, nil, 0, 0)

	// Modifier forms: infix only, left-associative. while/until double as
	// the loop construct's prefix.
	{
		l, r := leftAssoc(levelModifier)
		rule(IF, nil, parseBinary, l, r)
		rule(UNLESS, nil, parseBinary, l, r)
		rule(WHILE, parseLoop, parseBinary, l, r)
		rule(UNTIL, parseLoop, parseBinary, l, r)
	}

	// and/or: left-associative COMPOSITION.
	{
		l, r := leftAssoc(levelComposition)
		rule(AND, nil, parseBinary, l, r)
		rule(OR, nil, parseBinary, l, r)
	}

	// not, defined?: prefix only.
	rule(NOT, parseNot, nil, 0, 0)
	rule(DEFINED, parseDefined, nil, 0, 0)

	// Assignments: right-associative.
	{
		l, r := rightAssoc(levelAssignment)
		for _, k := range []Kind{EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL,
			PERCENT_EQUAL, AMPERSAND_EQUAL, PIPE_EQUAL, CARET_EQUAL, DOUBLE_AMPERSAND_EQUAL,
			DOUBLE_PIPE_EQUAL, SHIFT_LEFT_EQUAL, SHIFT_RIGHT_EQUAL, DOUBLE_STAR_EQUAL} {
			rule(k, nil, parseAssign, l, r)
		}
	}

	// rescue modifier: right-associative infix.
	{
		l, r := rightAssoc(levelModifierRescue)
		rule(RESCUE, nil, parseBinary, l, r)
	}

	// ternary: right-associative infix.
	{
		l, r := rightAssoc(levelTernary)
		rule(QUESTION_MARK, nil, parseTernary, l, r)
	}

	// ranges: left-associative, with a beginless-range prefix role too.
	{
		l, r := leftAssoc(levelRange)
		rule(DOUBLE_DOT, parseRangePrefix, parseRangeInfix, l, r)
		rule(TRIPLE_DOT, parseRangePrefix, parseRangeInfix, l, r)
	}

	{
		l, r := leftAssoc(levelLogicalOr)
		rule(DOUBLE_PIPE, nil, parseBinary, l, r)
	}
	{
		l, r := leftAssoc(levelLogicalAnd)
		rule(DOUBLE_AMPERSAND, nil, parseBinary, l, r)
	}
	{
		l, r := leftAssoc(levelEquality)
		for _, k := range []Kind{DOUBLE_EQUAL, BANG_EQUAL, TRIPLE_EQUAL, EQUAL_TILDE, BANG_TILDE, COMPARE} {
			rule(k, nil, parseBinary, l, r)
		}
	}
	{
		l, r := leftAssoc(levelComparison)
		for _, k := range []Kind{LESS, LESS_EQUAL, GREATER, GREATER_EQUAL} {
			rule(k, nil, parseBinary, l, r)
		}
	}
	{
		l, r := leftAssoc(levelBitwiseOr)
		rule(PIPE, nil, parseBinary, l, r)
		rule(CARET, nil, parseBinary, l, r)
	}
	{
		l, r := leftAssoc(levelBitwiseAnd)
		rule(AMPERSAND, nil, parseBinary, l, r)
	}
	{
		l, r := leftAssoc(levelShift)
		rule(SHIFT_LEFT, nil, parseBinary, l, r)
		rule(SHIFT_RIGHT, nil, parseBinary, l, r)
	}
	{
		l, r := leftAssoc(levelTerm)
		rule(PLUS, parseUnary, parseBinary, l, r)
		rule(MINUS, parseUnary, parseBinary, l, r)
	}
	{
		l, r := leftAssoc(levelFactor)
		rule(STAR, nil, parseBinary, l, r)
		rule(SLASH, nil, parseBinary, l, r)
		rule(PERCENT, nil, parseBinary, l, r)
	}
	{
		l, r := rightAssoc(levelExponent)
		rule(DOUBLE_STAR, nil, parseBinary, l, r)
	}

	// Prefix-only unary operators.
	rule(BANG, parseUnary, nil, 0, 0)
	rule(TILDE, parseUnary, nil, 0, 0)

	// '[': prefix (array literal) and infix (index), left-associative INDEX.
	{
		l, r := leftAssoc(levelIndex)
		rule(LEFT_BRACKET, parseArray, parseIndex, l, r)
	}
}
