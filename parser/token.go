package parser

import "github.com/k0kubun/rbparse/util"

// Kind is the closed set of token kinds the scanner can produce. EOF is the
// zero value so a zeroed Token reads as "end of input" without explicit
// initialization.
type Kind int

const (
	EOF Kind = iota

	// Operators and punctuation.
	AMPERSAND_EQUAL
	AMPERSAND
	BANG_EQUAL
	BANG_TILDE
	BANG
	CARET_EQUAL
	CARET
	COLON
	COMMA
	COMPARE
	DOUBLE_AMPERSAND_EQUAL
	DOUBLE_AMPERSAND
	DOUBLE_DOT
	DOUBLE_EQUAL
	DOUBLE_PIPE_EQUAL
	DOUBLE_PIPE
	DOUBLE_STAR_EQUAL
	DOUBLE_STAR
	EQUAL_TILDE
	EQUAL
	GREATER_EQUAL
	GREATER
	LEFT_BRACKET
	LEFT_PARENTHESIS
	LESS_EQUAL
	LESS
	MINUS_EQUAL
	MINUS
	NEWLINE
	PERCENT_EQUAL
	PERCENT
	PIPE_EQUAL
	PIPE
	PLUS_EQUAL
	PLUS
	QUESTION_MARK
	RIGHT_BRACKET
	RIGHT_PARENTHESIS
	SEMICOLON
	SHIFT_LEFT_EQUAL
	SHIFT_LEFT
	SHIFT_RIGHT_EQUAL
	SHIFT_RIGHT
	SLASH_EQUAL
	SLASH
	STAR_EQUAL
	STAR
	TILDE
	TRIPLE_DOT
	TRIPLE_EQUAL

	// Keywords.
	AND
	BEGIN
	END
	ENSURE
	FALSE
	IF
	NIL
	NOT
	OR
	RESCUE
	SELF
	TRUE
	UNLESS
	UNTIL
	WHILE
	DEFINED

	// Named.
	BACK_REFERENCE
	GLOBAL_VARIABLE
	IDENTIFIER
	INTEGER
	METHOD_IDENTIFIER
	NTH_REFERENCE
)

var kindNames = map[Kind]string{
	EOF:                    "EOF",
	AMPERSAND_EQUAL:        "AMPERSAND_EQUAL",
	AMPERSAND:              "AMPERSAND",
	BANG_EQUAL:             "BANG_EQUAL",
	BANG_TILDE:             "BANG_TILDE",
	BANG:                   "BANG",
	CARET_EQUAL:            "CARET_EQUAL",
	CARET:                  "CARET",
	COLON:                  "COLON",
	COMMA:                  "COMMA",
	COMPARE:                "COMPARE",
	DOUBLE_AMPERSAND_EQUAL: "DOUBLE_AMPERSAND_EQUAL",
	DOUBLE_AMPERSAND:       "DOUBLE_AMPERSAND",
	DOUBLE_DOT:             "DOUBLE_DOT",
	DOUBLE_EQUAL:           "DOUBLE_EQUAL",
	DOUBLE_PIPE_EQUAL:      "DOUBLE_PIPE_EQUAL",
	DOUBLE_PIPE:            "DOUBLE_PIPE",
	DOUBLE_STAR_EQUAL:      "DOUBLE_STAR_EQUAL",
	DOUBLE_STAR:            "DOUBLE_STAR",
	EQUAL_TILDE:            "EQUAL_TILDE",
	EQUAL:                  "EQUAL",
	GREATER_EQUAL:          "GREATER_EQUAL",
	GREATER:                "GREATER",
	LEFT_BRACKET:           "LEFT_BRACKET",
	LEFT_PARENTHESIS:       "LEFT_PARENTHESIS",
	LESS_EQUAL:             "LESS_EQUAL",
	LESS:                   "LESS",
	MINUS_EQUAL:            "MINUS_EQUAL",
	MINUS:                  "MINUS",
	NEWLINE:                "NEWLINE",
	PERCENT_EQUAL:          "PERCENT_EQUAL",
	PERCENT:                "PERCENT",
	PIPE_EQUAL:             "PIPE_EQUAL",
	PIPE:                   "PIPE",
	PLUS_EQUAL:             "PLUS_EQUAL",
	PLUS:                   "PLUS",
	QUESTION_MARK:          "QUESTION_MARK",
	RIGHT_BRACKET:          "RIGHT_BRACKET",
	RIGHT_PARENTHESIS:      "RIGHT_PARENTHESIS",
	SEMICOLON:              "SEMICOLON",
	SHIFT_LEFT_EQUAL:       "SHIFT_LEFT_EQUAL",
	SHIFT_LEFT:             "SHIFT_LEFT",
	SHIFT_RIGHT_EQUAL:      "SHIFT_RIGHT_EQUAL",
	SHIFT_RIGHT:            "SHIFT_RIGHT",
	SLASH_EQUAL:            "SLASH_EQUAL",
	SLASH:                  "SLASH",
	STAR_EQUAL:             "STAR_EQUAL",
	STAR:                   "STAR",
	TILDE:                  "TILDE",
	TRIPLE_DOT:             "TRIPLE_DOT",
	TRIPLE_EQUAL:           "TRIPLE_EQUAL",
	AND:                    "AND",
	BEGIN:                  "BEGIN",
	END:                    "END",
	ENSURE:                 "ENSURE",
	FALSE:                  "FALSE",
	IF:                     "IF",
	NIL:                    "NIL",
	NOT:                    "NOT",
	OR:                     "OR",
	RESCUE:                 "RESCUE",
	SELF:                   "SELF",
	TRUE:                   "TRUE",
	UNLESS:                 "UNLESS",
	UNTIL:                  "UNTIL",
	WHILE:                  "WHILE",
	DEFINED:                "DEFINED",
	BACK_REFERENCE:         "BACK_REFERENCE",
	GLOBAL_VARIABLE:        "GLOBAL_VARIABLE",
	IDENTIFIER:             "IDENTIFIER",
	INTEGER:                "INTEGER",
	METHOD_IDENTIFIER:      "METHOD_IDENTIFIER",
	NTH_REFERENCE:          "NTH_REFERENCE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "???"
}

// Category returns the Ripper-style short name tokenize uses in its output
// lines. It is a small, CLI-facing naming surface, not a full Ripper event
// taxonomy (that mapping is out of scope; see spec.md §1).
func (k Kind) Category() string {
	switch {
	case k == EOF:
		return "???"
	case k >= AND && k <= DEFINED:
		return "kw"
	case k == COMMA:
		return "comma"
	case k == SEMICOLON:
		return "semicolon"
	case k == LEFT_BRACKET:
		return "lbracket"
	case k == RIGHT_BRACKET:
		return "rbracket"
	case k == LEFT_PARENTHESIS:
		return "lparen"
	case k == RIGHT_PARENTHESIS:
		return "rparen"
	case k == BACK_REFERENCE:
		return "backref"
	case k == GLOBAL_VARIABLE, k == NTH_REFERENCE:
		return "gvar"
	case k == INTEGER:
		return "int"
	case k == IDENTIFIER, k == METHOD_IDENTIFIER:
		return "ident"
	case k >= AMPERSAND_EQUAL && k <= TRIPLE_EQUAL:
		return "op"
	default:
		return "???"
	}
}

// keywords maps exact keyword text to its Kind. An identifier only matches
// a keyword when its text is an exact match and no '!'/'?' suffix is
// attached; see lexIdentifier.
var keywords = map[string]Kind{
	"and":     AND,
	"begin":   BEGIN,
	"end":     END,
	"ensure":  ENSURE,
	"false":   FALSE,
	"if":      IF,
	"nil":     NIL,
	"not":     NOT,
	"or":      OR,
	"rescue":  RESCUE,
	"self":    SELF,
	"true":    TRUE,
	"unless":  UNLESS,
	"until":   UNTIL,
	"while":   WHILE,
}

// Keywords returns the recognized keyword spellings in sorted order, for
// tests that want a deterministic iteration order over the keyword table.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name, _ := range util.CanonicalMapIter(keywords) {
		names = append(names, name)
	}
	return names
}

// Token is a span into the source buffer: the byte range [Start, End) and
// the Kind the scanner assigned it. Tokens never copy source text; callers
// slice the buffer themselves when they need the text.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Text returns the token's textual content, a view into source.
func (t Token) Text(source []byte) []byte {
	return source[t.Start:t.End]
}
