// Package token defines the closed token vocabulary of the Ferrite language:
// the kinds a scanner may emit, keyword classification, and the binding
// precedence an operator-precedence parser uses to nest expressions.
package token

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/ferrite-lang/ferrite/internal/position"
)

// Kind represents the type of a token
type Kind int

// String returns a string representation of the token kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Token kinds
const (
	// Special tokens
	Illegal Kind = iota
	EOF

	literalBegin
	// Identifier and literals; the raw text travels in Token.Literal
	Ident
	Int
	Float
	Char
	String
	literalEnd

	operatorBegin
	// Operators
	Assign  // =
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	BitOr   // |
	BitAnd  // &
	BitXor  // ^
	BitNot  // ~

	// Compound assignment
	PlusAssign   // +=
	MinusAssign  // -=
	MulAssign    // *=
	DivAssign    // /=
	ModAssign    // %=
	BitOrAssign  // |=
	BitAndAssign // &=
	BitXorAssign // ^=

	// Comparison
	Eq    // ==
	NotEq // !=
	Lt    // <
	Gt    // >
	LtEq  // <=
	GtEq  // >=

	// Logical
	And // &&
	Or  // ||
	Not // !

	// Shifts
	Shl // <<
	Shr // >>

	// Pointer related prefix forms
	Ampersand // & in address-of position
	Deref     // * in dereference position
	Arrow     // ->

	RangeExclusive // ..
	RangeInclusive // ..=
	operatorEnd

	// Grouping
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]

	// Delimiters
	Semicolon   // ;
	Colon       // :
	DoubleColon // ::
	Comma       // ,
	Dot         // .

	FatArrow // =>
	Question // ?

	keywordBegin
	Let
	Const
	If
	Else
	While
	For
	Loop
	Break
	Continue
	Return
	Fn
	Struct
	Enum
	Trait
	Impl
	Mod
	Use
	Pub
	SelfValue // self
	SelfType  // Self
	As
	Type
	Where
	Unsafe
	Mut
	Static
	Extern
	Sizeof
	Match
	True
	False
	Null
	keywordEnd
)

var kindNames = [...]string{
	Illegal: "ILLEGAL",
	EOF:     "EOF",

	Ident:  "IDENT",
	Int:    "INT",
	Float:  "FLOAT",
	Char:   "CHAR",
	String: "STRING",

	Assign:  "=",
	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Percent: "%",
	BitOr:   "|",
	BitAnd:  "&",
	BitXor:  "^",
	BitNot:  "~",

	PlusAssign:   "+=",
	MinusAssign:  "-=",
	MulAssign:    "*=",
	DivAssign:    "/=",
	ModAssign:    "%=",
	BitOrAssign:  "|=",
	BitAndAssign: "&=",
	BitXorAssign: "^=",

	Eq:    "==",
	NotEq: "!=",
	Lt:    "<",
	Gt:    ">",
	LtEq:  "<=",
	GtEq:  ">=",

	And: "&&",
	Or:  "||",
	Not: "!",

	Shl: "<<",
	Shr: ">>",

	Ampersand: "ADDR_OF",
	Deref:     "DEREF",
	Arrow:     "->",

	LParen:   "(",
	RParen:   ")",
	LBrace:   "{",
	RBrace:   "}",
	LBracket: "[",
	RBracket: "]",

	Semicolon:   ";",
	Colon:       ":",
	DoubleColon: "::",
	Comma:       ",",
	Dot:         ".",

	RangeExclusive: "..",
	RangeInclusive: "..=",
	FatArrow:       "=>",
	Question:       "?",

	Let:       "let",
	Const:     "const",
	If:        "if",
	Else:      "else",
	While:     "while",
	For:       "for",
	Loop:      "loop",
	Break:     "break",
	Continue:  "continue",
	Return:    "return",
	Fn:        "fn",
	Struct:    "struct",
	Enum:      "enum",
	Trait:     "trait",
	Impl:      "impl",
	Mod:       "mod",
	Use:       "use",
	Pub:       "pub",
	SelfValue: "self",
	SelfType:  "Self",
	As:        "as",
	Type:      "type",
	Where:     "where",
	Unsafe:    "unsafe",
	Mut:       "mut",
	Static:    "static",
	Extern:    "extern",
	Sizeof:    "sizeof",
	Match:     "match",
	True:      "true",
	False:     "false",
	Null:      "null",
}

// keywords maps keyword spellings to their kinds
var keywords map[string]Kind

// symbols maps operator and delimiter spellings to their kinds
var symbols map[string]Kind

func init() {
	keywords = make(map[string]Kind, keywordEnd-keywordBegin-1)
	for k := keywordBegin + 1; k < keywordEnd; k++ {
		keywords[kindNames[k]] = k
	}

	symbols = make(map[string]Kind)
	for k := operatorBegin + 1; k < keywordBegin; k++ {
		if k == operatorEnd || k == Ampersand || k == Deref {
			continue
		}
		symbols[kindNames[k]] = k
	}
}

// Lookup classifies an identifier-shaped lexeme. Keyword spellings map to
// their keyword kind; every other lexeme is an Ident. Matching is
// case-sensitive and never consults surrounding context.
func Lookup(lexeme string) Kind {
	if k, ok := keywords[lexeme]; ok {
		return k
	}
	return Ident
}

// LookupSymbol resolves an operator or delimiter spelling. The prefix-only
// kinds Ampersand and Deref share their spelling with BitAnd and Star and are
// never returned; the parser assigns them from context.
func LookupSymbol(spelling string) (Kind, bool) {
	k, ok := symbols[spelling]
	return k, ok
}

// Keywords returns every keyword spelling in lexical order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for s := range keywords {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Kinds returns every kind a scanner may emit, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := Illegal; k < keywordEnd; k++ {
		if kindNames[k] != "" {
			out = append(out, k)
		}
	}
	return out
}

// IsLiteral reports whether the kind carries identifier or literal text.
func (k Kind) IsLiteral() bool { return literalBegin < k && k < literalEnd }

// IsOperator reports whether the kind is an operator.
func (k Kind) IsOperator() bool { return operatorBegin < k && k < operatorEnd }

// IsKeyword reports whether the kind is a keyword.
func (k Kind) IsKeyword() bool { return keywordBegin < k && k < keywordEnd }

// Token represents a lexical token with position information.
// Tokens are values; nothing in the front end mutates one after the
// scanner produces it.
type Token struct {
	Kind    Kind
	Literal string
	Line    int // 1-based line number
	Column  int // 1-based column number
}

// New creates a token at the given source coordinates.
func New(kind Kind, literal string, line, column int) Token {
	return Token{Kind: kind, Literal: literal, Line: line, Column: column}
}

// Classify builds the token for an identifier-shaped lexeme.
func Classify(lexeme string, line, column int) Token {
	return New(Lookup(lexeme), lexeme, line, column)
}

// Pos returns the token's starting position.
func (t Token) Pos() position.Position {
	return position.At(t.Line, t.Column)
}

// Span returns the source span covered by the token's literal text.
// Columns count runes, not bytes.
func (t Token) Span() position.Span {
	return position.SpanOf(t.Pos(), utf8.RuneCountInString(t.Literal))
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Kind: %s, Literal: %q, Line: %d, Column: %d}",
		t.Kind, t.Literal, t.Line, t.Column)
}
