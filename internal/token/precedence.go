package token

import "fmt"

// Precedence is the binding strength of an operator. Levels are strictly
// ordered from PrecLowest to PrecBool; a Pratt parser keeps absorbing right-hand
// operands while the next token's level is strictly greater than its
// current threshold.
type Precedence int

const (
	PrecLowest      Precedence = iota
	PrecAssign                 // = += -= *= /= %= |= &= ^=
	PrecRange                  // .. ..=
	PrecOr                     // ||
	PrecAnd                    // &&
	PrecEquals                 // == !=
	PrecLessGreater            // < > <= >=
	PrecBitOr                  // |
	PrecBitXor                 // ^
	PrecBitAnd                 // &
	PrecShift                  // << >>
	PrecSum                    // + -
	PrecProduct                // * / %
	PrecPrefix                 // -x !x ~x &x *x
	PrecCall                   // f(x)
	PrecIndex                  // a[i] a.b
	PrecBool                   // true false
)

var precedenceNames = [...]string{
	PrecLowest:      "Lowest",
	PrecAssign:      "Assign",
	PrecRange:       "Range",
	PrecOr:          "Or",
	PrecAnd:         "And",
	PrecEquals:      "Equals",
	PrecLessGreater: "LessGreater",
	PrecBitOr:       "BitOr",
	PrecBitXor:      "BitXor",
	PrecBitAnd:      "BitAnd",
	PrecShift:       "Shift",
	PrecSum:         "Sum",
	PrecProduct:     "Product",
	PrecPrefix:      "Prefix",
	PrecCall:        "Call",
	PrecIndex:       "Index",
	PrecBool:        "Bool",
}

func (p Precedence) String() string {
	if p >= 0 && int(p) < len(precedenceNames) {
		return precedenceNames[p]
	}
	return fmt.Sprintf("Precedence(%d)", int(p))
}

// Levels returns every precedence level from lowest to highest.
func Levels() []Precedence {
	out := make([]Precedence, 0, len(precedenceNames))
	for p := PrecLowest; p <= PrecBool; p++ {
		out = append(out, p)
	}
	return out
}

// PrecedenceOf returns the infix binding level of a kind. Kinds without a
// binary, assignment or postfix role yield PrecLowest, which tells the parser to
// stop absorbing operands.
func PrecedenceOf(k Kind) Precedence {
	switch k {
	case Assign, PlusAssign, MinusAssign, MulAssign, DivAssign, ModAssign,
		BitOrAssign, BitAndAssign, BitXorAssign:
		return PrecAssign
	case RangeExclusive, RangeInclusive:
		return PrecRange
	case Or:
		return PrecOr
	case And:
		return PrecAnd
	case Eq, NotEq:
		return PrecEquals
	case Lt, Gt, LtEq, GtEq:
		return PrecLessGreater
	case BitOr:
		return PrecBitOr
	case BitXor:
		return PrecBitXor
	case BitAnd:
		return PrecBitAnd
	case Shl, Shr:
		return PrecShift
	case Plus, Minus:
		return PrecSum
	case Star, Slash, Percent:
		return PrecProduct
	case LParen:
		return PrecCall
	case LBracket, Dot:
		return PrecIndex
	default:
		return PrecLowest
	}
}

// Precedence returns the token's infix binding level.
func (t Token) Precedence() Precedence { return PrecedenceOf(t.Kind) }

// IsRightAssoc reports whether a parser should bind the kind right to left.
// Only the assignment group is right-associative; comparisons do not chain.
func (k Kind) IsRightAssoc() bool { return PrecedenceOf(k) == PrecAssign }
