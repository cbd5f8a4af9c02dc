package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ferrite-lang/ferrite/internal/position"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// ===== Literals =====

// Identifier represents a name: a variable reference, or the name part of a
// declaration, field, parameter or path segment.
type Identifier struct {
	Span  position.Span
	Value string
}

func NewIdentifier(span position.Span, value string) *Identifier {
	return &Identifier{Span: span, Value: value}
}

// IdentifierFrom builds an identifier from an Ident token, keeping its position.
func IdentifierFrom(tok token.Token) *Identifier {
	return NewIdentifier(tok.Span(), tok.Literal)
}

func (i *Identifier) GetSpan() position.Span             { return i.Span }
func (i *Identifier) expressionNode()                    {}
func (i *Identifier) String() string                     { return i.Value }
func (i *Identifier) Accept(visitor Visitor) interface{} { return visitor.VisitIdentifier(i) }

// NumberLiteral is an integer or floating point literal.
type NumberLiteral struct {
	Span  position.Span
	Value float64
	Raw   string // source text
}

func NewNumberLiteral(span position.Span, value float64, raw string) *NumberLiteral {
	return &NumberLiteral{Span: span, Value: value, Raw: raw}
}

func (n *NumberLiteral) GetSpan() position.Span { return n.Span }
func (n *NumberLiteral) expressionNode()        {}
func (n *NumberLiteral) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}
func (n *NumberLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitNumberLiteral(n) }

type BooleanLiteral struct {
	Span  position.Span
	Value bool
}

func NewBooleanLiteral(span position.Span, value bool) *BooleanLiteral {
	return &BooleanLiteral{Span: span, Value: value}
}

func (b *BooleanLiteral) GetSpan() position.Span             { return b.Span }
func (b *BooleanLiteral) expressionNode()                    {}
func (b *BooleanLiteral) String() string                     { return strconv.FormatBool(b.Value) }
func (b *BooleanLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitBooleanLiteral(b) }

type StringLiteral struct {
	Span  position.Span
	Value string
}

func NewStringLiteral(span position.Span, value string) *StringLiteral {
	return &StringLiteral{Span: span, Value: value}
}

func (s *StringLiteral) GetSpan() position.Span             { return s.Span }
func (s *StringLiteral) expressionNode()                    {}
func (s *StringLiteral) String() string                     { return strconv.Quote(s.Value) }
func (s *StringLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitStringLiteral(s) }

type NullLiteral struct {
	Span position.Span
}

func NewNullLiteral(span position.Span) *NullLiteral { return &NullLiteral{Span: span} }

func (n *NullLiteral) GetSpan() position.Span             { return n.Span }
func (n *NullLiteral) expressionNode()                    {}
func (n *NullLiteral) String() string                     { return "null" }
func (n *NullLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitNullLiteral(n) }

// SelfExpression is the `self` receiver reference.
type SelfExpression struct {
	Span position.Span
}

func NewSelfExpression(span position.Span) *SelfExpression { return &SelfExpression{Span: span} }

func (s *SelfExpression) GetSpan() position.Span             { return s.Span }
func (s *SelfExpression) expressionNode()                    {}
func (s *SelfExpression) String() string                     { return "self" }
func (s *SelfExpression) Accept(visitor Visitor) interface{} { return visitor.VisitSelfExpression(s) }

// ObjectProperty is one `key: value` entry of an object literal.
type ObjectProperty struct {
	Span  position.Span
	Key   *Identifier
	Value Expression
}

func NewObjectProperty(span position.Span, key *Identifier, value Expression) *ObjectProperty {
	return &ObjectProperty{Span: span, Key: key, Value: value}
}

func (p *ObjectProperty) GetSpan() position.Span { return p.Span }
func (p *ObjectProperty) String() string         { return p.Key.String() + ": " + p.Value.String() }
func (p *ObjectProperty) Accept(visitor Visitor) interface{} {
	return visitor.VisitObjectProperty(p)
}

// ObjectLiteral is a composite literal with named properties.
type ObjectLiteral struct {
	Span       position.Span
	Properties []*ObjectProperty
}

func NewObjectLiteral(span position.Span, properties ...*ObjectProperty) *ObjectLiteral {
	return &ObjectLiteral{Span: span, Properties: clone(properties)}
}

func (o *ObjectLiteral) GetSpan() position.Span { return o.Span }
func (o *ObjectLiteral) expressionNode()        {}
func (o *ObjectLiteral) String() string {
	if len(o.Properties) == 0 {
		return "{}"
	}
	return "{ " + joinNodes(o.Properties, ", ") + " }"
}
func (o *ObjectLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitObjectLiteral(o) }

type ArrayLiteral struct {
	Span     position.Span
	Elements []Expression
}

func NewArrayLiteral(span position.Span, elements ...Expression) *ArrayLiteral {
	return &ArrayLiteral{Span: span, Elements: clone(elements)}
}

func (a *ArrayLiteral) GetSpan() position.Span             { return a.Span }
func (a *ArrayLiteral) expressionNode()                    {}
func (a *ArrayLiteral) String() string                     { return "[" + joinNodes(a.Elements, ", ") + "]" }
func (a *ArrayLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitArrayLiteral(a) }

// ===== Operations =====

// OperatorKind maps operator text carried by an expression back to the token
// kind the scanner classified it as. Ambiguous spellings (`&`, `*`) resolve
// to their binary kinds.
func OperatorKind(op string) (token.Kind, bool) {
	k, ok := token.LookupSymbol(op)
	if !ok || !k.IsOperator() {
		return token.Illegal, false
	}
	return k, true
}

// UnaryExpression is a prefix operation such as -x, !x or ~x.
type UnaryExpression struct {
	Span     position.Span
	Operator string
	Operand  Expression
}

func NewUnaryExpression(span position.Span, operator string, operand Expression) *UnaryExpression {
	return &UnaryExpression{Span: span, Operator: operator, Operand: operand}
}

func (u *UnaryExpression) GetSpan() position.Span { return u.Span }
func (u *UnaryExpression) expressionNode()        {}
func (u *UnaryExpression) String() string         { return fmt.Sprintf("(%s%s)", u.Operator, u.Operand) }
func (u *UnaryExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryExpression(u)
}

// UpdateExpression applies an in-place operator to a named variable.
type UpdateExpression struct {
	Span     position.Span
	Operator string
	Target   *Identifier
}

func NewUpdateExpression(span position.Span, operator string, target *Identifier) *UpdateExpression {
	return &UpdateExpression{Span: span, Operator: operator, Target: target}
}

func (u *UpdateExpression) GetSpan() position.Span { return u.Span }
func (u *UpdateExpression) expressionNode()        {}
func (u *UpdateExpression) String() string         { return u.Target.String() + u.Operator }
func (u *UpdateExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitUpdateExpression(u)
}

// BinaryExpression represents infix operations including assignment.
type BinaryExpression struct {
	Span     position.Span
	Left     Expression
	Operator string
	Right    Expression
}

func NewBinaryExpression(span position.Span, left Expression, operator string, right Expression) *BinaryExpression {
	return &BinaryExpression{Span: span, Left: left, Operator: operator, Right: right}
}

// Precedence returns the binding level of the operator, or PrecLowest when
// the text is not a known operator.
func (b *BinaryExpression) Precedence() token.Precedence {
	k, ok := OperatorKind(b.Operator)
	if !ok {
		return token.PrecLowest
	}
	return token.PrecedenceOf(k)
}

func (b *BinaryExpression) GetSpan() position.Span { return b.Span }
func (b *BinaryExpression) expressionNode()        {}
func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}
func (b *BinaryExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpression(b)
}

// ===== Functions =====

// FunctionParameter is a named parameter with an optional default value.
type FunctionParameter struct {
	Span    position.Span
	Name    *Identifier
	Default Expression // nil when absent
}

func NewFunctionParameter(span position.Span, name *Identifier, def Expression) *FunctionParameter {
	return &FunctionParameter{Span: span, Name: name, Default: def}
}

func (p *FunctionParameter) GetSpan() position.Span { return p.Span }
func (p *FunctionParameter) String() string {
	if p.Default != nil {
		return p.Name.String() + " = " + p.Default.String()
	}
	return p.Name.String()
}
func (p *FunctionParameter) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionParameter(p)
}

// FunctionLiteral is an anonymous function with optional lifetime parameters.
type FunctionLiteral struct {
	Span       position.Span
	Parameters []*FunctionParameter
	Body       *BlockStatement
	Lifetimes  []Lifetime
}

func NewFunctionLiteral(span position.Span, params []*FunctionParameter, body *BlockStatement, lifetimes []Lifetime) *FunctionLiteral {
	return &FunctionLiteral{Span: span, Parameters: clone(params), Body: body, Lifetimes: clone(lifetimes)}
}

func (f *FunctionLiteral) GetSpan() position.Span { return f.Span }
func (f *FunctionLiteral) expressionNode()        {}
func (f *FunctionLiteral) String() string {
	var sb strings.Builder
	sb.WriteString("fn")
	if len(f.Lifetimes) > 0 {
		names := make([]string, 0, len(f.Lifetimes))
		for _, l := range f.Lifetimes {
			names = append(names, l.String())
		}
		sb.WriteString("<" + strings.Join(names, ", ") + ">")
	}
	sb.WriteString("(" + joinNodes(f.Parameters, ", ") + ") ")
	sb.WriteString(f.Body.String())
	return sb.String()
}
func (f *FunctionLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionLiteral(f)
}

type CallExpression struct {
	Span      position.Span
	Callee    Expression
	Arguments []Expression
}

func NewCallExpression(span position.Span, callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Span: span, Callee: callee, Arguments: clone(args)}
}

func (c *CallExpression) GetSpan() position.Span { return c.Span }
func (c *CallExpression) expressionNode()        {}
func (c *CallExpression) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee, joinNodes(c.Arguments, ", "))
}
func (c *CallExpression) Accept(visitor Visitor) interface{} { return visitor.VisitCallExpression(c) }

// MemberExpression is object.property. Both sides are expressions so chained
// and computed accesses share one shape.
type MemberExpression struct {
	Span     position.Span
	Object   Expression
	Property Expression
}

func NewMemberExpression(span position.Span, object, property Expression) *MemberExpression {
	return &MemberExpression{Span: span, Object: object, Property: property}
}

func (m *MemberExpression) GetSpan() position.Span { return m.Span }
func (m *MemberExpression) expressionNode()        {}
func (m *MemberExpression) String() string {
	if _, ok := m.Property.(*Identifier); ok {
		return fmt.Sprintf("%s.%s", m.Object, m.Property)
	}
	return fmt.Sprintf("%s[%s]", m.Object, m.Property)
}
func (m *MemberExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitMemberExpression(m)
}

// ===== Option / Result sentinels =====

// TryExpression is the postfix `?` propagation of an Err or None.
type TryExpression struct {
	Span    position.Span
	Operand Expression
}

func NewTryExpression(span position.Span, operand Expression) *TryExpression {
	return &TryExpression{Span: span, Operand: operand}
}

func (t *TryExpression) GetSpan() position.Span             { return t.Span }
func (t *TryExpression) expressionNode()                    {}
func (t *TryExpression) String() string                     { return t.Operand.String() + "?" }
func (t *TryExpression) Accept(visitor Visitor) interface{} { return visitor.VisitTryExpression(t) }

type OkExpression struct {
	Span  position.Span
	Value Expression
}

func NewOkExpression(span position.Span, value Expression) *OkExpression {
	return &OkExpression{Span: span, Value: value}
}

func (o *OkExpression) GetSpan() position.Span             { return o.Span }
func (o *OkExpression) expressionNode()                    {}
func (o *OkExpression) String() string                     { return "Ok(" + o.Value.String() + ")" }
func (o *OkExpression) Accept(visitor Visitor) interface{} { return visitor.VisitOkExpression(o) }

type ErrExpression struct {
	Span  position.Span
	Value Expression
}

func NewErrExpression(span position.Span, value Expression) *ErrExpression {
	return &ErrExpression{Span: span, Value: value}
}

func (e *ErrExpression) GetSpan() position.Span             { return e.Span }
func (e *ErrExpression) expressionNode()                    {}
func (e *ErrExpression) String() string                     { return "Err(" + e.Value.String() + ")" }
func (e *ErrExpression) Accept(visitor Visitor) interface{} { return visitor.VisitErrExpression(e) }

type SomeExpression struct {
	Span  position.Span
	Value Expression
}

func NewSomeExpression(span position.Span, value Expression) *SomeExpression {
	return &SomeExpression{Span: span, Value: value}
}

func (s *SomeExpression) GetSpan() position.Span             { return s.Span }
func (s *SomeExpression) expressionNode()                    {}
func (s *SomeExpression) String() string                     { return "Some(" + s.Value.String() + ")" }
func (s *SomeExpression) Accept(visitor Visitor) interface{} { return visitor.VisitSomeExpression(s) }

type NoneExpression struct {
	Span position.Span
}

func NewNoneExpression(span position.Span) *NoneExpression { return &NoneExpression{Span: span} }

func (n *NoneExpression) GetSpan() position.Span             { return n.Span }
func (n *NoneExpression) expressionNode()                    {}
func (n *NoneExpression) String() string                     { return "None" }
func (n *NoneExpression) Accept(visitor Visitor) interface{} { return visitor.VisitNoneExpression(n) }
