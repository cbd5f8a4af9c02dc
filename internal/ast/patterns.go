package ast

import (
	"fmt"
	"strings"

	"github.com/ferrite-lang/ferrite/internal/position"
)

// MatchArm is one arm of a match statement. When Guard is present and
// evaluates to false, selection falls through to the next arm exactly as if
// the pattern had not matched.
type MatchArm struct {
	Span    position.Span
	Pattern Pattern
	Guard   Expression // nil when unguarded
	Body    Statement
}

func NewMatchArm(span position.Span, pattern Pattern, guard Expression, body Statement) *MatchArm {
	return &MatchArm{Span: span, Pattern: pattern, Guard: guard, Body: body}
}

func (a *MatchArm) GetSpan() position.Span { return a.Span }
func (a *MatchArm) String() string {
	if a.Guard != nil {
		return fmt.Sprintf("%s if %s => %s", a.Pattern, a.Guard, a.Body)
	}
	return fmt.Sprintf("%s => %s", a.Pattern, a.Body)
}
func (a *MatchArm) Accept(visitor Visitor) interface{} { return visitor.VisitMatchArm(a) }

// LiteralPattern matches a value equal to a literal expression.
type LiteralPattern struct {
	Span  position.Span
	Value Expression
}

func NewLiteralPattern(span position.Span, value Expression) *LiteralPattern {
	return &LiteralPattern{Span: span, Value: value}
}

func (p *LiteralPattern) GetSpan() position.Span             { return p.Span }
func (p *LiteralPattern) patternNode()                       {}
func (p *LiteralPattern) String() string                     { return p.Value.String() }
func (p *LiteralPattern) Accept(visitor Visitor) interface{} { return visitor.VisitLiteralPattern(p) }

// IdentifierPattern binds the matched value to a name.
type IdentifierPattern struct {
	Span position.Span
	Name *Identifier
}

func NewIdentifierPattern(span position.Span, name *Identifier) *IdentifierPattern {
	return &IdentifierPattern{Span: span, Name: name}
}

func (p *IdentifierPattern) GetSpan() position.Span { return p.Span }
func (p *IdentifierPattern) patternNode()           {}
func (p *IdentifierPattern) String() string         { return p.Name.String() }
func (p *IdentifierPattern) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifierPattern(p)
}

type WildcardPattern struct {
	Span position.Span
}

func NewWildcardPattern(span position.Span) *WildcardPattern { return &WildcardPattern{Span: span} }

func (p *WildcardPattern) GetSpan() position.Span             { return p.Span }
func (p *WildcardPattern) patternNode()                       {}
func (p *WildcardPattern) String() string                     { return "_" }
func (p *WildcardPattern) Accept(visitor Visitor) interface{} { return visitor.VisitWildcardPattern(p) }

// DestructureKind says what shape a DestructurePattern takes apart. It is a
// closed set: *StructDestructure, *TupleDestructure, *EnumDestructure.
type DestructureKind interface {
	String() string
	destructureKind()
}

// StructDestructure takes apart a named struct.
type StructDestructure struct {
	Name *Identifier
}

func (k *StructDestructure) String() string   { return k.Name.String() }
func (k *StructDestructure) destructureKind() {}

type TupleDestructure struct{}

func (k *TupleDestructure) String() string   { return "" }
func (k *TupleDestructure) destructureKind() {}

// EnumDestructure takes apart one variant of an enum, e.g. Shape::Circle.
type EnumDestructure struct {
	Enum    *Identifier
	Variant *Identifier
}

func (k *EnumDestructure) String() string   { return k.Enum.String() + "::" + k.Variant.String() }
func (k *EnumDestructure) destructureKind() {}

// FieldPattern destructures one field. A nil Pattern binds the field to a
// variable of the same name.
type FieldPattern struct {
	Span    position.Span
	Name    *Identifier
	Pattern Pattern
}

func NewFieldPattern(span position.Span, name *Identifier, pattern Pattern) *FieldPattern {
	return &FieldPattern{Span: span, Name: name, Pattern: pattern}
}

func (f *FieldPattern) GetSpan() position.Span { return f.Span }
func (f *FieldPattern) String() string {
	if f.Pattern == nil {
		return f.Name.String()
	}
	return f.Name.String() + ": " + f.Pattern.String()
}
func (f *FieldPattern) Accept(visitor Visitor) interface{} { return visitor.VisitFieldPattern(f) }

type DestructurePattern struct {
	Span   position.Span
	Kind   DestructureKind
	Fields []*FieldPattern
}

func NewDestructurePattern(span position.Span, kind DestructureKind, fields ...*FieldPattern) *DestructurePattern {
	return &DestructurePattern{Span: span, Kind: kind, Fields: clone(fields)}
}

func (p *DestructurePattern) GetSpan() position.Span { return p.Span }
func (p *DestructurePattern) patternNode()           {}
func (p *DestructurePattern) String() string {
	if _, ok := p.Kind.(*TupleDestructure); ok {
		return "(" + joinNodes(p.Fields, ", ") + ")"
	}
	return fmt.Sprintf("%s { %s }", p.Kind, joinNodes(p.Fields, ", "))
}
func (p *DestructurePattern) Accept(visitor Visitor) interface{} {
	return visitor.VisitDestructurePattern(p)
}

// RangePattern matches Low..=High inclusive.
type RangePattern struct {
	Span position.Span
	Low  Expression
	High Expression
}

func NewRangePattern(span position.Span, low, high Expression) *RangePattern {
	return &RangePattern{Span: span, Low: low, High: high}
}

func (p *RangePattern) GetSpan() position.Span             { return p.Span }
func (p *RangePattern) patternNode()                       {}
func (p *RangePattern) String() string                     { return fmt.Sprintf("%s..=%s", p.Low, p.High) }
func (p *RangePattern) Accept(visitor Visitor) interface{} { return visitor.VisitRangePattern(p) }

// OrPattern matches if any alternative matches; the first match wins.
type OrPattern struct {
	Span         position.Span
	Alternatives []Pattern
}

func NewOrPattern(span position.Span, alternatives ...Pattern) *OrPattern {
	return &OrPattern{Span: span, Alternatives: clone(alternatives)}
}

func (p *OrPattern) GetSpan() position.Span { return p.Span }
func (p *OrPattern) patternNode()           {}
func (p *OrPattern) String() string {
	parts := make([]string, 0, len(p.Alternatives))
	for _, alt := range p.Alternatives {
		parts = append(parts, alt.String())
	}
	return strings.Join(parts, " | ")
}
func (p *OrPattern) Accept(visitor Visitor) interface{} { return visitor.VisitOrPattern(p) }
