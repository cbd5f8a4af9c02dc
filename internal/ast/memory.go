package ast

import (
	"fmt"

	"github.com/ferrite-lang/ferrite/internal/position"
)

// Low-level memory expressions. They are only meaningful inside an unsafe
// block; enforcing that is left to semantic analysis.

// RawPointerExpression forms a raw pointer from a place expression.
type RawPointerExpression struct {
	Span    position.Span
	Operand Expression
}

func NewRawPointerExpression(span position.Span, operand Expression) *RawPointerExpression {
	return &RawPointerExpression{Span: span, Operand: operand}
}

func (r *RawPointerExpression) GetSpan() position.Span { return r.Span }
func (r *RawPointerExpression) expressionNode()        {}
func (r *RawPointerExpression) String() string         { return "ptr(" + r.Operand.String() + ")" }
func (r *RawPointerExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitRawPointerExpression(r)
}

// AddressOfExpression is &x.
type AddressOfExpression struct {
	Span    position.Span
	Operand Expression
}

func NewAddressOfExpression(span position.Span, operand Expression) *AddressOfExpression {
	return &AddressOfExpression{Span: span, Operand: operand}
}

func (a *AddressOfExpression) GetSpan() position.Span { return a.Span }
func (a *AddressOfExpression) expressionNode()        {}
func (a *AddressOfExpression) String() string         { return "&" + a.Operand.String() }
func (a *AddressOfExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitAddressOfExpression(a)
}

// DereferenceExpression is *p.
type DereferenceExpression struct {
	Span    position.Span
	Operand Expression
}

func NewDereferenceExpression(span position.Span, operand Expression) *DereferenceExpression {
	return &DereferenceExpression{Span: span, Operand: operand}
}

func (d *DereferenceExpression) GetSpan() position.Span { return d.Span }
func (d *DereferenceExpression) expressionNode()        {}
func (d *DereferenceExpression) String() string         { return "*" + d.Operand.String() }
func (d *DereferenceExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitDereferenceExpression(d)
}

// CastExpression is `expr as T`.
type CastExpression struct {
	Span    position.Span
	Operand Expression
	Target  Type
}

func NewCastExpression(span position.Span, operand Expression, target Type) *CastExpression {
	return &CastExpression{Span: span, Operand: operand, Target: target}
}

func (c *CastExpression) GetSpan() position.Span { return c.Span }
func (c *CastExpression) expressionNode()        {}
func (c *CastExpression) String() string {
	return fmt.Sprintf("(%s as %s)", c.Operand, c.Target)
}
func (c *CastExpression) Accept(visitor Visitor) interface{} { return visitor.VisitCastExpression(c) }

// AllocateExpression reserves memory for Target, or for Size elements of it.
type AllocateExpression struct {
	Span   position.Span
	Target Type
	Size   Expression // nil for a single element
}

func NewAllocateExpression(span position.Span, target Type, size Expression) *AllocateExpression {
	return &AllocateExpression{Span: span, Target: target, Size: size}
}

func (a *AllocateExpression) GetSpan() position.Span { return a.Span }
func (a *AllocateExpression) expressionNode()        {}
func (a *AllocateExpression) String() string {
	if a.Size != nil {
		return fmt.Sprintf("alloc<%s>(%s)", a.Target, a.Size)
	}
	return fmt.Sprintf("alloc<%s>()", a.Target)
}
func (a *AllocateExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitAllocateExpression(a)
}

type DeallocateExpression struct {
	Span    position.Span
	Operand Expression
}

func NewDeallocateExpression(span position.Span, operand Expression) *DeallocateExpression {
	return &DeallocateExpression{Span: span, Operand: operand}
}

func (d *DeallocateExpression) GetSpan() position.Span { return d.Span }
func (d *DeallocateExpression) expressionNode()        {}
func (d *DeallocateExpression) String() string         { return "dealloc(" + d.Operand.String() + ")" }
func (d *DeallocateExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitDeallocateExpression(d)
}

// NullPointerExpression is a null pointer, optionally typed.
type NullPointerExpression struct {
	Span   position.Span
	Target Type // nil when untyped
}

func NewNullPointerExpression(span position.Span, target Type) *NullPointerExpression {
	return &NullPointerExpression{Span: span, Target: target}
}

func (n *NullPointerExpression) GetSpan() position.Span { return n.Span }
func (n *NullPointerExpression) expressionNode()        {}
func (n *NullPointerExpression) String() string {
	if n.Target != nil {
		return fmt.Sprintf("null<%s>", n.Target)
	}
	return "null_ptr"
}
func (n *NullPointerExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitNullPointerExpression(n)
}

type SizeOfExpression struct {
	Span    position.Span
	Operand Expression
}

func NewSizeOfExpression(span position.Span, operand Expression) *SizeOfExpression {
	return &SizeOfExpression{Span: span, Operand: operand}
}

func (s *SizeOfExpression) GetSpan() position.Span { return s.Span }
func (s *SizeOfExpression) expressionNode()        {}
func (s *SizeOfExpression) String() string         { return "sizeof(" + s.Operand.String() + ")" }
func (s *SizeOfExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitSizeOfExpression(s)
}

type TypeOfExpression struct {
	Span    position.Span
	Operand Expression
}

func NewTypeOfExpression(span position.Span, operand Expression) *TypeOfExpression {
	return &TypeOfExpression{Span: span, Operand: operand}
}

func (t *TypeOfExpression) GetSpan() position.Span { return t.Span }
func (t *TypeOfExpression) expressionNode()        {}
func (t *TypeOfExpression) String() string         { return "typeof(" + t.Operand.String() + ")" }
func (t *TypeOfExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitTypeOfExpression(t)
}

// TypeCheckExpression tests at runtime whether Operand has type Target.
type TypeCheckExpression struct {
	Span    position.Span
	Operand Expression
	Target  Type
}

func NewTypeCheckExpression(span position.Span, operand Expression, target Type) *TypeCheckExpression {
	return &TypeCheckExpression{Span: span, Operand: operand, Target: target}
}

func (t *TypeCheckExpression) GetSpan() position.Span { return t.Span }
func (t *TypeCheckExpression) expressionNode()        {}
func (t *TypeCheckExpression) String() string {
	return fmt.Sprintf("(%s is %s)", t.Operand, t.Target)
}
func (t *TypeCheckExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitTypeCheckExpression(t)
}
