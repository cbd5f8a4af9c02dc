package ast

import (
	"fmt"
	"strings"

	"github.com/ferrite-lang/ferrite/internal/position"
)

// PrimitiveKind enumerates the built-in scalar types and unit.
type PrimitiveKind int

const (
	I8 PrimitiveKind = iota
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
	Bool
	Char
	Str
	Unit
)

var primitiveNames = [...]string{
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128",
	F32: "f32", F64: "f64",
	Bool: "bool", Char: "char", Str: "String", Unit: "()",
}

func (k PrimitiveKind) String() string {
	if k >= 0 && int(k) < len(primitiveNames) {
		return primitiveNames[k]
	}
	return fmt.Sprintf("PrimitiveKind(%d)", int(k))
}

// IsInteger reports whether the kind is a fixed-width integer.
func (k PrimitiveKind) IsInteger() bool { return k >= I8 && k <= U128 }

// IsSigned reports whether the kind is a signed integer.
func (k PrimitiveKind) IsSigned() bool { return k >= I8 && k <= I128 }

// IsFloat reports whether the kind is a floating point type.
func (k PrimitiveKind) IsFloat() bool { return k == F32 || k == F64 }

// LookupPrimitive resolves a primitive type spelling such as "u32".
func LookupPrimitive(name string) (PrimitiveKind, bool) {
	for k, n := range primitiveNames {
		if n == name {
			return PrimitiveKind(k), true
		}
	}
	return 0, false
}

type PrimitiveType struct {
	Span position.Span
	Kind PrimitiveKind
}

func NewPrimitiveType(span position.Span, kind PrimitiveKind) *PrimitiveType {
	return &PrimitiveType{Span: span, Kind: kind}
}

func (t *PrimitiveType) GetSpan() position.Span             { return t.Span }
func (t *PrimitiveType) typeNode()                          {}
func (t *PrimitiveType) String() string                     { return t.Kind.String() }
func (t *PrimitiveType) Accept(visitor Visitor) interface{} { return visitor.VisitPrimitiveType(t) }

// FunctionType is fn(T, U) -> V.
type FunctionType struct {
	Span   position.Span
	Params []Type
	Return Type
}

func NewFunctionType(span position.Span, params []Type, ret Type) *FunctionType {
	return &FunctionType{Span: span, Params: clone(params), Return: ret}
}

func (t *FunctionType) GetSpan() position.Span { return t.Span }
func (t *FunctionType) typeNode()              {}
func (t *FunctionType) String() string {
	return fmt.Sprintf("fn(%s) -> %s", joinNodes(t.Params, ", "), t.Return)
}
func (t *FunctionType) Accept(visitor Visitor) interface{} { return visitor.VisitFunctionType(t) }

// StructType refers to a declared struct by name.
type StructType struct {
	Span position.Span
	Name *Identifier
}

func NewStructType(span position.Span, name *Identifier) *StructType {
	return &StructType{Span: span, Name: name}
}

func (t *StructType) GetSpan() position.Span             { return t.Span }
func (t *StructType) typeNode()                          {}
func (t *StructType) String() string                     { return t.Name.String() }
func (t *StructType) Accept(visitor Visitor) interface{} { return visitor.VisitStructType(t) }

// EnumType refers to a declared enum by name.
type EnumType struct {
	Span position.Span
	Name *Identifier
}

func NewEnumType(span position.Span, name *Identifier) *EnumType {
	return &EnumType{Span: span, Name: name}
}

func (t *EnumType) GetSpan() position.Span             { return t.Span }
func (t *EnumType) typeNode()                          {}
func (t *EnumType) String() string                     { return t.Name.String() }
func (t *EnumType) Accept(visitor Visitor) interface{} { return visitor.VisitEnumType(t) }

// ArrayType is [T; N], or [T; _] when the length is not known.
type ArrayType struct {
	Span position.Span
	Elem Type
	Len  *int // nil when unknown
}

func NewArrayType(span position.Span, elem Type, length *int) *ArrayType {
	if length != nil {
		n := *length
		length = &n
	}
	return &ArrayType{Span: span, Elem: elem, Len: length}
}

func (t *ArrayType) GetSpan() position.Span { return t.Span }
func (t *ArrayType) typeNode()              {}
func (t *ArrayType) String() string {
	if t.Len == nil {
		return fmt.Sprintf("[%s; _]", t.Elem)
	}
	return fmt.Sprintf("[%s; %d]", t.Elem, *t.Len)
}
func (t *ArrayType) Accept(visitor Visitor) interface{} { return visitor.VisitArrayType(t) }

type SliceType struct {
	Span position.Span
	Elem Type
}

func NewSliceType(span position.Span, elem Type) *SliceType {
	return &SliceType{Span: span, Elem: elem}
}

func (t *SliceType) GetSpan() position.Span             { return t.Span }
func (t *SliceType) typeNode()                          {}
func (t *SliceType) String() string                     { return "[" + t.Elem.String() + "]" }
func (t *SliceType) Accept(visitor Visitor) interface{} { return visitor.VisitSliceType(t) }

// RawPointerType is *const T or *mut T.
type RawPointerType struct {
	Span       position.Span
	Elem       Type
	Mutability Mutability
}

func NewRawPointerType(span position.Span, elem Type, mutability Mutability) *RawPointerType {
	return &RawPointerType{Span: span, Elem: elem, Mutability: mutability}
}

func (t *RawPointerType) GetSpan() position.Span { return t.Span }
func (t *RawPointerType) typeNode()              {}
func (t *RawPointerType) String() string {
	return fmt.Sprintf("*%s %s", t.Mutability, t.Elem)
}
func (t *RawPointerType) Accept(visitor Visitor) interface{} { return visitor.VisitRawPointerType(t) }

// ReferenceType is &T or &mut T.
type ReferenceType struct {
	Span       position.Span
	Elem       Type
	Mutability Mutability
}

func NewReferenceType(span position.Span, elem Type, mutability Mutability) *ReferenceType {
	return &ReferenceType{Span: span, Elem: elem, Mutability: mutability}
}

func (t *ReferenceType) GetSpan() position.Span { return t.Span }
func (t *ReferenceType) typeNode()              {}
func (t *ReferenceType) String() string {
	if t.Mutability == Mut {
		return "&mut " + t.Elem.String()
	}
	return "&" + t.Elem.String()
}
func (t *ReferenceType) Accept(visitor Visitor) interface{} { return visitor.VisitReferenceType(t) }

// LifetimeReferenceType is a reference annotated with lifetimes, &'a T or
// &'a mut T. Lifetimes and mutability are fixed by the parser.
type LifetimeReferenceType struct {
	Span       position.Span
	Elem       Type
	Mutability Mutability
	Lifetimes  []Lifetime
}

func NewLifetimeReferenceType(span position.Span, elem Type, mutability Mutability, lifetimes ...Lifetime) *LifetimeReferenceType {
	return &LifetimeReferenceType{Span: span, Elem: elem, Mutability: mutability, Lifetimes: clone(lifetimes)}
}

func (t *LifetimeReferenceType) GetSpan() position.Span { return t.Span }
func (t *LifetimeReferenceType) typeNode()              {}
func (t *LifetimeReferenceType) String() string {
	parts := make([]string, 0, len(t.Lifetimes)+2)
	for _, l := range t.Lifetimes {
		parts = append(parts, l.String())
	}
	if t.Mutability == Mut {
		parts = append(parts, "mut")
	}
	parts = append(parts, t.Elem.String())
	return "&" + strings.Join(parts, " ")
}
func (t *LifetimeReferenceType) Accept(visitor Visitor) interface{} {
	return visitor.VisitLifetimeReferenceType(t)
}

// NamedType is a type referenced by name that is not yet known to be a
// struct or enum.
type NamedType struct {
	Span position.Span
	Name *Identifier
}

func NewNamedType(span position.Span, name *Identifier) *NamedType {
	return &NamedType{Span: span, Name: name}
}

func (t *NamedType) GetSpan() position.Span             { return t.Span }
func (t *NamedType) typeNode()                          {}
func (t *NamedType) String() string                     { return t.Name.String() }
func (t *NamedType) Accept(visitor Visitor) interface{} { return visitor.VisitNamedType(t) }

type ResultType struct {
	Span position.Span
	Ok   Type
	Err  Type
}

func NewResultType(span position.Span, ok, err Type) *ResultType {
	return &ResultType{Span: span, Ok: ok, Err: err}
}

func (t *ResultType) GetSpan() position.Span             { return t.Span }
func (t *ResultType) typeNode()                          {}
func (t *ResultType) String() string                     { return fmt.Sprintf("Result<%s, %s>", t.Ok, t.Err) }
func (t *ResultType) Accept(visitor Visitor) interface{} { return visitor.VisitResultType(t) }

type OptionType struct {
	Span position.Span
	Elem Type
}

func NewOptionType(span position.Span, elem Type) *OptionType {
	return &OptionType{Span: span, Elem: elem}
}

func (t *OptionType) GetSpan() position.Span             { return t.Span }
func (t *OptionType) typeNode()                          {}
func (t *OptionType) String() string                     { return "Option<" + t.Elem.String() + ">" }
func (t *OptionType) Accept(visitor Visitor) interface{} { return visitor.VisitOptionType(t) }
