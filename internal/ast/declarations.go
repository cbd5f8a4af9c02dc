package ast

import (
	"fmt"
	"strings"

	"github.com/ferrite-lang/ferrite/internal/position"
)

// StructField is a named, typed field of a struct or data-carrying enum variant.
type StructField struct {
	Span       position.Span
	Name       *Identifier
	Type       Type
	Visibility Visibility
}

func NewStructField(span position.Span, name *Identifier, typ Type, vis Visibility) *StructField {
	return &StructField{Span: span, Name: name, Type: typ, Visibility: vis}
}

func (f *StructField) GetSpan() position.Span { return f.Span }
func (f *StructField) String() string {
	return fmt.Sprintf("%s%s: %s", f.Visibility.prefix(), f.Name, f.Type)
}
func (f *StructField) Accept(visitor Visitor) interface{} { return visitor.VisitStructField(f) }

// MethodDeclaration is a method with a concrete body.
type MethodDeclaration struct {
	Span       position.Span
	Name       *Identifier
	Parameters []*FunctionParameter
	ReturnType Type
	Body       *BlockStatement
	Visibility Visibility
}

func NewMethodDeclaration(span position.Span, name *Identifier, params []*FunctionParameter, ret Type, body *BlockStatement, vis Visibility) *MethodDeclaration {
	return &MethodDeclaration{
		Span:       span,
		Name:       name,
		Parameters: clone(params),
		ReturnType: ret,
		Body:       body,
		Visibility: vis,
	}
}

func (m *MethodDeclaration) GetSpan() position.Span { return m.Span }
func (m *MethodDeclaration) String() string {
	sig := fmt.Sprintf("%sfn %s(%s)", m.Visibility.prefix(), m.Name, joinNodes(m.Parameters, ", "))
	if m.ReturnType != nil {
		sig += " -> " + m.ReturnType.String()
	}
	return sig + " " + m.Body.String()
}
func (m *MethodDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitMethodDeclaration(m)
}

// MethodSignature is a trait item. A nil ReturnType means unit; a nil
// DefaultImpl means implementors must provide the method.
type MethodSignature struct {
	Span        position.Span
	Name        *Identifier
	Parameters  []*FunctionParameter
	ReturnType  Type
	DefaultImpl *BlockStatement
}

func NewMethodSignature(span position.Span, name *Identifier, params []*FunctionParameter, ret Type, defaultImpl *BlockStatement) *MethodSignature {
	return &MethodSignature{
		Span:        span,
		Name:        name,
		Parameters:  clone(params),
		ReturnType:  ret,
		DefaultImpl: defaultImpl,
	}
}

// IsAbstract reports whether the trait leaves the method to implementors.
func (m *MethodSignature) IsAbstract() bool { return m.DefaultImpl == nil }

// Returns is the declared return type, with an omitted one read as unit.
func (m *MethodSignature) Returns() Type {
	if m.ReturnType == nil {
		return NewPrimitiveType(m.Span, Unit)
	}
	return m.ReturnType
}

func (m *MethodSignature) GetSpan() position.Span { return m.Span }
func (m *MethodSignature) String() string {
	sig := fmt.Sprintf("fn %s(%s)", m.Name, joinNodes(m.Parameters, ", "))
	if m.ReturnType != nil {
		sig += " -> " + m.ReturnType.String()
	}
	if m.DefaultImpl != nil {
		return sig + " " + m.DefaultImpl.String()
	}
	return sig + ";"
}
func (m *MethodSignature) Accept(visitor Visitor) interface{} {
	return visitor.VisitMethodSignature(m)
}

type StructDeclaration struct {
	Span    position.Span
	Name    *Identifier
	Fields  []*StructField
	Methods []*MethodDeclaration
}

func NewStructDeclaration(span position.Span, name *Identifier, fields []*StructField, methods []*MethodDeclaration) *StructDeclaration {
	return &StructDeclaration{Span: span, Name: name, Fields: clone(fields), Methods: clone(methods)}
}

func (d *StructDeclaration) GetSpan() position.Span { return d.Span }
func (d *StructDeclaration) statementNode()         {}
func (d *StructDeclaration) declarationNode()       {}
func (d *StructDeclaration) String() string {
	return fmt.Sprintf("struct %s %s", d.Name, itemBody(d.Fields, ",", d.Methods))
}
func (d *StructDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitStructDeclaration(d)
}

// EnumVariant is one alternative of an enum. Struct-like variants carry
// named Fields, tuple variants carry positional Types, and a variant with
// neither is a unit variant. A variant never has both.
type EnumVariant struct {
	Span   position.Span
	Name   *Identifier
	Fields []*StructField
	Types  []Type
}

func NewEnumVariant(span position.Span, name *Identifier, fields ...*StructField) *EnumVariant {
	return &EnumVariant{Span: span, Name: name, Fields: clone(fields)}
}

// NewTupleVariant builds a variant with positional payload types, as in
// Circle(f64).
func NewTupleVariant(span position.Span, name *Identifier, types ...Type) *EnumVariant {
	return &EnumVariant{Span: span, Name: name, Types: clone(types)}
}

// IsUnit reports whether the variant carries no data.
func (v *EnumVariant) IsUnit() bool { return len(v.Fields) == 0 && len(v.Types) == 0 }

// IsTuple reports whether the variant's payload is positional.
func (v *EnumVariant) IsTuple() bool { return len(v.Types) > 0 }

func (v *EnumVariant) GetSpan() position.Span { return v.Span }
func (v *EnumVariant) String() string {
	switch {
	case v.IsTuple():
		return fmt.Sprintf("%s(%s)", v.Name, joinNodes(v.Types, ", "))
	case v.IsUnit():
		return v.Name.String()
	}
	return fmt.Sprintf("%s { %s }", v.Name, joinNodes(v.Fields, ", "))
}
func (v *EnumVariant) Accept(visitor Visitor) interface{} { return visitor.VisitEnumVariant(v) }

type EnumDeclaration struct {
	Span     position.Span
	Name     *Identifier
	Variants []*EnumVariant
	Methods  []*MethodDeclaration
}

func NewEnumDeclaration(span position.Span, name *Identifier, variants []*EnumVariant, methods []*MethodDeclaration) *EnumDeclaration {
	return &EnumDeclaration{Span: span, Name: name, Variants: clone(variants), Methods: clone(methods)}
}

func (d *EnumDeclaration) GetSpan() position.Span { return d.Span }
func (d *EnumDeclaration) statementNode()         {}
func (d *EnumDeclaration) declarationNode()       {}
func (d *EnumDeclaration) String() string {
	return fmt.Sprintf("enum %s %s", d.Name, itemBody(d.Variants, ",", d.Methods))
}
func (d *EnumDeclaration) Accept(visitor Visitor) interface{} { return visitor.VisitEnumDeclaration(d) }

type TraitDeclaration struct {
	Span       position.Span
	Name       *Identifier
	Signatures []*MethodSignature
}

func NewTraitDeclaration(span position.Span, name *Identifier, signatures ...*MethodSignature) *TraitDeclaration {
	return &TraitDeclaration{Span: span, Name: name, Signatures: clone(signatures)}
}

func (d *TraitDeclaration) GetSpan() position.Span { return d.Span }
func (d *TraitDeclaration) statementNode()         {}
func (d *TraitDeclaration) declarationNode()       {}
func (d *TraitDeclaration) String() string {
	return fmt.Sprintf("trait %s %s", d.Name, itemBody(d.Signatures, "", []*MethodDeclaration(nil)))
}
func (d *TraitDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitTraitDeclaration(d)
}

// TraitImplementation is `impl Trait for Type { ... }`.
type TraitImplementation struct {
	Span      position.Span
	TraitName *Identifier
	ForType   Type
	Methods   []*MethodDeclaration
}

func NewTraitImplementation(span position.Span, trait *Identifier, forType Type, methods ...*MethodDeclaration) *TraitImplementation {
	return &TraitImplementation{Span: span, TraitName: trait, ForType: forType, Methods: clone(methods)}
}

func (i *TraitImplementation) GetSpan() position.Span { return i.Span }
func (i *TraitImplementation) statementNode()         {}
func (i *TraitImplementation) declarationNode()       {}
func (i *TraitImplementation) String() string {
	return fmt.Sprintf("impl %s for %s %s", i.TraitName, i.ForType, itemBody([]*StructField(nil), "", i.Methods))
}
func (i *TraitImplementation) Accept(visitor Visitor) interface{} {
	return visitor.VisitTraitImplementation(i)
}

type ModuleDeclaration struct {
	Span       position.Span
	Name       *Identifier
	Statements []Statement
}

func NewModuleDeclaration(span position.Span, name *Identifier, statements ...Statement) *ModuleDeclaration {
	return &ModuleDeclaration{Span: span, Name: name, Statements: clone(statements)}
}

func (d *ModuleDeclaration) GetSpan() position.Span { return d.Span }
func (d *ModuleDeclaration) statementNode()         {}
func (d *ModuleDeclaration) declarationNode()       {}
func (d *ModuleDeclaration) String() string {
	if len(d.Statements) == 0 {
		return fmt.Sprintf("mod %s {}", d.Name)
	}
	return fmt.Sprintf("mod %s {\n%s\n}", d.Name, indent(joinStatements(d.Statements, "\n")))
}
func (d *ModuleDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitModuleDeclaration(d)
}

// UseStatement imports Path, optionally renamed to Alias.
type UseStatement struct {
	Span  position.Span
	Path  []*Identifier
	Alias *Identifier // nil when not renamed
}

func NewUseStatement(span position.Span, path []*Identifier, alias *Identifier) *UseStatement {
	return &UseStatement{Span: span, Path: clone(path), Alias: alias}
}

// PathString joins the path segments with `::`.
func (u *UseStatement) PathString() string { return joinNodes(u.Path, "::") }

func (u *UseStatement) GetSpan() position.Span { return u.Span }
func (u *UseStatement) statementNode()         {}
func (u *UseStatement) declarationNode()       {}
func (u *UseStatement) String() string {
	if u.Alias != nil {
		return fmt.Sprintf("use %s as %s;", u.PathString(), u.Alias)
	}
	return "use " + u.PathString() + ";"
}
func (u *UseStatement) Accept(visitor Visitor) interface{} { return visitor.VisitUseStatement(u) }

// itemBody renders the braced member list shared by struct, enum, trait and impl.
func itemBody[T Node](members []T, sep string, methods []*MethodDeclaration) string {
	if len(members) == 0 && len(methods) == 0 {
		return "{}"
	}
	var lines []string
	for _, m := range members {
		lines = append(lines, indent(m.String()+sep))
	}
	for _, m := range methods {
		lines = append(lines, indent(m.String()))
	}
	return "{\n" + strings.Join(lines, "\n") + "\n}"
}
