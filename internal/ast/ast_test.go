package ast

import (
	"strings"
	"testing"

	"github.com/ferrite-lang/ferrite/internal/position"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// TestBasicNodeTypes tests basic AST node creation and functionality
func TestBasicNodeTypes(t *testing.T) {
	span := createTestSpan(1, 1)

	id := NewIdentifier(span, "testVar")
	if id.GetSpan() != span {
		t.Error("Identifier span not set correctly")
	}
	if id.String() != "testVar" {
		t.Errorf("Expected 'testVar', got '%s'", id.String())
	}

	lit := NewNumberLiteral(span, 42, "42")
	if lit.GetSpan() != span {
		t.Error("NumberLiteral span not set correctly")
	}
	if lit.Value != 42 || lit.String() != "42" {
		t.Errorf("Expected 42, got %v (%s)", lit.Value, lit.String())
	}

	str := NewStringLiteral(span, "hi\n")
	if str.String() != `"hi\n"` {
		t.Errorf("Expected quoted string, got %s", str.String())
	}

	typ := NewPrimitiveType(span, I32)
	if typ.GetSpan() != span {
		t.Error("PrimitiveType span not set correctly")
	}
	if typ.String() != "i32" {
		t.Errorf("Expected 'i32', got '%s'", typ.String())
	}
}

func TestIdentifierFromToken(t *testing.T) {
	tok := token.New(token.Ident, "radius", 3, 7)
	id := IdentifierFrom(tok)

	if id.Value != "radius" {
		t.Errorf("Expected value 'radius', got '%s'", id.Value)
	}
	want := position.Span{Start: position.At(3, 7), End: position.At(3, 13)}
	if id.GetSpan() != want {
		t.Errorf("Expected span %s, got %s", want, id.GetSpan())
	}
	if SpanFrom(tok) != want {
		t.Errorf("SpanFrom mismatch: %s", SpanFrom(tok))
	}
}

// TestBinaryExpression tests binary expression functionality
func TestBinaryExpression(t *testing.T) {
	span := createTestSpan(1, 1)
	left := num(1, "1", 1)
	right := num(1, "2", 2)

	bin := NewBinaryExpression(span, left, "+", right)
	if bin.Left != left || bin.Right != right {
		t.Error("Binary operands not preserved")
	}
	if bin.Operator != "+" {
		t.Errorf("Expected operator '+', got '%s'", bin.Operator)
	}
	if bin.String() != "(1 + 2)" {
		t.Errorf("Expected '(1 + 2)', got '%s'", bin.String())
	}
	if bin.Precedence() != token.PrecSum {
		t.Errorf("Expected Sum precedence, got %s", bin.Precedence())
	}
}

func TestLetBinaryShape(t *testing.T) {
	stmt := NewLetStatement(createTestSpan(1, 1), ident(1, "x"),
		NewBinaryExpression(createTestSpan(1, 9), num(1, "1", 1), "+", num(1, "2", 2)))

	if stmt.Name.Value != "x" {
		t.Fatalf("Expected name x, got %s", stmt.Name.Value)
	}
	bin, ok := stmt.Value.(*BinaryExpression)
	if !ok {
		t.Fatalf("Expected BinaryExpression value, got %T", stmt.Value)
	}
	l, lok := bin.Left.(*NumberLiteral)
	r, rok := bin.Right.(*NumberLiteral)
	if !lok || !rok || l.Value != 1 || r.Value != 2 || bin.Operator != "+" {
		t.Errorf("Unexpected binary shape: %s", bin)
	}
	if stmt.String() != "let x = (1 + 2);" {
		t.Errorf("Unexpected rendering: %s", stmt.String())
	}
}

func TestOperatorKind(t *testing.T) {
	tests := []struct {
		op   string
		kind token.Kind
		ok   bool
	}{
		{"+", token.Plus, true},
		{"==", token.Eq, true},
		{"&&", token.And, true},
		{"+=", token.PlusAssign, true},
		{"<<", token.Shl, true},
		{"->", token.Arrow, true},
		{"..", token.RangeExclusive, true},
		{"..=", token.RangeInclusive, true},
		{"(", token.Illegal, false},
		{"let", token.Illegal, false},
		{"", token.Illegal, false},
	}

	for _, tt := range tests {
		kind, ok := OperatorKind(tt.op)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("OperatorKind(%q) = %s, %v; want %s, %v", tt.op, kind, ok, tt.kind, tt.ok)
		}
	}

	unknown := NewBinaryExpression(createTestSpan(1, 1), ident(1, "a"), "<=>", ident(1, "b"))
	if unknown.Precedence() != token.PrecLowest {
		t.Errorf("Unknown operator should bind at Lowest, got %s", unknown.Precedence())
	}

	for _, op := range []string{"..", "..="} {
		r := NewBinaryExpression(createTestSpan(1, 1), ident(1, "a"), op, ident(1, "b"))
		if r.Precedence() != token.PrecRange {
			t.Errorf("%s should bind at Range, got %s", op, r.Precedence())
		}
	}
}

func TestEnumVariants(t *testing.T) {
	s := createTestSpan(1, 1)
	unit := NewEnumVariant(s, ident(1, "Empty"))
	data := NewEnumVariant(s, ident(1, "Circle"),
		NewStructField(s, ident(1, "radius"), prim(1, F64), Private))

	if !unit.IsUnit() || len(unit.Fields) != 0 {
		t.Error("Variant without fields should be a unit variant")
	}
	if data.IsUnit() || len(data.Fields) != 1 {
		t.Error("Variant with fields should carry data")
	}
	if unit.String() != "Empty" {
		t.Errorf("Unexpected unit rendering: %s", unit.String())
	}
	if data.String() != "Circle { radius: f64 }" {
		t.Errorf("Unexpected data rendering: %s", data.String())
	}

	tuple := NewTupleVariant(s, ident(1, "Rect"), prim(1, F64), prim(1, F64))
	if tuple.IsUnit() || !tuple.IsTuple() || data.IsTuple() || unit.IsTuple() {
		t.Error("Only positional variants should be tuple variants")
	}
	if tuple.String() != "Rect(f64, f64)" {
		t.Errorf("Unexpected tuple rendering: %s", tuple.String())
	}
	children := Children(tuple)
	if len(children) != 3 || children[0] != Node(tuple.Name) || children[2] != Node(tuple.Types[1]) {
		t.Errorf("Tuple variant children should be the name then each type, got %v", children)
	}

	enum := NewEnumDeclaration(s, ident(1, "Shape"), []*EnumVariant{unit, tuple}, nil)
	if !strings.Contains(enum.String(), "Rect(f64, f64)") {
		t.Errorf("Enum should render its tuple variant: %s", enum.String())
	}
}

func TestMethodDeclarationRendering(t *testing.T) {
	s := createTestSpan(1, 1)
	body := block(1)
	tests := []struct {
		ret  Type
		vis  Visibility
		want string
	}{
		{nil, Private, "fn reset() {}"},
		{prim(1, F64), Public, "pub fn reset() -> f64 {}"},
	}

	for _, tt := range tests {
		m := NewMethodDeclaration(s, ident(1, "reset"), nil, tt.ret, body, tt.vis)
		if m.String() != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, m.String())
		}
	}
}

func TestMethodSignature(t *testing.T) {
	s := createTestSpan(1, 1)
	abstract := NewMethodSignature(s, ident(1, "area"), nil, prim(1, F64), nil)
	defaulted := NewMethodSignature(s, ident(1, "describe"), nil, nil,
		block(1, NewReturnStatement(s, NewStringLiteral(s, "shape"))))

	if !abstract.IsAbstract() {
		t.Error("Signature without a body should be abstract")
	}
	if defaulted.IsAbstract() {
		t.Error("Signature with a default body should not be abstract")
	}
	if abstract.String() != "fn area() -> f64;" {
		t.Errorf("Unexpected rendering: %s", abstract.String())
	}

	ret := defaulted.Returns()
	p, ok := ret.(*PrimitiveType)
	if !ok || p.Kind != Unit {
		t.Errorf("Missing return type should mean unit, got %v", ret)
	}
}

func TestDestructurePatterns(t *testing.T) {
	s := createTestSpan(1, 1)
	enumPat := NewDestructurePattern(s,
		&EnumDestructure{Enum: ident(1, "Shape"), Variant: ident(1, "Circle")},
		NewFieldPattern(s, ident(1, "radius"), nil))
	structPat := NewDestructurePattern(s,
		&StructDestructure{Name: ident(1, "Point")},
		NewFieldPattern(s, ident(1, "x"), NewWildcardPattern(s)))
	tuplePat := NewDestructurePattern(s, &TupleDestructure{},
		NewFieldPattern(s, ident(1, "0"), NewIdentifierPattern(s, ident(1, "a"))))

	ek, ok := enumPat.Kind.(*EnumDestructure)
	if !ok {
		t.Fatalf("Expected enum destructure, got %T", enumPat.Kind)
	}
	if ek.Enum.Value != "Shape" || ek.Variant.Value != "Circle" {
		t.Errorf("Enum destructure lost its names: %s", ek)
	}
	if len(enumPat.Fields) != 1 || enumPat.Fields[0].Name.Value != "radius" {
		t.Error("Enum destructure lost its field")
	}
	if _, ok := structPat.Kind.(*EnumDestructure); ok {
		t.Error("Struct destructure must not look like an enum destructure")
	}

	tests := []struct {
		pat  Pattern
		want string
	}{
		{enumPat, "Shape::Circle { radius }"},
		{structPat, "Point { x: _ }"},
		{tuplePat, "(0: a)"},
		{NewOrPattern(s, NewRangePattern(s, num(1, "1", 1), num(1, "5", 5)), NewWildcardPattern(s)), "1..=5 | _"},
	}
	for _, tt := range tests {
		if got := tt.pat.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestMatchArmGuard(t *testing.T) {
	s := createTestSpan(1, 1)
	guarded := NewMatchArm(s, NewIdentifierPattern(s, ident(1, "n")),
		NewBinaryExpression(s, ident(1, "n"), ">", num(1, "0", 0)), exprStmt(1, ident(1, "n")))
	plain := NewMatchArm(s, NewWildcardPattern(s), nil, exprStmt(1, num(1, "0", 0)))

	if guarded.Guard == nil || plain.Guard != nil {
		t.Error("Guard presence not preserved")
	}
	if guarded.String() != "n if (n > 0) => n;" {
		t.Errorf("Unexpected rendering: %s", guarded.String())
	}
	if plain.String() != "_ => 0;" {
		t.Errorf("Unexpected rendering: %s", plain.String())
	}
}

func TestLifetimeReferenceType(t *testing.T) {
	s := createTestSpan(1, 1)
	ref := NewLifetimeReferenceType(s, prim(1, Str), Mut,
		NewLifetime(createTestSpan(1, 2), "a"), NewLifetime(createTestSpan(1, 5), "b"))

	if len(ref.Lifetimes) != 2 || ref.Lifetimes[0].Name != "a" || ref.Lifetimes[1].Name != "b" {
		t.Errorf("Lifetimes not preserved in order: %v", ref.Lifetimes)
	}
	if ref.Mutability != Mut {
		t.Error("Mutability not preserved")
	}
	if ref.String() != "&'a 'b mut String" {
		t.Errorf("Unexpected rendering: %s", ref.String())
	}

	shared := NewLifetimeReferenceType(s, prim(1, I32), Const, NewLifetime(s, "static"))
	if shared.String() != "&'static i32" {
		t.Errorf("Unexpected rendering: %s", shared.String())
	}
}

func TestTypeRendering(t *testing.T) {
	s := createTestSpan(1, 1)
	three := 3

	tests := []struct {
		typ  Type
		want string
	}{
		{NewArrayType(s, prim(1, U8), &three), "[u8; 3]"},
		{NewArrayType(s, prim(1, U8), nil), "[u8; _]"},
		{NewSliceType(s, prim(1, Char)), "[char]"},
		{NewRawPointerType(s, prim(1, I64), Const), "*const i64"},
		{NewReferenceType(s, prim(1, Bool), Mut), "&mut bool"},
		{NewReferenceType(s, prim(1, Bool), Const), "&bool"},
		{NewResultType(s, prim(1, I32), prim(1, Str)), "Result<i32, String>"},
		{NewOptionType(s, NewNamedType(s, ident(1, "T"))), "Option<T>"},
		{NewFunctionType(s, []Type{prim(1, I32), prim(1, I32)}, prim(1, Unit)), "fn(i32, i32) -> ()"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}

	at := NewArrayType(s, prim(1, U8), &three)
	three = 7
	if *at.Len != 3 {
		t.Error("ArrayType must own its length")
	}
}

func TestPrimitiveKinds(t *testing.T) {
	tests := []struct {
		name     string
		kind     PrimitiveKind
		integer  bool
		signed   bool
		floating bool
	}{
		{"i8", I8, true, true, false},
		{"i128", I128, true, true, false},
		{"u16", U16, true, false, false},
		{"f32", F32, false, false, true},
		{"bool", Bool, false, false, false},
		{"String", Str, false, false, false},
		{"()", Unit, false, false, false},
	}

	for _, tt := range tests {
		k, ok := LookupPrimitive(tt.name)
		if !ok || k != tt.kind {
			t.Errorf("LookupPrimitive(%q) = %s, %v", tt.name, k, ok)
			continue
		}
		if k.IsInteger() != tt.integer || k.IsSigned() != tt.signed || k.IsFloat() != tt.floating {
			t.Errorf("%s: integer=%v signed=%v float=%v", k, k.IsInteger(), k.IsSigned(), k.IsFloat())
		}
	}
	if _, ok := LookupPrimitive("int"); ok {
		t.Error("int is not a primitive type name")
	}
}

func TestConstructorsOwnChildren(t *testing.T) {
	s := createTestSpan(1, 1)
	args := []Expression{num(1, "1", 1), num(1, "2", 2)}
	call := NewCallExpression(s, ident(1, "f"), args...)
	args[0] = ident(1, "changed")

	if _, ok := call.Arguments[0].(*NumberLiteral); !ok {
		t.Error("CallExpression shares its argument slice with the caller")
	}

	stmts := []Statement{NewBreakStatement(s)}
	tree := NewAst(stmts...)
	stmts[0] = NewContinueStatement(s)
	if _, ok := tree.Statements[0].(*BreakStatement); !ok {
		t.Error("Ast shares its statement slice with the caller")
	}
}

func TestForStatement(t *testing.T) {
	s := createTestSpan(1, 1)
	full := NewForStatement(s,
		&ForInitStatement{Statement: NewLetStatement(s, ident(1, "i"), num(1, "0", 0))},
		NewBinaryExpression(s, ident(1, "i"), "<", num(1, "10", 10)),
		NewBinaryExpression(s, ident(1, "i"), "+=", num(1, "1", 1)),
		block(1))
	empty := NewForStatement(s, nil, nil, nil, block(1))

	if _, ok := full.Init.Node().(*LetStatement); !ok {
		t.Errorf("Init should hold a statement, got %T", full.Init.Node())
	}
	if full.String() != "for (let i = 0; (i < 10); (i += 1)) {}" {
		t.Errorf("Unexpected rendering: %s", full.String())
	}
	if empty.String() != "for (; ; ) {}" {
		t.Errorf("Unexpected rendering: %s", empty.String())
	}
}

func TestBlockAndModuleRendering(t *testing.T) {
	s := createTestSpan(1, 1)
	ifStmt := NewIfStatement(s, ident(1, "ok"),
		block(1, NewReturnStatement(s, nil)),
		block(1, NewBreakStatement(s)))
	want := "if ok {\n  return;\n} else {\n  break;\n}"
	if ifStmt.String() != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, ifStmt.String())
	}

	mod := NewModuleDeclaration(s, ident(1, "geo"),
		NewUseStatement(s, []*Identifier{ident(1, "std"), ident(1, "mem")}, ident(1, "m")))
	if mod.String() != "mod geo {\n  use std::mem as m;\n}" {
		t.Errorf("Unexpected module rendering:\n%s", mod.String())
	}
}

func TestMergeAndSpans(t *testing.T) {
	first := NewAst(NewLetStatement(createTestSpan(1, 1), ident(1, "a"), num(1, "1", 1)))
	second := NewAst(
		NewLetStatement(createTestSpan(2, 1), ident(2, "b"), num(2, "2", 2)),
		NewLetStatement(createTestSpan(5, 1), ident(5, "c"), num(5, "3", 3)),
	)

	merged := Merge(first, nil, second)
	if len(merged.Statements) != 3 {
		t.Fatalf("Expected 3 statements, got %d", len(merged.Statements))
	}
	if merged.Statements[0] != first.Statements[0] || merged.Statements[2] != second.Statements[1] {
		t.Error("Merge did not keep argument order")
	}

	span := merged.GetSpan()
	if span.Start.Line != 1 || span.End.Line != 5 {
		t.Errorf("Expected span covering lines 1-5, got %s", span)
	}

	cover := Cover(ident(3, "x"), nil, ident(4, "y"))
	if cover.Start.Line != 3 || cover.End.Line != 4 {
		t.Errorf("Unexpected cover span %s", cover)
	}
	if NewAst().GetSpan().IsValid() {
		t.Error("Empty tree should have no valid span")
	}
}

func TestInterfaceMembership(t *testing.T) {
	var (
		_ Statement   = (*LetStatement)(nil)
		_ Statement   = (*StructDeclaration)(nil)
		_ Declaration = (*StructDeclaration)(nil)
		_ Declaration = (*UseStatement)(nil)
		_ Expression  = (*AllocateExpression)(nil)
		_ Pattern     = (*OrPattern)(nil)
		_ Type        = (*LifetimeReferenceType)(nil)
		_ ForInit     = (*ForInitStatement)(nil)
		_ ForInit     = (*ForInitExpression)(nil)
	)
}
