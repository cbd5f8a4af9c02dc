package ast

import (
	"github.com/ferrite-lang/ferrite/internal/position"
)

// createTestSpan creates a basic position span for testing
func createTestSpan(line, col int) position.Span {
	return position.Span{
		Start: position.Position{Filename: "test.fe", Line: line, Column: col},
		End:   position.Position{Filename: "test.fe", Line: line, Column: col + 1},
	}
}

func ident(line int, name string) *Identifier {
	return NewIdentifier(createTestSpan(line, 1), name)
}

func num(line int, raw string, v float64) *NumberLiteral {
	return NewNumberLiteral(createTestSpan(line, 1), v, raw)
}

func prim(line int, k PrimitiveKind) *PrimitiveType {
	return NewPrimitiveType(createTestSpan(line, 1), k)
}

func block(line int, stmts ...Statement) *BlockStatement {
	return NewBlockStatement(createTestSpan(line, 1), stmts...)
}

func exprStmt(line int, e Expression) *ExpressionStatement {
	return NewExpressionStatement(createTestSpan(line, 1), e)
}

// allVariantsTree builds a tree that contains at least one node of every
// concrete type in the package.
func allVariantsTree() *Ast {
	s := createTestSpan

	point := NewStructDeclaration(s(2, 3), ident(2, "Point"),
		[]*StructField{
			NewStructField(s(3, 5), ident(3, "x"), prim(3, F64), Public),
			NewStructField(s(4, 5), ident(4, "y"), prim(4, F64), Private),
			NewStructField(s(5, 5), ident(5, "other"), NewReferenceType(s(5, 12), NewStructType(s(5, 17), ident(5, "Point")), Mut), Private),
			NewStructField(s(6, 5), ident(6, "cb"), NewFunctionType(s(6, 9),
				[]Type{NewSliceType(s(6, 12), prim(6, U8))},
				NewResultType(s(6, 20), prim(6, I32), prim(6, Str))), Private),
		},
		[]*MethodDeclaration{
			NewMethodDeclaration(s(7, 5), ident(7, "norm"), nil, prim(7, F64),
				block(7, NewReturnStatement(s(8, 7), num(8, "0.0", 0))), Public),
		})

	shape := NewEnumDeclaration(s(10, 3), ident(10, "Shape"),
		[]*EnumVariant{
			NewEnumVariant(s(11, 5), ident(11, "Circle"),
				NewStructField(s(11, 14), ident(11, "radius"), prim(11, F64), Private)),
			NewEnumVariant(s(12, 5), ident(12, "Empty")),
			NewTupleVariant(s(13, 5), ident(13, "Square"), prim(13, F64)),
		}, nil)

	area := NewTraitDeclaration(s(14, 3), ident(14, "Area"),
		NewMethodSignature(s(15, 5), ident(15, "area"), nil, prim(15, F64), nil),
		NewMethodSignature(s(16, 5), ident(16, "name"), nil, nil,
			block(16, NewReturnStatement(s(16, 20), NewStringLiteral(s(16, 27), "shape")))),
	)

	impl := NewTraitImplementation(s(18, 3), ident(18, "Area"), NewEnumType(s(18, 17), ident(18, "Shape")),
		NewMethodDeclaration(s(19, 5), ident(19, "area"), nil, prim(19, F64),
			block(19, NewReturnStatement(s(19, 25), num(19, "3.14", 3.14))), Private))

	module := NewModuleDeclaration(s(1, 1), ident(1, "geometry"),
		NewUseStatement(s(1, 15), []*Identifier{ident(1, "std"), ident(1, "mem")}, ident(1, "m")),
		point, shape, area, impl)

	fnLit := NewLetStatement(s(21, 1), ident(21, "f"),
		NewFunctionLiteral(s(21, 9),
			[]*FunctionParameter{
				NewFunctionParameter(s(21, 14), ident(21, "x"), nil),
				NewFunctionParameter(s(21, 17), ident(21, "y"), num(21, "1", 1)),
			},
			block(21, NewReturnStatement(s(21, 30), NewBinaryExpression(s(21, 37), ident(21, "x"), "+", ident(21, "y")))),
			[]Lifetime{NewLifetime(s(21, 12), "a")}))

	limit := NewConstStatement(s(22, 1), ident(22, "LIMIT"), num(22, "10", 10))

	obj := NewLetStatement(s(23, 1), ident(23, "obj"), NewObjectLiteral(s(23, 11),
		NewObjectProperty(s(23, 13), ident(23, "a"), NewBooleanLiteral(s(23, 16), true)),
		NewObjectProperty(s(23, 22), ident(23, "b"), NewStringLiteral(s(23, 25), "s"))))

	arr := NewLetStatement(s(24, 1), ident(24, "arr"), NewArrayLiteral(s(24, 11),
		NewNullLiteral(s(24, 12)), NewSelfExpression(s(24, 18)), NewNoneExpression(s(24, 24))))

	ifStmt := NewIfStatement(s(25, 1),
		NewUnaryExpression(s(25, 4), "!", ident(25, "done")),
		block(25, exprStmt(25, NewUpdateExpression(s(25, 12), "++", ident(25, "i")))),
		block(25, NewBreakStatement(s(25, 25))))

	forStmt := NewForStatement(s(26, 1),
		&ForInitStatement{Statement: NewLetStatement(s(26, 6), ident(26, "i"), num(26, "0", 0))},
		NewBinaryExpression(s(26, 17), ident(26, "i"), "<", num(26, "10", 10)),
		NewBinaryExpression(s(26, 25), ident(26, "i"), "+=", num(26, "1", 1)),
		block(26, NewContinueStatement(s(26, 35))))

	forExpr := NewForStatement(s(27, 1),
		&ForInitExpression{Expression: NewBinaryExpression(s(27, 6), ident(27, "i"), "=", num(27, "0", 0))},
		nil, nil, block(27))

	whileStmt := NewWhileStatement(s(28, 1), NewBooleanLiteral(s(28, 7), true),
		block(28, exprStmt(28, NewCallExpression(s(28, 14),
			NewMemberExpression(s(28, 14), ident(28, "foo"), ident(28, "bar")),
			NewTryExpression(s(28, 22), NewOkExpression(s(28, 22), num(28, "1", 1))),
			NewErrExpression(s(28, 30), num(28, "2", 2)),
			NewSomeExpression(s(28, 38), num(28, "3", 3))))))

	four := 4
	unsafeStmt := NewUnsafeStatement(s(30, 1), block(30,
		NewLetStatement(s(31, 3), ident(31, "p"),
			NewAllocateExpression(s(31, 11), NewArrayType(s(31, 17), prim(31, U8), &four), num(31, "4", 4))),
		NewLetStatement(s(32, 3), ident(32, "q"),
			NewRawPointerExpression(s(32, 11), NewAddressOfExpression(s(32, 15), ident(32, "x")))),
		NewLetStatement(s(33, 3), ident(33, "r"),
			NewCastExpression(s(33, 11), NewDereferenceExpression(s(33, 11), ident(33, "q")),
				NewRawPointerType(s(33, 17), prim(33, I32), Mut))),
		exprStmt(34, NewDeallocateExpression(s(34, 3), ident(34, "p"))),
		NewLetStatement(s(35, 3), ident(35, "n"),
			NewNullPointerExpression(s(35, 11), NewLifetimeReferenceType(s(35, 16),
				NewStructType(s(35, 20), ident(35, "Point")), Const, NewLifetime(s(35, 17), "a")))),
		NewLetStatement(s(36, 3), ident(36, "sz"), NewSizeOfExpression(s(36, 12), ident(36, "x"))),
		NewLetStatement(s(37, 3), ident(37, "ty"), NewTypeOfExpression(s(37, 12), ident(37, "x"))),
		NewLetStatement(s(38, 3), ident(38, "ok"), NewTypeCheckExpression(s(38, 12), ident(38, "x"),
			NewOptionType(s(38, 17), NewNamedType(s(38, 24), ident(38, "T"))))),
	))

	matchStmt := NewMatchStatement(s(40, 1), ident(40, "shape"),
		NewMatchArm(s(41, 3), NewLiteralPattern(s(41, 3), num(41, "1", 1)), nil, exprStmt(41, ident(41, "one"))),
		NewMatchArm(s(42, 3), NewIdentifierPattern(s(42, 3), ident(42, "n")),
			NewBinaryExpression(s(42, 8), ident(42, "n"), ">", num(42, "0", 0)),
			exprStmt(42, ident(42, "positive"))),
		NewMatchArm(s(43, 3), NewDestructurePattern(s(43, 3),
			&EnumDestructure{Enum: ident(43, "Shape"), Variant: ident(43, "Circle")},
			NewFieldPattern(s(43, 19), ident(43, "radius"), nil)), nil, exprStmt(43, ident(43, "radius"))),
		NewMatchArm(s(44, 3), NewDestructurePattern(s(44, 3),
			&StructDestructure{Name: ident(44, "Point")},
			NewFieldPattern(s(44, 11), ident(44, "x"), NewWildcardPattern(s(44, 14)))), nil, exprStmt(44, ident(44, "pt"))),
		NewMatchArm(s(45, 3), NewDestructurePattern(s(45, 3), &TupleDestructure{},
			NewFieldPattern(s(45, 4), ident(45, "0"), NewIdentifierPattern(s(45, 4), ident(45, "a"))),
			NewFieldPattern(s(45, 7), ident(45, "1"), NewIdentifierPattern(s(45, 7), ident(45, "b")))), nil, exprStmt(45, ident(45, "pair"))),
		NewMatchArm(s(46, 3), NewOrPattern(s(46, 3),
			NewRangePattern(s(46, 3), num(46, "1", 1), num(46, "5", 5)),
			NewLiteralPattern(s(46, 11), num(46, "7", 7))), nil, exprStmt(46, ident(46, "small"))),
	)

	return NewAst(module, fnLit, limit, obj, arr, ifStmt, forStmt, forExpr, whileStmt, unsafeStmt, matchStmt)
}

// allNodeTypes lists every concrete node type by name.
var allNodeTypes = []string{
	"Ast",
	"Identifier", "NumberLiteral", "BooleanLiteral", "StringLiteral", "NullLiteral",
	"SelfExpression", "ObjectLiteral", "ObjectProperty", "ArrayLiteral",
	"UnaryExpression", "UpdateExpression", "BinaryExpression", "FunctionLiteral",
	"FunctionParameter", "CallExpression", "MemberExpression", "TryExpression",
	"OkExpression", "ErrExpression", "SomeExpression", "NoneExpression",
	"RawPointerExpression", "AddressOfExpression", "DereferenceExpression",
	"CastExpression", "AllocateExpression", "DeallocateExpression",
	"NullPointerExpression", "SizeOfExpression", "TypeOfExpression", "TypeCheckExpression",
	"LetStatement", "ConstStatement", "ReturnStatement", "ExpressionStatement",
	"IfStatement", "BlockStatement", "ForStatement", "WhileStatement",
	"ContinueStatement", "BreakStatement", "UnsafeStatement", "MatchStatement",
	"StructDeclaration", "StructField", "MethodDeclaration", "EnumDeclaration",
	"EnumVariant", "TraitDeclaration", "MethodSignature", "TraitImplementation",
	"ModuleDeclaration", "UseStatement",
	"MatchArm", "LiteralPattern", "IdentifierPattern", "WildcardPattern",
	"DestructurePattern", "FieldPattern", "RangePattern", "OrPattern",
	"PrimitiveType", "FunctionType", "StructType", "EnumType", "ArrayType",
	"SliceType", "RawPointerType", "ReferenceType", "LifetimeReferenceType",
	"NamedType", "ResultType", "OptionType",
}
