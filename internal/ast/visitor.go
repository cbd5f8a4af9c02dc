package ast

// Visitor has one method per concrete node type. Adding a node type adds a
// method here, so every visitor implementation fails to compile until it
// handles the new variant.
type Visitor interface {
	// Program root.
	VisitAst(node *Ast) interface{}

	// Expressions.
	VisitIdentifier(node *Identifier) interface{}
	VisitNumberLiteral(node *NumberLiteral) interface{}
	VisitBooleanLiteral(node *BooleanLiteral) interface{}
	VisitStringLiteral(node *StringLiteral) interface{}
	VisitNullLiteral(node *NullLiteral) interface{}
	VisitSelfExpression(node *SelfExpression) interface{}
	VisitObjectLiteral(node *ObjectLiteral) interface{}
	VisitObjectProperty(node *ObjectProperty) interface{}
	VisitArrayLiteral(node *ArrayLiteral) interface{}
	VisitUnaryExpression(node *UnaryExpression) interface{}
	VisitUpdateExpression(node *UpdateExpression) interface{}
	VisitBinaryExpression(node *BinaryExpression) interface{}
	VisitFunctionLiteral(node *FunctionLiteral) interface{}
	VisitFunctionParameter(node *FunctionParameter) interface{}
	VisitCallExpression(node *CallExpression) interface{}
	VisitMemberExpression(node *MemberExpression) interface{}
	VisitTryExpression(node *TryExpression) interface{}
	VisitOkExpression(node *OkExpression) interface{}
	VisitErrExpression(node *ErrExpression) interface{}
	VisitSomeExpression(node *SomeExpression) interface{}
	VisitNoneExpression(node *NoneExpression) interface{}

	// Memory operations.
	VisitRawPointerExpression(node *RawPointerExpression) interface{}
	VisitAddressOfExpression(node *AddressOfExpression) interface{}
	VisitDereferenceExpression(node *DereferenceExpression) interface{}
	VisitCastExpression(node *CastExpression) interface{}
	VisitAllocateExpression(node *AllocateExpression) interface{}
	VisitDeallocateExpression(node *DeallocateExpression) interface{}
	VisitNullPointerExpression(node *NullPointerExpression) interface{}
	VisitSizeOfExpression(node *SizeOfExpression) interface{}
	VisitTypeOfExpression(node *TypeOfExpression) interface{}
	VisitTypeCheckExpression(node *TypeCheckExpression) interface{}

	// Statements.
	VisitLetStatement(node *LetStatement) interface{}
	VisitConstStatement(node *ConstStatement) interface{}
	VisitReturnStatement(node *ReturnStatement) interface{}
	VisitExpressionStatement(node *ExpressionStatement) interface{}
	VisitIfStatement(node *IfStatement) interface{}
	VisitBlockStatement(node *BlockStatement) interface{}
	VisitForStatement(node *ForStatement) interface{}
	VisitWhileStatement(node *WhileStatement) interface{}
	VisitContinueStatement(node *ContinueStatement) interface{}
	VisitBreakStatement(node *BreakStatement) interface{}
	VisitUnsafeStatement(node *UnsafeStatement) interface{}
	VisitMatchStatement(node *MatchStatement) interface{}

	// Declarations.
	VisitStructDeclaration(node *StructDeclaration) interface{}
	VisitStructField(node *StructField) interface{}
	VisitMethodDeclaration(node *MethodDeclaration) interface{}
	VisitEnumDeclaration(node *EnumDeclaration) interface{}
	VisitEnumVariant(node *EnumVariant) interface{}
	VisitTraitDeclaration(node *TraitDeclaration) interface{}
	VisitMethodSignature(node *MethodSignature) interface{}
	VisitTraitImplementation(node *TraitImplementation) interface{}
	VisitModuleDeclaration(node *ModuleDeclaration) interface{}
	VisitUseStatement(node *UseStatement) interface{}

	// Patterns.
	VisitMatchArm(node *MatchArm) interface{}
	VisitLiteralPattern(node *LiteralPattern) interface{}
	VisitIdentifierPattern(node *IdentifierPattern) interface{}
	VisitWildcardPattern(node *WildcardPattern) interface{}
	VisitDestructurePattern(node *DestructurePattern) interface{}
	VisitFieldPattern(node *FieldPattern) interface{}
	VisitRangePattern(node *RangePattern) interface{}
	VisitOrPattern(node *OrPattern) interface{}

	// Types.
	VisitPrimitiveType(node *PrimitiveType) interface{}
	VisitFunctionType(node *FunctionType) interface{}
	VisitStructType(node *StructType) interface{}
	VisitEnumType(node *EnumType) interface{}
	VisitArrayType(node *ArrayType) interface{}
	VisitSliceType(node *SliceType) interface{}
	VisitRawPointerType(node *RawPointerType) interface{}
	VisitReferenceType(node *ReferenceType) interface{}
	VisitLifetimeReferenceType(node *LifetimeReferenceType) interface{}
	VisitNamedType(node *NamedType) interface{}
	VisitResultType(node *ResultType) interface{}
	VisitOptionType(node *OptionType) interface{}
}

// BaseVisitor provides a default implementation of the Visitor interface
// that returns nil for every node. Embed it to override only the methods a
// visitor needs.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitAst(node *Ast) interface{}                                     { return nil }
func (v *BaseVisitor) VisitIdentifier(node *Identifier) interface{}                       { return nil }
func (v *BaseVisitor) VisitNumberLiteral(node *NumberLiteral) interface{}                 { return nil }
func (v *BaseVisitor) VisitBooleanLiteral(node *BooleanLiteral) interface{}               { return nil }
func (v *BaseVisitor) VisitStringLiteral(node *StringLiteral) interface{}                 { return nil }
func (v *BaseVisitor) VisitNullLiteral(node *NullLiteral) interface{}                     { return nil }
func (v *BaseVisitor) VisitSelfExpression(node *SelfExpression) interface{}               { return nil }
func (v *BaseVisitor) VisitObjectLiteral(node *ObjectLiteral) interface{}                 { return nil }
func (v *BaseVisitor) VisitObjectProperty(node *ObjectProperty) interface{}               { return nil }
func (v *BaseVisitor) VisitArrayLiteral(node *ArrayLiteral) interface{}                   { return nil }
func (v *BaseVisitor) VisitUnaryExpression(node *UnaryExpression) interface{}             { return nil }
func (v *BaseVisitor) VisitUpdateExpression(node *UpdateExpression) interface{}           { return nil }
func (v *BaseVisitor) VisitBinaryExpression(node *BinaryExpression) interface{}           { return nil }
func (v *BaseVisitor) VisitFunctionLiteral(node *FunctionLiteral) interface{}             { return nil }
func (v *BaseVisitor) VisitFunctionParameter(node *FunctionParameter) interface{}         { return nil }
func (v *BaseVisitor) VisitCallExpression(node *CallExpression) interface{}               { return nil }
func (v *BaseVisitor) VisitMemberExpression(node *MemberExpression) interface{}           { return nil }
func (v *BaseVisitor) VisitTryExpression(node *TryExpression) interface{}                 { return nil }
func (v *BaseVisitor) VisitOkExpression(node *OkExpression) interface{}                   { return nil }
func (v *BaseVisitor) VisitErrExpression(node *ErrExpression) interface{}                 { return nil }
func (v *BaseVisitor) VisitSomeExpression(node *SomeExpression) interface{}               { return nil }
func (v *BaseVisitor) VisitNoneExpression(node *NoneExpression) interface{}               { return nil }
func (v *BaseVisitor) VisitRawPointerExpression(node *RawPointerExpression) interface{}   { return nil }
func (v *BaseVisitor) VisitAddressOfExpression(node *AddressOfExpression) interface{}     { return nil }
func (v *BaseVisitor) VisitDereferenceExpression(node *DereferenceExpression) interface{} { return nil }
func (v *BaseVisitor) VisitCastExpression(node *CastExpression) interface{}               { return nil }
func (v *BaseVisitor) VisitAllocateExpression(node *AllocateExpression) interface{}       { return nil }
func (v *BaseVisitor) VisitDeallocateExpression(node *DeallocateExpression) interface{}   { return nil }
func (v *BaseVisitor) VisitNullPointerExpression(node *NullPointerExpression) interface{} { return nil }
func (v *BaseVisitor) VisitSizeOfExpression(node *SizeOfExpression) interface{}           { return nil }
func (v *BaseVisitor) VisitTypeOfExpression(node *TypeOfExpression) interface{}           { return nil }
func (v *BaseVisitor) VisitTypeCheckExpression(node *TypeCheckExpression) interface{}     { return nil }
func (v *BaseVisitor) VisitLetStatement(node *LetStatement) interface{}                   { return nil }
func (v *BaseVisitor) VisitConstStatement(node *ConstStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitReturnStatement(node *ReturnStatement) interface{}             { return nil }
func (v *BaseVisitor) VisitExpressionStatement(node *ExpressionStatement) interface{}     { return nil }
func (v *BaseVisitor) VisitIfStatement(node *IfStatement) interface{}                     { return nil }
func (v *BaseVisitor) VisitBlockStatement(node *BlockStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitForStatement(node *ForStatement) interface{}                   { return nil }
func (v *BaseVisitor) VisitWhileStatement(node *WhileStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitContinueStatement(node *ContinueStatement) interface{}         { return nil }
func (v *BaseVisitor) VisitBreakStatement(node *BreakStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitUnsafeStatement(node *UnsafeStatement) interface{}             { return nil }
func (v *BaseVisitor) VisitMatchStatement(node *MatchStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitStructDeclaration(node *StructDeclaration) interface{}         { return nil }
func (v *BaseVisitor) VisitStructField(node *StructField) interface{}                     { return nil }
func (v *BaseVisitor) VisitMethodDeclaration(node *MethodDeclaration) interface{}         { return nil }
func (v *BaseVisitor) VisitEnumDeclaration(node *EnumDeclaration) interface{}             { return nil }
func (v *BaseVisitor) VisitEnumVariant(node *EnumVariant) interface{}                     { return nil }
func (v *BaseVisitor) VisitTraitDeclaration(node *TraitDeclaration) interface{}           { return nil }
func (v *BaseVisitor) VisitMethodSignature(node *MethodSignature) interface{}             { return nil }
func (v *BaseVisitor) VisitTraitImplementation(node *TraitImplementation) interface{}     { return nil }
func (v *BaseVisitor) VisitModuleDeclaration(node *ModuleDeclaration) interface{}         { return nil }
func (v *BaseVisitor) VisitUseStatement(node *UseStatement) interface{}                   { return nil }
func (v *BaseVisitor) VisitMatchArm(node *MatchArm) interface{}                           { return nil }
func (v *BaseVisitor) VisitLiteralPattern(node *LiteralPattern) interface{}               { return nil }
func (v *BaseVisitor) VisitIdentifierPattern(node *IdentifierPattern) interface{}         { return nil }
func (v *BaseVisitor) VisitWildcardPattern(node *WildcardPattern) interface{}             { return nil }
func (v *BaseVisitor) VisitDestructurePattern(node *DestructurePattern) interface{}       { return nil }
func (v *BaseVisitor) VisitFieldPattern(node *FieldPattern) interface{}                   { return nil }
func (v *BaseVisitor) VisitRangePattern(node *RangePattern) interface{}                   { return nil }
func (v *BaseVisitor) VisitOrPattern(node *OrPattern) interface{}                         { return nil }
func (v *BaseVisitor) VisitPrimitiveType(node *PrimitiveType) interface{}                 { return nil }
func (v *BaseVisitor) VisitFunctionType(node *FunctionType) interface{}                   { return nil }
func (v *BaseVisitor) VisitStructType(node *StructType) interface{}                       { return nil }
func (v *BaseVisitor) VisitEnumType(node *EnumType) interface{}                           { return nil }
func (v *BaseVisitor) VisitArrayType(node *ArrayType) interface{}                         { return nil }
func (v *BaseVisitor) VisitSliceType(node *SliceType) interface{}                         { return nil }
func (v *BaseVisitor) VisitRawPointerType(node *RawPointerType) interface{}               { return nil }
func (v *BaseVisitor) VisitReferenceType(node *ReferenceType) interface{}                 { return nil }
func (v *BaseVisitor) VisitLifetimeReferenceType(node *LifetimeReferenceType) interface{} { return nil }
func (v *BaseVisitor) VisitNamedType(node *NamedType) interface{}                         { return nil }
func (v *BaseVisitor) VisitResultType(node *ResultType) interface{}                       { return nil }
func (v *BaseVisitor) VisitOptionType(node *OptionType) interface{}                       { return nil }
