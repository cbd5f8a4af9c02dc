package ast

// recordingVisitor records the name of every Visit method called.
type recordingVisitor struct {
	visited []string
}

func (r *recordingVisitor) VisitAst(node *Ast) interface{} {
	r.visited = append(r.visited, "Ast")
	return node
}
func (r *recordingVisitor) VisitIdentifier(node *Identifier) interface{} {
	r.visited = append(r.visited, "Identifier")
	return node
}
func (r *recordingVisitor) VisitNumberLiteral(node *NumberLiteral) interface{} {
	r.visited = append(r.visited, "NumberLiteral")
	return node
}
func (r *recordingVisitor) VisitBooleanLiteral(node *BooleanLiteral) interface{} {
	r.visited = append(r.visited, "BooleanLiteral")
	return node
}
func (r *recordingVisitor) VisitStringLiteral(node *StringLiteral) interface{} {
	r.visited = append(r.visited, "StringLiteral")
	return node
}
func (r *recordingVisitor) VisitNullLiteral(node *NullLiteral) interface{} {
	r.visited = append(r.visited, "NullLiteral")
	return node
}
func (r *recordingVisitor) VisitSelfExpression(node *SelfExpression) interface{} {
	r.visited = append(r.visited, "SelfExpression")
	return node
}
func (r *recordingVisitor) VisitObjectLiteral(node *ObjectLiteral) interface{} {
	r.visited = append(r.visited, "ObjectLiteral")
	return node
}
func (r *recordingVisitor) VisitObjectProperty(node *ObjectProperty) interface{} {
	r.visited = append(r.visited, "ObjectProperty")
	return node
}
func (r *recordingVisitor) VisitArrayLiteral(node *ArrayLiteral) interface{} {
	r.visited = append(r.visited, "ArrayLiteral")
	return node
}
func (r *recordingVisitor) VisitUnaryExpression(node *UnaryExpression) interface{} {
	r.visited = append(r.visited, "UnaryExpression")
	return node
}
func (r *recordingVisitor) VisitUpdateExpression(node *UpdateExpression) interface{} {
	r.visited = append(r.visited, "UpdateExpression")
	return node
}
func (r *recordingVisitor) VisitBinaryExpression(node *BinaryExpression) interface{} {
	r.visited = append(r.visited, "BinaryExpression")
	return node
}
func (r *recordingVisitor) VisitFunctionLiteral(node *FunctionLiteral) interface{} {
	r.visited = append(r.visited, "FunctionLiteral")
	return node
}
func (r *recordingVisitor) VisitFunctionParameter(node *FunctionParameter) interface{} {
	r.visited = append(r.visited, "FunctionParameter")
	return node
}
func (r *recordingVisitor) VisitCallExpression(node *CallExpression) interface{} {
	r.visited = append(r.visited, "CallExpression")
	return node
}
func (r *recordingVisitor) VisitMemberExpression(node *MemberExpression) interface{} {
	r.visited = append(r.visited, "MemberExpression")
	return node
}
func (r *recordingVisitor) VisitTryExpression(node *TryExpression) interface{} {
	r.visited = append(r.visited, "TryExpression")
	return node
}
func (r *recordingVisitor) VisitOkExpression(node *OkExpression) interface{} {
	r.visited = append(r.visited, "OkExpression")
	return node
}
func (r *recordingVisitor) VisitErrExpression(node *ErrExpression) interface{} {
	r.visited = append(r.visited, "ErrExpression")
	return node
}
func (r *recordingVisitor) VisitSomeExpression(node *SomeExpression) interface{} {
	r.visited = append(r.visited, "SomeExpression")
	return node
}
func (r *recordingVisitor) VisitNoneExpression(node *NoneExpression) interface{} {
	r.visited = append(r.visited, "NoneExpression")
	return node
}
func (r *recordingVisitor) VisitRawPointerExpression(node *RawPointerExpression) interface{} {
	r.visited = append(r.visited, "RawPointerExpression")
	return node
}
func (r *recordingVisitor) VisitAddressOfExpression(node *AddressOfExpression) interface{} {
	r.visited = append(r.visited, "AddressOfExpression")
	return node
}
func (r *recordingVisitor) VisitDereferenceExpression(node *DereferenceExpression) interface{} {
	r.visited = append(r.visited, "DereferenceExpression")
	return node
}
func (r *recordingVisitor) VisitCastExpression(node *CastExpression) interface{} {
	r.visited = append(r.visited, "CastExpression")
	return node
}
func (r *recordingVisitor) VisitAllocateExpression(node *AllocateExpression) interface{} {
	r.visited = append(r.visited, "AllocateExpression")
	return node
}
func (r *recordingVisitor) VisitDeallocateExpression(node *DeallocateExpression) interface{} {
	r.visited = append(r.visited, "DeallocateExpression")
	return node
}
func (r *recordingVisitor) VisitNullPointerExpression(node *NullPointerExpression) interface{} {
	r.visited = append(r.visited, "NullPointerExpression")
	return node
}
func (r *recordingVisitor) VisitSizeOfExpression(node *SizeOfExpression) interface{} {
	r.visited = append(r.visited, "SizeOfExpression")
	return node
}
func (r *recordingVisitor) VisitTypeOfExpression(node *TypeOfExpression) interface{} {
	r.visited = append(r.visited, "TypeOfExpression")
	return node
}
func (r *recordingVisitor) VisitTypeCheckExpression(node *TypeCheckExpression) interface{} {
	r.visited = append(r.visited, "TypeCheckExpression")
	return node
}
func (r *recordingVisitor) VisitLetStatement(node *LetStatement) interface{} {
	r.visited = append(r.visited, "LetStatement")
	return node
}
func (r *recordingVisitor) VisitConstStatement(node *ConstStatement) interface{} {
	r.visited = append(r.visited, "ConstStatement")
	return node
}
func (r *recordingVisitor) VisitReturnStatement(node *ReturnStatement) interface{} {
	r.visited = append(r.visited, "ReturnStatement")
	return node
}
func (r *recordingVisitor) VisitExpressionStatement(node *ExpressionStatement) interface{} {
	r.visited = append(r.visited, "ExpressionStatement")
	return node
}
func (r *recordingVisitor) VisitIfStatement(node *IfStatement) interface{} {
	r.visited = append(r.visited, "IfStatement")
	return node
}
func (r *recordingVisitor) VisitBlockStatement(node *BlockStatement) interface{} {
	r.visited = append(r.visited, "BlockStatement")
	return node
}
func (r *recordingVisitor) VisitForStatement(node *ForStatement) interface{} {
	r.visited = append(r.visited, "ForStatement")
	return node
}
func (r *recordingVisitor) VisitWhileStatement(node *WhileStatement) interface{} {
	r.visited = append(r.visited, "WhileStatement")
	return node
}
func (r *recordingVisitor) VisitContinueStatement(node *ContinueStatement) interface{} {
	r.visited = append(r.visited, "ContinueStatement")
	return node
}
func (r *recordingVisitor) VisitBreakStatement(node *BreakStatement) interface{} {
	r.visited = append(r.visited, "BreakStatement")
	return node
}
func (r *recordingVisitor) VisitUnsafeStatement(node *UnsafeStatement) interface{} {
	r.visited = append(r.visited, "UnsafeStatement")
	return node
}
func (r *recordingVisitor) VisitMatchStatement(node *MatchStatement) interface{} {
	r.visited = append(r.visited, "MatchStatement")
	return node
}
func (r *recordingVisitor) VisitStructDeclaration(node *StructDeclaration) interface{} {
	r.visited = append(r.visited, "StructDeclaration")
	return node
}
func (r *recordingVisitor) VisitStructField(node *StructField) interface{} {
	r.visited = append(r.visited, "StructField")
	return node
}
func (r *recordingVisitor) VisitMethodDeclaration(node *MethodDeclaration) interface{} {
	r.visited = append(r.visited, "MethodDeclaration")
	return node
}
func (r *recordingVisitor) VisitEnumDeclaration(node *EnumDeclaration) interface{} {
	r.visited = append(r.visited, "EnumDeclaration")
	return node
}
func (r *recordingVisitor) VisitEnumVariant(node *EnumVariant) interface{} {
	r.visited = append(r.visited, "EnumVariant")
	return node
}
func (r *recordingVisitor) VisitTraitDeclaration(node *TraitDeclaration) interface{} {
	r.visited = append(r.visited, "TraitDeclaration")
	return node
}
func (r *recordingVisitor) VisitMethodSignature(node *MethodSignature) interface{} {
	r.visited = append(r.visited, "MethodSignature")
	return node
}
func (r *recordingVisitor) VisitTraitImplementation(node *TraitImplementation) interface{} {
	r.visited = append(r.visited, "TraitImplementation")
	return node
}
func (r *recordingVisitor) VisitModuleDeclaration(node *ModuleDeclaration) interface{} {
	r.visited = append(r.visited, "ModuleDeclaration")
	return node
}
func (r *recordingVisitor) VisitUseStatement(node *UseStatement) interface{} {
	r.visited = append(r.visited, "UseStatement")
	return node
}
func (r *recordingVisitor) VisitMatchArm(node *MatchArm) interface{} {
	r.visited = append(r.visited, "MatchArm")
	return node
}
func (r *recordingVisitor) VisitLiteralPattern(node *LiteralPattern) interface{} {
	r.visited = append(r.visited, "LiteralPattern")
	return node
}
func (r *recordingVisitor) VisitIdentifierPattern(node *IdentifierPattern) interface{} {
	r.visited = append(r.visited, "IdentifierPattern")
	return node
}
func (r *recordingVisitor) VisitWildcardPattern(node *WildcardPattern) interface{} {
	r.visited = append(r.visited, "WildcardPattern")
	return node
}
func (r *recordingVisitor) VisitDestructurePattern(node *DestructurePattern) interface{} {
	r.visited = append(r.visited, "DestructurePattern")
	return node
}
func (r *recordingVisitor) VisitFieldPattern(node *FieldPattern) interface{} {
	r.visited = append(r.visited, "FieldPattern")
	return node
}
func (r *recordingVisitor) VisitRangePattern(node *RangePattern) interface{} {
	r.visited = append(r.visited, "RangePattern")
	return node
}
func (r *recordingVisitor) VisitOrPattern(node *OrPattern) interface{} {
	r.visited = append(r.visited, "OrPattern")
	return node
}
func (r *recordingVisitor) VisitPrimitiveType(node *PrimitiveType) interface{} {
	r.visited = append(r.visited, "PrimitiveType")
	return node
}
func (r *recordingVisitor) VisitFunctionType(node *FunctionType) interface{} {
	r.visited = append(r.visited, "FunctionType")
	return node
}
func (r *recordingVisitor) VisitStructType(node *StructType) interface{} {
	r.visited = append(r.visited, "StructType")
	return node
}
func (r *recordingVisitor) VisitEnumType(node *EnumType) interface{} {
	r.visited = append(r.visited, "EnumType")
	return node
}
func (r *recordingVisitor) VisitArrayType(node *ArrayType) interface{} {
	r.visited = append(r.visited, "ArrayType")
	return node
}
func (r *recordingVisitor) VisitSliceType(node *SliceType) interface{} {
	r.visited = append(r.visited, "SliceType")
	return node
}
func (r *recordingVisitor) VisitRawPointerType(node *RawPointerType) interface{} {
	r.visited = append(r.visited, "RawPointerType")
	return node
}
func (r *recordingVisitor) VisitReferenceType(node *ReferenceType) interface{} {
	r.visited = append(r.visited, "ReferenceType")
	return node
}
func (r *recordingVisitor) VisitLifetimeReferenceType(node *LifetimeReferenceType) interface{} {
	r.visited = append(r.visited, "LifetimeReferenceType")
	return node
}
func (r *recordingVisitor) VisitNamedType(node *NamedType) interface{} {
	r.visited = append(r.visited, "NamedType")
	return node
}
func (r *recordingVisitor) VisitResultType(node *ResultType) interface{} {
	r.visited = append(r.visited, "ResultType")
	return node
}
func (r *recordingVisitor) VisitOptionType(node *OptionType) interface{} {
	r.visited = append(r.visited, "OptionType")
	return node
}
