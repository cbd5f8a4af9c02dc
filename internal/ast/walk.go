package ast

import "reflect"

// Children returns the direct children of n in source order. Absent
// optional children are skipped. The result is a fresh slice; the nodes are
// shared with the tree and must not be modified.
func Children(n Node) []Node {
	var out []Node
	add := func(children ...Node) {
		for _, c := range children {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *Ast:
		for _, s := range n.Statements {
			add(s)
		}

	// expressions
	case *Identifier, *NumberLiteral, *BooleanLiteral, *StringLiteral,
		*NullLiteral, *SelfExpression, *NoneExpression:
	case *ObjectLiteral:
		for _, p := range n.Properties {
			add(p)
		}
	case *ObjectProperty:
		add(n.Key, n.Value)
	case *ArrayLiteral:
		for _, e := range n.Elements {
			add(e)
		}
	case *UnaryExpression:
		add(n.Operand)
	case *UpdateExpression:
		add(n.Target)
	case *BinaryExpression:
		add(n.Left, n.Right)
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			add(p)
		}
		add(n.Body)
	case *FunctionParameter:
		add(n.Name, n.Default)
	case *CallExpression:
		add(n.Callee)
		for _, a := range n.Arguments {
			add(a)
		}
	case *MemberExpression:
		add(n.Object, n.Property)
	case *TryExpression:
		add(n.Operand)
	case *OkExpression:
		add(n.Value)
	case *ErrExpression:
		add(n.Value)
	case *SomeExpression:
		add(n.Value)

	// memory operations
	case *RawPointerExpression:
		add(n.Operand)
	case *AddressOfExpression:
		add(n.Operand)
	case *DereferenceExpression:
		add(n.Operand)
	case *CastExpression:
		add(n.Operand, n.Target)
	case *AllocateExpression:
		add(n.Target, n.Size)
	case *DeallocateExpression:
		add(n.Operand)
	case *NullPointerExpression:
		add(n.Target)
	case *SizeOfExpression:
		add(n.Operand)
	case *TypeOfExpression:
		add(n.Operand)
	case *TypeCheckExpression:
		add(n.Operand, n.Target)

	// statements
	case *LetStatement:
		add(n.Name, n.Value)
	case *ConstStatement:
		add(n.Name, n.Value)
	case *ReturnStatement:
		add(n.Value)
	case *ExpressionStatement:
		add(n.Expression)
	case *IfStatement:
		add(n.Test, n.Consequence, n.Alternate)
	case *BlockStatement:
		for _, s := range n.Statements {
			add(s)
		}
	case *ForStatement:
		if n.Init != nil {
			add(n.Init.Node())
		}
		add(n.Test, n.Update, n.Body)
	case *WhileStatement:
		add(n.Condition, n.Body)
	case *ContinueStatement, *BreakStatement:
	case *UnsafeStatement:
		add(n.Block)
	case *MatchStatement:
		add(n.Value)
		for _, arm := range n.Arms {
			add(arm)
		}

	// declarations
	case *StructDeclaration:
		add(n.Name)
		for _, f := range n.Fields {
			add(f)
		}
		for _, m := range n.Methods {
			add(m)
		}
	case *StructField:
		add(n.Name, n.Type)
	case *MethodDeclaration:
		add(n.Name)
		for _, p := range n.Parameters {
			add(p)
		}
		add(n.ReturnType, n.Body)
	case *EnumDeclaration:
		add(n.Name)
		for _, v := range n.Variants {
			add(v)
		}
		for _, m := range n.Methods {
			add(m)
		}
	case *EnumVariant:
		add(n.Name)
		for _, f := range n.Fields {
			add(f)
		}
		for _, t := range n.Types {
			add(t)
		}
	case *TraitDeclaration:
		add(n.Name)
		for _, s := range n.Signatures {
			add(s)
		}
	case *MethodSignature:
		add(n.Name)
		for _, p := range n.Parameters {
			add(p)
		}
		add(n.ReturnType, n.DefaultImpl)
	case *TraitImplementation:
		add(n.TraitName, n.ForType)
		for _, m := range n.Methods {
			add(m)
		}
	case *ModuleDeclaration:
		add(n.Name)
		for _, s := range n.Statements {
			add(s)
		}
	case *UseStatement:
		for _, seg := range n.Path {
			add(seg)
		}
		add(n.Alias)

	// patterns
	case *MatchArm:
		add(n.Pattern, n.Guard, n.Body)
	case *LiteralPattern:
		add(n.Value)
	case *IdentifierPattern:
		add(n.Name)
	case *WildcardPattern:
	case *DestructurePattern:
		switch k := n.Kind.(type) {
		case *StructDestructure:
			add(k.Name)
		case *EnumDestructure:
			add(k.Enum, k.Variant)
		}
		for _, f := range n.Fields {
			add(f)
		}
	case *FieldPattern:
		add(n.Name, n.Pattern)
	case *RangePattern:
		add(n.Low, n.High)
	case *OrPattern:
		for _, alt := range n.Alternatives {
			add(alt)
		}

	// types
	case *PrimitiveType:
	case *FunctionType:
		for _, p := range n.Params {
			add(p)
		}
		add(n.Return)
	case *StructType:
		add(n.Name)
	case *EnumType:
		add(n.Name)
	case *ArrayType:
		add(n.Elem)
	case *SliceType:
		add(n.Elem)
	case *RawPointerType:
		add(n.Elem)
	case *ReferenceType:
		add(n.Elem)
	case *LifetimeReferenceType:
		add(n.Elem)
	case *NamedType:
		add(n.Name)
	case *ResultType:
		add(n.Ok, n.Err)
	case *OptionType:
		add(n.Elem)
	}
	return out
}

// WalkingVisitor visits a node and then every descendant, depth first in
// source order, delegating each visit to the wrapped visitor.
type WalkingVisitor struct {
	visitor Visitor
}

// NewWalkingVisitor creates a new walking visitor that delegates to the provided visitor.
func NewWalkingVisitor(visitor Visitor) *WalkingVisitor {
	return &WalkingVisitor{visitor: visitor}
}

// Walk traverses the AST starting from the given node.
func (w *WalkingVisitor) Walk(node Node) {
	if node == nil || isNilNode(node) {
		return
	}
	node.Accept(w.visitor)
	for _, c := range Children(node) {
		w.Walk(c)
	}
}

// Walk visits node and all of its descendants with v.
func Walk(v Visitor, node Node) { NewWalkingVisitor(v).Walk(node) }

// Inspect traverses the tree depth first, calling f for each node. When f
// returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || isNilNode(node) || !f(node) {
		return
	}
	for _, c := range Children(node) {
		Inspect(c, f)
	}
}

// CountNodes returns the number of nodes in the tree rooted at node.
func CountNodes(node Node) int {
	count := 0
	Inspect(node, func(Node) bool {
		count++
		return true
	})
	return count
}

// isNilNode catches typed nil pointers stored in a Node interface.
func isNilNode(n Node) bool {
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
