// Package ast defines the abstract syntax tree of the Ferrite language.
//
// Every variant set (Statement, Expression, Pattern, Type) is closed: the
// interfaces carry unexported marker methods so only this package can add
// variants, and consumers are expected to switch over every concrete type.
// Nodes are built once by the parser through the New* constructors, carry
// the source span of the tokens they were built from, and are never mutated
// afterwards. Ownership is strictly tree shaped: a child belongs to exactly
// one parent and nothing points back up. Information that needs to refer to
// other nodes (resolved symbols, inferred types) belongs in a SideTable.
package ast

import (
	"strings"

	"github.com/ferrite-lang/ferrite/internal/position"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// Node is the base interface for all AST nodes
type Node interface {
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// String returns a source-like rendering of the node
	String() string
	// Accept implements the visitor pattern for AST traversal
	Accept(visitor Visitor) interface{}
}

// Statement represents all statement nodes in the AST
type Statement interface {
	Node
	statementNode()
}

// Declaration is the subset of statements that introduce named items.
type Declaration interface {
	Statement
	declarationNode()
}

// Expression represents all expression nodes in the AST
type Expression interface {
	Node
	expressionNode()
}

// Pattern represents all pattern nodes in the AST
type Pattern interface {
	Node
	patternNode()
}

// Type represents all type nodes in the AST
type Type interface {
	Node
	typeNode()
}

// Ast is the root of a compilation unit. The order of Statements is
// significant: it is both declaration order and execution order.
type Ast struct {
	Statements []Statement
}

// NewAst creates a root holding the given top-level statements.
func NewAst(statements ...Statement) *Ast {
	return &Ast{Statements: clone(statements)}
}

func (a *Ast) GetSpan() position.Span {
	var span position.Span
	for _, s := range a.Statements {
		span = span.Union(s.GetSpan())
	}
	return span
}
func (a *Ast) String() string                     { return joinStatements(a.Statements, "\n") }
func (a *Ast) Accept(visitor Visitor) interface{} { return visitor.VisitAst(a) }

// Merge concatenates independently built trees into one, in argument order.
// Trees never reference each other, so no fix-up is needed; the inputs hand
// their statements over to the result and should not be used afterwards.
func Merge(trees ...*Ast) *Ast {
	n := 0
	for _, t := range trees {
		if t != nil {
			n += len(t.Statements)
		}
	}

	merged := &Ast{Statements: make([]Statement, 0, n)}
	for _, t := range trees {
		if t != nil {
			merged.Statements = append(merged.Statements, t.Statements...)
		}
	}
	return merged
}

// SpanFrom returns the span of a single token.
func SpanFrom(tok token.Token) position.Span { return tok.Span() }

// Cover returns the smallest span enclosing every non-nil node.
func Cover(nodes ...Node) position.Span {
	var span position.Span
	for _, n := range nodes {
		if n == nil || isNilNode(n) {
			continue
		}
		span = span.Union(n.GetSpan())
	}
	return span
}

// clone copies a child slice so the node owns its children exclusively.
func clone[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func joinStatements(stmts []Statement, sep string) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, sep)
}

func joinNodes[T Node](nodes []T, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, sep)
}
