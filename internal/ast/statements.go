package ast

import (
	"fmt"
	"strings"

	"github.com/ferrite-lang/ferrite/internal/position"
)

// LetStatement binds Name to Value. The binding has no declared type; it is
// inferred downstream.
type LetStatement struct {
	Span  position.Span
	Name  *Identifier
	Value Expression
}

func NewLetStatement(span position.Span, name *Identifier, value Expression) *LetStatement {
	return &LetStatement{Span: span, Name: name, Value: value}
}

func (l *LetStatement) GetSpan() position.Span { return l.Span }
func (l *LetStatement) statementNode()         {}
func (l *LetStatement) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name, l.Value)
}
func (l *LetStatement) Accept(visitor Visitor) interface{} { return visitor.VisitLetStatement(l) }

type ConstStatement struct {
	Span  position.Span
	Name  *Identifier
	Value Expression
}

func NewConstStatement(span position.Span, name *Identifier, value Expression) *ConstStatement {
	return &ConstStatement{Span: span, Name: name, Value: value}
}

func (c *ConstStatement) GetSpan() position.Span { return c.Span }
func (c *ConstStatement) statementNode()         {}
func (c *ConstStatement) String() string {
	return fmt.Sprintf("const %s = %s;", c.Name, c.Value)
}
func (c *ConstStatement) Accept(visitor Visitor) interface{} { return visitor.VisitConstStatement(c) }

type ReturnStatement struct {
	Span  position.Span
	Value Expression // nil for a bare return
}

func NewReturnStatement(span position.Span, value Expression) *ReturnStatement {
	return &ReturnStatement{Span: span, Value: value}
}

func (r *ReturnStatement) GetSpan() position.Span { return r.Span }
func (r *ReturnStatement) statementNode()         {}
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}
func (r *ReturnStatement) Accept(visitor Visitor) interface{} { return visitor.VisitReturnStatement(r) }

type ExpressionStatement struct {
	Span       position.Span
	Expression Expression
}

func NewExpressionStatement(span position.Span, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Span: span, Expression: expr}
}

func (e *ExpressionStatement) GetSpan() position.Span { return e.Span }
func (e *ExpressionStatement) statementNode()         {}
func (e *ExpressionStatement) String() string         { return e.Expression.String() + ";" }
func (e *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(e)
}

type IfStatement struct {
	Span        position.Span
	Test        Expression
	Consequence Statement
	Alternate   Statement // nil when there is no else branch
}

func NewIfStatement(span position.Span, test Expression, consequence, alternate Statement) *IfStatement {
	return &IfStatement{Span: span, Test: test, Consequence: consequence, Alternate: alternate}
}

func (i *IfStatement) GetSpan() position.Span { return i.Span }
func (i *IfStatement) statementNode()         {}
func (i *IfStatement) String() string {
	result := fmt.Sprintf("if %s %s", i.Test, i.Consequence)
	if i.Alternate != nil {
		result += " else " + i.Alternate.String()
	}
	return result
}
func (i *IfStatement) Accept(visitor Visitor) interface{} { return visitor.VisitIfStatement(i) }

// BlockStatement is a braced statement sequence. It marks a scope boundary
// for name resolution.
type BlockStatement struct {
	Span       position.Span
	Statements []Statement
}

func NewBlockStatement(span position.Span, statements ...Statement) *BlockStatement {
	return &BlockStatement{Span: span, Statements: clone(statements)}
}

func (b *BlockStatement) GetSpan() position.Span { return b.Span }
func (b *BlockStatement) statementNode()         {}
func (b *BlockStatement) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}

	var parts []string
	for _, stmt := range b.Statements {
		parts = append(parts, indent(stmt.String()))
	}
	return fmt.Sprintf("{\n%s\n}", strings.Join(parts, "\n"))
}
func (b *BlockStatement) Accept(visitor Visitor) interface{} { return visitor.VisitBlockStatement(b) }

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

// ForInit is the initializer clause of a for statement: either a nested
// statement (`let i = 0`) or a bare expression (`i = 0`).
type ForInit interface {
	Node() Node
	forInit()
}

type ForInitStatement struct {
	Statement Statement
}

func (f *ForInitStatement) Node() Node { return f.Statement }
func (f *ForInitStatement) forInit()   {}

type ForInitExpression struct {
	Expression Expression
}

func (f *ForInitExpression) Node() Node { return f.Expression }
func (f *ForInitExpression) forInit()   {}

// ForStatement is a C-style loop; every header clause is optional.
type ForStatement struct {
	Span   position.Span
	Init   ForInit    // nil when absent
	Test   Expression // nil when absent
	Update Expression // nil when absent
	Body   Statement
}

func NewForStatement(span position.Span, init ForInit, test, update Expression, body Statement) *ForStatement {
	return &ForStatement{Span: span, Init: init, Test: test, Update: update, Body: body}
}

func (f *ForStatement) GetSpan() position.Span { return f.Span }
func (f *ForStatement) statementNode()         {}
func (f *ForStatement) String() string {
	var init, test, update string
	if f.Init != nil {
		init = strings.TrimSuffix(f.Init.Node().String(), ";")
	}
	if f.Test != nil {
		test = f.Test.String()
	}
	if f.Update != nil {
		update = f.Update.String()
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", init, test, update, f.Body)
}
func (f *ForStatement) Accept(visitor Visitor) interface{} { return visitor.VisitForStatement(f) }

type WhileStatement struct {
	Span      position.Span
	Condition Expression
	Body      Statement
}

func NewWhileStatement(span position.Span, condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{Span: span, Condition: condition, Body: body}
}

func (w *WhileStatement) GetSpan() position.Span { return w.Span }
func (w *WhileStatement) statementNode()         {}
func (w *WhileStatement) String() string {
	return fmt.Sprintf("while %s %s", w.Condition, w.Body)
}
func (w *WhileStatement) Accept(visitor Visitor) interface{} { return visitor.VisitWhileStatement(w) }

type ContinueStatement struct {
	Span position.Span
}

func NewContinueStatement(span position.Span) *ContinueStatement {
	return &ContinueStatement{Span: span}
}

func (c *ContinueStatement) GetSpan() position.Span { return c.Span }
func (c *ContinueStatement) statementNode()         {}
func (c *ContinueStatement) String() string         { return "continue;" }
func (c *ContinueStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitContinueStatement(c)
}

type BreakStatement struct {
	Span position.Span
}

func NewBreakStatement(span position.Span) *BreakStatement { return &BreakStatement{Span: span} }

func (b *BreakStatement) GetSpan() position.Span             { return b.Span }
func (b *BreakStatement) statementNode()                     {}
func (b *BreakStatement) String() string                     { return "break;" }
func (b *BreakStatement) Accept(visitor Visitor) interface{} { return visitor.VisitBreakStatement(b) }

// UnsafeStatement wraps a block in which memory operations are permitted.
type UnsafeStatement struct {
	Span  position.Span
	Block *BlockStatement
}

func NewUnsafeStatement(span position.Span, block *BlockStatement) *UnsafeStatement {
	return &UnsafeStatement{Span: span, Block: block}
}

func (u *UnsafeStatement) GetSpan() position.Span { return u.Span }
func (u *UnsafeStatement) statementNode()         {}
func (u *UnsafeStatement) String() string         { return "unsafe " + u.Block.String() }
func (u *UnsafeStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnsafeStatement(u)
}

// MatchStatement tests Value against Arms in order.
type MatchStatement struct {
	Span  position.Span
	Value Expression
	Arms  []*MatchArm
}

func NewMatchStatement(span position.Span, value Expression, arms ...*MatchArm) *MatchStatement {
	return &MatchStatement{Span: span, Value: value, Arms: clone(arms)}
}

func (m *MatchStatement) GetSpan() position.Span { return m.Span }
func (m *MatchStatement) statementNode()         {}
func (m *MatchStatement) String() string {
	if len(m.Arms) == 0 {
		return fmt.Sprintf("match %s {}", m.Value)
	}
	parts := make([]string, 0, len(m.Arms))
	for _, arm := range m.Arms {
		parts = append(parts, indent(arm.String()))
	}
	return fmt.Sprintf("match %s {\n%s\n}", m.Value, strings.Join(parts, "\n"))
}
func (m *MatchStatement) Accept(visitor Visitor) interface{} { return visitor.VisitMatchStatement(m) }
