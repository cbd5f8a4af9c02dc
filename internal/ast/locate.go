package ast

import (
	"reflect"

	"github.com/ferrite-lang/ferrite/internal/position"
)

// Enclosing returns the chain of nodes under root whose spans contain pos,
// outermost first. Subtrees whose span is valid but misses pos are not
// searched; nodes without a valid span are searched but not reported.
func Enclosing(root Node, pos position.Position) []Node {
	var path []Node
	Inspect(root, func(n Node) bool {
		span := n.GetSpan()
		if !span.IsValid() {
			return true
		}
		if !span.Contains(pos) {
			return false
		}
		path = append(path, n)
		return true
	})
	return path
}

// Innermost returns the deepest node whose span contains pos, or nil.
func Innermost(root Node, pos position.Position) Node {
	path := Enclosing(root, pos)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

// Overlapping returns the nodes under root whose spans overlap span, in
// source order.
func Overlapping(root Node, span position.Span) []Node {
	var out []Node
	Inspect(root, func(n Node) bool {
		s := n.GetSpan()
		if !s.IsValid() {
			return true
		}
		if !s.Overlaps(span) {
			return false
		}
		out = append(out, n)
		return true
	})
	return out
}

// NodeName is the node's type name without package qualifier, as in
// "BinaryExpression".
func NodeName(n Node) string {
	t := reflect.TypeOf(n)
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
