package ast

import "github.com/ferrite-lang/ferrite/internal/position"

// Visibility of a field or method
type Visibility int

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "pub"
	}
	return "priv"
}

// prefix renders the visibility as it appears in source.
func (v Visibility) prefix() string {
	if v == Public {
		return "pub "
	}
	return ""
}

// Mutability qualifies pointer and reference types.
type Mutability int

const (
	Const Mutability = iota
	Mut
)

func (m Mutability) String() string {
	if m == Mut {
		return "mut"
	}
	return "const"
}

// Lifetime is a named lifetime annotation such as 'a. It is a leaf owned by
// the node that carries it.
type Lifetime struct {
	Span position.Span
	Name string // without the leading quote
}

// NewLifetime creates a lifetime annotation.
func NewLifetime(span position.Span, name string) Lifetime {
	return Lifetime{Span: span, Name: name}
}

func (l Lifetime) String() string { return "'" + l.Name }
