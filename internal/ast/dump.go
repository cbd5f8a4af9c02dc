package ast

import (
	"fmt"
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	ferrors "github.com/ferrite-lang/ferrite/internal/errors"
	"github.com/ferrite-lang/ferrite/internal/position"
)

var (
	nodeInterface = reflect.TypeOf((*Node)(nil)).Elem()
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	spanType      = reflect.TypeOf(position.Span{})
	lifetimeType  = reflect.TypeOf(Lifetime{})
	astPkgPath    = reflect.TypeOf(Ast{}).PkgPath()
)

// Dump renders the tree rooted at n as YAML for debugging and golden tests.
// Every node becomes a mapping whose first key names the variant, followed
// by its span and fields in declaration order. It fails only for values
// that are not nodes of this package.
func Dump(n Node) ([]byte, error) {
	doc, err := dumpNode(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func dumpNode(n Node) (*yaml.Node, error) {
	if n == nil || isNilNode(n) {
		return nullNode(), nil
	}

	rv := reflect.ValueOf(n)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct || rv.Elem().Type().PkgPath() != astPkgPath {
		return nil, ferrors.UnknownNode(n)
	}
	rv = rv.Elem()
	rt := rv.Type()

	m := &yaml.Node{Kind: yaml.MappingNode}
	addPair(m, "node", scalar("!!str", rt.Name()))
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		v, err := dumpValue(rv.Field(i))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rt.Name(), f.Name, err)
		}
		addPair(m, lowerFirst(f.Name), v)
	}
	return m, nil
}

func dumpValue(v reflect.Value) (*yaml.Node, error) {
	t := v.Type()

	switch {
	case t == spanType:
		return scalar("!!str", v.Interface().(position.Span).String()), nil
	case t == lifetimeType:
		return scalar("!!str", v.Interface().(Lifetime).String()), nil
	case t.Implements(nodeInterface) && (t.Kind() == reflect.Interface || t.Kind() == reflect.Ptr):
		if v.IsNil() {
			return nullNode(), nil
		}
		return dumpNode(v.Interface().(Node))
	}

	switch t.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nullNode(), nil
		}
		return dumpUnion(v.Interface())
	case reflect.Ptr:
		if v.IsNil() {
			return nullNode(), nil
		}
		return dumpValue(v.Elem())
	case reflect.Slice:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if v.Len() == 0 {
			seq.Style = yaml.FlowStyle
		}
		for i := 0; i < v.Len(); i++ {
			item, err := dumpValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, item)
		}
		return seq, nil
	case reflect.String:
		return scalar("!!str", v.String()), nil
	case reflect.Bool:
		return scalar("!!bool", strconv.FormatBool(v.Bool())), nil
	case reflect.Float64:
		return scalar("!!float", strconv.FormatFloat(v.Float(), 'g', -1, 64)), nil
	case reflect.Int:
		if t.Implements(stringerType) {
			return scalar("!!str", v.Interface().(fmt.Stringer).String()), nil
		}
		return scalar("!!int", strconv.FormatInt(v.Int(), 10)), nil
	}
	return nil, ferrors.UnknownNode(v.Interface())
}

// dumpUnion renders the non-node closed sets carried inside nodes.
func dumpUnion(u interface{}) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	switch u := u.(type) {
	case *StructDestructure:
		addPair(m, "kind", scalar("!!str", "struct"))
		name, err := dumpNode(u.Name)
		if err != nil {
			return nil, err
		}
		addPair(m, "name", name)
	case *TupleDestructure:
		addPair(m, "kind", scalar("!!str", "tuple"))
	case *EnumDestructure:
		addPair(m, "kind", scalar("!!str", "enum"))
		enum, err := dumpNode(u.Enum)
		if err != nil {
			return nil, err
		}
		variant, err := dumpNode(u.Variant)
		if err != nil {
			return nil, err
		}
		addPair(m, "enum", enum)
		addPair(m, "variant", variant)
	case *ForInitStatement:
		addPair(m, "kind", scalar("!!str", "statement"))
		inner, err := dumpNode(u.Statement)
		if err != nil {
			return nil, err
		}
		addPair(m, "statement", inner)
	case *ForInitExpression:
		addPair(m, "kind", scalar("!!str", "expression"))
		inner, err := dumpNode(u.Expression)
		if err != nil {
			return nil, err
		}
		addPair(m, "expression", inner)
	default:
		return nil, ferrors.UnknownNode(u)
	}
	return m, nil
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar("!!str", key), value)
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
