package adapter

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/parser"

	m "github.com/mouse-blink/esdump/internal/model"
)

// ESParserAdapter encapsulates the external ECMAScript parser so the domain
// layer can treat parsing as a black box that turns a (source, grammar mode)
// pair into a tree.
type ESParserAdapter interface {
	// Parse builds a syntax tree for src under the given grammar mode.
	Parse(ctx context.Context, src string, mode m.Mode) (*m.Node, error)
}

// GoFastAdapter provides a concrete ESParserAdapter backed by
// github.com/t14raptor/go-fast.
type GoFastAdapter struct{}

// NewGoFastAdapter constructs a GoFastAdapter.
func NewGoFastAdapter() *GoFastAdapter {
	return &GoFastAdapter{}
}

// Parse hands src to go-fast and converts the typed AST into the generic
// node tree. go-fast parses one unified grammar, so script mode is realized
// by rejecting module-only declarations after the fact; module grammar is a
// superset of script grammar.
func (a *GoFastAdapter) Parse(ctx context.Context, src string, mode m.Mode) (*m.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	program, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	root, ok := convert(reflect.ValueOf(program)).(*m.Node)
	if !ok {
		return nil, fmt.Errorf("parser returned %T, want a program node", program)
	}

	if mode == m.ModeScript {
		if decl := findModuleDecl(root); decl != "" {
			return nil, fmt.Errorf("%s is not allowed in script grammar", decl)
		}
	}

	root.Append("sourceType", m.String(mode))

	return root, nil
}

// convert maps a reflected go-fast AST value onto the closed value variants.
// Struct field declaration order becomes the node's field order, which the
// canonical serializer later preserves verbatim.
func convert(v reflect.Value) m.Value {
	switch v.Kind() {
	case reflect.Invalid:
		return m.Null{}
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return m.Null{}
		}

		return convert(v.Elem())
	case reflect.Struct:
		return convertStruct(v)
	case reflect.Slice, reflect.Array:
		list := make(m.List, 0, v.Len())
		for i := range v.Len() {
			list = append(list, convert(v.Index(i)))
		}

		return list
	case reflect.String:
		return m.String(v.String())
	case reflect.Bool:
		return m.Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return m.Number(float64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return m.Number(float64(v.Uint()))
	case reflect.Float32, reflect.Float64:
		return m.Number(v.Float())
	default:
		// Maps, funcs and channels have no place in a syntax tree. Carry
		// them opaquely so the encoder fails instead of coercing.
		return m.Opaque{V: v.Interface()}
	}
}

func convertStruct(v reflect.Value) m.Value {
	t := v.Type()
	node := &m.Node{Type: t.Name()}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		value := convert(v.Field(i))

		if field.Anonymous {
			// Flatten embedded nodes the way the parser presents them.
			if embedded, ok := value.(*m.Node); ok {
				node.Fields = append(node.Fields, embedded.Fields...)
				continue
			}
		}

		node.Append(fieldName(field.Name), value)
	}

	// A regex literal additionally carries its runtime object under "value",
	// mirroring how such nodes arrive from ESTree-style parsers. The
	// serializer owns the rewrite of that object into its source form.
	if re, ok := v.Interface().(ast.RegExpLiteral); ok {
		node.Append("value", m.Regex{Pattern: re.Pattern, Flags: re.Flags})
	}

	return node
}

func fieldName(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// findModuleDecl returns the type tag of the first import or export
// declaration in the tree, or "" when there is none.
func findModuleDecl(root *m.Node) string {
	found := ""

	root.Walk(func(n *m.Node) {
		if found != "" {
			return
		}

		if n.Type == "ImportDeclaration" || strings.HasPrefix(n.Type, "Export") {
			found = n.Type
		}
	})

	return found
}
