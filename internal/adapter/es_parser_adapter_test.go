package adapter

import (
	"context"
	"reflect"
	"testing"

	m "github.com/mouse-blink/esdump/internal/model"
)

func convertAny(v any) m.Value {
	return convert(reflect.ValueOf(v))
}

func TestGoFastAdapter_Parse(t *testing.T) {
	a := NewGoFastAdapter()

	tree, err := a.Parse(context.Background(), "var answer = 42;", m.ModeScript)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if tree.Type != "Program" {
		t.Fatalf("Parse() root = %s, want Program", tree.Type)
	}

	v, ok := tree.Lookup("sourceType")
	if !ok || v != m.String("script") {
		t.Fatalf("Parse() sourceType = %v, want script", v)
	}
}

func TestGoFastAdapter_Parse_ModuleModeTagsRoot(t *testing.T) {
	a := NewGoFastAdapter()

	tree, err := a.Parse(context.Background(), "var x = 1;", m.ModeModule)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if v, _ := tree.Lookup("sourceType"); v != m.String("module") {
		t.Fatalf("Parse() sourceType = %v, want module", v)
	}
}

func TestGoFastAdapter_Parse_RegexLiteralCarriesValue(t *testing.T) {
	a := NewGoFastAdapter()

	tree, err := a.Parse(context.Background(), "var re = /abc/gi;", m.ModeScript)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var found *m.Regex

	tree.Walk(func(n *m.Node) {
		v, ok := n.Lookup("value")
		if !ok {
			return
		}

		if re, ok := v.(m.Regex); ok {
			found = &re
		}
	})

	if found == nil {
		t.Fatalf("no regex literal object found under a value field")
	}

	if got := found.Literal(); got != "/abc/gi" {
		t.Fatalf("regex literal = %q, want /abc/gi", got)
	}
}

func TestGoFastAdapter_Parse_InvalidSource(t *testing.T) {
	a := NewGoFastAdapter()

	if _, err := a.Parse(context.Background(), "var ,;", m.ModeScript); err == nil {
		t.Fatalf("Parse() expected error for invalid source")
	}
}

func TestGoFastAdapter_Parse_ContextCancellation(t *testing.T) {
	a := NewGoFastAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	if _, err := a.Parse(ctx, "var x = 1;", m.ModeScript); err == nil {
		t.Fatalf("Parse() expected error due to context cancellation")
	}
}

func TestFindModuleDecl(t *testing.T) {
	importDecl := &m.Node{Type: "ImportDeclaration"}

	root := &m.Node{Type: "Program"}
	root.Append("body", m.List{importDecl})

	if got := findModuleDecl(root); got != "ImportDeclaration" {
		t.Fatalf("findModuleDecl() = %q, want ImportDeclaration", got)
	}

	exportDecl := &m.Node{Type: "ExportNamedDeclaration"}

	root = &m.Node{Type: "Program"}
	root.Append("body", m.List{exportDecl})

	if got := findModuleDecl(root); got != "ExportNamedDeclaration" {
		t.Fatalf("findModuleDecl() = %q, want ExportNamedDeclaration", got)
	}

	plain := &m.Node{Type: "Program"}
	plain.Append("body", m.List{&m.Node{Type: "ExpressionStatement"}})

	if got := findModuleDecl(plain); got != "" {
		t.Fatalf("findModuleDecl() = %q, want empty", got)
	}
}

func TestConvert_FieldOrderFollowsDeclarationOrder(t *testing.T) {
	type sample struct {
		First  string
		Second bool
		Third  int
	}

	v, ok := convertAny(sample{First: "a", Second: true, Third: 3}).(*m.Node)
	if !ok {
		t.Fatalf("convert did not produce a node")
	}

	if v.Type != "sample" {
		t.Fatalf("node type = %s, want sample", v.Type)
	}

	wantNames := []string{"first", "second", "third"}
	if len(v.Fields) != len(wantNames) {
		t.Fatalf("fields = %v, want %v", v.Fields, wantNames)
	}

	for i, name := range wantNames {
		if v.Fields[i].Name != name {
			t.Fatalf("field %d = %s, want %s", i, v.Fields[i].Name, name)
		}
	}
}

func TestConvert_UnsupportedKindBecomesOpaque(t *testing.T) {
	type sample struct {
		Lookup map[string]int
	}

	node := convertAny(sample{Lookup: map[string]int{}}).(*m.Node)

	v, ok := node.Lookup("lookup")
	if !ok {
		t.Fatalf("missing lookup field")
	}

	if _, ok := v.(m.Opaque); !ok {
		t.Fatalf("map converted to %T, want Opaque", v)
	}
}
