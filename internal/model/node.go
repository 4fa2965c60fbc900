// Package model defines the data structures for syntax-tree dumping.
package model

// Path represents a file system path.
type Path string

// Mode selects the grammar a source file is parsed under.
type Mode string

const (
	// ModeScript parses source as a standalone script.
	ModeScript Mode = "script"
	// ModeModule parses source as a module with import/export semantics.
	ModeModule Mode = "module"
)

// Node is one syntax-tree node: a type tag plus its fields, in the order the
// parser attached them. Nodes are built once by the parser adapter and read
// afterwards; nothing mutates a finished tree.
type Node struct {
	Type   string
	Fields []Field
}

// Field is one named node member.
type Field struct {
	Name  string
	Value Value
}

// Value is the closed set of shapes a field can carry. Anything outside this
// set must surface as an encoding failure, never be silently coerced.
type Value interface{ value() }

type (
	String string
	Number float64
	Bool   bool
	Null   struct{}

	// Regex is a regular-expression literal object. The output encoding has
	// no native representation for it; the serializer rewrites it to its
	// source form when it sits under a field named "value".
	Regex struct {
		Pattern string
		Flags   string
	}

	// List is an ordered sequence of values.
	List []Value

	// Opaque carries a parser value no encoder branch understands, so that
	// unsupported value classes fail loudly at serialization time.
	Opaque struct{ V any }
)

func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Null) value()   {}
func (Regex) value()  {}
func (List) value()   {}
func (Opaque) value() {}
func (*Node) value()  {}

// Literal renders the regex the way it prints in source, e.g. "/abc/gi".
func (r Regex) Literal() string {
	return "/" + r.Pattern + "/" + r.Flags
}

// Append attaches a field, preserving attachment order.
func (n *Node) Append(name string, v Value) {
	n.Fields = append(n.Fields, Field{Name: name, Value: v})
}

// Lookup returns the value of the named field, if present.
func (n *Node) Lookup(name string) (Value, bool) {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Walk calls fn for n and every node beneath it, depth first, in field order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}

	fn(n)

	for _, f := range n.Fields {
		walkValue(f.Value, fn)
	}
}

func walkValue(v Value, fn func(*Node)) {
	switch t := v.(type) {
	case *Node:
		t.Walk(fn)
	case List:
		for _, item := range t {
			walkValue(item, fn)
		}
	}
}
