package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	m "github.com/mouse-blink/esdump/internal/model"
)

const (
	indentWidth    = 4
	valueFieldName = "value"
)

// EncodeTree renders a syntax tree as a pretty-printed JSON document with
// 4-space indentation. Field order follows the tree exactly; it is never
// re-sorted, so re-encoding the same tree is byte-identical. The only
// non-structural transform is the rewrite of a regular-expression literal
// under a field named "value" into its source form (e.g. "/abc/gi"); every
// other non-representable value fails with an EncodingError.
func EncodeTree(tree *m.Node) ([]byte, error) {
	var buf bytes.Buffer

	if err := encodeNode(&buf, tree, 0); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, node *m.Node, depth int) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	buf.WriteString("{\n")
	writeIndent(buf, depth+1)
	buf.WriteString(`"type": `)
	writeString(buf, node.Type)

	for _, field := range node.Fields {
		buf.WriteString(",\n")
		writeIndent(buf, depth+1)
		writeString(buf, field.Name)
		buf.WriteString(": ")

		if err := encodeValue(buf, field.Name, field.Value, depth+1); err != nil {
			return err
		}
	}

	buf.WriteByte('\n')
	writeIndent(buf, depth)
	buf.WriteByte('}')

	return nil
}

func encodeValue(buf *bytes.Buffer, name string, v m.Value, depth int) error {
	switch t := v.(type) {
	case m.Regex:
		// A regex object has no representation in the output format. The one
		// sanctioned escape hatch is the source-literal rewrite under fields
		// named "value"; anywhere else it must not appear.
		if name != valueFieldName {
			return &EncodingError{FieldName: name, Value: v}
		}

		writeString(buf, t.Literal())
	case m.String:
		writeString(buf, string(t))
	case m.Number:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return &EncodingError{FieldName: name, Value: v}
		}

		buf.WriteString(formatNumber(float64(t)))
	case m.Bool:
		buf.WriteString(strconv.FormatBool(bool(t)))
	case m.Null:
		buf.WriteString("null")
	case *m.Node:
		return encodeNode(buf, t, depth)
	case m.List:
		return encodeList(buf, t, depth)
	default:
		return &EncodingError{FieldName: name, Value: v}
	}

	return nil
}

func encodeList(buf *bytes.Buffer, list m.List, depth int) error {
	if len(list) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")

	for i, item := range list {
		if i > 0 {
			buf.WriteString(",\n")
		}

		writeIndent(buf, depth+1)

		// List items carry no field name, so a regex inside a sequence has
		// no rewrite rule and falls through to the failure branch.
		if err := encodeValue(buf, "", item, depth+1); err != nil {
			return err
		}
	}

	buf.WriteByte('\n')
	writeIndent(buf, depth)
	buf.WriteByte(']')

	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth * indentWidth {
		buf.WriteByte(' ')
	}
}

// writeString emits s as a JSON string. json.Marshal cannot fail for a
// string value, which keeps the leaf escaping rules identical to what a
// generic decoder expects.
func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
