package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Marshal renders the node as compact JSON, object keys in declaration
// order.
func Marshal(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case NumberType:
		if n.Number == "" {
			return fmt.Errorf("number node without lexeme")
		}
		buf.WriteString(n.Number)
	case StringType:
		s, err := json.Marshal(n.String)
		if err != nil {
			return err
		}
		buf.Write(s)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range n.Fields {
			if i != 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := encodeJSON(buf, n.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unencodable node type %s", n.Type)
	}
	return nil
}

// Unmarshal parses one JSON value, preserving object key order and number
// lexemes.
func Unmarshal(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	n, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", ErrSyntax)
	}
	return n, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		return numberNode(t.String()), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeJSONObject(dec *json.Decoder) (*Node, error) {
	obj := NewObject(4)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not a string", tok)
		}
		val, err := decodeJSON(dec)
		if err != nil {
			return nil, err
		}
		// last write wins for duplicate keys
		obj.Set(key, val)
	}
}

func decodeJSONArray(dec *json.Decoder) (*Node, error) {
	arr := &Node{Type: ArrayType}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		val, err := decodeJSONToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, val)
	}
}

func numberNode(lexeme string) *Node {
	n := &Node{Type: NumberType, Number: lexeme}
	if strings.ContainsAny(lexeme, ".eE") {
		if f, err := strconv.ParseFloat(lexeme, 64); err == nil {
			n.Float64 = &f
		}
		return n
	}
	if i, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
		n.Int64 = &i
	}
	return n
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return Marshal(y)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := Unmarshal(d)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}
