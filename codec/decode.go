package codec

import (
	"math"
	"time"

	"github.com/shelfhq/shelf-go/wire"
)

// Decoder reads the fields of one struct's wire object. Getters record the
// first error and make the rest of the reads no-ops, so generated decode
// code stays flat; unknown keys in the object are simply never looked at.
type Decoder struct {
	n    *wire.Node
	name string
	err  error
}

// Struct starts decoding the wire object n as the struct called name.
func Struct(n *wire.Node, name string) *Decoder {
	d := &Decoder{n: n, name: name}
	if n == nil {
		d.err = &DecodeError{Struct: name, Message: "missing value"}
		return d
	}
	if n.Type != wire.ObjectType {
		d.fail("", &wire.TypeError{Want: wire.ObjectType, Got: n.Type})
	}
	return d
}

// Err returns the first error recorded while decoding, or nil.
func (d *Decoder) Err() error {
	return d.err
}

// Fail records an error for field, typically from decoding a nested value.
// It keeps an earlier error if one is already set.
func (d *Decoder) Fail(field string, err error) {
	if d.err != nil || err == nil {
		return
	}
	d.fail(field, err)
}

func (d *Decoder) fail(field string, err error) {
	d.err = &DecodeError{
		Struct:  d.name,
		Field:   field,
		Message: err.Error(),
		Err:     err,
	}
}

func (d *Decoder) missing(field string) {
	d.err = &DecodeError{
		Struct:  d.name,
		Field:   field,
		Message: "missing required field",
	}
}

// Value returns the required field's raw node, recording an error if the
// field is absent.
func (d *Decoder) Value(field string) *wire.Node {
	if d.err != nil {
		return nil
	}
	n := d.n.Get(field)
	if n == nil {
		d.missing(field)
	}
	return n
}

// Opt returns the field's raw node, or nil when absent. An explicit null on
// the wire also reads as absent.
func (d *Decoder) Opt(field string) *wire.Node {
	if d.err != nil {
		return nil
	}
	n := d.n.Get(field)
	if n == nil || n.Type == wire.NullType {
		return nil
	}
	return n
}

func (d *Decoder) String(field string) string {
	n := d.Value(field)
	if n == nil {
		return ""
	}
	if n.Type != wire.StringType {
		d.fail(field, &wire.TypeError{Want: wire.StringType, Got: n.Type})
		return ""
	}
	return n.String
}

func (d *Decoder) OptString(field string) *string {
	n := d.Opt(field)
	if n == nil {
		return nil
	}
	if n.Type != wire.StringType {
		d.fail(field, &wire.TypeError{Want: wire.StringType, Got: n.Type})
		return nil
	}
	s := n.String
	return &s
}

func (d *Decoder) StringDefault(field, def string) string {
	if s := d.OptString(field); s != nil {
		return *s
	}
	return def
}

func (d *Decoder) Bool(field string) bool {
	n := d.Value(field)
	if n == nil {
		return false
	}
	if n.Type != wire.BoolType {
		d.fail(field, &wire.TypeError{Want: wire.BoolType, Got: n.Type})
		return false
	}
	return n.Bool
}

func (d *Decoder) OptBool(field string) *bool {
	n := d.Opt(field)
	if n == nil {
		return nil
	}
	if n.Type != wire.BoolType {
		d.fail(field, &wire.TypeError{Want: wire.BoolType, Got: n.Type})
		return nil
	}
	b := n.Bool
	return &b
}

func (d *Decoder) BoolDefault(field string, def bool) bool {
	if b := d.OptBool(field); b != nil {
		return *b
	}
	return def
}

func (d *Decoder) Int64(field string) int64 {
	n := d.Value(field)
	if n == nil {
		return 0
	}
	v, err := n.AsInt64()
	if err != nil {
		d.fail(field, err)
		return 0
	}
	return v
}

func (d *Decoder) OptInt64(field string) *int64 {
	n := d.Opt(field)
	if n == nil {
		return nil
	}
	v, err := n.AsInt64()
	if err != nil {
		d.fail(field, err)
		return nil
	}
	return &v
}

func (d *Decoder) Uint64(field string) uint64 {
	n := d.Value(field)
	if n == nil {
		return 0
	}
	v, err := n.AsUint64()
	if err != nil {
		d.fail(field, err)
		return 0
	}
	return v
}

func (d *Decoder) OptUint64(field string) *uint64 {
	n := d.Opt(field)
	if n == nil {
		return nil
	}
	v, err := n.AsUint64()
	if err != nil {
		d.fail(field, err)
		return nil
	}
	return &v
}

func (d *Decoder) Uint64Default(field string, def uint64) uint64 {
	if v := d.OptUint64(field); v != nil {
		return *v
	}
	return def
}

func (d *Decoder) Int32(field string) int32 {
	v := d.Int64(field)
	if d.err != nil {
		return 0
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		d.fail(field, &wire.NumberError{Lexeme: d.n.Get(field).Number, Want: "int32"})
		return 0
	}
	return int32(v)
}

func (d *Decoder) Uint32(field string) uint32 {
	v := d.Uint64(field)
	if d.err != nil {
		return 0
	}
	if v > math.MaxUint32 {
		d.fail(field, &wire.NumberError{Lexeme: d.n.Get(field).Number, Want: "uint32"})
		return 0
	}
	return uint32(v)
}

func (d *Decoder) OptUint32(field string) *uint32 {
	n := d.Opt(field)
	if n == nil {
		return nil
	}
	v, err := n.AsUint64()
	if err != nil {
		d.fail(field, err)
		return nil
	}
	if v > math.MaxUint32 {
		d.fail(field, &wire.NumberError{Lexeme: n.Number, Want: "uint32"})
		return nil
	}
	u := uint32(v)
	return &u
}

func (d *Decoder) Float64(field string) float64 {
	n := d.Value(field)
	if n == nil {
		return 0
	}
	v, err := n.AsFloat64()
	if err != nil {
		d.fail(field, err)
		return 0
	}
	return v
}

func (d *Decoder) OptFloat64(field string) *float64 {
	n := d.Opt(field)
	if n == nil {
		return nil
	}
	v, err := n.AsFloat64()
	if err != nil {
		d.fail(field, err)
		return nil
	}
	return &v
}

func (d *Decoder) Float32(field string) float32 {
	v := d.Float64(field)
	if d.err != nil {
		return 0
	}
	if v != 0 && (math.Abs(v) > math.MaxFloat32 || math.Abs(v) < math.SmallestNonzeroFloat32) {
		d.fail(field, &wire.NumberError{Lexeme: d.n.Get(field).Number, Want: "float32"})
		return 0
	}
	return float32(v)
}

func (d *Decoder) Time(field string) time.Time {
	s := d.String(field)
	if d.err != nil {
		return time.Time{}
	}
	t, err := ParseTime(s)
	if err != nil {
		d.fail(field, err)
		return time.Time{}
	}
	return t
}

func (d *Decoder) OptTime(field string) *time.Time {
	s := d.OptString(field)
	if s == nil {
		return nil
	}
	t, err := ParseTime(*s)
	if err != nil {
		d.fail(field, err)
		return nil
	}
	return &t
}

func (d *Decoder) Bytes(field string) []byte {
	n := d.Value(field)
	if n == nil {
		return nil
	}
	b, err := n.AsBytes()
	if err != nil {
		d.fail(field, err)
		return nil
	}
	return b
}

// List decodes the required array field element-wise with fn.
func List[T any](d *Decoder, field string, fn func(*wire.Node) (T, error)) []T {
	n := d.Value(field)
	if n == nil {
		return nil
	}
	return decodeList(d, field, n, fn)
}

// OptList decodes the array field when present, returning nil when absent.
func OptList[T any](d *Decoder, field string, fn func(*wire.Node) (T, error)) []T {
	n := d.Opt(field)
	if n == nil {
		return nil
	}
	return decodeList(d, field, n, fn)
}

func decodeList[T any](d *Decoder, field string, n *wire.Node, fn func(*wire.Node) (T, error)) []T {
	if n.Type != wire.ArrayType {
		d.fail(field, &wire.TypeError{Want: wire.ArrayType, Got: n.Type})
		return nil
	}
	out := make([]T, 0, n.Len())
	for _, el := range n.Values {
		v, err := fn(el)
		if err != nil {
			d.Fail(field, err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

// StringMap decodes the required object field value-wise with fn.
func StringMap[T any](d *Decoder, field string, fn func(*wire.Node) (T, error)) map[string]T {
	n := d.Value(field)
	if n == nil {
		return nil
	}
	if n.Type != wire.ObjectType {
		d.fail(field, &wire.TypeError{Want: wire.ObjectType, Got: n.Type})
		return nil
	}
	out := make(map[string]T, n.Len())
	for i, key := range n.Fields {
		v, err := fn(n.Values[i])
		if err != nil {
			d.Fail(field, err)
			return nil
		}
		out[key] = v
	}
	return out
}
