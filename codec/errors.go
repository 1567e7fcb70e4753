package codec

import "fmt"

// EncodeError reports a value that cannot be put on the wire, such as a
// required field left unset through some indirect construction path, or a
// catch-all unknown variant being re-encoded.
type EncodeError struct {
	Struct  string
	Field   string
	Message string
	Err     error
}

func (e *EncodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("encode %s.%s: %s", e.Struct, e.Field, e.Message)
	}
	return fmt.Sprintf("encode %s: %s", e.Struct, e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError reports a wire object that does not fit the declared type:
// wrong shape, a missing required field, or a number outside its declared
// representation. Struct and Field carry enough context to diagnose the
// payload without re-running the decoder.
type DecodeError struct {
	Struct  string
	Field   string
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s.%s: %s", e.Struct, e.Field, e.Message)
	}
	return fmt.Sprintf("decode %s: %s", e.Struct, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
