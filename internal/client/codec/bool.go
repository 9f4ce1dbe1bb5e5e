package codec

import (
	"bytes"
	"fmt"
	"strconv"
)

// DecodeBoolInt maps 0 to false and 1 to true. Every other value fails.
func DecodeBoolInt(raw int64) (bool, error) {
	switch raw {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidBoolEncodingError{Raw: raw}
	}
}

// EncodeBoolInt is the inverse of DecodeBoolInt.
func EncodeBoolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Bool is a boolean carried on the wire as the integer 0 or 1.
//
// Optional fields use *Bool: a JSON null or a missing key leaves the pointer nil.
type Bool bool

// BoolPtr returns a pointer to a Bool holding b.
func BoolPtr(b bool) *Bool {
	v := Bool(b)
	return &v
}

func (b Bool) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, EncodeBoolInt(bool(b)), 10), nil
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBoolEncoding, data)
	}

	v, err := DecodeBoolInt(raw)
	if err != nil {
		return err
	}
	*b = Bool(v)
	return nil
}
