package codec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBoolEncoding = errors.New("invalid boolean encoding")
	ErrUnknownColorCode    = errors.New("unknown color code")
	ErrUnknownColorName    = errors.New("unknown color name")
)

// InvalidBoolEncodingError reports an integer that is neither 0 nor 1.
type InvalidBoolEncodingError struct {
	Raw int64
}

func (e *InvalidBoolEncodingError) Error() string {
	return fmt.Sprintf("%s: %d (want 0 or 1)", ErrInvalidBoolEncoding, e.Raw)
}

func (e *InvalidBoolEncodingError) Unwrap() error { return ErrInvalidBoolEncoding }

// UnknownColorCodeError reports a color code outside the palette.
type UnknownColorCodeError struct {
	Raw int64
}

func (e *UnknownColorCodeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownColorCode, e.Raw)
}

func (e *UnknownColorCodeError) Unwrap() error { return ErrUnknownColorCode }

// UnknownColorNameError reports text that is neither a palette name nor a palette hex value.
type UnknownColorNameError struct {
	Text string
}

func (e *UnknownColorNameError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownColorName, e.Text)
}

func (e *UnknownColorNameError) Unwrap() error { return ErrUnknownColorName }
