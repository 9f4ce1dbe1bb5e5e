// Package codec implements the scalar encodings used by the sync protocol.
//
// The wire format transmits two non-numeric concepts as small integers:
//
//   - booleans as 0 or 1 (see Bool, DecodeBoolInt, EncodeBoolInt);
//   - colors as a fixed palette of codes 30..49 (see Color, DecodeColor,
//     ColorFromText, EncodeColor).
//
// Decoding is strict. Any integer outside {0, 1} or outside the palette is
// rejected with an error that matches ErrInvalidBoolEncoding or
// ErrUnknownColorCode via errors.Is. Nothing is silently defaulted.
package codec
