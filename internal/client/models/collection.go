package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotACollection = errors.New("collection is not a JSON array")

// RecordError reports a single record of a collection that failed to decode.
// Sibling records are unaffected.
type RecordError struct {
	Kind  Kind
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Kind, e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// DecodeCollection decodes every element of a JSON array independently.
//
// A missing or null array yields a nil slice; "[]" yields an empty, non-nil
// slice. Elements that fail to decode are left out of the result and reported
// as RecordErrors; the decision to abort or continue is the caller's.
func DecodeCollection[T any](kind Kind, raw json.RawMessage) ([]T, []*RecordError, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", kind, ErrNotACollection, err)
	}

	out := make([]T, 0, len(elems))
	var recErrs []*RecordError
	for i, elem := range elems {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			recErrs = append(recErrs, &RecordError{Kind: kind, Index: i, Err: err})
			continue
		}
		out = append(out, v)
	}
	return out, recErrs, nil
}
