package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Ref points at an object either by its server id or by the temp_id of a
// command earlier in the same batch. The zero Ref points at nothing.
type Ref struct {
	id     int64
	tempID string
}

// RefID references an existing object.
func RefID(id int64) Ref { return Ref{id: id} }

// RefTemp references an object created earlier in the same batch.
func RefTemp(tempID string) Ref { return Ref{tempID: tempID} }

// ParseRef turns a decimal string into an id reference and anything else into a temp_id reference.
func ParseRef(s string) Ref {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return RefID(id)
	}
	return RefTemp(s)
}

func (r Ref) IsZero() bool { return r.id == 0 && r.tempID == "" }

// ID returns the server id and whether r holds one.
func (r Ref) ID() (int64, bool) { return r.id, r.tempID == "" && r.id != 0 }

// TempID returns the temp_id and whether r holds one.
func (r Ref) TempID() (string, bool) { return r.tempID, r.tempID != "" }

func (r Ref) String() string {
	if r.tempID != "" {
		return r.tempID
	}
	if r.id == 0 {
		return ""
	}
	return strconv.FormatInt(r.id, 10)
}

// MarshalJSON writes ids as numbers and temp_ids as strings.
func (r Ref) MarshalJSON() ([]byte, error) {
	switch {
	case r.tempID != "":
		return json.Marshal(r.tempID)
	case r.id != 0:
		return strconv.AppendInt(nil, r.id, 10), nil
	default:
		return []byte("null"), nil
	}
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RefTemp(s)
		return nil
	}
	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", errInvalidRef, data)
	}
	*r = RefID(id)
	return nil
}

var errInvalidRef = errors.New("invalid reference")
