package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrBadRecords   = errors.New("malformed records")
)

// Envelope is the decoded body of a sync response.
//
// A nil collection means the type was not requested or nothing changed.
type Envelope struct {
	Projects     []Project
	Items        []Item
	Notes        []Note
	ProjectNotes []ProjectNote
	Labels       []Label
	Filters      []Filter
	Reminders    []Reminder

	FullSync      bool
	TempIDMapping map[string]int64
	SyncToken     string

	// SyncStatus holds one entry per command uuid on write responses.
	SyncStatus map[string]CommandStatus

	// RecordErrors is only populated when decoding with SkipBadRecords.
	RecordErrors []*RecordError
}

// CommandStatus is the server's verdict on a single command.
type CommandStatus struct {
	OK        bool
	ErrorCode int
	Error     string
}

func (s *CommandStatus) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte(`"ok"`)) {
		*s = CommandStatus{OK: true}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var msg string
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		*s = CommandStatus{Error: msg}
		return nil
	}

	var v struct {
		ErrorCode int    `json:"error_code"`
		Error     string `json:"error"`
	}
	if len(data) > 0 && data[0] == '{' {
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = CommandStatus{ErrorCode: v.ErrorCode, Error: v.Error}
		return nil
	}

	*s = CommandStatus{Error: string(data)}
	return nil
}

// CommandError is a command the server refused.
type CommandError struct {
	UUID    string
	Code    int
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %s (code %d)", e.UUID, e.Message, e.Code)
}

// ResolveTempID returns the server id assigned to an object created with tempID.
func (e *Envelope) ResolveTempID(tempID string) (int64, bool) {
	id, ok := e.TempIDMapping[tempID]
	return id, ok
}

// CommandError returns the failure of the command with uuid, or nil when
// it succeeded or the response carries no status for it.
func (e *Envelope) CommandError(uuid string) *CommandError {
	st, ok := e.SyncStatus[uuid]
	if !ok || st.OK {
		return nil
	}
	return &CommandError{UUID: uuid, Code: st.ErrorCode, Message: st.Error}
}

// CommandErrors lists refused commands ordered by uuid.
func (e *Envelope) CommandErrors() []*CommandError {
	var out []*CommandError
	for uuid, st := range e.SyncStatus {
		if st.OK {
			continue
		}
		out = append(out, &CommandError{UUID: uuid, Code: st.ErrorCode, Message: st.Error})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UUID < out[j].UUID })
	return out
}

type rawEnvelope struct {
	Projects     json.RawMessage `json:"projects"`
	Items        json.RawMessage `json:"items"`
	Notes        json.RawMessage `json:"notes"`
	ProjectNotes json.RawMessage `json:"project_notes"`
	Labels       json.RawMessage `json:"labels"`
	Filters      json.RawMessage `json:"filters"`
	Reminders    json.RawMessage `json:"reminders"`

	FullSync      *bool                    `json:"full_sync"`
	TempIDMapping map[string]int64         `json:"temp_id_mapping"`
	SyncToken     *string                  `json:"sync_token"`
	SyncStatus    map[string]CommandStatus `json:"sync_status"`
}

// DecodeOptions tunes DecodeEnvelope.
type DecodeOptions struct {
	// SkipBadRecords keeps well-formed records and reports the rest in
	// Envelope.RecordErrors instead of failing the whole envelope.
	SkipBadRecords bool
}

// DecodeEnvelope decodes a response body. On error no envelope is returned.
func DecodeEnvelope(data []byte, opts DecodeOptions) (*Envelope, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	switch {
	case raw.FullSync == nil:
		return nil, fmt.Errorf("%w: full_sync", ErrMissingField)
	case raw.SyncToken == nil:
		return nil, fmt.Errorf("%w: sync_token", ErrMissingField)
	case raw.TempIDMapping == nil:
		return nil, fmt.Errorf("%w: temp_id_mapping", ErrMissingField)
	}

	env := &Envelope{
		FullSync:      *raw.FullSync,
		TempIDMapping: raw.TempIDMapping,
		SyncToken:     *raw.SyncToken,
		SyncStatus:    raw.SyncStatus,
	}

	var recErrs []*RecordError
	var err error
	collect := func(errs []*RecordError, e error) {
		recErrs = append(recErrs, errs...)
		if err == nil {
			err = e
		}
	}

	var errs []*RecordError
	var e error
	env.Projects, errs, e = DecodeCollection[Project](KindProjects, raw.Projects)
	collect(errs, e)
	env.Items, errs, e = DecodeCollection[Item](KindItems, raw.Items)
	collect(errs, e)
	env.Notes, errs, e = DecodeCollection[Note](KindNotes, raw.Notes)
	collect(errs, e)
	env.ProjectNotes, errs, e = DecodeCollection[ProjectNote](KindProjectNotes, raw.ProjectNotes)
	collect(errs, e)
	env.Labels, errs, e = DecodeCollection[Label](KindLabels, raw.Labels)
	collect(errs, e)
	env.Filters, errs, e = DecodeCollection[Filter](KindFilters, raw.Filters)
	collect(errs, e)
	env.Reminders, errs, e = DecodeCollection[Reminder](KindReminders, raw.Reminders)
	collect(errs, e)

	if err != nil {
		return nil, err
	}

	if len(recErrs) > 0 {
		if !opts.SkipBadRecords {
			joined := make([]error, len(recErrs))
			for i, re := range recErrs {
				joined[i] = re
			}
			return nil, fmt.Errorf("%w: %w", ErrBadRecords, errors.Join(joined...))
		}
		env.RecordErrors = recErrs
	}

	return env, nil
}
