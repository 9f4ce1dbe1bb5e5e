package models

import "github.com/dmitrijs2005/dothis/internal/client/codec"

// Note is a comment attached to an item.
type Note struct {
	ID              int64              `json:"id"`
	LegacyID        *int64             `json:"legacy_id,omitempty"`
	PostedUID       int64              `json:"posted_uid"`
	ItemID          int64              `json:"item_id"`
	LegacyItemID    *int64             `json:"legacy_item_id,omitempty"`
	ProjectID       int64              `json:"project_id"`
	LegacyProjectID *int64             `json:"legacy_project_id,omitempty"`
	Content         string             `json:"content"`
	FileAttachment  *FileAttachment    `json:"file_attachment,omitempty"`
	UIDsToNotify    []int64            `json:"uids_to_notify,omitempty"`
	IsDeleted       codec.Bool         `json:"is_deleted"`
	Posted          string             `json:"posted"`
	Reactions       map[string][]int64 `json:"reactions,omitempty"`
}

// ProjectNote is a comment attached to a project.
type ProjectNote struct {
	ID             int64              `json:"id"`
	PostedUID      int64              `json:"posted_uid"`
	ProjectID      int64              `json:"project_id"`
	Content        string             `json:"content"`
	FileAttachment *FileAttachment    `json:"file_attachment,omitempty"`
	UIDsToNotify   []int64            `json:"uids_to_notify,omitempty"`
	IsDeleted      codec.Bool         `json:"is_deleted"`
	Posted         string             `json:"posted"`
	Reactions      map[string][]int64 `json:"reactions,omitempty"`
}

// FileAttachment describes an uploaded file referenced by a note.
type FileAttachment struct {
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	FileType    string `json:"file_type"`
	FileURL     string `json:"file_url"`
	UploadState string `json:"upload_state"`
}

// NewNote adds a comment to an item (note_add).
type NewNote struct {
	ItemID         Ref             `json:"item_id" validate:"required"`
	Content        string          `json:"content" validate:"required"`
	FileAttachment *FileAttachment `json:"file_attachment,omitempty"`
	UIDsToNotify   []int64         `json:"uids_to_notify,omitempty"`
}

// NewProjectNote adds a comment to a project (note_add with a project_id).
type NewProjectNote struct {
	ProjectID      Ref             `json:"project_id" validate:"required"`
	Content        string          `json:"content" validate:"required"`
	FileAttachment *FileAttachment `json:"file_attachment,omitempty"`
	UIDsToNotify   []int64         `json:"uids_to_notify,omitempty"`
}
