package models

import "github.com/dmitrijs2005/dothis/internal/client/codec"

// Project is a project record as returned by the server.
type Project struct {
	ID             int64       `json:"id"`
	LegacyID       *int64      `json:"legacy_id,omitempty"`
	Name           string      `json:"name"`
	Color          codec.Color `json:"color"`
	ParentID       *int64      `json:"parent_id,omitempty"`
	LegacyParentID *int64      `json:"legacy_parent_id,omitempty"`
	ChildOrder     int         `json:"child_order"`
	Collapsed      codec.Bool  `json:"collapsed"`
	Shared         bool        `json:"shared"`
	IsDeleted      codec.Bool  `json:"is_deleted"`
	IsArchived     codec.Bool  `json:"is_archived"`
	IsFavorite     codec.Bool  `json:"is_favorite"`
	SyncID         *int64      `json:"sync_id,omitempty"`
	InboxProject   *bool       `json:"inbox_project,omitempty"`
	TeamInbox      *bool       `json:"team_inbox,omitempty"`
}

// NewProject is the payload of project_add.
type NewProject struct {
	Name       string       `json:"name" validate:"required"`
	Color      *codec.Color `json:"color,omitempty"`
	ParentID   Ref          `json:"parent_id,omitzero"`
	ChildOrder *int         `json:"child_order,omitempty"`
	IsFavorite *codec.Bool  `json:"is_favorite,omitempty"`
}

// ProjectUpdate is the payload of project_update. Nil fields are left unchanged.
type ProjectUpdate struct {
	ID         Ref          `json:"id" validate:"required"`
	Name       *string      `json:"name,omitempty" validate:"omitempty,min=1"`
	Color      *codec.Color `json:"color,omitempty"`
	Collapsed  *codec.Bool  `json:"collapsed,omitempty"`
	IsFavorite *codec.Bool  `json:"is_favorite,omitempty"`
}
