package models

import "github.com/dmitrijs2005/dothis/internal/client/codec"

// Reminder fires for an item either at an absolute due time or a relative offset.
type Reminder struct {
	ID        int64      `json:"id"`
	NotifyUID int64      `json:"notify_uid"`
	ItemID    int64      `json:"item_id"`
	Service   string     `json:"service"`
	Type      string     `json:"type"`
	Due       *Due       `json:"due,omitempty"`
	MMOffset  *int       `json:"mm_offset,omitempty"`
	IsDeleted codec.Bool `json:"is_deleted"`
}

type NewReminder struct {
	ItemID    Ref       `json:"item_id" validate:"required"`
	NotifyUID *int64    `json:"notify_uid,omitempty"`
	Service   string    `json:"service,omitempty" validate:"omitempty,oneof=email mobile push"`
	Type      string    `json:"type,omitempty" validate:"omitempty,oneof=relative absolute location"`
	Due       *DueInput `json:"due,omitempty"`
	MMOffset  *int      `json:"mm_offset,omitempty" validate:"omitempty,min=0"`
}
