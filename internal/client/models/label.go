package models

import "github.com/dmitrijs2005/dothis/internal/client/codec"

// Label is a personal label that can be attached to items by name.
type Label struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Color      codec.Color `json:"color"`
	ItemOrder  int         `json:"item_order"`
	IsDeleted  codec.Bool  `json:"is_deleted"`
	IsFavorite codec.Bool  `json:"is_favorite"`
}

// NewLabel creates a label (label_add). Unset optional fields are left to
// the server's defaults.
type NewLabel struct {
	Name       string       `json:"name" validate:"required"`
	Color      *codec.Color `json:"color,omitempty"`
	ItemOrder  *int         `json:"item_order,omitempty"`
	IsFavorite *codec.Bool  `json:"is_favorite,omitempty"`
}
