package models

import "github.com/dmitrijs2005/dothis/internal/client/codec"

// Filter is a saved query.
type Filter struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Query      string      `json:"query"`
	Color      codec.Color `json:"color"`
	ItemOrder  int         `json:"item_order"`
	IsDeleted  codec.Bool  `json:"is_deleted"`
	IsFavorite codec.Bool  `json:"is_favorite"`
}

// NewFilter creates a saved query (filter_add). Query uses the server's
// filter syntax, e.g. "today | overdue".
type NewFilter struct {
	Name       string       `json:"name" validate:"required"`
	Query      string       `json:"query" validate:"required"`
	Color      *codec.Color `json:"color,omitempty"`
	ItemOrder  *int         `json:"item_order,omitempty"`
	IsFavorite *codec.Bool  `json:"is_favorite,omitempty"`
}
