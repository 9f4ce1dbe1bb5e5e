package models

import "github.com/dmitrijs2005/dothis/internal/client/codec"

// Item is a task record as returned by the server.
type Item struct {
	ID              int64      `json:"id"`
	LegacyID        *int64     `json:"legacy_id,omitempty"`
	UserID          int64      `json:"user_id"`
	ProjectID       int64      `json:"project_id"`
	LegacyProjectID *int64     `json:"legacy_project_id,omitempty"`
	Content         string     `json:"content"`
	Due             *Due       `json:"due,omitempty"`
	Priority        int        `json:"priority"`
	ParentID        *int64     `json:"parent_id,omitempty"`
	LegacyParentID  *int64     `json:"legacy_parent_id,omitempty"`
	ChildOrder      int        `json:"child_order"`
	SectionID       *int64     `json:"section_id,omitempty"`
	DayOrder        int        `json:"day_order"`
	Collapsed       codec.Bool `json:"collapsed"`
	Labels          []int64    `json:"labels"`
	AddedByUID      *int64     `json:"added_by_uid,omitempty"`
	AssignedByUID   *int64     `json:"assigned_by_uid,omitempty"`
	ResponsibleUID  *int64     `json:"responsible_uid,omitempty"`
	Checked         codec.Bool `json:"checked"`
	InHistory       codec.Bool `json:"in_history"`
	IsDeleted       codec.Bool `json:"is_deleted"`
	SyncID          *int64     `json:"sync_id,omitempty"`
	DateCompleted   *string    `json:"date_completed,omitempty"`
	DateAdded       string     `json:"date_added"`
}

// Due is the due date of an item or reminder.
type Due struct {
	Date        string  `json:"date"`
	Timezone    *string `json:"timezone,omitempty"`
	String      string  `json:"string"`
	Lang        string  `json:"lang"`
	IsRecurring bool    `json:"is_recurring"`
}

// DueInput sets a due date on creation. Either String (natural language) or Date is used.
type DueInput struct {
	String   string `json:"string,omitempty"`
	Date     string `json:"date,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// NewItem is the payload of item_add.
type NewItem struct {
	Content         string      `json:"content" validate:"required"`
	ProjectID       Ref         `json:"project_id,omitzero"`
	Due             *DueInput   `json:"due,omitempty"`
	Priority        *int        `json:"priority,omitempty" validate:"omitempty,min=1,max=4"`
	ParentID        Ref         `json:"parent_id,omitzero"`
	ChildOrder      *int        `json:"child_order,omitempty"`
	SectionID       *int64      `json:"section_id,omitempty"`
	DayOrder        *int        `json:"day_order,omitempty"`
	Collapsed       *codec.Bool `json:"collapsed,omitempty"`
	Labels          []int64     `json:"labels,omitempty"`
	AssignedByUID   *int64      `json:"assigned_by_uid,omitempty"`
	ResponsibleUID  *int64      `json:"responsible_uid,omitempty"`
	AutoReminder    *bool       `json:"auto_reminder,omitempty"`
	AutoParseLabels *bool       `json:"auto_parse_labels,omitempty"`
}

// ItemUpdate is the payload of item_update. Nil fields are left unchanged.
type ItemUpdate struct {
	ID        Ref         `json:"id" validate:"required"`
	Content   *string     `json:"content,omitempty" validate:"omitempty,min=1"`
	Due       *DueInput   `json:"due,omitempty"`
	Priority  *int        `json:"priority,omitempty" validate:"omitempty,min=1,max=4"`
	Collapsed *codec.Bool `json:"collapsed,omitempty"`
	Labels    []int64     `json:"labels,omitempty"`
}
