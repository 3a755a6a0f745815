package domain

import (
	"errors"
	"time"
)

// ErrInvalidEvent marks an event that can never be handled: unknown
// kind or action, or a payload that does not match its kind.
// Redelivery cannot fix it.
var ErrInvalidEvent = errors.New("invalid content event")

// Event actions and kinds as published by the host CMS.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	KindItem    = "item"
	KindComment = "comment"
)

// ContentEvent is the wire format of a content lifecycle notification.
// Exactly one of Item or Comment is set, matching Kind.
type ContentEvent struct {
	Action    string    `json:"action"`
	Kind      string    `json:"kind"`
	Item      *Item     `json:"item,omitempty"`
	Comment   *Comment  `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
