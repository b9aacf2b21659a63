package model

import (
	"estate/shared/model"
	"time"
)

const (
	TableName  = "follow_ups"
	EntityName = "follow_up"

	FieldID           = "id"
	FieldViewingID    = "viewing_id"
	FieldFollowUpDate = "follow_up_date"
	FieldFollowUpTime = "follow_up_time"
	FieldType         = "type"
	FieldStatus       = "status"
	FieldScheduledBy  = "scheduled_by"
)

const StatusScheduled = "scheduled"

// FollowUp is an append-only note that the host will get back to the requester.
type FollowUp struct {
	ID           string    `db:"id"`
	ViewingID    string    `db:"viewing_id"`
	FollowUpDate time.Time `db:"follow_up_date"`
	FollowUpTime string    `db:"follow_up_time"`
	Notes        string    `db:"notes"`
	Type         string    `db:"type"`
	Status       string    `db:"status"`
	ScheduledBy  string    `db:"scheduled_by"`
	model.Metadata
}
