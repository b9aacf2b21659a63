package model

import (
	"estate/shared/model"
	"time"
)

const (
	TableName  = "viewings"
	EntityName = "viewing"

	FieldID                 = "id"
	FieldResourceID         = "resource_id"
	FieldRequesterID        = "requester_id"
	FieldHostID             = "host_id"
	FieldPreferredDate      = "preferred_date"
	FieldPreferredTime      = "preferred_time"
	FieldStatus             = "status"
	FieldConfirmedDate      = "confirmed_date"
	FieldConfirmedTime      = "confirmed_time"
	FieldNotes              = "notes"
	FieldContactPreference  = "contact_preference"
	FieldHostNotes          = "host_notes"
	FieldCancellationReason = "cancellation_reason"
	FieldConfirmedAt        = "confirmed_at"
	FieldCancelledAt        = "cancelled_at"
	FieldCreatedAt          = "created_at"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses hold a slot. At most one viewing per resource, date and time may be in
// one of them.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

// The slot a viewing was confirmed for, falling back to its preferred slot. The
// expressions match uq_viewings_held_slot.
const (
	HeldDateExpr = "COALESCE(" + TableName + "." + FieldConfirmedDate + ", " + TableName + "." + FieldPreferredDate + ")"
	HeldTimeExpr = "COALESCE(" + TableName + "." + FieldConfirmedTime + ", " + TableName + "." + FieldPreferredTime + ")"
)

type Viewing struct {
	ID                 string     `db:"id"`
	ResourceID         string     `db:"resource_id"`
	RequesterID        string     `db:"requester_id"`
	HostID             string     `db:"host_id"`
	PreferredDate      time.Time  `db:"preferred_date"`
	PreferredTime      string     `db:"preferred_time"`
	Status             string     `db:"status"`
	ConfirmedDate      *time.Time `db:"confirmed_date"`
	ConfirmedTime      *string    `db:"confirmed_time"`
	Notes              string     `db:"notes"`
	ContactPreference  string     `db:"contact_preference"`
	HostNotes          string     `db:"host_notes"`
	CancellationReason string     `db:"cancellation_reason"`
	ConfirmedAt        *time.Time `db:"confirmed_at"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	model.Metadata
}

func (v Viewing) IsActive() bool {
	return v.Status == StatusPending || v.Status == StatusConfirmed
}

// Slot returns the confirmed date and time, or the preferred ones before confirmation.
func (v Viewing) Slot() (time.Time, string) {
	date, slot := v.PreferredDate, v.PreferredTime

	if v.ConfirmedDate != nil {
		date = *v.ConfirmedDate
	}

	if v.ConfirmedTime != nil {
		slot = *v.ConfirmedTime
	}

	return date, slot
}

// Involves reports whether userID is the requester or the host.
func (v Viewing) Involves(userID string) bool {
	return userID != "" && (v.RequesterID == userID || v.HostID == userID)
}

// Counterpart returns the other party of the viewing as seen by userID.
func (v Viewing) Counterpart(userID string) string {
	if v.RequesterID == userID {
		return v.HostID
	}

	return v.RequesterID
}
