package dto

import (
	"estate/internal/domains/viewing/model"
	"estate/shared"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	"estate/shared/duestatus"
	"estate/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateViewingRequest struct {
	ResourceID        string `json:"resource_id"        validate:"required"`
	PreferredDate     string `json:"preferred_date"     validate:"required,date"`
	PreferredTime     string `json:"preferred_time"     validate:"required,slot"`
	Notes             string `json:"notes"              validate:"omitempty,max=1000"`
	ContactPreference string `json:"contact_preference" validate:"omitempty,max=50"`
}

// ToModel builds a pending viewing requested by requesterID and hosted by hostID.
func (c *CreateViewingRequest) ToModel(requesterID, hostID string, date, now time.Time) model.Viewing {
	viewing := model.Viewing{
		ID:                uuid.NewString(),
		ResourceID:        c.ResourceID,
		RequesterID:       requesterID,
		HostID:            hostID,
		PreferredDate:     date,
		PreferredTime:     c.PreferredTime,
		Status:            model.StatusPending,
		Notes:             c.Notes,
		ContactPreference: c.ContactPreference,
	}

	viewing.Stamp(requesterID, now)

	return viewing
}

type UpdateViewingRequest struct {
	PreferredDate     string `json:"preferred_date"     validate:"omitempty,date"`
	PreferredTime     string `json:"preferred_time"     validate:"omitempty,slot"`
	Notes             string `db:"notes"              json:"notes"              validate:"omitempty,max=1000"`
	ContactPreference string `db:"contact_preference" json:"contact_preference" validate:"omitempty,max=50"`
}

func (u UpdateViewingRequest) IsEmpty() bool {
	return u == UpdateViewingRequest{}
}

type CancelViewingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type ConfirmViewingRequest struct {
	ConfirmedDate string `json:"confirmed_date" validate:"omitempty,date"`
	ConfirmedTime string `json:"confirmed_time" validate:"omitempty,slot"`
	Notes         string `json:"notes"          validate:"omitempty,max=1000"`
}

// ViewingFilter narrows ListViewings. The actor scope is always applied on top.
type ViewingFilter struct {
	Status     string `validate:"omitempty,oneof=pending confirmed cancelled"`
	ResourceID string
}

type ViewingResponse struct {
	ID                 string           `json:"id"`
	ResourceID         string           `json:"resource_id"`
	RequesterID        string           `json:"requester_id"`
	HostID             string           `json:"host_id"`
	PreferredDate      string           `json:"preferred_date"`
	PreferredTime      string           `json:"preferred_time"`
	Status             string           `json:"status"`
	DueStatus          duestatus.Status `json:"due_status,omitempty"`
	ConfirmedDate      string           `json:"confirmed_date,omitempty"`
	ConfirmedTime      string           `json:"confirmed_time,omitempty"`
	Notes              string           `json:"notes"`
	ContactPreference  string           `json:"contact_preference"`
	HostNotes          string           `json:"host_notes,omitempty"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	ConfirmedAt        string           `json:"confirmed_at,omitempty"`
	CancelledAt        string           `json:"cancelled_at,omitempty"`
	gDto.Metadata
}

// FromModel maps a viewing and derives its due status against today. Cancelled viewings
// carry no due status.
func (r *ViewingResponse) FromModel(viewing model.Viewing, today time.Time, windowDays int) {
	r.ID = viewing.ID
	r.ResourceID = viewing.ResourceID
	r.RequesterID = viewing.RequesterID
	r.HostID = viewing.HostID
	r.PreferredDate = shared.FormatDate(viewing.PreferredDate)
	r.PreferredTime = viewing.PreferredTime
	r.Status = viewing.Status
	r.Notes = viewing.Notes
	r.ContactPreference = viewing.ContactPreference
	r.HostNotes = viewing.HostNotes
	r.CancellationReason = viewing.CancellationReason

	if viewing.IsActive() {
		r.DueStatus = duestatus.Of(viewing.PreferredDate, today, windowDays)
	}

	if viewing.ConfirmedDate != nil {
		r.ConfirmedDate = shared.FormatDate(*viewing.ConfirmedDate)
	}

	if viewing.ConfirmedTime != nil {
		r.ConfirmedTime = *viewing.ConfirmedTime
	}

	if viewing.ConfirmedAt != nil {
		r.ConfirmedAt = timezone.Format(*viewing.ConfirmedAt, constant.DateFormat)
	}

	if viewing.CancelledAt != nil {
		r.CancelledAt = timezone.Format(*viewing.CancelledAt, constant.DateFormat)
	}

	r.Metadata.FromModel(viewing.Metadata)
}

type GetViewingsResponse struct {
	Viewings  []ViewingResponse `json:"viewings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetViewingsResponse) FromModels(models []model.Viewing, totalData, limit int, today time.Time, windowDays int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Viewings = make([]ViewingResponse, len(models))
	for i, mod := range models {
		r.Viewings[i].FromModel(mod, today, windowDays)
	}
}

type SlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
	BookedSlots    []string `json:"booked_slots"`
}
