package dto

import (
	"estate/internal/domains/followup/model"
	"estate/shared"
	gDto "estate/shared/dto"
	"time"

	"github.com/google/uuid"
)

type ScheduleFollowUpRequest struct {
	ViewingID    string `json:"viewing_id"     validate:"required,uuid"`
	FollowUpDate string `json:"follow_up_date" validate:"required,date"`
	FollowUpTime string `json:"follow_up_time" validate:"required,slot"`
	Type         string `json:"type"           validate:"omitempty,max=50"`
	Notes        string `json:"notes"          validate:"omitempty,max=1000"`
}

func (s *ScheduleFollowUpRequest) ToModel(hostID string, date, now time.Time) model.FollowUp {
	followUp := model.FollowUp{
		ID:           uuid.NewString(),
		ViewingID:    s.ViewingID,
		FollowUpDate: date,
		FollowUpTime: s.FollowUpTime,
		Notes:        s.Notes,
		Type:         s.Type,
		Status:       model.StatusScheduled,
		ScheduledBy:  hostID,
	}

	followUp.Stamp(hostID, now)

	return followUp
}

type FollowUpResponse struct {
	ID           string `json:"id"`
	ViewingID    string `json:"viewing_id"`
	FollowUpDate string `json:"follow_up_date"`
	FollowUpTime string `json:"follow_up_time"`
	Notes        string `json:"notes"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	ScheduledBy  string `json:"scheduled_by"`
	gDto.Metadata
}

func (r *FollowUpResponse) FromModel(followUp model.FollowUp) {
	r.ID = followUp.ID
	r.ViewingID = followUp.ViewingID
	r.FollowUpDate = shared.FormatDate(followUp.FollowUpDate)
	r.FollowUpTime = followUp.FollowUpTime
	r.Notes = followUp.Notes
	r.Type = followUp.Type
	r.Status = followUp.Status
	r.ScheduledBy = followUp.ScheduledBy
	r.Metadata.FromModel(followUp.Metadata)
}

type GetFollowUpsResponse struct {
	FollowUps []FollowUpResponse `json:"follow_ups"`
}

func (r *GetFollowUpsResponse) FromModels(models []model.FollowUp) {
	r.FollowUps = make([]FollowUpResponse, len(models))
	for i, mod := range models {
		r.FollowUps[i].FromModel(mod)
	}
}
