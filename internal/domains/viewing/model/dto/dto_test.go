package dto_test

import (
	"estate/internal/domains/viewing/model"
	"estate/internal/domains/viewing/model/dto"
	"estate/shared/duestatus"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)

func TestCreateViewingRequest_ToModel(t *testing.T) {
	req := dto.CreateViewingRequest{
		ResourceID:    "resource-1",
		PreferredDate: "2024-05-08",
		PreferredTime: "10:30",
		Notes:         "ground floor please",
	}

	date := time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)
	viewing := req.ToModel("tenant-1", "host-1", date, now)

	assert.NotEmpty(t, viewing.ID)
	assert.Equal(t, model.StatusPending, viewing.Status)
	assert.Equal(t, "tenant-1", viewing.RequesterID)
	assert.Equal(t, "host-1", viewing.HostID)
	assert.Equal(t, date, viewing.PreferredDate)
	assert.Equal(t, "tenant-1", viewing.CreatedBy)
	assert.Equal(t, now, viewing.CreatedAt)
}

func TestUpdateViewingRequest_IsEmpty(t *testing.T) {
	assert.True(t, dto.UpdateViewingRequest{}.IsEmpty())
	assert.False(t, dto.UpdateViewingRequest{Notes: "bring keys"}.IsEmpty())
}

func TestViewingResponse_FromModel(t *testing.T) {
	confirmedTime := "11:00"
	confirmedDate := today.AddDate(0, 0, 1)

	viewing := model.Viewing{
		ID:            "viewing-1",
		PreferredDate: today.AddDate(0, 0, 1),
		PreferredTime: "10:30",
		Status:        model.StatusConfirmed,
		ConfirmedDate: &confirmedDate,
		ConfirmedTime: &confirmedTime,
	}

	var res dto.ViewingResponse
	res.FromModel(viewing, today, 7)

	assert.Equal(t, "2024-05-07", res.PreferredDate)
	assert.Equal(t, "2024-05-07", res.ConfirmedDate)
	assert.Equal(t, "11:00", res.ConfirmedTime)
	assert.Equal(t, duestatus.DueSoon, res.DueStatus)
	assert.Empty(t, res.CancelledAt)
}

func TestViewingResponse_FromModelCancelledHasNoDueStatus(t *testing.T) {
	viewing := model.Viewing{
		ID:            "viewing-1",
		PreferredDate: today.AddDate(0, 0, -2),
		Status:        model.StatusCancelled,
	}

	var res dto.ViewingResponse
	res.FromModel(viewing, today, 7)

	assert.Empty(t, res.DueStatus)
}

func TestGetViewingsResponse_FromModels(t *testing.T) {
	models := []model.Viewing{
		{ID: "a", PreferredDate: today.AddDate(0, 0, -1), Status: model.StatusPending},
		{ID: "b", PreferredDate: today.AddDate(0, 0, 30), Status: model.StatusPending},
	}

	var res dto.GetViewingsResponse
	res.FromModels(models, 25, 10, today, 7)

	require.Len(t, res.Viewings, 2)
	assert.Equal(t, 25, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, duestatus.Overdue, res.Viewings[0].DueStatus)
	assert.Equal(t, duestatus.OnTrack, res.Viewings[1].DueStatus)
}
