package dto

import (
	"estate/internal/domains/maintenance/model"
	"estate/internal/domains/maintenance/recurrence"
	"estate/shared"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	"estate/shared/duestatus"
	"estate/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateDefinitionRequest struct {
	ResourceID    string  `json:"resource_id"    validate:"required"`
	Title         string  `json:"title"          validate:"required,max=200"`
	Description   string  `json:"description"    validate:"omitempty,max=2000"`
	Frequency     string  `json:"frequency"      validate:"required,oneof=monthly quarterly yearly custom"`
	Interval      int     `json:"interval"       validate:"required,gt=0"`
	NextDue       string  `json:"next_due"       validate:"required,date"`
	EstimatedCost float64 `json:"estimated_cost" validate:"gte=0"`
	Priority      string  `json:"priority"       validate:"required,oneof=Low Medium High Critical"`
	Category      string  `json:"category"       validate:"required,oneof=HVAC Plumbing Electrical 'Pest Control' Cleaning Landscaping Safety Other"`
	AssignedTo    string  `json:"assigned_to"    validate:"omitempty,max=100"`
	Notes         string  `json:"notes"          validate:"omitempty,max=2000"`
}

func (c *CreateDefinitionRequest) ToModel(rule recurrence.Rule, nextDue time.Time, managerID string, now time.Time) model.ScheduledMaintenance {
	definition := model.ScheduledMaintenance{
		ID:            uuid.NewString(),
		ResourceID:    c.ResourceID,
		Title:         c.Title,
		Description:   c.Description,
		Frequency:     string(rule.Frequency()),
		Interval:      rule.Interval(),
		NextDue:       nextDue,
		EstimatedCost: c.EstimatedCost,
		Priority:      c.Priority,
		Category:      c.Category,
		IsActive:      true,
		AssignedTo:    c.AssignedTo,
		Notes:         c.Notes,
	}

	definition.Stamp(managerID, now)

	return definition
}

// UpdateDefinitionRequest is a partial update. Frequency and Interval are re-validated
// together against the stored values.
type UpdateDefinitionRequest struct {
	Title         string   `db:"title"          json:"title"          validate:"omitempty,max=200"`
	Description   string   `db:"description"    json:"description"    validate:"omitempty,max=2000"`
	Frequency     string   `json:"frequency"      validate:"omitempty,oneof=monthly quarterly yearly custom"`
	Interval      int      `json:"interval"       validate:"omitempty,gt=0"`
	NextDue       string   `json:"next_due"       validate:"omitempty,date"`
	EstimatedCost *float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
	Priority      string   `db:"priority"       json:"priority"       validate:"omitempty,oneof=Low Medium High Critical"`
	Category      string   `db:"category"       json:"category"       validate:"omitempty,oneof=HVAC Plumbing Electrical 'Pest Control' Cleaning Landscaping Safety Other"`
	AssignedTo    string   `db:"assigned_to"    json:"assigned_to"    validate:"omitempty,max=100"`
	Notes         string   `db:"notes"          json:"notes"          validate:"omitempty,max=2000"`
	IsActive      *bool    `json:"is_active"`
}

func (u UpdateDefinitionRequest) IsEmpty() bool {
	return u.Title == "" && u.Description == "" && u.Frequency == "" && u.Interval == 0 &&
		u.NextDue == "" && u.EstimatedCost == nil && u.Priority == "" && u.Category == "" &&
		u.AssignedTo == "" && u.Notes == "" && u.IsActive == nil
}

type CompleteOccurrenceRequest struct {
	Notes string   `json:"notes" validate:"omitempty,max=2000"`
	Cost  *float64 `json:"cost"  validate:"omitempty,gte=0"`
}

func (c *CompleteOccurrenceRequest) ToModel(definition model.ScheduledMaintenance, performedBy string, now time.Time) model.TaskRecord {
	return model.TaskRecord{
		ID:            uuid.NewString(),
		DefinitionID:  definition.ID,
		DueDate:       definition.NextDue,
		CompletedDate: shared.DateOf(now),
		Status:        model.TaskStatusCompleted,
		Notes:         c.Notes,
		Cost:          c.Cost,
		PerformedBy:   performedBy,
		CreatedAt:     now,
	}
}

// DefinitionFilter narrows ListDefinitions. DueStatus is matched after the label has been
// derived, the rest is pushed down to the store.
type DefinitionFilter struct {
	ResourceID string `validate:"omitempty"`
	Category   string `validate:"omitempty,oneof=HVAC Plumbing Electrical 'Pest Control' Cleaning Landscaping Safety Other"`
	IsActive   *bool
	DueStatus  string `validate:"omitempty,oneof=overdue due_soon on_track"`
}

type DefinitionResponse struct {
	ID             string           `json:"id"`
	ResourceID     string           `json:"resource_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Frequency      string           `json:"frequency"`
	Interval       int              `json:"interval"`
	FrequencyLabel string           `json:"frequency_label"`
	NextDue        string           `json:"next_due"`
	LastPerformed  string           `json:"last_performed,omitempty"`
	EstimatedCost  float64          `json:"estimated_cost"`
	Priority       string           `json:"priority"`
	Category       string           `json:"category"`
	IsActive       bool             `json:"is_active"`
	AssignedTo     string           `json:"assigned_to,omitempty"`
	Notes          string           `json:"notes"`
	DueStatus      duestatus.Status `json:"due_status"`
	gDto.Metadata
}

func (r *DefinitionResponse) FromModel(definition model.ScheduledMaintenance, today time.Time, windowDays int) {
	r.ID = definition.ID
	r.ResourceID = definition.ResourceID
	r.Title = definition.Title
	r.Description = definition.Description
	r.Frequency = definition.Frequency
	r.Interval = definition.Interval
	r.NextDue = shared.FormatDate(definition.NextDue)
	r.EstimatedCost = definition.EstimatedCost
	r.Priority = definition.Priority
	r.Category = definition.Category
	r.IsActive = definition.IsActive
	r.AssignedTo = definition.AssignedTo
	r.Notes = definition.Notes
	r.DueStatus = duestatus.Of(definition.NextDue, today, windowDays)

	if rule, err := definition.Rule(); err == nil {
		r.FrequencyLabel = rule.Describe()
	}

	if definition.LastPerformed != nil {
		r.LastPerformed = shared.FormatDate(*definition.LastPerformed)
	}

	r.Metadata.FromModel(definition.Metadata)
}

type TaskRecordResponse struct {
	ID            string   `json:"id"`
	DefinitionID  string   `json:"definition_id"`
	DueDate       string   `json:"due_date"`
	CompletedDate string   `json:"completed_date"`
	Status        string   `json:"status"`
	Notes         string   `json:"notes"`
	Cost          *float64 `json:"cost"`
	PerformedBy   string   `json:"performed_by"`
	CreatedAt     string   `json:"created_at"`
}

func (r *TaskRecordResponse) FromModel(record model.TaskRecord) {
	r.ID = record.ID
	r.DefinitionID = record.DefinitionID
	r.DueDate = shared.FormatDate(record.DueDate)
	r.CompletedDate = shared.FormatDate(record.CompletedDate)
	r.Status = record.Status
	r.Notes = record.Notes
	r.Cost = record.Cost
	r.PerformedBy = record.PerformedBy
	r.CreatedAt = timezone.Format(record.CreatedAt, constant.DateFormat)
}

type DefinitionDetailResponse struct {
	DefinitionResponse
	Tasks []TaskRecordResponse `json:"tasks"`
}

func (r *DefinitionDetailResponse) FromModel(definition model.ScheduledMaintenance, tasks []model.TaskRecord, today time.Time, windowDays int) {
	r.DefinitionResponse.FromModel(definition, today, windowDays)

	r.Tasks = make([]TaskRecordResponse, len(tasks))
	for i, task := range tasks {
		r.Tasks[i].FromModel(task)
	}
}

type CompletionResponse struct {
	Definition DefinitionResponse `json:"definition"`
	TaskRecord TaskRecordResponse `json:"task_record"`
}

type GetDefinitionsResponse struct {
	Definitions []DefinitionResponse `json:"definitions"`
	TotalData   int                  `json:"total_data"`
}

// FromModels maps and labels the definitions, dropping the ones whose label differs from
// dueStatus when it is set.
func (r *GetDefinitionsResponse) FromModels(models []model.ScheduledMaintenance, dueStatus string, today time.Time, windowDays int) {
	r.Definitions = make([]DefinitionResponse, 0, len(models))

	for _, mod := range models {
		var item DefinitionResponse
		item.FromModel(mod, today, windowDays)

		if dueStatus != "" && string(item.DueStatus) != dueStatus {
			continue
		}

		r.Definitions = append(r.Definitions, item)
	}

	r.TotalData = len(r.Definitions)
}

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type StatsResponse struct {
	Categories []CategoryCountResponse `json:"categories"`
	Total      int                     `json:"total"`
}

func (r *StatsResponse) FromModels(counts []model.CategoryCount) {
	r.Categories = make([]CategoryCountResponse, len(counts))

	for i, count := range counts {
		r.Categories[i] = CategoryCountResponse{Category: count.Category, Count: count.Count}
		r.Total += count.Count
	}
}
