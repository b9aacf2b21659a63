package model

import (
	"estate/internal/domains/maintenance/recurrence"
	"estate/shared/model"
	"time"
)

const (
	TableName  = "scheduled_maintenances"
	EntityName = "scheduled_maintenance"

	FieldID            = "id"
	FieldResourceID    = "resource_id"
	FieldTitle         = "title"
	FieldFrequency     = "frequency"
	FieldInterval      = "recurrence_interval"
	FieldNextDue       = "next_due"
	FieldLastPerformed = "last_performed"
	FieldEstimatedCost = "estimated_cost"
	FieldPriority      = "priority"
	FieldCategory      = "category"
	FieldIsActive      = "is_active"
	FieldAssignedTo    = "assigned_to"
)

const (
	TaskTableName  = "maintenance_task_records"
	TaskEntityName = "maintenance_task_record"

	TaskFieldID            = "id"
	TaskFieldDefinitionID  = "definition_id"
	TaskFieldDueDate       = "due_date"
	TaskFieldCompletedDate = "completed_date"
)

const TaskStatusCompleted = "completed"

var Categories = []string{"HVAC", "Plumbing", "Electrical", "Pest Control", "Cleaning", "Landscaping", "Safety", "Other"}

var Priorities = []string{"Low", "Medium", "High", "Critical"}

// ScheduledMaintenance is a recurring maintenance definition. Frequency and Interval are
// stored as columns and read back through Rule.
type ScheduledMaintenance struct {
	ID            string     `db:"id"`
	ResourceID    string     `db:"resource_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Frequency     string     `db:"frequency"`
	Interval      int        `db:"recurrence_interval"`
	NextDue       time.Time  `db:"next_due"`
	LastPerformed *time.Time `db:"last_performed"`
	EstimatedCost float64    `db:"estimated_cost"`
	Priority      string     `db:"priority"`
	Category      string     `db:"category"`
	IsActive      bool       `db:"is_active"`
	AssignedTo    string     `db:"assigned_to"`
	Notes         string     `db:"notes"`
	model.Metadata
}

func (s ScheduledMaintenance) Rule() (recurrence.Rule, error) {
	return recurrence.Parse(s.Frequency, s.Interval)
}

// TaskRecord is the append-only log entry written each time an occurrence is completed.
type TaskRecord struct {
	ID            string    `db:"id"`
	DefinitionID  string    `db:"definition_id"`
	DueDate       time.Time `db:"due_date"`
	CompletedDate time.Time `db:"completed_date"`
	Status        string    `db:"status"`
	Notes         string    `db:"notes"`
	Cost          *float64  `db:"cost"`
	PerformedBy   string    `db:"performed_by"`
	CreatedAt     time.Time `db:"created_at"`
}

type CategoryCount struct {
	Category string `db:"category"`
	Count    int    `db:"count"`
}
