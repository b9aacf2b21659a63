package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"estate/infras/otel"
	"estate/infras/postgres"
	"estate/internal/domains/maintenance/model"
	"estate/shared"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	"estate/shared/logger"
	gRepo "estate/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ScheduledMaintenance interface {
	Insert(ctx context.Context, model model.ScheduledMaintenance) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ScheduledMaintenance, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.ScheduledMaintenance, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ScheduledMaintenance, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	CountByCategory(ctx context.Context, filter gDto.FilterGroup) ([]model.CategoryCount, error)
}

type TaskRecord interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.TaskRecord) error
	ListByDefinition(ctx context.Context, definitionID string) ([]model.TaskRecord, error)
	DeleteByDefinitionTx(ctx context.Context, sqltx *sqlx.Tx, definitionID string) error
}

type scheduledMaintenanceImpl struct {
	gRepo.Repository[model.ScheduledMaintenance]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ScheduledMaintenance {
	return &scheduledMaintenanceImpl{
		Repository: gRepo.NewRepository[model.ScheduledMaintenance](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountByCategory groups the matching definitions by category, alphabetically.
func (r *scheduledMaintenanceImpl) CountByCategory(ctx context.Context, filter gDto.FilterGroup) ([]model.CategoryCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".scheduled_maintenance.CountByCategory")
	defer scope.End()

	where, args := gRepo.WhereClause(filter)

	query := fmt.Sprintf(
		"SELECT %[1]s.%[2]s, COUNT(%[1]s.%[3]s) AS count FROM %[1]s%[4]s GROUP BY %[1]s.%[2]s ORDER BY %[1]s.%[2]s",
		model.TableName, model.FieldCategory, model.FieldID, where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	counts := []model.CategoryCount{}

	if err = prepare.SelectContext(ctx, &counts, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count by category: %w", err)
	}

	return counts, nil
}

type taskRecordImpl struct {
	gRepo.Repository[model.TaskRecord]
	otel otel.Otel
}

func NewTaskRecord(db *postgres.Connection, otel otel.Otel) TaskRecord {
	return &taskRecordImpl{
		Repository: gRepo.NewRepository[model.TaskRecord](model.TaskEntityName, model.TaskTableName, model.TaskFieldID, db, otel),
		otel:       otel,
	}
}

// ListByDefinition returns the task history of a definition, newest due date first.
func (r *taskRecordImpl) ListByDefinition(ctx context.Context, definitionID string) ([]model.TaskRecord, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance_task_record.ListByDefinition")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.TaskFieldDueDate, SortDir: gDto.SortDirDesc}

	records, err := r.GetAll(ctx, params, definitionFilter(definitionID))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list task records: %w", err)
	}

	return records, nil
}

func (r *taskRecordImpl) DeleteByDefinitionTx(ctx context.Context, sqltx *sqlx.Tx, definitionID string) error {
	return r.DeleteTx(ctx, sqltx, definitionFilter(definitionID)) //nolint:wrapcheck
}

func definitionFilter(definitionID string) gDto.FilterGroup {
	return shared.FilterByID(definitionID, model.TaskFieldDefinitionID, model.TaskTableName)
}
