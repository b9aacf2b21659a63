package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"estate/infras/otel"
	"estate/infras/postgres"
	"estate/internal/domains/followup/model"
	"estate/shared"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	gRepo "estate/shared/repository"
	"fmt"
)

type FollowUp interface {
	Insert(ctx context.Context, model model.FollowUp) error
	ListByViewing(ctx context.Context, viewingID string) ([]model.FollowUp, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.FollowUp]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) FollowUp {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FollowUp](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// ListByViewing returns the follow-ups of a viewing, earliest first.
func (r *repositoryImpl) ListByViewing(ctx context.Context, viewingID string) ([]model.FollowUp, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".follow_up.ListByViewing")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldFollowUpDate, SortDir: gDto.SortDirAsc}

	followUps, err := r.GetAll(ctx, params, shared.FilterByID(viewingID, model.FieldViewingID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}

	return followUps, nil
}
