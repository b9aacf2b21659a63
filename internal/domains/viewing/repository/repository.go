package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"estate/infras/otel"
	"estate/infras/postgres"
	"estate/internal/domains/viewing/model"
	"estate/shared"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	gRepo "estate/shared/repository"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
)

type Viewing interface {
	Insert(ctx context.Context, model model.Viewing) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Viewing, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Viewing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Viewing, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	ActiveSlots(ctx context.Context, resourceID string, date time.Time) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Viewing]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Viewing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Viewing](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ActiveSlotFilter matches active viewings holding the slot, either as their preferred
// slot or as the slot they were confirmed for.
func ActiveSlotFilter(resourceID string, date time.Time, slot string) gDto.FilterGroup {
	day := shared.FormatDate(date)

	return gDto.And(
		shared.FilterEq(model.FieldResourceID, model.TableName, resourceID),
		activeStatusFilter(),
		gDto.Or(
			gDto.And(
				shared.FilterEq(model.FieldPreferredDate, model.TableName, day),
				shared.FilterEq(model.FieldPreferredTime, model.TableName, slot),
			),
			gDto.And(
				heldDateFilter(day),
				gDto.Filter{Field: model.HeldTimeExpr, ArgName: "held_time", Value: slot, Operator: gDto.FilterOperatorEq},
			),
		),
	)
}

func activeDayFilter(resourceID string, date time.Time) gDto.FilterGroup {
	day := shared.FormatDate(date)

	return gDto.And(
		shared.FilterEq(model.FieldResourceID, model.TableName, resourceID),
		activeStatusFilter(),
		gDto.Or(
			shared.FilterEq(model.FieldPreferredDate, model.TableName, day),
			heldDateFilter(day),
		),
	)
}

func activeStatusFilter() gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldStatus,
		Table:    model.TableName,
		Value:    model.ActiveStatuses,
		Operator: gDto.FilterOperatorIn,
	}
}

func heldDateFilter(day string) gDto.Filter {
	return gDto.Filter{Field: model.HeldDateExpr, ArgName: "held_date", Value: day, Operator: gDto.FilterOperatorEq}
}

// ActiveSlots returns the labels held on date by pending or confirmed viewings of a
// resource. A viewing confirmed for another slot holds both.
func (r *repositoryImpl) ActiveSlots(ctx context.Context, resourceID string, date time.Time) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".viewing.ActiveSlots")
	defer scope.End()

	viewings, err := r.GetAll(ctx, gDto.QueryParams{}, activeDayFilter(resourceID, date),
		model.FieldPreferredDate, model.FieldPreferredTime, model.FieldConfirmedDate, model.FieldConfirmedTime)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active slots: %w", err)
	}

	day := shared.FormatDate(date)
	slots := make([]string, 0, len(viewings))

	for _, viewing := range viewings {
		if shared.FormatDate(viewing.PreferredDate) == day {
			slots = append(slots, viewing.PreferredTime)
		}

		heldDate, heldTime := viewing.Slot()
		if shared.FormatDate(heldDate) == day && !slices.Contains(slots, heldTime) {
			slots = append(slots, heldTime)
		}
	}

	return slots, nil
}
