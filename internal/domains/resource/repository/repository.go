package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"estate/infras/otel"
	"estate/infras/postgres"
	"estate/internal/domains/resource/model"
	"estate/shared"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	gRepo "estate/shared/repository"
	"fmt"
)

// Directory answers questions about resources owned by the listing and lease services.
type Directory interface {
	Get(ctx context.Context, id string) (model.Resource, error)
	LeasedResourceIDs(ctx context.Context, tenantID string) ([]string, error)
}

type repositoryImpl struct {
	resources gRepo.Repository[model.Resource]
	leases    gRepo.Repository[model.Lease]
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Directory {
	return &repositoryImpl{
		resources: gRepo.NewRepository[model.Resource](model.EntityName, model.TableName, model.FieldID, db, otel),
		leases:    gRepo.NewRepository[model.Lease](model.LeaseEntityName, model.LeaseTableName, model.LeaseFieldID, db, otel),
		otel:      otel,
	}
}

// Get returns the zero Resource when id is unknown.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Resource, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resource.Get")
	defer scope.End()

	res, err := r.resources.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) LeasedResourceIDs(ctx context.Context, tenantID string) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resource.LeasedResourceIDs")
	defer scope.End()

	filter := gDto.And(shared.FilterEq(model.LeaseFieldTenantID, model.LeaseTableName, tenantID))

	leases, err := r.leases.GetAll(ctx, gDto.QueryParams{}, filter, model.LeaseFieldResourceID)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get leased resources: %w", err)
	}

	ids := make([]string, 0, len(leases))
	for _, lease := range leases {
		ids = append(ids, lease.ResourceID)
	}

	return ids, nil
}
