package service_test

import (
	"context"
	"errors"
	"estate/config"
	"estate/infras/notifier"
	notifierMocks "estate/infras/notifier/mocks"
	"estate/infras/otel/mocks"
	"estate/infras/postgres"
	maintenanceMocks "estate/internal/domains/maintenance/mocks"
	"estate/internal/domains/maintenance/model"
	"estate/internal/domains/maintenance/model/dto"
	"estate/internal/domains/maintenance/service"
	resourceMocks "estate/internal/domains/resource/mocks"
	resourceModel "estate/internal/domains/resource/model"
	"estate/shared/cache/cachetest"
	cacheMocks "estate/shared/cache/mocks"
	gDto "estate/shared/dto"
	"estate/shared/failure"
	"estate/shared/identity"
	gRepo "estate/shared/repository"
	repoMocks "estate/shared/repository/mocks"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	managerID    = "manager-1"
	tenantID     = "tenant-1"
	resourceID   = "resource-1"
	definitionID = "definition-1"
)

var errDatabase = errors.New("connection reset")

type fixture struct {
	repo      *maintenanceMocks.MockScheduledMaintenance
	tasks     *maintenanceMocks.MockTaskRecord
	tx        *repoMocks.MockTransactor
	directory *resourceMocks.MockDirectory
	notifier  *notifierMocks.MockNotifier
	cache     *cacheMocks.MockRedisCache
	cfg       *config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      maintenanceMocks.NewMockScheduledMaintenance(ctrl),
		tasks:     maintenanceMocks.NewMockTaskRecord(ctrl),
		tx:        repoMocks.NewMockTransactor(ctrl),
		directory: resourceMocks.NewMockDirectory(ctrl),
		notifier:  notifierMocks.NewMockNotifier(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		cfg:       &config.Config{},
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f fixture) service(tx gRepo.Transactor) service.ScheduledMaintenance {
	return service.New(f.repo, f.tasks, tx, f.directory, f.notifier, f.cfg, f.cache, mocks.NewOtel())
}

func (f fixture) svc() service.ScheduledMaintenance {
	return f.service(f.tx)
}

func (f fixture) expectTransaction() {
	f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		},
	)
}

func asManager() context.Context {
	return identity.WithActor(context.Background(), identity.Actor{ID: managerID, Role: "manager"})
}

func asTenant() context.Context {
	return identity.WithActor(context.Background(), identity.Actor{ID: tenantID, Role: "tenant"})
}

func storedDefinition() model.ScheduledMaintenance {
	return model.ScheduledMaintenance{
		ID:         definitionID,
		ResourceID: resourceID,
		Title:      "Boiler service",
		Frequency:  "monthly",
		Interval:   1,
		NextDue:    time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		Priority:   "High",
		Category:   "HVAC",
		IsActive:   true,
		AssignedTo: "contractor-7",
	}
}

func createRequest() dto.CreateDefinitionRequest {
	return dto.CreateDefinitionRequest{
		ResourceID:    resourceID,
		Title:         "Gutter cleaning",
		Frequency:     "quarterly",
		Interval:      1,
		NextDue:       "2030-04-01",
		EstimatedCost: 120.5,
		Priority:      "Medium",
		Category:      "Cleaning",
	}
}

func TestCreate(t *testing.T) {
	t.Run("manager creates an active definition", func(t *testing.T) {
		f := newFixture(t)
		f.directory.EXPECT().Get(gomock.Any(), resourceID).Return(resourceModel.Resource{ID: resourceID, OwnerID: managerID}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, definition model.ScheduledMaintenance) error {
			assert.True(t, definition.IsActive)
			assert.Equal(t, "quarterly", definition.Frequency)
			assert.Equal(t, 1, definition.Interval)
			assert.Equal(t, managerID, definition.CreatedBy)

			return nil
		})

		res, err := f.svc().Create(asManager(), createRequest())

		require.NoError(t, err)
		assert.Equal(t, "2030-04-01", res.NextDue)
		assert.Equal(t, "Every 1 quarter", res.FrequencyLabel)
		assert.Equal(t, "on_track", string(res.DueStatus))
	})

	t.Run("tenant is forbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc().Create(asTenant(), createRequest())

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("non-positive interval", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest()
		req.Interval = 0

		_, err := f.svc().Create(asManager(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newFixture(t)
		f.directory.EXPECT().Get(gomock.Any(), resourceID).Return(resourceModel.Resource{}, nil)

		_, err := f.svc().Create(asManager(), createRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestComplete_AdvancesWithClamp(t *testing.T) {
	f := newFixture(t)
	f.expectTransaction()

	cost := 80.0

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
	f.tasks.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, record model.TaskRecord) error {
			assert.Equal(t, definitionID, record.DefinitionID)
			assert.Equal(t, "2024-01-31", record.DueDate.Format(time.DateOnly))
			assert.Equal(t, model.TaskStatusCompleted, record.Status)
			assert.Equal(t, managerID, record.PerformedBy)
			assert.Equal(t, &cost, record.Cost)

			return nil
		},
	)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "2024-02-29", fields[model.FieldNextDue])
			assert.NotEmpty(t, fields[model.FieldLastPerformed])

			return nil
		},
	)
	f.notifier.EXPECT().Notify(gomock.Any(), "contractor-7", notifier.KindMaintenanceCompleted, gomock.Any())

	res, err := f.svc().Complete(asManager(), definitionID, dto.CompleteOccurrenceRequest{Notes: "filter replaced", Cost: &cost})

	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", res.Definition.NextDue)
	assert.NotEmpty(t, res.Definition.LastPerformed)
	assert.Equal(t, "2024-01-31", res.TaskRecord.DueDate)
	assert.Equal(t, "filter replaced", res.TaskRecord.Notes)
}

func TestComplete_RollsBackWhenAdvanceFails(t *testing.T) {
	f := newFixture(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	dbx := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: dbx, Write: dbx}

	mock.ExpectBegin()
	mock.ExpectRollback()

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Not(gomock.Nil()), gomock.Any()).Return(storedDefinition(), nil)
	f.tasks.EXPECT().InsertTx(gomock.Any(), gomock.Not(gomock.Nil()), gomock.Any()).Return(nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Not(gomock.Nil()), gomock.Any(), gomock.Any()).Return(errDatabase)

	_, err = f.service(conn).Complete(asManager(), definitionID, dto.CompleteOccurrenceRequest{})

	require.ErrorIs(t, err, errDatabase)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplete_Rejections(t *testing.T) {
	t.Run("inactive definition", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction()

		inactive := storedDefinition()
		inactive.IsActive = false

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := f.svc().Complete(asManager(), definitionID, dto.CompleteOccurrenceRequest{})

		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("missing definition", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.ScheduledMaintenance{}, nil)

		_, err := f.svc().Complete(asManager(), definitionID, dto.CompleteOccurrenceRequest{})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("tenant", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc().Complete(asTenant(), definitionID, dto.CompleteOccurrenceRequest{})

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestGet(t *testing.T) {
	t.Run("manager gets history", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
		f.tasks.EXPECT().ListByDefinition(gomock.Any(), definitionID).Return([]model.TaskRecord{
			{ID: "t2", DueDate: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)},
			{ID: "t1", DueDate: time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC)},
		}, nil)

		res, err := f.svc().Get(asManager(), definitionID)

		require.NoError(t, err)
		require.Len(t, res.Tasks, 2)
		assert.Equal(t, "t2", res.Tasks[0].ID)
		assert.Equal(t, "overdue", string(res.DueStatus))
	})

	t.Run("tenant of leased resource", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
		f.directory.EXPECT().LeasedResourceIDs(gomock.Any(), tenantID).Return([]string{resourceID}, nil)
		f.tasks.EXPECT().ListByDefinition(gomock.Any(), definitionID).Return(nil, nil)

		res, err := f.svc().Get(asTenant(), definitionID)

		require.NoError(t, err)
		assert.Empty(t, res.Tasks)
	})

	t.Run("tenant of another resource", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
		f.directory.EXPECT().LeasedResourceIDs(gomock.Any(), tenantID).Return([]string{"resource-9"}, nil)

		_, err := f.svc().Get(asTenant(), definitionID)

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestGetAll(t *testing.T) {
	t.Run("due status filter is applied after derivation", func(t *testing.T) {
		f := newFixture(t)

		overdue := storedDefinition()
		future := storedDefinition()
		future.ID = "definition-2"
		future.NextDue = time.Date(2099, time.January, 1, 0, 0, 0, 0, time.UTC)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ScheduledMaintenance, error) {
				assert.Equal(t, model.FieldNextDue, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.ScheduledMaintenance{overdue, future}, nil
			},
		)

		res, err := f.svc().GetAll(asManager(), dto.DefinitionFilter{DueStatus: "overdue"})

		require.NoError(t, err)
		require.Len(t, res.Definitions, 1)
		assert.Equal(t, definitionID, res.Definitions[0].ID)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("tenant scope uses leased resources", func(t *testing.T) {
		f := newFixture(t)
		f.directory.EXPECT().LeasedResourceIDs(gomock.Any(), tenantID).Return([]string{resourceID, "resource-2"}, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ScheduledMaintenance, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "scheduled_maintenances.resource_id IN (:resource_id_0, :resource_id_1)")
				assert.Equal(t, "HVAC", args["category"])

				return nil, nil
			},
		)

		res, err := f.svc().GetAll(asTenant(), dto.DefinitionFilter{Category: "HVAC"})

		require.NoError(t, err)
		assert.Empty(t, res.Definitions)
	})

	t.Run("tenant without leases sees nothing", func(t *testing.T) {
		f := newFixture(t)
		f.directory.EXPECT().LeasedResourceIDs(gomock.Any(), tenantID).Return(nil, nil)

		res, err := f.svc().GetAll(asTenant(), dto.DefinitionFilter{})

		require.NoError(t, err)
		assert.NotNil(t, res.Definitions)
		assert.Empty(t, res.Definitions)
	})
}

func TestGetAll_LateCacheFillIsNotServedAfterComplete(t *testing.T) {
	f := newFixture(t)
	memory := cachetest.NewMemory()
	svc := service.New(f.repo, f.tasks, f.tx, f.directory, f.notifier, f.cfg, memory, mocks.NewOtel())

	advanced := storedDefinition()
	advanced.NextDue = time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.ScheduledMaintenance{storedDefinition()}, nil),
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.ScheduledMaintenance{advanced}, nil),
	)

	f.expectTransaction()
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
	f.tasks.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any(), "contractor-7", notifier.KindMaintenanceCompleted, gomock.Any())

	// The list read before the completion fills the cache only after the completion
	// has invalidated it.
	hold := memory.HoldNextSave("maintenance:list:0:")

	first, err := svc.GetAll(asManager(), dto.DefinitionFilter{})
	require.NoError(t, err)
	require.Len(t, first.Definitions, 1)
	assert.Equal(t, "2024-01-31", first.Definitions[0].NextDue)

	staleKey := hold.Started()

	_, err = svc.Complete(asManager(), definitionID, dto.CompleteOccurrenceRequest{})
	require.NoError(t, err)

	hold.Release()
	require.True(t, memory.Has(staleKey))

	second, err := svc.GetAll(asManager(), dto.DefinitionFilter{})
	require.NoError(t, err)
	require.Len(t, second.Definitions, 1)
	assert.Equal(t, "2024-02-29", second.Definitions[0].NextDue)
}

func TestUpdate(t *testing.T) {
	t.Run("frequency and interval are parsed together", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "monthly", fields[model.FieldFrequency])
				assert.Equal(t, 3, fields[model.FieldInterval])
				assert.Equal(t, "Annual check", fields[model.FieldTitle])

				return nil
			},
		)

		updated := storedDefinition()
		updated.Interval = 3
		updated.Title = "Annual check"

		// The response is read back under the same transaction, not from the replica.
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := f.svc().Update(asManager(), definitionID, dto.UpdateDefinitionRequest{Title: "Annual check", Interval: 3})

		require.NoError(t, err)
		assert.Equal(t, "Every 3 months", res.FrequencyLabel)
		assert.Equal(t, "Annual check", res.Title)
	})

	t.Run("invalid merged rule", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)

		_, err := f.svc().Update(asManager(), definitionID, dto.UpdateDefinitionRequest{Frequency: "weekly"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc().Update(asManager(), definitionID, dto.UpdateDefinitionRequest{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestDeactivate(t *testing.T) {
	f := newFixture(t)
	f.expectTransaction()
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, false, fields[model.FieldIsActive])

			return nil
		},
	)

	res, err := f.svc().Deactivate(asManager(), definitionID)

	require.NoError(t, err)
	assert.False(t, res.IsActive)
}

func TestDelete(t *testing.T) {
	t.Run("records then definition", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction()

		gomock.InOrder(
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedDefinition(), nil),
			f.tasks.EXPECT().DeleteByDefinitionTx(gomock.Any(), gomock.Any(), definitionID).Return(nil),
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		require.NoError(t, f.svc().Delete(asManager(), definitionID))
	})

	t.Run("definition delete fails", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedDefinition(), nil)
		f.tasks.EXPECT().DeleteByDefinitionTx(gomock.Any(), gomock.Any(), definitionID).Return(nil)
		f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errDatabase)

		err := f.svc().Delete(asManager(), definitionID)

		require.ErrorIs(t, err, errDatabase)
	})
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().CountByCategory(gomock.Any(), gomock.Any()).Return([]model.CategoryCount{
		{Category: "HVAC", Count: 3},
		{Category: "Safety", Count: 2},
	}, nil)

	res, err := f.svc().Stats(asManager())

	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Len(t, res.Categories, 2)
}
