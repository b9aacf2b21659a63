package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"estate/config"
	"estate/infras/notifier"
	"estate/infras/otel"
	"estate/internal/domains/maintenance/model"
	"estate/internal/domains/maintenance/model/dto"
	"estate/internal/domains/maintenance/recurrence"
	"estate/internal/domains/maintenance/repository"
	resourceRepo "estate/internal/domains/resource/repository"
	"estate/shared"
	"estate/shared/cache"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	"estate/shared/failure"
	"estate/shared/identity"
	gRepo "estate/shared/repository"
	"estate/shared/timezone"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheListDefinitions = "maintenance:list"
)

const (
	msgDefinitionNotFound = "scheduled maintenance not found"
	msgResourceNotFound   = "resource not found"
	msgInactive           = "scheduled maintenance is inactive"
	msgNotLeased          = "you don't have access to maintenance of this resource"
)

type ScheduledMaintenance interface {
	Create(ctx context.Context, req dto.CreateDefinitionRequest) (dto.DefinitionResponse, error)
	Complete(ctx context.Context, id string, req dto.CompleteOccurrenceRequest) (dto.CompletionResponse, error)
	Get(ctx context.Context, id string) (dto.DefinitionDetailResponse, error)
	GetAll(ctx context.Context, filter dto.DefinitionFilter) (dto.GetDefinitionsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateDefinitionRequest) (dto.DefinitionResponse, error)
	Deactivate(ctx context.Context, id string) (dto.DefinitionResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo      repository.ScheduledMaintenance
	tasks     repository.TaskRecord
	tx        gRepo.Transactor
	directory resourceRepo.Directory
	notifier  notifier.Notifier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.ScheduledMaintenance,
	tasks repository.TaskRecord,
	tx gRepo.Transactor,
	directory resourceRepo.Directory,
	notifier notifier.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) ScheduledMaintenance {
	return &serviceImpl{
		repo:      repo,
		tasks:     tasks,
		tx:        tx,
		directory: directory,
		notifier:  notifier,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDefinitionRequest) (res dto.DefinitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.RequireManager(ctx)
	if err != nil {
		return res, err
	}

	rule, err := recurrence.Parse(req.Frequency, req.Interval)
	if err != nil {
		return res, err
	}

	nextDue, err := shared.ParseDate(req.NextDue)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	resource, err := s.directory.Get(ctx, req.ResourceID)
	if err != nil {
		log.Error().Err(err).Str("resourceID", req.ResourceID).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if !resource.Exists() {
		return res, failure.NotFound(msgResourceNotFound) // nolint:wrapcheck
	}

	definition := req.ToModel(rule, nextDue, actor.ID, timezone.Now())

	if err = s.repo.Insert(ctx, definition); err != nil {
		log.Error().Err(err).Msg("failed to create scheduled maintenance")

		return res, fmt.Errorf("failed to create scheduled maintenance: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(definition, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	return res, nil
}

// Complete records the current occurrence and advances the definition. The task record
// and the new next_due are written in one transaction.
func (s *serviceImpl) Complete(ctx context.Context, id string, req dto.CompleteOccurrenceRequest) (res dto.CompletionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.RequireManager(ctx)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	today := shared.DateOf(now)

	var (
		definition model.ScheduledMaintenance
		record     model.TaskRecord
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		definition, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !definition.IsActive {
			return failure.InvalidState(msgInactive) // nolint:wrapcheck
		}

		rule, ruleErr := definition.Rule()
		if ruleErr != nil {
			log.Error().Err(ruleErr).Str("id", id).Msg("stored recurrence rule is invalid")

			return fmt.Errorf("invalid stored recurrence rule: %w", ruleErr)
		}

		record = req.ToModel(definition, actor.ID, now)

		if err = s.tasks.InsertTx(ctx, tx, record); err != nil {
			log.Error().Err(err).Msg("failed to insert task record")

			return fmt.Errorf("failed to insert task record: %w", err)
		}

		definition.LastPerformed = &today
		definition.NextDue = recurrence.NextDue(definition.NextDue, rule)
		definition.ModifiedAt = now
		definition.ModifiedBy = actor.ID

		err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldNextDue:       shared.FormatDate(definition.NextDue),
			model.FieldLastPerformed: shared.FormatDate(today),
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.ID,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to advance scheduled maintenance")

			return fmt.Errorf("failed to advance scheduled maintenance: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	res.Definition.FromModel(definition, today, s.cfg.Scheduling.DueSoonDays)
	res.TaskRecord.FromModel(record)

	if definition.AssignedTo != constant.Empty {
		s.notifier.Notify(ctx, definition.AssignedTo, notifier.KindMaintenanceCompleted, res)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DefinitionDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	definition, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get scheduled maintenance")

		return res, fmt.Errorf("failed to get scheduled maintenance: %w", err)
	}

	if definition.ID == constant.Empty {
		return res, failure.NotFound(msgDefinitionNotFound) // nolint:wrapcheck
	}

	if !actor.IsManager() {
		leased, err := s.leased(ctx, actor)
		if err != nil {
			return res, err
		}

		if !slices.Contains(leased, definition.ResourceID) {
			return res, failure.Forbidden(msgNotLeased) // nolint:wrapcheck
		}
	}

	tasks, err := s.tasks.ListByDefinition(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get task history")

		return res, fmt.Errorf("failed to get task history: %w", err)
	}

	res.FromModel(definition, tasks, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.DefinitionFilter) (res dto.GetDefinitionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	group, visible, err := s.scopeFilter(ctx, actor)
	if err != nil {
		return res, err
	}

	if !visible {
		res.FromModels(nil, filter.DueStatus, shared.Today(), s.cfg.Scheduling.DueSoonDays)

		return res, nil
	}

	if filter.ResourceID != constant.Empty {
		group.Append(shared.FilterEq(model.FieldResourceID, model.TableName, filter.ResourceID))
	}

	if filter.Category != constant.Empty {
		group.Append(shared.FilterEq(model.FieldCategory, model.TableName, filter.Category))
	}

	if filter.IsActive != nil {
		group.Append(shared.FilterEq(model.FieldIsActive, model.TableName, *filter.IsActive))
	}

	params := gDto.QueryParams{SortBy: model.FieldNextDue, SortDir: gDto.SortDirAsc}

	definitions, err := s.list(ctx, params, group)
	if err != nil {
		return res, err
	}

	// Labels depend on today and are derived after the cache.
	res.FromModels(definitions, filter.DueStatus, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, group gDto.FilterGroup) ([]model.ScheduledMaintenance, error) {
	namespace, cacheable := shared.CacheNamespace(ctx, s.cache, cacheListDefinitions)
	cacheKey := shared.BuildCacheKeyWithQuery(namespace, params, group)

	var definitions []model.ScheduledMaintenance

	if cacheable {
		if err := s.cache.Get(ctx, cacheKey, &definitions); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for scheduled maintenance list")

			return definitions, nil
		}
	}

	definitions, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get scheduled maintenance")

		return nil, fmt.Errorf("failed to get scheduled maintenance: %w", err)
	}

	if !cacheable {
		return definitions, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, definitions, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save scheduled maintenance list to cache")
		}
	}()

	return definitions, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateDefinitionRequest) (res dto.DefinitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.RequireManager(ctx)
	if err != nil {
		return res, err
	}

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, actor.ID)

	if req.NextDue != constant.Empty {
		nextDue, err := shared.ParseDate(req.NextDue)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		fields[model.FieldNextDue] = shared.FormatDate(nextDue)
	}

	if req.EstimatedCost != nil {
		fields[model.FieldEstimatedCost] = *req.EstimatedCost
	}

	if req.IsActive != nil {
		fields[model.FieldIsActive] = *req.IsActive
	}

	var updated model.ScheduledMaintenance

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.Frequency != constant.Empty || req.Interval != 0 {
			frequency, interval := current.Frequency, current.Interval

			if req.Frequency != constant.Empty {
				frequency = req.Frequency
			}

			if req.Interval != 0 {
				interval = req.Interval
			}

			rule, err := recurrence.Parse(frequency, interval)
			if err != nil {
				return err
			}

			fields[model.FieldFrequency] = string(rule.Frequency())
			fields[model.FieldInterval] = rule.Interval()
		}

		if err = s.write(ctx, tx, id, fields); err != nil {
			return err
		}

		updated, err = s.lock(ctx, tx, id)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	res.FromModel(updated, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	return res, nil
}

func (s *serviceImpl) Deactivate(ctx context.Context, id string) (res dto.DefinitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Deactivate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.RequireManager(ctx)
	if err != nil {
		return res, err
	}

	var definition model.ScheduledMaintenance

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		definition, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !definition.IsActive {
			return nil
		}

		now := timezone.Now()

		definition.IsActive = false
		definition.ModifiedAt = now
		definition.ModifiedBy = actor.ID

		return s.write(ctx, tx, id, map[string]any{
			model.FieldIsActive:      false,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.ID,
		})
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	res.FromModel(definition, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	return res, nil
}

// Delete removes the definition together with its task history.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = identity.RequireManager(ctx); err != nil {
		return err
	}

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.lock(ctx, tx, id); err != nil {
			return err
		}

		if err := s.tasks.DeleteByDefinitionTx(ctx, tx, id); err != nil {
			log.Error().Err(err).Msg("failed to delete task records")

			return fmt.Errorf("failed to delete task records: %w", err)
		}

		if err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to delete scheduled maintenance")

			return fmt.Errorf("failed to delete scheduled maintenance: %w", err)
		}

		return nil
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	group, visible, err := s.scopeFilter(ctx, actor)
	if err != nil {
		return res, err
	}

	if !visible {
		res.FromModels(nil)

		return res, nil
	}

	counts, err := s.repo.CountByCategory(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get scheduled maintenance stats")

		return res, fmt.Errorf("failed to get scheduled maintenance stats: %w", err)
	}

	res.FromModels(counts)

	return res, nil
}

// scopeFilter limits definitions to what the actor may see. Managers see every
// definition, everyone else only those of resources they lease. visible is false when
// the actor leases nothing.
func (s *serviceImpl) scopeFilter(ctx context.Context, actor identity.Actor) (group gDto.FilterGroup, visible bool, err error) {
	group = gDto.And()

	if actor.IsManager() {
		return group, true, nil
	}

	leased, err := s.leased(ctx, actor)
	if err != nil {
		return group, false, err
	}

	if len(leased) == 0 {
		return group, false, nil
	}

	group.Append(gDto.Filter{
		Field:    model.FieldResourceID,
		Table:    model.TableName,
		Value:    leased,
		Operator: gDto.FilterOperatorIn,
	})

	return group, true, nil
}

func (s *serviceImpl) leased(ctx context.Context, actor identity.Actor) ([]string, error) {
	leased, err := s.directory.LeasedResourceIDs(ctx, actor.ID)
	if err != nil {
		log.Error().Err(err).Str("tenantID", actor.ID).Msg("failed to get leased resources")

		return nil, fmt.Errorf("failed to get leased resources: %w", err)
	}

	return leased, nil
}

func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, id string) (model.ScheduledMaintenance, error) {
	definition, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to lock scheduled maintenance")

		return definition, fmt.Errorf("failed to lock scheduled maintenance: %w", err)
	}

	if definition.ID == constant.Empty {
		return definition, failure.NotFound(msgDefinitionNotFound) // nolint:wrapcheck
	}

	return definition, nil
}

func (s *serviceImpl) write(ctx context.Context, tx *sqlx.Tx, id string, fields map[string]any) error {
	if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update scheduled maintenance")

		return fmt.Errorf("failed to update scheduled maintenance: %w", err)
	}

	return nil
}

// invalidate runs before the write returns, so the caller's next read sees the new
// generation.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheListDefinitions)
}
