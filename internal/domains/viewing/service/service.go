package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"estate/config"
	"estate/infras/notifier"
	"estate/infras/otel"
	availabilityService "estate/internal/domains/availability/service"
	resourceRepo "estate/internal/domains/resource/repository"
	"estate/internal/domains/viewing/model"
	"estate/internal/domains/viewing/model/dto"
	"estate/internal/domains/viewing/repository"
	"estate/shared"
	"estate/shared/cache"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	"estate/shared/failure"
	"estate/shared/identity"
	gRepo "estate/shared/repository"
	"estate/shared/timezone"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetViewing = "viewing:get"
	cacheViewingRow = "row"
)

const (
	msgViewingNotFound    = "viewing not found"
	msgResourceNotFound   = "resource not found"
	msgSlotTaken          = "this time slot is already booked"
	msgSlotNotBookable    = "time slot is not bookable on the requested date"
	msgResourceClosed     = "resource is not available for viewing"
	msgOwnResource        = "cannot request a viewing of your own resource"
	msgNotParticipant     = "only the requester or the host can access this viewing"
	msgHostOnly           = "only the host can confirm this viewing"
	msgOnlyPendingUpdate  = "only pending viewings can be updated"
	msgOnlyPendingConfirm = "only pending viewings can be confirmed"
	msgAlreadyCancelled   = "viewing is already cancelled"
)

var sortableColumns = []string{model.FieldCreatedAt, model.FieldPreferredDate}

type Viewing interface {
	Request(ctx context.Context, req dto.CreateViewingRequest) (dto.ViewingResponse, error)
	Get(ctx context.Context, id string) (dto.ViewingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ViewingFilter) (dto.GetViewingsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateViewingRequest) (dto.ViewingResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelViewingRequest) (dto.ViewingResponse, error)
	Confirm(ctx context.Context, id string, req dto.ConfirmViewingRequest) (dto.ViewingResponse, error)
	AvailableSlots(ctx context.Context, resourceID, date string) (dto.SlotsResponse, error)
}

type serviceImpl struct {
	repo         repository.Viewing
	tx           gRepo.Transactor
	directory    resourceRepo.Directory
	availability availabilityService.Availability
	notifier     notifier.Notifier
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Viewing,
	tx gRepo.Transactor,
	directory resourceRepo.Directory,
	availability availabilityService.Availability,
	notifier notifier.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Viewing {
	return &serviceImpl{
		repo:         repo,
		tx:           tx,
		directory:    directory,
		availability: availability,
		notifier:     notifier,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Request(ctx context.Context, req dto.CreateViewingRequest) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".viewing.Request")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	date, err := shared.ParseDate(req.PreferredDate)
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

	if !resource.IsOpenForViewing() {
		return res, failure.BadRequestFromString(msgResourceClosed) // nolint:wrapcheck
	}

	if resource.OwnerID == actor.ID {
		return res, failure.Forbidden(msgOwnResource) // nolint:wrapcheck
	}

	if !s.availability.IsBookable(date, req.PreferredTime) {
		return res, failure.BadRequestFromString(msgSlotNotBookable) // nolint:wrapcheck
	}

	// Early answer only; the partial unique index decides.
	taken, err := s.repo.Exist(ctx, repository.ActiveSlotFilter(req.ResourceID, date, req.PreferredTime))
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot")

		return res, fmt.Errorf("failed to check slot: %w", err)
	}

	if taken {
		return res, failure.Conflict(msgSlotTaken) // nolint:wrapcheck
	}

	now := timezone.Now()
	viewing := req.ToModel(actor.ID, resource.OwnerID, date, now)

	if err = s.repo.Insert(ctx, viewing); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict(msgSlotTaken) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create viewing")

		return res, fmt.Errorf("failed to create viewing: %w", err)
	}

	res.FromModel(viewing, shared.DateOf(now), s.cfg.Scheduling.DueSoonDays)

	s.notifier.Notify(ctx, viewing.HostID, notifier.KindViewingRequested, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".viewing.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	viewing, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !viewing.Involves(actor.ID) {
		return res, failure.Forbidden(msgNotParticipant) // nolint:wrapcheck
	}

	res.FromModel(viewing, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	return res, nil
}

// find reads a viewing through the cache. The cached value is the raw row; derived
// labels are computed by the caller.
func (s *serviceImpl) find(ctx context.Context, id string) (viewing model.Viewing, err error) {
	namespace, cacheable := shared.CacheNamespace(ctx, s.cache, shared.BuildCacheKey(cacheGetViewing, id))
	cacheKey := shared.BuildCacheKey(namespace, cacheViewingRow)

	if cacheable {
		if err = s.cache.Get(ctx, cacheKey, &viewing); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for viewing")

			return viewing, nil
		}
	}

	viewing, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get viewing")

		return viewing, fmt.Errorf("failed to get viewing: %w", err)
	}

	if viewing.ID == constant.Empty {
		return viewing, failure.NotFound(msgViewingNotFound) // nolint:wrapcheck
	}

	if !cacheable {
		return viewing, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, viewing, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save viewing to cache")
		}
	}()

	return viewing, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ViewingFilter) (res dto.GetViewingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".viewing.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	params.Sanitize(sortableColumns, constant.DefaultValueSortBy, constant.DefaultValueSortDir)

	group := scopeFilter(actor)

	if filter.Status != constant.Empty {
		group.Append(shared.FilterEq(model.FieldStatus, model.TableName, filter.Status))
	}

	if filter.ResourceID != constant.Empty {
		group.Append(shared.FilterEq(model.FieldResourceID, model.TableName, filter.ResourceID))
	}

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count viewings")

		return res, fmt.Errorf("failed to count viewings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get viewings")

		return res, fmt.Errorf("failed to get viewings: %w", err)
	}

	res.FromModels(models, total, params.Limit, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	return res, nil
}

// scopeFilter limits viewings to the ones the actor takes part in: tenants see what they
// requested, managers what they host.
func scopeFilter(actor identity.Actor) gDto.FilterGroup {
	switch {
	case actor.IsTenant():
		return gDto.And(shared.FilterEq(model.FieldRequesterID, model.TableName, actor.ID))
	case actor.IsManager():
		return gDto.And(shared.FilterEq(model.FieldHostID, model.TableName, actor.ID))
	default:
		return gDto.And(gDto.Or(
			shared.FilterEq(model.FieldRequesterID, model.TableName, actor.ID),
			shared.FilterEq(model.FieldHostID, model.TableName, actor.ID),
		))
	}
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateViewingRequest) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".viewing.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	var newDate *time.Time

	if req.PreferredDate != constant.Empty {
		date, err := shared.ParseDate(req.PreferredDate)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		newDate = &date
	}

	var updated model.Viewing

	err = s.transition(ctx, id, func(tx *sqlx.Tx, current model.Viewing) error {
		if !current.Involves(actor.ID) {
			return failure.Forbidden(msgNotParticipant) // nolint:wrapcheck
		}

		if current.Status != model.StatusPending {
			return failure.InvalidState(msgOnlyPendingUpdate) // nolint:wrapcheck
		}

		fields := shared.TransformFields(req, actor.ID)
		updated = current

		if newDate != nil {
			updated.PreferredDate = *newDate
			fields[model.FieldPreferredDate] = shared.FormatDate(*newDate)
		}

		if req.PreferredTime != constant.Empty {
			updated.PreferredTime = req.PreferredTime
			fields[model.FieldPreferredTime] = req.PreferredTime
		}

		if !s.availability.IsBookable(updated.PreferredDate, updated.PreferredTime) {
			return failure.BadRequestFromString(msgSlotNotBookable) // nolint:wrapcheck
		}

		if req.Notes != constant.Empty {
			updated.Notes = req.Notes
		}

		if req.ContactPreference != constant.Empty {
			updated.ContactPreference = req.ContactPreference
		}

		updated.ModifiedAt, _ = fields[constant.FieldModifiedAt].(time.Time)
		updated.ModifiedBy = actor.ID

		return s.write(ctx, tx, id, fields)
	})
	if err != nil {
		return res, err
	}

	res.FromModel(updated, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	s.afterWrite(ctx, id)
	s.notifier.Notify(ctx, updated.Counterpart(actor.ID), notifier.KindViewingUpdated, res)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelViewingRequest) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".viewing.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	var updated model.Viewing

	err = s.transition(ctx, id, func(tx *sqlx.Tx, current model.Viewing) error {
		if !current.Involves(actor.ID) {
			return failure.Forbidden(msgNotParticipant) // nolint:wrapcheck
		}

		if current.Status == model.StatusCancelled {
			return failure.InvalidState(msgAlreadyCancelled) // nolint:wrapcheck
		}

		now := timezone.Now()

		updated = current
		updated.Status = model.StatusCancelled
		updated.CancellationReason = req.Reason
		updated.CancelledAt = &now
		updated.ModifiedAt = now
		updated.ModifiedBy = actor.ID

		return s.write(ctx, tx, id, map[string]any{
			model.FieldStatus:             model.StatusCancelled,
			model.FieldCancellationReason: req.Reason,
			model.FieldCancelledAt:        now,
			constant.FieldModifiedAt:      now,
			constant.FieldModifiedBy:      actor.ID,
		})
	})
	if err != nil {
		return res, err
	}

	res.FromModel(updated, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	s.afterWrite(ctx, id)
	s.notifier.Notify(ctx, updated.Counterpart(actor.ID), notifier.KindViewingCancelled, res)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string, req dto.ConfirmViewingRequest) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".viewing.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	var confirmedDate *time.Time

	if req.ConfirmedDate != constant.Empty {
		date, err := shared.ParseDate(req.ConfirmedDate)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		confirmedDate = &date
	}

	var updated model.Viewing

	err = s.transition(ctx, id, func(tx *sqlx.Tx, current model.Viewing) error {
		if current.HostID != actor.ID {
			return failure.Forbidden(msgHostOnly) // nolint:wrapcheck
		}

		if current.Status != model.StatusPending {
			return failure.InvalidState(msgOnlyPendingConfirm) // nolint:wrapcheck
		}

		date := current.PreferredDate
		if confirmedDate != nil {
			date = *confirmedDate
		}

		slot := current.PreferredTime
		if req.ConfirmedTime != constant.Empty {
			slot = req.ConfirmedTime
		}

		if !s.availability.IsBookable(date, slot) {
			return failure.BadRequestFromString(msgSlotNotBookable) // nolint:wrapcheck
		}

		now := timezone.Now()

		updated = current
		updated.Status = model.StatusConfirmed
		updated.ConfirmedDate = &date
		updated.ConfirmedTime = &slot
		updated.ConfirmedAt = &now
		updated.HostNotes = req.Notes
		updated.ModifiedAt = now
		updated.ModifiedBy = actor.ID

		return s.write(ctx, tx, id, map[string]any{
			model.FieldStatus:        model.StatusConfirmed,
			model.FieldConfirmedDate: shared.FormatDate(date),
			model.FieldConfirmedTime: slot,
			model.FieldConfirmedAt:   now,
			model.FieldHostNotes:     req.Notes,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.ID,
		})
	})
	if err != nil {
		return res, err
	}

	res.FromModel(updated, shared.Today(), s.cfg.Scheduling.DueSoonDays)

	s.afterWrite(ctx, id)
	s.notifier.Notify(ctx, updated.RequesterID, notifier.KindViewingConfirmed, res)

	return res, nil
}

func (s *serviceImpl) AvailableSlots(ctx context.Context, resourceID, date string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".viewing.AvailableSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := shared.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	resource, err := s.directory.Get(ctx, resourceID)
	if err != nil {
		log.Error().Err(err).Str("resourceID", resourceID).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if !resource.Exists() {
		return res, failure.NotFound(msgResourceNotFound) // nolint:wrapcheck
	}

	available, booked, err := s.availability.AvailableSlots(ctx, resourceID, day)
	if err != nil {
		return res, fmt.Errorf("failed to compute available slots: %w", err)
	}

	return dto.SlotsResponse{
		Date:           shared.FormatDate(day),
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}

// transition locks the viewing row and runs apply inside the same transaction, so the
// status check and the write see the same row version.
func (s *serviceImpl) transition(ctx context.Context, id string, apply func(tx *sqlx.Tx, current model.Viewing) error) error {
	return s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		current, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to lock viewing")

			return fmt.Errorf("failed to lock viewing: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgViewingNotFound) // nolint:wrapcheck
		}

		return apply(tx, current)
	})
}

func (s *serviceImpl) write(ctx context.Context, tx *sqlx.Tx, id string, fields map[string]any) error {
	err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err == nil {
		return nil
	}

	if shared.IsUniqueViolation(err) {
		return failure.Conflict(msgSlotTaken) // nolint:wrapcheck
	}

	log.Error().Err(err).Msg("failed to update viewing")

	return fmt.Errorf("failed to update viewing: %w", err)
}

func (s *serviceImpl) afterWrite(ctx context.Context, id string) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheGetViewing, id))
}
