package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"estate/infras/notifier"
	"estate/infras/otel"
	"estate/internal/domains/followup/model/dto"
	"estate/internal/domains/followup/repository"
	viewingModel "estate/internal/domains/viewing/model"
	viewingRepo "estate/internal/domains/viewing/repository"
	"estate/shared"
	"estate/shared/constant"
	"estate/shared/failure"
	"estate/shared/identity"
	"estate/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	msgViewingNotFound = "viewing not found"
	msgHostOnly        = "only the host can schedule follow-ups for this viewing"
	msgNotParticipant  = "only the requester or the host can see follow-ups of this viewing"
)

// FollowUp schedules host follow-ups on a viewing. Follow-ups keep their own calendar and
// are never checked against booked slots.
type FollowUp interface {
	Schedule(ctx context.Context, req dto.ScheduleFollowUpRequest) (dto.FollowUpResponse, error)
	List(ctx context.Context, viewingID string) (dto.GetFollowUpsResponse, error)
}

type serviceImpl struct {
	repo     repository.FollowUp
	viewings viewingRepo.Viewing
	notifier notifier.Notifier
	otel     otel.Otel
}

func New(repo repository.FollowUp, viewings viewingRepo.Viewing, notifier notifier.Notifier, otel otel.Otel) FollowUp {
	return &serviceImpl{
		repo:     repo,
		viewings: viewings,
		notifier: notifier,
		otel:     otel,
	}
}

func (s *serviceImpl) Schedule(ctx context.Context, req dto.ScheduleFollowUpRequest) (res dto.FollowUpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".follow_up.Schedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	date, err := shared.ParseDate(req.FollowUpDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	viewing, err := s.viewing(ctx, req.ViewingID)
	if err != nil {
		return res, err
	}

	if viewing.HostID != actor.ID {
		return res, failure.Forbidden(msgHostOnly) // nolint:wrapcheck
	}

	followUp := req.ToModel(actor.ID, date, timezone.Now())

	if err = s.repo.Insert(ctx, followUp); err != nil {
		log.Error().Err(err).Msg("failed to schedule follow-up")

		return res, fmt.Errorf("failed to schedule follow-up: %w", err)
	}

	res.FromModel(followUp)

	s.notifier.Notify(ctx, viewing.RequesterID, notifier.KindFollowUpScheduled, res)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, viewingID string) (res dto.GetFollowUpsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".follow_up.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := identity.FromContext(ctx)
	if err != nil {
		return res, err
	}

	viewing, err := s.viewing(ctx, viewingID)
	if err != nil {
		return res, err
	}

	if !viewing.Involves(actor.ID) {
		return res, failure.Forbidden(msgNotParticipant) // nolint:wrapcheck
	}

	followUps, err := s.repo.ListByViewing(ctx, viewingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list follow-ups")

		return res, fmt.Errorf("failed to list follow-ups: %w", err)
	}

	res.FromModels(followUps)

	return res, nil
}

func (s *serviceImpl) viewing(ctx context.Context, id string) (viewingModel.Viewing, error) {
	viewing, err := s.viewings.Get(ctx, shared.FilterByID(id, viewingModel.FieldID, viewingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get viewing")

		return viewing, fmt.Errorf("failed to get viewing: %w", err)
	}

	if viewing.ID == constant.Empty {
		return viewing, failure.NotFound(msgViewingNotFound) // nolint:wrapcheck
	}

	return viewing, nil
}
