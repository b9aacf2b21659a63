package followup

import (
	"estate/infras/otel"
	"estate/internal/domains/followup/model/dto"
	"estate/internal/domains/followup/service"
	"estate/shared/constant"
	"estate/shared/validator"
	"estate/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FollowUp
	otel    otel.Otel
}

func New(service service.FollowUp, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/follow-ups", handler.ScheduleFollowUp)
	router.Get("/viewings/{id}/follow-ups", handler.GetFollowUps)
}

// ScheduleFollowUp schedules a follow-up on a viewing.
// @Summary Schedule a follow-up
// @Description Host only. Follow-ups are not checked against booked slots.
// @Tags FollowUp
// @Accept json
// @Produce json
// @Param request body dto.ScheduleFollowUpRequest true "Schedule Follow-up Request"
// @Success 201 {object} response.Data[dto.FollowUpResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/follow-ups [post]
// @Security BearerAuth
func (handler *Handler) ScheduleFollowUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ScheduleFollowUp")
	defer scope.End()

	req := dto.ScheduleFollowUpRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	followUp, err := handler.service.Schedule(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to schedule follow-up")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, followUp)
}

// GetFollowUps lists the follow-ups of a viewing.
// @Summary List follow-ups of a viewing
// @Tags FollowUp
// @Produce json
// @Param id path string true "Viewing ID"
// @Success 200 {object} response.Data[dto.GetFollowUpsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/viewings/{id}/follow-ups [get]
// @Security BearerAuth
func (handler *Handler) GetFollowUps(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFollowUps")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid viewing ID")

		response.WithError(w, err)

		return
	}

	followUps, err := handler.service.List(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get follow-ups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, followUps)
}
