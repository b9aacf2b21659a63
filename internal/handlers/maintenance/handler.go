package maintenance

import (
	"estate/infras/otel"
	"estate/internal/domains/maintenance/model"
	"estate/internal/domains/maintenance/model/dto"
	"estate/internal/domains/maintenance/service"
	"estate/shared"
	"estate/shared/constant"
	"estate/shared/validator"
	"estate/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamDueStatus = "due_status"

type Handler struct {
	service service.ScheduledMaintenance
	otel    otel.Otel
}

func New(service service.ScheduledMaintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/scheduled-maintenance", handler.CreateDefinition)
	router.Get("/scheduled-maintenance", handler.GetDefinitions)
	router.Get("/scheduled-maintenance/stats/overview", handler.GetStats)
	router.Get("/scheduled-maintenance/{id}", handler.GetDefinitionByID)
	router.Patch("/scheduled-maintenance/{id}", handler.UpdateDefinition)
	router.Delete("/scheduled-maintenance/{id}", handler.DeleteDefinition)
	router.Post("/scheduled-maintenance/{id}/deactivate", handler.DeactivateDefinition)
	router.Post("/scheduled-maintenance/{id}/complete", handler.CompleteOccurrence)
}

// CreateDefinition creates a recurring maintenance definition.
// @Summary Create scheduled maintenance
// @Tags ScheduledMaintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateDefinitionRequest true "Create Scheduled Maintenance Request"
// @Success 201 {object} response.Data[dto.DefinitionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/scheduled-maintenance [post]
// @Security BearerAuth
func (handler *Handler) CreateDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDefinition")
	defer scope.End()

	req := dto.CreateDefinitionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	definition, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create scheduled maintenance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, definition)
}

// GetDefinitions lists definitions ordered by next due date.
// @Summary List scheduled maintenance
// @Tags ScheduledMaintenance
// @Produce json
// @Param resource_id query string false "Filter by resource ID"
// @Param category query string false "Filter by category"
// @Param is_active query bool false "Filter by active flag"
// @Param due_status query string false "Filter by due status (overdue, due_soon, on_track)"
// @Success 200 {object} response.Data[dto.GetDefinitionsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/scheduled-maintenance [get]
// @Security BearerAuth
func (handler *Handler) GetDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDefinitions")
	defer scope.End()

	query := r.URL.Query()

	filter := dto.DefinitionFilter{
		ResourceID: query.Get(model.FieldResourceID),
		Category:   query.Get(model.FieldCategory),
		IsActive:   shared.ConvertStringToBool(query.Get(model.FieldIsActive)),
		DueStatus:  query.Get(queryParamDueStatus),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	definitions, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get scheduled maintenance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, definitions)
}

// GetStats counts definitions per category.
// @Summary Scheduled maintenance statistics
// @Tags ScheduledMaintenance
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Router /v1/scheduled-maintenance/stats/overview [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get scheduled maintenance stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetDefinitionByID returns a definition with its task history.
// @Summary Get scheduled maintenance
// @Tags ScheduledMaintenance
// @Produce json
// @Param id path string true "Scheduled Maintenance ID"
// @Success 200 {object} response.Data[dto.DefinitionDetailResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/scheduled-maintenance/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDefinitionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDefinitionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid scheduled maintenance ID")

		response.WithError(w, err)

		return
	}

	definition, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get scheduled maintenance by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, definition)
}

// UpdateDefinition partially updates a definition.
// @Summary Update scheduled maintenance
// @Tags ScheduledMaintenance
// @Accept json
// @Produce json
// @Param id path string true "Scheduled Maintenance ID"
// @Param request body dto.UpdateDefinitionRequest true "Update Scheduled Maintenance Request"
// @Success 200 {object} response.Data[dto.DefinitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/scheduled-maintenance/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDefinition")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid scheduled maintenance ID")

		response.WithError(w, err)

		return
	}

	req := dto.UpdateDefinitionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	definition, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update scheduled maintenance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, definition)
}

// DeleteDefinition deletes a definition and its task history.
// @Summary Delete scheduled maintenance
// @Tags ScheduledMaintenance
// @Produce json
// @Param id path string true "Scheduled Maintenance ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/scheduled-maintenance/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDefinition")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid scheduled maintenance ID")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete scheduled maintenance")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Scheduled maintenance deleted successfully")
}

// DeactivateDefinition stops a definition from recurring while keeping its history.
// @Summary Deactivate scheduled maintenance
// @Tags ScheduledMaintenance
// @Produce json
// @Param id path string true "Scheduled Maintenance ID"
// @Success 200 {object} response.Data[dto.DefinitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/scheduled-maintenance/{id}/deactivate [post]
// @Security BearerAuth
func (handler *Handler) DeactivateDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateDefinition")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid scheduled maintenance ID")

		response.WithError(w, err)

		return
	}

	definition, err := handler.service.Deactivate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate scheduled maintenance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, definition)
}

// CompleteOccurrence records the current occurrence and advances the next due date.
// @Summary Complete scheduled maintenance
// @Tags ScheduledMaintenance
// @Accept json
// @Produce json
// @Param id path string true "Scheduled Maintenance ID"
// @Param request body dto.CompleteOccurrenceRequest false "Completion details"
// @Success 200 {object} response.Data[dto.CompletionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/scheduled-maintenance/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteOccurrence(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteOccurrence")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid scheduled maintenance ID")

		response.WithError(w, err)

		return
	}

	req := dto.CompleteOccurrenceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	completion, err := handler.service.Complete(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete scheduled maintenance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, completion)
}
