package viewing

import (
	"estate/infras/otel"
	"estate/internal/domains/viewing/model"
	"estate/internal/domains/viewing/model/dto"
	"estate/internal/domains/viewing/service"
	"estate/shared/constant"
	gDto "estate/shared/dto"
	"estate/shared/failure"
	"estate/shared/validator"
	"estate/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Viewing
	otel    otel.Otel
}

func New(service service.Viewing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/viewings", handler.RequestViewing)
	router.Get("/viewings", handler.GetViewings)
	router.Get("/viewings/{id}", handler.GetViewingByID)
	router.Patch("/viewings/{id}", handler.UpdateViewing)
	router.Delete("/viewings/{id}", handler.CancelViewing)
	router.Patch("/viewings/{id}/confirm", handler.ConfirmViewing)
	router.Get("/slots/{resourceID}", handler.GetAvailableSlots)
}

// RequestViewing books a pending viewing of a resource.
// @Summary Request a viewing
// @Description Book a pending viewing on a free slot. The resource owner becomes the host.
// @Tags Viewing
// @Accept json
// @Produce json
// @Param request body dto.CreateViewingRequest true "Create Viewing Request"
// @Success 201 {object} response.Data[dto.ViewingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/viewings [post]
// @Security BearerAuth
func (handler *Handler) RequestViewing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestViewing")
	defer scope.End()

	req := dto.CreateViewingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	viewing, err := handler.service.Request(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request viewing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Viewing requested " + viewing.ID)

	response.WithJSON(w, http.StatusCreated, viewing)
}

// GetViewings lists the viewings of the current user.
// @Summary List viewings
// @Description Tenants see the viewings they requested, managers the ones they host.
// @Tags Viewing
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param resource_id query string false "Filter by resource ID"
// @Success 200 {object} response.Data[dto.GetViewingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/viewings [get]
// @Security BearerAuth
func (handler *Handler) GetViewings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetViewings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.ViewingFilter{
		Status:     r.URL.Query().Get(model.FieldStatus),
		ResourceID: r.URL.Query().Get(model.FieldResourceID),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	viewings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get viewings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, viewings)
}

// GetViewingByID returns a viewing to its requester or host.
// @Summary Get a viewing
// @Tags Viewing
// @Produce json
// @Param id path string true "Viewing ID"
// @Success 200 {object} response.Data[dto.ViewingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/viewings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetViewingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetViewingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid viewing ID")

		response.WithError(w, err)

		return
	}

	viewing, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get viewing by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, viewing)
}

// UpdateViewing changes a pending viewing.
// @Summary Update a viewing
// @Description Move a pending viewing to another slot or change its notes.
// @Tags Viewing
// @Accept json
// @Produce json
// @Param id path string true "Viewing ID"
// @Param request body dto.UpdateViewingRequest true "Update Viewing Request"
// @Success 200 {object} response.Data[dto.ViewingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/viewings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateViewing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateViewing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid viewing ID")

		response.WithError(w, err)

		return
	}

	req := dto.UpdateViewingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	viewing, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update viewing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, viewing)
}

// CancelViewing cancels a pending or confirmed viewing.
// @Summary Cancel a viewing
// @Tags Viewing
// @Accept json
// @Produce json
// @Param id path string true "Viewing ID"
// @Param request body dto.CancelViewingRequest false "Cancellation reason"
// @Success 200 {object} response.Data[dto.ViewingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/viewings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelViewing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelViewing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid viewing ID")

		response.WithError(w, err)

		return
	}

	req := dto.CancelViewingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	viewing, err := handler.service.Cancel(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel viewing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, viewing)
}

// ConfirmViewing confirms a pending viewing.
// @Summary Confirm a viewing
// @Description Host only. Date and time default to the requested ones.
// @Tags Viewing
// @Accept json
// @Produce json
// @Param id path string true "Viewing ID"
// @Param request body dto.ConfirmViewingRequest false "Confirmation"
// @Success 200 {object} response.Data[dto.ViewingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/viewings/{id}/confirm [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmViewing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmViewing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateParam(constant.RequestParamID, id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid viewing ID")

		response.WithError(w, err)

		return
	}

	req := dto.ConfirmViewingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	viewing, err := handler.service.Confirm(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm viewing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, viewing)
}

// GetAvailableSlots lists free and booked slots of a resource on a date.
// @Summary Available slots
// @Tags Viewing
// @Produce json
// @Param resourceID path string true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/slots/{resourceID} [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	resourceID := chi.URLParam(r, constant.RequestParamResourceID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	if date == "" {
		response.WithError(w, failure.BadRequestFromString("date is required"))

		return
	}

	slots, err := handler.service.AvailableSlots(ctx, resourceID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}
