package maintenance_test

import (
	"estate/infras/otel/mocks"
	"estate/internal/domains/maintenance/model/dto"
	serviceMocks "estate/internal/domains/maintenance/service/mocks"
	"estate/internal/handlers/maintenance"
	"estate/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const definitionID = "3e8f1a2b-6c7d-4e9f-8a1b-2c3d4e5f6a70"

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockScheduledMaintenance) {
	t.Helper()

	svc := serviceMocks.NewMockScheduledMaintenance(gomock.NewController(t))
	handler := maintenance.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateDefinition(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(dto.DefinitionResponse{ID: "def-1", FrequencyLabel: "Every 3 months"}, nil)

	rec := do(router, http.MethodPost, "/scheduled-maintenance", `{
		"resource_id":"resource-1","title":"Filter change","frequency":"monthly","interval":3,
		"next_due":"2024-03-01","priority":"High","category":"HVAC"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"frequency_label":"Every 3 months"`)
}

func TestCreateDefinitionRejectsInvalidBody(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown frequency", body: `{"resource_id":"r","title":"t","frequency":"weekly","interval":1,"next_due":"2024-03-01","priority":"High","category":"HVAC"}`},
		{name: "zero interval", body: `{"resource_id":"r","title":"t","frequency":"monthly","interval":0,"next_due":"2024-03-01","priority":"High","category":"HVAC"}`},
		{name: "unknown category", body: `{"resource_id":"r","title":"t","frequency":"monthly","interval":1,"next_due":"2024-03-01","priority":"High","category":"Roofing"}`},
		{name: "negative cost", body: `{"resource_id":"r","title":"t","frequency":"monthly","interval":1,"next_due":"2024-03-01","priority":"High","category":"HVAC","estimated_cost":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/scheduled-maintenance", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetDefinitionsParsesFilter(t *testing.T) {
	router, svc := newRouter(t)

	inactive := false
	svc.EXPECT().
		GetAll(gomock.Any(), dto.DefinitionFilter{ResourceID: "resource-1", Category: "Pest Control", IsActive: &inactive, DueStatus: "overdue"}).
		Return(dto.GetDefinitionsResponse{Definitions: []dto.DefinitionResponse{}}, nil)

	rec := do(router, http.MethodGet, "/scheduled-maintenance?resource_id=resource-1&category=Pest+Control&is_active=false&due_status=overdue", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDefinitionsRejectsUnknownDueStatus(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(router, http.MethodGet, "/scheduled-maintenance?due_status=late", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStatsIsNotShadowedByID(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Stats(gomock.Any()).Return(dto.StatsResponse{Total: 4}, nil)

	rec := do(router, http.MethodGet, "/scheduled-maintenance/stats/overview", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":4`)
}

func TestCompleteOccurrenceAcceptsEmptyBody(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Complete(gomock.Any(), definitionID, dto.CompleteOccurrenceRequest{}).
		Return(dto.CompletionResponse{Definition: dto.DefinitionResponse{ID: definitionID, NextDue: "2024-04-01"}}, nil)

	rec := do(router, http.MethodPost, "/scheduled-maintenance/"+definitionID+"/complete", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"next_due":"2024-04-01"`)
}

func TestCompleteOccurrenceMapsInvalidState(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Complete(gomock.Any(), definitionID, gomock.Any()).
		Return(dto.CompletionResponse{}, failure.InvalidState("scheduled maintenance is inactive"))

	rec := do(router, http.MethodPost, "/scheduled-maintenance/"+definitionID+"/complete", `{"notes":"done"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteDefinition(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), definitionID).Return(nil)

	rec := do(router, http.MethodDelete, "/scheduled-maintenance/"+definitionID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDefinitionByIDMapsNotFound(t *testing.T) {
	const missingID = "0c1d2e3f-4a5b-4c6d-9e8f-7a6b5c4d3e21"

	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), missingID).Return(dto.DefinitionDetailResponse{}, failure.NotFound("scheduled maintenance"))

	rec := do(router, http.MethodGet, "/scheduled-maintenance/"+missingID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDefinitionRoutesRejectMalformedID(t *testing.T) {
	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/scheduled-maintenance/abc", ""},
		{http.MethodPatch, "/scheduled-maintenance/abc", `{"title":"Roof"}`},
		{http.MethodDelete, "/scheduled-maintenance/abc", ""},
		{http.MethodPost, "/scheduled-maintenance/abc/deactivate", ""},
		{http.MethodPost, "/scheduled-maintenance/abc/complete", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			// No service call is expected.
			router, _ := newRouter(t)

			rec := do(router, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "id must be a valid UUID")
		})
	}
}
