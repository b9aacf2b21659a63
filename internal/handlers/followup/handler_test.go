package followup_test

import (
	"estate/infras/otel/mocks"
	"estate/internal/domains/followup/model/dto"
	serviceMocks "estate/internal/domains/followup/service/mocks"
	"estate/internal/handlers/followup"
	"estate/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const viewingID = "9b2d7c1e-4f3a-4c8e-a1b2-3c4d5e6f7a80"

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockFollowUp) {
	t.Helper()

	svc := serviceMocks.NewMockFollowUp(gomock.NewController(t))
	handler := followup.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestScheduleFollowUp(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Schedule(gomock.Any(), dto.ScheduleFollowUpRequest{ViewingID: viewingID, FollowUpDate: "2024-05-10", FollowUpTime: "14:00", Type: "call"}).
		Return(dto.FollowUpResponse{ID: "follow-up-1"}, nil)

	body := `{"viewing_id":"` + viewingID + `","follow_up_date":"2024-05-10","follow_up_time":"14:00","type":"call"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/follow-ups", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestScheduleFollowUpRequiresTime(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"viewing_id":"` + viewingID + `","follow_up_date":"2024-05-10"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/follow-ups", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFollowUpsMapsForbidden(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().List(gomock.Any(), viewingID).Return(dto.GetFollowUpsResponse{}, failure.ForbiddenError)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewings/"+viewingID+"/follow-ups", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFollowUpsRejectMalformedViewingID(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewings/abc/follow-ups", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "id must be a valid UUID")

	body := `{"viewing_id":"abc","follow_up_date":"2024-05-10","follow_up_time":"14:00"}`
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/follow-ups", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "viewing_id must be a valid UUID")
}
