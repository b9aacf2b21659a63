package response_test

import (
	"encoding/json"
	"errors"
	"estate/shared/failure"
	"estate/transport/http/response"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	body := response.Error{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "failure keeps its message",
			err:      failure.Conflict("this time slot is already booked"),
			wantCode: http.StatusConflict,
			wantMsg:  "this time slot is already booked",
		},
		{
			name:     "wrapped failure drops the wrapping",
			err:      fmt.Errorf("failed to get resource: %w", failure.NotFound("resource not found")),
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "storage errors are masked",
			err:      fmt.Errorf("failed to create viewing: %w", errors.New(`pq: relation "viewings" does not exist`)),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decodeError(t, recorder))
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"id": "v1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":"v1"}}`, recorder.Body.String())
}

func TestCannedResponses(t *testing.T) {
	tests := []struct {
		name     string
		write    func(http.ResponseWriter)
		wantCode int
		wantBody string
	}{
		{"limit exceeded", response.WithRequestLimitExceeded, http.StatusTooManyRequests, `{"message":"REQUEST LIMIT EXCEEDED"}`},
		{"shutting down", response.WithPreparingShutdown, http.StatusServiceUnavailable, `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
		{"unhealthy", response.WithUnhealthy, http.StatusServiceUnavailable, `{"message":"SERVER UNHEALTHY"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			tt.write(recorder)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestWithJSONUnencodablePayload(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
