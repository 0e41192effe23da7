package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/krakosik/voting-api/internal/dto"
	"github.com/krakosik/voting-api/internal/service"
	"github.com/krakosik/voting-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	return NewServer(service.NewServices(testutil.SetupRepositories(t)))
}

func createEvent(t *testing.T, e *echo.Echo, name string) dto.Event {
	t.Helper()
	w := testutil.Serve(e, testutil.FormRequest(http.MethodPost, "/event/", url.Values{"name": {name}}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var event dto.Event
	testutil.DecodeJSON(t, w, &event)
	return event
}

func createVote(t *testing.T, e *echo.Echo, eventID uint, name string) dto.Vote {
	t.Helper()
	form := url.Values{"event_id": {fmt.Sprint(eventID)}, "name": {name}}
	w := testutil.Serve(e, testutil.FormRequest(http.MethodPost, "/vote/", form))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var vote dto.Vote
	testutil.DecodeJSON(t, w, &vote)
	return vote
}

func voteAction(t *testing.T, e *echo.Echo, voteID uint, action string) *httptest.ResponseRecorder {
	t.Helper()
	path := fmt.Sprintf("/vote/%d", voteID)
	return testutil.Serve(e, testutil.FormRequest(http.MethodPost, path, url.Values{"action": {action}}))
}

func TestInfoPage(t *testing.T) {
	e := setupServer(t)

	w := testutil.Serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, w.Body.String(), "<h1>Voting API</h1>")
	assert.Contains(t, w.Body.String(), "<table>")
}

func TestHealth(t *testing.T) {
	e := setupServer(t)

	w := testutil.Serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	testutil.DecodeJSON(t, w, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	e := setupServer(t)
	testutil.Serve(e, httptest.NewRequest(http.MethodGet, "/event/", nil))

	w := testutil.Serve(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `voting_http_requests_total{method="GET",route="/event/",status="200"}`)
}

func TestResponsesAreIndented(t *testing.T) {
	e := setupServer(t)

	w := testutil.Serve(e, testutil.FormRequest(http.MethodPost, "/event/", url.Values{"name": {"Q1 Poll"}}))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, echo.MIMEApplicationJSON, strings.Split(w.Header().Get(echo.HeaderContentType), ";")[0])
	assert.True(t, strings.HasPrefix(w.Body.String(), "{\n  \"id\": 1,\n  \"name\": \"Q1 Poll\""), w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	e := setupServer(t)

	w := testutil.Serve(e, httptest.NewRequest(http.MethodGet, "/vote/", nil))
	assert.NotEmpty(t, w.Header().Get(echo.HeaderXRequestID))
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: fmt.Errorf("%w: vote 1", dto.ErrNotFound), code: http.StatusNotFound},
		{name: "conflict", err: fmt.Errorf("%w: event", dto.ErrConflict), code: http.StatusConflict},
		{name: "invalid", err: dto.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "echo", err: echo.ErrMethodNotAllowed, code: http.StatusMethodNotAllowed},
		{name: "internal", err: fmt.Errorf("%w: db gone", dto.ErrInternalFailure), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := errorStatus(tt.err)
			assert.Equal(t, tt.code, code)
			if tt.code == http.StatusInternalServerError {
				assert.NotContains(t, message, "db gone")
			}
		})
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	e := setupServer(t)

	w := testutil.Serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.Serve(e, httptest.NewRequest(http.MethodPut, "/event/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var body dto.Error
	testutil.DecodeJSON(t, w, &body)
	assert.NotEmpty(t, body.Error)
}
