package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/krakosik/voting-api/internal/client"
	"github.com/krakosik/voting-api/internal/dto"
	"github.com/krakosik/voting-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestConfig returns a configuration backed by an in-memory sqlite database.
func TestConfig() dto.Config {
	return dto.Config{
		Port:           8080,
		DatabaseDriver: dto.DriverSQLite,
		DatabaseURL:    ":memory:",
		LogLevel:       "error",
		LogFormat:      "text",
	}
}

// SetupTestDB opens a fresh in-memory database, closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := client.NewDatabase(TestConfig())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SetupRepositories returns migrated repositories over a fresh database.
func SetupRepositories(t *testing.T) repository.Repositories {
	t.Helper()
	return repository.NewRepositories(SetupTestDB(t))
}

// FormRequest builds a request with a form encoded body.
func FormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// Serve runs the request through the handler and returns the recorder.
func Serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// DecodeJSON decodes the response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), "body: %s", w.Body.String())
}
