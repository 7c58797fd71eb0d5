package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/journalapp/backend/internal/router"
	"github.com/journalapp/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-signing-secret"

// newTestServer builds an echo instance with all routes wired against a fresh
// in-memory sqlite database.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database, isolated per test. _fk turns on sqlite's
	// foreign-key enforcement, matching Postgres.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupRoutes(e, db, testJWTSecret)
	return e, db
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// registerUser registers a user through the HTTP surface.
func registerUser(t *testing.T, e *echo.Echo, username, email, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q,"name":"Test User"}`, username, email, password)
	rec := doJSON(e, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// loginUser logs a user in and returns the issued access token.
func loginUser(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := doJSON(e, http.MethodPost, "/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	return resp["access_token"]
}
