package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/journalapp/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	e, _ := newTestServer(t)

	body := `{"username":"a","email":"a@x.com","password":"p","name":"A"}`
	rec := doJSON(e, http.MethodPost, "/register", body, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")

	// Same email again, different username
	body = `{"username":"b","email":"a@x.com","password":"q","name":"B"}`
	rec = doJSON(e, http.MethodPost, "/register", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestRegisterMissingFields(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", `{"username":"a"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	e, db := newTestServer(t)
	registerUser(t, e, "a", "a@x.com", "p")

	token := loginUser(t, e, "a@x.com", "p")

	// The token must decode back to the registered user's ID
	var user models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&user).Error)

	claims := &models.JwtCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e, "a", "a@x.com", "p")

	rec := doJSON(e, http.MethodPost, "/login", `{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = doJSON(e, http.MethodPost, "/login", `{"email":"nobody@x.com","password":"p"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e, "a", "a@x.com", "p")
	token := loginUser(t, e, "a@x.com", "p")

	rec := doJSON(e, http.MethodGet, "/profile", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp["username"])
	assert.Equal(t, "a@x.com", resp["email"])
}

func TestProfileRequiresToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/profile", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterStoreUnavailable(t *testing.T) {
	e, db := newTestServer(t)

	// A failing email lookup must not fall through to the create path
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	body := `{"username":"a","email":"a@x.com","password":"p","name":"A"}`
	rec := doJSON(e, http.MethodPost, "/register", body, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProfileExpiredToken(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e, "a", "a@x.com", "p")

	claims := &models.JwtCustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	rec := doJSON(e, http.MethodGet, "/profile", "", expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileUnknownIdentity(t *testing.T) {
	e, db := newTestServer(t)
	registerUser(t, e, "a", "a@x.com", "p")
	token := loginUser(t, e, "a@x.com", "p")

	// Remove the row behind the token; the identity no longer resolves
	require.NoError(t, db.Where("email = ?", "a@x.com").Delete(&models.User{}).Error)

	rec := doJSON(e, http.MethodGet, "/profile", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
