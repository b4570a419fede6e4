package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	"github.com/BruksfildServices01/feedback-hub/internal/config"
	"github.com/BruksfildServices01/feedback-hub/internal/db/dbtest"
	"github.com/BruksfildServices01/feedback-hub/internal/infra/repository"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
	ucAuth "github.com/BruksfildServices01/feedback-hub/internal/usecase/auth"
)

type api struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)

	users := repository.NewUserGormRepository(db)
	for email, role := range map[string]string{
		"admin@feedbackhub.com": "ADMIN",
		"staff@feedbackhub.com": "STAFF",
	} {
		hash, err := ucAuth.HashPassword("secret123")
		require.NoError(t, err)
		_, err = users.EnsureUser(context.Background(), &models.User{Email: email, PasswordHash: hash, Role: role})
		require.NoError(t, err)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), zerolog.Nop())
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	cfg := &config.Config{
		AppEnv:         config.EnvProduction,
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		AllowedOrigins: []string{"http://localhost:5173"},
	}

	return &api{
		t: t,
		router: NewRouter(db, cfg, Infra{
			Log:   zerolog.Nop(),
			Audit: dispatcher,
		}),
	}
}

func (a *api) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func (a *api) login(email string) string {
	a.t.Helper()

	rr := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())

	var out struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(a.t, email, out.User.Email)
	return out.Token
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

type storeBody struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedAt string `json:"createdAt"`
}

func TestStoreReviewListScenario(t *testing.T) {
	a := newAPI(t)
	admin := a.login("admin@feedbackhub.com")

	// create a store in English
	rr := a.do(http.MethodPost, "/api/stores", admin, map[string]string{"name": "Downtown", "location": "Main St 1"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	store := decode[storeBody](t, rr)
	assert.Equal(t, "Downtown", store.Name)

	// add Hebrew text
	rr = a.do(http.MethodPut, "/api/stores/"+store.ID, admin, map[string]string{"name": "מרכז", "location": "הרצל 1", "language": "he"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "מרכז", decode[storeBody](t, rr).Name)

	// public listing per language
	rr = a.do(http.MethodGet, "/api/stores?language=he", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	stores := decode[[]storeBody](t, rr)
	require.Len(t, stores, 1)
	assert.Equal(t, "מרכז", stores[0].Name)

	rr = a.do(http.MethodGet, "/api/stores?language=fr", "", nil)
	assert.Equal(t, "Untitled Store", decode[[]storeBody](t, rr)[0].Name)

	// anonymous review
	rr = a.do(http.MethodPost, "/api/reviews", "", map[string]any{"storeId": store.ID, "rating": 5, "comment": "Great", "language": "he"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	submitted := decode[map[string]any](t, rr)
	assert.Equal(t, "מרכז", submitted["storeName"])
	assert.EqualValues(t, 5, submitted["rating"])

	rr = a.do(http.MethodPost, "/api/reviews", "", map[string]any{"storeId": store.ID, "comment": "Upper case tag", "language": "HE"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	upper := decode[map[string]any](t, rr)
	assert.Equal(t, "he", upper["language"])
	assert.Equal(t, "מרכז", upper["storeName"])

	rr = a.do(http.MethodGet, "/api/stores?language=HE", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "מרכז", decode[[]storeBody](t, rr)[0].Name)

	rr = a.do(http.MethodPost, "/api/reviews", "", map[string]any{"storeId": store.ID, "comment": "No stars"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Nil(t, decode[map[string]any](t, rr)["rating"])

	// admin listing
	rr = a.do(http.MethodGet, "/api/reviews?page=1&limit=1", admin, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	page := decode[struct {
		Reviews []struct {
			ID         string `json:"id"`
			StoreName  string `json:"storeName"`
			Date       string `json:"date"`
			IsApproved bool   `json:"isApproved"`
		} `json:"reviews"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}](t, rr)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, "Downtown", page.Reviews[0].StoreName)
	assert.True(t, page.Reviews[0].IsApproved)
	assert.Equal(t, 3, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.Pages)

	// moderation
	reviewID := page.Reviews[0].ID
	rr = a.do(http.MethodPatch, "/api/reviews/"+reviewID+"/approve", admin, map[string]bool{"isApproved": false})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"isApproved":false}`, reviewID), rr.Body.String())

	rr = a.do(http.MethodDelete, "/api/reviews/"+reviewID, admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Review deleted successfully"}`, rr.Body.String())

	rr = a.do(http.MethodDelete, "/api/reviews/"+reviewID, admin, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Review not found"}`, rr.Body.String())

	// deleting the store keeps the remaining review
	rr = a.do(http.MethodDelete, "/api/stores/"+store.ID, admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Store deleted successfully"}`, rr.Body.String())

	rr = a.do(http.MethodGet, "/api/reviews", admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unknown Store")
}

func TestReviewValidation(t *testing.T) {
	a := newAPI(t)
	admin := a.login("admin@feedbackhub.com")

	rr := a.do(http.MethodPost, "/api/stores", admin, map[string]string{"name": "Downtown", "location": "Main St 1"})
	require.Equal(t, http.StatusCreated, rr.Code)
	storeID := decode[storeBody](t, rr).ID

	tests := []struct {
		name   string
		body   map[string]any
		status int
		error  string
	}{
		{"empty comment", map[string]any{"storeId": storeID, "comment": ""}, http.StatusBadRequest, "Store ID and comment are required"},
		{"rating six", map[string]any{"storeId": storeID, "comment": "x", "rating": 6}, http.StatusBadRequest, "Rating must be between 1 and 5"},
		{"unknown store", map[string]any{"storeId": "nope", "comment": "x"}, http.StatusNotFound, "Store not found"},
		{"bad language", map[string]any{"storeId": storeID, "comment": "x", "language": "english"}, http.StatusBadRequest, "language must be a two-letter language code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := a.do(http.MethodPost, "/api/reviews", "", tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.error, decode[map[string]any](t, rr)["error"])
		})
	}

	rr = a.do(http.MethodGet, "/api/reviews?page=0", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(http.MethodGet, "/api/reviews?limit=abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(http.MethodGet, fmt.Sprintf("/api/reviews?page=%d&limit=10", math.MaxInt), admin, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Page must be a positive integer"}`, rr.Body.String())

	rr = a.do(http.MethodGet, fmt.Sprintf("/api/reviews?limit=%d", math.MaxInt), admin, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"pages":0`)
}

func TestAccessControl(t *testing.T) {
	a := newAPI(t)
	staff := a.login("staff@feedbackhub.com")

	rr := a.do(http.MethodGet, "/api/settings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Access token required"}`, rr.Body.String())

	rr = a.do(http.MethodGet, "/api/settings", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rr.Body.String())

	adminRoutes := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/api/stores", map[string]string{"name": "Downtown", "location": "Main St 1"}},
		{http.MethodPut, "/api/stores/some-id", map[string]string{"name": "Downtown", "location": "Main St 1"}},
		{http.MethodDelete, "/api/stores/some-id", nil},
		{http.MethodGet, "/api/reviews", nil},
		{http.MethodPost, "/api/reviews/export", nil},
		{http.MethodPatch, "/api/reviews/some-id/approve", map[string]bool{"isApproved": true}},
		{http.MethodDelete, "/api/reviews/some-id", nil},
		{http.MethodGet, "/api/settings", nil},
		{http.MethodPut, "/api/settings", map[string]int{"minRating": 2}},
		{http.MethodGet, "/api/audit-logs", nil},
	}

	for _, route := range adminRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := a.do(route.method, route.path, staff, route.body)
			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.JSONEq(t, `{"error":"Admin access required"}`, rr.Body.String())

			rr = a.do(route.method, route.path, "", route.body)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}

	rr = a.do(http.MethodGet, "/api/auth/me", staff, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"role":"STAFF"`)

	rr = a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@feedbackhub.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rr.Body.String())
}

func TestSettingsRoundTrip(t *testing.T) {
	a := newAPI(t)
	admin := a.login("admin@feedbackhub.com")

	rr := a.do(http.MethodGet, "/api/settings", admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"webhookUrl":"","notificationEmail":"","autoApprove":true,"minRating":1}`, rr.Body.String())

	rr = a.do(http.MethodPut, "/api/settings", admin, map[string]any{"autoApprove": false, "minRating": 3})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"webhookUrl":"","notificationEmail":"","autoApprove":false,"minRating":3}`, rr.Body.String())

	rr = a.do(http.MethodPut, "/api/settings", admin, map[string]any{"minRating": 9})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Minimum rating must be between 1 and 5"}`, rr.Body.String())
}

func TestMiscRoutes(t *testing.T) {
	a := newAPI(t)
	admin := a.login("admin@feedbackhub.com")

	rr := a.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	health := decode[map[string]string](t, rr)
	assert.Equal(t, "OK", health["status"])
	_, err := time.Parse(time.RFC3339, health["timestamp"])
	assert.NoError(t, err)

	rr = a.do(http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rr.Body.String())

	rr = a.do(http.MethodPost, "/api/reviews/export", admin, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"error":"Reviews export is not configured"}`, rr.Body.String())

	rr = a.do(http.MethodGet, "/api/audit-logs?action=login", admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	logs := decode[map[string]any](t, rr)
	assert.EqualValues(t, 1, logs["page"])
	assert.EqualValues(t, 50, logs["limit"])
}
