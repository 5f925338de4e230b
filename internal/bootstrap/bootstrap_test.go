package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/backend/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Port = "5000"
	cfg.Server.Mode = "production"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TokenExpiration = "1h"
	cfg.JWT.Issuer = "test"
	cfg.Logging.Level = "error"

	deps, err := BuildDependencies(cfg, zerolog.Nop())
	require.NoError(t, err)

	return SetupRouter(cfg, deps, zerolog.Nop())
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// registerAndLogin creates an account and returns a usable token.
func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "secret123", "name": "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestBannerAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Alumni Connect Backend v1.0 - Running", body["status"])
	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, endpoints, "alumni")
	assert.Contains(t, endpoints, "messages")

	w = doJSON(router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	counts, ok := body["data_counts"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, counts, 7)
	assert.EqualValues(t, 0, counts["alumni"])
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "jane@example.com", "password": "secret123", "name": "Jane Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User registered successfully", body["message"])
	user := body["user"].(map[string]interface{})
	assert.EqualValues(t, 1, user["id"])
	// Password hashes never leave the server
	assert.NotContains(t, user, "password")

	// Duplicate registration conflicts
	w = doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "jane@example.com", "password": "secret123", "name": "Jane Doe",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User with this email already exists", decode(t, w)["error"])

	// Missing required field reports by json name
	w = doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "other@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", decode(t, w)["error"])

	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jane@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jane@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])

	// An empty JSON object counts as no body at all
	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body is required", decode(t, w)["error"])

	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{"email": "jane@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password are required", decode(t, w)["error"])
}

func TestEmptyBodyRejectedOnWrites(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	w := doJSON(router, http.MethodPost, "/api/alumni", token, gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "batch": "2020", "department": "CE",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// An empty patch is indistinguishable from no request at all
	w = doJSON(router, http.MethodPut, "/api/alumni/1", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body is required", decode(t, w)["error"])

	w = doJSON(router, http.MethodPost, "/api/alumni", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body is required", decode(t, w)["error"])

	w = doJSON(router, http.MethodPost, "/api/auth/register", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body is required", decode(t, w)["error"])

	// The stored record is untouched
	w = doJSON(router, http.MethodGet, "/api/alumni/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stored := decode(t, w)["alumni"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", stored["name"])
}

func TestMutationsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/alumni", "", gin.H{
		"name": "Jane", "email": "jane@example.com", "batch": "2020", "department": "CE",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token is missing", decode(t, w)["error"])

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)
	req.Header.Set("Authorization", "garbage-token")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	require.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, "Invalid token", decode(t, w2)["error"])
}

func TestAlumniCRUDOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	w := doJSON(router, http.MethodPost, "/api/alumni", token, gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "batch": "2020", "department": "CE",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Alumni profile created successfully", body["message"])
	created := body["alumni"].(map[string]interface{})
	assert.EqualValues(t, 1, created["id"])

	// The first missing required field is the one reported
	w = doJSON(router, http.MethodPost, "/api/alumni", token, gin.H{
		"name": "John Doe", "email": "john@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "batch is required", decode(t, w)["error"])

	w = doJSON(router, http.MethodGet, "/api/alumni/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/alumni/1", token, gin.H{
		"current_company": "Acme Corp",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Alumni profile updated successfully", body["message"])
	updated := body["alumni"].(map[string]interface{})
	assert.Equal(t, "Acme Corp", updated["current_company"])
	assert.Equal(t, "Jane Doe", updated["name"])

	w = doJSON(router, http.MethodDelete, "/api/alumni/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alumni profile deleted successfully", decode(t, w)["message"])

	w = doJSON(router, http.MethodGet, "/api/alumni/1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Alumni not found", decode(t, w)["error"])

	// Deleted ids leave a gap in the sequence
	w = doJSON(router, http.MethodPost, "/api/alumni", token, gin.H{
		"name": "Mary Major", "email": "mary@example.com", "batch": "2021", "department": "ME",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	next := decode(t, w)["alumni"].(map[string]interface{})
	assert.EqualValues(t, 2, next["id"])

	w = doJSON(router, http.MethodGet, "/api/alumni", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.EqualValues(t, 1, body["total"])
}

func TestEventAndJobDefaultsOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	w := doJSON(router, http.MethodPost, "/api/events", token, gin.H{
		"title": "Reunion", "description": "Annual meet",
		"date": "2026-12-20", "location": "Campus",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	event := decode(t, w)["event"].(map[string]interface{})
	assert.Equal(t, "general", event["event_type"])
	assert.Equal(t, "upcoming", event["status"])
	assert.NotNil(t, event["attendees"])

	w = doJSON(router, http.MethodPost, "/api/jobs", token, gin.H{
		"title": "Backend Engineer", "company": "Acme Corp",
		"description": "Go services", "location": "Remote",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Job posted successfully", body["message"])
	job := body["job"].(map[string]interface{})
	assert.Equal(t, "full-time", job["job_type"])
	assert.Equal(t, "entry", job["experience_level"])
	assert.Equal(t, "active", job["status"])

	w = doJSON(router, http.MethodGet, "/api/jobs?type=full-time", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])
}

func TestDonationFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	// String amounts are accepted
	w := doJSON(router, http.MethodPost, "/api/donations", token, gin.H{
		"donor_name": "Jane Doe", "amount": "100", "purpose": "library",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	donation := decode(t, w)["donation"].(map[string]interface{})
	assert.EqualValues(t, 100, donation["amount"])
	assert.Equal(t, "INR", donation["currency"])

	w = doJSON(router, http.MethodPost, "/api/donations", token, gin.H{
		"donor_name": "John Smith", "amount": 50, "purpose": "library", "anonymous": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/donations", token, gin.H{
		"donor_name": "Jane Doe", "amount": -5, "purpose": "library",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amount must be greater than 0", decode(t, w)["error"])

	// Listing redacts the anonymous donor and sums amounts
	w = doJSON(router, http.MethodGet, "/api/donations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 2, body["total"])
	assert.EqualValues(t, 150, body["total_amount"])
	donations := body["donations"].([]interface{})
	second := donations[1].(map[string]interface{})
	assert.Equal(t, "Anonymous", second["donor_name"])

	// The id-addressed route returns the stored name
	w = doJSON(router, http.MethodGet, "/api/donations/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stored := decode(t, w)["donation"].(map[string]interface{})
	assert.Equal(t, "John Smith", stored["donor_name"])

	// Donations cannot be changed once recorded
	w = doJSON(router, http.MethodPut, "/api/donations/1", token, gin.H{"amount": 1})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPostOrderingOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	for _, content := range []string{"first", "second"} {
		w := doJSON(router, http.MethodPost, "/api/posts", token, gin.H{
			"author_name": "Jane Doe", "content": content,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decode(t, w)["posts"].([]interface{})
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].(map[string]interface{})["content"])
	assert.Equal(t, "first", posts[1].(map[string]interface{})["content"])
}

func TestMessageFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	w := doJSON(router, http.MethodPost, "/api/messages", token, gin.H{
		"sender_email": "jane@example.com", "recipient_email": "john@example.com",
		"content": "hello",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Message sent successfully", body["message"])
	messageData := body["message_data"].(map[string]interface{})
	assert.Equal(t, "direct", messageData["message_type"])
	assert.Equal(t, false, messageData["read"])

	w = doJSON(router, http.MethodGet, "/api/messages", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user_email parameter is required", decode(t, w)["error"])

	w = doJSON(router, http.MethodGet, "/api/messages?user_email=john@example.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])
}

func TestUnknownRoutesAndMethods(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", decode(t, w)["error"])

	w = doJSON(router, http.MethodDelete, "/api/messages", "", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method not allowed", decode(t, w)["error"])

	// Non-numeric ids describe no known resource
	w = doJSON(router, http.MethodGet, "/api/alumni/abc", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", decode(t, w)["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(router, http.MethodGet, "/api/health", "", nil)

	w := doJSON(router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alumniconnect_http_requests_total")
}
