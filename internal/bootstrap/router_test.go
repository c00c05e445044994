package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/config"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
)

type testServer struct {
	router *gin.Engine
	deps   *Dependencies
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.BcryptCost = 4

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.BaseURL = "http://localhost:3000"
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	cfg.Server.StoragePath = filepath.Join(dir, "uploads")
	cfg.Database.Path = filepath.Join(dir, "hackathon.db")
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = "1h"
	cfg.Email.Provider = "log"
	cfg.Registration.AllowedDomains = []string{"example.com"}
	cfg.Registration.AdminEmail = adminEmail
	cfg.Registration.AdminPassword = adminPassword

	lgr := zerolog.Nop()
	database, err := SetupDatabase(context.Background(), cfg, lgr)
	require.NoError(t, err)
	deps, err := BuildDependencies(cfg, database, lgr)
	require.NoError(t, err)
	t.Cleanup(func() {
		deps.Close()
		_ = database.Close()
	})

	return &testServer{router: SetupRouter(cfg, deps, lgr), deps: deps}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/user/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testServer) createUser(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password1")
	require.NoError(t, err)
	u := &models.User{Name: email, Email: email, PasswordHash: hash, RoleID: role, AvatarURL: models.DefaultAvatarURL}
	require.NoError(t, s.deps.Repos.UserRepository.CreateUser(context.Background(), u))
	return u
}

func decodeID(t *testing.T, w *httptest.ResponseRecorder) int64 {
	t.Helper()
	var body struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotZero(t, body.ID)
	return body.ID
}

func TestHealthIsPublic(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)

	w = s.do(t, http.MethodGet, "/api/health/config", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "test-secret")
	assert.NotContains(t, w.Body.String(), adminPassword)
}

func TestAuthGuards(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/event/list", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid Token", w.Body.String())

	w = s.do(t, http.MethodGet, "/api/event/list", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid Token", w.Body.String())

	s.createUser(t, "guest@elsewhere.org", models.RoleGuest)
	guest := s.login(t, "guest@elsewhere.org", "password1")

	w = s.do(t, http.MethodGet, "/api/event/list", guest, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "No permission", w.Body.String())

	w = s.do(t, http.MethodGet, "/api/user/list", guest, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/user/me", guest, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "guest@elsewhere.org")
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/user/login", "", gin.H{"email": "nobody@example.com", "password": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No user found", w.Body.String())

	w = s.do(t, http.MethodPost, "/api/user/login", "", gin.H{"email": adminEmail, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", w.Body.String())

	w = s.do(t, http.MethodPost, "/api/user/login", "", gin.H{"email": adminEmail})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing fields", w.Body.String())
}

func TestEventAndParticipationFlow(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminEmail, adminPassword)

	w := s.do(t, http.MethodGet, "/api/event/list", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No events found", w.Body.String())

	event := gin.H{"name": "Spring Hack", "start_time": 1700000000, "end_time": 1700086400}
	w = s.do(t, http.MethodPost, "/api/event", admin, event)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	eventID := decodeID(t, w)

	w = s.do(t, http.MethodPost, "/api/event", admin, event)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Already exists", w.Body.String())

	w = s.do(t, http.MethodGet, "/api/event/list", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	alice := s.createUser(t, "alice@example.com", models.RoleUser)
	aliceToken := s.login(t, "alice@example.com", "password1")

	w = s.do(t, http.MethodPost, "/api/project", aliceToken, gin.H{
		"event_id":   eventID,
		"idea":       "Robots",
		"initiators": []int64{alice.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	projectID := decodeID(t, w)

	bob := s.createUser(t, "bob@example.com", models.RoleUser)
	bobToken := s.login(t, "bob@example.com", "password1")
	membership := gin.H{"project_id": projectID, "user_id": bob.ID}

	w = s.do(t, http.MethodDelete, "/api/participant", bobToken, membership)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No participant found", w.Body.String())

	w = s.do(t, http.MethodPost, "/api/participant", bobToken, membership)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// One project per event, across both membership kinds
	w = s.do(t, http.MethodPost, "/api/initiator", bobToken, membership)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Already exists", w.Body.String())

	w = s.do(t, http.MethodPost, "/api/participant", aliceToken, gin.H{"project_id": projectID, "user_id": bob.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "No permission", w.Body.String())

	w = s.do(t, http.MethodGet, "/api/project/"+strconv.FormatInt(projectID, 10), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob@example.com")

	w = s.do(t, http.MethodDelete, "/api/participant", bobToken, membership)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Participant deleted", w.Body.String())

	w = s.do(t, http.MethodDelete, "/api/project/"+strconv.FormatInt(projectID, 10), aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodDelete, "/api/event/"+strconv.FormatInt(eventID, 10), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Event deleted", w.Body.String())

	w = s.do(t, http.MethodGet, "/api/project/"+strconv.FormatInt(projectID, 10), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No project found", w.Body.String())
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminEmail, adminPassword)
	s.createUser(t, "alice@example.com", models.RoleUser)
	alice := s.login(t, "alice@example.com", "password1")

	w := s.do(t, http.MethodPost, "/api/parking/lots", alice, gin.H{"name": "North", "slots": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/api/parking/lots", admin, gin.H{"name": "North", "slots": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var lot models.ParkingLot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lot))
	require.Len(t, lot.Slots, 1)

	booking := gin.H{"slot_id": lot.Slots[0].ID, "type_id": models.BookingTypeParking}
	w = s.do(t, http.MethodPost, "/api/booking", alice, booking)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := decodeID(t, w)

	w = s.do(t, http.MethodPost, "/api/booking", admin, booking)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Slot occupied", w.Body.String())

	w = s.do(t, http.MethodDelete, "/api/booking/"+strconv.FormatInt(bookingID, 10), alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status_id":4`)

	w = s.do(t, http.MethodPost, "/api/booking", admin, booking)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func (s *testServer) uploadAvatar(t *testing.T, userID int64, token, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("avatar", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/"+strconv.FormatInt(userID, 10)+"/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func avatarURL(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		AvatarURL string `json:"avatar_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.AvatarURL
}

func TestAvatarUploadServeAndCleanup(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "alice@example.com", models.RoleUser)
	token := s.login(t, "alice@example.com", "password1")
	onDisk := func(url string) string {
		return filepath.Join(s.deps.FileStorage.BasePath(), "avatars", filepath.Base(url))
	}

	w := s.uploadAvatar(t, alice.ID, token, "me.png", "first-image")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := avatarURL(t, w)
	assert.True(t, strings.HasPrefix(first, "/uploads/avatars/"), first)
	assert.True(t, strings.HasSuffix(first, ".png"), first)

	w = s.do(t, http.MethodGet, first, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "first-image", w.Body.String())

	// Replacing the avatar removes the previous file
	w = s.uploadAvatar(t, alice.ID, token, "me.jpg", "second-image")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := avatarURL(t, w)
	assert.NotEqual(t, first, second)
	_, err := os.Stat(onDisk(first))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, first, "", nil).Code)

	w = s.do(t, http.MethodGet, "/api/user/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, second, avatarURL(t, w))

	w = s.uploadAvatar(t, alice.ID, token, "script.sh", "#!/bin/sh")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid file", w.Body.String())

	// Deleting the user removes the current file
	w = s.do(t, http.MethodDelete, "/api/user/"+strconv.FormatInt(alice.ID, 10), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted", w.Body.String())
	_, err = os.Stat(onDisk(second))
	assert.True(t, os.IsNotExist(err))
}
