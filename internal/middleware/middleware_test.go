package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testJWT = auth.NewJWTService(auth.JWTConfig{SecretKey: "middleware-secret", TokenExp: time.Hour})

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := testJWT.GenerateToken(&models.User{ID: 5, Name: "Test", RoleID: role})
	require.NoError(t, err)
	return token
}

func newAuthRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		c.String(http.StatusOK, claims.Role.String())
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateTokenRejectsBadTokens(t *testing.T) {
	r := newAuthRouter(NewAuthMiddleware(testJWT).AuthenticateToken())

	for _, header := range []string{"", "Bearer", "Bearer garbage", "Token " + tokenFor(t, models.RoleUser)} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusForbidden, w.Code, header)
		assert.Equal(t, apperrors.MsgInvalidToken, w.Body.String())
	}
}

func TestAuthenticateTokenAcceptsAnyRole(t *testing.T) {
	r := newAuthRouter(NewAuthMiddleware(testJWT).AuthenticateToken())

	w := doGet(r, "Bearer "+tokenFor(t, models.RoleDummy))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DUMMY", w.Body.String())
}

func TestAuthenticateAndAuthorize(t *testing.T) {
	r := newAuthRouter(NewAuthMiddleware(testJWT).AuthenticateAndAuthorize(models.RoleManager))

	w := doGet(r, "Bearer "+tokenFor(t, models.RoleUser))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperrors.MsgNoPermission, w.Body.String())

	w = doGet(r, "Bearer "+tokenFor(t, models.RoleManager))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "Bearer "+tokenFor(t, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "Bearer nope")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperrors.MsgInvalidToken, w.Body.String())
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{apperrors.NewBadRequestError(apperrors.MsgInvalidActivationCode), http.StatusBadRequest, "Invalid activation code"},
		{apperrors.NewForbiddenError(apperrors.MsgNoPermission), http.StatusForbidden, "No permission"},
		{apperrors.NewResourceNotFoundError(apperrors.MsgNoEvent), http.StatusNotFound, "No event found"},
		{apperrors.NewConflictError(apperrors.MsgAlreadyExists), http.StatusConflict, "Already exists"},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{apperrors.ErrTokenInvalid, http.StatusForbidden, "Invalid Token"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		HandleAPIError(c, tt.err)
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
		assert.Equal(t, tt.body, w.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(), RequestLogger(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.MsgInternal, w.Body.String())
}

func TestBindJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name" binding:"required"`
	}
	r := gin.New()
	r.POST("/bind", func(c *gin.Context) {
		var p payload
		if !BindJSON(c, &p) {
			return
		}
		c.String(http.StatusOK, p.Name)
	})

	for body, want := range map[string]int{
		`{"name":"ok"}`: http.StatusOK,
		`{}`:            http.StatusBadRequest,
		`{"name":`:      http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, body)
		if want == http.StatusBadRequest {
			assert.Equal(t, apperrors.MsgMissingFields, w.Body.String())
		}
	}
}
