package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHandlerServer(t *testing.T, origins []string) (string, *Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := startHub(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "ws-secret", TokenExp: time.Hour})
	token, err := jwtService.GenerateToken(&models.User{ID: 7, Name: "Ada", Email: "ada@example.com", RoleID: models.RoleUser})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/ws", NewHandler(hub, jwtService, origins, zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws", hub, token
}

func dial(t *testing.T, url, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if conn != nil {
		t.Cleanup(func() { conn.Close() })
	}
	return conn, resp, err
}

func TestHandlerChecksOrigin(t *testing.T) {
	url, hub, token := startHandlerServer(t, []string{"http://app.example.com/"})
	withToken := url + "?token=" + token

	_, resp, err := dial(t, withToken, "http://evil.example.org")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, _, err = dial(t, withToken, "http://APP.example.com")
	require.NoError(t, err)

	_, _, err = dial(t, withToken, "")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return hub.ClientCount(7) == 2 }, time.Second, 10*time.Millisecond)
}

func TestHandlerAllowsSameHostAndWildcard(t *testing.T) {
	url, _, token := startHandlerServer(t, nil)
	host := strings.TrimPrefix(strings.TrimSuffix(url, "/ws"), "ws://")

	_, _, err := dial(t, url+"?token="+token, "http://"+host)
	require.NoError(t, err)

	_, resp, err := dial(t, url+"?token="+token, "http://other.example.com")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	anyURL, _, anyToken := startHandlerServer(t, []string{"*"})
	_, _, err = dial(t, anyURL+"?token="+anyToken, "http://other.example.com")
	require.NoError(t, err)
}

func TestHandlerRejectsBadToken(t *testing.T) {
	url, _, _ := startHandlerServer(t, nil)

	_, resp, err := dial(t, url+"?token=garbage", "")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
