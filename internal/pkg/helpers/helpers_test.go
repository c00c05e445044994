package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := ParseIDParam(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		c.Params = gin.Params{{Key: "id", Value: bad}}
		_, err := ParseIDParam(c, "id")
		assert.Error(t, err, bad)
	}
}

func TestOptionalIDQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Request = httptest.NewRequest("GET", "/?event_id=7", nil)
	id, err := OptionalIDQuery(c, "event_id")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	id, err = OptionalIDQuery(c, "event_id")
	assert.NoError(t, err)
	assert.Zero(t, id)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?event_id=x", nil)
	_, err = OptionalIDQuery(c, "event_id")
	assert.Error(t, err)
}
