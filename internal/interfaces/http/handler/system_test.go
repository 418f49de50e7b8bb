package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping() error { return p.err }

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler(fakePinger{}, "1.2.3")
	assert.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/health", nil)
		NewSystemHandler(fakePinger{}, "dev").Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := gjson.Parse(w.Body.String())
		assert.Equal(t, "healthy", body.Get("status").String())
		assert.Equal(t, "ok", body.Get("database").String())
	})

	t.Run("database down", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/health", nil)
		NewSystemHandler(fakePinger{err: errors.New("connection refused")}, "dev").Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := gjson.Parse(w.Body.String())
		assert.Equal(t, "unhealthy", body.Get("status").String())
		assert.Equal(t, "error", body.Get("database").String())
	})
}

func TestSystemHandler_Info(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/system/info", nil)
	NewSystemHandler(fakePinger{}, "1.2.3").Info(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := gjson.Parse(w.Body.String())
	assert.True(t, body.Get("success").Bool())
	assert.Equal(t, "Tech13 Garage API", body.Get("data.name").String())
	assert.Equal(t, "1.2.3", body.Get("data.version").String())
	assert.NotEmpty(t, body.Get("data.go_version").String())
}
