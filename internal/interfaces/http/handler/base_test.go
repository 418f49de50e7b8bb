package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/logger"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/dto"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, target string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, body)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*gin.Context)
		expectedID string
	}{
		{
			name: "from context",
			setup: func(c *gin.Context) {
				c.Set(logger.GinRequestIDKey, "ctx-request-id")
			},
			expectedID: "ctx-request-id",
		},
		{
			name: "from header when context empty",
			setup: func(c *gin.Context) {
				c.Request.Header.Set(middleware.RequestIDHeader, "header-request-id")
			},
			expectedID: "header-request-id",
		},
		{
			name:       "empty when not set",
			setup:      func(c *gin.Context) {},
			expectedID: "",
		},
		{
			name: "context takes precedence over header",
			setup: func(c *gin.Context) {
				c.Set(logger.GinRequestIDKey, "ctx-id")
				c.Request.Header.Set(middleware.RequestIDHeader, "header-id")
			},
			expectedID: "ctx-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/", nil)
			tt.setup(c)
			assert.Equal(t, tt.expectedID, getRequestID(c))
		})
	}
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/", nil)

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.GetBytes(w.Body.Bytes(), "success").Bool())
	assert.Equal(t, "value", gjson.GetBytes(w.Body.Bytes(), "data.key").String())
}

func TestBaseHandlerSuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "/", nil)

	h.SuccessWithMeta(c, []string{"a", "b"}, 45, 2, 20)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodPost, "/", nil)

	h.Created(c, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(7), gjson.GetBytes(w.Body.Bytes(), "data.id").Int())
}

func TestBaseHandlerDeletedAndUploaded(t *testing.T) {
	h := &BaseHandler{}

	c, w := newTestContext(http.MethodDelete, "/", nil)
	h.Deleted(c, "Award deleted successfully")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Award deleted successfully", gjson.GetBytes(w.Body.Bytes(), "data.message").String())

	c, w = newTestContext(http.MethodPost, "/", nil)
	h.Uploaded(c, "Logo updated successfully", "/static/uploads/logo.png")
	body := w.Body.Bytes()
	assert.True(t, gjson.GetBytes(body, "success").Bool())
	assert.Equal(t, "Logo updated successfully", gjson.GetBytes(body, "message").String())
	assert.Equal(t, "/static/uploads/logo.png", gjson.GetBytes(body, "image_url").String())
}

func TestBaseHandlerErrorMethods(t *testing.T) {
	tests := []struct {
		name         string
		method       func(*BaseHandler, *gin.Context)
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "BadRequest",
			method:       func(h *BaseHandler, c *gin.Context) { h.BadRequest(c, "Invalid request") },
			expectedCode: http.StatusBadRequest,
			expectedErr:  dto.ErrCodeBadRequest,
		},
		{
			name:         "Unauthorized",
			method:       func(h *BaseHandler, c *gin.Context) { h.Unauthorized(c, "Not authenticated") },
			expectedCode: http.StatusUnauthorized,
			expectedErr:  dto.ErrCodeUnauthorized,
		},
		{
			name:         "InternalError",
			method:       func(h *BaseHandler, c *gin.Context) { h.InternalError(c, "Server error") },
			expectedCode: http.StatusInternalServerError,
			expectedErr:  dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/", nil)
			c.Set(logger.GinRequestIDKey, "req-1")

			tt.method(&BaseHandler{}, c)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedErr, resp.Error.Code)
			assert.Equal(t, "req-1", resp.Error.RequestID)
		})
	}
}

func TestBaseHandlerValidationError(t *testing.T) {
	type form struct {
		Name string `json:"name" binding:"required"`
	}
	middleware.SetupValidator()

	c, w := newTestContext(http.MethodPost, "/", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	var req form
	err := c.ShouldBind(&req)
	require.Error(t, err)

	(&BaseHandler{}).ValidationError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.Bytes()
	assert.Equal(t, dto.ErrCodeValidation, gjson.GetBytes(body, "error.code").String())
	assert.Equal(t, "name", gjson.GetBytes(body, "error.details.0.field").String())
}

func TestBaseHandlerHandleDomainError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"already exists", shared.ErrAlreadyExists, http.StatusConflict, dto.ErrCodeAlreadyExists},
		{"invalid input", shared.InvalidInput("Price must be greater than 0"), http.StatusBadRequest, dto.ErrCodeInvalidInput},
		{"conflict", shared.ErrConflict, http.StatusConflict, dto.ErrCodeConflict},
		{"unauthorized", shared.ErrUnauthorized, http.StatusUnauthorized, dto.ErrCodeUnauthorized},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden},
		{"invalid state", shared.ErrInvalidState, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState},
		{"insufficient stock", shared.ErrInsufficientStock, http.StatusUnprocessableEntity, dto.ErrCodeInsufficientStock},
		{"empty cart", trade.ErrEmptyCart, http.StatusUnprocessableEntity, dto.ErrCodeEmptyCart},
		{"wrapped", fmt.Errorf("load product: %w", shared.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/", nil)

			(&BaseHandler{}).HandleDomainError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedErr, resp.Error.Code)
		})
	}
}

func TestBaseHandlerHandleNonDomainError(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", nil)

	(&BaseHandler{}).HandleDomainError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
	assert.Len(t, c.Errors, 1)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{"12", 12, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/", nil)
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, ok := (&BaseHandler{}).parseID(c, "id", "product")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, "Invalid product ID", gjson.GetBytes(w.Body.Bytes(), "error.message").String())
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/", nil)
		_, _, ok := (&BaseHandler{}).currentUser(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin", func(t *testing.T) {
		c, _ := newTestContext(http.MethodGet, "/", nil)
		c.Set(middleware.JWTUserIDKey, int64(4))
		c.Set(middleware.JWTRoleKey, "admin")

		userID, isAdmin, ok := (&BaseHandler{}).currentUser(c)
		require.True(t, ok)
		assert.Equal(t, int64(4), userID)
		assert.True(t, isAdmin)
	})
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestBindWithFile(t *testing.T) {
	type form struct {
		Name string `json:"name" form:"name" binding:"required"`
	}

	t.Run("multipart with file", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"name": "Brake kit"}, "image", "kit.png", []byte("png"))
		c, _ := newTestContext(http.MethodPost, "/", body)
		c.Request.Header.Set("Content-Type", contentType)

		var req form
		file, ok := (&BaseHandler{}).bindWithFile(c, &req, "image")
		require.True(t, ok)
		require.NotNil(t, file)
		defer closeFile(file)

		assert.Equal(t, "Brake kit", req.Name)
		assert.Equal(t, "kit.png", file.Filename)
		assert.Equal(t, int64(3), file.Size)
		data, err := io.ReadAll(file.Body)
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
	})

	t.Run("multipart without file", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"name": "Brake kit"}, "", "", nil)
		c, _ := newTestContext(http.MethodPost, "/", body)
		c.Request.Header.Set("Content-Type", contentType)

		var req form
		file, ok := (&BaseHandler{}).bindWithFile(c, &req, "image")
		require.True(t, ok)
		assert.Nil(t, file)
	})

	t.Run("json body", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/", strings.NewReader(`{"name":"Chain"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var req form
		file, ok := (&BaseHandler{}).bindWithFile(c, &req, "image")
		require.True(t, ok)
		assert.Nil(t, file)
		assert.Equal(t, "Chain", req.Name)
	})

	t.Run("invalid body", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var req form
		_, ok := (&BaseHandler{}).bindWithFile(c, &req, "image")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequiredFile(t *testing.T) {
	body, contentType := multipartBody(t, map[string]string{"other": "x"}, "", "", nil)
	c, w := newTestContext(http.MethodPost, "/", body)
	c.Request.Header.Set("Content-Type", contentType)

	file, ok := (&BaseHandler{}).requiredFile(c, "logo", "No logo file provided")

	assert.False(t, ok)
	assert.Nil(t, file)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No logo file provided", gjson.GetBytes(w.Body.Bytes(), "error.message").String())
}

func TestQueryHelpers(t *testing.T) {
	v, ok := queryInt("25")
	assert.True(t, ok)
	assert.Equal(t, 25, v)
	_, ok = queryInt("x")
	assert.False(t, ok)
	_, ok = queryInt("")
	assert.False(t, ok)

	assert.Nil(t, queryID(""))
	assert.Nil(t, queryID("0"))
	assert.Nil(t, queryID("two"))
	require.NotNil(t, queryID("3"))
	assert.Equal(t, int64(3), *queryID("3"))

	yes, no := true, false
	assert.True(t, boolOr(nil, true))
	assert.True(t, boolOr(&yes, false))
	assert.False(t, boolOr(&no, true))
}
