package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/logger"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/dto"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(logger.GinRequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Deleted acknowledges a removal
func (h *BaseHandler) Deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": message}))
}

// Uploaded answers an image or logo upload
func (h *BaseHandler) Uploaded(c *gin.Context, message, imageURL string) {
	c.JSON(http.StatusOK, dto.UploadResponse{Success: true, Message: message, ImageURL: imageURL})
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// ValidationError answers a failed bind with field details
func (h *BaseHandler) ValidationError(c *gin.Context, err error) {
	middleware.HandleValidationError(c, err)
}

// HandleDomainError converts domain errors to HTTP responses.
// Anything else is logged and reported as an internal error.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, domainErr.Message, getRequestID(c)))
		return
	}

	logger.GetGinLogger(c).Error("Unhandled error", zap.Error(err))
	_ = c.Error(err)
	h.InternalError(c, "An unexpected error occurred")
}

// parseID reads a positive numeric path parameter
func (h *BaseHandler) parseID(c *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated caller
func (h *BaseHandler) currentUser(c *gin.Context) (int64, bool, bool) {
	userID := middleware.GetJWTUserID(c)
	if userID <= 0 {
		h.Unauthorized(c, "Authentication required")
		return 0, false, false
	}
	return userID, middleware.IsAdmin(c), true
}

// optionalFile returns the named multipart part, or nil when the request
// is not multipart or the part is absent
func (h *BaseHandler) optionalFile(c *gin.Context, field string) (*media.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return openUpload(header)
}

// requiredFile is optionalFile for upload-only endpoints
func (h *BaseHandler) requiredFile(c *gin.Context, field, missing string) (*media.File, bool) {
	file, err := h.optionalFile(c, field)
	if err != nil {
		h.BadRequest(c, "Invalid upload")
		return nil, false
	}
	if file == nil {
		h.BadRequest(c, missing)
		return nil, false
	}
	return file, true
}

// bindWithFile binds the form and opens the optional upload part.
// The caller must closeFile the returned file.
func (h *BaseHandler) bindWithFile(c *gin.Context, req any, field string) (*media.File, bool) {
	if err := c.ShouldBind(req); err != nil {
		h.ValidationError(c, err)
		return nil, false
	}
	file, err := h.optionalFile(c, field)
	if err != nil {
		h.BadRequest(c, "Invalid upload")
		return nil, false
	}
	return file, true
}

func openUpload(header *multipart.FileHeader) (*media.File, error) {
	body, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &media.File{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// closeFile releases an opened upload
func closeFile(f *media.File) {
	if f == nil {
		return
	}
	if closer, ok := f.Body.(multipart.File); ok {
		_ = closer.Close()
	}
}
