package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udhaar/backend/internal/domain/directory"
	"github.com/udhaar/backend/internal/domain/imei"
	"github.com/udhaar/backend/internal/domain/shared"
	"github.com/udhaar/backend/internal/interfaces/http/dto"
	"github.com/udhaar/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getUserID extracts the authenticated user ID from JWT claims
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr := middleware.GetJWTUserID(c)
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userIDStr)
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

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain errors to HTTP responses.
//
// Field validation failures carry every failing field at once; batch
// IMEI rejections carry one entry per rejected line. Both are reported
// with their structured details so clients can render per-field or
// per-line messages.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var fieldErrs directory.FieldErrors
	if errors.As(err, &fieldErrs) {
		status := http.StatusBadRequest
		if len(fieldErrs) == 1 {
			if dup, ok := fieldErrs["name_city"]; ok && dup.Code == directory.ErrDuplicateNameCity.Code {
				status = http.StatusConflict
			}
		}
		c.JSON(status, dto.NewErrorResponseWithDetails(dto.ErrCodeValidation, fieldErrs.Error(), fieldErrs))
		return
	}

	var batchErr *imei.BatchError
	if errors.As(err, &batchErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(dto.ErrCodeValidation, batchErr.Error(), batchErr.Errors))
		return
	}

	if domainErr, ok := shared.IsDomainError(err); ok {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
