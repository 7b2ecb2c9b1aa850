package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	auditdomain "github.com/safee-analytics/erp-bridge/internal/audit/domain"
	"github.com/safee-analytics/erp-bridge/internal/idempotency"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case errors.Is(err, accountingdomain.ErrMissingCounterparty):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{Field: "customer_id", Code: "missing_counterparty", Message: err.Error()},
			},
		}
	case errors.Is(err, accountingdomain.ErrInvalidDate):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{Field: "date", Code: "invalid_date", Message: err.Error()},
			},
		}
	case errors.Is(err, accountingdomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, accountingdomain.ErrNoPaymentLines),
		errors.Is(err, accountingdomain.ErrNoInvoiceLines),
		errors.Is(err, accountingdomain.ErrPaymentMoveMissing):
		return http.StatusConflict, errorPayload{
			Type:    "reconciliation_error",
			Message: err.Error(),
		}
	case errors.Is(err, idempotency.ErrLocked):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "request already in flight",
		}
	case errors.Is(err, auditdomain.ErrInvalidPageToken),
		errors.Is(err, auditdomain.ErrInvalidTimeRange),
		errors.Is(err, auditdomain.ErrInvalidAction):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, odoo.ErrAuthenticationFailed):
		return http.StatusBadGateway, errorPayload{
			Type:    "upstream_auth_error",
			Message: "erp authentication failed",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorPayload{
			Type:    "upstream_timeout",
			Message: "erp request timed out",
		}
	}

	var rpcErr *odoo.RPCError
	if errors.As(err, &rpcErr) {
		return http.StatusBadGateway, errorPayload{
			Type:    "upstream_error",
			Message: rpcErr.Message,
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var ptr *ValidationErrors
	if errors.As(err, &ptr) {
		return ptr
	}
	var val ValidationErrors
	if errors.As(err, &val) {
		return &val
	}
	return nil
}

// classifyErrorForLog feeds the request logger an error taxonomy without
// exposing upstream payloads.
func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	switch {
	case status == http.StatusBadGateway || status == http.StatusGatewayTimeout:
		return "upstream_error", payload.Type
	case status >= http.StatusInternalServerError:
		return "server_error", payload.Type
	default:
		return payload.Type, payload.Type
	}
}
