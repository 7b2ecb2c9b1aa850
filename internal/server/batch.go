package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
)

type batchIDsRequest struct {
	IDs []int64 `json:"ids"`
}

type batchInvoicesRequest struct {
	Invoices []accountingdomain.CreateInvoiceInput `json:"invoices"`
}

type batchPaymentsRequest struct {
	Payments []accountingdomain.CreatePaymentInput `json:"payments"`
}

func (s *Server) BatchValidateInvoices(c *gin.Context) {
	s.batchByIDs(c, s.accountingSvc.BatchValidateInvoices)
}

func (s *Server) BatchCancelInvoices(c *gin.Context) {
	s.batchByIDs(c, s.accountingSvc.BatchCancelInvoices)
}

func (s *Server) BatchConfirmPayments(c *gin.Context) {
	s.batchByIDs(c, s.accountingSvc.BatchConfirmPayments)
}

func (s *Server) BatchCreateInvoices(c *gin.Context) {
	release, ok := s.acquireIdempotencyLock(c)
	if !ok {
		return
	}
	defer release()

	var req batchInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.Invoices) == 0 {
		AbortWithError(c, newValidationError("invoices", "invalid_request", "invoices is required"))
		return
	}

	result := s.accountingSvc.BatchCreateInvoices(c.Request.Context(), req.Invoices)
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (s *Server) BatchCreatePayments(c *gin.Context) {
	release, ok := s.acquireIdempotencyLock(c)
	if !ok {
		return
	}
	defer release()

	var req batchPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.Payments) == 0 {
		AbortWithError(c, newValidationError("payments", "invalid_request", "payments is required"))
		return
	}

	result := s.accountingSvc.BatchCreatePayments(c.Request.Context(), req.Payments)
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (s *Server) batchByIDs(c *gin.Context, action func(ctx context.Context, ids []int64) accountingdomain.BatchResult) {
	release, ok := s.acquireIdempotencyLock(c)
	if !ok {
		return
	}
	defer release()

	var req batchIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.IDs) == 0 {
		AbortWithError(c, newValidationError("ids", "invalid_request", "ids is required"))
		return
	}

	result := action(c.Request.Context(), req.IDs)
	c.JSON(http.StatusOK, gin.H{"data": result})
}

// acquireIdempotencyLock honors X-Idempotency-Key when present. Requests
// without a key are not guarded.
func (s *Server) acquireIdempotencyLock(c *gin.Context) (func(), bool) {
	key := strings.TrimSpace(c.GetHeader("X-Idempotency-Key"))
	if key == "" || s.locker == nil {
		return func() {}, true
	}

	release, err := s.locker.Acquire(c.Request.Context(), key)
	if err != nil {
		AbortWithError(c, err)
		return nil, false
	}
	return release, true
}
