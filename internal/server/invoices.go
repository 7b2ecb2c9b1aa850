package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
)

func (s *Server) ListInvoices(c *gin.Context) {
	partnerID, err := parseInt64(c.Query("partner_id"))
	if err != nil {
		AbortWithError(c, newValidationError("partner_id", "invalid_id", "invalid partner_id"))
		return
	}
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		AbortWithError(c, newValidationError("limit", "invalid_limit", "invalid limit"))
		return
	}
	dateFrom, err := parseDateParam(c.Query("date_from"))
	if err != nil {
		AbortWithError(c, newValidationError("date_from", "invalid_date", "invalid date_from"))
		return
	}
	dateTo, err := parseDateParam(c.Query("date_to"))
	if err != nil {
		AbortWithError(c, newValidationError("date_to", "invalid_date", "invalid date_to"))
		return
	}

	filter := accountingdomain.InvoiceFilter{
		MoveType:     accountingdomain.MoveType(strings.TrimSpace(c.Query("move_type"))),
		State:        accountingdomain.MoveState(strings.TrimSpace(c.Query("state"))),
		PaymentState: accountingdomain.PaymentState(strings.TrimSpace(c.Query("payment_state"))),
		PartnerID:    partnerID,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		Limit:        limit,
	}

	invoices, err := s.accountingSvc.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func (s *Server) GetInvoice(c *gin.Context) {
	id, err := parseInt64(c.Param("id"))
	if err != nil || id <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	invoice, err := s.accountingSvc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var in accountingdomain.CreateInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id, err := s.accountingSvc.CreateInvoice(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

func (s *Server) PostInvoice(c *gin.Context) {
	s.invoiceAction(c, s.accountingSvc.PostInvoice)
}

func (s *Server) CancelInvoice(c *gin.Context) {
	s.invoiceAction(c, s.accountingSvc.CancelInvoice)
}

func (s *Server) ResetInvoiceToDraft(c *gin.Context) {
	s.invoiceAction(c, s.accountingSvc.ResetInvoiceToDraft)
}

func (s *Server) invoiceAction(c *gin.Context, action func(ctx context.Context, id int64) error) {
	id, err := parseInt64(c.Param("id"))
	if err != nil || id <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}
