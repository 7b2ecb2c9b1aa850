package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
)

func (s *Server) ListPayments(c *gin.Context) {
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

	filter := accountingdomain.PaymentFilter{
		PaymentType: strings.TrimSpace(c.Query("payment_type")),
		PartnerType: strings.TrimSpace(c.Query("partner_type")),
		State:       strings.TrimSpace(c.Query("state")),
		PartnerID:   partnerID,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		Limit:       limit,
	}

	payments, err := s.accountingSvc.ListPayments(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func (s *Server) GetPayment(c *gin.Context) {
	id, err := parseInt64(c.Param("id"))
	if err != nil || id <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	payment, err := s.accountingSvc.GetPayment(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}

func (s *Server) CreatePayment(c *gin.Context) {
	var in accountingdomain.CreatePaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if in.PartnerID <= 0 {
		AbortWithError(c, newValidationError("partner_id", "invalid_id", "partner_id is required"))
		return
	}
	if in.Amount <= 0 {
		AbortWithError(c, newValidationError("amount", "invalid_amount", "amount must be positive"))
		return
	}

	id, err := s.accountingSvc.CreatePayment(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

func (s *Server) ConfirmPayment(c *gin.Context) {
	id, err := parseInt64(c.Param("id"))
	if err != nil || id <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	if err := s.accountingSvc.ConfirmPayment(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}
