package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
)

func (s *Server) ListGLEntries(c *gin.Context) {
	accountID, err := parseInt64(c.Query("account_id"))
	if err != nil {
		AbortWithError(c, newValidationError("account_id", "invalid_id", "invalid account_id"))
		return
	}
	partnerID, err := parseInt64(c.Query("partner_id"))
	if err != nil {
		AbortWithError(c, newValidationError("partner_id", "invalid_id", "invalid partner_id"))
		return
	}
	moveID, err := parseInt64(c.Query("move_id"))
	if err != nil {
		AbortWithError(c, newValidationError("move_id", "invalid_id", "invalid move_id"))
		return
	}
	reconciled, err := parseOptionalBool(c.Query("reconciled"))
	if err != nil {
		AbortWithError(c, newValidationError("reconciled", "invalid_bool", "invalid reconciled"))
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

	filter := accountingdomain.GLEntryFilter{
		AccountID:  accountID,
		PartnerID:  partnerID,
		MoveID:     moveID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Reconciled: reconciled,
		Limit:      limit,
	}

	entries, err := s.accountingSvc.ListGLEntries(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
