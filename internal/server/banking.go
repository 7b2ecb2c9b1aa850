package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
)

func (s *Server) ListBankStatements(c *gin.Context) {
	journalID, err := parseInt64(c.Query("journal_id"))
	if err != nil {
		AbortWithError(c, newValidationError("journal_id", "invalid_id", "invalid journal_id"))
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

	filter := accountingdomain.BankStatementFilter{
		JournalID: journalID,
		State:     strings.TrimSpace(c.Query("state")),
		DateFrom:  dateFrom,
		DateTo:    dateTo,
	}

	statements, err := s.accountingSvc.ListBankStatements(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": statements})
}

type reconcileLineRequest struct {
	MoveLineIDs []int64 `json:"move_line_ids"`
}

func (s *Server) ReconcileBankStatementLine(c *gin.Context) {
	lineID, err := parseInt64(c.Param("id"))
	if err != nil || lineID <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	var req reconcileLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.MoveLineIDs) == 0 {
		AbortWithError(c, newValidationError("move_line_ids", "invalid_request", "move_line_ids is required"))
		return
	}

	result := s.accountingSvc.ReconcileBankStatementLine(c.Request.Context(), lineID, req.MoveLineIDs)
	c.JSON(http.StatusOK, gin.H{"data": result})
}
