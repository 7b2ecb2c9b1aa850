package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) TrialBalance(c *gin.Context) {
	dateFrom, dateTo, ok := s.reportRange(c)
	if !ok {
		return
	}

	report, err := s.accountingSvc.TrialBalance(c.Request.Context(), dateFrom, dateTo)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) PartnerLedger(c *gin.Context) {
	partnerID, err := parseInt64(c.Query("partner_id"))
	if err != nil || partnerID <= 0 {
		AbortWithError(c, newValidationError("partner_id", "invalid_id", "invalid partner_id"))
		return
	}
	dateFrom, dateTo, ok := s.reportRange(c)
	if !ok {
		return
	}

	report, err := s.accountingSvc.PartnerLedger(c.Request.Context(), partnerID, dateFrom, dateTo)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) AgedReceivables(c *gin.Context) {
	asOf, err := parseDateParam(c.Query("as_of"))
	if err != nil {
		AbortWithError(c, newValidationError("as_of", "invalid_date", "invalid as_of"))
		return
	}

	report, err := s.accountingSvc.AgedReceivables(c.Request.Context(), asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) AgedPayables(c *gin.Context) {
	asOf, err := parseDateParam(c.Query("as_of"))
	if err != nil {
		AbortWithError(c, newValidationError("as_of", "invalid_date", "invalid as_of"))
		return
	}

	report, err := s.accountingSvc.AgedPayables(c.Request.Context(), asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) ProfitLoss(c *gin.Context) {
	dateFrom, dateTo, ok := s.reportRange(c)
	if !ok {
		return
	}

	report, err := s.accountingSvc.ProfitLoss(c.Request.Context(), dateFrom, dateTo)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (s *Server) reportRange(c *gin.Context) (string, string, bool) {
	dateFrom, err := parseDateParam(c.Query("date_from"))
	if err != nil {
		AbortWithError(c, newValidationError("date_from", "invalid_date", "invalid date_from"))
		return "", "", false
	}
	dateTo, err := parseDateParam(c.Query("date_to"))
	if err != nil {
		AbortWithError(c, newValidationError("date_to", "invalid_date", "invalid date_to"))
		return "", "", false
	}
	return dateFrom, dateTo, true
}
