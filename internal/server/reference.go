package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
)

func (s *Server) ListJournals(c *gin.Context) {
	filter := accountingdomain.JournalFilter{
		Type: strings.TrimSpace(c.Query("type")),
	}

	journals, err := s.accountingSvc.ListJournals(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": journals})
}

func (s *Server) CreateJournal(c *gin.Context) {
	var in accountingdomain.CreateJournalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" {
		AbortWithError(c, newValidationError("name", "invalid_journal", "name and code are required"))
		return
	}

	id, err := s.accountingSvc.CreateJournal(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

func (s *Server) ListTaxes(c *gin.Context) {
	filter := accountingdomain.TaxFilter{
		TypeTaxUse: strings.TrimSpace(c.Query("type_tax_use")),
	}

	taxes, err := s.accountingSvc.ListTaxes(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": taxes})
}

func (s *Server) CreateTax(c *gin.Context) {
	var in accountingdomain.CreateTaxInput
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		AbortWithError(c, newValidationError("name", "invalid_tax", "name is required"))
		return
	}

	id, err := s.accountingSvc.CreateTax(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}

func (s *Server) ListPartners(c *gin.Context) {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		AbortWithError(c, newValidationError("limit", "invalid_limit", "invalid limit"))
		return
	}

	filter := accountingdomain.PartnerFilter{
		Query:         strings.TrimSpace(c.Query("query")),
		CustomersOnly: strings.EqualFold(c.Query("customers_only"), "true"),
		SuppliersOnly: strings.EqualFold(c.Query("suppliers_only"), "true"),
		Limit:         limit,
	}

	partners, err := s.accountingSvc.ListPartners(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": partners})
}

func (s *Server) ListCurrencies(c *gin.Context) {
	currencies, err := s.accountingSvc.ListCurrencies(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": currencies})
}

func (s *Server) ListCurrencyRates(c *gin.Context) {
	currencyID, err := parseInt64(c.Query("currency_id"))
	if err != nil {
		AbortWithError(c, newValidationError("currency_id", "invalid_id", "invalid currency_id"))
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

	filter := accountingdomain.CurrencyRateFilter{
		CurrencyID: currencyID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	}

	rates, err := s.accountingSvc.ListCurrencyRates(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rates})
}
