package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
)

func (s *Server) ListAccounts(c *gin.Context) {
	onlyActive, err := parseOptionalBool(c.Query("only_active"))
	if err != nil {
		AbortWithError(c, newValidationError("only_active", "invalid_bool", "invalid only_active"))
		return
	}

	filter := accountingdomain.AccountFilter{
		OnlyActive:  onlyActive,
		AccountType: strings.TrimSpace(c.Query("account_type")),
	}

	accounts, err := s.accountingSvc.ListAccounts(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

func (s *Server) SearchAccounts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		AbortWithError(c, newValidationError("query", "invalid_query", "invalid query"))
		return
	}

	accounts, err := s.accountingSvc.SearchAccounts(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

func (s *Server) GetAccount(c *gin.Context) {
	id, err := parseInt64(c.Param("id"))
	if err != nil || id <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	account, err := s.accountingSvc.GetAccount(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

func (s *Server) CreateAccount(c *gin.Context) {
	var in accountingdomain.CreateAccountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		AbortWithError(c, newValidationError("code", "invalid_account", "code and name are required"))
		return
	}

	id, err := s.accountingSvc.CreateAccount(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id}})
}
