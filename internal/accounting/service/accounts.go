package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
)

var accountFields = []string{
	"id", "code", "name", "account_type", "currency_id",
	"active", "reconcile", "current_balance",
}

const searchAccountsLimit = 50

// ListAccounts returns accounts ordered by code. Unless the filter says
// otherwise, inactive accounts are excluded.
func (s *Service) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var parts []odoo.Domain
	if filter.OnlyActive == nil || *filter.OnlyActive {
		parts = append(parts, odoo.Eq("active", true))
	}
	if filter.AccountType != "" {
		parts = append(parts, odoo.Eq("account_type", filter.AccountType))
	}

	records, err := s.rpc.SearchRead(ctx, modelAccount, odoo.And(parts...), accountFields, &odoo.SearchOptions{Order: "code asc"})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, mapAccount(r))
	}
	return accounts, nil
}

// SearchAccounts matches active accounts whose code or name contains the
// query, case-insensitively, capped at 50 results.
func (s *Service) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	query = strings.TrimSpace(query)

	filter := odoo.And(
		odoo.Or(
			odoo.Ilike("code", query),
			odoo.Ilike("name", query),
		),
		odoo.Eq("active", true),
	)

	records, err := s.rpc.SearchRead(ctx, modelAccount, filter, accountFields, &odoo.SearchOptions{
		Limit: searchAccountsLimit,
		Order: "code asc",
	})
	if err != nil {
		return nil, fmt.Errorf("search accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, mapAccount(r))
	}
	return accounts, nil
}

// GetAccount reads one account by ID.
func (s *Service) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	records, err := s.rpc.Read(ctx, modelAccount, []int64{id}, accountFields)
	if err != nil {
		return nil, fmt.Errorf("read account %d: %w", id, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	account := mapAccount(records[0])
	return &account, nil
}

// CreateAccount creates a ledger account and returns its ID.
func (s *Service) CreateAccount(ctx context.Context, in domain.CreateAccountInput) (int64, error) {
	values := map[string]any{
		"code":         in.Code,
		"name":         in.Name,
		"account_type": in.AccountType,
		"reconcile":    in.Reconcile,
	}
	if in.CurrencyID != 0 {
		values["currency_id"] = in.CurrencyID
	}

	id, err := s.rpc.Create(ctx, modelAccount, values)
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}
	s.emitAudit(ctx, "account.created", "account", id, map[string]any{
		"code": in.Code,
		"name": in.Name,
	})
	return id, nil
}
