package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
)

// Reference/lookup entities: journals, taxes, partners, currencies.
// Read-only from this service's perspective except for the explicit
// create wrappers used during tenant onboarding.

// ListJournals returns journals ordered by name.
func (s *Service) ListJournals(ctx context.Context, filter domain.JournalFilter) ([]domain.Journal, error) {
	var parts []odoo.Domain
	if filter.Type != "" {
		parts = append(parts, odoo.Eq("type", filter.Type))
	}

	records, err := s.rpc.SearchRead(ctx, modelJournal, odoo.And(parts...),
		[]string{"id", "name", "code", "type"},
		&odoo.SearchOptions{Order: "name asc"})
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}

	journals := make([]domain.Journal, 0, len(records))
	for _, r := range records {
		journals = append(journals, mapJournal(r))
	}
	return journals, nil
}

// CreateJournal creates a journal and returns its ID.
func (s *Service) CreateJournal(ctx context.Context, in domain.CreateJournalInput) (int64, error) {
	id, err := s.rpc.Create(ctx, modelJournal, map[string]any{
		"name": in.Name,
		"code": in.Code,
		"type": in.Type,
	})
	if err != nil {
		return 0, fmt.Errorf("create journal: %w", err)
	}
	s.emitAudit(ctx, "journal.created", "journal", id, map[string]any{"code": in.Code})
	return id, nil
}

// ListTaxes returns active taxes ordered by name. Inactive taxes are
// filtered unconditionally.
func (s *Service) ListTaxes(ctx context.Context, filter domain.TaxFilter) ([]domain.Tax, error) {
	parts := []odoo.Domain{odoo.Eq("active", true)}
	if filter.TypeTaxUse != "" {
		parts = append(parts, odoo.Eq("type_tax_use", filter.TypeTaxUse))
	}

	records, err := s.rpc.SearchRead(ctx, modelTax, odoo.And(parts...),
		[]string{"id", "name", "amount", "amount_type", "type_tax_use", "active"},
		&odoo.SearchOptions{Order: "name asc"})
	if err != nil {
		return nil, fmt.Errorf("list taxes: %w", err)
	}

	taxes := make([]domain.Tax, 0, len(records))
	for _, r := range records {
		taxes = append(taxes, mapTax(r))
	}
	return taxes, nil
}

// CreateTax creates a tax definition and returns its ID.
func (s *Service) CreateTax(ctx context.Context, in domain.CreateTaxInput) (int64, error) {
	values := map[string]any{
		"name":   in.Name,
		"amount": in.Amount,
	}
	if in.AmountType != "" {
		values["amount_type"] = in.AmountType
	}
	if in.TypeTaxUse != "" {
		values["type_tax_use"] = in.TypeTaxUse
	}

	id, err := s.rpc.Create(ctx, modelTax, values)
	if err != nil {
		return 0, fmt.Errorf("create tax: %w", err)
	}
	s.emitAudit(ctx, "tax.created", "tax", id, map[string]any{"name": in.Name})
	return id, nil
}

// ListPartners returns partners ordered by name.
func (s *Service) ListPartners(ctx context.Context, filter domain.PartnerFilter) ([]domain.Partner, error) {
	var parts []odoo.Domain
	if query := strings.TrimSpace(filter.Query); query != "" {
		parts = append(parts, odoo.Ilike("name", query))
	}
	if filter.CustomersOnly {
		parts = append(parts, odoo.Gt("customer_rank", 0))
	}
	if filter.SuppliersOnly {
		parts = append(parts, odoo.Gt("supplier_rank", 0))
	}

	opts := &odoo.SearchOptions{Order: "name asc"}
	if filter.Limit > 0 {
		opts.Limit = filter.Limit
	}

	records, err := s.rpc.SearchRead(ctx, modelPartner, odoo.And(parts...),
		[]string{"id", "name", "email", "phone", "vat", "is_company", "customer_rank", "supplier_rank"},
		opts)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}

	partners := make([]domain.Partner, 0, len(records))
	for _, r := range records {
		partners = append(partners, mapPartner(r))
	}
	return partners, nil
}

// ListCurrencies returns active currencies.
func (s *Service) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	records, err := s.rpc.SearchRead(ctx, modelCurrency, odoo.Eq("active", true),
		[]string{"id", "name", "symbol", "active"},
		&odoo.SearchOptions{Order: "name asc"})
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}

	currencies := make([]domain.Currency, 0, len(records))
	for _, r := range records {
		currencies = append(currencies, mapCurrency(r))
	}
	return currencies, nil
}

// ListCurrencyRates returns dated exchange rates, newest first. There is
// no default active filter on rates.
func (s *Service) ListCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter) ([]domain.CurrencyRate, error) {
	var parts []odoo.Domain
	if filter.CurrencyID != 0 {
		parts = append(parts, odoo.Eq("currency_id", filter.CurrencyID))
	}
	if filter.DateFrom != "" {
		parts = append(parts, odoo.Gte("name", filter.DateFrom))
	}
	if filter.DateTo != "" {
		parts = append(parts, odoo.Lte("name", filter.DateTo))
	}

	records, err := s.rpc.SearchRead(ctx, modelCurrencyRate, odoo.And(parts...),
		[]string{"id", "currency_id", "name", "rate"},
		&odoo.SearchOptions{Order: "name desc"})
	if err != nil {
		return nil, fmt.Errorf("list currency rates: %w", err)
	}

	rates := make([]domain.CurrencyRate, 0, len(records))
	for _, r := range records {
		rates = append(rates, mapCurrencyRate(r))
	}
	return rates, nil
}
