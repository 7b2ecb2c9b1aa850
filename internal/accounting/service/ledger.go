package service

import (
	"context"
	"fmt"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
)

var glEntryFields = []string{
	"id", "move_id", "move_name", "account_id", "partner_id", "date",
	"name", "debit", "credit", "balance", "currency_id", "reconciled",
}

// defaultGLOrder keeps the list endpoint contract: newest entries first,
// ties broken by descending ID.
const defaultGLOrder = "date desc, id desc"

func glEntryDomain(filter domain.GLEntryFilter) odoo.Domain {
	var parts []odoo.Domain
	if filter.AccountID != 0 {
		parts = append(parts, odoo.Eq("account_id", filter.AccountID))
	}
	if len(filter.AccountIDs) > 0 {
		parts = append(parts, odoo.In("account_id", filter.AccountIDs))
	}
	if filter.PartnerID != 0 {
		parts = append(parts, odoo.Eq("partner_id", filter.PartnerID))
	}
	if filter.MoveID != 0 {
		parts = append(parts, odoo.Eq("move_id", filter.MoveID))
	}
	if filter.DateFrom != "" {
		parts = append(parts, odoo.Gte("date", filter.DateFrom))
	}
	if filter.DateTo != "" {
		parts = append(parts, odoo.Lte("date", filter.DateTo))
	}
	if filter.Reconciled != nil {
		parts = append(parts, odoo.Eq("reconciled", *filter.Reconciled))
	}
	return odoo.And(parts...)
}

// ListGLEntries reads general-ledger lines. Entries are never mutated by
// this service, only read and aggregated.
func (s *Service) ListGLEntries(ctx context.Context, filter domain.GLEntryFilter) ([]domain.GLEntry, error) {
	order := filter.Order
	if order == "" {
		order = defaultGLOrder
	}
	opts := &odoo.SearchOptions{Order: order}
	if filter.Limit > 0 {
		opts.Limit = filter.Limit
	}

	records, err := s.rpc.SearchRead(ctx, modelMoveLine, glEntryDomain(filter), glEntryFields, opts)
	if err != nil {
		return nil, fmt.Errorf("list gl entries: %w", err)
	}

	entries := make([]domain.GLEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, mapGLEntry(r))
	}
	return entries, nil
}
