package service

import (
	"context"
	"fmt"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"go.uber.org/zap"
)

// ListBankStatements returns statements newest first. No default state
// filter is applied.
func (s *Service) ListBankStatements(ctx context.Context, filter domain.BankStatementFilter) ([]domain.BankStatement, error) {
	var parts []odoo.Domain
	if filter.JournalID != 0 {
		parts = append(parts, odoo.Eq("journal_id", filter.JournalID))
	}
	if filter.State != "" {
		parts = append(parts, odoo.Eq("state", filter.State))
	}
	if filter.DateFrom != "" {
		parts = append(parts, odoo.Gte("date", filter.DateFrom))
	}
	if filter.DateTo != "" {
		parts = append(parts, odoo.Lte("date", filter.DateTo))
	}

	records, err := s.rpc.SearchRead(ctx, modelBankStatement, odoo.And(parts...),
		[]string{"id", "name", "date", "journal_id", "balance_start", "balance_end_real", "state"},
		&odoo.SearchOptions{Order: "date desc"})
	if err != nil {
		return nil, fmt.Errorf("list bank statements: %w", err)
	}

	statements := make([]domain.BankStatement, 0, len(records))
	for _, r := range records {
		statements = append(statements, mapBankStatement(r))
	}
	return statements, nil
}

// ReconcileBankStatementLine matches one statement line against ledger
// lines. Best-effort contract: failures are wrapped into the result, not
// raised, so bulk matching flows keep going.
func (s *Service) ReconcileBankStatementLine(ctx context.Context, lineID int64, moveLineIDs []int64) domain.ReconcileResult {
	ids := make([]any, 0, len(moveLineIDs))
	for _, id := range moveLineIDs {
		ids = append(ids, map[string]any{"id": id})
	}

	_, err := s.rpc.ExecuteKw(ctx, modelBankStatementLine, "reconcile", []any{[]any{lineID}, ids}, nil)
	if err != nil {
		s.log.Warn("bank statement line reconciliation failed",
			zap.Int64("line_id", lineID),
			zap.Error(err),
		)
		return domain.ReconcileResult{Success: false, Message: err.Error()}
	}

	s.metrics.RecordReconciliation(ctx, "bank_statement")
	s.emitAudit(ctx, "bank_statement_line.reconciled", "bank_statement_line", lineID, map[string]any{
		"move_line_ids": moveLineIDs,
	})
	return domain.ReconcileResult{Success: true}
}
