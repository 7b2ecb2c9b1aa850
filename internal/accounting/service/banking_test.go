package service

import (
	"context"
	"errors"
	"testing"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListBankStatementsFiltersByJournalAndState(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.bank.statement",
		mock.MatchedBy(func(d odoo.Domain) bool {
			return domainWith("journal_id", "=", int64(4))(d) &&
				domainWith("state", "=", "open")(d)
		}),
		mock.Anything, mock.Anything,
	).Return([]odoo.Record{
		{
			"id":               float64(12),
			"name":             "BNK/2026/001",
			"date":             "2026-01-31",
			"journal_id":       []any{float64(4), "Bank"},
			"balance_start":    float64(0),
			"balance_end_real": float64(1250),
			"state":            "open",
		},
	}, nil)

	statements, err := svc.ListBankStatements(context.Background(), domain.BankStatementFilter{
		JournalID: 4,
		State:     "open",
	})

	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, int64(4), statements[0].JournalID)
	assert.Equal(t, "1250", statements[0].BalanceEnd.String())
}

func TestReconcileBankStatementLineWiresIDDicts(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("ExecuteKw", mock.Anything, "account.bank.statement.line", "reconcile",
		[]any{
			[]any{int64(15)},
			[]any{map[string]any{"id": int64(301)}, map[string]any{"id": int64(302)}},
		},
		map[string]any(nil),
	).Return(true, nil)

	result := svc.ReconcileBankStatementLine(context.Background(), 15, []int64{301, 302})

	assert.True(t, result.Success)
	assert.Empty(t, result.Message)
	rpc.AssertExpectations(t)
}

func TestReconcileBankStatementLineWrapsFailure(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("ExecuteKw", mock.Anything, "account.bank.statement.line", "reconcile",
		mock.Anything, mock.Anything,
	).Return(nil, errors.New("line already reconciled"))

	result := svc.ReconcileBankStatementLine(context.Background(), 15, []int64{301})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "line already reconciled")
}
