package service

import (
	"context"
	"testing"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func glRecord(id, accountID int64, accountName, date string, debit, credit float64) odoo.Record {
	return odoo.Record{
		"id":         float64(id),
		"move_id":    []any{float64(id + 1000), "MOVE/" + date},
		"account_id": []any{float64(accountID), accountName},
		"date":       date,
		"debit":      debit,
		"credit":     credit,
		"balance":    debit - credit,
	}
}

func accountRecord(id int64, code, name string) odoo.Record {
	return odoo.Record{
		"id":     float64(id),
		"code":   code,
		"name":   name,
		"active": true,
	}
}

func openInvoice(id, partnerID int64, partnerName, dueDate string, residual float64) odoo.Record {
	rec := odoo.Record{
		"id":              float64(id),
		"move_type":       "out_invoice",
		"state":           "posted",
		"payment_state":   "not_paid",
		"amount_residual": residual,
	}
	if partnerID != 0 {
		rec["partner_id"] = []any{float64(partnerID), partnerName}
	} else {
		rec["partner_id"] = false
	}
	if dueDate != "" {
		rec["invoice_date_due"] = dueDate
	} else {
		rec["invoice_date_due"] = false
	}
	return rec
}

func TestTrialBalanceGroupsByAccountAndSortsByCode(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.move.line",
		mock.MatchedBy(func(d odoo.Domain) bool {
			return domainWith("date", ">=", "2026-01-01")(d) &&
				domainWith("date", "<=", "2026-01-31")(d)
		}),
		glEntryFields, mock.Anything,
	).Return([]odoo.Record{
		glRecord(1, 200, "Sales", "2026-01-05", 0, 1000),
		glRecord(2, 100, "Bank", "2026-01-05", 1000, 0),
		glRecord(3, 200, "Sales", "2026-01-20", 0, 250),
		glRecord(4, 100, "Bank", "2026-01-20", 250, 0),
	}, nil)
	rpc.On("Read", mock.Anything, "account.account", []int64{200}, accountFields).
		Return([]odoo.Record{accountRecord(200, "700000", "Product Sales")}, nil).Once()
	rpc.On("Read", mock.Anything, "account.account", []int64{100}, accountFields).
		Return([]odoo.Record{accountRecord(100, "101000", "Bank")}, nil).Once()

	report, err := svc.TrialBalance(context.Background(), "2026-01-01", "2026-01-31")

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "101000", report.Rows[0].AccountCode)
	assert.Equal(t, "1250", report.Rows[0].Debit.String())
	assert.Equal(t, "0", report.Rows[0].Credit.String())
	assert.Equal(t, "1250", report.Rows[0].Balance.String())
	assert.Equal(t, "700000", report.Rows[1].AccountCode)
	assert.Equal(t, "1250", report.Rows[1].Credit.String())
	assert.Equal(t, "-1250", report.Rows[1].Balance.String())
	assert.Equal(t, "1250", report.TotalDebit.String())
	assert.Equal(t, "1250", report.TotalCredit.String())
	rpc.AssertExpectations(t)
}

func TestTrialBalanceFallsBackToLedgerAccountLabel(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.move.line", mock.Anything, glEntryFields, mock.Anything).
		Return([]odoo.Record{glRecord(1, 300, "Archived Expense", "2026-01-05", 40, 0)}, nil)
	rpc.On("Read", mock.Anything, "account.account", []int64{300}, accountFields).
		Return([]odoo.Record{}, nil)

	report, err := svc.TrialBalance(context.Background(), "", "")

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "", report.Rows[0].AccountCode)
	assert.Equal(t, "Archived Expense", report.Rows[0].AccountName)
}

func TestPartnerLedgerAccumulatesRunningBalance(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	withPartner := func(rec odoo.Record) odoo.Record {
		rec["partner_id"] = []any{float64(5), "Deco Addict"}
		return rec
	}

	rpc.On("SearchRead", mock.Anything, "account.move.line",
		mock.MatchedBy(domainWith("partner_id", "=", int64(5))),
		glEntryFields,
		mock.MatchedBy(func(opts *odoo.SearchOptions) bool {
			return opts != nil && opts.Order == "date asc, id asc"
		}),
	).Return([]odoo.Record{
		withPartner(glRecord(1, 100, "Receivable", "2026-01-02", 100, 0)),
		withPartner(glRecord(2, 100, "Receivable", "2026-01-10", 0, 40)),
		withPartner(glRecord(3, 100, "Receivable", "2026-01-15", 25, 0)),
	}, nil)

	ledger, err := svc.PartnerLedger(context.Background(), 5, "", "")

	require.NoError(t, err)
	require.NotNil(t, ledger)
	assert.Equal(t, "Deco Addict", ledger.PartnerName)
	require.Len(t, ledger.Rows, 3)
	assert.Equal(t, "100", ledger.Rows[0].RunningBalance.String())
	assert.Equal(t, "60", ledger.Rows[1].RunningBalance.String())
	assert.Equal(t, "85", ledger.Rows[2].RunningBalance.String())
	assert.Equal(t, "125", ledger.TotalDebit.String())
	assert.Equal(t, "40", ledger.TotalCredit.String())
	assert.Equal(t, "85", ledger.Balance.String())
}

func TestPartnerLedgerNilWhenNoEntries(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.move.line", mock.Anything, glEntryFields, mock.Anything).
		Return([]odoo.Record{}, nil)

	ledger, err := svc.PartnerLedger(context.Background(), 5, "", "")

	require.NoError(t, err)
	assert.Nil(t, ledger)
}

func TestAgedReceivablesBucketsByDaysPastDue(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.move",
		mock.MatchedBy(func(d odoo.Domain) bool {
			return domainWith("move_type", "=", "out_invoice")(d) &&
				domainWith("state", "=", "posted")(d) &&
				domainWith("payment_state", "=", "not_paid")(d)
		}),
		invoiceFields, mock.Anything,
	).Return([]odoo.Record{
		openInvoice(1, 5, "Deco Addict", "2026-03-31", 100), // not yet due
		openInvoice(2, 5, "Deco Addict", "2026-03-01", 200), // 30 days
		openInvoice(3, 5, "Deco Addict", "2026-02-28", 300), // 31 days
		openInvoice(4, 8, "Gemini Furniture", "2025-12-31", 400), // 90 days
		openInvoice(5, 8, "Gemini Furniture", "2025-12-30", 500), // 91 days
		openInvoice(6, 0, "", "2026-01-01", 999), // no partner, skipped
	}, nil)

	report, err := svc.AgedReceivables(context.Background(), "2026-03-31")

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)

	// Gemini owes more, so it sorts first.
	gemini := report.Rows[0]
	assert.Equal(t, int64(8), gemini.PartnerID)
	assert.Equal(t, "400", gemini.Days61To90.String())
	assert.Equal(t, "500", gemini.Over90.String())
	assert.Equal(t, "900", gemini.Total.String())

	deco := report.Rows[1]
	assert.Equal(t, int64(5), deco.PartnerID)
	assert.Equal(t, "100", deco.Current.String())
	assert.Equal(t, "200", deco.Days1To30.String())
	assert.Equal(t, "300", deco.Days31To60.String())
	assert.Equal(t, "600", deco.Total.String())

	assert.Equal(t, "1500", report.Totals.Total.String())
}

func TestAgedReportFallsBackToAsOfWhenNoDueDate(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.move", mock.Anything, invoiceFields, mock.Anything).
		Return([]odoo.Record{openInvoice(1, 5, "Deco Addict", "", 150)}, nil)

	report, err := svc.AgedReceivables(context.Background(), "2026-03-31")

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "150", report.Rows[0].Current.String())
}

func TestAgedReportRejectsMalformedDate(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	_, err := svc.AgedPayables(context.Background(), "31-03-2026")

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	rpc.AssertNotCalled(t, "SearchRead", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfitLossNetsIncomeAgainstExpenses(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.account",
		mock.MatchedBy(domainWith("account_type", "in", []any{"income", "income_other"})),
		accountFields, mock.Anything,
	).Return([]odoo.Record{
		accountRecord(500, "700000", "Product Sales"),
		accountRecord(501, "700100", "Services"),
	}, nil)
	rpc.On("SearchRead", mock.Anything, "account.move.line",
		mock.MatchedBy(domainWith("account_id", "in", []any{int64(500), int64(501)})),
		glEntryFields, mock.Anything,
	).Return([]odoo.Record{
		glRecord(1, 500, "Product Sales", "2026-01-05", 0, 1000),
		glRecord(2, 500, "Product Sales", "2026-01-12", 100, 0), // refund
	}, nil)

	rpc.On("SearchRead", mock.Anything, "account.account",
		mock.MatchedBy(domainWith("account_type", "in", []any{"expense", "expense_depreciation", "expense_direct_cost"})),
		accountFields, mock.Anything,
	).Return([]odoo.Record{accountRecord(600, "600000", "Purchases")}, nil)
	rpc.On("SearchRead", mock.Anything, "account.move.line",
		mock.MatchedBy(domainWith("account_id", "in", []any{int64(600)})),
		glEntryFields, mock.Anything,
	).Return([]odoo.Record{
		glRecord(3, 600, "Purchases", "2026-01-08", 400, 0),
		glRecord(4, 600, "Purchases", "2026-01-22", 0, 50),
	}, nil)

	report, err := svc.ProfitLoss(context.Background(), "2026-01-01", "2026-01-31")

	require.NoError(t, err)
	require.Len(t, report.Income, 2)
	assert.Equal(t, "900", report.Income[0].Amount.String())
	// Accounts without activity still appear with a zero amount.
	assert.Equal(t, int64(501), report.Income[1].AccountID)
	assert.Equal(t, "0", report.Income[1].Amount.String())
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, "350", report.Expenses[0].Amount.String())
	assert.Equal(t, "900", report.TotalIncome.String())
	assert.Equal(t, "350", report.TotalExpenses.String())
	assert.Equal(t, "550", report.NetProfit.String())
}

func TestProfitLossEmptySideSkipsLedgerQuery(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.account", mock.Anything, accountFields, mock.Anything).
		Return([]odoo.Record{}, nil)

	report, err := svc.ProfitLoss(context.Background(), "2026-01-01", "2026-01-31")

	require.NoError(t, err)
	assert.Empty(t, report.Income)
	assert.Empty(t, report.Expenses)
	assert.Equal(t, "0", report.NetProfit.String())
	rpc.AssertNotCalled(t, "SearchRead", mock.Anything, "account.move.line", mock.Anything, mock.Anything, mock.Anything)
}
