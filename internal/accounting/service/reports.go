package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Account type sets feeding the profit & loss report.
var (
	incomeAccountTypes  = []string{"income", "income_other"}
	expenseAccountTypes = []string{"expense", "expense_depreciation", "expense_direct_cost"}
)

func parseReportDate(value string) (time.Time, error) {
	t, err := time.Parse(odoo.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, value)
	}
	return t, nil
}

// TrialBalance sums every ledger line in the range per account. Account
// code and name are seeded by a separate lookup the first time each
// account appears; rows come back sorted ascending by code.
func (s *Service) TrialBalance(ctx context.Context, dateFrom, dateTo string) (*domain.TrialBalance, error) {
	entries, err := s.ListGLEntries(ctx, domain.GLEntryFilter{DateFrom: dateFrom, DateTo: dateTo})
	if err != nil {
		return nil, err
	}

	rows := make(map[int64]*domain.TrialBalanceRow)
	for _, entry := range entries {
		if entry.AccountID == 0 {
			continue
		}
		row, ok := rows[entry.AccountID]
		if !ok {
			row = &domain.TrialBalanceRow{AccountID: entry.AccountID}
			if account, err := s.GetAccount(ctx, entry.AccountID); err == nil {
				row.AccountCode = account.Code
				row.AccountName = account.Name
			} else {
				s.log.Warn("trial balance account lookup failed",
					zap.Int64("account_id", entry.AccountID),
					zap.Error(err),
				)
				row.AccountName = entry.AccountName
			}
			rows[entry.AccountID] = row
		}
		row.Debit = row.Debit.Add(entry.Debit)
		row.Credit = row.Credit.Add(entry.Credit)
		row.Balance = row.Balance.Add(entry.Balance)
	}

	report := &domain.TrialBalance{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Rows:     make([]domain.TrialBalanceRow, 0, len(rows)),
	}
	for _, row := range rows {
		report.Rows = append(report.Rows, *row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].AccountCode < report.Rows[j].AccountCode
	})

	s.metrics.RecordReportBuild(ctx, "trial_balance")
	return report, nil
}

// PartnerLedger emits one row per ledger line with a chronological
// running balance. Entries are requested oldest first so the cumulative
// balance reads forward in time. Returns nil when the partner has no
// entries in the range, which is distinct from a zero balance.
func (s *Service) PartnerLedger(ctx context.Context, partnerID int64, dateFrom, dateTo string) (*domain.PartnerLedger, error) {
	entries, err := s.ListGLEntries(ctx, domain.GLEntryFilter{
		PartnerID: partnerID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Order:     "date asc, id asc",
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	ledger := &domain.PartnerLedger{
		PartnerID: partnerID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Rows:      make([]domain.PartnerLedgerRow, 0, len(entries)),
	}

	var running decimal.Decimal
	for _, entry := range entries {
		if ledger.PartnerName == "" {
			ledger.PartnerName = entry.PartnerName
		}
		running = running.Add(entry.Balance)
		ledger.Rows = append(ledger.Rows, domain.PartnerLedgerRow{
			EntryID:        entry.ID,
			Date:           entry.Date,
			MoveName:       entry.MoveName,
			Name:           entry.Name,
			Debit:          entry.Debit,
			Credit:         entry.Credit,
			Balance:        entry.Balance,
			RunningBalance: running,
		})
		ledger.TotalDebit = ledger.TotalDebit.Add(entry.Debit)
		ledger.TotalCredit = ledger.TotalCredit.Add(entry.Credit)
	}
	ledger.Balance = running

	s.metrics.RecordReportBuild(ctx, "partner_ledger")
	return ledger, nil
}

// AgedReceivables buckets open customer invoice residuals by days past due.
func (s *Service) AgedReceivables(ctx context.Context, asOf string) (*domain.AgedReport, error) {
	return s.agedReport(ctx, domain.MoveTypeCustomerInvoice, asOf, "aged_receivables")
}

// AgedPayables buckets open vendor bill residuals by days past due.
func (s *Service) AgedPayables(ctx context.Context, asOf string) (*domain.AgedReport, error) {
	return s.agedReport(ctx, domain.MoveTypeVendorBill, asOf, "aged_payables")
}

func (s *Service) agedReport(ctx context.Context, moveType domain.MoveType, asOf, reportName string) (*domain.AgedReport, error) {
	asOfDate, err := parseReportDate(asOf)
	if err != nil {
		return nil, err
	}

	// Draft invoices never reach aging; only posted, unpaid moves count.
	invoices, err := s.ListInvoices(ctx, domain.InvoiceFilter{
		MoveType:     moveType,
		State:        domain.MoveStatePosted,
		PaymentState: domain.PaymentStateNotPaid,
	})
	if err != nil {
		return nil, err
	}

	report := &domain.AgedReport{AsOf: asOf}
	byPartner := make(map[int64]*domain.AgedPartnerRow)
	for _, invoice := range invoices {
		// Invoices without a resolvable partner reference are skipped.
		if invoice.PartnerID == 0 {
			continue
		}

		due, ok := parseDateFallback(invoice.InvoiceDateDue)
		if !ok {
			due, ok = parseDateFallback(invoice.InvoiceDate)
		}
		if !ok {
			due = asOfDate
		}
		daysPastDue := int(asOfDate.Sub(due).Hours() / 24)

		row, ok := byPartner[invoice.PartnerID]
		if !ok {
			row = &domain.AgedPartnerRow{
				PartnerID:   invoice.PartnerID,
				PartnerName: invoice.PartnerName,
			}
			byPartner[invoice.PartnerID] = row
		}
		row.Add(daysPastDue, invoice.AmountResidual)
		report.Totals.Add(daysPastDue, invoice.AmountResidual)
	}

	report.Rows = make([]domain.AgedPartnerRow, 0, len(byPartner))
	for _, row := range byPartner {
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Total.GreaterThan(report.Rows[j].Total)
	})

	s.metrics.RecordReportBuild(ctx, reportName)
	return report, nil
}

func parseDateFallback(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(odoo.DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ProfitLoss nets period income against expenses. Income accounts
// accumulate credit minus debit, expense accounts debit minus credit;
// ledger lines for each side are fetched in one grouped query rather
// than one query per account.
func (s *Service) ProfitLoss(ctx context.Context, dateFrom, dateTo string) (*domain.ProfitLoss, error) {
	income, totalIncome, err := s.profitLossSide(ctx, incomeAccountTypes, dateFrom, dateTo, false)
	if err != nil {
		return nil, err
	}
	expenses, totalExpenses, err := s.profitLossSide(ctx, expenseAccountTypes, dateFrom, dateTo, true)
	if err != nil {
		return nil, err
	}

	report := &domain.ProfitLoss{
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Income:        income,
		Expenses:      expenses,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     totalIncome.Sub(totalExpenses),
	}

	s.metrics.RecordReportBuild(ctx, "profit_loss")
	return report, nil
}

// profitLossSide aggregates one side of the P&L. debitPositive selects
// the sign convention: true for expenses, false for income.
func (s *Service) profitLossSide(ctx context.Context, accountTypes []string, dateFrom, dateTo string, debitPositive bool) ([]domain.AccountAmount, decimal.Decimal, error) {
	var total decimal.Decimal

	typeValues := make([]any, 0, len(accountTypes))
	for _, t := range accountTypes {
		typeValues = append(typeValues, t)
	}
	records, err := s.rpc.SearchRead(ctx, modelAccount,
		odoo.And(
			odoo.Where("account_type", odoo.OpIn, typeValues),
			odoo.Eq("active", true),
		),
		accountFields, &odoo.SearchOptions{Order: "code asc"})
	if err != nil {
		return nil, total, fmt.Errorf("list profit/loss accounts: %w", err)
	}
	if len(records) == 0 {
		return []domain.AccountAmount{}, total, nil
	}

	accounts := make([]domain.Account, 0, len(records))
	accountIDs := make([]int64, 0, len(records))
	for _, r := range records {
		account := mapAccount(r)
		accounts = append(accounts, account)
		accountIDs = append(accountIDs, account.ID)
	}

	entries, err := s.ListGLEntries(ctx, domain.GLEntryFilter{
		AccountIDs: accountIDs,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		return nil, total, err
	}

	byAccount := make(map[int64]decimal.Decimal, len(accounts))
	for _, entry := range entries {
		amount := entry.Credit.Sub(entry.Debit)
		if debitPositive {
			amount = entry.Debit.Sub(entry.Credit)
		}
		byAccount[entry.AccountID] = byAccount[entry.AccountID].Add(amount)
	}

	rows := make([]domain.AccountAmount, 0, len(accounts))
	for _, account := range accounts {
		amount := byAccount[account.ID]
		rows = append(rows, domain.AccountAmount{
			AccountID:   account.ID,
			AccountCode: account.Code,
			AccountName: account.Name,
			Amount:      amount,
		})
		total = total.Add(amount)
	}
	return rows, total, nil
}
