package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow aggregates one account's ledger activity. Totals are
// exact sums of the constituent entries; no rounding or currency
// conversion happens at this layer.
type TrialBalanceRow struct {
	AccountID   int64           `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalance is the full report, rows sorted ascending by account code.
type TrialBalance struct {
	DateFrom    string            `json:"date_from,omitempty"`
	DateTo      string            `json:"date_to,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
}

// PartnerLedgerRow is one ledger line with the cumulative balance at that
// point of the iteration.
type PartnerLedgerRow struct {
	EntryID        int64           `json:"entry_id"`
	Date           string          `json:"date,omitempty"`
	MoveName       string          `json:"move_name,omitempty"`
	Name           string          `json:"name,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        decimal.Decimal `json:"balance"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// PartnerLedger is the statement for one partner. A nil *PartnerLedger
// from the service means no matching entries, which is distinct from a
// ledger that sums to zero.
type PartnerLedger struct {
	PartnerID   int64              `json:"partner_id"`
	PartnerName string             `json:"partner_name,omitempty"`
	DateFrom    string             `json:"date_from,omitempty"`
	DateTo      string             `json:"date_to,omitempty"`
	Rows        []PartnerLedgerRow `json:"rows"`
	TotalDebit  decimal.Decimal    `json:"total_debit"`
	TotalCredit decimal.Decimal    `json:"total_credit"`
	Balance     decimal.Decimal    `json:"balance"`
}

// AgedBuckets splits outstanding residual amounts by days past due.
type AgedBuckets struct {
	Current    decimal.Decimal `json:"current"`
	Days1To30  decimal.Decimal `json:"days_1_30"`
	Days31To60 decimal.Decimal `json:"days_31_60"`
	Days61To90 decimal.Decimal `json:"days_61_90"`
	Over90     decimal.Decimal `json:"days_over_90"`
	Total      decimal.Decimal `json:"total"`
}

// Add accumulates amount into the bucket for daysPastDue and the total.
func (b *AgedBuckets) Add(daysPastDue int, amount decimal.Decimal) {
	switch {
	case daysPastDue <= 0:
		b.Current = b.Current.Add(amount)
	case daysPastDue <= 30:
		b.Days1To30 = b.Days1To30.Add(amount)
	case daysPastDue <= 60:
		b.Days31To60 = b.Days31To60.Add(amount)
	case daysPastDue <= 90:
		b.Days61To90 = b.Days61To90.Add(amount)
	default:
		b.Over90 = b.Over90.Add(amount)
	}
	b.Total = b.Total.Add(amount)
}

// AgedPartnerRow is one partner's outstanding buckets.
type AgedPartnerRow struct {
	PartnerID   int64  `json:"partner_id"`
	PartnerName string `json:"partner_name,omitempty"`
	AgedBuckets
}

// AgedReport is an aged receivables or payables report, rows sorted
// descending by outstanding total.
type AgedReport struct {
	AsOf   string           `json:"as_of"`
	Rows   []AgedPartnerRow `json:"rows"`
	Totals AgedBuckets      `json:"totals"`
}

// AccountAmount is one account's net contribution to a P&L side.
type AccountAmount struct {
	AccountID   int64           `json:"account_id"`
	AccountCode string          `json:"account_code,omitempty"`
	AccountName string          `json:"account_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitLoss nets income against expenses for a period. Income accounts
// grow on credit, expenses on debit.
type ProfitLoss struct {
	DateFrom      string          `json:"date_from,omitempty"`
	DateTo        string          `json:"date_to,omitempty"`
	Income        []AccountAmount `json:"income"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}
