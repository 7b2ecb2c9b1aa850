package domain

import (
	"context"
	"errors"
)

// Service is the accounting surface the HTTP layer consumes. Every call
// is a fresh round-trip to the ERP; consistency is whatever the ERP
// enforces remotely.
type Service interface {
	// Accounts
	ListAccounts(ctx context.Context, filter AccountFilter) ([]Account, error)
	SearchAccounts(ctx context.Context, query string) ([]Account, error)
	GetAccount(ctx context.Context, id int64) (*Account, error)
	CreateAccount(ctx context.Context, in CreateAccountInput) (int64, error)

	// Invoices
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (int64, error)
	PostInvoice(ctx context.Context, id int64) error
	CancelInvoice(ctx context.Context, id int64) error
	ResetInvoiceToDraft(ctx context.Context, id int64) error

	// Payments
	ListPayments(ctx context.Context, filter PaymentFilter) ([]Payment, error)
	GetPayment(ctx context.Context, id int64) (*Payment, error)
	CreatePayment(ctx context.Context, in CreatePaymentInput) (int64, error)
	ConfirmPayment(ctx context.Context, id int64) error

	// Reference data
	ListJournals(ctx context.Context, filter JournalFilter) ([]Journal, error)
	CreateJournal(ctx context.Context, in CreateJournalInput) (int64, error)
	ListTaxes(ctx context.Context, filter TaxFilter) ([]Tax, error)
	CreateTax(ctx context.Context, in CreateTaxInput) (int64, error)
	ListPartners(ctx context.Context, filter PartnerFilter) ([]Partner, error)
	ListCurrencies(ctx context.Context) ([]Currency, error)
	ListCurrencyRates(ctx context.Context, filter CurrencyRateFilter) ([]CurrencyRate, error)

	// Ledger
	ListGLEntries(ctx context.Context, filter GLEntryFilter) ([]GLEntry, error)

	// Banking
	ListBankStatements(ctx context.Context, filter BankStatementFilter) ([]BankStatement, error)
	ReconcileBankStatementLine(ctx context.Context, lineID int64, moveLineIDs []int64) ReconcileResult

	// Reports
	TrialBalance(ctx context.Context, dateFrom, dateTo string) (*TrialBalance, error)
	PartnerLedger(ctx context.Context, partnerID int64, dateFrom, dateTo string) (*PartnerLedger, error)
	AgedReceivables(ctx context.Context, asOf string) (*AgedReport, error)
	AgedPayables(ctx context.Context, asOf string) (*AgedReport, error)
	ProfitLoss(ctx context.Context, dateFrom, dateTo string) (*ProfitLoss, error)

	// Batch orchestration
	BatchValidateInvoices(ctx context.Context, ids []int64) BatchResult
	BatchCancelInvoices(ctx context.Context, ids []int64) BatchResult
	BatchCreateInvoices(ctx context.Context, inputs []CreateInvoiceInput) BatchResult
	BatchCreatePayments(ctx context.Context, inputs []CreatePaymentInput) BatchResult
	BatchConfirmPayments(ctx context.Context, ids []int64) BatchResult
}

var (
	// ErrMissingCounterparty is raised before any RPC when an invoice has
	// neither a customer nor a supplier.
	ErrMissingCounterparty = errors.New("invoice requires a customer or supplier")

	// ErrPaymentMoveMissing marks an inconsistent remote state: posting
	// succeeded but the payment carries no move or destination account.
	ErrPaymentMoveMissing = errors.New("payment move or destination account missing after posting")

	// ErrNoPaymentLines guards reconciliation: the payment produced no
	// ledger lines on its destination account.
	ErrNoPaymentLines = errors.New("no payment lines found for reconciliation")

	// ErrNoInvoiceLines guards reconciliation: the target invoices have no
	// unreconciled lines on the payment's destination account.
	ErrNoInvoiceLines = errors.New("no unreconciled invoice lines found for reconciliation")

	// ErrNotFound is returned when a record lookup by ID yields nothing.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidDate is raised for report dates that are not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)
