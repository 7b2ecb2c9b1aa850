// Package domain contains the typed shapes the bridge exposes for remote
// ERP accounting records. Entities are referenced by the ERP's integer
// IDs; the bridge never owns authoritative storage for any of them.
package domain

import "github.com/shopspring/decimal"

// MoveType enumerates journal-entry categories for invoices.
type MoveType string

const (
	MoveTypeCustomerInvoice MoveType = "out_invoice"
	MoveTypeCustomerRefund  MoveType = "out_refund"
	MoveTypeVendorBill      MoveType = "in_invoice"
	MoveTypeVendorRefund    MoveType = "in_refund"
)

// MoveState enumerates the invoice lifecycle.
type MoveState string

const (
	MoveStateDraft     MoveState = "draft"
	MoveStatePosted    MoveState = "posted"
	MoveStateCancelled MoveState = "cancel"
)

// PaymentState tracks how much of a posted invoice has been settled.
type PaymentState string

const (
	PaymentStateNotPaid   PaymentState = "not_paid"
	PaymentStateInPayment PaymentState = "in_payment"
	PaymentStatePaid      PaymentState = "paid"
	PaymentStatePartial   PaymentState = "partial"
	PaymentStateReversed  PaymentState = "reversed"
)

// Account is one ledger account. Code is the stable sort and display key;
// lookups go by ID.
type Account struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType string          `json:"account_type"`
	CurrencyID  int64           `json:"currency_id,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	Active      bool            `json:"active"`
	Reconcile   bool            `json:"reconcile"`
	Balance     decimal.Decimal `json:"balance"`
}

// Invoice is a customer invoice, vendor bill or refund move. Once posted,
// the amount fields are authoritative for reporting; AmountResidual is the
// unpaid remainder that drives aging and reconciliation.
type Invoice struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	MoveType       MoveType        `json:"move_type"`
	State          MoveState       `json:"state"`
	PaymentState   PaymentState    `json:"payment_state,omitempty"`
	PartnerID      int64           `json:"partner_id,omitempty"`
	PartnerName    string          `json:"partner_name,omitempty"`
	InvoiceDate    string          `json:"invoice_date,omitempty"`
	InvoiceDateDue string          `json:"invoice_date_due,omitempty"`
	Ref            string          `json:"ref,omitempty"`
	CurrencyID     int64           `json:"currency_id,omitempty"`
	AmountUntaxed  decimal.Decimal `json:"amount_untaxed"`
	AmountTax      decimal.Decimal `json:"amount_tax"`
	AmountTotal    decimal.Decimal `json:"amount_total"`
	AmountResidual decimal.Decimal `json:"amount_residual"`
}

// Payment is an inbound or outbound payment. Posting generates its journal
// entry (MoveID) and the destination account used for reconciliation.
type Payment struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	PaymentType          string          `json:"payment_type"`
	PartnerType          string          `json:"partner_type"`
	PartnerID            int64           `json:"partner_id,omitempty"`
	PartnerName          string          `json:"partner_name,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	Date                 string          `json:"date,omitempty"`
	State                string          `json:"state"`
	JournalID            int64           `json:"journal_id,omitempty"`
	MoveID               int64           `json:"move_id,omitempty"`
	DestinationAccountID int64           `json:"destination_account_id,omitempty"`
}

// GLEntry is one general-ledger line, the primitive every report sums.
// Balance follows the debit minus credit sign convention.
type GLEntry struct {
	ID          int64           `json:"id"`
	MoveID      int64           `json:"move_id"`
	MoveName    string          `json:"move_name,omitempty"`
	AccountID   int64           `json:"account_id"`
	AccountName string          `json:"account_name,omitempty"`
	PartnerID   int64           `json:"partner_id,omitempty"`
	PartnerName string          `json:"partner_name,omitempty"`
	Date        string          `json:"date,omitempty"`
	Name        string          `json:"name,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	CurrencyID  int64           `json:"currency_id,omitempty"`
	Reconciled  bool            `json:"reconciled"`
}

// Journal is an accounting journal (sale, purchase, bank, cash, general).
type Journal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Type string `json:"type"`
}

// Tax is a configured tax definition.
type Tax struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	AmountType string          `json:"amount_type"`
	TypeTaxUse string          `json:"type_tax_use"`
	Active     bool            `json:"active"`
}

// Partner is a counterparty (customer, supplier or both).
type Partner struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	VAT          string `json:"vat,omitempty"`
	IsCompany    bool   `json:"is_company"`
	CustomerRank int64  `json:"customer_rank"`
	SupplierRank int64  `json:"supplier_rank"`
}

// Currency is a currency definition.
type Currency struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
	Active bool   `json:"active"`
}

// CurrencyRate is one dated exchange rate.
type CurrencyRate struct {
	ID         int64           `json:"id"`
	CurrencyID int64           `json:"currency_id"`
	Date       string          `json:"date"`
	Rate       decimal.Decimal `json:"rate"`
}

// BankStatement is a bank statement header.
type BankStatement struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Date         string          `json:"date,omitempty"`
	JournalID    int64           `json:"journal_id,omitempty"`
	BalanceStart decimal.Decimal `json:"balance_start"`
	BalanceEnd   decimal.Decimal `json:"balance_end_real"`
	State        string          `json:"state,omitempty"`
}
