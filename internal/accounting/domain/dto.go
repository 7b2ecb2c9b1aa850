package domain

// CreateInvoiceInput carries a new invoice with nested lines. Exactly one
// of CustomerID/SupplierID must be set; whichever is present becomes the
// counterparty. MoveType defaults to out_invoice.
type CreateInvoiceInput struct {
	CustomerID  int64              `json:"customer_id,omitempty"`
	SupplierID  int64              `json:"supplier_id,omitempty"`
	MoveType    MoveType           `json:"move_type,omitempty"`
	InvoiceDate string             `json:"invoice_date,omitempty"`
	DueDate     string             `json:"due_date,omitempty"`
	JournalID   int64              `json:"journal_id,omitempty"`
	Ref         string             `json:"ref,omitempty"`
	Narration   string             `json:"narration,omitempty"`
	Lines       []InvoiceLineInput `json:"lines"`
}

// InvoiceLineInput is one invoice line. The ledger account is deliberately
// left unset so the ERP resolves its own default from product and partner
// configuration.
type InvoiceLineInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount,omitempty"`
	TaxIDs      []int64 `json:"tax_ids,omitempty"`
	ProductID   int64   `json:"product_id,omitempty"`
}

// CreatePaymentInput carries a new payment. When InvoiceIDs is non-empty
// the payment is posted and reconciled against those invoices' open
// ledger lines in the same call.
type CreatePaymentInput struct {
	PaymentType string  `json:"payment_type"`
	PartnerType string  `json:"partner_type"`
	PartnerID   int64   `json:"partner_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date,omitempty"`
	JournalID   int64   `json:"journal_id,omitempty"`
	Ref         string  `json:"ref,omitempty"`
	InvoiceIDs  []int64 `json:"invoice_ids,omitempty"`
}

// CreateAccountInput carries a new ledger account.
type CreateAccountInput struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
	Reconcile   bool   `json:"reconcile,omitempty"`
	CurrencyID  int64  `json:"currency_id,omitempty"`
}

// CreateJournalInput carries a new journal.
type CreateJournalInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Type string `json:"type"`
}

// CreateTaxInput carries a new tax definition.
type CreateTaxInput struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	AmountType string  `json:"amount_type,omitempty"`
	TypeTaxUse string  `json:"type_tax_use,omitempty"`
}

// ReconcileResult is the wrapped outcome of a best-effort bank statement
// line reconciliation: failures are reported, not raised.
type ReconcileResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
