package domain

// Filter objects: absent optional fields emit no condition at all, they
// are never coerced to a match-all triplet. The two exceptions are
// documented on AccountFilter.OnlyActive and in Service.ListTaxes.

// AccountFilter narrows account queries. OnlyActive is tri-state: nil
// defaults to active-only; an explicit false disables the filter.
type AccountFilter struct {
	OnlyActive  *bool  `json:"only_active,omitempty"`
	AccountType string `json:"account_type,omitempty"`
}

// InvoiceFilter narrows invoice queries.
type InvoiceFilter struct {
	MoveType     MoveType     `json:"move_type,omitempty"`
	State        MoveState    `json:"state,omitempty"`
	PaymentState PaymentState `json:"payment_state,omitempty"`
	PartnerID    int64        `json:"partner_id,omitempty"`
	DateFrom     string       `json:"date_from,omitempty"`
	DateTo       string       `json:"date_to,omitempty"`
	Limit        int          `json:"limit,omitempty"`
}

// PaymentFilter narrows payment queries.
type PaymentFilter struct {
	PaymentType string `json:"payment_type,omitempty"`
	PartnerType string `json:"partner_type,omitempty"`
	State       string `json:"state,omitempty"`
	PartnerID   int64  `json:"partner_id,omitempty"`
	DateFrom    string `json:"date_from,omitempty"`
	DateTo      string `json:"date_to,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

// GLEntryFilter narrows general-ledger line queries.
type GLEntryFilter struct {
	AccountID  int64  `json:"account_id,omitempty"`
	AccountIDs []int64 `json:"account_ids,omitempty"`
	PartnerID  int64  `json:"partner_id,omitempty"`
	MoveID     int64  `json:"move_id,omitempty"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
	Reconciled *bool  `json:"reconciled,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Order      string `json:"-"`
}

// JournalFilter narrows journal queries.
type JournalFilter struct {
	Type string `json:"type,omitempty"`
}

// TaxFilter narrows tax queries. Inactive taxes are never returned.
type TaxFilter struct {
	TypeTaxUse string `json:"type_tax_use,omitempty"`
}

// PartnerFilter narrows partner queries.
type PartnerFilter struct {
	Query        string `json:"query,omitempty"`
	CustomersOnly bool  `json:"customers_only,omitempty"`
	SuppliersOnly bool  `json:"suppliers_only,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// CurrencyRateFilter narrows exchange-rate queries.
type CurrencyRateFilter struct {
	CurrencyID int64  `json:"currency_id,omitempty"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
}

// BankStatementFilter narrows bank statement queries.
type BankStatementFilter struct {
	JournalID int64  `json:"journal_id,omitempty"`
	State     string `json:"state,omitempty"`
	DateFrom  string `json:"date_from,omitempty"`
	DateTo    string `json:"date_to,omitempty"`
}
