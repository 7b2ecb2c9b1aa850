package service

import (
	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"github.com/shopspring/decimal"
)

// Record-to-model mapping. Many2one fields go through the record's Ref
// accessor so tuple and bare-ID shapes resolve identically.

func money(r odoo.Record, field string) decimal.Decimal {
	return decimal.NewFromFloat(r.Float(field))
}

func mapAccount(r odoo.Record) domain.Account {
	account := domain.Account{
		ID:          r.Int("id"),
		Code:        r.Str("code"),
		Name:        r.Str("name"),
		AccountType: r.Str("account_type"),
		Active:      r.Bool("active"),
		Reconcile:   r.Bool("reconcile"),
		Balance:     money(r, "current_balance"),
	}
	if ref, ok := r.Ref("currency_id"); ok {
		account.CurrencyID = ref.ID
		account.Currency = ref.Label
	}
	return account
}

func mapInvoice(r odoo.Record) domain.Invoice {
	invoice := domain.Invoice{
		ID:             r.Int("id"),
		Name:           r.Str("name"),
		MoveType:       domain.MoveType(r.Str("move_type")),
		State:          domain.MoveState(r.Str("state")),
		PaymentState:   domain.PaymentState(r.Str("payment_state")),
		InvoiceDate:    r.Str("invoice_date"),
		InvoiceDateDue: r.Str("invoice_date_due"),
		Ref:            r.Str("ref"),
		AmountUntaxed:  money(r, "amount_untaxed"),
		AmountTax:      money(r, "amount_tax"),
		AmountTotal:    money(r, "amount_total"),
		AmountResidual: money(r, "amount_residual"),
	}
	if ref, ok := r.Ref("partner_id"); ok {
		invoice.PartnerID = ref.ID
		invoice.PartnerName = ref.Label
	}
	if ref, ok := r.Ref("currency_id"); ok {
		invoice.CurrencyID = ref.ID
	}
	return invoice
}

func mapPayment(r odoo.Record) domain.Payment {
	payment := domain.Payment{
		ID:          r.Int("id"),
		Name:        r.Str("name"),
		PaymentType: r.Str("payment_type"),
		PartnerType: r.Str("partner_type"),
		Amount:      money(r, "amount"),
		Date:        r.Str("date"),
		State:       r.Str("state"),
	}
	if ref, ok := r.Ref("partner_id"); ok {
		payment.PartnerID = ref.ID
		payment.PartnerName = ref.Label
	}
	if ref, ok := r.Ref("journal_id"); ok {
		payment.JournalID = ref.ID
	}
	if ref, ok := r.Ref("move_id"); ok {
		payment.MoveID = ref.ID
	}
	if ref, ok := r.Ref("destination_account_id"); ok {
		payment.DestinationAccountID = ref.ID
	}
	return payment
}

func mapGLEntry(r odoo.Record) domain.GLEntry {
	entry := domain.GLEntry{
		ID:         r.Int("id"),
		MoveName:   r.Str("move_name"),
		Date:       r.Str("date"),
		Name:       r.Str("name"),
		Debit:      money(r, "debit"),
		Credit:     money(r, "credit"),
		Balance:    money(r, "balance"),
		Reconciled: r.Bool("reconciled"),
	}
	if ref, ok := r.Ref("move_id"); ok {
		entry.MoveID = ref.ID
	}
	if ref, ok := r.Ref("account_id"); ok {
		entry.AccountID = ref.ID
		entry.AccountName = ref.Label
	}
	if ref, ok := r.Ref("partner_id"); ok {
		entry.PartnerID = ref.ID
		entry.PartnerName = ref.Label
	}
	if ref, ok := r.Ref("currency_id"); ok {
		entry.CurrencyID = ref.ID
	}
	return entry
}

func mapJournal(r odoo.Record) domain.Journal {
	return domain.Journal{
		ID:   r.Int("id"),
		Name: r.Str("name"),
		Code: r.Str("code"),
		Type: r.Str("type"),
	}
}

func mapTax(r odoo.Record) domain.Tax {
	return domain.Tax{
		ID:         r.Int("id"),
		Name:       r.Str("name"),
		Amount:     money(r, "amount"),
		AmountType: r.Str("amount_type"),
		TypeTaxUse: r.Str("type_tax_use"),
		Active:     r.Bool("active"),
	}
}

func mapPartner(r odoo.Record) domain.Partner {
	return domain.Partner{
		ID:           r.Int("id"),
		Name:         r.Str("name"),
		Email:        r.Str("email"),
		Phone:        r.Str("phone"),
		VAT:          r.Str("vat"),
		IsCompany:    r.Bool("is_company"),
		CustomerRank: r.Int("customer_rank"),
		SupplierRank: r.Int("supplier_rank"),
	}
}

func mapCurrency(r odoo.Record) domain.Currency {
	return domain.Currency{
		ID:     r.Int("id"),
		Name:   r.Str("name"),
		Symbol: r.Str("symbol"),
		Active: r.Bool("active"),
	}
}

func mapCurrencyRate(r odoo.Record) domain.CurrencyRate {
	rate := domain.CurrencyRate{
		ID:   r.Int("id"),
		Date: r.Str("name"),
		Rate: money(r, "rate"),
	}
	if ref, ok := r.Ref("currency_id"); ok {
		rate.CurrencyID = ref.ID
	}
	return rate
}

func mapBankStatement(r odoo.Record) domain.BankStatement {
	statement := domain.BankStatement{
		ID:           r.Int("id"),
		Name:         r.Str("name"),
		Date:         r.Str("date"),
		BalanceStart: money(r, "balance_start"),
		BalanceEnd:   money(r, "balance_end_real"),
		State:        r.Str("state"),
	}
	if ref, ok := r.Ref("journal_id"); ok {
		statement.JournalID = ref.ID
	}
	return statement
}
