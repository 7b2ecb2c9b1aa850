package service

import (
	"context"
	"fmt"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"go.uber.org/zap"
)

var paymentFields = []string{
	"id", "name", "payment_type", "partner_type", "partner_id",
	"amount", "date", "state", "journal_id", "move_id", "destination_account_id",
}

// ListPayments returns payments newest first.
func (s *Service) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	var parts []odoo.Domain
	if filter.PaymentType != "" {
		parts = append(parts, odoo.Eq("payment_type", filter.PaymentType))
	}
	if filter.PartnerType != "" {
		parts = append(parts, odoo.Eq("partner_type", filter.PartnerType))
	}
	if filter.State != "" {
		parts = append(parts, odoo.Eq("state", filter.State))
	}
	if filter.PartnerID != 0 {
		parts = append(parts, odoo.Eq("partner_id", filter.PartnerID))
	}
	if filter.DateFrom != "" {
		parts = append(parts, odoo.Gte("date", filter.DateFrom))
	}
	if filter.DateTo != "" {
		parts = append(parts, odoo.Lte("date", filter.DateTo))
	}

	opts := &odoo.SearchOptions{Order: "date desc"}
	if filter.Limit > 0 {
		opts.Limit = filter.Limit
	}

	records, err := s.rpc.SearchRead(ctx, modelPayment, odoo.And(parts...), paymentFields, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	payments := make([]domain.Payment, 0, len(records))
	for _, r := range records {
		payments = append(payments, mapPayment(r))
	}
	return payments, nil
}

// GetPayment reads one payment by ID.
func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	records, err := s.rpc.Read(ctx, modelPayment, []int64{id}, paymentFields)
	if err != nil {
		return nil, fmt.Errorf("read payment %d: %w", id, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	payment := mapPayment(records[0])
	return &payment, nil
}

// CreatePayment creates a draft payment. When invoice IDs are supplied the
// payment is posted first (posting generates its journal entry and
// destination account) and then reconciled against those invoices.
func (s *Service) CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (int64, error) {
	values := map[string]any{
		"payment_type": in.PaymentType,
		"partner_type": in.PartnerType,
		"partner_id":   in.PartnerID,
		"amount":       in.Amount,
	}
	if in.Date != "" {
		values["date"] = in.Date
	}
	if in.JournalID != 0 {
		values["journal_id"] = in.JournalID
	}
	if in.Ref != "" {
		values["ref"] = in.Ref
	}

	id, err := s.rpc.Create(ctx, modelPayment, values)
	if err != nil {
		return 0, fmt.Errorf("create payment: %w", err)
	}

	s.emitAudit(ctx, "payment.created", "payment", id, map[string]any{
		"payment_type": in.PaymentType,
		"partner_id":   in.PartnerID,
		"amount":       in.Amount,
	})

	if len(in.InvoiceIDs) > 0 {
		if _, err := s.rpc.ExecuteKw(ctx, modelPayment, "action_post", []any{[]any{id}}, nil); err != nil {
			return id, fmt.Errorf("post payment %d: %w", id, err)
		}
		if err := s.reconcilePaymentWithInvoices(ctx, id, in.InvoiceIDs); err != nil {
			return id, err
		}
	}

	return id, nil
}

// ConfirmPayment posts a draft payment.
func (s *Service) ConfirmPayment(ctx context.Context, id int64) error {
	if _, err := s.rpc.ExecuteKw(ctx, modelPayment, "action_post", []any{[]any{id}}, nil); err != nil {
		return fmt.Errorf("confirm payment %d: %w", id, err)
	}
	s.emitAudit(ctx, "payment.confirmed", "payment", id, nil)
	return nil
}

// reconcilePaymentWithInvoices matches the posted payment's ledger lines
// against the invoices' open lines on the same destination account.
// Both sides must exist before the single atomic reconcile call is made;
// partial states are rejected rather than silently reconciling a subset.
func (s *Service) reconcilePaymentWithInvoices(ctx context.Context, paymentID int64, invoiceIDs []int64) error {
	payment, err := s.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.MoveID == 0 || payment.DestinationAccountID == 0 {
		return domain.ErrPaymentMoveMissing
	}

	lineFields := []string{"id"}

	paymentLines, err := s.rpc.SearchRead(ctx, modelMoveLine, odoo.And(
		odoo.Eq("move_id", payment.MoveID),
		odoo.Eq("account_id", payment.DestinationAccountID),
	), lineFields, nil)
	if err != nil {
		return fmt.Errorf("fetch payment lines: %w", err)
	}
	if len(paymentLines) == 0 {
		return domain.ErrNoPaymentLines
	}

	invoiceLines, err := s.rpc.SearchRead(ctx, modelMoveLine, odoo.And(
		odoo.In("move_id", invoiceIDs),
		odoo.Eq("account_id", payment.DestinationAccountID),
		odoo.Eq("reconciled", false),
	), lineFields, nil)
	if err != nil {
		return fmt.Errorf("fetch invoice lines: %w", err)
	}
	if len(invoiceLines) == 0 {
		return domain.ErrNoInvoiceLines
	}

	lineIDs := make([]any, 0, len(paymentLines)+len(invoiceLines))
	for _, r := range paymentLines {
		lineIDs = append(lineIDs, r.Int("id"))
	}
	for _, r := range invoiceLines {
		lineIDs = append(lineIDs, r.Int("id"))
	}

	// One reconcile call over both sides; atomicity is the ERP's.
	if _, err := s.rpc.ExecuteKw(ctx, modelMoveLine, "reconcile", []any{lineIDs}, nil); err != nil {
		return fmt.Errorf("reconcile payment %d: %w", paymentID, err)
	}

	s.log.Info("payment reconciled",
		zap.Int64("payment_id", paymentID),
		zap.Int("payment_lines", len(paymentLines)),
		zap.Int("invoice_lines", len(invoiceLines)),
	)
	s.metrics.RecordReconciliation(ctx, "payment_invoice")
	s.emitAudit(ctx, "payment.reconciled", "payment", paymentID, map[string]any{
		"invoice_ids":   invoiceIDs,
		"payment_lines": len(paymentLines),
		"invoice_lines": len(invoiceLines),
	})
	return nil
}
