package service

import (
	"context"
	"fmt"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"go.uber.org/zap"
)

var invoiceFields = []string{
	"id", "name", "move_type", "state", "payment_state", "partner_id",
	"invoice_date", "invoice_date_due", "ref", "currency_id",
	"amount_untaxed", "amount_tax", "amount_total", "amount_residual",
}

// invoiceMoveTypes restricts account.move queries to invoice-like moves.
var invoiceMoveTypes = []string{
	string(domain.MoveTypeCustomerInvoice),
	string(domain.MoveTypeCustomerRefund),
	string(domain.MoveTypeVendorBill),
	string(domain.MoveTypeVendorRefund),
}

func invoiceDomain(filter domain.InvoiceFilter) odoo.Domain {
	parts := []odoo.Domain{}
	if filter.MoveType != "" {
		parts = append(parts, odoo.Eq("move_type", string(filter.MoveType)))
	} else {
		values := make([]any, 0, len(invoiceMoveTypes))
		for _, t := range invoiceMoveTypes {
			values = append(values, t)
		}
		parts = append(parts, odoo.Where("move_type", odoo.OpIn, values))
	}
	if filter.State != "" {
		parts = append(parts, odoo.Eq("state", string(filter.State)))
	}
	if filter.PaymentState != "" {
		parts = append(parts, odoo.Eq("payment_state", string(filter.PaymentState)))
	}
	if filter.PartnerID != 0 {
		parts = append(parts, odoo.Eq("partner_id", filter.PartnerID))
	}
	if filter.DateFrom != "" {
		parts = append(parts, odoo.Gte("invoice_date", filter.DateFrom))
	}
	if filter.DateTo != "" {
		parts = append(parts, odoo.Lte("invoice_date", filter.DateTo))
	}
	return odoo.And(parts...)
}

// ListInvoices returns invoices newest first.
func (s *Service) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	opts := &odoo.SearchOptions{Order: "invoice_date desc"}
	if filter.Limit > 0 {
		opts.Limit = filter.Limit
	}

	records, err := s.rpc.SearchRead(ctx, modelMove, invoiceDomain(filter), invoiceFields, opts)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	invoices := make([]domain.Invoice, 0, len(records))
	for _, r := range records {
		invoices = append(invoices, mapInvoice(r))
	}
	return invoices, nil
}

// GetInvoice reads one invoice by ID.
func (s *Service) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	records, err := s.rpc.Read(ctx, modelMove, []int64{id}, invoiceFields)
	if err != nil {
		return nil, fmt.Errorf("read invoice %d: %w", id, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	invoice := mapInvoice(records[0])
	return &invoice, nil
}

// CreateInvoice builds a draft move with nested line tuples. The one local
// validation happens before any RPC: a counterparty must be present.
func (s *Service) CreateInvoice(ctx context.Context, in domain.CreateInvoiceInput) (int64, error) {
	partnerID := in.CustomerID
	if partnerID == 0 {
		partnerID = in.SupplierID
	}
	if partnerID == 0 {
		return 0, domain.ErrMissingCounterparty
	}

	moveType := in.MoveType
	if moveType == "" {
		moveType = domain.MoveTypeCustomerInvoice
	}

	lines := make([]any, 0, len(in.Lines))
	for _, line := range in.Lines {
		fields := map[string]any{
			"name":       line.Description,
			"quantity":   line.Quantity,
			"price_unit": line.UnitPrice,
		}
		if line.Discount != 0 {
			fields["discount"] = line.Discount
		}
		if line.ProductID != 0 {
			fields["product_id"] = line.ProductID
		}
		if len(line.TaxIDs) > 0 {
			fields["tax_ids"] = []any{odoo.CommandSet(line.TaxIDs)}
		}
		// account_id stays unset so the ERP applies its own default
		// resolution from product and partner configuration.
		lines = append(lines, odoo.CommandCreate(fields))
	}

	values := map[string]any{
		"move_type":        string(moveType),
		"partner_id":       partnerID,
		"invoice_line_ids": lines,
	}
	if in.InvoiceDate != "" {
		values["invoice_date"] = in.InvoiceDate
	}
	if in.DueDate != "" {
		values["invoice_date_due"] = in.DueDate
	}
	if in.JournalID != 0 {
		values["journal_id"] = in.JournalID
	}
	if in.Ref != "" {
		values["ref"] = in.Ref
	}
	if in.Narration != "" {
		values["narration"] = in.Narration
	}

	id, err := s.rpc.Create(ctx, modelMove, values)
	if err != nil {
		return 0, fmt.Errorf("create invoice: %w", err)
	}

	s.log.Info("invoice created",
		zap.Int64("invoice_id", id),
		zap.String("move_type", string(moveType)),
		zap.Int("lines", len(in.Lines)),
	)
	s.emitAudit(ctx, "invoice.created", "invoice", id, map[string]any{
		"move_type":  string(moveType),
		"partner_id": partnerID,
		"lines":      len(in.Lines),
	})
	return id, nil
}

// PostInvoice transitions a draft invoice to posted.
func (s *Service) PostInvoice(ctx context.Context, id int64) error {
	if _, err := s.rpc.ExecuteKw(ctx, modelMove, "action_post", []any{[]any{id}}, nil); err != nil {
		return fmt.Errorf("post invoice %d: %w", id, err)
	}
	s.emitAudit(ctx, "invoice.posted", "invoice", id, nil)
	return nil
}

// CancelInvoice transitions an invoice to cancelled.
func (s *Service) CancelInvoice(ctx context.Context, id int64) error {
	if _, err := s.rpc.ExecuteKw(ctx, modelMove, "button_cancel", []any{[]any{id}}, nil); err != nil {
		return fmt.Errorf("cancel invoice %d: %w", id, err)
	}
	s.emitAudit(ctx, "invoice.cancelled", "invoice", id, nil)
	return nil
}

// ResetInvoiceToDraft moves a posted or cancelled invoice back to draft.
func (s *Service) ResetInvoiceToDraft(ctx context.Context, id int64) error {
	if _, err := s.rpc.ExecuteKw(ctx, modelMove, "button_draft", []any{[]any{id}}, nil); err != nil {
		return fmt.Errorf("reset invoice %d to draft: %w", id, err)
	}
	s.emitAudit(ctx, "invoice.reset_to_draft", "invoice", id, nil)
	return nil
}
