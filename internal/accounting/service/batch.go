package service

import (
	"context"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"go.uber.org/zap"
)

// Batch orchestration: strictly sequential per-item processing with
// full-list completion. A failing item is captured and the batch moves
// on; the result always partitions the entire input.

const batchFallbackError = "operation failed"

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return batchFallbackError
	}
	return err.Error()
}

func (s *Service) batchByID(ctx context.Context, action string, ids []int64, apply func(context.Context, int64) error) domain.BatchResult {
	result := domain.BatchResult{
		Succeeded: []domain.BatchSuccess{},
		Failed:    []domain.BatchFailure{},
	}
	for _, id := range ids {
		if err := apply(ctx, id); err != nil {
			result.Failed = append(result.Failed, domain.BatchFailure{ID: id, Error: errorMessage(err)})
			continue
		}
		result.Succeeded = append(result.Succeeded, domain.BatchSuccess{ID: id})
	}

	s.log.Info("batch completed",
		zap.String("action", action),
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)),
	)
	s.metrics.RecordBatch(ctx, action, len(result.Succeeded), len(result.Failed))
	s.emitAudit(ctx, "batch."+action, "batch", 0, map[string]any{
		"total":     len(ids),
		"succeeded": len(result.Succeeded),
		"failed":    len(result.Failed),
	})
	return result
}

// BatchValidateInvoices posts each invoice in turn.
func (s *Service) BatchValidateInvoices(ctx context.Context, ids []int64) domain.BatchResult {
	return s.batchByID(ctx, "validate_invoices", ids, s.PostInvoice)
}

// BatchCancelInvoices cancels each invoice in turn.
func (s *Service) BatchCancelInvoices(ctx context.Context, ids []int64) domain.BatchResult {
	return s.batchByID(ctx, "cancel_invoices", ids, s.CancelInvoice)
}

// BatchConfirmPayments posts each payment in turn.
func (s *Service) BatchConfirmPayments(ctx context.Context, ids []int64) domain.BatchResult {
	return s.batchByID(ctx, "confirm_payments", ids, s.ConfirmPayment)
}

// BatchCreateInvoices creates each invoice in turn, keyed by input index.
func (s *Service) BatchCreateInvoices(ctx context.Context, inputs []domain.CreateInvoiceInput) domain.BatchResult {
	result := domain.BatchResult{
		Succeeded: []domain.BatchSuccess{},
		Failed:    []domain.BatchFailure{},
	}
	for index, input := range inputs {
		id, err := s.CreateInvoice(ctx, input)
		if err != nil {
			result.Failed = append(result.Failed, domain.BatchFailure{Index: index, Error: errorMessage(err)})
			continue
		}
		result.Succeeded = append(result.Succeeded, domain.BatchSuccess{Index: index, ID: id})
	}

	s.log.Info("batch completed",
		zap.String("action", "create_invoices"),
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)),
	)
	s.metrics.RecordBatch(ctx, "create_invoices", len(result.Succeeded), len(result.Failed))
	s.emitAudit(ctx, "batch.create_invoices", "batch", 0, map[string]any{
		"total":     len(inputs),
		"succeeded": len(result.Succeeded),
		"failed":    len(result.Failed),
	})
	return result
}

// BatchCreatePayments creates each payment in turn, keyed by input index.
// A payment that was created but failed during posting or reconciliation
// counts as failed; its partial remote state is reported in the error.
func (s *Service) BatchCreatePayments(ctx context.Context, inputs []domain.CreatePaymentInput) domain.BatchResult {
	result := domain.BatchResult{
		Succeeded: []domain.BatchSuccess{},
		Failed:    []domain.BatchFailure{},
	}
	for index, input := range inputs {
		id, err := s.CreatePayment(ctx, input)
		if err != nil {
			result.Failed = append(result.Failed, domain.BatchFailure{Index: index, ID: id, Error: errorMessage(err)})
			continue
		}
		result.Succeeded = append(result.Succeeded, domain.BatchSuccess{Index: index, ID: id})
	}

	s.log.Info("batch completed",
		zap.String("action", "create_payments"),
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)),
	)
	s.metrics.RecordBatch(ctx, "create_payments", len(result.Succeeded), len(result.Failed))
	s.emitAudit(ctx, "batch.create_payments", "batch", 0, map[string]any{
		"total":     len(inputs),
		"succeeded": len(result.Succeeded),
		"failed":    len(result.Failed),
	})
	return result
}
