// Package service implements the accounting surface by orchestrating the
// ERP's generic object RPC. The service is stateless: every aggregation
// builds a fresh local map per invocation and discards it on return.
package service

import (
	"context"

	auditdomain "github.com/safee-analytics/erp-bridge/internal/audit/domain"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	obsmetrics "github.com/safee-analytics/erp-bridge/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ERP model names consumed by this service.
const (
	modelAccount           = "account.account"
	modelMove              = "account.move"
	modelMoveLine          = "account.move.line"
	modelPayment           = "account.payment"
	modelJournal           = "account.journal"
	modelTax               = "account.tax"
	modelPartner           = "res.partner"
	modelCurrency          = "res.currency"
	modelCurrencyRate      = "res.currency.rate"
	modelBankStatement     = "account.bank.statement"
	modelBankStatementLine = "account.bank.statement.line"
)

type Params struct {
	fx.In

	RPC     odoo.RPC
	Log     *zap.Logger
	Metrics *obsmetrics.Metrics  `optional:"true"`
	Audit   auditdomain.Recorder `optional:"true"`
}

type Service struct {
	rpc     odoo.RPC
	log     *zap.Logger
	metrics *obsmetrics.Metrics
	audit   auditdomain.Recorder
}

func NewService(p Params) *Service {
	return &Service{
		rpc:     p.RPC,
		log:     p.Log.Named("accounting.service"),
		metrics: p.Metrics,
		audit:   p.Audit,
	}
}

// emitAudit records a mutating gateway operation. Audit write failures are
// logged and swallowed; they never fail the operation itself.
func (s *Service) emitAudit(ctx context.Context, action, targetType string, targetID int64, metadata map[string]any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, action, targetType, targetID, metadata); err != nil {
		s.log.Warn("failed to write audit record",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
