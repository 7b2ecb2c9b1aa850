package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	accountingdomain "github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	auditdomain "github.com/safee-analytics/erp-bridge/internal/audit/domain"
	"github.com/safee-analytics/erp-bridge/internal/config"
	"github.com/safee-analytics/erp-bridge/internal/idempotency"
	"github.com/safee-analytics/erp-bridge/internal/observability"
	obsmiddleware "github.com/safee-analytics/erp-bridge/internal/observability/logger"
	obsmetrics "github.com/safee-analytics/erp-bridge/internal/observability/metrics"
	obstracing "github.com/safee-analytics/erp-bridge/internal/observability/tracing"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	accountingSvc accountingdomain.Service
	auditSvc      auditdomain.Service
	locker        *idempotency.Locker
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	AccountingSvc accountingdomain.Service
	AuditSvc      auditdomain.Service `optional:"true"`
	Locker        *idempotency.Locker `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		accountingSvc: p.AccountingSvc,
		auditSvc:      p.AuditSvc,
		locker:        p.Locker,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	accounts := api.Group("/accounts")
	accounts.GET("", s.ListAccounts)
	accounts.GET("/search", s.SearchAccounts)
	accounts.GET("/:id", s.GetAccount)
	accounts.POST("", s.CreateAccount)

	invoices := api.Group("/invoices")
	invoices.GET("", s.ListInvoices)
	invoices.GET("/:id", s.GetInvoice)
	invoices.POST("", s.CreateInvoice)
	invoices.POST("/:id/post", s.PostInvoice)
	invoices.POST("/:id/cancel", s.CancelInvoice)
	invoices.POST("/:id/reset-to-draft", s.ResetInvoiceToDraft)

	payments := api.Group("/payments")
	payments.GET("", s.ListPayments)
	payments.GET("/:id", s.GetPayment)
	payments.POST("", s.CreatePayment)
	payments.POST("/:id/confirm", s.ConfirmPayment)

	api.GET("/journals", s.ListJournals)
	api.POST("/journals", s.CreateJournal)
	api.GET("/taxes", s.ListTaxes)
	api.POST("/taxes", s.CreateTax)
	api.GET("/partners", s.ListPartners)
	api.GET("/currencies", s.ListCurrencies)
	api.GET("/currency-rates", s.ListCurrencyRates)

	api.GET("/ledger/entries", s.ListGLEntries)

	api.GET("/bank-statements", s.ListBankStatements)
	api.POST("/bank-statements/lines/:id/reconcile", s.ReconcileBankStatementLine)

	reports := api.Group("/reports")
	reports.GET("/trial-balance", s.TrialBalance)
	reports.GET("/partner-ledger", s.PartnerLedger)
	reports.GET("/aged-receivables", s.AgedReceivables)
	reports.GET("/aged-payables", s.AgedPayables)
	reports.GET("/profit-loss", s.ProfitLoss)

	batch := api.Group("/batch")
	batch.POST("/invoices/validate", s.BatchValidateInvoices)
	batch.POST("/invoices/cancel", s.BatchCancelInvoices)
	batch.POST("/invoices/create", s.BatchCreateInvoices)
	batch.POST("/payments/create", s.BatchCreatePayments)
	batch.POST("/payments/confirm", s.BatchConfirmPayments)

	api.GET("/audit-logs", s.ListAuditLogs)
}
