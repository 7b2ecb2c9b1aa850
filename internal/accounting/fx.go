package accounting

import (
	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/safee-analytics/erp-bridge/internal/accounting/service"
	"go.uber.org/fx"
)

var Module = fx.Module("accounting.service",
	fx.Provide(
		fx.Annotate(service.NewService, fx.As(new(domain.Service))),
	),
)
