package audit

import (
	"github.com/safee-analytics/erp-bridge/internal/audit/domain"
	"github.com/safee-analytics/erp-bridge/internal/audit/repository"
	"github.com/safee-analytics/erp-bridge/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(
		service.NewService,
		func(s domain.Service) domain.Recorder { return s },
	),
)
