package config

import (
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(
		Load,
		fx.Annotate(NewERPConfigHolder, fx.As(new(odoo.ConfigSource))),
	),
)
