package odoo

import "go.uber.org/fx"

var Module = fx.Module("odoo",
	fx.Provide(
		fx.Annotate(NewClient, fx.As(new(RPC))),
	),
)
