package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/safee-analytics/erp-bridge/internal/accounting"
	"github.com/safee-analytics/erp-bridge/internal/audit"
	"github.com/safee-analytics/erp-bridge/internal/config"
	"github.com/safee-analytics/erp-bridge/internal/idempotency"
	"github.com/safee-analytics/erp-bridge/internal/observability"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"github.com/safee-analytics/erp-bridge/internal/server"
	"github.com/safee-analytics/erp-bridge/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		odoo.Module,
		audit.Module,
		idempotency.Module,
		accounting.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
