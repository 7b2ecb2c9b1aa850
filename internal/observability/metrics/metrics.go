package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	rpcCalls        metric.Int64Counter
	reconciliations metric.Int64Counter
	reportBuilds    metric.Int64Counter
	batchItems      metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "erp-bridge"
	}
	meter := provider.Meter(name)

	rpcCalls, err := meter.Int64Counter("erpbridge_rpc_calls_total")
	if err != nil {
		return nil, err
	}
	reconciliations, err := meter.Int64Counter("erpbridge_reconciliations_total")
	if err != nil {
		return nil, err
	}
	reportBuilds, err := meter.Int64Counter("erpbridge_report_builds_total")
	if err != nil {
		return nil, err
	}
	batchItems, err := meter.Int64Counter("erpbridge_batch_items_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		rpcCalls:        rpcCalls,
		reconciliations: reconciliations,
		reportBuilds:    reportBuilds,
		batchItems:      batchItems,
	}, nil
}

// RecordRPCCall increments per-model RPC call counts.
func (m *Metrics) RecordRPCCall(ctx context.Context, model, method string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("erp_model", strings.TrimSpace(model)),
		attribute.String("erp_method", strings.TrimSpace(method)),
	)
	m.rpcCalls.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordReconciliation increments reconciliation counts by kind.
func (m *Metrics) RecordReconciliation(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("kind", strings.TrimSpace(kind)))
	m.reconciliations.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordReportBuild increments report computation counts.
func (m *Metrics) RecordReportBuild(ctx context.Context, report string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("report", strings.TrimSpace(report)))
	m.reportBuilds.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordBatch adds processed item counts for one batch run.
func (m *Metrics) RecordBatch(ctx context.Context, action string, succeeded, failed int) {
	if m == nil {
		return
	}
	m.batchItems.Add(ctx, int64(succeeded), metric.WithAttributes(FilterAttributes(
		attribute.String("action", strings.TrimSpace(action)),
		attribute.String("outcome", "success"),
	)...))
	m.batchItems.Add(ctx, int64(failed), metric.WithAttributes(FilterAttributes(
		attribute.String("action", strings.TrimSpace(action)),
		attribute.String("outcome", "failure"),
	)...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"erp_model":   {},
	"erp_method":  {},
	"kind":        {},
	"report":      {},
	"action":      {},
	"outcome":     {},
	"endpoint":    {},
	"status_code": {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
