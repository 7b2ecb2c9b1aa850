package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	obsmetrics "github.com/safee-analytics/erp-bridge/internal/observability/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RPC is the generic object-model surface the accounting service consumes.
// Implementations perform one remote round-trip per call; nothing is cached.
type RPC interface {
	ExecuteKw(ctx context.Context, model, method string, args []any, kwargs map[string]any) (any, error)
	SearchRead(ctx context.Context, model string, domain Domain, fields []string, opts *SearchOptions) ([]Record, error)
	Read(ctx context.Context, model string, ids []int64, fields []string) ([]Record, error)
	Create(ctx context.Context, model string, values map[string]any) (int64, error)
}

// SearchOptions narrows a search_read call.
type SearchOptions struct {
	Limit  int
	Offset int
	Order  string
}

// Config describes one ERP connection profile.
type Config struct {
	URL      string
	Database string
	Username string
	Password string
	Timeout  time.Duration
}

// ConfigSource yields the current connection profile. Implemented by the
// hot-reloadable holder in internal/config so credential rotation does not
// require a restart.
type ConfigSource interface {
	ERP() Config
}

// RPCError is a fault returned by the ERP inside a 200 response.
type RPCError struct {
	Code    int
	Message string
	Detail  string
}

func (e *RPCError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("erp rpc error %d: %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("erp rpc error %d: %s", e.Code, e.Message)
}

var ErrAuthenticationFailed = errors.New("erp authentication failed")

// Client speaks JSON-RPC 2.0 to the ERP's /jsonrpc endpoint.
type Client struct {
	source  ConfigSource
	httpc   *http.Client
	log     *zap.Logger
	metrics *obsmetrics.RPCMetrics
	tracer  trace.Tracer

	mu  sync.Mutex
	uid int64
	seq int64
}

// NewClient builds an RPC client over the given connection source.
// metrics may be nil in tests.
func NewClient(source ConfigSource, log *zap.Logger, metrics *obsmetrics.RPCMetrics) *Client {
	timeout := source.ERP().Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		source:  source,
		httpc:   &http.Client{Timeout: timeout},
		log:     log.Named("odoo.client"),
		metrics: metrics,
		tracer:  otel.Tracer("erp-bridge/odoo"),
	}
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcFault       `json:"error"`
}

type rpcFault struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Data    *rpcData `json:"data"`
}

type rpcData struct {
	Message string `json:"message"`
}

// ExecuteKw invokes an arbitrary model method.
func (c *Client) ExecuteKw(ctx context.Context, model, method string, args []any, kwargs map[string]any) (any, error) {
	var out any
	if err := c.object(ctx, model, method, args, kwargs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchRead filters and reads records in one round-trip.
func (c *Client) SearchRead(ctx context.Context, model string, domain Domain, fields []string, opts *SearchOptions) ([]Record, error) {
	kwargs := map[string]any{"fields": fields}
	if opts != nil {
		if opts.Limit > 0 {
			kwargs["limit"] = opts.Limit
		}
		if opts.Offset > 0 {
			kwargs["offset"] = opts.Offset
		}
		if strings.TrimSpace(opts.Order) != "" {
			kwargs["order"] = opts.Order
		}
	}

	var records []Record
	if err := c.object(ctx, model, "search_read", []any{domain.Wire()}, kwargs, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Read fetches the given fields for explicit record IDs.
func (c *Client) Read(ctx context.Context, model string, ids []int64, fields []string) ([]Record, error) {
	idArgs := make([]any, 0, len(ids))
	for _, id := range ids {
		idArgs = append(idArgs, id)
	}

	var records []Record
	if err := c.object(ctx, model, "read", []any{idArgs}, map[string]any{"fields": fields}, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts one record and returns its ID.
func (c *Client) Create(ctx context.Context, model string, values map[string]any) (int64, error) {
	var id int64
	if err := c.object(ctx, model, "create", []any{values}, nil, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// object wraps an execute_kw call with authentication, tracing and metrics.
func (c *Client) object(ctx context.Context, model, method string, args []any, kwargs map[string]any, out any) error {
	cfg := c.source.ERP()

	uid, err := c.authenticate(ctx, cfg)
	if err != nil {
		return err
	}

	ctx, span := c.tracer.Start(ctx, "odoo.rpc",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("erp.model", model),
			attribute.String("erp.method", method),
		),
	)
	defer span.End()

	callArgs := []any{cfg.Database, uid, cfg.Password, model, method, args}
	if kwargs != nil {
		callArgs = append(callArgs, kwargs)
	}

	start := time.Now()
	raw, err := c.call(ctx, cfg, "object", "execute_kw", callArgs)
	c.metrics.ObserveCall(model, method, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rpc failed")
		c.log.Warn("rpc call failed",
			zap.String("model", model),
			zap.String("method", method),
			zap.Error(err),
		)
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s.%s result: %w", model, method, err)
	}
	return nil
}

// authenticate resolves and caches the session uid.
func (c *Client) authenticate(ctx context.Context, cfg Config) (int64, error) {
	c.mu.Lock()
	uid := c.uid
	c.mu.Unlock()
	if uid != 0 {
		return uid, nil
	}

	raw, err := c.call(ctx, cfg, "common", "authenticate", []any{cfg.Database, cfg.Username, cfg.Password, map[string]any{}})
	if err != nil {
		return 0, err
	}

	// A wrong login yields false instead of a fault.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("decode authenticate result: %w", err)
	}
	ref, ok := ParseRef(parsed)
	if !ok || ref.ID == 0 {
		return 0, ErrAuthenticationFailed
	}

	c.mu.Lock()
	c.uid = ref.ID
	c.mu.Unlock()

	c.log.Info("authenticated against erp",
		zap.String("database", cfg.Database),
		zap.Int64("uid", ref.ID),
	)
	return ref.ID, nil
}

// call performs one JSON-RPC exchange.
func (c *Client) call(ctx context.Context, cfg Config, service, method string, args []any) (json.RawMessage, error) {
	c.mu.Lock()
	c.seq++
	id := c.seq
	c.mu.Unlock()

	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      id,
	})
	if err != nil {
		return nil, fmt.Errorf("encode rpc request: %w", err)
	}

	endpoint := strings.TrimRight(cfg.URL, "/") + "/jsonrpc"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erp request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read erp response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erp http status %d", resp.StatusCode)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode erp response: %w", err)
	}
	if decoded.Error != nil {
		fault := &RPCError{Code: decoded.Error.Code, Message: decoded.Error.Message}
		if decoded.Error.Data != nil {
			fault.Detail = strings.TrimSpace(decoded.Error.Data.Message)
		}
		return nil, fault
	}
	return decoded.Result, nil
}
