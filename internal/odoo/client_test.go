package odoo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSource struct {
	cfg Config
}

func (s staticSource) ERP() Config { return s.cfg }

type capturedCall struct {
	Service string
	Method  string
	Args    []any
}

func newTestServer(t *testing.T, handler func(call capturedCall) (any, *rpcFault)) (*httptest.Server, *[]capturedCall) {
	t.Helper()
	var calls []capturedCall

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jsonrpc", r.URL.Path)

		var req struct {
			Params struct {
				Service string `json:"service"`
				Method  string `json:"method"`
				Args    []any  `json:"args"`
			} `json:"params"`
			ID int64 `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		call := capturedCall{Service: req.Params.Service, Method: req.Params.Method, Args: req.Params.Args}
		calls = append(calls, call)

		result, fault := handler(call)
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if fault != nil {
			resp["error"] = map[string]any{
				"code":    fault.Code,
				"message": fault.Message,
				"data":    map[string]any{"message": fault.Data.Message},
			}
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))

	return srv, &calls
}

func newTestClient(url string) *Client {
	return NewClient(staticSource{cfg: Config{
		URL:      url,
		Database: "testdb",
		Username: "admin",
		Password: "secret",
		Timeout:  5 * time.Second,
	}}, zap.NewNop(), nil)
}

func TestSearchReadAuthenticatesOnce(t *testing.T) {
	srv, calls := newTestServer(t, func(call capturedCall) (any, *rpcFault) {
		if call.Service == "common" {
			return float64(2), nil
		}
		return []any{map[string]any{"id": float64(1), "name": "Cash"}}, nil
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	ctx := context.Background()

	records, err := client.SearchRead(ctx, "account.journal", Eq("type", "cash"), []string{"id", "name"}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Cash", records[0].Str("name"))

	_, err = client.SearchRead(ctx, "account.journal", Domain{}, []string{"id"}, nil)
	require.NoError(t, err)

	authCalls := 0
	for _, call := range *calls {
		if call.Service == "common" {
			authCalls++
		}
	}
	assert.Equal(t, 1, authCalls, "uid must be cached across calls")
}

func TestExecuteKwWirePayload(t *testing.T) {
	srv, calls := newTestServer(t, func(call capturedCall) (any, *rpcFault) {
		if call.Service == "common" {
			return float64(9), nil
		}
		return true, nil
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ExecuteKw(context.Background(), "account.move", "action_post", []any{[]any{float64(12)}}, nil)
	require.NoError(t, err)

	last := (*calls)[len(*calls)-1]
	assert.Equal(t, "object", last.Service)
	assert.Equal(t, "execute_kw", last.Method)
	// [db, uid, password, model, method, args]
	require.Len(t, last.Args, 6)
	assert.Equal(t, "testdb", last.Args[0])
	assert.Equal(t, float64(9), last.Args[1])
	assert.Equal(t, "secret", last.Args[2])
	assert.Equal(t, "account.move", last.Args[3])
	assert.Equal(t, "action_post", last.Args[4])
}

func TestSearchReadPassesOptions(t *testing.T) {
	var sawKwargs map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params struct {
				Service string `json:"service"`
				Args    []any  `json:"args"`
			} `json:"params"`
			ID int64 `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		result := any(float64(3))
		if req.Params.Service == "object" {
			if kwargs, ok := req.Params.Args[len(req.Params.Args)-1].(map[string]any); ok {
				sawKwargs = kwargs
			}
			result = []any{}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.SearchRead(context.Background(), "account.move", Domain{}, []string{"id"}, &SearchOptions{
		Limit: 25,
		Order: "invoice_date desc",
	})
	require.NoError(t, err)

	require.NotNil(t, sawKwargs)
	assert.Equal(t, float64(25), sawKwargs["limit"])
	assert.Equal(t, "invoice_date desc", sawKwargs["order"])
	assert.NotContains(t, sawKwargs, "offset")
}

func TestRPCErrorSurfacesFault(t *testing.T) {
	srv, _ := newTestServer(t, func(call capturedCall) (any, *rpcFault) {
		if call.Service == "common" {
			return float64(2), nil
		}
		return nil, &rpcFault{
			Code:    200,
			Message: "Odoo Server Error",
			Data:    &rpcData{Message: "You cannot post an entry without lines."},
		}
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ExecuteKw(context.Background(), "account.move", "action_post", []any{[]any{float64(1)}}, nil)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 200, rpcErr.Code)
	assert.Contains(t, rpcErr.Error(), "You cannot post an entry without lines.")
}

func TestAuthenticationFailure(t *testing.T) {
	srv, _ := newTestServer(t, func(call capturedCall) (any, *rpcFault) {
		// wrong credentials yield false, not a fault
		return false, nil
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.SearchRead(context.Background(), "account.account", Domain{}, []string{"id"}, nil)

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestCreateReturnsID(t *testing.T) {
	srv, _ := newTestServer(t, func(call capturedCall) (any, *rpcFault) {
		if call.Service == "common" {
			return float64(2), nil
		}
		return float64(77), nil
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	id, err := client.Create(context.Background(), "account.move", map[string]any{"move_type": "out_invoice"})

	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}
