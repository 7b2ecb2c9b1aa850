package service

import (
	"context"

	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Mock objects
type mockRPC struct {
	mock.Mock
}

func (m *mockRPC) ExecuteKw(ctx context.Context, model, method string, args []any, kwargs map[string]any) (any, error) {
	a := m.Called(ctx, model, method, args, kwargs)
	return a.Get(0), a.Error(1)
}

func (m *mockRPC) SearchRead(ctx context.Context, model string, domain odoo.Domain, fields []string, opts *odoo.SearchOptions) ([]odoo.Record, error) {
	a := m.Called(ctx, model, domain, fields, opts)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]odoo.Record), a.Error(1)
}

func (m *mockRPC) Read(ctx context.Context, model string, ids []int64, fields []string) ([]odoo.Record, error) {
	a := m.Called(ctx, model, ids, fields)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]odoo.Record), a.Error(1)
}

func (m *mockRPC) Create(ctx context.Context, model string, values map[string]any) (int64, error) {
	a := m.Called(ctx, model, values)
	return a.Get(0).(int64), a.Error(1)
}

func newTestService(rpc odoo.RPC) *Service {
	return NewService(Params{
		RPC: rpc,
		Log: zap.NewNop(),
	})
}

// domainWith matches a search domain containing the given triplet.
func domainWith(field, op string, value any) func(odoo.Domain) bool {
	return func(d odoo.Domain) bool {
		for _, node := range d.Wire() {
			triplet, ok := node.([]any)
			if !ok || len(triplet) != 3 {
				continue
			}
			if triplet[0] == field && triplet[1] == op && equalValue(triplet[2], value) {
				return true
			}
		}
		return false
	}
}

func equalValue(got, want any) bool {
	gotList, gotOk := got.([]any)
	wantList, wantOk := want.([]any)
	if gotOk && wantOk {
		if len(gotList) != len(wantList) {
			return false
		}
		for i := range gotList {
			if gotList[i] != wantList[i] {
				return false
			}
		}
		return true
	}
	return got == want
}
