package service

import (
	"context"
	"testing"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceRequiresCounterpartyBeforeRPC(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	_, err := svc.CreateInvoice(context.Background(), domain.CreateInvoiceInput{
		Lines: []domain.InvoiceLineInput{{Description: "Consulting", Quantity: 1, UnitPrice: 100}},
	})

	assert.ErrorIs(t, err, domain.ErrMissingCounterparty)
	rpc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateInvoiceWiresLineTuples(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	var captured map[string]any
	rpc.On("Create", mock.Anything, "account.move", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]any)
		}).
		Return(int64(31), nil)

	id, err := svc.CreateInvoice(context.Background(), domain.CreateInvoiceInput{
		CustomerID:  5,
		InvoiceDate: "2024-03-01",
		Lines: []domain.InvoiceLineInput{
			{Description: "Widget", Quantity: 2, UnitPrice: 50, TaxIDs: []int64{3}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
	require.NotNil(t, captured)

	assert.Equal(t, "out_invoice", captured["move_type"])
	assert.Equal(t, int64(5), captured["partner_id"])
	assert.Equal(t, "2024-03-01", captured["invoice_date"])

	lines, ok := captured["invoice_line_ids"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)

	// [0, 0, values] create tuple
	tuple, ok := lines[0].([]any)
	require.True(t, ok)
	require.Len(t, tuple, 3)
	assert.Equal(t, 0, tuple[0])
	assert.Equal(t, 0, tuple[1])

	fields, ok := tuple[2].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Widget", fields["name"])
	assert.Equal(t, float64(2), fields["quantity"])
	assert.Equal(t, float64(50), fields["price_unit"])
	assert.NotContains(t, fields, "account_id")
	assert.NotContains(t, fields, "discount")

	// tax_ids carries a [6, false, ids] replace-set tuple
	taxCommands, ok := fields["tax_ids"].([]any)
	require.True(t, ok)
	require.Len(t, taxCommands, 1)
	taxTuple, ok := taxCommands[0].([]any)
	require.True(t, ok)
	assert.Equal(t, 6, taxTuple[0])
	assert.Equal(t, false, taxTuple[1])
	assert.Equal(t, []any{int64(3)}, taxTuple[2])
}

func TestCreateInvoiceSupplierFallback(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("Create", mock.Anything, "account.move",
		mock.MatchedBy(func(values map[string]any) bool {
			return values["partner_id"] == int64(8) && values["move_type"] == "in_invoice"
		}),
	).Return(int64(12), nil)

	_, err := svc.CreateInvoice(context.Background(), domain.CreateInvoiceInput{
		SupplierID: 8,
		MoveType:   domain.MoveTypeVendorBill,
	})

	require.NoError(t, err)
	rpc.AssertExpectations(t)
}

func TestListInvoicesDefaultsToInvoiceMoveTypes(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.move",
		mock.MatchedBy(domainWith("move_type", "in",
			[]any{"out_invoice", "out_refund", "in_invoice", "in_refund"})),
		invoiceFields, mock.Anything,
	).Return(nil, nil)

	_, err := svc.ListInvoices(context.Background(), domain.InvoiceFilter{})

	require.NoError(t, err)
	rpc.AssertExpectations(t)
}

func TestListInvoicesExplicitTypeSkipsDefault(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("SearchRead", mock.Anything, "account.move",
		mock.MatchedBy(domainWith("move_type", "=", "out_refund")),
		invoiceFields, mock.Anything,
	).Return(nil, nil)

	_, err := svc.ListInvoices(context.Background(), domain.InvoiceFilter{
		MoveType: domain.MoveTypeCustomerRefund,
	})

	require.NoError(t, err)
	rpc.AssertExpectations(t)
}

func TestPostInvoiceCallsActionPost(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("ExecuteKw", mock.Anything, "account.move", "action_post",
		[]any{[]any{int64(7)}}, map[string]any(nil),
	).Return(true, nil)

	err := svc.PostInvoice(context.Background(), 7)

	require.NoError(t, err)
	rpc.AssertExpectations(t)
}

func TestCancelAndResetInvoice(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("ExecuteKw", mock.Anything, "account.move", "button_cancel",
		[]any{[]any{int64(7)}}, map[string]any(nil),
	).Return(true, nil)
	rpc.On("ExecuteKw", mock.Anything, "account.move", "button_draft",
		[]any{[]any{int64(7)}}, map[string]any(nil),
	).Return(true, nil)

	require.NoError(t, svc.CancelInvoice(context.Background(), 7))
	require.NoError(t, svc.ResetInvoiceToDraft(context.Background(), 7))
	rpc.AssertExpectations(t)
}
