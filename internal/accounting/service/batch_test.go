package service

import (
	"context"
	"errors"
	"testing"

	"github.com/safee-analytics/erp-bridge/internal/accounting/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBatchValidateInvoicesContinuesPastFailures(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("ExecuteKw", mock.Anything, "account.move", "action_post",
		[]any{[]any{int64(1)}}, map[string]any(nil),
	).Return(true, nil)
	rpc.On("ExecuteKw", mock.Anything, "account.move", "action_post",
		[]any{[]any{int64(2)}}, map[string]any(nil),
	).Return(nil, errors.New("move is not balanced"))
	rpc.On("ExecuteKw", mock.Anything, "account.move", "action_post",
		[]any{[]any{int64(3)}}, map[string]any(nil),
	).Return(true, nil)

	result := svc.BatchValidateInvoices(context.Background(), []int64{1, 2, 3})

	require.Len(t, result.Succeeded, 2)
	assert.Equal(t, int64(1), result.Succeeded[0].ID)
	assert.Equal(t, int64(3), result.Succeeded[1].ID)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(2), result.Failed[0].ID)
	assert.Contains(t, result.Failed[0].Error, "move is not balanced")
	rpc.AssertExpectations(t)
}

func TestBatchCancelInvoicesEmptyInput(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	result := svc.BatchCancelInvoices(context.Background(), nil)

	assert.Empty(t, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.NotNil(t, result.Succeeded)
	assert.NotNil(t, result.Failed)
}

func TestBatchCreateInvoicesKeysByIndex(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("Create", mock.Anything, "account.move", mock.Anything).
		Return(int64(70), nil).Once()

	inputs := []domain.CreateInvoiceInput{
		{
			MoveType:   domain.MoveTypeCustomerInvoice,
			CustomerID: 5,
			Lines:      []domain.InvoiceLineInput{{Description: "Consulting", Quantity: 1, UnitPrice: 100}},
		},
		{
			// No counterparty: rejected before any remote call.
			MoveType: domain.MoveTypeCustomerInvoice,
			Lines:    []domain.InvoiceLineInput{{Description: "Consulting", Quantity: 1, UnitPrice: 100}},
		},
	}

	result := svc.BatchCreateInvoices(context.Background(), inputs)

	require.Len(t, result.Succeeded, 1)
	assert.Equal(t, 0, result.Succeeded[0].Index)
	assert.Equal(t, int64(70), result.Succeeded[0].ID)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 1, result.Failed[0].Index)
	assert.Contains(t, result.Failed[0].Error, domain.ErrMissingCounterparty.Error())
}

func TestBatchCreatePaymentsReportsPartialState(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	rpc.On("Create", mock.Anything, "account.payment", mock.Anything).
		Return(int64(20), nil).Once()
	rpc.On("Create", mock.Anything, "account.payment", mock.Anything).
		Return(int64(21), nil).Once()
	// The second payment is created remotely but fails while posting, so
	// the failure carries the ID of the draft left behind.
	rpc.On("ExecuteKw", mock.Anything, "account.payment", "action_post",
		[]any{[]any{int64(21)}}, map[string]any(nil),
	).Return(nil, errors.New("journal has no outstanding account"))

	inputs := []domain.CreatePaymentInput{
		{PaymentType: "inbound", PartnerType: "customer", PartnerID: 5, Amount: 100},
		{PaymentType: "inbound", PartnerType: "customer", PartnerID: 6, Amount: 200, InvoiceIDs: []int64{70}},
	}

	result := svc.BatchCreatePayments(context.Background(), inputs)

	require.Len(t, result.Succeeded, 1)
	assert.Equal(t, 0, result.Succeeded[0].Index)
	assert.Equal(t, int64(20), result.Succeeded[0].ID)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 1, result.Failed[0].Index)
	assert.Equal(t, int64(21), result.Failed[0].ID)
	assert.Contains(t, result.Failed[0].Error, "journal has no outstanding account")
}

func TestBatchConfirmPaymentsSequentialOrder(t *testing.T) {
	rpc := new(mockRPC)
	svc := newTestService(rpc)

	var order []int64
	for _, id := range []int64{9, 7, 8} {
		id := id
		rpc.On("ExecuteKw", mock.Anything, "account.payment", "action_post",
			[]any{[]any{id}}, map[string]any(nil),
		).Run(func(mock.Arguments) { order = append(order, id) }).Return(true, nil)
	}

	result := svc.BatchConfirmPayments(context.Background(), []int64{9, 7, 8})

	assert.Len(t, result.Succeeded, 3)
	assert.Empty(t, result.Failed)
	assert.Equal(t, []int64{9, 7, 8}, order)
}
