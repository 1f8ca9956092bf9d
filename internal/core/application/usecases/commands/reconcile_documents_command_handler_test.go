package commands_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProcessingOrder(t *testing.T, shipmentID string) *order.Order {
	t.Helper()
	aggregate := newPendingOrder(t)
	require.NoError(t, aggregate.AttachCarrierOrder("123", &shipmentID, nil))
	return aggregate
}

// sweepUoW mocks the short read-only transaction that loads the sweep
// candidates and is rolled back without a commit.
func sweepUoW(ctx context.Context, repo *MockOrderRepository, orders []*order.Order) *MockOrderUoW {
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllAwaitingDocuments", mock.Anything).Return(orders, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return uow
}

// attachUoW mocks the per-order transaction that re-reads the order and
// persists its documents.
func attachUoW(ctx context.Context, repo *MockOrderRepository, aggregate *order.Order) *MockOrderUoW {
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return uow
}

func TestReconcileDocumentsCommandHandler_Handle_AttachesDocuments(t *testing.T) {
	ctx := t.Context()
	aggregate := newProcessingOrder(t, "456")
	labelURL := "https://cdn.example.com/label-456.pdf"

	gateway := new(MockCarrierGateway)
	gateway.On("GenerateDocuments", mock.Anything, "456").
		Return(shipping.Documents{LabelURL: &labelURL}, nil).Once()

	repo := new(MockOrderRepository)
	uow1 := sweepUoW(ctx, repo, []*order.Order{aggregate})
	uow2 := attachUoW(ctx, repo, aggregate)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()

	h := commands.NewReconcileDocumentsCommandHandler(factory, gateway, discardLogger())
	cmd := commands.NewReconcileDocumentsCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.ShippingStatusShipped, aggregate.ShippingStatus())
	require.NotNil(t, aggregate.LabelURL())
	gateway.AssertExpectations(t)
	uow1.AssertExpectations(t)
	uow2.AssertExpectations(t)
}

func TestReconcileDocumentsCommandHandler_Handle_NoOrders(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := sweepUoW(ctx, repo, []*order.Order{})

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockCarrierGateway)

	h := commands.NewReconcileDocumentsCommandHandler(factory, gateway, discardLogger())
	cmd := commands.NewReconcileDocumentsCommand()
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoOrdersAwaitingDocuments)
	gateway.AssertNotCalled(t, "GenerateDocuments", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestReconcileDocumentsCommandHandler_Handle_OneFailureDoesNotAbortSweep(t *testing.T) {
	ctx := t.Context()
	failing := newProcessingOrder(t, "111")
	succeeding := newProcessingOrder(t, "222")
	labelURL := "https://cdn.example.com/label-222.pdf"

	gateway := new(MockCarrierGateway)
	gateway.On("GenerateDocuments", mock.Anything, "111").
		Return(shipping.Documents{}, errors.New("label service down")).Once()
	gateway.On("GenerateDocuments", mock.Anything, "222").
		Return(shipping.Documents{LabelURL: &labelURL}, nil).Once()

	repo := new(MockOrderRepository)
	uow1 := sweepUoW(ctx, repo, []*order.Order{failing, succeeding})
	uow2 := attachUoW(ctx, repo, succeeding)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()

	h := commands.NewReconcileDocumentsCommandHandler(factory, gateway, discardLogger())
	cmd := commands.NewReconcileDocumentsCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.ShippingStatusProcessing, failing.ShippingStatus())
	require.Equal(t, order.ShippingStatusShipped, succeeding.ShippingStatus())
	gateway.AssertExpectations(t)
	uow1.AssertExpectations(t)
	uow2.AssertExpectations(t)
}

func TestReconcileDocumentsCommandHandler_Handle_AttachFailureKeepsEarlierCommits(t *testing.T) {
	ctx := t.Context()
	first := newProcessingOrder(t, "111")
	second := newProcessingOrder(t, "222")
	firstLabel := "https://cdn.example.com/label-111.pdf"
	secondLabel := "https://cdn.example.com/label-222.pdf"

	gateway := new(MockCarrierGateway)
	gateway.On("GenerateDocuments", mock.Anything, "111").
		Return(shipping.Documents{LabelURL: &firstLabel}, nil).Once()
	gateway.On("GenerateDocuments", mock.Anything, "222").
		Return(shipping.Documents{LabelURL: &secondLabel}, nil).Once()

	repo := new(MockOrderRepository)
	uow1 := sweepUoW(ctx, repo, []*order.Order{first, second})
	uow2 := attachUoW(ctx, repo, first)

	// The second order's attach fails at Update; its transaction alone rolls
	// back and the first order's commit stands.
	uow3 := new(MockOrderUoW)
	mock.InOrder(
		uow3.On("Begin", ctx).Return(nil).Once(),
		uow3.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, second.ID()).Return(second, nil).Once(),
		uow3.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, second).Return(errors.New("connection reset")).Once(),
		uow3.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()
	factory.On("Create").Return(uow3).Once()

	h := commands.NewReconcileDocumentsCommandHandler(factory, gateway, discardLogger())
	cmd := commands.NewReconcileDocumentsCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.ShippingStatusShipped, first.ShippingStatus())
	gateway.AssertExpectations(t)
	uow2.AssertExpectations(t)
	uow3.AssertExpectations(t)
	uow3.AssertNotCalled(t, "Commit", ctx)
}
