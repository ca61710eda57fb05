package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthanc/internal/domain"
	"orthanc/internal/dto"
	apperrors "orthanc/internal/errors"
)

type mockService struct {
	CreateFunc       func(ctx context.Context, items []dto.CreateOrderItem) (*domain.Order, error)
	FindAllFunc      func(ctx context.Context, req dto.OrderPageRequest) ([]domain.Order, dto.PageMeta, error)
	FindOneFunc      func(ctx context.Context, id string) (*domain.Order, error)
	ChangeStatusFunc func(ctx context.Context, id string, status string) (*domain.Order, error)
}

func (m *mockService) Create(ctx context.Context, items []dto.CreateOrderItem) (*domain.Order, error) {
	return m.CreateFunc(ctx, items)
}

func (m *mockService) FindAll(ctx context.Context, req dto.OrderPageRequest) ([]domain.Order, dto.PageMeta, error) {
	return m.FindAllFunc(ctx, req)
}

func (m *mockService) FindOne(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindOneFunc(ctx, id)
}

func (m *mockService) ChangeStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	return m.ChangeStatusFunc(ctx, id, status)
}

func TestCreateOrder_MapsDomainToResponse(t *testing.T) {
	now := time.Now()

	svc := &mockService{
		CreateFunc: func(ctx context.Context, items []dto.CreateOrderItem) (*domain.Order, error) {
			return &domain.Order{
				ID:          "order-1",
				TotalAmount: 20.0,
				TotalItems:  2,
				Status:      domain.OrderStatusPending,
				Items: []domain.OrderItem{
					{ProductID: 1, Quantity: 2, Price: 10.0, Name: "Palantir"},
				},
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}

	uc := NewOrderUseCase(svc)

	resp, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		Items: []dto.CreateOrderItem{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, 20.0, resp.TotalAmount)
	assert.Equal(t, 2, resp.TotalItems)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Palantir", resp.Items[0].Name)
	assert.Equal(t, 10.0, resp.Items[0].Price)
}

func TestCreateOrder_PropagatesError(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, items []dto.CreateOrderItem) (*domain.Order, error) {
			return nil, apperrors.NewValidationError("products not found in catalog: [9]")
		},
	}

	uc := NewOrderUseCase(svc)

	_, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{})

	require.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestFindOrders_MapsSummariesAndMeta(t *testing.T) {
	svc := &mockService{
		FindAllFunc: func(ctx context.Context, req dto.OrderPageRequest) ([]domain.Order, dto.PageMeta, error) {
			return []domain.Order{
					{ID: "a", Status: domain.OrderStatusPending, TotalAmount: 5.0, TotalItems: 1},
					{ID: "b", Status: domain.OrderStatusDelivered, TotalAmount: 7.0, TotalItems: 2},
				}, dto.PageMeta{Total: 15, Page: 1, LastPage: 2}, nil
		},
	}

	uc := NewOrderUseCase(svc)

	resp, err := uc.FindOrders(context.Background(), dto.OrderPageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "a", resp.Data[0].ID)
	assert.Equal(t, "b", resp.Data[1].ID)
	assert.Equal(t, 15, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.LastPage)
}

func TestFindOrders_EmptyPage(t *testing.T) {
	svc := &mockService{
		FindAllFunc: func(ctx context.Context, req dto.OrderPageRequest) ([]domain.Order, dto.PageMeta, error) {
			return nil, dto.PageMeta{Total: 0, Page: 1, LastPage: 0}, nil
		},
	}

	uc := NewOrderUseCase(svc)

	resp, err := uc.FindOrders(context.Background(), dto.OrderPageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Meta.LastPage)
}

func TestFindOrder_PropagatesNotFound(t *testing.T) {
	svc := &mockService{
		FindOneFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with id " + id + " not found")
		},
	}

	uc := NewOrderUseCase(svc)

	_, err := uc.FindOrder(context.Background(), "missing")

	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestChangeOrderStatus_MapsResponse(t *testing.T) {
	svc := &mockService{
		ChangeStatusFunc: func(ctx context.Context, id string, status string) (*domain.Order, error) {
			return &domain.Order{ID: id, Status: status}, nil
		},
	}

	uc := NewOrderUseCase(svc)

	resp, err := uc.ChangeOrderStatus(context.Background(), "order-1", domain.OrderStatusDelivered)
	require.NoError(t, err)

	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, domain.OrderStatusDelivered, resp.Status)
}
