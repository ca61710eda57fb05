package usecase

import (
	"context"

	"orthanc/internal/domain"
	"orthanc/internal/dto"
)

type Service interface {
	Create(ctx context.Context, items []dto.CreateOrderItem) (*domain.Order, error)
	FindAll(ctx context.Context, req dto.OrderPageRequest) ([]domain.Order, dto.PageMeta, error)
	FindOne(ctx context.Context, id string) (*domain.Order, error)
	ChangeStatus(ctx context.Context, id string, status string) (*domain.Order, error)
}

type OrderUseCase struct {
	service Service
}

func NewOrderUseCase(service Service) *OrderUseCase {
	return &OrderUseCase{service: service}
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.service.Create(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) FindOrders(ctx context.Context, req dto.OrderPageRequest) (*dto.OrderPageResponse, error) {
	orders, meta, err := uc.service.FindAll(ctx, req)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, dto.OrderSummary{
			ID:          order.ID,
			TotalAmount: order.TotalAmount,
			TotalItems:  order.TotalItems,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
			UpdatedAt:   order.UpdatedAt,
		})
	}

	return &dto.OrderPageResponse{
		Data: summaries,
		Meta: meta,
	}, nil
}

func (uc *OrderUseCase) FindOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.service.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) ChangeOrderStatus(ctx context.Context, id string, status string) (*dto.OrderResponse, error) {
	order, err := uc.service.ChangeStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(order *domain.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Name:      item.Name,
		})
	}

	return &dto.OrderResponse{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		TotalItems:  order.TotalItems,
		Status:      order.Status,
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
