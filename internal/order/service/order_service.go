package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orthanc/internal/domain"
	"orthanc/internal/dto"
	apperrors "orthanc/internal/errors"
	"orthanc/internal/metrics"
	"orthanc/internal/pagination"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Count(ctx context.Context, status string) (int, error)
	FindPage(ctx context.Context, status string, skip, take int) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error)
}

type ProductValidator interface {
	ValidateProducts(ctx context.Context, ids []int) ([]domain.Product, error)
}

type OrderService struct {
	orderRepo OrderRepository
	validator ProductValidator
	logger    *zap.Logger
	metrics   *metrics.OrderMetrics
}

func NewOrderService(
	orderRepo OrderRepository,
	validator ProductValidator,
	logger *zap.Logger,
	orderMetrics *metrics.OrderMetrics,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		validator: validator,
		logger:    logger,
		metrics:   orderMetrics,
	}
}

// Create validates the requested items against the product catalog,
// snapshots the catalog prices, and persists the order with its items as a
// single unit. Nothing is written if any product id is unknown.
func (s *OrderService) Create(ctx context.Context, items []dto.CreateOrderItem) (*domain.Order, error) {
	ids := distinctProductIDs(items)

	products, err := s.validator.ValidateProducts(ctx, ids)
	if err != nil {
		s.logger.Error("product validation call failed", zap.Ints("productIds", ids), zap.Error(err))
		return nil, err
	}

	priceByID := make(map[int]float64, len(products))
	nameByID := make(map[int]string, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
		nameByID[p.ID] = p.Name
	}

	// The catalog may cover fewer ids than requested; every missing id
	// makes the whole create invalid.
	var missing []int
	for _, id := range ids {
		if _, ok := priceByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		s.metrics.RecordValidationRejection()
		s.logger.Warn("order rejected, unknown products", zap.Ints("productIds", missing))
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("products not found in catalog: %v", missing),
			apperrors.ValidationDetail{
				Field:   "items",
				Message: fmt.Sprintf("productIds %v do not exist", missing),
			},
		)
	}

	order := &domain.Order{
		ID:     uuid.New().String(),
		Status: domain.OrderStatusPending,
		Items:  make([]domain.OrderItem, len(items)),
	}
	for i, item := range items {
		order.Items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     priceByID[item.ProductID],
		}
	}
	order.ComputeTotals()

	created, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		s.logger.Error("persisting order failed", zap.String("orderId", order.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("persisting order", err)
	}

	for i := range created.Items {
		created.Items[i].Name = nameByID[created.Items[i].ProductID]
	}

	s.metrics.RecordOrderCreated()
	s.logger.Info("order created",
		zap.String("orderId", created.ID),
		zap.Int("totalItems", created.TotalItems),
		zap.Float64("totalAmount", created.TotalAmount),
	)

	return created, nil
}

// FindAll returns one page of orders, most recent first, optionally
// filtered by status.
func (s *OrderService) FindAll(ctx context.Context, req dto.OrderPageRequest) ([]domain.Order, dto.PageMeta, error) {
	total, err := s.orderRepo.Count(ctx, req.Status)
	if err != nil {
		return nil, dto.PageMeta{}, apperrors.NewInternalError("counting orders", err)
	}

	page := pagination.Paginate(req.Page, req.Limit, total)

	orders, err := s.orderRepo.FindPage(ctx, req.Status, page.Skip, page.Take)
	if err != nil {
		return nil, dto.PageMeta{}, apperrors.NewInternalError("listing orders", err)
	}

	meta := dto.PageMeta{
		Total:    total,
		Page:     req.Page,
		LastPage: page.LastPage,
	}

	return orders, meta, nil
}

// FindOne returns the order with its items. Item names are re-resolved from
// the catalog on every read; prices come from the persisted snapshot.
// Enrichment is best-effort: a catalog failure or a product that has since
// disappeared leaves the name empty instead of failing the read.
func (s *OrderService) FindOne(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(order.Items) == 0 {
		return order, nil
	}

	ids := make([]int, 0, len(order.Items))
	seen := make(map[int]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.validator.ValidateProducts(ctx, ids)
	if err != nil {
		s.logger.Warn("name enrichment skipped, catalog unavailable",
			zap.String("orderId", id), zap.Error(err))
		return order, nil
	}

	nameByID := make(map[int]string, len(products))
	for _, p := range products {
		nameByID[p.ID] = p.Name
	}

	var unresolved []int
	for i := range order.Items {
		name, ok := nameByID[order.Items[i].ProductID]
		if !ok {
			unresolved = append(unresolved, order.Items[i].ProductID)
			continue
		}
		order.Items[i].Name = name
	}
	if len(unresolved) > 0 {
		s.logger.Warn("products no longer in catalog, names omitted",
			zap.String("orderId", id), zap.Ints("productIds", unresolved))
	}

	return order, nil
}

// ChangeStatus moves the order to the given status. Changing to the current
// status is a successful no-op and issues no write.
func (s *OrderService) ChangeStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	order, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, err
		}
		return nil, apperrors.NewInternalError("updating order status", err)
	}

	s.metrics.RecordStatusChange(status)
	s.logger.Info("order status changed",
		zap.String("orderId", id),
		zap.String("from", order.Status),
		zap.String("to", status),
	)

	return updated, nil
}

func distinctProductIDs(items []dto.CreateOrderItem) []int {
	ids := make([]int, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
