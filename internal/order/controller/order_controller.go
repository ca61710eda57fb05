package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orthanc/internal/domain"
	"orthanc/internal/dto"
	apperrors "orthanc/internal/errors"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	FindOrders(ctx context.Context, req dto.OrderPageRequest) (*dto.OrderPageResponse, error)
	FindOrder(ctx context.Context, id string) (*dto.OrderResponse, error)
	ChangeOrderStatus(ctx context.Context, id string, status string) (*dto.OrderResponse, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateCreateOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *OrderController) FindOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	req, err := c.parseOrderPageRequest(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.FindOrders(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) FindOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		c.writeValidationError(w, "invalid order id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
		return
	}

	resp, err := c.useCase.FindOrder(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) ChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		c.writeValidationError(w, "invalid order id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
		return
	}

	var req dto.ChangeOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if !domain.IsValidOrderStatus(req.Status) {
		c.writeValidationError(w, "invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of " + strconv.Quote(domain.OrderStatusPending) +
				", " + strconv.Quote(domain.OrderStatusDelivered) +
				", " + strconv.Quote(domain.OrderStatusCancelled),
		})
		return
	}

	resp, err := c.useCase.ChangeOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if len(req.Items) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items exceeds maximum of 100",
		})
	}

	productIDMap := make(map[int]bool)

	for idx, item := range req.Items {
		if item.ProductID <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "each productId must be a positive integer",
			})
		}

		if productIDMap[item.ProductID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "productId must not be duplicated",
			})
		}
		productIDMap[item.ProductID] = true

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrderController) parseOrderPageRequest(r *http.Request) (dto.OrderPageRequest, error) {
	req := dto.OrderPageRequest{Page: 1, Limit: 10}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return req, apperrors.NewValidationError("invalid page", apperrors.ValidationDetail{
				Field:   "page",
				Message: "page must be a positive integer",
			})
		}
		req.Page = page
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return req, apperrors.NewValidationError("invalid limit", apperrors.ValidationDetail{
				Field:   "limit",
				Message: "limit must be a positive integer",
			})
		}
		req.Limit = limit
	}

	if status := r.URL.Query().Get("status"); status != "" {
		if !domain.IsValidOrderStatus(status) {
			return req, apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
				Field:   "status",
				Message: "status is not a valid order status",
			})
		}
		req.Status = status
	}

	return req, nil
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsDependencyError(err); ok {
		logger.Error("catalog dependency failed", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "DEPENDENCY_FAILED",
			"message": "product catalog is unavailable",
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
