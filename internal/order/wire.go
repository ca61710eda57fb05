package order

import (
	"database/sql"

	"go.uber.org/zap"

	"orthanc/internal/metrics"
	"orthanc/internal/order/controller"
	"orthanc/internal/order/repository"
	"orthanc/internal/order/service"
	"orthanc/internal/order/usecase"
)

func NewModule(
	db *sql.DB,
	validator service.ProductValidator,
	logger *zap.Logger,
	orderMetrics *metrics.OrderMetrics,
) *controller.OrderController {
	itemRepo := repository.NewMySQLOrderItemRepository(db)
	orderRepo := repository.NewMySQLOrderRepository(db, itemRepo)

	svc := service.NewOrderService(orderRepo, validator, logger, orderMetrics)
	uc := usecase.NewOrderUseCase(svc)

	return controller.NewOrderController(uc, logger)
}
