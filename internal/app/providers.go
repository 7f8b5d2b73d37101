package app

import (
	"context"
	"time"

	"orders/internal/handlers/rest/order_cancel_post"
	"orders/internal/handlers/rest/order_delete"
	"orders/internal/handlers/rest/order_get"
	"orders/internal/handlers/rest/order_pay_post"
	"orders/internal/handlers/rest/order_post"
	"orders/internal/handlers/rest/order_put"
	"orders/internal/handlers/rest/orders_get"
	"orders/internal/handlers/tasks/orders_status_gauge"
	"orders/internal/pkg/config"
	"orders/internal/pkg/metrics"
	orderRepo "orders/internal/repository/order"
	orderService "orders/internal/service/order"

	"orders/pkg/background"
	"orders/pkg/logger"
	"orders/pkg/querier"
	"orders/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OrdersStatusGaugeInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_post.Service
	order_get.Service
	order_put.Service
	order_delete.Service
	order_cancel_post.Service
	order_pay_post.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier orderRepo.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(repository, txManager, publisher)
}

func provideOrdersStatusGaugeInterval(cfg *config.Config) OrdersStatusGaugeInterval {
	return OrdersStatusGaugeInterval(cfg.Tasks.OrdersStatusGaugeInterval)
}

func provideOrdersStatusGaugeTask(
	log logger.Logger,
	service orders_status_gauge.Service,
	interval OrdersStatusGaugeInterval,
) *orders_status_gauge.OrdersStatusGauge {
	return orders_status_gauge.New(log, service, metrics.OrdersByStatus, time.Duration(interval))
}

func provideTaskList(
	ordersStatusGauge *orders_status_gauge.OrdersStatusGauge,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		ordersStatusGauge,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
