//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"orders/internal/handlers/tasks/orders_status_gauge"
	"orders/internal/pkg/config"
	"orders/internal/pkg/metrics"
	orderRepo "orders/internal/repository/order"
	orderService "orders/internal/service/order"

	"orders/pkg/logger"
	"orders/pkg/querier"
	"orders/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service).
// publisher выбирается в main: kafka или noop.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrdersStatusGaugeInterval,

		provideOrderRepository,
		provideServiceOrder,

		provideOrdersStatusGaugeTask,
		metrics.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orders_status_gauge.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}
