//go:generate mockgen -source=orders_status_gauge.go -destination=./mocks_test.go -package=orders_status_gauge_test
package orders_status_gauge

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"orders/internal/entities"
	"orders/pkg/logger"
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

// OrdersStatusGauge периодически выставляет количество заказов по статусам.
type OrdersStatusGauge struct {
	log      logger.Logger
	service  Service
	gauge    *prometheus.GaugeVec
	interval time.Duration
}

func New(log logger.Logger, service Service, gauge *prometheus.GaugeVec, interval time.Duration) *OrdersStatusGauge {
	return &OrdersStatusGauge{
		log:      log,
		service:  service,
		gauge:    gauge,
		interval: interval,
	}
}

func (o *OrdersStatusGauge) TTL() time.Duration {
	return o.interval
}

func (o *OrdersStatusGauge) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count orders by status: %w", err)
	}

	var total int64
	for status, count := range counts {
		o.gauge.WithLabelValues(status.String()).Set(float64(count))
		total += count
	}

	o.log.With(
		logger.NewField("total", total),
	).Info("orders status gauge updated")

	return nil
}

func (o *OrdersStatusGauge) Info() string {
	return "orders status gauge"
}
