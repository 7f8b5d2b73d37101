package order_events

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"orders/internal/entities"
	"orders/internal/pkg/metrics"
	"orders/pkg/logger"
	retrierconfig "orders/pkg/retrier"
	"orders/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

// Publisher отправляет событие смены статуса в Kafka. Ошибки не возвращаются:
// заказ уже закоммичен, неудачная отправка только логируется.
type Publisher struct {
	log      publisherLogger
	producer producer
	retrier  retrier
	topic    string
	now      func() time.Time
}

func New(log publisherLogger, producer producer, topic string) *Publisher {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &Publisher{
		log: log.With(
			logger.NewField("topic", topic),
		),
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
		now:      time.Now,
	}
}

func (p *Publisher) StatusChanged(ctx context.Context, order entities.Order) {
	event := toEvent(order, p.now())
	eventLog := p.log.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("status", event.Status),
	)

	msg, err := toMessage(p.topic, event)
	if err != nil {
		eventLog.Error("build order event", logger.NewField("error", err))
		metrics.OrderEventsPublishedTotal.WithLabelValues("failed").Inc()
		return
	}

	err = p.executeWithMetrics(ctx, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		eventLog.Error("publish order event", logger.NewField("error", err))
		metrics.OrderEventsPublishedTotal.WithLabelValues("failed").Inc()
		return
	}

	metrics.OrderEventsPublishedTotal.WithLabelValues("ok").Inc()
}

// isRetryable временные ошибки брокера: смена лидера, таймауты.
func isRetryable(err error) bool {
	var kerr sarama.KError
	if !errors.As(err, &kerr) {
		return errors.Is(err, sarama.ErrOutOfBrokers)
	}

	switch kerr {
	case sarama.ErrNotLeaderForPartition,
		sarama.ErrLeaderNotAvailable,
		sarama.ErrRequestTimedOut,
		sarama.ErrNotEnoughReplicas,
		sarama.ErrNotEnoughReplicasAfterAppend,
		sarama.ErrNetworkException:
		return true
	default:
		return false
	}
}

func (p *Publisher) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	PublishDuration.WithLabelValues(p.topic, result).Observe(time.Since(start).Seconds())

	// первая попытка не повтор
	if attempt > 1 {
		PublishRetriesTotal.WithLabelValues(p.topic, result).Add(float64(attempt - 1))
	}

	return err
}
