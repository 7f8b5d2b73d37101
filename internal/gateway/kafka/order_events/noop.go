package order_events

import (
	"context"

	"orders/internal/entities"
)

// Noop используется при KAFKA_ENABLED=false.
type Noop struct{}

func NewNoop() Noop {
	return Noop{}
}

func (Noop) StatusChanged(context.Context, entities.Order) {}
