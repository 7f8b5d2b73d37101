//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_pay_post_test
package order_pay_post

import (
	"context"

	"github.com/google/uuid"
	"orders/internal/entities"
	"orders/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PayOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error)
}
