//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/google/uuid"
	"orders/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	CreateItem(ctx context.Context, item entities.OrderItem) (int64, error)
	Create(ctx context.Context, order entities.Order, itemID int64) error
	GetItemIDByOrderID(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateItem(ctx context.Context, itemID int64, item entities.OrderItem) error
	DeleteItem(ctx context.Context, itemID int64) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatusType) (*entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher уведомляет внешний мир о смене статуса. Вызывается после коммита,
// ошибки доставки обрабатывает сама реализация.
type EventPublisher interface {
	StatusChanged(ctx context.Context, order entities.Order)
}
