package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"orders/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
	publisher  EventPublisher

	newID func() uuid.UUID
	now   func() time.Time
}

type Option func(*Service)

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(repository Repository, txManager TxManager, publisher EventPublisher, opts ...Option) *Service {
	s := &Service{
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
		newID:      uuid.New,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// CreateOrder сохраняет позицию и заказ в одной транзакции. Возвращает заказ,
// собранный из входных данных, без повторного чтения.
func (s *Service) CreateOrder(ctx context.Context, item entities.OrderItem) (*entities.Order, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}

	order := entities.Order{
		ID:     s.newID(),
		Status: entities.OrderCreated,
		// timestamptz хранит микросекунды
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
		Item:      item,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		itemID, err := s.repository.CreateItem(ctx, item)
		if err != nil {
			return fmt.Errorf("create order item: %w", err)
		}

		err = s.repository.Create(ctx, order, itemID)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.StatusChanged(ctx, order)
	return &order, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// UpdateOrder меняет только позицию заказа, status и created остаются прежними.
func (s *Service) UpdateOrder(ctx context.Context, id uuid.UUID, item entities.OrderItem) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		itemID, err := s.repository.GetItemIDByOrderID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		err = s.repository.UpdateItem(ctx, itemID, item)
		if err != nil {
			return fmt.Errorf("update order item: %w", err)
		}

		order, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get updated order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder удаляет позицию, заказ удаляется каскадом.
func (s *Service) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if !isValidOrderID(id) {
		return ErrInvalidOrderID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		itemID, err := s.repository.GetItemIDByOrderID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		err = s.repository.DeleteItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("delete order item: %w", err)
		}
		return nil
	})
}

// CancelOrder переводит заказ в cancelled из любого статуса.
// TODO: нет проверки текущего статуса (например, отмена delivered), ждём решения продукта.
func (s *Service) CancelOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return s.SetStatus(ctx, id, entities.OrderCancelled)
}

// PayOrder переводит заказ в progress из любого статуса, платёжного шлюза нет.
func (s *Service) PayOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return s.SetStatus(ctx, id, entities.OrderProgress)
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to set order status %s: %w", status, err)
	}

	s.publisher.StatusChanged(ctx, *order)
	return order, nil
}

// CountOrdersByStatus количество заказов по каждому статусу, отсутствующие - нулём.
func (s *Service) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	result := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses))
	for _, status := range entities.OrderStatuses {
		result[status] = counts[status]
	}
	return result, nil
}
