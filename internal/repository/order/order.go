package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"orders/internal/entities"
	"orders/internal/repository"
	"orders/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// orderViewColumns заказ вместе с позицией, порядок совпадает со scanOrder.
var orderViewColumns = []string{
	"o.id", "o.status", "o.created", "i.product", "i.size", "i.quantity",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	builder := qb.
		Select(orderViewColumns...).
		From("orders o").
		Join("orderItems i ON i.id = o.orderItem_id").
		OrderBy("o.created", "o.id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := scanOrder(rows, &orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT o.id, o.status, o.created, i.product, i.size, i.quantity
		FROM orders o
		JOIN orderItems i ON i.id = o.orderItem_id
		WHERE o.id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) CreateItem(ctx context.Context, item entities.OrderItem) (int64, error) {
	itemModel := FromDomainItem(item)
	query := `INSERT INTO orderItems (product, size, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		itemModel.Product,
		itemModel.Size,
		itemModel.Quantity,
	).Scan(&id)
	if err != nil {
		if repository.IsConstraintViolation(err) {
			return 0, fmt.Errorf("%w: %w", order.ErrInvalidOrder, err)
		}
		return 0, fmt.Errorf("unexpected order repository create item error: %w", err)
	}

	return id, nil
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order, itemID int64) error {
	query := `INSERT INTO orders (id, status, created, orderItem_id)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.Status.String(),
		orderEntity.CreatedAt,
		itemID,
	)
	if err != nil {
		if repository.IsConstraintViolation(err) {
			return fmt.Errorf("%w: %w", order.ErrInvalidOrder, err)
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

// GetItemIDByOrderID блокирует строку заказа до конца транзакции.
func (r *Repository) GetItemIDByOrderID(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `SELECT orderItem_id
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	var itemID int64
	err := r.querier.QueryRow(ctx, query, id).Scan(&itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, order.ErrOrderNotFound
		}
		return 0, fmt.Errorf("unexpected order repository get item id error: %w", err)
	}

	return itemID, nil
}

func (r *Repository) UpdateItem(ctx context.Context, itemID int64, item entities.OrderItem) error {
	itemModel := FromDomainItem(item)

	builder := qb.
		Update("orderItems").
		Set("product", itemModel.Product).
		Set("size", itemModel.Size).
		Set("quantity", itemModel.Quantity).
		Where(sq.Eq{"id": itemID})

	result, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		if repository.IsConstraintViolation(err) {
			return fmt.Errorf("%w: %w", order.ErrInvalidOrder, err)
		}
		return fmt.Errorf("unexpected order repository update item error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// DeleteItem заказ удаляется каскадом по orderItem_id.
func (r *Repository) DeleteItem(ctx context.Context, itemID int64) error {
	query := `DELETE FROM orderItems WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete item error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders o
		SET status = $2
		FROM orderItems i
		WHERE o.id = $1 AND i.id = o.orderItem_id
		RETURNING o.id, o.status, o.created, i.product, i.size, i.quantity`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id, status.String()), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", order.ErrInvalidStatus, err)
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	builder := qb.
		Select("status", "COUNT(*)").
		From("orders").
		GroupBy("status")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses))
	for rows.Next() {
		var (
			status string
			count  int64
		)
		err := rows.Scan(&status, &count)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}

	return counts, nil
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.Status,
		&orderModel.Created,
		&orderModel.Product,
		&orderModel.Size,
		&orderModel.Quantity,
	)
}
