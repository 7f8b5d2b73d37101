package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        uuid.UUID
	Status    OrderStatusType
	CreatedAt time.Time
	Item      OrderItem
}

type OrderItem struct {
	Product  string
	Size     OrderSizeType
	Quantity int
}

type OrderStatusType string

const (
	OrderCreated    OrderStatusType = "created"
	OrderPaid       OrderStatusType = "paid"
	OrderProgress   OrderStatusType = "progress"
	OrderCancelled  OrderStatusType = "cancelled"
	OrderDispatched OrderStatusType = "dispatched"
	OrderDelivered  OrderStatusType = "delivered"
)

// OrderStatuses полный список статусов в порядке жизненного цикла.
var OrderStatuses = []OrderStatusType{
	OrderCreated,
	OrderPaid,
	OrderProgress,
	OrderCancelled,
	OrderDispatched,
	OrderDelivered,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderCreated, OrderPaid, OrderProgress, OrderCancelled, OrderDispatched, OrderDelivered:
		return true
	default:
		return false
	}
}

type OrderSizeType string

const (
	SizeSmall  OrderSizeType = "small"
	SizeMedium OrderSizeType = "medium"
	SizeBig    OrderSizeType = "big"
)

func (s OrderSizeType) String() string {
	return string(s)
}

func (s OrderSizeType) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeBig:
		return true
	default:
		return false
	}
}

const DefaultQuantity = 1
