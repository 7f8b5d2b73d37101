package httpio

import (
	"time"

	"orders/internal/entities"
	"orders/internal/generated/dto"
)

func ToOrderItem(item dto.OrderItemCreate) entities.OrderItem {
	quantity := entities.DefaultQuantity
	if item.Quantity != nil {
		quantity = *item.Quantity
	}

	return entities.OrderItem{
		Product:  item.Product,
		Size:     entities.OrderSizeType(item.Size),
		Quantity: quantity,
	}
}

func ToOrderDTO(order entities.Order) dto.Order {
	return dto.Order{
		Id:      order.ID,
		Status:  dto.OrderStatus(order.Status),
		Created: order.CreatedAt.UTC().Truncate(time.Microsecond),
		Order: []dto.OrderItem{
			{
				Product:  order.Item.Product,
				Size:     dto.OrderSize(order.Item.Size),
				Quantity: order.Item.Quantity,
			},
		},
	}
}

func ToOrdersDTO(orders []entities.Order) dto.OrdersResponse {
	response := dto.OrdersResponse{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for _, order := range orders {
		response.Orders = append(response.Orders, ToOrderDTO(order))
	}
	return response
}
