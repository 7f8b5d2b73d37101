package order

import "orders/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:        o.ID,
		Status:    entities.OrderStatusType(o.Status),
		CreatedAt: o.Created.UTC(),
		Item: entities.OrderItem{
			Product:  o.Product,
			Size:     entities.OrderSizeType(o.Size),
			Quantity: o.Quantity,
		},
	}
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func FromDomainItem(item entities.OrderItem) OrderItemDB {
	return OrderItemDB{
		Product:  item.Product,
		Size:     item.Size.String(),
		Quantity: item.Quantity,
	}
}
