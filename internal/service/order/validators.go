package order

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"orders/internal/entities"
)

const (
	// productMaxLen ширина колонки orderItems.product.
	productMaxLen = 100
	// quantityMax предел колонки orderItems.quantity (INTEGER).
	quantityMax = math.MaxInt32
)

func validateItem(item entities.OrderItem) error {
	if !isValidProduct(item.Product) {
		return ErrInvalidProduct
	}
	if !item.Size.IsValid() {
		return ErrInvalidSize
	}
	if item.Quantity <= 0 || item.Quantity > quantityMax {
		return ErrInvalidQuantity
	}
	return nil
}

func isValidProduct(product string) bool {
	return strings.TrimSpace(product) != "" && utf8.RuneCountInString(product) <= productMaxLen
}

func isValidOrderID(id uuid.UUID) bool {
	return id != uuid.Nil
}
