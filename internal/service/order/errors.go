package order

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidStatus   = errors.New("invalid status")

	// ErrInvalidOrder нарушение CHECK ограничения на стороне БД.
	ErrInvalidOrder = errors.New("order violates storage constraints")

	ErrOrderNotFound = errors.New("order not found")
)

// IsValidationError true для ошибок входных данных.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidOrderID) ||
		errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrInvalidSize) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidOrder)
}
