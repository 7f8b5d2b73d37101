package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderDB struct {
	ID       uuid.UUID
	Status   string
	Created  time.Time
	Product  string
	Size     string
	Quantity int
}

type OrderItemDB struct {
	Product  string
	Size     string
	Quantity int
}
