package httpio

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"orders/internal/entities"
	"orders/internal/generated/dto"
)

// maxBodyBytes тело заказа с одной позицией укладывается с большим запасом.
const maxBodyBytes = 64 << 10

// DecodeOrderRequest читает {"order":[item]} и возвращает единственную позицию.
// quantity по умолчанию 1.
func DecodeOrderRequest(w http.ResponseWriter, r *http.Request) (entities.OrderItem, error) {
	var request dto.OrderRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&request)
	if err != nil {
		return entities.OrderItem{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if len(request.Order) != 1 {
		return entities.OrderItem{}, ErrItemsCount
	}

	return ToOrderItem(request.Order[0]), nil
}

// OrderID id заказа из пути маршрута.
func OrderID(r *http.Request) (uuid.UUID, error) {
	idStr, ok := mux.Vars(r)["id"]
	if !ok || idStr == "" {
		return uuid.Nil, ErrMissingOrderID
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrMalformedID, err)
	}
	return id, nil
}
