package httpio

import (
	"encoding/json"
	"fmt"
	"net/http"

	"orders/internal/generated/dto"
	"orders/pkg/logger"
)

type responseLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func WriteJSON(w http.ResponseWriter, log responseLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func WriteDetail(w http.ResponseWriter, log responseLogger, status int, detail string) {
	WriteJSON(w, log, status, dto.ErrorResponse{Detail: detail})
}

func NotFoundDetail(id fmt.Stringer) string {
	return fmt.Sprintf("Order with ID %s not found", id)
}
