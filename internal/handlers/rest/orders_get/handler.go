package orders_get

import (
	"net/http"

	"orders/internal/handlers/rest/httpio"
	"orders/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list orders")
		httpio.WriteDetail(w, h.log, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, httpio.ToOrdersDTO(orders))
}
