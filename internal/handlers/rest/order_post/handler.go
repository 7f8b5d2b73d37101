package order_post

import (
	"net/http"

	"orders/internal/handlers/rest/httpio"
	"orders/internal/service/order"
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
	item, err := httpio.DecodeOrderRequest(w, r)
	if err != nil {
		httpio.WriteDetail(w, h.log, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := h.service.CreateOrder(r.Context(), item)
	if err != nil {
		switch {
		case order.IsValidationError(err):
			httpio.WriteDetail(w, h.log, http.StatusUnprocessableEntity, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			httpio.WriteDetail(w, h.log, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusCreated, httpio.ToOrderDTO(*created))
}
