package order_cancel_post

import (
	"errors"
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
	id, err := httpio.OrderID(r)
	if err != nil {
		httpio.WriteDetail(w, h.log, http.StatusUnprocessableEntity, err.Error())
		return
	}

	orderEntity, err := h.service.CancelOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			httpio.WriteDetail(w, h.log, http.StatusNotFound, httpio.NotFoundDetail(id))
		case order.IsValidationError(err):
			httpio.WriteDetail(w, h.log, http.StatusUnprocessableEntity, err.Error())
		default:
			h.log.With(
				logger.NewField("order_id", id.String()),
				logger.NewField("error", err),
			).Error("cancel order")
			httpio.WriteDetail(w, h.log, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, httpio.ToOrderDTO(*orderEntity))
}
