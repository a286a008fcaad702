package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cafetec/cafetec-api/internal/logging"
	"github.com/cafetec/cafetec-api/internal/mykafka"
	"github.com/cafetec/cafetec-api/internal/service/orders"
)

type OrderHandler struct {
	Svc      *orders.Service
	Producer *mykafka.Producer
}

func (h *OrderHandler) Place(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.place")

	var req orders.PlaceRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return errorResponse(c, http.StatusBadRequest, "Cuerpo de la solicitud inválido.")
	}

	order, err := h.Svc.Place(ctx, req)
	if err != nil {
		if errors.Is(err, orders.ErrValidation) {
			l.Warn("place_order_error", "status", 400, "error", err)
			return errorResponse(c, http.StatusBadRequest, orders.UserMessage(err))
		}
		l.Error("place_order_error", "status", 500, "error", err)
		return errorResponse(c, http.StatusInternalServerError, "Error al crear el pedido.")
	}

	publish(c, h.Producer, mykafka.TopicOrderEvents, fmt.Sprint(order.ID), map[string]interface{}{
		"type":      "order_created",
		"orderID":   order.ID,
		"codigo":    order.Code,
		"total":     order.Total,
		"usuarioID": order.UserID,
	})

	l.Info("place_order_success", "order_id", order.ID, "codigo", order.Code)
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      order.ID,
		"codigo":  order.Code,
		"total":   order.Total,
		"estado":  order.Status,
		"mensaje": fmt.Sprintf("Pedido realizado con éxito. Tu código para recoger es: %s", order.Code),
	})
}
