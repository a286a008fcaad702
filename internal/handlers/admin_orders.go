package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cafetec/cafetec-api/internal/logging"
	"github.com/cafetec/cafetec-api/internal/models"
	"github.com/cafetec/cafetec-api/internal/mykafka"
	"github.com/cafetec/cafetec-api/internal/service/orders"
)

// AdminOrderHandler serves the staff fulfillment views: lookup by pickup
// code, finalization, the pending list with deletion and the sales total.
type AdminOrderHandler struct {
	Svc      *orders.Service
	Producer *mykafka.Producer
}

func (h *AdminOrderHandler) Search(c echo.Context) error {
	code := c.Param("pedido")
	if code == "" {
		return errorResponse(c, http.StatusBadRequest, "Por favor, ingresa un código de pedido.")
	}

	order, err := h.Svc.FindByCode(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "No se encontró un pedido con ese código.")
		}
		return errorResponse(c, http.StatusInternalServerError, "Error al buscar el pedido.")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *AdminOrderHandler) Finalize(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.finalize_order")

	order, err := h.Svc.Finalize(ctx, c.Param("pedido"))
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "No se encontró un pedido con ese código.")
		}
		l.Error("finalize_order_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, "Error al finalizar el pedido.")
	}

	publish(c, h.Producer, mykafka.TopicOrderEvents, fmt.Sprint(order.ID), map[string]interface{}{
		"type":    "order_completed",
		"orderID": order.ID,
		"codigo":  order.Code,
		"total":   order.Total,
	})

	l.Info("finalize_order_success", "order_id", order.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": "Pedido finalizado exitosamente.",
		"pedido":  order,
	})
}

// List returns orders in a lifecycle state, pending by default.
func (h *AdminOrderHandler) List(c echo.Context) error {
	status := c.QueryParam("estado")
	if status == "" {
		status = models.OrderStatusPending
	}
	if status != models.OrderStatusPending && status != models.OrderStatusCompleted {
		return errorResponse(c, http.StatusBadRequest, "Estado inválido.")
	}

	list, err := h.Svc.List(c.Request().Context(), status)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Error al cargar los pedidos.")
	}

	return c.JSON(http.StatusOK, echo.Map{"pedidos": list})
}

func (h *AdminOrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_order")

	id, err := strconv.Atoi(c.Param("pedido"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ID de pedido inválido.")
	}

	order, err := h.Svc.Delete(ctx, uint(id))
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "No se encontró el pedido.")
		}
		l.Error("delete_order_error", "order_id", id, "error", err)
		return errorResponse(c, http.StatusInternalServerError, "Error al eliminar el pedido.")
	}

	publish(c, h.Producer, mykafka.TopicOrderEvents, fmt.Sprint(order.ID), map[string]interface{}{
		"type":    "order_deleted",
		"orderID": order.ID,
		"codigo":  order.Code,
	})

	l.Info("delete_order_success", "order_id", order.ID)
	return c.NoContent(http.StatusNoContent)
}

// Sales lists completed orders and the aggregate of their totals.
func (h *AdminOrderHandler) Sales(c echo.Context) error {
	list, total, err := h.Svc.Sales(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Error al cargar las ventas.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_ventas": total,
		"pedidos":      list,
	})
}
