package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialhax/socialhax/internal/models"
	"github.com/socialhax/socialhax/internal/services"
)

// OrderHandler обрабатывает запросы к леджеру заказов.
type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrders обрабатывает GET /api/orders.
// Параметр status фильтрует список; "all" и его отсутствие возвращают всё.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders := h.orderService.List(c.Request().Context(), c.QueryParam("status"))
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder обрабатывает POST /api/orders.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var draft models.OrderDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderService.Create(c.Request().Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountRequired), errors.Is(err, services.ErrPriceRequired):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvalidAmount):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid price")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusCreated, order)
}

// UpdateOrder обрабатывает PUT /api/orders/:id.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var upd models.Order
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	upd.ID = c.Param("id")

	order, err := h.orderService.Update(c.Request().Context(), upd)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, order)
}

// ReorderOrders обрабатывает POST /api/orders/reorder.
func (h *OrderHandler) ReorderOrders(c echo.Context) error {
	var req models.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	orders, err := h.orderService.Reorder(c.Request().Context(), req.From, req.To)
	if err != nil {
		if errors.Is(err, services.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusBadRequest, "index out of range")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, orders)
}

// IncrementProgress обрабатывает POST /api/orders/:id/progress.
func (h *OrderHandler) IncrementProgress(c echo.Context) error {
	var req models.ProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderService.IncrementProgress(c.Request().Context(), c.Param("id"), req.Delta)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, order)
}

// GetProcessLog обрабатывает GET /api/orders/:id/logs.
func (h *OrderHandler) GetProcessLog(c echo.Context) error {
	id := c.Param("id")
	lines, err := h.orderService.ProcessLog(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, models.OrderLogResponse{ID: id, Lines: lines})
}
