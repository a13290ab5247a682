package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialhax/socialhax/internal/models"
	"github.com/socialhax/socialhax/internal/services"
)

// FundsHandler обрабатывает запросы к балансу кошелька.
type FundsHandler struct {
	fundsService services.FundsService
}

func NewFundsHandler(fundsService services.FundsService) *FundsHandler {
	return &FundsHandler{fundsService: fundsService}
}

// GetFunds обрабатывает GET /api/funds.
func (h *FundsHandler) GetFunds(c echo.Context) error {
	balance := h.fundsService.Balance(c.Request().Context())
	return c.JSON(http.StatusOK, models.FundsResponse{Balance: balance.StringFixed(2)})
}

// TopUp обрабатывает POST /api/funds. Невалидная сумма не считается
// ошибкой: ответ содержит прежний баланс.
func (h *FundsHandler) TopUp(c echo.Context) error {
	var req models.TopUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	balance := h.fundsService.TopUp(c.Request().Context(), req.Amount)
	return c.JSON(http.StatusOK, models.FundsResponse{Balance: balance.StringFixed(2)})
}
