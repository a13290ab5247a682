package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderID генерирует идентификатор заказа вида "ORD-84B2A1".
// Первые шесть символов UUID всегда шестнадцатеричные.
func NewOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:6])
}
