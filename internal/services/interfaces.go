package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/socialhax/socialhax/internal/models"
)

// OrderStorage определяет слот леджера заказов.
// Load никогда не возвращает ошибку: повреждённые данные заменяются
// встроенным набором примеров. Save логирует сбои записи сам.
type OrderStorage interface {
	Load(ctx context.Context) []models.Order
	Save(ctx context.Context, orders []models.Order)
}

// FundsStorage определяет слот баланса кошелька.
type FundsStorage interface {
	Load(ctx context.Context) decimal.Decimal
	Save(ctx context.Context, balance decimal.Decimal)
}

// ProfilePicStorage определяет одноразовый слот аватара.
type ProfilePicStorage interface {
	Put(ctx context.Context, dataURI string)
	Take(ctx context.Context) (string, error)
}
