package services

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// FundsService определяет операции с балансом кошелька.
type FundsService interface {
	Balance(ctx context.Context) decimal.Decimal
	TopUp(ctx context.Context, rawAmount string) decimal.Decimal
}

// FundsServiceImpl реализует FundsService.
type FundsServiceImpl struct {
	mu    sync.Mutex
	store FundsStorage
}

// NewFundsService создаёт сервис кошелька.
func NewFundsService(store FundsStorage) *FundsServiceImpl {
	return &FundsServiceImpl{store: store}
}

// Balance возвращает текущий баланс.
func (s *FundsServiceImpl) Balance(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Load(ctx)
}

// TopUp устанавливает баланс равным введённой сумме. Нечисловой или
// отрицательный ввод молча игнорируется: прежнее значение сохраняется
// и возвращается вызывающему.
func (s *FundsServiceImpl) TopUp(ctx context.Context, rawAmount string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil || amount.IsNegative() {
		return s.store.Load(ctx)
	}

	s.store.Save(ctx, amount)
	return amount
}
