package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/socialhax/socialhax/internal/kvstore"
	"go.uber.org/zap"
)

// FundsKey - слот с балансом кошелька.
const FundsKey = "socialhax-funds"

// DefaultFunds - баланс по умолчанию, когда слот пуст или повреждён.
var DefaultFunds = decimal.RequireFromString("12450.00")

// FundsStore хранит баланс кошелька в слоте ключ-значение.
type FundsStore struct {
	kv     kvstore.Store
	logger *zap.Logger
}

// NewFundsStore создаёт хранилище баланса.
func NewFundsStore(kv kvstore.Store, logger *zap.Logger) *FundsStore {
	return &FundsStore{kv: kv, logger: logger}
}

// Load читает баланс. Отсутствие или повреждение данных заменяется
// значением по умолчанию.
func (s *FundsStore) Load(ctx context.Context) decimal.Decimal {
	raw, err := s.kv.Get(ctx, FundsKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn("failed to read funds slot, falling back to default", zap.Error(err))
		}
		return DefaultFunds
	}

	// Слот хранит JSON-число; кавычки допускаются для обратной совместимости.
	d, err := decimal.NewFromString(strings.Trim(strings.TrimSpace(raw), `"`))
	if err != nil {
		s.logger.Warn("funds slot is corrupt, falling back to default", zap.Error(err))
		return DefaultFunds
	}

	return d
}

// Save записывает баланс с двумя знаками после запятой.
// Ошибка записи логируется и не возвращается.
func (s *FundsStore) Save(ctx context.Context, balance decimal.Decimal) {
	if err := s.kv.Set(ctx, FundsKey, balance.StringFixed(2)); err != nil {
		s.logger.Error("failed to persist funds", zap.Error(err))
	}
}
