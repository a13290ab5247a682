package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

// stubFundsStorage хранит баланс в памяти и считает записи.
type stubFundsStorage struct {
	balance decimal.Decimal
	saves   int
}

func (s *stubFundsStorage) Load(_ context.Context) decimal.Decimal {
	return s.balance
}

func (s *stubFundsStorage) Save(_ context.Context, balance decimal.Decimal) {
	s.balance = balance
	s.saves++
}

func TestFundsService_TopUp(t *testing.T) {
	ctx := context.Background()
	initial := decimal.RequireFromString("12450.00")

	t.Run("valid amount replaces balance", func(t *testing.T) {
		store := &stubFundsStorage{balance: initial}
		svc := NewFundsService(store)

		got := svc.TopUp(ctx, "999.5")
		if got.StringFixed(2) != "999.50" {
			t.Errorf("balance = %s, want 999.50", got.StringFixed(2))
		}
		if store.saves != 1 {
			t.Errorf("saves = %d, want 1", store.saves)
		}
	})

	t.Run("non numeric input keeps previous balance", func(t *testing.T) {
		store := &stubFundsStorage{balance: initial}
		svc := NewFundsService(store)

		got := svc.TopUp(ctx, "a lot")
		if !got.Equal(initial) {
			t.Errorf("balance = %s, want %s", got, initial)
		}
		if store.saves != 0 {
			t.Errorf("saves = %d, want 0", store.saves)
		}
	})

	t.Run("negative amount keeps previous balance", func(t *testing.T) {
		store := &stubFundsStorage{balance: initial}
		svc := NewFundsService(store)

		got := svc.TopUp(ctx, "-10")
		if !got.Equal(initial) {
			t.Errorf("balance = %s, want %s", got, initial)
		}
	})

	t.Run("zero is a valid balance", func(t *testing.T) {
		store := &stubFundsStorage{balance: initial}
		svc := NewFundsService(store)

		got := svc.TopUp(ctx, "0")
		if !got.Equal(decimal.Zero) {
			t.Errorf("balance = %s, want 0", got)
		}
	})
}

func TestFundsService_Balance(t *testing.T) {
	store := &stubFundsStorage{balance: decimal.RequireFromString("77.70")}
	svc := NewFundsService(store)

	if got := svc.Balance(context.Background()); got.StringFixed(2) != "77.70" {
		t.Errorf("balance = %s, want 77.70", got.StringFixed(2))
	}
}
