package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/socialhax/socialhax/internal/models"
)

// stubOrderStorage хранит коллекцию в памяти и считает записи.
type stubOrderStorage struct {
	orders []models.Order
	saves  int
}

func (s *stubOrderStorage) Load(_ context.Context) []models.Order {
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *stubOrderStorage) Save(_ context.Context, orders []models.Order) {
	s.orders = orders
	s.saves++
}

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-000001", Status: models.OrderStatusCompleted, Progress: 100, Account: "@a", Type: models.OrderTypeInstant, Price: "10.00"},
		{ID: "ORD-000002", Status: models.OrderStatusPending, Progress: 45, Account: "@b", Type: models.OrderTypePartial, Price: "20.00", Remaining: "5.00"},
		{ID: "ORD-000003", Status: models.OrderStatusPartial, Progress: 75, Account: "@c", Type: models.OrderTypePartial, Price: "30.00", Remaining: "7.50"},
		{ID: "ORD-000004", Status: models.OrderStatusFrozen, Progress: 10, Account: "@d", Type: models.OrderTypeInstant, Price: "40.00"},
		{ID: "ORD-000005", Status: models.OrderStatusCanceled, Progress: 0, Account: "@e", Type: models.OrderTypeInstant, Price: "50.00"},
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty account", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{})
		_, err := svc.Create(ctx, models.OrderDraft{Account: "  ", Price: "100"})
		if !errors.Is(err, ErrAccountRequired) {
			t.Fatalf("expected ErrAccountRequired, got %v", err)
		}
	})

	t.Run("empty price", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{})
		_, err := svc.Create(ctx, models.OrderDraft{Account: "@demo"})
		if !errors.Is(err, ErrPriceRequired) {
			t.Fatalf("expected ErrPriceRequired, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{})
		_, err := svc.Create(ctx, models.OrderDraft{Account: "@demo", Price: "abc"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("partial order gets remaining equal to price", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		order, err := svc.Create(ctx, models.OrderDraft{Account: "@demo", Price: "100", Type: models.OrderTypePartial})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if order.Price != "100.00" {
			t.Errorf("Price = %q, want %q", order.Price, "100.00")
		}
		if order.Remaining != "100.00" {
			t.Errorf("Remaining = %q, want %q", order.Remaining, "100.00")
		}
		if order.Status != models.OrderStatusPending {
			t.Errorf("Status = %q, want Pending", order.Status)
		}
		if order.Progress != 0 {
			t.Errorf("Progress = %d, want 0", order.Progress)
		}
		if !strings.HasPrefix(order.ID, "ORD-") {
			t.Errorf("ID = %q, want ORD- prefix", order.ID)
		}

		// Новый заказ встаёт в начало коллекции
		if store.orders[0].ID != order.ID {
			t.Errorf("new order is not first, got %q", store.orders[0].ID)
		}
		if len(store.orders) != 6 {
			t.Errorf("collection length = %d, want 6", len(store.orders))
		}
	})

	t.Run("instant order drops supplied remaining", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{})

		order, err := svc.Create(ctx, models.OrderDraft{
			Account:   "@demo",
			Price:     "100",
			Type:      models.OrderTypeInstant,
			Remaining: "50",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if order.Remaining != "" {
			t.Errorf("Remaining = %q, want empty", order.Remaining)
		}
	})

	t.Run("unknown type defaults to instant", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{})

		order, err := svc.Create(ctx, models.OrderDraft{Account: "@demo", Price: "100", Type: "Weird"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Type != models.OrderTypeInstant {
			t.Errorf("Type = %q, want Instant", order.Type)
		}
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("order not found", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})
		_, err := svc.Update(ctx, models.Order{ID: "ORD-UNKNOWN"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("progress is clamped", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		order, err := svc.Update(ctx, models.Order{
			ID:       "ORD-000002",
			Status:   models.OrderStatusPending,
			Progress: 250,
			Account:  "@b",
			Type:     models.OrderTypePartial,
			Price:    "20.00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Progress != 100 {
			t.Errorf("Progress = %d, want 100", order.Progress)
		}
	})

	t.Run("switch to instant clears remaining", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		order, err := svc.Update(ctx, models.Order{
			ID:    "ORD-000002",
			Type:  models.OrderTypeInstant,
			Price: "20.00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Remaining != "" {
			t.Errorf("Remaining = %q, want empty", order.Remaining)
		}
	})

	t.Run("switch to partial without remaining uses price", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		order, err := svc.Update(ctx, models.Order{
			ID:    "ORD-000001",
			Type:  models.OrderTypePartial,
			Price: "10.00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Remaining != "10.00" {
			t.Errorf("Remaining = %q, want %q", order.Remaining, "10.00")
		}
	})

	t.Run("invalid price keeps previous value", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		order, err := svc.Update(ctx, models.Order{ID: "ORD-000001", Price: "oops"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Price != "10.00" {
			t.Errorf("Price = %q, want %q", order.Price, "10.00")
		}
	})

	t.Run("invalid status keeps previous value", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		order, err := svc.Update(ctx, models.Order{ID: "ORD-000004", Status: "Exploded", Price: "40.00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != models.OrderStatusFrozen {
			t.Errorf("Status = %q, want Frozen", order.Status)
		}
	})

	t.Run("position is preserved", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		if _, err := svc.Update(ctx, models.Order{ID: "ORD-000003", Status: models.OrderStatusCompleted, Price: "30.00", Type: models.OrderTypePartial, Remaining: "7.50"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.orders[2].ID != "ORD-000003" {
			t.Errorf("order moved, position 2 holds %q", store.orders[2].ID)
		}
	})
}

func TestOrderService_Reorder(t *testing.T) {
	ctx := context.Background()

	t.Run("all valid index pairs preserve the multiset", func(t *testing.T) {
		base := sampleOrders()
		for from := 0; from < len(base); from++ {
			for to := 0; to < len(base); to++ {
				store := &stubOrderStorage{orders: sampleOrders()}
				svc := NewOrderService(store)

				result, err := svc.Reorder(ctx, from, to)
				if err != nil {
					t.Fatalf("reorder(%d, %d): unexpected error: %v", from, to, err)
				}
				if len(result) != len(base) {
					t.Fatalf("reorder(%d, %d): length = %d, want %d", from, to, len(result), len(base))
				}
				if result[to].ID != base[from].ID {
					t.Errorf("reorder(%d, %d): position %d holds %q, want %q", from, to, to, result[to].ID, base[from].ID)
				}

				gotIDs := make([]string, len(result))
				wantIDs := make([]string, len(base))
				for i := range result {
					gotIDs[i] = result[i].ID
					wantIDs[i] = base[i].ID
				}
				sort.Strings(gotIDs)
				sort.Strings(wantIDs)
				for i := range gotIDs {
					if gotIDs[i] != wantIDs[i] {
						t.Fatalf("reorder(%d, %d): multiset changed: %v vs %v", from, to, gotIDs, wantIDs)
					}
				}
			}
		}
	})

	t.Run("same index is a no-op without save", func(t *testing.T) {
		store := &stubOrderStorage{orders: sampleOrders()}
		svc := NewOrderService(store)

		result, err := svc.Reorder(ctx, 2, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result[2].ID != "ORD-000003" {
			t.Errorf("position 2 holds %q, want ORD-000003", result[2].ID)
		}
		if store.saves != 0 {
			t.Errorf("saves = %d, want 0", store.saves)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})

		for _, pair := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
			if _, err := svc.Reorder(ctx, pair[0], pair[1]); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("reorder(%d, %d): expected ErrIndexOutOfRange, got %v", pair[0], pair[1], err)
			}
		}
	})
}

func TestOrderService_IncrementProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		id    string
		delta int
		want  int
	}{
		{name: "regular increment", id: "ORD-000002", delta: 10, want: 55},
		{name: "clamped at 100", id: "ORD-000002", delta: 1000, want: 100},
		{name: "clamped at 0", id: "ORD-000002", delta: -1000, want: 0},
		{name: "negative delta", id: "ORD-000003", delta: -5, want: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})

			order, err := svc.IncrementProgress(ctx, tt.id, tt.delta)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.Progress != tt.want {
				t.Errorf("Progress = %d, want %d", order.Progress, tt.want)
			}
		})
	}

	t.Run("order not found", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})
		if _, err := svc.IncrementProgress(ctx, "ORD-UNKNOWN", 5); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestFilterByStatus(t *testing.T) {
	orders := sampleOrders()

	t.Run("all is identity", func(t *testing.T) {
		filtered := filterByStatus(orders, "all")
		if len(filtered) != len(orders) {
			t.Fatalf("length = %d, want %d", len(filtered), len(orders))
		}
		for i := range filtered {
			if filtered[i].ID != orders[i].ID {
				t.Errorf("position %d holds %q, want %q", i, filtered[i].ID, orders[i].ID)
			}
		}
	})

	t.Run("empty filter is identity", func(t *testing.T) {
		if got := filterByStatus(orders, ""); len(got) != len(orders) {
			t.Errorf("length = %d, want %d", len(got), len(orders))
		}
	})

	t.Run("case insensitive match", func(t *testing.T) {
		filtered := filterByStatus(orders, "pEnDiNg")
		if len(filtered) != 1 || filtered[0].ID != "ORD-000002" {
			t.Fatalf("unexpected result: %+v", filtered)
		}
	})

	t.Run("relative order is preserved", func(t *testing.T) {
		mixed := append(sampleOrders(), models.Order{ID: "ORD-000006", Status: models.OrderStatusPending})
		filtered := filterByStatus(mixed, "Pending")
		if len(filtered) != 2 || filtered[0].ID != "ORD-000002" || filtered[1].ID != "ORD-000006" {
			t.Fatalf("unexpected result: %+v", filtered)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := filterByStatus(orders[:1], "Frozen"); len(got) != 0 {
			t.Errorf("length = %d, want 0", len(got))
		}
	})
}

func TestOrderService_ProcessLog(t *testing.T) {
	ctx := context.Background()

	t.Run("lines follow progress", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})

		lines, err := svc.ProcessLog(ctx, "ORD-000002") // прогресс 45
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 5 {
			t.Errorf("lines = %d, want 5", len(lines))
		}
	})

	t.Run("completed order sees the whole log", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})

		lines, err := svc.ProcessLog(ctx, "ORD-000001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 10 {
			t.Fatalf("lines = %d, want 10", len(lines))
		}
		if !strings.Contains(lines[6], "@a") {
			t.Errorf("account is not substituted: %q", lines[6])
		}
	})

	t.Run("zero progress sees nothing", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})

		lines, err := svc.ProcessLog(ctx, "ORD-000005")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Errorf("lines = %d, want 0", len(lines))
		}
	})

	t.Run("order not found", func(t *testing.T) {
		svc := NewOrderService(&stubOrderStorage{orders: sampleOrders()})
		if _, err := svc.ProcessLog(ctx, "ORD-UNKNOWN"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
