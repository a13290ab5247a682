package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/socialhax/socialhax/internal/models"
	"github.com/socialhax/socialhax/internal/storage"
	"github.com/socialhax/socialhax/internal/utils"
)

var (
	ErrAccountRequired = errors.New("account is required")
	ErrPriceRequired   = errors.New("price is required")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrOrderNotFound   = errors.New("order not found")
	ErrIndexOutOfRange = errors.New("reorder index out of range")
)

// OrderService определяет операции над леджером заказов.
type OrderService interface {
	List(ctx context.Context, statusFilter string) []models.Order
	Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
	Update(ctx context.Context, order models.Order) (*models.Order, error)
	Reorder(ctx context.Context, from, to int) ([]models.Order, error)
	IncrementProgress(ctx context.Context, id string, delta int) (*models.Order, error)
	ProcessLog(ctx context.Context, id string) ([]string, error)
}

// OrderServiceImpl реализует OrderService. Каждая мутация выполняет
// цикл load -> преобразование -> save под одним мьютексом, поэтому
// запись в слот происходит в детерминированный момент.
type OrderServiceImpl struct {
	mu    sync.Mutex
	store OrderStorage
	now   func() time.Time
}

// NewOrderService создаёт сервис заказов.
func NewOrderService(store OrderStorage) *OrderServiceImpl {
	return &OrderServiceImpl{store: store, now: time.Now}
}

// List возвращает проекцию коллекции по статусу. "all" и пустой фильтр
// возвращают коллекцию как есть, с сохранением порядка.
func (s *OrderServiceImpl) List(ctx context.Context, statusFilter string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filterByStatus(s.store.Load(ctx), statusFilter)
}

// Create собирает заказ из черновика и ставит его в начало коллекции.
func (s *OrderServiceImpl) Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	account := strings.TrimSpace(draft.Account)
	if account == "" {
		return nil, ErrAccountRequired
	}
	if strings.TrimSpace(draft.Price) == "" {
		return nil, ErrPriceRequired
	}

	price, err := utils.NormalizeAmount(draft.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, draft.Price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.Load(ctx)

	order := models.Order{
		ID:       uniqueOrderID(orders),
		Date:     s.now().Format(storage.DateLayout),
		Status:   models.OrderStatusPending,
		Progress: 0,
		Account:  account,
		Platform: draft.Platform,
		Type:     draft.Type,
		Price:    price,
	}
	if order.Type != models.OrderTypePartial {
		order.Type = models.OrderTypeInstant
	}
	// Remaining существует только у заказов с частичной оплатой
	if order.Type == models.OrderTypePartial {
		order.Remaining = price
	}

	orders = append([]models.Order{order}, orders...)
	s.store.Save(ctx, orders)

	return &order, nil
}

// Update заменяет заказ с совпадающим id, не меняя его позицию.
// Прогресс ограничивается диапазоном [0, 100] централизованно,
// невалидные числовые поля сохраняют прежние значения.
func (s *OrderServiceImpl) Update(ctx context.Context, upd models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.Load(ctx)
	for i := range orders {
		if orders[i].ID != upd.ID {
			continue
		}

		next := mergeOrder(orders[i], upd)
		orders[i] = next
		s.store.Save(ctx, orders)
		return &next, nil
	}

	return nil, ErrOrderNotFound
}

// Reorder переставляет элемент с позиции from на позицию to.
func (s *OrderServiceImpl) Reorder(ctx context.Context, from, to int) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.Load(ctx)
	if from < 0 || from >= len(orders) || to < 0 || to >= len(orders) {
		return nil, ErrIndexOutOfRange
	}
	if from == to {
		return orders, nil
	}

	orders = reorderOrders(orders, from, to)
	s.store.Save(ctx, orders)

	return orders, nil
}

// IncrementProgress сдвигает прогресс заказа на delta с ограничением [0, 100].
func (s *OrderServiceImpl) IncrementProgress(ctx context.Context, id string, delta int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.Load(ctx)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}

		orders[i].Progress = clampProgress(orders[i].Progress + delta)
		order := orders[i]
		s.store.Save(ctx, orders)
		return &order, nil
	}

	return nil, ErrOrderNotFound
}

// processLog - строки журнала "взлома" для диалога деталей заказа.
// Заказу с прогрессом p видны первые ceil(p/10) строк.
var processLog = []string{
	"Initializing connection to target server...",
	"Bypassing firewall rules...",
	"Authenticating with encrypted credentials...",
	"Access token granted.",
	"Searching for user database...",
	"Database located: /var/db/users.db",
	"Extracting user data for %s...",
	"Decrypting password hash...",
	"Password decrypted: ••••••••••••",
	"Downloading account files: %d%% completed...",
}

// ProcessLog возвращает видимую часть журнала выполнения заказа.
func (s *OrderServiceImpl) ProcessLog(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.Load(ctx)
	for _, order := range orders {
		if order.ID != id {
			continue
		}

		visible := (clampProgress(order.Progress) + 9) / 10
		lines := make([]string, 0, visible)
		for i := 0; i < visible; i++ {
			switch i {
			case 6:
				lines = append(lines, fmt.Sprintf(processLog[i], order.Account))
			case 9:
				lines = append(lines, fmt.Sprintf(processLog[i], order.Progress))
			default:
				lines = append(lines, processLog[i])
			}
		}
		return lines, nil
	}

	return nil, ErrOrderNotFound
}

// mergeOrder строит обновлённый заказ: id неизменяем, пустые и
// невалидные поля наследуются от текущего состояния, инвариант
// "remaining только у Partial" поддерживается строго.
func mergeOrder(current, upd models.Order) models.Order {
	next := upd
	next.ID = current.ID
	next.Progress = clampProgress(upd.Progress)

	if strings.TrimSpace(next.Account) == "" {
		next.Account = current.Account
	}
	if next.Date == "" {
		next.Date = current.Date
	}
	if next.Platform == "" {
		next.Platform = current.Platform
	}
	if !next.Status.Valid() {
		next.Status = current.Status
	}

	if price, err := utils.NormalizeAmount(upd.Price); err == nil {
		next.Price = price
	} else {
		next.Price = current.Price
	}

	if next.Type != models.OrderTypeInstant && next.Type != models.OrderTypePartial {
		next.Type = current.Type
	}

	if next.Type == models.OrderTypeInstant {
		next.Remaining = ""
		return next
	}

	if remaining, err := utils.NormalizeAmount(upd.Remaining); err == nil {
		next.Remaining = remaining
	} else {
		next.Remaining = current.Remaining
	}
	if next.Remaining == "" {
		next.Remaining = next.Price
	}

	return next
}

// clampProgress ограничивает прогресс диапазоном [0, 100].
func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// reorderOrders вынимает элемент с позиции from и вставляет на позицию to,
// сдвигая промежуточные элементы. Индексы должны быть валидны.
func reorderOrders(orders []models.Order, from, to int) []models.Order {
	out := make([]models.Order, 0, len(orders))
	out = append(out, orders[:from]...)
	out = append(out, orders[from+1:]...)

	moved := orders[from]
	out = append(out[:to], append([]models.Order{moved}, out[to:]...)...)

	return out
}

// filterByStatus возвращает подмножество заказов с указанным статусом
// без учёта регистра, сохраняя их относительный порядок.
func filterByStatus(orders []models.Order, status string) []models.Order {
	if status == "" || strings.EqualFold(status, "all") {
		return orders
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if strings.EqualFold(string(order.Status), status) {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

// uniqueOrderID генерирует идентификатор, которого нет в коллекции.
func uniqueOrderID(orders []models.Order) string {
	for {
		id := utils.NewOrderID()
		taken := false
		for _, order := range orders {
			if order.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
