package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/socialhax/socialhax/internal/kvstore"
	"github.com/socialhax/socialhax/internal/models"
	"go.uber.org/zap"
)

// OrdersKey - слот, в котором хранится весь леджер заказов.
const OrdersKey = "socialhax-orders"

// DateLayout - формат отметки времени создания заказа.
const DateLayout = "2006-01-02 15:04"

// OrderStore - единственный источник правды о коллекции заказов.
// Повреждённые или отсутствующие данные не считаются ошибкой: вместо
// них подставляется встроенный набор примеров.
type OrderStore struct {
	kv     kvstore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewOrderStore создаёт хранилище заказов поверх слота ключ-значение.
func NewOrderStore(kv kvstore.Store, logger *zap.Logger) *OrderStore {
	return &OrderStore{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

// Load читает коллекцию из слота. Отсутствие или повреждение данных
// не поднимается наверх: возвращается набор примеров с текущей
// отметкой времени.
func (s *OrderStore) Load(ctx context.Context) []models.Order {
	raw, err := s.kv.Get(ctx, OrdersKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn("failed to read orders slot, falling back to seed", zap.Error(err))
		}
		return s.seed()
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.logger.Warn("orders slot is corrupt, falling back to seed", zap.Error(err))
		return s.seed()
	}

	return orders
}

// Save сериализует и записывает всю коллекцию. Пустая коллекция
// никогда не затирает ранее сохранённую непустую: это защита от
// случайной очистки. Ошибка записи логируется и не возвращается.
func (s *OrderStore) Save(ctx context.Context, orders []models.Order) {
	if len(orders) == 0 && s.hasPersistedOrders(ctx) {
		s.logger.Warn("refusing to overwrite persisted orders with an empty collection")
		return
	}

	data, err := json.Marshal(orders)
	if err != nil {
		s.logger.Error("failed to serialize orders", zap.Error(err))
		return
	}

	if err := s.kv.Set(ctx, OrdersKey, string(data)); err != nil {
		s.logger.Error("failed to persist orders", zap.Error(err))
	}
}

// hasPersistedOrders проверяет, что в слоте лежит непустой массив.
func (s *OrderStore) hasPersistedOrders(ctx context.Context) bool {
	raw, err := s.kv.Get(ctx, OrdersKey)
	if err != nil {
		return false
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return false
	}

	return len(orders) > 0
}

// seed возвращает встроенный набор из пяти заказов, по одному на каждый
// статус, с текущей отметкой времени.
func (s *OrderStore) seed() []models.Order {
	stamp := s.now().Format(DateLayout)

	return []models.Order{
		{
			ID:       "ORD-84B2A1",
			Date:     stamp,
			Status:   models.OrderStatusCompleted,
			Progress: 100,
			Account:  "@john_doe_fb",
			Platform: "facebook",
			Type:     models.OrderTypeInstant,
			Price:    "50000.00",
		},
		{
			ID:        "ORD-C3D7E5",
			Date:      stamp,
			Status:    models.OrderStatusPending,
			Progress:  45,
			Account:   "@jane_doe_ig",
			Platform:  "instagram",
			Type:      models.OrderTypePartial,
			Price:     "15000.00",
			Remaining: "7500.00",
		},
		{
			ID:        "ORD-F9A8B7",
			Date:      stamp,
			Status:    models.OrderStatusPartial,
			Progress:  75,
			Account:   "@hacker_x_yt",
			Platform:  "youtube",
			Type:      models.OrderTypePartial,
			Price:     "25000.00",
			Remaining: "6250.00",
		},
		{
			ID:       "ORD-1E2D3C",
			Date:     stamp,
			Status:   models.OrderStatusFrozen,
			Progress: 10,
			Account:  "@tiktok_star",
			Platform: "tiktok",
			Type:     models.OrderTypeInstant,
			Price:    "65000.00",
		},
		{
			ID:       "ORD-5B6D92",
			Date:     stamp,
			Status:   models.OrderStatusCanceled,
			Progress: 0,
			Account:  "@crypto_whale_x",
			Platform: "x",
			Type:     models.OrderTypeInstant,
			Price:    "30000.00",
		},
	}
}
