package models

// OrderStatus описывает статус выполнения заказа.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPartial   OrderStatus = "Partial"
	OrderStatusFrozen    OrderStatus = "Frozen"
	OrderStatusCanceled  OrderStatus = "Canceled"
)

// Valid проверяет, что статус входит в закрытый перечень.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusPending, OrderStatusPartial, OrderStatusFrozen, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderType описывает способ оплаты заказа.
type OrderType string

const (
	OrderTypeInstant OrderType = "Instant"
	OrderTypePartial OrderType = "Partial"
)

// Order представляет заказ в леджере.
// Price и Remaining хранятся строками с ровно двумя знаками после запятой.
// Remaining присутствует тогда и только тогда, когда Type = Partial.
type Order struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Status    OrderStatus `json:"status"`
	Progress  int         `json:"progress"`
	Account   string      `json:"account"`
	Platform  string      `json:"platform"`
	Type      OrderType   `json:"type"`
	Price     string      `json:"price"`
	Remaining string      `json:"remaining,omitempty"`
}

// OrderDraft - черновик нового заказа из формы создания.
type OrderDraft struct {
	Account   string    `json:"account"`
	Platform  string    `json:"platform"`
	Type      OrderType `json:"type"`
	Price     string    `json:"price"`
	Remaining string    `json:"remaining,omitempty"`
}

// ReorderRequest - запрос на перестановку заказа внутри списка.
type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ProgressRequest - запрос на изменение прогресса заказа.
type ProgressRequest struct {
	Delta int `json:"delta"`
}

// OrderLogResponse - ответ со строками журнала выполнения заказа.
type OrderLogResponse struct {
	ID    string   `json:"id"`
	Lines []string `json:"lines"`
}
