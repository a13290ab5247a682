package models

// FundsResponse - ответ с текущим балансом кошелька.
type FundsResponse struct {
	Balance string `json:"balance"`
}

// TopUpRequest - запрос на установку баланса кошелька.
// Amount передаётся строкой, как вводится в форме пополнения.
type TopUpRequest struct {
	Amount string `json:"amount"`
}
