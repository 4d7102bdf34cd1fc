package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionDTO struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Date            time.Time       `json:"date"`
	TransactionType string          `json:"transactionType"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type CreateTransactionRequest struct {
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Date            time.Time       `json:"date"`
	TransactionType string          `json:"transactionType"`
}

// UpdateTransactionRequest carries no partial-update semantics: every field
// is mandatory and replaces the stored value.
type UpdateTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Date            time.Time       `json:"date"`
	TransactionType string          `json:"transactionType"`
}
