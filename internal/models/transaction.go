package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// FinancialTransaction is owned by exactly one user and hard-deleted on
// request: there is no soft-delete column on purpose.
type FinancialTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string          `gorm:"type:varchar(64);not null;index" json:"userId"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"size:200" json:"description"`
	Category    string          `gorm:"size:100;not null" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Type        TransactionType `gorm:"size:10;not null" json:"transactionType"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
