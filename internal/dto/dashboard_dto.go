package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackr/backend/internal/pagination"
)

// DashboardSummary composes the transaction aggregates into a single payload.
// SavingsPercentage stays null when the previous month had no expenses; the
// other figures default to zero. The unpaginated Transactions list is kept
// for older API consumers.
type DashboardSummary struct {
	TotalIncome           decimal.Decimal                 `json:"totalIncome"`
	TotalExpense          decimal.Decimal                 `json:"totalExpense"`
	Savings               decimal.Decimal                 `json:"savings"`
	SavingsPercentage     *decimal.Decimal                `json:"savingsPercentage"`
	PreviousMonthExpense  decimal.Decimal                 `json:"previousMonthExpense"`
	Transactions          []TransactionDTO                `json:"transactions"`
	MonthWiseTransactions pagination.Page[TransactionDTO] `json:"monthWiseTransactions"`
}
