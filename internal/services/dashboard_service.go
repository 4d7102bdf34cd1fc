package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackr/backend/internal/apperrors"
	"github.com/fintrackr/backend/internal/dto"
)

type DashboardService struct {
	transactions *TransactionService
	now          func() time.Time
}

func NewDashboardService(transactions *TransactionService) *DashboardService {
	return &DashboardService{transactions: transactions, now: time.Now}
}

// GetSummary composes the transaction aggregates into the dashboard payload.
// Any failure along the way surfaces as a single dashboard-data error; no
// partial summary is ever returned.
func (s *DashboardService) GetSummary(userID string, page, size int) (*dto.DashboardSummary, error) {
	totalIncome, err := s.transactions.TotalIncome(userID)
	if err != nil {
		return nil, apperrors.DashboardData(err)
	}

	totalExpense, err := s.transactions.TotalExpense(userID)
	if err != nil {
		return nil, apperrors.DashboardData(err)
	}

	savings := totalIncome.Sub(totalExpense)

	// First-of-month anchors keep the previous-month arithmetic safe on the
	// 29th-31st.
	nowUTC := s.now().UTC()
	year, month, _ := nowUTC.Date()
	currentMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	previousMonth := time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)

	previousMonthExpense, err := s.transactions.TotalExpenseForMonth(userID, previousMonth)
	if err != nil {
		return nil, apperrors.DashboardData(err)
	}

	// savingsPercentage stays null when the previous month had no expenses;
	// the other figures default to zero.
	var savingsPercentage *decimal.Decimal
	if previousMonthExpense.IsPositive() {
		currentMonthExpense, err := s.transactions.TotalExpenseForMonth(userID, currentMonth)
		if err != nil {
			return nil, apperrors.DashboardData(err)
		}
		pct := previousMonthExpense.Sub(currentMonthExpense).
			Div(previousMonthExpense).
			Mul(decimal.NewFromInt(100))
		savingsPercentage = &pct
	}

	monthWise, err := s.transactions.CurrentMonthTransactions(userID, page, size)
	if err != nil {
		return nil, apperrors.DashboardData(err)
	}

	all, err := s.transactions.GetAll(userID)
	if err != nil {
		return nil, apperrors.DashboardData(err)
	}

	return &dto.DashboardSummary{
		TotalIncome:           totalIncome,
		TotalExpense:          totalExpense,
		Savings:               savings,
		SavingsPercentage:     savingsPercentage,
		PreviousMonthExpense:  previousMonthExpense,
		Transactions:          all,
		MonthWiseTransactions: monthWise,
	}, nil
}
