package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/backend/internal/apperrors"
	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/models"
)

func testDate(day int) time.Time {
	return time.Date(2025, time.June, day, 12, 0, 0, 0, time.UTC)
}

func TestTransactionCreate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	created, err := svc.Create(dto.CreateTransactionRequest{
		UserID:          user.ID,
		Amount:          decimal.RequireFromString("499.99"),
		Description:     "  monthly groceries  ",
		Category:        "Groceries",
		Date:            testDate(10),
		TransactionType: "EXPENSE",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.UserID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("499.99")))
	assert.Equal(t, "monthly groceries", created.Description)
	assert.Equal(t, "EXPENSE", created.TransactionType)
	assert.NotEmpty(t, created.ID)
}

func TestTransactionCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	base := dto.CreateTransactionRequest{
		UserID:          user.ID,
		Amount:          decimal.RequireFromString("100"),
		Category:        "Groceries",
		Date:            testDate(1),
		TransactionType: "EXPENSE",
	}

	cases := []struct {
		name   string
		mutate func(*dto.CreateTransactionRequest)
	}{
		{"zero amount", func(r *dto.CreateTransactionRequest) { r.Amount = decimal.Zero }},
		{"negative amount", func(r *dto.CreateTransactionRequest) { r.Amount = decimal.RequireFromString("-5") }},
		{"too many decimals", func(r *dto.CreateTransactionRequest) { r.Amount = decimal.RequireFromString("10.999") }},
		{"missing category", func(r *dto.CreateTransactionRequest) { r.Category = "  " }},
		{"zero date", func(r *dto.CreateTransactionRequest) { r.Date = time.Time{} }},
		{"unknown type", func(r *dto.CreateTransactionRequest) { r.TransactionType = "TRANSFER" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			_, err := svc.Create(req)
			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "TRANSACTION_VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestTransactionCreateUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewTransactionService(db, NewUserService(db))

	_, err := svc.Create(dto.CreateTransactionRequest{
		UserID:          "missing",
		Amount:          decimal.RequireFromString("10"),
		Category:        "Groceries",
		Date:            testDate(1),
		TransactionType: "INCOME",
	})
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_NOT_FOUND", appErr.Code)
}

func TestTransactionGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	tx := createTestTransaction(t, db, user.ID, "250.00", models.TransactionExpense, testDate(5))

	got, err := svc.GetByID(tx.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID.String(), got.ID)

	updated, err := svc.Update(tx.ID, dto.UpdateTransactionRequest{
		Amount:          decimal.RequireFromString("300.50"),
		Description:     "rent",
		Category:        "Housing",
		Date:            testDate(6),
		TransactionType: "EXPENSE",
	}, user.ID)
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("300.50")))
	assert.Equal(t, "Housing", updated.Category)

	deleted, err := svc.Delete(tx.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID.String(), deleted.ID)
	assert.Equal(t, "Housing", deleted.Category)

	_, err = svc.GetByID(tx.ID, user.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TRANSACTION_NOT_FOUND", appErr.Code)
}

func TestTransactionForeignOwnerNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db)
	other := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	tx := createTestTransaction(t, db, owner.ID, "99.00", models.TransactionIncome, testDate(2))

	_, err := svc.GetByID(tx.ID, other.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TRANSACTION_NOT_FOUND", appErr.Code)
}

func TestTransactionListPaginated(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	for day := 1; day <= 5; day++ {
		createTestTransaction(t, db, user.ID, "10.00", models.TransactionExpense, testDate(day))
	}

	page, err := svc.ListPaginated(user.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 2)

	// Newest first
	assert.Equal(t, testDate(5), page.Content[0].Date.UTC())
	assert.Equal(t, testDate(4), page.Content[1].Date.UTC())

	last, err := svc.ListPaginated(user.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, last.Content, 1)
	assert.True(t, last.Last)
}

func TestTransactionGetRecent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	for day := 1; day <= 4; day++ {
		createTestTransaction(t, db, user.ID, "10.00", models.TransactionExpense, testDate(day))
	}

	recent, err := svc.GetRecent(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, testDate(4), recent[0].Date.UTC())
	assert.Equal(t, testDate(3), recent[1].Date.UTC())
}

func TestTransactionTotals(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	createTestTransaction(t, db, user.ID, "1000.00", models.TransactionIncome, testDate(1))
	createTestTransaction(t, db, user.ID, "2500.00", models.TransactionIncome, testDate(2))
	createTestTransaction(t, db, user.ID, "300.25", models.TransactionExpense, testDate(3))
	createTestTransaction(t, db, user.ID, "199.75", models.TransactionExpense, testDate(4))

	income, err := svc.TotalIncome(user.ID)
	require.NoError(t, err)
	assert.True(t, income.Equal(decimal.RequireFromString("3500.00")))

	expense, err := svc.TotalExpense(user.ID)
	require.NoError(t, err)
	assert.True(t, expense.Equal(decimal.RequireFromString("500.00")))
}

func TestTransactionTotalExpenseForMonth(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	// Inside June, boundary inclusive
	createTestTransaction(t, db, user.ID, "100.00", models.TransactionExpense,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	createTestTransaction(t, db, user.ID, "50.00", models.TransactionExpense,
		time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC))
	// Outside June
	createTestTransaction(t, db, user.ID, "999.00", models.TransactionExpense,
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	// Income never counts
	createTestTransaction(t, db, user.ID, "777.00", models.TransactionIncome, testDate(15))

	total, err := svc.TotalExpenseForMonth(user.ID, testDate(20))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("150.00")))
}

func TestTransactionCurrentMonthPagination(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))
	svc.now = func() time.Time { return testDate(15) }

	for day := 1; day <= 3; day++ {
		createTestTransaction(t, db, user.ID, "10.00", models.TransactionExpense, testDate(day))
	}
	createTestTransaction(t, db, user.ID, "10.00", models.TransactionExpense,
		time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC))

	page, err := svc.CurrentMonthTransactions(user.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, testDate(3), page.Content[0].Date.UTC())

	// Out-of-range page clamps to empty content
	beyond, err := svc.CurrentMonthTransactions(user.ID, 7, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Content)
	assert.Equal(t, int64(3), beyond.TotalElements)
}

func TestTransactionUnknownID(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewTransactionService(db, NewUserService(db))

	_, err := svc.GetByID(uuid.New(), user.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TRANSACTION_NOT_FOUND", appErr.Code)
}
