package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fintrackr/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Currency{},
		&models.DefaultCategory{},
		&models.UserCategory{},
		&models.FinancialTransaction{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	phone := "+91" + uuid.NewString()[:10]
	user := models.User{
		ID:          uuid.NewString(),
		PhoneNumber: &phone,
		Currency:    models.DefaultCurrency,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestTransaction(t *testing.T, db *gorm.DB, userID string, amount string, txType models.TransactionType, date time.Time) *models.FinancialTransaction {
	t.Helper()

	tx := models.FinancialTransaction{
		ID:       uuid.New(),
		UserID:   userID,
		Amount:   decimal.RequireFromString(amount),
		Category: "Groceries",
		Date:     date,
		Type:     txType,
	}
	require.NoError(t, db.Create(&tx).Error)
	return &tx
}

func seedDefaultCategory(t *testing.T, db *gorm.DB, name string) *models.DefaultCategory {
	t.Helper()

	cat := models.DefaultCategory{ID: uuid.New(), Name: name, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	return &cat
}
