package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/backend/internal/database"
	"github.com/fintrackr/backend/internal/models"
)

func TestListActiveCurrencies(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurrencyService(db)

	for _, c := range []models.Currency{
		{ID: uuid.New(), Code: "USD", Symbol: "$", Name: "US Dollar", IsActive: false},
		{ID: uuid.New(), Code: "INR", Symbol: "₹", Name: "Indian Rupee", IsActive: true},
		{ID: uuid.New(), Code: "EUR", Symbol: "€", Name: "Euro", IsActive: false},
	} {
		require.NoError(t, db.Create(&c).Error)
	}

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "INR", active[0].Code)
	assert.Equal(t, "₹", active[0].Symbol)
}

func TestSeedReferenceDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, database.SeedReferenceData(db))
	require.NoError(t, database.SeedReferenceData(db))

	var currencies int64
	require.NoError(t, db.Model(&models.Currency{}).Count(&currencies).Error)
	assert.Equal(t, int64(8), currencies)

	var active int64
	require.NoError(t, db.Model(&models.Currency{}).Where("is_active = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)

	var defaults int64
	require.NoError(t, db.Model(&models.DefaultCategory{}).Count(&defaults).Error)
	assert.Equal(t, int64(5), defaults)
}
