package database

import (
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fintrackr/backend/internal/models"
)

// Reference data inserted once at first run. Only INR starts active; the
// frontend offers the rest behind a feature flag.
var seedCurrencies = []models.Currency{
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", IsActive: true},
	{Code: "USD", Symbol: "$", Name: "US Dollar", IsActive: false},
	{Code: "EUR", Symbol: "€", Name: "Euro", IsActive: false},
	{Code: "GBP", Symbol: "£", Name: "British Pound", IsActive: false},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", IsActive: false},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", IsActive: false},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", IsActive: false},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", IsActive: false},
}

var seedDefaultCategories = []string{
	"Salary",
	"Business income",
	"Subscriptions",
	"Groceries",
	"Food and Dining",
}

// SeedReferenceData inserts currencies and default categories if their
// collections are empty. Safe to call on every startup.
func SeedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Currency{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		currencies := make([]models.Currency, len(seedCurrencies))
		copy(currencies, seedCurrencies)
		for i := range currencies {
			currencies[i].ID = uuid.New()
		}
		if err := db.Create(&currencies).Error; err != nil {
			return err
		}
		slog.Info("seeded currencies", "count", len(currencies))
	}

	if err := db.Model(&models.DefaultCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		categories := make([]models.DefaultCategory, 0, len(seedDefaultCategories))
		for _, name := range seedDefaultCategories {
			categories = append(categories, models.DefaultCategory{
				ID:       uuid.New(),
				Name:     name,
				IsActive: true,
			})
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		slog.Info("seeded default categories", "count", len(categories))
	}

	return nil
}
