package services

import (
	"gorm.io/gorm"

	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/models"
)

type CurrencyService struct {
	db *gorm.DB
}

func NewCurrencyService(db *gorm.DB) *CurrencyService {
	return &CurrencyService{db: db}
}

// ListActive returns the active currencies, code-sorted for a stable order.
func (s *CurrencyService) ListActive() ([]dto.CurrencyDTO, error) {
	var rows []models.Currency
	if err := s.db.Where("is_active = ?", true).Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.CurrencyDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, dto.CurrencyDTO{
			Code:     c.Code,
			Symbol:   c.Symbol,
			Name:     c.Name,
			IsActive: c.IsActive,
		})
	}
	return out, nil
}
