package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fintrackr/backend/internal/apperrors"
	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/models"
	"github.com/fintrackr/backend/internal/pagination"
)

type TransactionService struct {
	db    *gorm.DB
	users *UserService
	now   func() time.Time
}

func NewTransactionService(db *gorm.DB, users *UserService) *TransactionService {
	return &TransactionService{db: db, users: users, now: time.Now}
}

// Create validates the request, resolves the owning user and persists the
// transaction.
func (s *TransactionService) Create(req dto.CreateTransactionRequest) (*dto.TransactionDTO, error) {
	if err := validateTransactionFields(req.Amount, req.Description, req.Category, req.Date, req.TransactionType); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(req.UserID)
	if err != nil {
		return nil, err
	}

	tx := models.FinancialTransaction{
		ID:          uuid.New(),
		UserID:      user.ID,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Date:        req.Date,
		Type:        models.TransactionType(req.TransactionType),
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, err
	}

	return transactionDTO(&tx), nil
}

func (s *TransactionService) GetByID(id uuid.UUID, userID string) (*dto.TransactionDTO, error) {
	tx, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}
	return transactionDTO(tx), nil
}

// Update replaces every mutable field; there are no partial-update semantics.
func (s *TransactionService) Update(id uuid.UUID, req dto.UpdateTransactionRequest, userID string) (*dto.TransactionDTO, error) {
	tx, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if err := validateTransactionFields(req.Amount, req.Description, req.Category, req.Date, req.TransactionType); err != nil {
		return nil, err
	}

	tx.Amount = req.Amount
	tx.Description = strings.TrimSpace(req.Description)
	tx.Category = strings.TrimSpace(req.Category)
	tx.Date = req.Date
	tx.Type = models.TransactionType(req.TransactionType)

	if err := s.db.Transaction(func(dbtx *gorm.DB) error {
		return dbtx.Save(tx).Error
	}); err != nil {
		return nil, err
	}

	return transactionDTO(tx), nil
}

// Delete hard-deletes the transaction and returns its last known state.
func (s *TransactionService) Delete(id uuid.UUID, userID string) (*dto.TransactionDTO, error) {
	tx, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	deleted := transactionDTO(tx)
	if err := s.db.Delete(tx).Error; err != nil {
		return nil, err
	}
	return deleted, nil
}

// ListPaginated pages at the database level, newest first.
func (s *TransactionService) ListPaginated(userID string, page, size int) (pagination.Page[dto.TransactionDTO], error) {
	var empty pagination.Page[dto.TransactionDTO]

	if _, err := s.users.GetUserByID(userID); err != nil {
		return empty, err
	}

	var total int64
	if err := s.db.Model(&models.FinancialTransaction{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return empty, err
	}

	var rows []models.FinancialTransaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(size).
		Offset(page * size).
		Find(&rows).Error; err != nil {
		return empty, err
	}

	return pagination.FromQuery(transactionDTOs(rows), page, size, total), nil
}

// GetAll returns the user's full transaction list, newest first. Kept for
// older dashboard consumers.
func (s *TransactionService) GetAll(userID string) ([]dto.TransactionDTO, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return nil, err
	}

	var rows []models.FinancialTransaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return transactionDTOs(rows), nil
}

// GetRecent returns the newest transactions up to limit.
func (s *TransactionService) GetRecent(userID string, limit int) ([]dto.TransactionDTO, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return nil, err
	}

	var rows []models.FinancialTransaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return transactionDTOs(rows), nil
}

// TotalIncome sums all INCOME amounts for the user. Sets are small enough to
// reduce in memory; revisit with streaming aggregation if volume grows.
func (s *TransactionService) TotalIncome(userID string) (decimal.Decimal, error) {
	return s.sumByType(userID, models.TransactionIncome)
}

// TotalExpense sums all EXPENSE amounts for the user.
func (s *TransactionService) TotalExpense(userID string) (decimal.Decimal, error) {
	return s.sumByType(userID, models.TransactionExpense)
}

func (s *TransactionService) sumByType(userID string, txType models.TransactionType) (decimal.Decimal, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return decimal.Zero, err
	}

	var rows []models.FinancialTransaction
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, tx := range rows {
		if tx.Type == txType {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

// TotalExpenseForMonth sums EXPENSE amounts dated inside the month of anchor,
// window inclusive on both ends.
func (s *TransactionService) TotalExpenseForMonth(userID string, anchor time.Time) (decimal.Decimal, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return decimal.Zero, err
	}

	start, end := monthWindow(anchor)
	var rows []models.FinancialTransaction
	if err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Find(&rows).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, tx := range rows {
		if tx.Type == models.TransactionExpense {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

// CurrentMonthTransactions fetches the current month's window, sorts newest
// first in memory and pages with the shared helper, so an out-of-range page
// comes back empty instead of failing.
func (s *TransactionService) CurrentMonthTransactions(userID string, page, size int) (pagination.Page[dto.TransactionDTO], error) {
	var empty pagination.Page[dto.TransactionDTO]

	if _, err := s.users.GetUserByID(userID); err != nil {
		return empty, err
	}

	start, end := monthWindow(s.now().UTC())
	var rows []models.FinancialTransaction
	if err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Find(&rows).Error; err != nil {
		return empty, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	return pagination.Slice(transactionDTOs(rows), page, size), nil
}

// monthWindow returns [first day 00:00:00, last day 23:59:59] of anchor's
// calendar month in UTC.
func monthWindow(anchor time.Time) (time.Time, time.Time) {
	year, month, _ := anchor.UTC().Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func validateTransactionFields(amount decimal.Decimal, description, category string, date time.Time, txType string) error {
	if !amount.IsPositive() {
		return apperrors.TransactionValidation("Amount must be positive")
	}
	if amount.Exponent() < -2 {
		return apperrors.TransactionValidation("Amount must have at most 2 decimal places")
	}
	if len(description) > 200 {
		return apperrors.TransactionValidation("Description must not exceed 200 characters")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return apperrors.TransactionValidation("Category is required")
	}
	if len(category) > 100 {
		return apperrors.TransactionValidation("Category must not exceed 100 characters")
	}
	if date.IsZero() {
		return apperrors.TransactionValidation("Date is required")
	}
	if !models.TransactionType(txType).Valid() {
		return apperrors.TransactionValidation("Transaction type must be INCOME or EXPENSE")
	}
	return nil
}

func (s *TransactionService) findOwned(id uuid.UUID, userID string) (*models.FinancialTransaction, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return nil, err
	}

	var tx models.FinancialTransaction
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.TransactionNotFound(id.String())
		}
		return nil, err
	}
	return &tx, nil
}

func transactionDTO(tx *models.FinancialTransaction) *dto.TransactionDTO {
	return &dto.TransactionDTO{
		ID:              tx.ID.String(),
		UserID:          tx.UserID,
		Amount:          tx.Amount,
		Description:     tx.Description,
		Category:        tx.Category,
		Date:            tx.Date,
		TransactionType: string(tx.Type),
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

func transactionDTOs(rows []models.FinancialTransaction) []dto.TransactionDTO {
	out := make([]dto.TransactionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *transactionDTO(&rows[i]))
	}
	return out
}
