package services

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fintrackr/backend/internal/apperrors"
	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/models"
	"github.com/fintrackr/backend/internal/pagination"
)

// Request DTOs are validated at the edge as well; the service re-checks the
// name rules so no write path can bypass them.
var categoryNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

// validCategoryName trims the name and enforces the character set and the
// 100-character cap shared by the create and rename paths.
func validCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if !categoryNamePattern.MatchString(name) {
		return "", apperrors.CategoryInvalidCharacters()
	}
	if len(name) > 100 {
		return "", apperrors.CategoryNameTooLong()
	}
	return name, nil
}

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List merges active default and user categories, optionally filtered by a
// case-insensitive substring, sorted case-insensitively by name, then paged.
func (s *CategoryService) List(userID string, page, size int, searchTerm string) (pagination.Page[dto.CategoryDTO], error) {
	var empty pagination.Page[dto.CategoryDTO]

	searchTerm = strings.TrimSpace(searchTerm)
	likePattern := "%" + strings.ToLower(searchTerm) + "%"

	defaultsQuery := s.db.Where("is_active = ?", true)
	if searchTerm != "" {
		defaultsQuery = defaultsQuery.Where("LOWER(name) LIKE ?", likePattern)
	}
	var defaults []models.DefaultCategory
	if err := defaultsQuery.Find(&defaults).Error; err != nil {
		return empty, err
	}

	userQuery := s.db.Where("user_id = ? AND is_active = ?", userID, true)
	if searchTerm != "" {
		userQuery = userQuery.Where("LOWER(name) LIKE ?", likePattern)
	}
	var owned []models.UserCategory
	if err := userQuery.Find(&owned).Error; err != nil {
		return empty, err
	}

	merged := make([]dto.CategoryDTO, 0, len(defaults)+len(owned))
	for _, c := range defaults {
		merged = append(merged, dto.CategoryDTO{
			ID:        c.ID.String(),
			Name:      c.Name,
			IsDefault: true,
			IsActive:  c.IsActive,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	for _, c := range owned {
		merged = append(merged, dto.CategoryDTO{
			ID:        c.ID.String(),
			Name:      c.Name,
			IsDefault: false,
			IsActive:  c.IsActive,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return strings.ToLower(merged[i].Name) < strings.ToLower(merged[j].Name)
	})

	return pagination.Slice(merged, page, size), nil
}

// Create persists a new user category after trimming, pattern validation and
// a duplicate check across the user's visible namespace.
func (s *CategoryService) Create(userID, name string) (*dto.CategoryDTO, error) {
	name, err := validCategoryName(name)
	if err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(userID, name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.CategoryDuplicateName(name)
	}

	category := models.UserCategory{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		IsActive: true,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&category).Error
	}); err != nil {
		return nil, err
	}

	return userCategoryDTO(&category), nil
}

// Update renames a user category. The lookup is scoped to id+owner, so a
// missing and a foreign category fail the same way.
func (s *CategoryService) Update(categoryID uuid.UUID, userID, newName string) (*dto.CategoryDTO, error) {
	var category models.UserCategory
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.CategoryNotFound(categoryID.String())
		}
		return nil, err
	}

	newName, err := validCategoryName(newName)
	if err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(userID, newName, categoryID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.CategoryDuplicateName(newName)
	}

	category.Name = newName
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&category).Error
	}); err != nil {
		return nil, err
	}

	return userCategoryDTO(&category), nil
}

// Delete hard-deletes a user category. Default categories are unreachable
// here because the lookup is scoped to the user's own collection.
func (s *CategoryService) Delete(categoryID uuid.UUID, userID string) error {
	var category models.UserCategory
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.CategoryNotFound(categoryID.String())
		}
		return err
	}

	return s.db.Delete(&category).Error
}

// nameTaken is the single uniqueness check over the combined namespace of
// default categories and the user's active categories; name comparison is
// case-insensitive. exclude removes the record being renamed from the
// candidate set.
func (s *CategoryService) nameTaken(userID, name string, exclude uuid.UUID) (bool, error) {
	lower := strings.ToLower(name)

	var count int64
	if err := s.db.Model(&models.DefaultCategory{}).
		Where("LOWER(name) = ?", lower).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	query := s.db.Model(&models.UserCategory{}).
		Where("user_id = ? AND is_active = ? AND LOWER(name) = ?", userID, true, lower)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func userCategoryDTO(c *models.UserCategory) *dto.CategoryDTO {
	return &dto.CategoryDTO{
		ID:        c.ID.String(),
		Name:      c.Name,
		IsDefault: false,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
