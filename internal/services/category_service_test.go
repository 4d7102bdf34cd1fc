package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/backend/internal/apperrors"
	"github.com/fintrackr/backend/internal/models"
)

func TestCategoryCreateAndList(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	seedDefaultCategory(t, db, "Groceries")
	seedDefaultCategory(t, db, "Salary")

	created, err := svc.Create(user.ID, "  Travel  ")
	require.NoError(t, err)
	assert.Equal(t, "Travel", created.Name)
	assert.False(t, created.IsDefault)
	assert.True(t, created.IsActive)

	page, err := svc.List(user.ID, 0, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)

	// Case-insensitive sort: Groceries, Salary, Travel
	names := make([]string, 0, len(page.Content))
	for _, c := range page.Content {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Groceries", "Salary", "Travel"}, names)
}

func TestCategoryListMarksDefaults(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	seedDefaultCategory(t, db, "Salary")
	_, err := svc.Create(user.ID, "Rent")
	require.NoError(t, err)

	page, err := svc.List(user.ID, 0, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Content, 2)

	byName := map[string]bool{}
	for _, c := range page.Content {
		byName[c.Name] = c.IsDefault
	}
	assert.True(t, byName["Salary"])
	assert.False(t, byName["Rent"])
}

func TestCategoryListSearchFilter(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	seedDefaultCategory(t, db, "Food and Dining")
	seedDefaultCategory(t, db, "Salary")
	_, err := svc.Create(user.ID, "Fast Food")
	require.NoError(t, err)

	page, err := svc.List(user.ID, 0, 10, "FOOD")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
	for _, c := range page.Content {
		assert.Contains(t, []string{"Fast Food", "Food and Dining"}, c.Name)
	}
}

func TestCategoryListPagination(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	for _, name := range []string{"Aaa", "Bbb", "Ccc", "Ddd", "Eee"} {
		_, err := svc.Create(user.ID, name)
		require.NoError(t, err)
	}

	page, err := svc.List(user.ID, 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.First)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Ccc", page.Content[0].Name)
	assert.Equal(t, "Ddd", page.Content[1].Name)

	// Out-of-range page is empty, not an error
	beyond, err := svc.List(user.ID, 9, 2, "")
	require.NoError(t, err)
	assert.Empty(t, beyond.Content)
	assert.True(t, beyond.Last)
}

func TestCategoryCreateRejectsDuplicateOfDefault(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	seedDefaultCategory(t, db, "Groceries")

	_, err := svc.Create(user.ID, "groceries")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "already exists")
}

func TestCategoryCreateRejectsDuplicateOfOwn(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	_, err := svc.Create(user.ID, "Travel")
	require.NoError(t, err)

	_, err = svc.Create(user.ID, "TRAVEL")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_VALIDATION_ERROR", appErr.Code)
}

func TestCategoryCreateAllowsSameNameForDifferentUsers(t *testing.T) {
	db := newTestDB(t)
	userA := createTestUser(t, db)
	userB := createTestUser(t, db)
	svc := NewCategoryService(db)

	_, err := svc.Create(userA.ID, "Travel")
	require.NoError(t, err)
	_, err = svc.Create(userB.ID, "Travel")
	require.NoError(t, err)
}

func TestCategoryCreateRejectsInvalidCharacters(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	for _, name := range []string{"", "   ", "Food & Drink", "café"} {
		_, err := svc.Create(user.ID, name)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr), "name %q", name)
		assert.Equal(t, "CATEGORY_VALIDATION_ERROR", appErr.Code)
	}
}

func TestCategoryNameLengthLimit(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	long := strings.Repeat("a", 101)
	_, err := svc.Create(user.ID, long)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "100 characters")

	var count int64
	require.NoError(t, db.Model(&models.UserCategory{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Exactly 100 characters is fine; renaming past the cap is not
	created, err := svc.Create(user.ID, strings.Repeat("b", 100))
	require.NoError(t, err)

	_, err = svc.Update(uuid.MustParse(created.ID), user.ID, long)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_VALIDATION_ERROR", appErr.Code)
}

func TestCategoryUpdateExcludesSelfFromDuplicateCheck(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	created, err := svc.Create(user.ID, "Travel")
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// Renaming to its own name (case change only) must pass
	updated, err := svc.Update(id, user.ID, "TRAVEL")
	require.NoError(t, err)
	assert.Equal(t, "TRAVEL", updated.Name)
}

func TestCategoryUpdateRejectsTakenName(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	_, err := svc.Create(user.ID, "Travel")
	require.NoError(t, err)
	created, err := svc.Create(user.ID, "Rent")
	require.NoError(t, err)

	_, err = svc.Update(uuid.MustParse(created.ID), user.ID, "travel")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_VALIDATION_ERROR", appErr.Code)
}

func TestCategoryUpdateForeignCategoryNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db)
	svc := NewCategoryService(db)

	created, err := svc.Create(owner.ID, "Travel")
	require.NoError(t, err)

	_, err = svc.Update(uuid.MustParse(created.ID), "someone-else", "Trips")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_NOT_FOUND", appErr.Code)
}

func TestCategoryDelete(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCategoryService(db)

	created, err := svc.Create(user.ID, "Travel")
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(id, user.ID))

	page, err := svc.List(user.ID, 0, 10, "")
	require.NoError(t, err)
	assert.Empty(t, page.Content)

	err = svc.Delete(id, user.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_NOT_FOUND", appErr.Code)
}
