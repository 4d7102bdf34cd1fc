package services

import (
	"errors"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fintrackr/backend/internal/apperrors"
	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Login looks up a user by phone number and creates one with a fresh UUID and
// the default currency when absent.
func (s *UserService) Login(phoneNumber string) (*dto.LoginResponse, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, apperrors.Validation("Phone number is required")
	}

	var user models.User
	err := s.db.Where("phone_number = ?", phoneNumber).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:          uuid.NewString(),
			PhoneNumber: &phoneNumber,
			Currency:    models.DefaultCurrency,
			IsActive:    true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return toLoginResponse(&user), nil
}

// CreateUserIfNotExists backs the SSO flow. Lookup order: by the provider's
// subject UID first, then by email; a brand new user is keyed by the UID.
// SSO implies a verified email.
func (s *UserService) CreateUserIfNotExists(externalUID, email, name string) (string, error) {
	if externalUID == "" {
		return "", apperrors.Validation("External UID is required")
	}

	var user models.User
	err := s.db.Where("id = ?", externalUID).First(&user).Error
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if email != "" {
		err = s.db.Where("email = ?", email).First(&user).Error
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
	}

	if strings.TrimSpace(name) == "" && email != "" {
		name = strings.Split(email, "@")[0]
	}

	user = models.User{
		ID:            externalUID,
		Name:          name,
		Currency:      models.DefaultCurrency,
		IsActive:      true,
		EmailVerified: true,
	}
	if email != "" {
		user.Email = &email
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetUserByID resolves the owning user for other services.
func (s *UserService) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.UserNotFound(userID)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetProfile(userID string) (*dto.UserProfileDTO, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	var txCount int64
	if err := s.db.Model(&models.FinancialTransaction{}).
		Where("user_id = ?", userID).Count(&txCount).Error; err != nil {
		return nil, err
	}

	return toProfileDTO(user, txCount == 0), nil
}

// UpdateProfile applies name/email/address changes. Any request carrying a
// currency value is rejected outright; canEditCurrency on the profile tells
// clients to keep the field read-only.
func (s *UserService) UpdateProfile(userID string, req dto.UpdateUserProfileRequest) (*dto.UserProfileDTO, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		return nil, apperrors.CurrencyEditNotAllowed()
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) > 100 {
			return nil, apperrors.Validation("Name must not exceed 100 characters")
		}
		user.Name = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" {
			if len(email) > 100 {
				return nil, apperrors.Validation("Email must not exceed 100 characters")
			}
			if err := checkmail.ValidateFormat(email); err != nil {
				return nil, apperrors.Validation("Email should be valid")
			}
			user.Email = &email
		} else {
			user.Email = nil
		}
	}
	if req.Address != nil {
		address := strings.TrimSpace(*req.Address)
		if len(address) > 200 {
			return nil, apperrors.Validation("Address must not exceed 200 characters")
		}
		user.Address = address
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(user).Error
	}); err != nil {
		return nil, err
	}

	var txCount int64
	if err := s.db.Model(&models.FinancialTransaction{}).
		Where("user_id = ?", userID).Count(&txCount).Error; err != nil {
		return nil, err
	}
	return toProfileDTO(user, txCount == 0), nil
}

func toLoginResponse(user *models.User) *dto.LoginResponse {
	resp := &dto.LoginResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Currency:  user.Currency,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.PhoneNumber != nil {
		resp.PhoneNumber = *user.PhoneNumber
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}
	return resp
}

func toProfileDTO(user *models.User, canEditCurrency bool) *dto.UserProfileDTO {
	profile := &dto.UserProfileDTO{
		ID:              user.ID,
		Name:            user.Name,
		Currency:        user.Currency,
		Address:         user.Address,
		CanEditCurrency: canEditCurrency,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
	if user.PhoneNumber != nil {
		profile.PhoneNumber = *user.PhoneNumber
	}
	if user.Email != nil {
		profile.Email = *user.Email
	}
	return profile
}
