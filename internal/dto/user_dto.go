package dto

import "time"

type UserProfileDTO struct {
	ID              string    `json:"id"`
	PhoneNumber     string    `json:"phoneNumber"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Currency        string    `json:"currency"`
	Address         string    `json:"address"`
	CanEditCurrency bool      `json:"canEditCurrency"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpdateUserProfileRequest uses pointers so absent fields are left untouched.
// A non-nil Currency is always rejected, see UserService.UpdateProfile.
type UpdateUserProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Currency *string `json:"currency"`
	Address  *string `json:"address"`
}

type CurrencyDTO struct {
	Code     string `json:"code"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}
