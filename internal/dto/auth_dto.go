package dto

import "time"

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// LoginResponse returns the profile of the logged-in (or freshly created)
// user together with a session token for subsequent bearer-guarded calls.
type LoginResponse struct {
	UserID      string    `json:"userId"`
	PhoneNumber string    `json:"phoneNumber"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Currency    string    `json:"currency"`
	Address     string    `json:"address"`
	AccessToken string    `json:"accessToken,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SSOLoginResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
