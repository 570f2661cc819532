package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SendOTPRequest starts a phone login by requesting a one-time code
type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

// VerifyOTPRequest completes a phone login. Name is only used when the
// phone number has no account yet.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
	Code  string `json:"code" validate:"required,numeric"`
	Name  string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}

// SendOTPResponse tells the client when it may request another code.
// Registered lets the client decide whether to collect a name on verify.
type SendOTPResponse struct {
	Phone       string `json:"phone"`
	Registered  bool   `json:"registered"`
	ResendAfter int64  `json:"resend_after_seconds"`
}

// UpdateProfileRequest updates the display name on the caller's account
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	IsNewUser    bool         `json:"is_new_user"`
}

// UserResponse represents user data in responses (without sensitive info)
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// JWTClaims represents JWT token claims
type JWTClaims struct {
	UserID string `json:"user_id"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Type   string `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LogoutRequest represents logout request
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}
