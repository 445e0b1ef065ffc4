package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds the composite staff credential.
type LoginRequest struct {
	StaffID    string `json:"staff_id" validate:"required,notblank"`
	Department string `json:"department" validate:"required,notblank"`
	Email      string `json:"email" validate:"required,notblank,email"`
	Password   string `json:"password" validate:"required"`
	IP         string `json:"-"`
	UserAgent  string `json:"-"`
}

// TokenPair carries an access JWT and its opaque refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResponse returns the issued tokens and profile.
type LoginResponse struct {
	Message string    `json:"message"`
	Tokens  TokenPair `json:"tokens"`
	User    Profile   `json:"user"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	IP           string `json:"-"`
	UserAgent    string `json:"-"`
}

// RefreshTokenResponse returns the rotated tokens.
type RefreshTokenResponse struct {
	Tokens TokenPair `json:"tokens"`
}

// LogoutRequest optionally names the refresh token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
	IP           string `json:"-"`
	UserAgent    string `json:"-"`
}

// RegisterRequest creates a staff member together with its login account.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	Department string `json:"department" validate:"required,notblank,max=255"`
	Role       string `json:"role" validate:"required,notblank,max=30"`
	Email      string `json:"email" validate:"required,notblank,email,max=255"`
	StaffID    string `json:"staff_id" validate:"required,notblank,max=255"`
	Password   string `json:"password" validate:"required"`
	IP         string `json:"-"`
	UserAgent  string `json:"-"`
}

// RegisterResponse wraps the created profile.
type RegisterResponse struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID    string `json:"user_id"`
	StaffRef  string `json:"staff_ref,omitempty"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
