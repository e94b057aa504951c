package dto

import (
	"time"

	"github.com/spec-kit/recruitment-service/internal/domain"
)

// StaffLoginRequest payload.
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffRegisterRequest payload.
type StaffRegisterRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
	Role     domain.StaffRole `json:"role"`
}

// StaffResponse describes a staff account.
type StaffResponse struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Email string           `json:"email"`
	Role  domain.StaffRole `json:"role"`
}

// StaffLoginResponse carries the bearer token.
type StaffLoginResponse struct {
	Staff     StaffResponse `json:"staff"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}
