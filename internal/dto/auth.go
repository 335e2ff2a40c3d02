package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// LoginRequest holds local credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterRequest holds the data needed to create a user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID      string              `json:"userID"`
	Username    string              `json:"username"`
	Name        string              `json:"name"`
	RoleID      string              `json:"roleID"`
	Permissions []domain.Permission `json:"permissions,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
	}
}
