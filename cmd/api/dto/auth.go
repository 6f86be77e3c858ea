package dto

import (
	"time"

	"github.com/Abaneee/social-pulse/cmd/api/auth"
	"github.com/Abaneee/social-pulse/models"
)

// RegisterRequestDTO is the signup payload. CompanyName and Role are
// optional.
type RegisterRequestDTO struct {
	Username    string `json:"username" binding:"required" example:"jordan"`
	Email       string `json:"email" binding:"required" example:"jordan@example.com"`
	Password    string `json:"password" binding:"required" example:"hunter22"`
	CompanyName string `json:"company_name" example:"Acme Media"`
	Role        string `json:"role" example:"analyst"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"jordan@example.com"`
	Password string `json:"password" example:"hunter22"`
}

type RefreshRequestDTO struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPairDTO mirrors auth.TokenPair for swagger docs.
type TokenPairDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UserDTO is the public view of an account.
type UserDTO struct {
	ID          string    `json:"id" example:"6f1e7d1c-0b86-4b33-9c3f-1a2b3c4d5e6f"`
	Username    string    `json:"username" example:"jordan"`
	Email       string    `json:"email" example:"jordan@example.com"`
	CompanyName string    `json:"company_name" example:"Acme Media"`
	Role        string    `json:"role" example:"analyst"`
	DateJoined  time.Time `json:"date_joined" example:"2025-01-01T12:00:00Z"`
}

// AuthResponseDTO is returned by register and login.
type AuthResponseDTO struct {
	User   UserDTO      `json:"user"`
	Tokens TokenPairDTO `json:"tokens"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		CompanyName: u.CompanyName,
		Role:        u.Role,
		DateJoined:  u.DateJoined,
	}
}

func NewAuthResponseDTO(u *models.User, pair auth.TokenPair) AuthResponseDTO {
	return AuthResponseDTO{
		User:   NewUserDTO(u),
		Tokens: TokenPairDTO{Access: pair.Access, Refresh: pair.Refresh},
	}
}
