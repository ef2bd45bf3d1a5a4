package dto

import (
	"time"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Name     string `form:"name" json:"name" binding:"max=100"`
	Password string `form:"password" json:"password" binding:"required,max=72"`
	Role     string `form:"role" json:"role" binding:"omitempty,oneof=ADMIN STAFF"`
}

// ResetPasswordRequest representa a troca de senha feita por um admin
type ResetPasswordRequest struct {
	Password string `form:"password" json:"password" binding:"required,max=72"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ListUsersQuery contém os filtros da listagem de usuários
type ListUsersQuery struct {
	Role     string `form:"role" binding:"omitempty,oneof=ADMIN STAFF"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=500"`
}
