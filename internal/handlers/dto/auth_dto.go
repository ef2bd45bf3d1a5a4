package dto

import "time"

// LoginRequest aceita formulário ou JSON
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// LoginResponse é devolvida para clientes JSON; navegadores recebem o cookie
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// SessionResponse descreve a sessão atual em GET /login
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}
