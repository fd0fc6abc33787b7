package models

import "github.com/EltonDagodog/VoteRoyale/storage"

type CoordinatorRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CoordinatorLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type JudgeLoginRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	EventID string `json:"eventId,omitempty"`
}

func TransformSessionToLoginResponse(s *storage.ConsoleSession) LoginResponse {
	return LoginResponse{
		Token:   s.Token,
		Role:    s.Role,
		Name:    s.Name,
		Email:   s.Email,
		EventID: s.EventID,
	}
}
