package auth

import (
	"os"

	"github.com/danvelq/RaceTracker/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

type VerifyRequest struct {
	Password string `json:"password" validate:"required"`
}

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Verify checks the shared access secret against its bcrypt hash from the
// environment and issues a signed token on match. All resource routes
// require the token; the secret itself never appears in source.
func (s *AuthService) Verify(password string) (string, error) {
	hash := os.Getenv("ACCESS_SECRET_HASH")
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", apperrors.NewAppError(401, "Invalid password", err)
	}

	token, err := GenerateToken()
	if err != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", err)
	}
	return token, nil
}
