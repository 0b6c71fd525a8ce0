package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPINEmpty         = errors.New("pin cannot be empty")
	ErrInvalidPIN       = errors.New("invalid pin")
	ErrPINNotConfigured = errors.New("no access pin configured")
)

// AuthService checks the single owner's access PIN. Only its bcrypt hash
// is kept in memory.
type AuthService struct {
	pinHash []byte
	tokens  *TokenService
}

func NewAuthService(pin string, tokens *TokenService) (*AuthService, error) {
	if pin == "" {
		return nil, ErrPINNotConfigured
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to hash pin: %w", err)
	}

	return &AuthService{
		pinHash: hash,
		tokens:  tokens,
	}, nil
}

type LoginInput struct {
	PIN string
}

// Login returns a signed session token when the PIN matches.
func (s *AuthService) Login(input LoginInput) (string, error) {
	if input.PIN == "" {
		return "", ErrPINEmpty
	}

	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(input.PIN)); err != nil {
		return "", ErrInvalidPIN
	}

	return s.tokens.GenerateToken(OwnerSubject)
}
