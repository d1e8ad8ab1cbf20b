package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
	"go-restaurant-os/pkg/jwt"
)

var ErrWrongPassword = errors.New("current password is incorrect")

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*SessionInfo, error)
	ChangePassword(username, oldPassword, newPassword string) error
	SetPermissions(actor model.AccountInfo, username string, permissions []string) error
}

type LoginResponse struct {
	Token       string            `json:"token"`
	Account     model.AccountInfo `json:"account"`
	Permissions []string          `json:"permissions"` // flat array for easy checking
}

type SessionInfo struct {
	Account     model.AccountInfo `json:"account"`
	Permissions []string          `json:"permissions"`
}

type authService struct {
	accounts *store.Accounts
}

func NewAuthService(accounts *store.Accounts) AuthService {
	return &authService{accounts: accounts}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// Fail closed: unknown username and wrong password are the same error.
	account := s.accounts.Find(username)
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: rotate the token version on every login
	account.TokenVersion = uuid.New().String()
	if err := s.accounts.Save(); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	token, err := jwt.GenerateToken(account.Username, account.DisplayName, account.Role, account.Permissions, account.TokenVersion)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResponse{
		Token:       token,
		Account:     account.ToInfo(),
		Permissions: account.Permissions,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*SessionInfo, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	account := s.accounts.Find(claims.Username)
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	// Strict session: a newer login invalidates older tokens
	if account.TokenVersion != claims.TokenVersion {
		return nil, jwt.ErrInvalidToken
	}

	return &SessionInfo{
		Account:     account.ToInfo(),
		Permissions: account.Permissions,
	}, nil
}

func (s *authService) ChangePassword(username, oldPassword, newPassword string) error {
	account := s.accounts.Find(username)
	if account == nil {
		return ErrInvalidCredentials
	}
	if !account.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}
	if newPassword == "" {
		return validationError("password", "must not be empty")
	}
	if err := account.SetPassword(newPassword); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.accounts.Save()
}

// SetPermissions replaces an account's permission set. Administrator only.
func (s *authService) SetPermissions(actor model.AccountInfo, username string, permissions []string) error {
	if actor.Role != model.RoleAdministrator {
		return ErrForbidden
	}
	account := s.accounts.Find(username)
	if account == nil {
		return ErrInvalidCredentials
	}
	account.Permissions = permissions
	return s.accounts.Save()
}
