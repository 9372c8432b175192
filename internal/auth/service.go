package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService provides business logic for account registration and login.
type AuthService struct {
	db     *gorm.DB
	issuer *TokenIssuer
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, issuer *TokenIssuer) *AuthService {
	return &AuthService{db: db, issuer: issuer}
}

// RegisterDTO is the request payload for creating an account.
type RegisterDTO struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// LoginDTO is the request payload for obtaining an access token.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *UserAccount `json:"user"`
}

// Register creates a new seller account with a bcrypt-hashed password.
func (as *AuthService) Register(ctx context.Context, req *RegisterDTO) (*UserAccount, error) {
	if req == nil {
		return nil, fmt.Errorf("register request cannot be nil")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &UserAccount{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		Role:         RoleSeller,
	}

	if err := as.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user account: %w", err)
	}

	slog.Info("user account registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials and issues an access token.
func (as *AuthService) Login(ctx context.Context, req *LoginDTO) (*TokenResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("login request cannot be nil")
	}

	var user UserAccount
	if err := as.db.WithContext(ctx).First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token, err := as.issuer.Issue(&user, now)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		ExpiresAt:   now.Add(as.issuer.ttl),
		User:        &user,
	}, nil
}

// GetUser retrieves a user account by ID.
func (as *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*UserAccount, error) {
	var user UserAccount
	if err := as.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s not found: %w", userID, err)
		}
		return nil, fmt.Errorf("failed to query user account: %w", err)
	}
	return &user, nil
}
