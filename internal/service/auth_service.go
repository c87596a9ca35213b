package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// AuthService handles registration, login and token parsing.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// Claims defines the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Register validates the input, checks username/email uniqueness, hashes the
// password and stores the account seeded with the default category list.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (models.User, string, error) {
	username := strings.TrimSpace(p.Username)
	email := strings.TrimSpace(p.Email)

	if username == "" || email == "" || p.Password == "" {
		return models.User{}, "", fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}
	if len(p.Password) < minPasswordLen {
		return models.User{}, "", fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLen)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	if existing != nil {
		return models.User{}, "", fmt.Errorf("%w: email already in use", ErrValidation)
	}
	existing, err = s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, "", err
	}
	if existing != nil {
		return models.User{}, "", fmt.Errorf("%w: username already in use", ErrValidation)
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return models.User{}, "", err
	}

	u := models.User{
		Username:            username,
		Email:               email,
		PasswordHash:        hash,
		Name:                strings.TrimSpace(p.Name),
		Surname:             strings.TrimSpace(p.Surname),
		Photo:               models.DefaultPhoto,
		Categories:          append([]string(nil), models.DefaultCategories...),
		FavouriteCategories: nil,
		CreatedAt:           time.Now().UTC(),
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		return models.User{}, "", err
	}
	u.ID = id

	token, err := s.issueToken(id)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

// Login verifies the credentials and returns the account with a fresh token.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return models.User{}, "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return models.User{}, "", err
	}
	// Unknown user and wrong password answer identically.
	if u == nil || verifyPassword(u.PasswordHash, password) != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return *u, token, nil
}

// ParseToken validates the JWT and returns the embedded user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
