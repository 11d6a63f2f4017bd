package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"eticket/internal/shared/config"
	"eticket/internal/shared/utils/delay"
)

// The storefront has exactly one member account. This is a stub, not an
// authentication boundary: it exists so the member area behaves like the
// real site, and nothing in the booking flow depends on it.
const (
	stubUsername = "member"
	stubPassword = "password"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}

type service struct {
	config       *config.Config
	passwordHash []byte
}

// NewService hashes the stub credential at startup so login still goes
// through a real bcrypt comparison.
func NewService(cfg *config.Config) (Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(stubPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &service{
		config:       cfg,
		passwordHash: hash,
	}, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	// Simulated backend round-trip, same as the mock providers
	if err := delay.Wait(ctx, s.config.Auth.LoginDelay); err != nil {
		return nil, err
	}

	if req.Username != stubUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokenPair(req.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Username: req.Username,
		Tokens:   *tokens,
	}, nil
}

func (s *service) generateTokenPair(username string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"username": username,
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      now.Add(s.config.JWT.JWTExpiresIn).Unix(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"username": username,
		"type":     "refresh",
		"iat":      now.Unix(),
		"exp":      now.Add(s.config.JWT.RefreshExpiresIn).Unix(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}
