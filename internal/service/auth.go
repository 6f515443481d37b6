package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/events"
	"github.com/shoply/backend/internal/hash"
	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
	"github.com/shoply/backend/internal/tokens"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
	Events        *events.Producer
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
	IsAdmin      bool
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "email", email)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}

	if _, err := s.Repo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         "user",
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	event := map[string]any{"type": "user_registered", "userID": user.ID, "email": user.Email}
	if err := s.Events.PublishEvent(ctx, "user_events", strconv.FormatUint(uint64(user.ID), 10), event); err != nil {
		l.Error("kafka publish error", "error", err)
	}

	l.Info("user_registered", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "email", email)

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", ErrForbidden)
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid email or password", ErrForbidden)
	}

	userID := strconv.FormatUint(uint64(user.ID), 10)

	accessExp := time.Now().Add(accessTokenTTL)
	accessToken, err := tokens.NewAccessToken(s.JWTSecret, userID, user.Role, accessExp)
	if err != nil {
		return nil, err
	}

	refreshExp := time.Now().Add(refreshTokenTTL)
	refreshToken, err := tokens.NewRefreshToken(s.RefreshSecret, userID, refreshExp)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshExp,
	}
	if err := s.Repo.AddRefreshToken(ctx, record); err != nil {
		return nil, err
	}

	l.Info("user_logged_in", "user_id", user.ID)
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
		IsAdmin:      user.Role == "admin",
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.Repo.RevokeRefreshToken(ctx, refreshToken)
}
