package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"artist-portfolio/internal/core/auth"
	"artist-portfolio/internal/domain"
	"artist-portfolio/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuth signs in admin users. Every stored user is an admin.
type AdminAuth struct {
	users domain.UserRepository
	jwt   *auth.JWTer
	log   *zap.Logger
}

func NewAdminAuth(users domain.UserRepository, j *auth.JWTer, l *zap.Logger) *AdminAuth {
	if l == nil {
		l = zap.NewNop()
	}
	return &AdminAuth{users: users, jwt: j, log: l}
}

// Bootstrap creates username with password unless it already exists.
// It reports whether a user was created.
func (a *AdminAuth) Bootstrap(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	existing, err := a.users.GetUserByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("lookup %q: %w", username, err)
	}
	if existing != nil {
		return false, nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if _, err := a.users.CreateUser(ctx, domain.User{Username: username, Password: hash}); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("create %q: %w", username, err)
	}
	a.log.Info("admin user created", zap.String("username", username))
	return true, nil
}

// Login checks the password and returns a signed token.
func (a *AdminAuth) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	u, err := a.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", domain.User{}, err
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		a.log.Warn("admin login rejected", zap.String("username", username))
		return "", domain.User{}, ErrInvalidCredentials
	}
	tok, err := a.jwt.Issue(u.ID, u.Username, auth.RoleAdmin)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("issue token: %w", err)
	}
	return tok, *u, nil
}

// Me returns the user behind a token's uid, or nil when it was removed.
func (a *AdminAuth) Me(ctx context.Context, uid int) (*domain.User, error) {
	return a.users.GetUser(ctx, uid)
}
