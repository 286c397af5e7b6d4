// Package domain contains application Usecases orchestrating domain logic
// for accounts and sessions.
package domain

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

// adminUserID is the fixed identity of the configured admin account; it has
// no row in the user store.
const adminUserID = "admin-001"

// Login authenticates the configured admin account or a stored user and
// issues a session token. Every rejection is the same ErrBadCredentials so
// responses never reveal whether the username exists.
func (u *Usecase) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	if u.isConfiguredAdmin(username, password) {
		return u.newSession(username, entities.RoleAdmin, adminUserID)
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			u.log.Infow("login rejected", "username", username)
			return nil, entities.ErrBadCredentials
		}
		return nil, err
	}
	if !u.hasher.Check(password, user.PasswordHash) {
		u.log.Infow("login rejected", "username", username)
		return nil, entities.ErrBadCredentials
	}

	return u.newSession(user.Username, user.Role, user.ID)
}

// CreateScanner provisions a gate-crew account.
func (u *Usecase) CreateScanner(ctx context.Context, username, password, createdBy string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}
	if username == u.cfg.Security.AdminUsername {
		return nil, entities.ErrUserExists
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.CreateUser(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         entities.RoleScanner,
		CreatedAt:    time.Now(),
		CreatedBy:    createdBy,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("scanner created", "username", username, "created_by", createdBy)
	return created, nil
}

func (u *Usecase) isConfiguredAdmin(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.cfg.Security.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.cfg.Security.AdminPassword)) == 1
	return userOK && passOK
}

func (u *Usecase) newSession(username string, role entities.Role, userID string) (*entities.Session, error) {
	token, expiresAt, err := u.tokens.Issue(username, string(role), userID)
	if err != nil {
		return nil, err
	}

	u.log.Infow("login ok", "username", username, "role", role)
	return &entities.Session{
		Token:     token,
		Role:      role,
		Username:  username,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}
