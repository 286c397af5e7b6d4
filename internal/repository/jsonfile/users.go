package jsonfile

import (
	"context"
	"time"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

type usersDoc struct {
	Users []userRecord `json:"users"`
}

type userRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	TeamName     string    `json:"team_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by,omitempty"`
}

func toUserRecord(u entities.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		TeamName:     u.TeamName,
		CreatedAt:    u.CreatedAt,
		CreatedBy:    u.CreatedBy,
	}
}

func fromUserRecord(r userRecord) entities.User {
	return entities.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         entities.Role(r.Role),
		TeamName:     r.TeamName,
		CreatedAt:    r.CreatedAt,
		CreatedBy:    r.CreatedBy,
	}
}

// CreateUser appends an account, rejecting duplicate usernames.
func (s *Store) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc usersDoc
	if err := s.readDoc(usersFile, &doc); err != nil {
		return nil, err
	}
	for _, r := range doc.Users {
		if r.Username == user.Username {
			return nil, entities.ErrUserExists
		}
	}

	doc.Users = append(doc.Users, toUserRecord(user))
	if err := s.writeDoc(usersFile, doc); err != nil {
		return nil, err
	}

	s.log.Infow("user created", "username", user.Username, "role", user.Role)
	return &user, nil
}

// GetUserByUsername fetches one account by exact username.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc usersDoc
	if err := s.readDoc(usersFile, &doc); err != nil {
		return nil, err
	}
	for _, r := range doc.Users {
		if r.Username == username {
			u := fromUserRecord(r)
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// ListUsers returns every account in insertion order.
func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc usersDoc
	if err := s.readDoc(usersFile, &doc); err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(doc.Users))
	for _, r := range doc.Users {
		users = append(users, fromUserRecord(r))
	}
	return users, nil
}
