// Package entities contains core business entities.
package entities

import "time"

// Role enumerates account roles.
type Role string

const (
	// RoleAdmin can manage tickets, users and scanners.
	RoleAdmin Role = "admin"
	// RoleScanner can verify QR payloads and record attendance.
	RoleScanner Role = "scanner"
	// RoleMember is a team account created together with its ticket.
	RoleMember Role = "member"
)

// User is a domain representation of an account. For members the ID is the
// team code printed on the entry pass.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	TeamName     string
	CreatedAt    time.Time
	CreatedBy    string
}

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	Role      Role
	Username  string
	UserID    string
	ExpiresAt time.Time
}
