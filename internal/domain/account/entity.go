package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account entity. Used for customer registration and the admin back office.
type Account struct {
	id           uuid.UUID
	username     string
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewAccount(username string, email Email, passwordHash string, role Role) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return &Account{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructAccount(
	id uuid.UUID,
	username string,
	email Email,
	passwordHash string,
	role Role,
	createdAt time.Time,
) *Account {
	return &Account{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Username() string     { return a.username }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) IsAdmin() bool { return a.role == RoleAdmin }
