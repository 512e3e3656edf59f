//go:build unit || e2e

package builder

import (
	"time"

	"nailbook/internal/domain/account"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
	}
}

func (a *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AccountBuilder) BuildDomain() (*account.Account, error) {
	email, err := account.NewEmail(a.Email)
	if err != nil {
		return nil, err
	}

	role, err := account.NewRole(a.Role)
	if err != nil {
		return nil, err
	}

	return account.NewAccount(a.Username, email, a.PasswordHash, role)
}

func (a *AccountBuilder) BuildView() *queries.AccountView {
	return &queries.AccountView{
		ID:        uuid.New(),
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: time.Now(),
	}
}

// Fluent builder methods
func (a *AccountBuilder) WithEmail(email string) *AccountBuilder {
	a.Email = email
	return a
}

func (a *AccountBuilder) WithUsername(username string) *AccountBuilder {
	a.Username = username
	return a
}

func (a *AccountBuilder) AsAdmin() *AccountBuilder {
	a.Role = "admin"
	return a
}
