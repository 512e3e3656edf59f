//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"nailbook/internal/domain/account"
	reqdto "nailbook/internal/handler/dto/request"
	"nailbook/internal/infra"
	"nailbook/internal/pkg/jwt"
	"nailbook/internal/pkg/password"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockAccountReadStore struct {
	mock.Mock
}

func (m *MockAccountReadStore) FindByEmail(ctx context.Context, email string) (*queries.AccountView, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*queries.AccountView), args.String(1), args.Error(2)
}

func testJWTService() *jwt.Service {
	return jwt.NewService("test-secret-key", 24*time.Hour)
}

func storedAccount(role string) (*queries.AccountView, string) {
	hash, err := password.HashPassword("password123")
	if err != nil {
		panic(err)
	}
	return &queries.AccountView{
		ID:       uuid.New(),
		Username: "testuser",
		Email:    "test@example.com",
		Role:     role,
	}, hash
}

func TestRegister(t *testing.T) {
	req := reqdto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
			return a.Email().Value() == "test@example.com" && !a.IsAdmin()
		})).Return(nil)

		cmds := NewAuthCommands(repo, new(MockAccountReadStore), testJWTService())
		view, err := cmds.Register(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "testuser", view.Username)
		assert.Equal(t, "user", view.Role)
		repo.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(infra.WrapRepoErr("email already registered", assert.AnError, infra.KindDuplicateKey))

		cmds := NewAuthCommands(repo, new(MockAccountReadStore), testJWTService())
		view, err := cmds.Register(context.Background(), req)

		require.Nil(t, view)
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("weak password", func(t *testing.T) {
		weak := req
		weak.Password = "short"

		cmds := NewAuthCommands(new(MockAccountRepository), new(MockAccountReadStore), testJWTService())
		view, err := cmds.Register(context.Background(), weak)

		require.Nil(t, view)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestLogin(t *testing.T) {
	req := reqdto.LoginRequest{Email: "test@example.com", Password: "password123"}

	t.Run("success issues valid token", func(t *testing.T) {
		view, hash := storedAccount("user")
		store := new(MockAccountReadStore)
		store.On("FindByEmail", mock.Anything, "test@example.com").Return(view, hash, nil)

		svc := testJWTService()
		cmds := NewAuthCommands(new(MockAccountRepository), store, svc)
		result, err := cmds.Login(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, view, result.Account)

		claims, err := svc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.AccountID)
		assert.Equal(t, "user", claims.Role)
	})

	// Unknown email and wrong password return the same error so callers
	// cannot enumerate registered accounts.
	t.Run("unknown email", func(t *testing.T) {
		store := new(MockAccountReadStore)
		store.On("FindByEmail", mock.Anything, "test@example.com").
			Return(nil, "", infra.WrapRepoErr("account not found", assert.AnError, infra.KindNotFound))

		cmds := NewAuthCommands(new(MockAccountRepository), store, testJWTService())
		result, err := cmds.Login(context.Background(), req)

		require.Nil(t, result)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		view, hash := storedAccount("user")
		store := new(MockAccountReadStore)
		store.On("FindByEmail", mock.Anything, "test@example.com").Return(view, hash, nil)

		wrong := req
		wrong.Password = "password456"

		cmds := NewAuthCommands(new(MockAccountRepository), store, testJWTService())
		result, err := cmds.Login(context.Background(), wrong)

		require.Nil(t, result)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAdminLogin(t *testing.T) {
	req := reqdto.LoginRequest{Email: "test@example.com", Password: "password123"}

	t.Run("admin account", func(t *testing.T) {
		view, hash := storedAccount("admin")
		store := new(MockAccountReadStore)
		store.On("FindByEmail", mock.Anything, "test@example.com").Return(view, hash, nil)

		svc := testJWTService()
		cmds := NewAuthCommands(new(MockAccountRepository), store, svc)
		result, err := cmds.AdminLogin(context.Background(), req)

		require.NoError(t, err)
		claims, err := svc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("customer account rejected", func(t *testing.T) {
		view, hash := storedAccount("user")
		store := new(MockAccountReadStore)
		store.On("FindByEmail", mock.Anything, "test@example.com").Return(view, hash, nil)

		cmds := NewAuthCommands(new(MockAccountRepository), store, testJWTService())
		result, err := cmds.AdminLogin(context.Background(), req)

		require.Nil(t, result)
		require.ErrorIs(t, err, ErrAdminOnly)
	})
}
