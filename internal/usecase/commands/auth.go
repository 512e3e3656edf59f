package commands

import (
	"context"

	"nailbook/internal/domain/account"
	reqdto "nailbook/internal/handler/dto/request"
	"nailbook/internal/infra"
	"nailbook/internal/pkg/errs"
	"nailbook/internal/pkg/jwt"
	"nailbook/internal/pkg/password"
	"nailbook/internal/usecase/queries"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAdminOnly            = errs.New("admin account required")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type AuthResult struct {
	Token   string
	Account *queries.AccountView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AccountView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	AdminLogin(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	accountRepo AccountRepository
	readStore   queries.AccountReadStore
	jwtService  *jwt.Service
}

func NewAuthCommands(accountRepo AccountRepository, readStore queries.AccountReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		accountRepo: accountRepo,
		readStore:   readStore,
		jwtService:  jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AccountView, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := account.NewAccount(req.Username, credentials.Email(), hash, account.RoleUser)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.accountRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.AccountView{
		ID:       entity.ID(),
		Username: entity.Username(),
		Email:    entity.Email().Value(),
		Role:     entity.Role().String(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	return a.login(ctx, req, false)
}

// AdminLogin authenticates like Login but rejects non-admin accounts, so a
// valid customer credential never opens the back office.
func (a *authCommandsImpl) AdminLogin(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	return a.login(ctx, req, true)
}

func (a *authCommandsImpl) login(ctx context.Context, req reqdto.LoginRequest, adminOnly bool) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := account.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if adminOnly && role != account.RoleAdmin {
		return nil, ErrAdminOnly
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Token: token, Account: view}, nil
}
