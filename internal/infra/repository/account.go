package repository

import (
	"context"
	"time"

	"nailbook/internal/domain/account"
	"nailbook/internal/infra"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
)

type accountDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

type AccountRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewAccountRepository(db *mongo.Database, cfg config.MongoConfig) *AccountRepository {
	return &AccountRepository{
		coll:    db.Collection(mongodb.CollAccounts),
		timeout: cfg.QueryTimeout,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := accountDoc{
		ID:           a.ID().String(),
		Username:     a.Username(),
		Email:        a.Email().Value(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert account", err)
	}
	return nil
}
