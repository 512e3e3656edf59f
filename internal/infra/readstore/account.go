package readstore

import (
	"context"
	"errors"
	"time"

	"nailbook/internal/infra"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type accountViewDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

type AccountReadStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewAccountReadStore(db *mongo.Database, cfg config.MongoConfig) *AccountReadStore {
	return &AccountReadStore{
		coll:    db.Collection(mongodb.CollAccounts),
		timeout: cfg.QueryTimeout,
	}
}

func (s *AccountReadStore) FindByEmail(ctx context.Context, email string) (*queries.AccountView, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc accountViewDoc
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find account by email", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, "", infra.WrapRepoErr("corrupt account id", err)
	}

	view := &queries.AccountView{
		ID:        id,
		Username:  doc.Username,
		Email:     doc.Email,
		Role:      doc.Role,
		CreatedAt: doc.CreatedAt,
	}
	return view, doc.PasswordHash, nil
}
