package repository

import (
	"context"
	"errors"
	"time"

	"nailbook/internal/domain/product"
	"nailbook/internal/infra"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/commands"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type productDoc struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Category      string    `bson:"category"`
	Description   string    `bson:"description,omitempty"`
	Status        string    `bson:"status"`
	Price         int64     `bson:"price"`
	OriginalPrice *int64    `bson:"original_price,omitempty"`
	Images        []string  `bson:"images"`
	Tags          []string  `bson:"tags"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type ProductRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewProductRepository(db *mongo.Database, cfg config.MongoConfig) *ProductRepository {
	return &ProductRepository{
		coll:    db.Collection(mongodb.CollProducts),
		timeout: cfg.QueryTimeout,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc productDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by id", err)
	}

	return &commands.ProductSnapshot{
		ID:     id,
		Name:   doc.Name,
		Price:  doc.Price,
		Status: doc.Status,
	}, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	tags := make([]string, len(p.Tags()))
	for i, t := range p.Tags() {
		tags[i] = string(t)
	}

	doc := productDoc{
		ID:            p.ID().String(),
		Name:          p.Name(),
		Category:      p.Category(),
		Description:   p.Description(),
		Status:        p.Status().String(),
		Price:         p.Price(),
		OriginalPrice: p.OriginalPrice(),
		Images:        p.Images(),
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, patch commands.ProductPatch) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = patch.Status.String()
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.OriginalPrice != nil {
		set["original_price"] = *patch.OriginalPrice
	}
	if patch.Images != nil {
		set["images"] = patch.Images
	}
	if patch.Tags != nil {
		tags := make([]string, len(patch.Tags))
		for i, t := range patch.Tags {
			tags[i] = string(t)
		}
		set["tags"] = tags
	}

	res, err := r.coll.UpdateByID(ctx, id.String(), bson.M{"$set": set})
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
