package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName   = errors.New("product name must not be empty")
	ErrInvalidPrice  = errors.New("price must be positive")
	ErrInvalidStatus = errors.New("invalid product status")
	ErrInvalidTag    = errors.New("invalid product tag")
)

const DefaultCategory = "Basic Manicure & Pedicure"

// Product is a salon treatment offered for booking. Prices are whole rupiah.
type Product struct {
	id            uuid.UUID
	name          string
	category      string
	description   string
	status        Status
	price         int64
	originalPrice *int64
	images        []string
	tags          []Tag
	createdAt     time.Time
	updatedAt     time.Time
}

func NewProduct(
	name, category, description string,
	status Status,
	price int64,
	originalPrice *int64,
	images []string,
	tags []Tag,
) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if originalPrice != nil && *originalPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if category = strings.TrimSpace(category); category == "" {
		category = DefaultCategory
	}

	return &Product{
		id:            uuid.New(),
		name:          name,
		category:      category,
		description:   description,
		status:        status,
		price:         price,
		originalPrice: originalPrice,
		images:        images,
		tags:          tags,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name, category, description string,
	status Status,
	price int64,
	originalPrice *int64,
	images []string,
	tags []Tag,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		category:      category,
		description:   description,
		status:        status,
		price:         price,
		originalPrice: originalPrice,
		images:        images,
		tags:          tags,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) Category() string      { return p.category }
func (p *Product) Description() string   { return p.description }
func (p *Product) Status() Status        { return p.status }
func (p *Product) Price() int64          { return p.price }
func (p *Product) OriginalPrice() *int64 { return p.originalPrice }
func (p *Product) Images() []string      { return p.images }
func (p *Product) Tags() []Tag           { return p.tags }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Product) IsActive() bool { return p.status == StatusActive }
