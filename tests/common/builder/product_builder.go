//go:build unit || e2e

package builder

import (
	"time"

	"nailbook/internal/domain/product"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	Name          string
	Category      string
	Description   string
	Status        string
	Price         int64
	OriginalPrice *int64
	Images        []string
	Tags          []string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:        "Gel Polish",
		Category:    "Basic Manicure & Pedicure",
		Description: "Long lasting gel polish",
		Status:      "Active",
		Price:       150000,
		Images:      []string{"/uploads/gel-polish.jpg"},
		Tags:        []string{"Best Seller"},
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	status, err := product.NewStatus(p.Status)
	if err != nil {
		return nil, err
	}

	tags, err := product.NewTags(p.Tags)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(p.Name, p.Category, p.Description, status, p.Price, p.OriginalPrice, p.Images, tags)
}

func (p *ProductBuilder) BuildView() *queries.ProductView {
	now := time.Now()
	return &queries.ProductView{
		ID:            uuid.New(),
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		Status:        p.Status,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        p.Images,
		Tags:          p.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price int64) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) WithOriginalPrice(price int64) *ProductBuilder {
	p.OriginalPrice = &price
	return p
}

func (p *ProductBuilder) WithStatus(status string) *ProductBuilder {
	p.Status = status
	return p
}

func (p *ProductBuilder) WithTags(tags ...string) *ProductBuilder {
	p.Tags = tags
	return p
}
