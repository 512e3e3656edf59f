package commands

import (
	"context"

	"nailbook/internal/domain/product"
	reqdto "nailbook/internal/handler/dto/request"
	"nailbook/internal/infra"
	"nailbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductInput = errs.New("invalid product input")
	ErrProductWriteFailed  = errs.New("product write failed")
)

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest, imagePaths []string) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest, imagePaths []string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	productRepo ProductRepository
}

func NewProductCommands(productRepo ProductRepository) ProductCommands {
	return &productCommandsImpl{productRepo: productRepo}
}

func (p *productCommandsImpl) Create(ctx context.Context, req reqdto.CreateProductRequest, imagePaths []string) (uuid.UUID, error) {
	status, err := product.NewStatus(req.Status)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidProductInput)
	}

	tags, err := product.NewTags(req.Tags)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidProductInput)
	}

	entity, err := product.NewProduct(
		req.Name, req.Category, req.Description,
		status, req.Price, req.OriginalPrice,
		imagePaths, tags,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidProductInput)
	}

	if err := p.productRepo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrProductWriteFailed)
	}
	return entity.ID(), nil
}

// Update applies only the fields present in the request. New images replace
// the stored list wholesale, mirroring how the admin UI re-uploads the set.
func (p *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest, imagePaths []string) error {
	patch := ProductPatch{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
	}

	if req.Status != nil {
		status, err := product.NewStatus(*req.Status)
		if err != nil {
			return errs.Mark(err, ErrInvalidProductInput)
		}
		patch.Status = &status
	}

	if req.Tags != nil {
		tags, err := product.NewTags(req.Tags)
		if err != nil {
			return errs.Mark(err, ErrInvalidProductInput)
		}
		patch.Tags = tags
	}

	if len(imagePaths) > 0 {
		patch.Images = imagePaths
	}

	if err := p.productRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrProductWriteFailed)
	}
	return nil
}

func (p *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrProductWriteFailed)
	}
	return nil
}
