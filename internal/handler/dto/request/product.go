package request

// Product payloads arrive as multipart form fields; images are handled
// separately by the handler.

type CreateProductRequest struct {
	Name          string   `form:"name" binding:"required"`
	Category      string   `form:"category"`
	Description   string   `form:"description"`
	Status        string   `form:"status" binding:"required"`
	Price         int64    `form:"price" binding:"required,gt=0"`
	OriginalPrice *int64   `form:"original_price" binding:"omitempty,gt=0"`
	Tags          []string `form:"tags"`
}

type UpdateProductRequest struct {
	Name          *string  `form:"name"`
	Category      *string  `form:"category"`
	Description   *string  `form:"description"`
	Status        *string  `form:"status"`
	Price         *int64   `form:"price" binding:"omitempty,gt=0"`
	OriginalPrice *int64   `form:"original_price" binding:"omitempty,gt=0"`
	Tags          []string `form:"tags"`
}
