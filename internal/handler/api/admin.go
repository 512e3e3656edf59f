package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	reqdto "nailbook/internal/handler/dto/request"
	resdto "nailbook/internal/handler/dto/response"
	"nailbook/internal/handler/httperr"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/commands"
	"nailbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	productCmds commands.ProductCommands
	bookingCmds commands.BookingCommands
	productQ    queries.ProductQueries
	bookingQ    queries.BookingQueries
	uploadCfg   config.UploadConfig
}

func NewAdminHandler(
	productCmds commands.ProductCommands,
	bookingCmds commands.BookingCommands,
	productQ queries.ProductQueries,
	bookingQ queries.BookingQueries,
	cfg config.Config,
) *AdminHandler {
	return &AdminHandler{
		productCmds: productCmds,
		bookingCmds: bookingCmds,
		productQ:    productQ,
		bookingQ:    bookingQ,
		uploadCfg:   cfg.Upload,
	}
}

// @Summary Create product
// @Description Create a product with optional image uploads
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param request formData reqdto.CreateProductRequest true "Product fields"
// @Success 201 {object} resdto.CreateProductResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/products [post]
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	imagePaths, err := h.saveImages(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to save images", nil)
		return
	}

	id, err := h.productCmds.Create(c.Request.Context(), req, imagePaths)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidProductInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateProductResponse{ID: id})
}

// @Summary Update product
// @Description Update product fields; new images replace the stored set
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request formData reqdto.UpdateProductRequest true "Product fields"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	imagePaths, err := h.saveImages(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to save images", nil)
		return
	}

	if err := h.productCmds.Update(c.Request.Context(), id, req, imagePaths); err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, commands.ErrInvalidProductInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete product
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	if err := h.productCmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List products (admin)
// @Description List every product regardless of status, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} map[string]string
// @Router /admin/products [get]
func (h *AdminHandler) ListProducts(c *gin.Context) {
	views, err := h.productQ.ListAdmin(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductList(views))
}

// @Summary List bookings (admin)
// @Description List bookings with optional date, product, status and name filters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param product_id query string false "Product filter"
// @Param status query string false "Status filter"
// @Param search query string false "Customer name search"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filters := queries.BookingFilters{
		Date:   c.Query("date"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if v := c.Query("product_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filters.ProductID = &id
		}
	}

	views, err := h.bookingQ.ListAdmin(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

// @Summary Override booking status
// @Description Force a booking status, used when reconciliation lags
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id}/status [put]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.bookingCmds.OverrideStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatusOverride):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.bookingCmds.DeleteBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Total revenue
// @Description Sum of prices across paid bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TotalPemasukanResponse
// @Failure 401 {object} map[string]string
// @Router /admin/total-pemasukan [get]
func (h *AdminHandler) TotalPemasukan(c *gin.Context) {
	total, err := h.bookingQ.TotalPaidRevenue(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.TotalPemasukanResponse{TotalPemasukan: total})
}

// saveImages stores uploaded files under the configured directory and
// returns their public paths. Filenames carry a millisecond timestamp to
// keep concurrent uploads from colliding.
func (h *AdminHandler) saveImages(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > h.uploadCfg.MaxImages {
		return nil, fmt.Errorf("at most %d images allowed", h.uploadCfg.MaxImages)
	}

	paths := make([]string, 0, len(files))
	for i, file := range files {
		path, err := h.saveImage(c, file, i)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (h *AdminHandler) saveImage(c *gin.Context, file *multipart.FileHeader, seq int) (string, error) {
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), seq, filepath.Ext(file.Filename))
	dst := filepath.Join(h.uploadCfg.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
