package api

import (
	"errors"
	"net/http"

	reqdto "nailbook/internal/handler/dto/request"
	resdto "nailbook/internal/handler/dto/response"
	"nailbook/internal/handler/httperr"
	"nailbook/internal/usecase/commands"
	"nailbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a slot for a product and open a payment session
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
		case errors.Is(err, commands.ErrInvalidBookingInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		case errors.Is(err, commands.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot already taken", nil)
		case errors.Is(err, commands.ErrPaymentSessionFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create payment session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Booking:   resdto.FromBookingView(result.Booking),
		SnapToken: result.SnapToken,
	})
}

// @Summary Taken times
// @Description List time labels already booked for a product on a date
// @Tags bookings
// @Produce json
// @Param product_id query string true "Product ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.TakenTimesResponse
// @Failure 500 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) TakenTimes(c *gin.Context) {
	productIDStr := c.Query("product_id")
	date := c.Query("date")
	if productIDStr == "" || date == "" {
		c.JSON(http.StatusOK, resdto.TakenTimesResponse{Times: []string{}})
		return
	}

	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		c.JSON(http.StatusOK, resdto.TakenTimesResponse{Times: []string{}})
		return
	}

	times, err := h.q.TakenTimes(c.Request.Context(), productID, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.TakenTimesResponse{Times: times})
}

// @Summary My bookings
// @Description List bookings made with an email address, newest first
// @Tags bookings
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /mybookings [get]
func (h *BookingHandler) MyBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("email query parameter is required"), "Email is required", nil)
		return
	}

	views, err := h.q.ListByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}
