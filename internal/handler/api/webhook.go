package api

import (
	"errors"
	"net/http"

	"nailbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.PaymentCommands
}

func NewWebhookHandler(cmds commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment notification
// @Description Receive and reconcile a payment provider notification
// @Tags payments
// @Accept json
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /payment/notification [post]
func (h *WebhookHandler) Notification(c *gin.Context) {
	// Signature verification needs the body exactly as the provider sent it,
	// so the payload is read raw instead of bound through a struct.
	raw, err := c.GetRawData()
	if err != nil {
		abortWithText(c, http.StatusBadRequest, err, "Failed to read request body")
		return
	}

	if _, err := h.cmds.HandleNotification(c.Request.Context(), raw); err != nil {
		switch {
		case errors.Is(err, commands.ErrMalformedNotification),
			errors.Is(err, commands.ErrMissingField),
			errors.Is(err, commands.ErrInvalidSignature):
			abortWithText(c, http.StatusBadRequest, err, "Invalid notification")
		case errors.Is(err, commands.ErrUnknownBooking):
			abortWithText(c, http.StatusNotFound, err, "Unknown order")
		default:
			abortWithText(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.String(http.StatusOK, "OK")
}

// abortWithText answers the provider in plain text, matching the bare "OK"
// success body. The error is still recorded for the logging middleware.
func abortWithText(c *gin.Context, status int, err error, msg string) {
	_ = c.Error(err)
	c.String(status, msg)
	c.Abort()
}
