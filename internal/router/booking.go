package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"detailwave.be/booking-api/pkg/models"
)

// SendBookingEmail is the checkout submission endpoint. The response shapes
// here are the site's wire contract and deliberately bypass the APIResponse
// envelope: the provider's raw acknowledgement on success, {"error": ...}
// otherwise.
func SendBookingEmail(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The form enforces a stricter field set; the only thing the business
	// truly needs to act on a booking is a phone number to call back.
	if strings.TrimSpace(req.Phone) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}

	receipt, err := Mail.SendBooking(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("customer", req.FullName()).Msg("booking email failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("customer", req.FullName()).Str("email_id", receipt.ID).
		Int("items", len(req.Items)).Int("photos", len(req.Photos)).
		Msg("booking email sent")
	c.JSON(http.StatusOK, receipt)
}
