package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"detailwave.be/booking-api/pkg/catalog"
	"detailwave.be/booking-api/pkg/global"
	"detailwave.be/booking-api/pkg/models"
)

type AddToCartRequest struct {
	OfferingID  string `json:"offeringId" binding:"required"`
	OptionLabel string `json:"optionLabel"`
}

func cartView(c *models.Cart) map[string]interface{} {
	return map[string]interface{}{
		"session_id": c.SessionID,
		"items":      c.Items,
		"item_count": c.Len(),
		"total":      c.Total(),
	}
}

func GetCart(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	userCart, err := Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to load cart")
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(userCart)))
}

// AddToCart appends one line item. A tiered offering without an explicit
// optionLabel gets its first tier, matching what the product page pre-selects.
func AddToCart(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	offering := catalog.OfferingByID(req.OfferingID)
	if offering == nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Offering not found", []global.ValidationError{
			{Field: "offeringId", Message: "No offering exists with this id", Code: "not_found"},
		}))
		return
	}

	var option *models.PricingOption
	if req.OptionLabel != "" {
		option = offering.FindOption(req.OptionLabel)
		if option == nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Unknown pricing option", []global.ValidationError{
				{Field: "optionLabel", Message: "This offering has no such pricing option", Code: "invalid_option"},
			}))
			return
		}
	} else {
		option = offering.DefaultOption()
	}

	userCart, err := Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to load cart")
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	userCart.Add(*offering, option)

	if err := Carts.Save(c.Request.Context(), sessionID, userCart); err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to save cart")
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save cart", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(cartView(userCart)))
}

// RemoveFromCart deletes the line at the given position. Removal is
// positional because the same offering can sit on several lines.
func RemoveFromCart(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid item index", []global.ValidationError{
			{Field: "index", Message: "Must be a valid integer index", Code: "invalid_format"},
		}))
		return
	}

	userCart, err := Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to load cart")
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	if err := userCart.Remove(index); err != nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Item not found", []global.ValidationError{
			{Field: "index", Message: "No cart item exists at this position", Code: "not_found"},
		}))
		return
	}

	if err := Carts.Save(c.Request.Context(), sessionID, userCart); err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to save cart")
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(userCart)))
}

func ClearCart(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	if err := Carts.Delete(c.Request.Context(), sessionID); err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("failed to clear cart")
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to clear cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Cart cleared"}))
}
