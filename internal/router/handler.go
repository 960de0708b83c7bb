package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"detailwave.be/booking-api/pkg/catalog"
	"detailwave.be/booking-api/pkg/global"
	"detailwave.be/booking-api/pkg/models"
)

func HealthCheck(c *gin.Context) {
	if err := Carts.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Cart storage connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "storage": "Connected"}))
}

func GetAllOfferings(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Offerings()))
}

func GetOfferingByID(c *gin.Context) {
	id := c.Param("id")

	offering := catalog.OfferingByID(id)
	if offering == nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Offering not found", []global.ValidationError{
			{Field: "id", Message: "No offering exists with this id", Code: "not_found"},
		}))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(offering))
}

func GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(models.Categories()))
}

func GetAllArticles(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Articles()))
}

func GetArticleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid article id", []global.ValidationError{
			{Field: "id", Message: "Must be a valid integer", Code: "invalid_format"},
		}))
		return
	}

	article := catalog.ArticleByID(id)
	if article == nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Article not found", []global.ValidationError{
			{Field: "id", Message: "No article exists with this id", Code: "not_found"},
		}))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(article))
}

func GetAllReviews(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Reviews()))
}
