package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"detailwave.be/booking-api/pkg/cart"
	"detailwave.be/booking-api/pkg/config"
	"detailwave.be/booking-api/pkg/mailer"
)

var (
	Router *gin.Engine

	// Wired in main (or by tests) before InitializeRoutes.
	Carts cart.Store
	Mail  mailer.Sender
)

func InitEngine(cfg *config.Config) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	Router = gin.New()
	Router.Use(gin.Logger())
	// Rendering or dispatch panics must surface as the generic failure shape,
	// never as an unhandled fault.
	Router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://detailwave.be", "https://www.detailwave.be"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		offerings := api.Group("/offerings")
		{
			offerings.GET("/", GetAllOfferings)
			offerings.GET("/:id", GetOfferingByID)
		}

		api.GET("/categories", GetAllCategories)

		journal := api.Group("/journal")
		{
			journal.GET("/", GetAllArticles)
			journal.GET("/:id", GetArticleByID)
		}

		api.GET("/reviews", GetAllReviews)

		carts := api.Group("/cart/:sessionId")
		carts.Use(CartSessionMiddleware())
		{
			carts.GET("", GetCart)
			carts.POST("/items", AddToCart)
			carts.DELETE("/items/:index", RemoveFromCart)
			carts.DELETE("/clear", ClearCart)
		}

		// The checkout form posts here; any other verb is answered in the
		// handler so the contract's 405 shape is preserved.
		api.Any("/send-email", SendBookingEmail)
	}
}
