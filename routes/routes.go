package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"danielsbarber/handlers"
	"danielsbarber/utils"
)

// RegisterRoutes registers all endpoints on the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("/available-times", hb.GetAvailableTimes)
			bookings.POST("", hb.CreateBooking)
		}

		api.POST("/create-payment-intent", hb.CreatePaymentIntent)

		api.GET("/barbers", hb.GetBarbers)
		api.GET("/services", hb.GetServices)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}
