// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/utils"
)

// RegisterAppointmentRoutes registers the public availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.Appointment.GetAppointmentOptions)
	r.GET("/v2/appointmentOptions", hb.Appointment.GetAppointmentOptionsV2)
	r.GET("/appointmentSpecialty", hb.Appointment.GetAppointmentSpecialties)
}

// RegisterBookingRoutes registers the booking endpoints. Creation and
// lookup-by-id stay public; the per-user listing requires a matching token.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.Booking.CreateBooking)
	r.GET("/bookings/:id", hb.Booking.GetBookingByID)
	r.GET("/bookings", middleware.JWTAuthMiddleware(), hb.Booking.GetBookings)
}

// RegisterPaymentRoutes registers the stripe endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payment.CreatePaymentIntent)
	r.POST("/payments", hb.Payment.RecordPayment)
}

// RegisterUserRoutes registers accounts, token issuance, and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.User.IssueJWT)
	r.POST("/users", hb.User.CreateUser)
	r.GET("/users", hb.User.GetUsers)
	r.GET("/users/admin/:email", hb.User.CheckAdmin)
	r.PUT("/users/admin/:id",
		middleware.JWTAuthMiddleware(),
		middleware.AdminOnlyMiddleware(hb.Users),
		hb.User.MakeAdmin)
}

// RegisterDoctorRoutes registers the admin-only roster endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/doctors")
	api.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.Users))
	{
		api.POST("", hb.Doctor.AddDoctor)
		api.GET("", hb.Doctor.GetDoctors)
		api.DELETE("/:id", hb.Doctor.DeleteDoctor)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server is running")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
