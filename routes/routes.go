package routes

import (
	"net/http"

	"fairway/auth"
	"fairway/bookings"
	"fairway/catalog"
	"fairway/checkout"
	"fairway/itinerary"
	"fairway/maps"
	"fairway/media"
	"fairway/metrics"
	"fairway/middleware"
	"fairway/pay"
	"fairway/ratelim"
	"fairway/reservations"
	"fairway/reviews"
	"fairway/schedule"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.GET("/api/auth/me", middleware.Authenticate(auth.Me))
}

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/courses", rl.Limit(catalog.GetCourses))
	router.GET("/api/courses/:id", catalog.GetCourse)
	router.POST("/api/courses", middleware.Authenticate(catalog.CreateCourse))
	router.PUT("/api/courses/:id", middleware.Authenticate(catalog.UpdateCourse))
	router.DELETE("/api/courses/:id", middleware.Authenticate(catalog.DeleteCourse))

	router.GET("/api/hotels", rl.Limit(catalog.GetHotels))
	router.GET("/api/hotels/:id", catalog.GetHotel)
	router.POST("/api/hotels", middleware.Authenticate(catalog.CreateHotel))
	router.PUT("/api/hotels/:id", middleware.Authenticate(catalog.UpdateHotel))
	router.DELETE("/api/hotels/:id", middleware.Authenticate(catalog.DeleteHotel))

	router.GET("/api/restaurants", rl.Limit(catalog.GetRestaurants))
	router.GET("/api/restaurants/:id", catalog.GetRestaurant)
	router.POST("/api/restaurants", middleware.Authenticate(catalog.CreateRestaurant))
	router.PUT("/api/restaurants/:id", middleware.Authenticate(catalog.UpdateRestaurant))
	router.DELETE("/api/restaurants/:id", middleware.Authenticate(catalog.DeleteRestaurant))

	router.GET("/api/experiences", rl.Limit(catalog.GetExperiences))
	router.GET("/api/experiences/:id", catalog.GetExperience)
	router.POST("/api/experiences", middleware.Authenticate(catalog.CreateExperience))
	router.PUT("/api/experiences/:id", middleware.Authenticate(catalog.UpdateExperience))
	router.DELETE("/api/experiences/:id", middleware.Authenticate(catalog.DeleteExperience))

	router.GET("/api/packages", rl.Limit(catalog.GetPackages))
	router.GET("/api/packages/:id", catalog.GetPackage)
	router.POST("/api/packages", middleware.Authenticate(catalog.CreatePackage))
	router.DELETE("/api/packages/:id", middleware.Authenticate(catalog.DeletePackage))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/api/itinerary", middleware.Authenticate(itinerary.GetItinerary))
	router.POST("/api/itinerary/items", middleware.Authenticate(itinerary.AddItem))
	router.DELETE("/api/itinerary/items/:itemType/:itemId", middleware.Authenticate(itinerary.RemoveItem))
	router.PUT("/api/itinerary/notes", middleware.Authenticate(itinerary.UpdateNotes))
	router.PUT("/api/itinerary/dates", middleware.Authenticate(itinerary.UpdateDates))
	router.DELETE("/api/itinerary", middleware.Authenticate(itinerary.ClearItinerary))
}

func AddScheduleRoutes(router *httprouter.Router) {
	router.GET("/api/schedule", middleware.Authenticate(schedule.GetSchedule))
	router.POST("/api/schedule/place", middleware.Authenticate(schedule.PlaceEntry))
	router.DELETE("/api/schedule/place/:itemType/:itemId", middleware.Authenticate(schedule.RemovePlacement))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/checkout", rl.Limit(middleware.Authenticate(pay.Idempotency(checkout.Checkout))))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/bookings", middleware.Authenticate(bookings.GetBookings))
	router.GET("/api/bookings/:id", middleware.Authenticate(bookings.GetBooking))
	router.POST("/api/bookings/:id/cancel", middleware.Authenticate(bookings.CancelBooking))
	router.GET("/api/bookings/:id/pdf", rl.Limit(middleware.Authenticate(bookings.PrintVoucher)))
}

func AddReservationRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/restaurants/:id/slots", rl.Limit(reservations.GetSlots))
	router.POST("/api/restaurants/:id/lock", rl.Limit(middleware.Authenticate(reservations.LockSlot)))
	router.POST("/api/restaurants/:id/confirm", rl.Limit(middleware.Authenticate(reservations.ConfirmSlot)))
	router.GET("/ws/restaurants/:id/:date", reservations.HandleAvailabilityWS)
}

func AddReviewsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/reviews/:entityType/:entityId", rl.Limit(reviews.GetReviews))
	router.GET("/api/reviews/:entityType/:entityId/:reviewId", rl.Limit(reviews.GetReview))
	router.POST("/api/reviews/:entityType/:entityId", rl.Limit(middleware.Authenticate(reviews.AddReview)))
	router.PUT("/api/reviews/:entityType/:entityId/:reviewId", rl.Limit(middleware.Authenticate(reviews.EditReview)))
	router.DELETE("/api/reviews/:entityType/:entityId/:reviewId", rl.Limit(middleware.Authenticate(reviews.DeleteReview)))
}

func AddMapRoutes(router *httprouter.Router) {
	router.GET("/api/maps/:city", maps.GetMapConfig)
	router.GET("/api/maps/:city/markers", maps.GetMarkers)
}

func AddMediaRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/media/:entityType/:entityId/banner", rl.Limit(middleware.Authenticate(media.UploadBanner)))
}

func AddMetricsRoutes(router *httprouter.Router) {
	router.GET("/metrics", metrics.Handler())
}
