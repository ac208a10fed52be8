package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fairway/mq"
	"fairway/pay"
	"fairway/ratelim"
	"fairway/reservations"
	"fairway/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, rateLimiter)
	routes.AddCatalogRoutes(router, rateLimiter)
	routes.AddItineraryRoutes(router)
	routes.AddScheduleRoutes(router)
	routes.AddCheckoutRoutes(router, rateLimiter)
	routes.AddBookingRoutes(router, rateLimiter)
	routes.AddReservationRoutes(router, rateLimiter)
	routes.AddReviewsRoutes(router, rateLimiter)
	routes.AddMapRoutes(router)
	routes.AddMediaRoutes(router, rateLimiter)
	routes.AddMetricsRoutes(router)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// unique checkout idempotency keys plus TTL cleanup
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pay.InitIdempotencyIndexes(ctx); err != nil {
			log.Printf("idempotency index setup failed: %v", err)
		}
		cancel()
	}

	rateLimiter := ratelim.NewRateLimiter()

	// background expiry of held dining slots
	sweeper := reservations.NewSweeper()
	sweeper.Start()

	// domain event consumer; today it only feeds the activity log
	mq.StartWorker(context.Background(), map[string]func(mq.Event){
		"review-added": func(e mq.Event) {
			log.Printf("review added for %s %s by %s", e.EntityType, e.EntityID, e.UserID)
		},
		"banner-uploaded": func(e mq.Event) {
			log.Printf("banner updated for %s %s", e.EntityType, e.EntityID)
		},
		"checkout-completed": func(e mq.Event) {
			log.Printf("checkout %s completed for %s", e.EntityID, e.UserID)
		},
	})

	router := setupRouter(rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("🛑 Stopping slot lock sweeper...")
		sweeper.Stop()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
