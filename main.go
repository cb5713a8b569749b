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

	"vastra/db"
	"vastra/mailer"
	"vastra/models"
	"vastra/mq"
	"vastra/orders"
	"vastra/ratelim"
	"vastra/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/bson"
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
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
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
	routes.AddCartRoutes(router)
	routes.AddOrderRoutes(router, rateLimiter)
	routes.AddProductRoutes(router)
	routes.AddHeroSlideRoutes(router)
	routes.AddUserRoutes(router)
	routes.AddTryOnRoutes(router, rateLimiter)
	routes.AddAnalyticsRoutes(router)
	routes.AddStaticRoutes(router)

	return router
}

// handleStoreEvent runs side effects off the request path. Mail
// failures here never surface to shoppers.
func handleStoreEvent(event mq.Event) {
	switch event.Name {
	case "order-placed":
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var order models.Order
		if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": event.EntityID}).Decode(&order); err != nil {
			log.Printf("[Worker] order %s not found for confirmation mail: %v", event.EntityID, err)
			return
		}
		var user models.User
		if err := db.UserCollection.FindOne(ctx, bson.M{"userid": order.UserID}).Decode(&user); err != nil {
			log.Printf("[Worker] user %s not found for confirmation mail: %v", order.UserID, err)
			return
		}
		if err := mailer.SendOrderConfirmation(user.Email, order); err != nil {
			log.Printf("[Worker] confirmation mail for %s failed: %v", order.OrderID, err)
		}
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	rateLimiter := ratelim.NewRateLimiter()

	// live order-status feed
	feed := orders.StartFeed()

	// mail worker off the redis event channel
	go mq.StartWorker(handleStoreEvent)

	router := setupRouter(rateLimiter)

	// CORS -> security headers -> logging -> router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
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
		log.Println("Shutting down order feed...")
		feed.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
