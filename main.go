package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "loan-decision/http"
	"loan-decision/identity"
	"loan-decision/repository"
	"loan-decision/service"
)

func main() {
	var cache repository.CacheRepository = repository.NewMemoryCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		log.Printf("Using Redis decision cache at %s", addr)
	}

	engine := service.NewDecisionEngine(
		service.DefaultConfig(),
		identity.NewEstonianValidator(),
		cache,
	)

	decisionHandler := httpLayer.NewDecisionHandler(engine)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute, time.Hour)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/decision",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(decisionHandler.Decide),
		),
	)

	server := &http.Server{
		Addr:         getEnv("ADDR", ":8080"),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Decision API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
