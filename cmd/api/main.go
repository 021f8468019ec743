package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iitm-tech-society/recruit-backend/config"
	"github.com/iitm-tech-society/recruit-backend/internal/auth"
	"github.com/iitm-tech-society/recruit-backend/internal/bootstrap"
	"github.com/iitm-tech-society/recruit-backend/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	authClient, err := auth.InitializeFirebase(ctx, cfg.Auth.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	if authClient == nil {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, submission auth gate disabled")
	}

	// Redis makes the limiter correct across instances; without it the
	// process-local window is the accepted approximation.
	var limiter middleware.Limiter
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		limiter = middleware.NewRedisLimiter(rdb)
		log.Printf("rate limiter: redis (%s)", cfg.Redis.Addr)
	} else {
		mem := middleware.NewMemoryLimiter()
		sweeper := bootstrap.StartLimiterSweep(mem)
		defer sweeper.Stop()
		limiter = mem
		log.Println("rate limiter: in-memory (single instance only)")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "recruit-backend",
		Version:     cfg.App.Version,
		DB:          db,
		AuthClient:  authClient,
		Limiter:     limiter,
		Config:      cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s (policy=%s, experience_min=%d)",
			cfg.Server.Port, cfg.Submission.Policy, cfg.Submission.ExperienceMinChars)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
