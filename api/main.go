package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/resto-dashboard/internal/auth"
	"github.com/rogerio-castellano/resto-dashboard/internal/config"
	"github.com/rogerio-castellano/resto-dashboard/internal/dashboard"
	"github.com/rogerio-castellano/resto-dashboard/internal/db"
	httpapi "github.com/rogerio-castellano/resto-dashboard/internal/http"
	"github.com/rogerio-castellano/resto-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/resto-dashboard/internal/mail"
	"github.com/rogerio-castellano/resto-dashboard/internal/repo"
)

var ctx = context.Background()

// @title Resto Dashboard API
// @version 1.0
// @description Sales dashboard and password-reset API for the restaurant ordering app.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	go httpapi.StartVisitorCleanupLoop()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	orderRepo := repo.NewPostgresOrderRepository(database)
	inventoryRepo := repo.NewPostgresInventoryRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)

	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.SMTP.Host != "" {
		mailer = &mail.SMTPMailer{
			Host:         cfg.SMTP.Host,
			Port:         cfg.SMTP.Port,
			From:         cfg.SMTP.From,
			Username:     cfg.SMTP.Username,
			Password:     cfg.SMTP.Password,
			AuthDisabled: cfg.SMTP.AuthDisabled,
		}
	}

	provider := auth.NewLocalProvider(userRepo, mailer, cfg.ResetBaseURL)
	go provider.StartLimiterCleanup()

	handlers.SetDashboardLoader(dashboard.NewLoader(orderRepo, inventoryRepo))
	handlers.SetInventoryRepo(inventoryRepo)
	handlers.SetUserRepo(userRepo)
	handlers.SetIdentityProvider(provider)
	handlers.SetTokenStore(auth.NewRedisTokenStore(rdb))

	r := httpapi.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
