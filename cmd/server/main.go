package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"shopfront/internal/application/services"
	"shopfront/internal/config"
	"shopfront/internal/delivery/web"
	"shopfront/internal/infrastructure"
	"shopfront/internal/infrastructure/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	userRepo := db.NewUserRepository(gdb)
	productRepo := db.NewProductRepository(gdb)

	if err := db.EnsureSeeded(context.Background(), productRepo); err != nil {
		log.Fatal("failed to seed catalog: ", err)
	}

	captchaService := infrastructure.NewCaptchaService(cfg)
	sessionService := infrastructure.NewSessionService(cfg.SessionSecret, cfg.SessionTTL)
	attemptLimiter := infrastructure.NewAttemptLimiter(cfg)
	mailer := infrastructure.NewMailer(cfg)

	authService := services.NewAuthService(userRepo, captchaService, attemptLimiter, mailer)
	catalogService := services.NewCatalogService(productRepo)

	handler := web.NewHandler(authService, catalogService, sessionService, captchaService)
	e, err := web.NewRouter(handler)
	if err != nil {
		log.Fatal("failed to build router: ", err)
	}

	log.Printf("server running on %s", cfg.Addr)
	log.Fatal(e.Start(cfg.Addr))
}
