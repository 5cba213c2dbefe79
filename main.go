package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guitar_square_backend/config"
	"guitar_square_backend/middleware"
	"guitar_square_backend/payment"
	"guitar_square_backend/routes"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}

	if err := config.SeedCategories(ctx, st); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Guitar Square",
		ServerHeader: "Guitar Square Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app, cfg)
	routes.Setup(app, st, payment.NewStripeGateway(cfg.StripeSecretKey))
	middleware.SetupErrorHandler(app)

	go func() {
		log.Printf("🚀 Guitar Square running on host %s in port %s", cfg.Host, cfg.AppPort)
		if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("Shutting down...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := st.Disconnect(shutdownCtx); err != nil {
		log.Printf("Store disconnect: %v", err)
	}
	log.Println("Bye")
}
