package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/orderdash/internal/config"
	"github.com/example/orderdash/internal/database"
	"github.com/example/orderdash/internal/repository"
	"github.com/example/orderdash/internal/routes"
	"github.com/example/orderdash/internal/store"
)

func main() {
	cfg := config.Load()

	var repo repository.OrderRepository
	if cfg.DatabaseURL != "" {
		db := database.Connect(cfg.DatabaseURL)
		if cfg.SeedDemoData {
			if err := database.Seed(db); err != nil {
				log.Printf("seeding demo orders failed: %v", err)
			}
		}
		repo = repository.NewGormOrderRepository(db)
	} else {
		log.Printf("DATABASE_URL not set, using in-memory orders")
		repo = repository.NewMemoryOrderRepository(database.DemoOrders())
	}

	orders, err := repo.List(context.Background())
	if err != nil {
		log.Fatalf("loading orders: %v", err)
	}

	dash := store.New(orders)

	app := fiber.New(fiber.Config{
		AppName: "Orderdash Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, dash, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
