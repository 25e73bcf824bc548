package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sulthanularief148/RoyalTextiles/assistant"
	"github.com/sulthanularief148/RoyalTextiles/cache"
	"github.com/sulthanularief148/RoyalTextiles/config"
	"github.com/sulthanularief148/RoyalTextiles/pos"
	"github.com/sulthanularief148/RoyalTextiles/routes"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

func main() {
	log.Println("✅ Starting RoyalTextiles POS...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init store
	st := initStore(cfg)

	// Seed starter data on first run
	if err := store.Seed(st); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	// Optional product cache
	var pc *cache.ProductCache
	if cfg.RedisAddr != "" {
		var err error
		pc, err = cache.NewProductCache(cfg.RedisAddr)
		if err != nil {
			log.Printf("⚠️ Redis unavailable, running without product cache: %v", err)
			pc = nil
		}
	}

	// Optional assistant
	var gem *assistant.Client
	if cfg.GeminiAPIKey != "" {
		gem = assistant.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, assistant endpoints disabled")
	}

	// The till: one cart, one checkout service
	cart := pos.NewCart()
	checkout := pos.NewCheckoutService(st, cfg.AllowOversell)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Cfg:       cfg,
		Store:     st,
		Cart:      cart,
		Checkout:  checkout,
		Cache:     pc,
		Assistant: gem,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func initStore(cfg config.Config) store.Store {
	if cfg.StoreDriver == "memory" {
		log.Println("⚠️ Using in-memory store; data will not survive a restart")
		return store.NewMemoryStore()
	}

	gs, err := store.NewGormStore(cfg.DSN())
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	if err := gs.AutoMigrate(); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")
	return gs
}
