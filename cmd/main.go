package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/fabforge/fabquote/config"
	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/api/v1/handlers"
	"github.com/fabforge/fabquote/internal/api/v1/middleware"
	v1 "github.com/fabforge/fabquote/internal/api/v1/routes"
	"github.com/fabforge/fabquote/internal/api/v1/services"
	"github.com/fabforge/fabquote/internal/calc"
	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/db"
	"github.com/fabforge/fabquote/internal/db/repos"
	"github.com/fabforge/fabquote/internal/labor"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/pdf"
	"github.com/fabforge/fabquote/internal/pricing"
	"github.com/fabforge/fabquote/internal/questions"
)

func main() {
	// A missing .env is fine; everything falls back to defaults.
	_ = godotenv.Load()

	gormDB, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     config.GetEnvInt("DB_PORT", db.DefaultPort),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	provider := newAIProvider()

	sessionRepo := repos.NewSessionRepository(gormDB)
	quoteRepo := repos.NewQuoteRepository(gormDB)
	actualRepo := repos.NewHistoricalActualRepository(gormDB)

	registry, err := questions.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to build question registry: %v", err)
	}
	engine := questions.NewEngine(registry, provider)

	// Seeded supplier prices take precedence over the market-average tables;
	// a missing file just means every price comes from the defaults.
	prices, err := catalog.NewPriceBookFromFile(config.SeededPricesPath())
	if err != nil {
		log.Fatalf("Failed to load seeded prices: %v", err)
	}
	hardware := catalog.NewHardwareSourcer()
	cuts := calc.NewCutListGenerator(provider, prices)

	sessionService := services.NewSessionService(
		sessionRepo,
		quoteRepo,
		engine,
		calc.NewRegistry(prices, hardware, cuts),
		cuts,
		labor.NewEstimator(provider, labor.DefaultRates()),
		labor.NewHistoricalValidator(actualRepo),
		pricing.NewEngine(hardware),
	)
	quoteService := services.NewQuoteService(quoteRepo, actualRepo,
		pdf.NewRenderer(config.GetEnv("SHOP_NAME", "")))

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})
	app.Use(middleware.Logger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// API v1 routes
	v1.Register(app, handlers.NewSessionHandler(sessionService), handlers.NewQuoteHandler(quoteService))

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8080")))
}

// newAIProvider builds the Gemini provider when a key is configured. Without
// a key every AI path degrades to its deterministic fallback.
func newAIProvider() ai.Provider {
	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		logger.Warnf("GEMINI_API_KEY not set, running with deterministic fallbacks only")
		return ai.Unavailable{}
	}
	provider, err := ai.NewGeminiProvider(apiKey, config.GeminiModel())
	if err != nil {
		logger.Errorf("Failed to initialize Gemini provider, falling back to rules: %v", err)
		return ai.Unavailable{}
	}
	return provider
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
