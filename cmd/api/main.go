// Energy Tracker API
//
// REST API for adaptive energy expenditure tracking and macro coaching.
//
//	@title			Energy Tracker API
//	@version		1.0
//	@description	Log weigh-ins and daily intake, estimate TDEE from observed weight change, and run weekly macro check-ins.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User and profile management endpoints
//
//	@tag.name			weights
//	@tag.description	Daily weigh-in endpoints
//
//	@tag.name			nutrition
//	@tag.description	Daily intake endpoints
//
//	@tag.name			targets
//	@tag.description	Calorie and macro target endpoints
//
//	@tag.name			energy
//	@tag.description	TDEE, energy component and data quality endpoints
//
//	@tag.name			energy-insights
//	@tag.description	LLM generated expenditure insights
//
//	@tag.name			check-ins
//	@tag.description	Weekly check-in and macro adjustment endpoints
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/energy-tracker/internal/api"
	"github.com/blaisecz/energy-tracker/internal/api/handler"
	"github.com/blaisecz/energy-tracker/internal/config"
	"github.com/blaisecz/energy-tracker/internal/langfuse"
	"github.com/blaisecz/energy-tracker/internal/llm"
	"github.com/blaisecz/energy-tracker/internal/repository"
	"github.com/blaisecz/energy-tracker/internal/seed"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	policy, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		log.Fatalf("Failed to load engine policy: %v", err)
	}

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "energy-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	weightRepo := repository.NewWeightRepository(db)
	nutritionRepo := repository.NewNutritionRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	expenditureRepo := repository.NewExpenditureRepository(db)
	transactor := repository.NewTransactor(db)

	lfClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Release:     cfg.LangfuseRelease,
	})

	promptCtx, cancelPrompt := context.WithTimeout(ctx, 10*time.Second)
	prompt, err := langfuse.LoadPrompt(promptCtx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfuseInsightsPrompt,
		PromptLabel: cfg.LangfuseInsightsPromptLabel,
		SavePath:    cfg.LangfuseInsightsPromptPath,
		Fallback:    llm.DefaultSystemPrompt,
	})
	cancelPrompt()
	if err != nil {
		log.Fatalf("Failed to load insights prompt: %v", err)
	}
	log.Printf("Insights prompt loaded from %s (version %d)", prompt.Source, prompt.Version)

	insightsModel := cfg.OpenAIEnergyInsightsModel
	if prompt.Model != "" {
		insightsModel = prompt.Model
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, insightsModel, prompt.Text)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	weightService := service.NewWeightService(weightRepo, userRepo)
	nutritionService := service.NewNutritionService(nutritionRepo, userRepo)
	targetService := service.NewTargetService(targetRepo, userRepo)
	energyService := service.NewEnergyService(userRepo, weightRepo, nutritionRepo, targetRepo, expenditureRepo, policy)
	checkInService := service.NewCheckInService(checkInRepo, userRepo, weightRepo, nutritionRepo, targetRepo, transactor, policy, nil)
	insightsService := service.NewInsightsService(energyService, openaiClient, lfClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	seriesHandler := handler.NewSeriesHandler(weightService, nutritionService)
	targetHandler := handler.NewTargetHandler(targetService)
	energyHandler := handler.NewEnergyHandler(energyService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(userHandler, seriesHandler, targetHandler, energyHandler, checkInHandler, insightsHandler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := lfClient.Flush(shutdownCtx); err != nil {
		log.Printf("Langfuse flush: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown: %v", err)
	}
}
