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

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"

	"gymtrack/core/internal/api"
	"gymtrack/core/internal/auth"
	"gymtrack/core/internal/config"
	"gymtrack/core/internal/llm"
	"gymtrack/core/internal/repository/gormdb"
	"gymtrack/core/internal/service"
	"gymtrack/core/internal/storage"
)

func main() {
	log.Println("Starting Gym Track Core Server...")

	ctx := context.Background()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database ---
	db, err := gormdb.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	if err := gormdb.Migrate(db); err != nil {
		log.Fatalf("FATAL: Could not migrate database: %v", err)
	}
	if err := gormdb.Seed(ctx, db); err != nil {
		log.Fatalf("FATAL: Could not seed database: %v", err)
	}
	log.Println("Database connection established.")

	// --- File Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Token Verifier ---
	verifier, err := buildVerifier(ctx, cfg.Auth)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize token verifier: %v", err)
	}

	// --- LLM Client ---
	genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to create genai client: %v", err)
	}
	completer := llm.NewGenAICompleter(genAI)

	// --- Repositories ---
	exerciseRepo := gormdb.NewExerciseRepository(db)
	resultRepo := gormdb.NewExerciseResultRepository(db)
	profileRepo := gormdb.NewUserProfileRepository(db)
	planRepo := gormdb.NewWeekPlanRepository(db)

	// --- Services ---
	planService := service.NewPlanService(profileRepo, exerciseRepo, planRepo, completer, service.PlanModelConfig{
		ScreeningModel:     cfg.LLM.ScreeningModel,
		PlanModel:          cfg.LLM.PlanModel,
		ScreeningMaxTokens: cfg.LLM.ScreeningMaxTokens,
		PlanMaxTokens:      cfg.LLM.PlanMaxTokens,
		Temperature:        cfg.LLM.Temperature,
	})
	exerciseService := service.NewExerciseService(exerciseRepo, fileStorage)
	resultService := service.NewExerciseResultService(resultRepo, exerciseRepo)
	profileService := service.NewUserProfileService(profileRepo)

	// --- Router ---
	router := gin.Default()
	api.SetupRoutes(router, verifier, cfg.Server.CORSOrigin, planService, exerciseService, resultService, profileService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // plan generation waits on two provider calls
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// buildVerifier picks the identity backend: Firebase when a project is
// configured, otherwise the local HMAC verifier for development.
func buildVerifier(ctx context.Context, cfg config.AuthConfig) (auth.TokenVerifier, error) {
	if cfg.FirebaseProjectID != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
		if err != nil {
			return nil, err
		}
		client, err := app.Auth(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("Using Firebase token verification (project %s)", cfg.FirebaseProjectID)
		return auth.NewFirebaseVerifier(client), nil
	}
	log.Println("WARNING: No Firebase project configured, using local dev token verification")
	return auth.NewJWTVerifier(cfg.DevSecret), nil
}
