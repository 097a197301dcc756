package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gymtrack/core/internal/auth"
	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/llm"
	"gymtrack/core/internal/repository/gormdb"
	"gymtrack/core/internal/service"
)

const testSecret = "test-secret"

// fakeCompleter returns canned responses in call order and records every
// request it receives.
type fakeCompleter struct {
	responses []string
	calls     []llm.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if len(f.calls) > len(f.responses) {
		return "", errors.New("unexpected provider call")
	}
	return f.responses[len(f.calls)-1], nil
}

// fakeStorage is a FileStorage stub returning deterministic URLs.
type fakeStorage struct{}

func (fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (fakeStorage) DeleteObject(context.Context, string) error { return nil }

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	completer *fakeCompleter
	verifier  *auth.JWTVerifier
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gormdb.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	completer := &fakeCompleter{}
	verifier := auth.NewJWTVerifier(testSecret)

	exerciseRepo := gormdb.NewExerciseRepository(db)
	resultRepo := gormdb.NewExerciseResultRepository(db)
	profileRepo := gormdb.NewUserProfileRepository(db)
	planRepo := gormdb.NewWeekPlanRepository(db)

	planService := service.NewPlanService(profileRepo, exerciseRepo, planRepo, completer, service.PlanModelConfig{
		ScreeningModel:     "screening-model",
		PlanModel:          "plan-model",
		ScreeningMaxTokens: 8000,
		PlanMaxTokens:      12000,
		Temperature:        1,
	})
	exerciseService := service.NewExerciseService(exerciseRepo, fakeStorage{})
	resultService := service.NewExerciseResultService(resultRepo, exerciseRepo)
	profileService := service.NewUserProfileService(profileRepo)

	router := gin.New()
	SetupRoutes(router, verifier, "http://localhost:3000", planService, exerciseService, resultService, profileService)

	return &testEnv{router: router, db: db, completer: completer, verifier: verifier}
}

// token mints a bearer token the test router accepts.
func (e *testEnv) token(t *testing.T, userID string, admin bool) string {
	t.Helper()
	tok, err := e.verifier.IssueToken(domain.Identity{UserID: userID, Name: "Test User", Admin: admin}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func (e *testEnv) request(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// seedExercises inserts catalog entries and returns their names.
func (e *testEnv) seedExercises(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := e.db.Create(&domain.Exercise{Name: name}).Error; err != nil {
			t.Fatalf("seed exercise %s: %v", name, err)
		}
	}
}

// seedProfile inserts a profile for the given user.
func (e *testEnv) seedProfile(t *testing.T, userID string, days int) {
	t.Helper()
	profile := &domain.UserProfile{
		UserID:          userID,
		Age:             30,
		Gender:          "male",
		NumberOfDays:    days,
		WorkoutDuration: 60,
		FitnessLevel:    "intermediate",
		Goal:            "build muscle",
	}
	if err := e.db.Create(profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

// twoDayPlanJSON is a generation response referencing only the given
// exercise names, one per day.
func twoDayPlanJSON(first, second string) string {
	return fmt.Sprintf(`{
		"summary": "Two day strength split",
		"workouts": [
			{
				"title": "Upper Body Push",
				"warm_ups": [{"description": "Five minutes of light rowing"}],
				"exercises": [{"exercise": %q, "reps": 10, "sets": 4}]
			},
			{
				"title": "Lower Body Pull",
				"warm_ups": [{"description": "Dynamic hamstring stretches"}],
				"exercises": [{"exercise": %q, "reps": 8, "sets": 3}]
			}
		]
	}`, first, second)
}
