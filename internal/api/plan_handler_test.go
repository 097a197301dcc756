package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/repository/gormdb"
)

const screeningAccepted = `{"status": "accepted"}`

func TestGeneratePlanSuccess(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press", "Deadlift", "Squat")
	env.seedProfile(t, "user-1", 2)
	env.completer.responses = []string{
		screeningAccepted,
		twoDayPlanJSON("Bench Press", "Deadlift"),
	}
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodPost, "/api/week_plans", token, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Summary  string `json:"summary"`
		Workouts []struct {
			Title     string `json:"title"`
			Exercises []struct {
				Exercise string `json:"exercise"`
				Reps     int    `json:"reps"`
				Sets     int    `json:"sets"`
			} `json:"exercises"`
		} `json:"workouts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Summary == "" {
		t.Fatal("expected a non-empty summary")
	}
	if len(resp.Workouts) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(resp.Workouts))
	}
	if resp.Workouts[0].Exercises[0].Exercise != "Bench Press" {
		t.Fatalf("unexpected first exercise: %s", resp.Workouts[0].Exercises[0].Exercise)
	}

	if len(env.completer.calls) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(env.completer.calls))
	}
	generation := env.completer.calls[1]
	if !strings.Contains(generation.SystemInstruction, "Bench Press") ||
		!strings.Contains(generation.SystemInstruction, "Squat") {
		t.Fatal("generation prompt should list the exercise catalog")
	}
	if !strings.Contains(generation.UserMessage, "workout plan with 2 days") {
		t.Fatalf("user message missing day count: %s", generation.UserMessage)
	}

	// The plan graph is persisted with exercise names resolved to ids.
	var stored domain.WeekPlan
	if err := env.db.Preload("Workouts.Exercises").First(&stored).Error; err != nil {
		t.Fatalf("load stored plan: %v", err)
	}
	if stored.UserID != "user-1" {
		t.Fatalf("stored plan owner: %s", stored.UserID)
	}
	if len(stored.Workouts) != 2 {
		t.Fatalf("expected 2 stored workouts, got %d", len(stored.Workouts))
	}
	for _, workout := range stored.Workouts {
		for _, exercise := range workout.Exercises {
			if exercise.ExerciseID == 0 {
				t.Fatalf("exercise %q was not resolved against the catalog", exercise.ExerciseName)
			}
		}
	}
}

func TestGeneratePlanWithoutProfile(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodPost, "/api/week_plans", token, "")
	if w.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412, got %d: %s", w.Code, w.Body.String())
	}
	if len(env.completer.calls) != 0 {
		t.Fatalf("expected no provider calls, got %d", len(env.completer.calls))
	}
}

func TestGeneratePlanScreeningRejected(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	env.seedProfile(t, "user-1", 3)
	env.completer.responses = []string{
		`{"status": "rejected", "reason": "Goals must describe a fitness objective."}`,
	}
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodPost, "/api/week_plans", token, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Goals must describe a fitness objective." {
		t.Fatalf("expected the screening reason, got %q", resp.Error)
	}
	if len(env.completer.calls) != 1 {
		t.Fatalf("generation stage must not run after rejection, got %d calls", len(env.completer.calls))
	}
	var count int64
	env.db.Model(&domain.WeekPlan{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no persisted plans, got %d", count)
	}
}

func TestGeneratePlanMalformedResponse(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	env.seedProfile(t, "user-1", 2)
	env.completer.responses = []string{
		screeningAccepted,
		`{"summary": "Plan", "workouts": []}`,
	}
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodPost, "/api/week_plans", token, "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	var count int64
	env.db.Model(&domain.WeekPlan{}).Count(&count)
	if count != 0 {
		t.Fatalf("malformed responses must not be persisted, got %d plans", count)
	}
}

func TestGeneratePlanUnknownExercise(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	env.seedProfile(t, "user-1", 2)
	env.completer.responses = []string{
		screeningAccepted,
		twoDayPlanJSON("Bench Press", "Invented Movement"),
	}
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodPost, "/api/week_plans", token, "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	var count int64
	env.db.Model(&domain.WeekPlan{}).Count(&count)
	if count != 0 {
		t.Fatalf("plans with unknown exercises must not be persisted, got %d", count)
	}
}

func TestListPlansEmpty(t *testing.T) {
	env := setupTestEnv(t)
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodGet, "/api/week_plans", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		WeekPlans []json.RawMessage `json:"week_plans"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.WeekPlans == nil {
		t.Fatal("week_plans must be an empty list, not null")
	}
	if len(resp.WeekPlans) != 0 {
		t.Fatalf("expected no plans, got %d", len(resp.WeekPlans))
	}
}

func TestLatestPlanNotFound(t *testing.T) {
	env := setupTestEnv(t)
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodGet, "/api/week_plans/latest", token, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLatestPlanReturnsNewest(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press", "Deadlift")
	env.seedProfile(t, "user-1", 2)
	env.completer.responses = []string{
		screeningAccepted, twoDayPlanJSON("Bench Press", "Deadlift"),
		screeningAccepted, twoDayPlanJSON("Deadlift", "Bench Press"),
	}
	token := env.token(t, "user-1", false)

	for i := 0; i < 2; i++ {
		if w := env.request(t, http.MethodPost, "/api/week_plans", token, ""); w.Code != http.StatusCreated {
			t.Fatalf("generate plan %d: %d %s", i, w.Code, w.Body.String())
		}
	}

	w := env.request(t, http.MethodGet, "/api/week_plans/latest", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var latest domain.WeekPlan
	if err := json.Unmarshal(w.Body.Bytes(), &latest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(latest.Workouts) == 0 || latest.Workouts[0].Exercises[0].ExerciseName != "Deadlift" {
		t.Fatal("latest must return the second generated plan")
	}
}

func TestCompletePlanCascades(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press", "Deadlift")
	env.seedProfile(t, "user-1", 2)
	env.completer.responses = []string{screeningAccepted, twoDayPlanJSON("Bench Press", "Deadlift")}
	token := env.token(t, "user-1", false)

	if w := env.request(t, http.MethodPost, "/api/week_plans", token, ""); w.Code != http.StatusCreated {
		t.Fatalf("generate plan: %d %s", w.Code, w.Body.String())
	}

	repo := gormdb.NewWeekPlanRepository(env.db)
	plans, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil || len(plans) != 1 {
		t.Fatalf("list plans: %v (%d plans)", err, len(plans))
	}
	planID := plans[0].ID

	w := env.request(t, http.MethodPatch, "/api/week_plans/"+planID.String(), token, `{"complete": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated domain.WeekPlan
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !updated.Complete {
		t.Fatal("week plan should be complete")
	}
	for _, workout := range updated.Workouts {
		if !workout.Complete {
			t.Fatalf("workout %q should be complete", workout.Title)
		}
		for _, exercise := range workout.Exercises {
			if !exercise.Complete {
				t.Fatalf("exercise %q should be complete", exercise.ExerciseName)
			}
		}
	}
}

func TestCompletePlanRejectsUncomplete(t *testing.T) {
	env := setupTestEnv(t)
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodPatch, "/api/week_plans/"+uuid.NewString(), token, `{"complete": false}`)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompletePlanInvalidID(t *testing.T) {
	env := setupTestEnv(t)
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodPatch, "/api/week_plans/not-a-uuid", token, `{"complete": true}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompletePlanOtherUsersPlan(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press", "Deadlift")
	env.seedProfile(t, "user-1", 2)
	env.completer.responses = []string{screeningAccepted, twoDayPlanJSON("Bench Press", "Deadlift")}

	owner := env.token(t, "user-1", false)
	if w := env.request(t, http.MethodPost, "/api/week_plans", owner, ""); w.Code != http.StatusCreated {
		t.Fatalf("generate plan: %d %s", w.Code, w.Body.String())
	}
	repo := gormdb.NewWeekPlanRepository(env.db)
	plans, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil || len(plans) != 1 {
		t.Fatalf("list plans: %v", err)
	}

	intruder := env.token(t, "user-2", false)
	w := env.request(t, http.MethodPatch, "/api/week_plans/"+plans[0].ID.String(), intruder, `{"complete": true}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's plan, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPlanRoutesRequireAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/week_plans", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}

	w = env.request(t, http.MethodGet, "/api/week_plans", "garbage-token", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with an invalid token, got %d", w.Code)
	}
}
