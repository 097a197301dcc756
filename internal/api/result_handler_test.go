package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"gymtrack/core/internal/domain"
)

func createResult(t *testing.T, env *testEnv, token string, exerciseID uint) domain.ExerciseResult {
	t.Helper()
	body := fmt.Sprintf(`{"exercise_id": %d, "sets": 3, "reps": 10, "weight": 80.5}`, exerciseID)
	w := env.request(t, http.MethodPost, "/api/exercise_results", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create result: %d %s", w.Code, w.Body.String())
	}
	var result domain.ExerciseResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return result
}

func TestCreateResult(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	token := env.token(t, "user-1", false)

	result := createResult(t, env, token, 1)
	if result.ID == uuid.Nil {
		t.Fatal("result should get an id assigned")
	}
	if result.UserID != "user-1" || result.Sets != 3 || result.Reps != 10 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Date.IsZero() {
		t.Fatal("date should default to the insertion time")
	}
}

func TestCreateResultUnknownExercise(t *testing.T) {
	env := setupTestEnv(t)
	token := env.token(t, "user-1", false)

	body := `{"exercise_id": 42, "sets": 3, "reps": 10}`
	w := env.request(t, http.MethodPost, "/api/exercise_results", token, body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListResultsScopedToCaller(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	owner := env.token(t, "user-1", false)
	other := env.token(t, "user-2", false)

	createResult(t, env, owner, 1)
	createResult(t, env, owner, 1)

	w := env.request(t, http.MethodGet, "/api/exercise_results", owner, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var results []domain.ExerciseResult
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	w = env.request(t, http.MethodGet, "/api/exercise_results", other, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	results = nil
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("other users must see no results, got %d", len(results))
	}
}

func TestGetResultOtherUser(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	owner := env.token(t, "user-1", false)
	other := env.token(t, "user-2", false)

	result := createResult(t, env, owner, 1)

	w := env.request(t, http.MethodGet, "/api/exercise_results/"+result.ID.String(), other, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's result, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateResultPartial(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	token := env.token(t, "user-1", false)

	result := createResult(t, env, token, 1)

	w := env.request(t, http.MethodPatch, "/api/exercise_results/"+result.ID.String(), token, `{"weight": 85, "rpe": 8}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated domain.ExerciseResult
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Weight != 85 {
		t.Fatalf("weight not updated: %v", updated.Weight)
	}
	if updated.RPE == nil || *updated.RPE != 8 {
		t.Fatalf("rpe not updated: %v", updated.RPE)
	}
	if updated.Sets != 3 || updated.Reps != 10 {
		t.Fatalf("untouched fields must survive: %+v", updated)
	}
}

func TestUpdateResultEmptyBody(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	token := env.token(t, "user-1", false)

	result := createResult(t, env, token, 1)

	w := env.request(t, http.MethodPatch, "/api/exercise_results/"+result.ID.String(), token, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteResult(t *testing.T) {
	env := setupTestEnv(t)
	env.seedExercises(t, "Bench Press")
	token := env.token(t, "user-1", false)

	result := createResult(t, env, token, 1)

	w := env.request(t, http.MethodDelete, "/api/exercise_results/"+result.ID.String(), token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = env.request(t, http.MethodGet, "/api/exercise_results/"+result.ID.String(), token, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", w.Code, w.Body.String())
	}
}

func TestResultInvalidIDParam(t *testing.T) {
	env := setupTestEnv(t)
	token := env.token(t, "user-1", false)

	w := env.request(t, http.MethodGet, "/api/exercise_results/not-a-uuid", token, "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}
