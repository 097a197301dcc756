package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gymtrack/core/internal/domain"
	"gymtrack/core/internal/llm"
	"gymtrack/core/internal/repository"
)

// --- Error Definitions ---
var (
	// ErrProfileRequired means plan generation was attempted before the user
	// created a profile. No provider call is made in that case.
	ErrProfileRequired = errors.New("user profile not found")
	// ErrNoPlans means the user has never successfully generated a plan.
	ErrNoPlans = errors.New("no week plans found")
	// ErrPlanNotFound means the requested plan id does not exist for this user.
	ErrPlanNotFound = errors.New("week plan not found")
	// ErrCannotUncomplete means a complete=false transition was requested.
	// Un-completing a plan is not supported.
	ErrCannotUncomplete = errors.New("week plan completion cannot be reverted")
	// ErrInvalidPlanResponse means the provider's output violated the JSON
	// contract. The whole request fails; nothing is persisted.
	ErrInvalidPlanResponse = errors.New("invalid plan response from provider")
)

// ScreeningRejectedError carries the model's guidance when the screening
// stage rejects the profile text. The guidance never echoes the rejected
// content itself.
type ScreeningRejectedError struct {
	Reason string
}

func (e *ScreeningRejectedError) Error() string {
	return "plan request rejected: " + e.Reason
}

// PlanModelConfig selects the models and parameters for the two LLM stages.
type PlanModelConfig struct {
	ScreeningModel     string
	PlanModel          string
	ScreeningMaxTokens int32
	PlanMaxTokens      int32
	Temperature        float32
}

// PlanService orchestrates plan generation, retrieval and completion.
type PlanService interface {
	// GeneratePlan runs the two-stage generation flow for the given user and
	// persists the resulting plan graph atomically. On success it returns
	// the parsed provider response, not the persisted representation.
	GeneratePlan(ctx context.Context, user domain.Identity) (*llm.WeekPlanResponse, error)
	ListPlans(ctx context.Context, userID string) ([]domain.WeekPlan, error)
	LatestPlan(ctx context.Context, userID string) (*domain.WeekPlan, error)
	// CompletePlan marks a plan complete and cascades the flag to every
	// descendant. Only the false->true transition is allowed.
	CompletePlan(ctx context.Context, userID string, planID uuid.UUID, complete bool) (*domain.WeekPlan, error)
}

// planService implements the PlanService interface.
type planService struct {
	profiles  repository.UserProfileRepository
	exercises repository.ExerciseRepository
	plans     repository.WeekPlanRepository
	completer llm.Completer
	models    PlanModelConfig
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	profiles repository.UserProfileRepository,
	exercises repository.ExerciseRepository,
	plans repository.WeekPlanRepository,
	completer llm.Completer,
	models PlanModelConfig,
) PlanService {
	return &planService{
		profiles:  profiles,
		exercises: exercises,
		plans:     plans,
		completer: completer,
		models:    models,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, user domain.Identity) (*llm.WeekPlanResponse, error) {
	profile, err := s.profiles.GetByUserID(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	prompt := profilePrompt(profile)

	// Screening stage gates unsuitable input before the costlier
	// generation call.
	rawScreening, err := s.completer.Complete(ctx, llm.CompletionRequest{
		Model:             s.models.ScreeningModel,
		SystemInstruction: llm.ScreeningPrompt,
		UserMessage:       prompt,
		MaxOutputTokens:   s.models.ScreeningMaxTokens,
		Temperature:       s.models.Temperature,
	})
	if err != nil {
		return nil, err
	}
	screening, err := llm.ParseScreeningResult(rawScreening)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlanResponse, err)
	}
	if screening.Status == llm.ScreeningRejected {
		return nil, &ScreeningRejectedError{Reason: screening.Reason}
	}

	// The catalog snapshot is the authoritative vocabulary for this
	// generation call.
	catalog, err := s.exercises.NamesToIDs(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	rawPlan, err := s.completer.Complete(ctx, llm.CompletionRequest{
		Model:             s.models.PlanModel,
		SystemInstruction: llm.WeekPlanPrompt(names),
		UserMessage:       prompt,
		MaxOutputTokens:   s.models.PlanMaxTokens,
		Temperature:       s.models.Temperature,
	})
	if err != nil {
		return nil, err
	}
	plan, err := llm.ParseWeekPlanResponse(rawPlan)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlanResponse, err)
	}

	graph, err := buildPlanGraph(user.UserID, plan, catalog)
	if err != nil {
		return nil, err
	}
	if err := s.plans.CreateGraph(ctx, graph); err != nil {
		return nil, err
	}
	return plan, nil
}

// buildPlanGraph maps the validated provider response into the WeekPlan
// entity graph, resolving each exercise name against the catalog snapshot.
// An unresolvable name rejects the whole plan: the provider broke the
// catalog-only rule, and a partially resolved plan must never be persisted.
func buildPlanGraph(userID string, plan *llm.WeekPlanResponse, catalog map[string]uint) (*domain.WeekPlan, error) {
	graph := &domain.WeekPlan{
		UserID:   userID,
		Summary:  plan.Summary,
		Workouts: make([]domain.WorkoutPlan, len(plan.Workouts)),
	}
	for i, workout := range plan.Workouts {
		workoutPlan := domain.WorkoutPlan{
			UserID:    userID,
			Title:     workout.Title,
			WarmUps:   make([]domain.WarmUpPlan, len(workout.WarmUps)),
			Exercises: make([]domain.ExercisePlan, len(workout.Exercises)),
		}
		for j, warmUp := range workout.WarmUps {
			workoutPlan.WarmUps[j] = domain.WarmUpPlan{
				UserID:      userID,
				Description: warmUp.Description,
			}
		}
		for j, exercise := range workout.Exercises {
			exerciseID, ok := catalog[exercise.Exercise]
			if !ok {
				return nil, fmt.Errorf("%w: unknown exercise %q", ErrInvalidPlanResponse, exercise.Exercise)
			}
			workoutPlan.Exercises[j] = domain.ExercisePlan{
				UserID:       userID,
				ExerciseName: exercise.Exercise,
				ExerciseID:   exerciseID,
				Sets:         exercise.Sets,
				Reps:         exercise.Reps,
			}
		}
		graph.Workouts[i] = workoutPlan
	}
	return graph, nil
}

// profilePrompt renders the stored profile into the natural-language
// paragraph both LLM stages receive.
func profilePrompt(profile *domain.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "My gender is %s.\n", profile.Gender)
	fmt.Fprintf(&b, "I am %d years old.\n", profile.Age)
	fmt.Fprintf(&b, "My fitness level is %s.\n", profile.FitnessLevel)
	fmt.Fprintf(&b, "My goals are the following:\n%s\n", profile.Goal)
	fmt.Fprintf(&b, "I would like a workout plan with %d days.\n", profile.NumberOfDays)
	if profile.InjuryDescription != nil && *profile.InjuryDescription != "" {
		fmt.Fprintf(&b, "I have the following injury description: %s.\n", *profile.InjuryDescription)
	}
	return b.String()
}

func (s *planService) ListPlans(ctx context.Context, userID string) ([]domain.WeekPlan, error) {
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Zero plans is a valid state, not an error; not-found is reserved for
	// singular lookups.
	if plans == nil {
		plans = []domain.WeekPlan{}
	}
	return plans, nil
}

func (s *planService) LatestPlan(ctx context.Context, userID string) (*domain.WeekPlan, error) {
	plan, err := s.plans.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPlans
		}
		return nil, err
	}
	return plan, nil
}

func (s *planService) CompletePlan(ctx context.Context, userID string, planID uuid.UUID, complete bool) (*domain.WeekPlan, error) {
	if !complete {
		return nil, ErrCannotUncomplete
	}
	plan, err := s.plans.MarkComplete(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}
