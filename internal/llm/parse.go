package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ScreeningStatus is the two-state outcome of the screening stage.
type ScreeningStatus string

const (
	ScreeningAccepted ScreeningStatus = "accepted"
	ScreeningRejected ScreeningStatus = "rejected"
)

// ScreeningResult is the JSON contract of the screening stage.
type ScreeningResult struct {
	Status ScreeningStatus `json:"status"`
	Reason string          `json:"reason,omitempty"`
}

// WeekPlanResponse is the JSON contract of the generation stage and the
// shape returned to API callers on successful generation.
type WeekPlanResponse struct {
	Summary  string            `json:"summary"`
	Workouts []WorkoutResponse `json:"workouts"`
}

type WorkoutResponse struct {
	Title     string                 `json:"title"`
	WarmUps   []WarmUpResponse       `json:"warm_ups"`
	Exercises []ExercisePlanResponse `json:"exercises"`
}

type WarmUpResponse struct {
	Description string `json:"description"`
}

type ExercisePlanResponse struct {
	Exercise string `json:"exercise"`
	Reps     int    `json:"reps"`
	Sets     int    `json:"sets"`
}

// ParseScreeningResult parses the screening stage output, failing closed on
// any shape it does not recognize.
func ParseScreeningResult(raw string) (*ScreeningResult, error) {
	var result ScreeningResult
	if err := strictUnmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("llm: invalid screening response: %w", err)
	}
	switch result.Status {
	case ScreeningAccepted, ScreeningRejected:
		return &result, nil
	default:
		return nil, fmt.Errorf("llm: invalid screening status %q", result.Status)
	}
}

// ParseWeekPlanResponse parses the generation stage output into the week
// plan contract. Any schema mismatch is an error; the output is never
// coerced or repaired.
func ParseWeekPlanResponse(raw string) (*WeekPlanResponse, error) {
	var plan WeekPlanResponse
	if err := strictUnmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("llm: invalid week plan response: %w", err)
	}
	if plan.Summary == "" {
		return nil, fmt.Errorf("llm: week plan response missing summary")
	}
	if len(plan.Workouts) == 0 {
		return nil, fmt.Errorf("llm: week plan response contains no workouts")
	}
	for i, workout := range plan.Workouts {
		if workout.Title == "" {
			return nil, fmt.Errorf("llm: workout %d has no title", i)
		}
		for j, exercise := range workout.Exercises {
			if exercise.Exercise == "" {
				return nil, fmt.Errorf("llm: workout %d exercise %d has no name", i, j)
			}
			if exercise.Sets <= 0 || exercise.Reps <= 0 {
				return nil, fmt.Errorf("llm: workout %d exercise %q has non-positive sets or reps", i, exercise.Exercise)
			}
		}
		for j, warmUp := range workout.WarmUps {
			if warmUp.Description == "" {
				return nil, fmt.Errorf("llm: workout %d warm-up %d has no description", i, j)
			}
		}
	}
	return &plan, nil
}

// strictUnmarshal decodes exactly one JSON value, rejecting unknown fields
// and trailing content.
func strictUnmarshal(raw string, v any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing content after JSON value")
	}
	return nil
}
