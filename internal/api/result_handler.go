package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/core/internal/service"
)

// ExerciseResultHandler holds the result service dependency.
type ExerciseResultHandler struct {
	resultService service.ExerciseResultService
}

// NewExerciseResultHandler creates a new ExerciseResultHandler.
func NewExerciseResultHandler(resultService service.ExerciseResultService) *ExerciseResultHandler {
	return &ExerciseResultHandler{resultService: resultService}
}

// --- DTOs ---

// CreateExerciseResultRequest is the POST body for logging a result.
type CreateExerciseResultRequest struct {
	ExerciseID uint       `json:"exercise_id" binding:"required"`
	Sets       int        `json:"sets" binding:"required,gt=0"`
	Reps       int        `json:"reps" binding:"required,gt=0"`
	Weight     float64    `json:"weight"`
	RPE        *int       `json:"rpe"`
	Date       *time.Time `json:"date"`
}

// UpdateExerciseResultRequest is the PATCH body; at least one field must be
// non-null.
type UpdateExerciseResultRequest struct {
	ExerciseID *uint      `json:"exercise_id"`
	Sets       *int       `json:"sets"`
	Reps       *int       `json:"reps"`
	Weight     *float64   `json:"weight"`
	RPE        *int       `json:"rpe"`
	Date       *time.Time `json:"date"`
}

// --- Handler Methods ---

// CreateResult logs an exercise result for the caller.
func (h *ExerciseResultHandler) CreateResult(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req CreateExerciseResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.resultService.Create(c.Request.Context(), user.UserID, service.ExerciseResultInput{
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		RPE:        req.RPE,
		Date:       req.Date,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownExercise) {
			abortWithError(c, http.StatusUnprocessableEntity, "Referenced exercise does not exist")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create exercise result")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListResults returns every result the caller has logged, newest first.
func (h *ExerciseResultHandler) ListResults(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	results, err := h.resultService.List(c.Request.Context(), user.UserID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercise results")
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetResult returns a single result owned by the caller.
func (h *ExerciseResultHandler) GetResult(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := resultIDParam(c)
	if !ok {
		return
	}

	result, err := h.resultService.Get(c.Request.Context(), user.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise result not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise result")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateResult applies a partial update to a result owned by the caller.
func (h *ExerciseResultHandler) UpdateResult(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := resultIDParam(c)
	if !ok {
		return
	}

	var req UpdateExerciseResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.resultService.Update(c.Request.Context(), user.UserID, id, service.ExerciseResultUpdate{
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		RPE:        req.RPE,
		Date:       req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToUpdate):
			abortWithError(c, http.StatusBadRequest, "At least one field must be provided")
		case errors.Is(err, service.ErrResultNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise result not found")
		case errors.Is(err, service.ErrUnknownExercise):
			abortWithError(c, http.StatusUnprocessableEntity, "Referenced exercise does not exist")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise result")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteResult removes a result owned by the caller.
func (h *ExerciseResultHandler) DeleteResult(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := resultIDParam(c)
	if !ok {
		return
	}

	if err := h.resultService.Delete(c.Request.Context(), user.UserID, id); err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise result not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise result")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise result has been deleted."})
}

func resultIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Exercise result ID was invalid")
		return uuid.Nil, false
	}
	return id, true
}
