package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymtrack/core/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// ExerciseRequest is the body for creating or replacing a catalog entry.
type ExerciseRequest struct {
	Name      string  `json:"name" binding:"required"`
	VideoLink *string `json:"video_link" binding:"omitempty,url"`
}

// VideoUploadRequest is the body for requesting a video upload URL.
type VideoUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// --- Handler Methods ---

// ListExercises returns the whole catalog. Any authenticated user may read it.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// CreateExercise adds a catalog entry. Admin only.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), user, req.Name, req.VideoLink)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminRequired):
			abortWithError(c, http.StatusForbidden, "User does not have admin status")
		case errors.Is(err, service.ErrExerciseExists):
			abortWithError(c, http.StatusConflict, "An exercise with name "+req.Name+" already exists")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		}
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise replaces a catalog entry's fields. Admin only.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := exerciseIDParam(c)
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), user, id, req.Name, req.VideoLink)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminRequired):
			abortWithError(c, http.StatusForbidden, "User does not have admin status")
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, service.ErrExerciseExists):
			abortWithError(c, http.StatusConflict, "An exercise with name "+req.Name+" already exists")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise removes a catalog entry. Admin only.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := exerciseIDParam(c)
	if !ok {
		return
	}

	if err := h.exerciseService.Delete(c.Request.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminRequired):
			abortWithError(c, http.StatusForbidden, "User does not have admin status")
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise has been deleted."})
}

// VideoUploadURL hands out a presigned upload URL for a demonstration
// video. Admin only.
func (h *ExerciseHandler) VideoUploadURL(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := exerciseIDParam(c)
	if !ok {
		return
	}

	var req VideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	url, err := h.exerciseService.VideoUploadURL(c.Request.Context(), user, id, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminRequired):
			abortWithError(c, http.StatusForbidden, "User does not have admin status")
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"upload_url": url})
}

// VideoURL resolves the video link for an exercise.
func (h *ExerciseHandler) VideoURL(c *gin.Context) {
	id, ok := exerciseIDParam(c)
	if !ok {
		return
	}

	url, err := h.exerciseService.VideoURL(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, service.ErrNoVideo):
			abortWithError(c, http.StatusNotFound, "Exercise has no video")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to resolve video URL")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"video_url": url})
}

func exerciseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Exercise ID was invalid")
		return 0, false
	}
	return uint(id), true
}
