package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/core/internal/service"
)

// UserProfileHandler holds the profile service dependency.
type UserProfileHandler struct {
	profileService service.UserProfileService
}

// NewUserProfileHandler creates a new UserProfileHandler.
func NewUserProfileHandler(profileService service.UserProfileService) *UserProfileHandler {
	return &UserProfileHandler{profileService: profileService}
}

// --- DTOs ---

// CreateUserProfileRequest is the POST body for creating a profile.
type CreateUserProfileRequest struct {
	Age               int     `json:"age" binding:"required,gt=0"`
	Gender            string  `json:"gender" binding:"required"`
	NumberOfDays      int     `json:"number_of_days" binding:"required,gt=0"`
	WorkoutDuration   int     `json:"workout_duration" binding:"required,gt=0"`
	FitnessLevel      string  `json:"fitness_level" binding:"required"`
	Goal              string  `json:"goal" binding:"required"`
	InjuryDescription *string `json:"injury_description"`
}

// UpdateUserProfileRequest is the PATCH body; at least one field must be
// non-null.
type UpdateUserProfileRequest struct {
	Age               *int    `json:"age"`
	Gender            *string `json:"gender"`
	NumberOfDays      *int    `json:"number_of_days"`
	WorkoutDuration   *int    `json:"workout_duration"`
	FitnessLevel      *string `json:"fitness_level"`
	Goal              *string `json:"goal"`
	InjuryDescription *string `json:"injury_description"`
}

// --- Handler Methods ---

// GetProfile returns the caller's profile.
func (h *UserProfileHandler) GetProfile(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, "User profile not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load user profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfile creates the caller's profile. At most one profile exists
// per user.
func (h *UserProfileHandler) CreateProfile(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req CreateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), user.UserID, service.UserProfileInput{
		Age:               req.Age,
		Gender:            req.Gender,
		NumberOfDays:      req.NumberOfDays,
		WorkoutDuration:   req.WorkoutDuration,
		FitnessLevel:      req.FitnessLevel,
		Goal:              req.Goal,
		InjuryDescription: req.InjuryDescription,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileExists) {
			abortWithError(c, http.StatusConflict, "A user profile with user_id "+user.UserID+" already exists")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create user profile")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *UserProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), user.UserID, service.UserProfileUpdate{
		Age:               req.Age,
		Gender:            req.Gender,
		NumberOfDays:      req.NumberOfDays,
		WorkoutDuration:   req.WorkoutDuration,
		FitnessLevel:      req.FitnessLevel,
		Goal:              req.Goal,
		InjuryDescription: req.InjuryDescription,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToUpdate):
			abortWithError(c, http.StatusBadRequest, "At least one field must be provided")
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "User profile not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update user profile")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes the caller's profile.
func (h *UserProfileHandler) DeleteProfile(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), user.UserID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, "User profile not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete user profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User profile has been deleted."})
}
