package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/core/internal/service"
)

// WeekPlanHandler holds the plan service dependency.
type WeekPlanHandler struct {
	planService service.PlanService
}

// NewWeekPlanHandler creates a new WeekPlanHandler.
func NewWeekPlanHandler(planService service.PlanService) *WeekPlanHandler {
	return &WeekPlanHandler{planService: planService}
}

// CompleteWeekPlanRequest is the PATCH body for the completion endpoint.
// The pointer keeps `complete: false` distinguishable from an absent field.
type CompleteWeekPlanRequest struct {
	Complete *bool `json:"complete" binding:"required"`
}

// GeneratePlan runs the two-stage generation flow for the caller and
// returns the generated plan with a created status.
func (h *WeekPlanHandler) GeneratePlan(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), user)
	if err != nil {
		var rejected *service.ScreeningRejectedError
		switch {
		case errors.Is(err, service.ErrProfileRequired):
			abortWithError(c, http.StatusPreconditionFailed, "User profile not found")
		case errors.As(err, &rejected):
			abortWithError(c, http.StatusBadRequest, rejected.Reason)
		case errors.Is(err, service.ErrInvalidPlanResponse):
			abortWithError(c, http.StatusBadGateway, "Plan generation produced an invalid response")
		default:
			abortWithError(c, http.StatusBadGateway, "Plan generation failed")
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans returns every week plan the caller has generated, newest first.
// Zero plans is an empty list, not an error.
func (h *WeekPlanHandler) ListPlans(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), user.UserID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list week plans")
		return
	}
	c.JSON(http.StatusOK, gin.H{"week_plans": plans})
}

// LatestPlan returns the caller's most recently generated plan.
func (h *WeekPlanHandler) LatestPlan(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	plan, err := h.planService.LatestPlan(c.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNoPlans) {
			abortWithError(c, http.StatusNotFound, "No week plans found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load latest week plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CompletePlan marks a plan complete, cascading the flag to every workout
// and exercise under it. Un-completing is not supported.
func (h *WeekPlanHandler) CompletePlan(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Week plan ID was invalid")
		return
	}

	var req CompleteWeekPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Request body must contain a complete flag")
		return
	}

	plan, err := h.planService.CompletePlan(c.Request.Context(), user.UserID, planID, *req.Complete)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotUncomplete):
			abortWithError(c, http.StatusMethodNotAllowed, "Week plan completion cannot be reverted")
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusNotFound, "Week plan not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update week plan")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}
