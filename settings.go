package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxMonthlyLossLbs caps the weight-loss rate a plan may target. Faster than
// this is rejected outright rather than silently floored.
const maxMonthlyLossLbs = 5.0

// getSettings returns the profile, the goals derived from it, and the saved
// theme. GET /api/settings.
func (h *Handler) getSettings(c *gin.Context) {
	profile := h.store.Profile()
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"goals":   computeGoals(profile),
		"theme":   h.store.Theme(),
	})
}

// patchSettingsRequest uses pointers so "field absent" and "field set to
// zero" are distinguishable. ClearWeight unsets the weight entirely, which
// drops goal computation back to the defaults.
type patchSettingsRequest struct {
	WeightLbs      *float64  `json:"weight_lbs"`
	ClearWeight    *bool     `json:"clear_weight"`
	GoalType       *string   `json:"goal_type"`
	TargetLossLbs  *float64  `json:"target_loss_lbs"`
	TargetMonths   *int      `json:"target_months"`
	BurnGoalKcal   *int      `json:"burn_goal_kcal"`
	FrequentSports *[]string `json:"frequent_sports"`
	Theme          *string   `json:"theme"`
}

// patchSettings partially updates the profile. All provided fields are
// validated against a candidate copy before anything is applied, so a
// rejected request leaves the profile untouched. PATCH /api/settings.
func (h *Handler) patchSettings(c *gin.Context) {
	var req patchSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate := h.store.Profile()
	if req.ClearWeight != nil && *req.ClearWeight {
		candidate.WeightLbs = nil
	}
	if req.WeightLbs != nil {
		if *req.WeightLbs <= 0 {
			apiError(c, http.StatusBadRequest, "weight_lbs must be positive")
			return
		}
		w := *req.WeightLbs
		candidate.WeightLbs = &w
	}
	if req.GoalType != nil {
		if !validGoalTypes[*req.GoalType] {
			apiError(c, http.StatusBadRequest, "goal_type must be MAINTAIN, LOSE_WEIGHT or GAIN_MUSCLE")
			return
		}
		candidate.GoalType = *req.GoalType
	}
	if req.TargetLossLbs != nil {
		if *req.TargetLossLbs < 0 {
			apiError(c, http.StatusBadRequest, "target_loss_lbs must not be negative")
			return
		}
		candidate.TargetLossLbs = *req.TargetLossLbs
	}
	if req.TargetMonths != nil {
		if *req.TargetMonths <= 0 {
			apiError(c, http.StatusBadRequest, "target_months must be positive")
			return
		}
		candidate.TargetMonths = *req.TargetMonths
	}
	if req.BurnGoalKcal != nil {
		if *req.BurnGoalKcal < 0 {
			apiError(c, http.StatusBadRequest, "burn_goal_kcal must not be negative")
			return
		}
		candidate.BurnGoalKcal = *req.BurnGoalKcal
	}
	if req.FrequentSports != nil {
		candidate.FrequentSports = *req.FrequentSports
	}

	// Rate check runs on the combined candidate state: an individually valid
	// loss target and timeline can still describe an unsafe plan together.
	if candidate.GoalType == goalLoseWeight && candidate.TargetMonths > 0 {
		rate := candidate.TargetLossLbs / float64(candidate.TargetMonths)
		if rate > maxMonthlyLossLbs {
			apiError(c, http.StatusBadRequest, "weight loss rate exceeds 5 lbs per month; extend the timeline or lower the target")
			return
		}
	}

	h.store.SetProfile(candidate)
	if req.Theme != nil {
		h.store.SetTheme(*req.Theme)
	}

	profile := h.store.Profile()
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"goals":   computeGoals(profile),
		"theme":   h.store.Theme(),
	})
}

/* ─── Custom sports ──────────────────────────────────────────────────── */

type addSportRequest struct {
	Name string  `json:"name"`
	MET  float64 `json:"met"`
}

// addCustomSport registers (or overwrites) a user-defined sport with its MET
// value. POST /api/sports.
func (h *Handler) addCustomSport(c *gin.Context) {
	var req addSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}
	if req.MET <= 0 {
		apiError(c, http.StatusBadRequest, "met must be positive")
		return
	}
	h.store.SetCustomSport(req.Name, req.MET)
	c.JSON(http.StatusCreated, gin.H{"sports": h.store.CustomSports()})
}

// deleteCustomSport removes a user-defined sport and any frequent-sports
// reference to it. DELETE /api/sports/:name.
func (h *Handler) deleteCustomSport(c *gin.Context) {
	if !h.store.DeleteCustomSport(c.Param("name")) {
		apiError(c, http.StatusNotFound, "sport not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sports": h.store.CustomSports()})
}
