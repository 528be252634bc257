package main

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

/* ─── Daily summary ──────────────────────────────────────────────────── */

type dailySummaryResponse struct {
	Date         string            `json:"date"`
	Goals        dailyGoals        `json:"goals"`
	Totals       dailyTotals       `json:"totals"`
	Alerts       []string          `json:"alerts"`
	Insights     insightPair       `json:"insights"`
	FoodLogs     []foodLogItem     `json:"food_logs"`
	ExerciseLogs []exerciseLogItem `json:"exercise_logs"`
}

// getDailySummary returns everything the dashboard needs for one calendar
// day: goals, aggregated totals, over-consumption alerts, coaching insights,
// and the day's log entries. GET /api/nutrition-log/daily?date=YYYY-MM-DD
// (date defaults to today).
//
// Insights are always computed from today's totals; when a past date is
// requested, the totals/alerts describe that day but the coaching stays
// anchored to now.
func (h *Handler) getDailySummary(c *gin.Context) {
	now := h.now()
	date := now
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
		if err != nil {
			apiError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	profile := h.store.Profile()
	goals := computeGoals(profile)
	foodLogs := h.store.FoodLogs()
	exerciseLogs := h.store.ExerciseLogs()

	totals := aggregateDay(foodLogs, exerciseLogs, date, goals)

	todayTotals := totals
	if !sameDay(date, now) {
		todayTotals = aggregateDay(foodLogs, exerciseLogs, now, goals)
	}

	resp := dailySummaryResponse{
		Date:         date.Format("2006-01-02"),
		Goals:        goals,
		Totals:       totals,
		Alerts:       evaluateAlerts(totals, goals, totals.EffectiveCalorieGoal),
		Insights:     getInsights(todayTotals, goals, profile.GoalType, now),
		FoodLogs:     filterFoodLogs(foodLogs, date),
		ExerciseLogs: filterExerciseLogs(exerciseLogs, date),
	}
	c.JSON(http.StatusOK, resp)
}

func filterFoodLogs(logs []foodLogItem, date time.Time) []foodLogItem {
	out := []foodLogItem{}
	for _, item := range logs {
		if onDay(item.Timestamp, date) {
			out = append(out, item)
		}
	}
	return out
}

func filterExerciseLogs(logs []exerciseLogItem, date time.Time) []exerciseLogItem {
	out := []exerciseLogItem{}
	for _, item := range logs {
		if onDay(item.Timestamp, date) {
			out = append(out, item)
		}
	}
	return out
}

/* ─── Food log CRUD ──────────────────────────────────────────────────── */

type createFoodLogRequest struct {
	Analysis    foodAnalysisResult `json:"analysis"`
	PortionMode string             `json:"portion_mode"` // SCALE (default) or COUNT
	SliderValue float64            `json:"slider_value"`
	CountValue  int                `json:"count_value"`
	ImageURL    string             `json:"image_url"`
	Timestamp   int64              `json:"timestamp"` // epoch ms, 0 = now
}

// createFoodLogItem confirms an analysis result into the log, applying the
// portion adjustment first. POST /api/nutrition-log/items.
//
// The stored suggestions stay unscaled; the response carries scaled display
// copies alongside the multiplier so the client can show adjusted durations.
func (h *Handler) createFoodLogItem(c *gin.Context) {
	var req createFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Analysis.FoodName == "" {
		apiError(c, http.StatusBadRequest, "analysis.foodName is required")
		return
	}
	if req.PortionMode == "" {
		req.PortionMode = portionScale
	}
	if !validPortionModes[req.PortionMode] {
		apiError(c, http.StatusBadRequest, "portion_mode must be SCALE or COUNT")
		return
	}

	adjusted, multiplier := adjustPortion(req.Analysis, req.PortionMode, req.SliderValue, req.CountValue)

	// Annotate the name with the adjustment so the log reads naturally:
	// "Pizza (3 slice)" for counts, "Pasta (150%)" for slider rescales.
	if req.PortionMode == portionCount && req.CountValue > 0 {
		unit := adjusted.QuantityUnit
		if unit == "" {
			unit = "item"
		}
		adjusted.FoodName = fmt.Sprintf("%s (%d %s)", adjusted.FoodName, req.CountValue, unit)
	} else if multiplier != 1.0 {
		adjusted.FoodName = fmt.Sprintf("%s (%d%%)", adjusted.FoodName, int(math.Round(multiplier*100)))
	}

	timestamp := req.Timestamp
	if timestamp == 0 {
		timestamp = h.now().UnixMilli()
	}

	item := foodLogItem{
		foodAnalysisResult: adjusted,
		ID:                 uuid.NewString(),
		Timestamp:          timestamp,
		ImageURL:           req.ImageURL,
	}
	h.store.AddFoodLog(item)

	c.JSON(http.StatusCreated, gin.H{
		"item":                item,
		"display_suggestions": scaledSuggestions(item.ExerciseSuggestions, multiplier),
		"multiplier":          multiplier,
	})
}

type updateFoodLogRequest struct {
	FoodName    *string `json:"foodName"`
	Description *string `json:"description"`
	Calories    *int    `json:"calories"`
	Protein     *int    `json:"protein"`
	Carbs       *int    `json:"carbs"`
	Fat         *int    `json:"fat"`
	Sugar       *int    `json:"sugar"`
	Fiber       *int    `json:"fiber"`
	Sodium      *int    `json:"sodium"`
	Potassium   *int    `json:"potassium"`
	Cholesterol *int    `json:"cholesterol"`
	Water       *int    `json:"water"`
	Timestamp   *int64  `json:"timestamp"`
}

// updateFoodLogItem edits a logged entry in place. Only the provided fields
// change. PUT /api/nutrition-log/items/:id.
func (h *Handler) updateFoodLogItem(c *gin.Context) {
	var req updateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var updated foodLogItem
	ok := h.store.UpdateFoodLog(c.Param("id"), func(item *foodLogItem) {
		if req.FoodName != nil {
			item.FoodName = *req.FoodName
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Calories != nil {
			item.Calories = *req.Calories
		}
		if req.Protein != nil {
			item.Protein = *req.Protein
		}
		if req.Carbs != nil {
			item.Carbs = *req.Carbs
		}
		if req.Fat != nil {
			item.Fat = *req.Fat
		}
		if req.Sugar != nil {
			item.Sugar = *req.Sugar
		}
		if req.Fiber != nil {
			item.Fiber = *req.Fiber
		}
		if req.Sodium != nil {
			item.Sodium = *req.Sodium
		}
		if req.Potassium != nil {
			item.Potassium = *req.Potassium
		}
		if req.Cholesterol != nil {
			item.Cholesterol = *req.Cholesterol
		}
		if req.Water != nil {
			item.Water = *req.Water
		}
		if req.Timestamp != nil {
			item.Timestamp = *req.Timestamp
		}
		updated = *item
	})
	if !ok {
		apiError(c, http.StatusNotFound, "log item not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteFoodLogItem removes a logged entry. DELETE /api/nutrition-log/items/:id.
func (h *Handler) deleteFoodLogItem(c *gin.Context) {
	if !h.store.DeleteFoodLog(c.Param("id")) {
		apiError(c, http.StatusNotFound, "log item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

/* ─── Exercise log CRUD ──────────────────────────────────────────────── */

type createExerciseLogRequest struct {
	ActivityID      string `json:"activity_id"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned"` // nil = estimate via MET
	Timestamp       int64  `json:"timestamp"`
}

// createExerciseLogItem logs a workout. When calories_burned is omitted the
// burn is estimated from the activity's MET value and the saved body weight
// (150 lbs assumed when none is saved). POST /api/exercise-log.
func (h *Handler) createExerciseLogItem(c *gin.Context) {
	var req createExerciseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ActivityID == "" {
		apiError(c, http.StatusBadRequest, "activity_id is required")
		return
	}
	if req.DurationMinutes <= 0 {
		apiError(c, http.StatusBadRequest, "duration_minutes must be positive")
		return
	}

	burned := 0
	if req.CaloriesBurned != nil {
		if *req.CaloriesBurned < 0 {
			apiError(c, http.StatusBadRequest, "calories_burned must not be negative")
			return
		}
		burned = *req.CaloriesBurned
	} else {
		profile := h.store.Profile()
		weight := float64(defaultAnalysisWeightLbs)
		if profile.WeightLbs != nil && *profile.WeightLbs > 0 {
			weight = *profile.WeightLbs
		}
		burned = estimateBurn(req.ActivityID, req.DurationMinutes, weight, h.store.CustomSports())
		if burned == 0 {
			apiError(c, http.StatusBadRequest, "unknown activity; provide calories_burned")
			return
		}
	}

	timestamp := req.Timestamp
	if timestamp == 0 {
		timestamp = h.now().UnixMilli()
	}

	item := exerciseLogItem{
		ID:              uuid.NewString(),
		Timestamp:       timestamp,
		ActivityID:      req.ActivityID,
		ActivityName:    req.ActivityID,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  burned,
	}
	h.store.AddExerciseLog(item)
	c.JSON(http.StatusCreated, item)
}

type updateExerciseLogRequest struct {
	DurationMinutes *int   `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned"`
	Timestamp       *int64 `json:"timestamp"`
}

// updateExerciseLogItem edits a workout entry. Changing the duration without
// an explicit calories_burned re-estimates the burn. PUT /api/exercise-log/:id.
func (h *Handler) updateExerciseLogItem(c *gin.Context) {
	var req updateExerciseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		apiError(c, http.StatusBadRequest, "duration_minutes must be positive")
		return
	}

	profile := h.store.Profile()
	weight := float64(defaultAnalysisWeightLbs)
	if profile.WeightLbs != nil && *profile.WeightLbs > 0 {
		weight = *profile.WeightLbs
	}
	customSports := h.store.CustomSports()

	var updated exerciseLogItem
	ok := h.store.UpdateExerciseLog(c.Param("id"), func(item *exerciseLogItem) {
		if req.DurationMinutes != nil {
			item.DurationMinutes = *req.DurationMinutes
			if req.CaloriesBurned == nil {
				if est := estimateBurn(item.ActivityID, item.DurationMinutes, weight, customSports); est > 0 {
					item.CaloriesBurned = est
				}
			}
		}
		if req.CaloriesBurned != nil {
			item.CaloriesBurned = *req.CaloriesBurned
		}
		if req.Timestamp != nil {
			item.Timestamp = *req.Timestamp
		}
		updated = *item
	})
	if !ok {
		apiError(c, http.StatusNotFound, "exercise entry not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteExerciseLogItem removes a workout entry. DELETE /api/exercise-log/:id.
func (h *Handler) deleteExerciseLogItem(c *gin.Context) {
	if !h.store.DeleteExerciseLog(c.Param("id")) {
		apiError(c, http.StatusNotFound, "exercise entry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
