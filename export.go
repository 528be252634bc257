package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

/* ─── Export formatting ──────────────────────────────────────────────── */

const (
	foodExportHeader     = "Date,Time,Category,Item,Description,Calories,Protein,Carbs,Fat,Sugar,Fiber,Sodium,Water"
	exerciseExportHeader = "Date,Time,Category,Activity,Duration,Calories Burned"
)

// sanitizeField strips commas so free-text fields can't shift columns.
func sanitizeField(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}

// exportCategory labels a food row "Drink" when the analysis measured it by
// volume, otherwise "Food".
func exportCategory(item foodLogItem) string {
	if item.QuantityUnit == "ml" {
		return "Drink"
	}
	return "Food"
}

// formatExport renders the full history as two comma-separated tables, food
// first, separated by a blank line. Rows follow the stored order (newest
// first). loc controls how timestamps render as local dates.
func formatExport(foodLogs []foodLogItem, exerciseLogs []exerciseLogItem, loc *time.Location) string {
	var b strings.Builder

	b.WriteString(foodExportHeader)
	b.WriteString("\n")
	for _, item := range foodLogs {
		ts := time.UnixMilli(item.Timestamp).In(loc)
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%d,%d,%d,%d,%d,%d,%d,%d\n",
			ts.Format("2006-01-02"), ts.Format("15:04"),
			exportCategory(item),
			sanitizeField(item.FoodName), sanitizeField(item.Description),
			item.Calories, item.Protein, item.Carbs, item.Fat,
			item.Sugar, item.Fiber, item.Sodium, item.Water)
	}

	b.WriteString("\n")
	b.WriteString(exerciseExportHeader)
	b.WriteString("\n")
	for _, item := range exerciseLogs {
		ts := time.UnixMilli(item.Timestamp).In(loc)
		fmt.Fprintf(&b, "%s,%s,Exercise,%s,%d,%d\n",
			ts.Format("2006-01-02"), ts.Format("15:04"),
			sanitizeField(item.ActivityName),
			item.DurationMinutes, item.CaloriesBurned)
	}

	return b.String()
}

// formatShareSummary renders one day as a short human-readable blurb for
// sharing, e.g. "Today: 1450/2350 kcal, 98g protein, 2 workouts (320 kcal burned)."
func formatShareSummary(totals dailyTotals, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d/%d kcal, %dg protein",
		date.Format("Jan 2"), totals.Calories, totals.EffectiveCalorieGoal, totals.Protein)
	if totals.ExerciseCount > 0 {
		workouts := "workouts"
		if totals.ExerciseCount == 1 {
			workouts = "workout"
		}
		fmt.Fprintf(&b, ", %d %s (%d kcal burned)", totals.ExerciseCount, workouts, totals.TotalBurned)
	}
	b.WriteString(".")
	return b.String()
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getExport returns the full-history export as plain text.
// GET /api/export.
func (h *Handler) getExport(c *gin.Context) {
	text := formatExport(h.store.FoodLogs(), h.store.ExerciseLogs(), h.now().Location())
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// getShareSummary returns a one-line summary of a single day.
// GET /api/export/summary?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getShareSummary(c *gin.Context) {
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

	goals := computeGoals(h.store.Profile())
	totals := aggregateDay(h.store.FoodLogs(), h.store.ExerciseLogs(), date, goals)
	c.JSON(http.StatusOK, gin.H{"summary": formatShareSummary(totals, date)})
}
