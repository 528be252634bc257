package main

import (
	"fmt"
	"math"
)

// alertNutrients enumerates the keys checked for over-consumption, with
// explicit accessors instead of reflection. Water is deliberately absent;
// there is no upper bound on water intake. Calories is special-cased in
// evaluateAlerts to compare against the effective (exercise-adjusted) goal.
var alertNutrients = []struct {
	name  string
	total func(dailyTotals) int
	goal  func(dailyGoals) int
}{
	{"Calories", func(t dailyTotals) int { return t.Calories }, func(g dailyGoals) int { return g.Calories }},
	{"Protein", func(t dailyTotals) int { return t.Protein }, func(g dailyGoals) int { return g.Protein }},
	{"Carbs", func(t dailyTotals) int { return t.Carbs }, func(g dailyGoals) int { return g.Carbs }},
	{"Fat", func(t dailyTotals) int { return t.Fat }, func(g dailyGoals) int { return g.Fat }},
	{"Sugar", func(t dailyTotals) int { return t.Sugar }, func(g dailyGoals) int { return g.Sugar }},
	{"Fiber", func(t dailyTotals) int { return t.Fiber }, func(g dailyGoals) int { return g.Fiber }},
	{"Sodium", func(t dailyTotals) int { return t.Sodium }, func(g dailyGoals) int { return g.Sodium }},
	{"Potassium", func(t dailyTotals) int { return t.Potassium }, func(g dailyGoals) int { return g.Potassium }},
	{"Cholesterol", func(t dailyTotals) int { return t.Cholesterol }, func(g dailyGoals) int { return g.Cholesterol }},
}

// evaluateAlerts returns the nutrients whose daily total is strictly above
// 200% of their goal. Exactly 200% is not flagged. The threshold is fixed.
func evaluateAlerts(totals dailyTotals, goals dailyGoals, effectiveCalorieGoal int) []string {
	alerts := []string{}
	for _, n := range alertNutrients {
		limit := n.goal(goals)
		if n.name == "Calories" {
			limit = effectiveCalorieGoal
		}
		if n.total(totals) > limit*2 {
			alerts = append(alerts, n.name)
		}
	}
	return alerts
}

// warnNutrients is the key list for single-item high-content warnings on a
// fresh analysis result. Same keys as alertNutrients, read from the result.
var warnNutrients = []struct {
	name  string
	value func(foodAnalysisResult) int
	goal  func(dailyGoals) int
}{
	{"Calories", func(r foodAnalysisResult) int { return r.Calories }, func(g dailyGoals) int { return g.Calories }},
	{"Protein", func(r foodAnalysisResult) int { return r.Protein }, func(g dailyGoals) int { return g.Protein }},
	{"Carbs", func(r foodAnalysisResult) int { return r.Carbs }, func(g dailyGoals) int { return g.Carbs }},
	{"Fat", func(r foodAnalysisResult) int { return r.Fat }, func(g dailyGoals) int { return g.Fat }},
	{"Sugar", func(r foodAnalysisResult) int { return r.Sugar }, func(g dailyGoals) int { return g.Sugar }},
	{"Fiber", func(r foodAnalysisResult) int { return r.Fiber }, func(g dailyGoals) int { return g.Fiber }},
	{"Sodium", func(r foodAnalysisResult) int { return r.Sodium }, func(g dailyGoals) int { return g.Sodium }},
	{"Potassium", func(r foodAnalysisResult) int { return r.Potassium }, func(g dailyGoals) int { return g.Potassium }},
	{"Cholesterol", func(r foodAnalysisResult) int { return r.Cholesterol }, func(g dailyGoals) int { return g.Cholesterol }},
}

// analysisWarnings lists the nutrients where a single analyzed item carries
// more than 50% of the daily value, formatted as "Sodium (85%)". Shown on
// the analysis screen before the user confirms the entry.
func analysisWarnings(r foodAnalysisResult, goals dailyGoals) []string {
	warnings := []string{}
	for _, n := range warnNutrients {
		goal := n.goal(goals)
		if goal <= 0 {
			continue
		}
		v := n.value(r)
		if float64(v) > float64(goal)*0.5 {
			pct := int(math.Round(float64(v) / float64(goal) * 100))
			warnings = append(warnings, fmt.Sprintf("%s (%d%%)", n.name, pct))
		}
	}
	return warnings
}
