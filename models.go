package main

/* ─── Goal types ─────────────────────────────────────────────────────── */

const (
	goalMaintain   = "MAINTAIN"
	goalLoseWeight = "LOSE_WEIGHT"
	goalGainMuscle = "GAIN_MUSCLE"
)

// validGoalTypes is the set of allowed goal_type values. This is the single
// source of truth; also used for input validation in patchSettings.
var validGoalTypes = map[string]bool{
	goalMaintain:   true,
	goalLoseWeight: true,
	goalGainMuscle: true,
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// exerciseSuggestion is one "burn it off" suggestion attached to an analysis
// result, typically three per result.
type exerciseSuggestion struct {
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"durationMinutes"`
}

// foodAnalysisResult is the structured nutrition estimate returned by the
// vision model, or synthesized locally for quick-add and water entries.
// JSON tags are camelCase because this is both the model's wire format and
// the persisted log format; keep them stable.
// Units: grams, except sodium/potassium/cholesterol in mg and water in ml.
type foodAnalysisResult struct {
	FoodName            string               `json:"foodName"`
	Description         string               `json:"description"`
	Calories            int                  `json:"calories"`
	Protein             int                  `json:"protein"`
	Carbs               int                  `json:"carbs"`
	Fat                 int                  `json:"fat"`
	Sugar               int                  `json:"sugar"`
	Fiber               int                  `json:"fiber"`
	Sodium              int                  `json:"sodium"`
	Potassium           int                  `json:"potassium"`
	Cholesterol         int                  `json:"cholesterol"`
	Water               int                  `json:"water"`
	QuantityUnit        string               `json:"quantityUnit,omitempty"`
	ItemCount           int                  `json:"itemCount,omitempty"`
	ExerciseSuggestions []exerciseSuggestion `json:"exerciseSuggestions"`
}

// foodLogItem is a confirmed analysis result in the log. ImageURL is empty
// for non-photo entries (quick-add, water). Timestamp is epoch milliseconds.
type foodLogItem struct {
	foodAnalysisResult
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	ImageURL  string `json:"imageUrl"`
}

// exerciseLogItem is one logged workout. ActivityID is the sport name used
// for MET lookup; ActivityName is the display name (usually identical).
type exerciseLogItem struct {
	ID              string `json:"id"`
	Timestamp       int64  `json:"timestamp"`
	ActivityID      string `json:"activityId"`
	ActivityName    string `json:"activityName"`
	DurationMinutes int    `json:"durationMinutes"`
	CaloriesBurned  int    `json:"caloriesBurned"`
}

// userProfile holds the settings that drive goal computation. WeightLbs is a
// pointer so "unset" (fall back to default goals) is distinct from zero.
// TargetLossLbs/TargetMonths are only meaningful when GoalType is LOSE_WEIGHT.
type userProfile struct {
	WeightLbs      *float64 `json:"weight_lbs"`
	GoalType       string   `json:"goal_type"`
	TargetLossLbs  float64  `json:"target_loss_lbs"`
	TargetMonths   int      `json:"target_months"`
	BurnGoalKcal   int      `json:"burn_goal_kcal"`
	FrequentSports []string `json:"frequent_sports"`
}

// dailyGoals is derived from the profile on every read, never persisted.
// Micro goals (sugar..cholesterol) are fixed defaults regardless of weight;
// only calories/protein/carbs/fat/water scale.
type dailyGoals struct {
	Calories    int `json:"calories"`
	Protein     int `json:"protein"`
	Carbs       int `json:"carbs"`
	Fat         int `json:"fat"`
	Sugar       int `json:"sugar"`
	Fiber       int `json:"fiber"`
	Sodium      int `json:"sodium"`
	Potassium   int `json:"potassium"`
	Cholesterol int `json:"cholesterol"`
	Water       int `json:"water"`
}

// dailyTotals is the aggregate of one calendar day's logs plus the derived
// scalars. EffectiveCalorieGoal = base goal + calories burned; exercise
// earns calories back rather than reducing consumption.
type dailyTotals struct {
	Calories    int `json:"calories"`
	Protein     int `json:"protein"`
	Carbs       int `json:"carbs"`
	Fat         int `json:"fat"`
	Sugar       int `json:"sugar"`
	Fiber       int `json:"fiber"`
	Sodium      int `json:"sodium"`
	Potassium   int `json:"potassium"`
	Cholesterol int `json:"cholesterol"`
	Water       int `json:"water"`

	TotalBurned          int `json:"total_burned"`
	ExerciseCount        int `json:"exercise_count"`
	EffectiveCalorieGoal int `json:"effective_calorie_goal"`
}

// insightPair is the coaching recommendation pair derived from today's
// totals. Always "today"-scoped, even when a past day is being viewed.
type insightPair struct {
	WorkoutAdvice string `json:"workout_advice"`
	FoodAdvice    string `json:"food_advice"`
}
