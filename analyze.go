package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

/* ─── Request / Response types ───────────────────────────────────────── */

// analyzeRequest is the request body for POST /api/analyze.
type analyzeRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Mode        string `json:"mode"` // "food" (default) or "drink"
}

/* ─── Gemini prompt constants ────────────────────────────────────────── */

const foodPromptTemplate = `Analyze this image of food or drink. Identify the main dish or items. Estimate the total calories, macronutrients (protein, carbs, fat), and detailed nutrients (sugar, fiber, sodium, potassium, cholesterol) for the visible portion.

CRITICAL: Estimate the water content in milliliters (ml). For drinks (tea, coffee, juice), this should be high. For solid foods (watermelon, soup, oatmeal), estimate the water contained. For dry foods, it will be low.

If the food is distinct and countable (e.g., 2 slices of pizza, 3 cookies, 1 chocolate bar), specifically identify the 'itemCount' seen in the image and the 'quantityUnit' (e.g., 'slice', 'cookie', 'bar'). If it's a single dish or amorphous (e.g., bowl of soup, plate of pasta), set 'itemCount' to 1 and 'quantityUnit' to 'serving' or 'bowl'.

Provide a short, appetizing description. Be realistic with portion sizes.

%s
%s

Return only a JSON object with keys: foodName, description, quantityUnit, itemCount, calories, protein, carbs, fat, sugar, fiber, sodium, potassium, cholesterol, water, exerciseSuggestions (array of {activity, durationMinutes}, 3 entries). If the image is not food, set the foodName to 'Unknown' and values to 0.`

const drinkPromptTemplate = `Analyze this beverage image. Identify the drink (e.g., Latte, Soda, Juice, Smoothie, Beer, Water).

CRITICAL: Estimate the volume in milliliters (ml) based on the container size (cup, mug, bottle, glass).

Estimate calories and nutrients (sugar is very important for drinks).
If it's plain water, calories/sugar/macros are 0.
If it's a sugary drink (soda, juice), sugar should be high.
If it's coffee/tea without milk/sugar, calories are near 0.

Provide a short description (e.g., "Medium Iced Latte").
Set 'quantityUnit' to 'ml' and 'itemCount' to the estimated volume (e.g. 350).

%s
%s

Return only a JSON object with keys: foodName, description, quantityUnit, itemCount, calories, protein, carbs, fat, sugar, fiber, sodium, potassium, cholesterol, water, exerciseSuggestions (array of {activity, durationMinutes}, 3 entries).`

// sportsContext builds the exercise-suggestion hint, prioritizing the
// user's frequent sports when any are saved.
func sportsContext(frequentSports []string) string {
	if len(frequentSports) == 0 {
		return "Provide 3 different exercise suggestions (e.g., Running, Swimming, Cycling, Walking)."
	}
	return fmt.Sprintf("For the exercise suggestions, please prioritize these activities if appropriate: %s. Fill remaining slots with other common exercises.",
		strings.Join(frequentSports, ", "))
}

func weightContext(weightLbs float64) string {
	return fmt.Sprintf("The user weighs %.0f lbs. Use this specific weight to calculate the estimated duration required to burn the calories.", weightLbs)
}

/* ─── Gemini HTTP client ─────────────────────────────────────────────── */

const analyzeModel = "gemini-2.5-flash"

// defaultAnalysisWeightLbs is assumed when no weight is saved yet.
const defaultAnalysisWeightLbs = 150

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

// analyzeFoodImage sends the image to the Gemini generateContent endpoint
// and parses the structured estimate. Uses raw net/http to avoid pulling in
// the vendor SDK. Missing water defaults to 0 and missing itemCount to 1.
func analyzeFoodImage(ctx context.Context, baseURL, imageB64, mimeType string, frequentSports []string, mode string, weightLbs float64) (foodAnalysisResult, error) {
	var zero foodAnalysisResult
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return zero, fmt.Errorf("GEMINI_API_KEY not set")
	}

	template := foodPromptTemplate
	if mode == "drink" {
		template = drinkPromptTemplate
	}
	prompt := fmt.Sprintf(template, sportsContext(frequentSports), weightContext(weightLbs))

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: imageB64}},
				{Text: prompt},
			},
		}},
	}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return zero, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, analyzeModel, apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return zero, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Extract candidates[0].content.parts[0].text
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return zero, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return zero, fmt.Errorf("no candidates in response")
	}

	var wire wireAnalysis
	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &wire); err != nil {
		return zero, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return wire.toResult(), nil
}

// wireAnalysis mirrors foodAnalysisResult with float64 numerics. The model
// returns numbers, not integers, so "calories": 149.5 is a valid response;
// rounding happens here, once, and everything downstream stays integral.
type wireAnalysis struct {
	FoodName     string  `json:"foodName"`
	Description  string  `json:"description"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Sugar        float64 `json:"sugar"`
	Fiber        float64 `json:"fiber"`
	Sodium       float64 `json:"sodium"`
	Potassium    float64 `json:"potassium"`
	Cholesterol  float64 `json:"cholesterol"`
	Water        float64 `json:"water"`
	QuantityUnit string  `json:"quantityUnit"`
	ItemCount    float64 `json:"itemCount"`
	Suggestions  []struct {
		Activity        string  `json:"activity"`
		DurationMinutes float64 `json:"durationMinutes"`
	} `json:"exerciseSuggestions"`
}

func (w wireAnalysis) toResult() foodAnalysisResult {
	round := func(v float64) int { return int(math.Round(v)) }
	r := foodAnalysisResult{
		FoodName:     w.FoodName,
		Description:  w.Description,
		Calories:     round(w.Calories),
		Protein:      round(w.Protein),
		Carbs:        round(w.Carbs),
		Fat:          round(w.Fat),
		Sugar:        round(w.Sugar),
		Fiber:        round(w.Fiber),
		Sodium:       round(w.Sodium),
		Potassium:    round(w.Potassium),
		Cholesterol:  round(w.Cholesterol),
		Water:        round(w.Water),
		QuantityUnit: w.QuantityUnit,
		ItemCount:    round(w.ItemCount),
	}
	if r.ItemCount < 1 {
		r.ItemCount = 1
	}
	r.ExerciseSuggestions = make([]exerciseSuggestion, len(w.Suggestions))
	for i, s := range w.Suggestions {
		r.ExerciseSuggestions[i] = exerciseSuggestion{
			Activity:        s.Activity,
			DurationMinutes: round(s.DurationMinutes),
		}
	}
	return r
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// analyzeImage handles POST /api/analyze. Proxies the image to the vision
// model and returns the estimate plus single-item high-content warnings.
// A failure creates no log entry; the client retries or gives up.
func (h *Handler) analyzeImage(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ImageBase64 == "" || req.MimeType == "" {
		apiError(c, http.StatusBadRequest, "image_base64 and mime_type are required")
		return
	}
	if req.Mode == "" {
		req.Mode = "food"
	}
	if req.Mode != "food" && req.Mode != "drink" {
		apiError(c, http.StatusBadRequest, "mode must be food or drink")
		return
	}

	profile := h.store.Profile()
	weight := float64(defaultAnalysisWeightLbs)
	if profile.WeightLbs != nil && *profile.WeightLbs > 0 {
		weight = *profile.WeightLbs
	}

	result, err := analyzeFoodImage(c.Request.Context(), h.analyzeBaseURL,
		req.ImageBase64, req.MimeType, profile.FrequentSports, req.Mode, weight)
	if err != nil {
		log.Printf("[analyzeImage] analysis error: %v", err)
		apiError(c, http.StatusBadGateway, "analysis failed, please retry")
		return
	}

	goals := computeGoals(profile)
	c.JSON(http.StatusOK, gin.H{
		"result":   result,
		"warnings": analysisWarnings(result, goals),
	})
}
