package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// setupAnalyzeTest creates a Gin engine with a mock Gemini server and returns
// the router, the mock server, and a function to set the mock response.
func setupAnalyzeTest() (*gin.Engine, *Store, *httptest.Server, func(int, interface{})) {
	var mockStatus int
	var mockBody interface{}

	mockGemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mockStatus)
		json.NewEncoder(w).Encode(mockBody)
	}))

	gin.SetMode(gin.TestMode)
	store := newStore(newMemKV())
	h := Handler{
		store:          store,
		analyzeBaseURL: mockGemini.URL,
		now:            func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) },
	}
	router := gin.New()
	// Auth middleware is skipped; it has its own tests.
	router.POST("/api/analyze", h.analyzeImage)

	setMock := func(status int, body interface{}) {
		mockStatus = status
		mockBody = body
	}
	return router, store, mockGemini, setMock
}

func doAnalyzeRequest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// geminiResponse wraps a JSON string in the generateContent response shape
// (candidates[0].content.parts[0].text).
func geminiResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
			},
		},
	}
}

func TestAnalyze_Success(t *testing.T) {
	router, _, mockServer, setMock := setupAnalyzeTest()
	defer mockServer.Close()

	analysis := `{"foodName":"Margherita Pizza","description":"Two fresh slices","calories":400,"protein":18,"carbs":44,"fat":16,"sugar":6,"fiber":3,"sodium":900,"potassium":300,"cholesterol":40,"water":80,"quantityUnit":"slice","itemCount":2,"exerciseSuggestions":[{"activity":"Running","durationMinutes":40}]}`
	setMock(http.StatusOK, geminiResponse(analysis))
	t.Setenv("GEMINI_API_KEY", "test-key")

	w := doAnalyzeRequest(router, `{"image_base64":"aGVsbG8=","mime_type":"image/jpeg"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Result   foodAnalysisResult `json:"result"`
		Warnings []string           `json:"warnings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Result.FoodName != "Margherita Pizza" {
		t.Errorf("foodName = %q, want 'Margherita Pizza'", resp.Result.FoodName)
	}
	if resp.Result.ItemCount != 2 {
		t.Errorf("itemCount = %d, want 2", resp.Result.ItemCount)
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", resp.Warnings)
	}
}

// TestAnalyze_ItemCountDefaultsToOne verifies a response without itemCount is
// normalized to 1 so COUNT-mode portioning never divides by zero.
func TestAnalyze_ItemCountDefaultsToOne(t *testing.T) {
	router, _, mockServer, setMock := setupAnalyzeTest()
	defer mockServer.Close()

	setMock(http.StatusOK, geminiResponse(`{"foodName":"Soup","calories":200,"exerciseSuggestions":[]}`))
	t.Setenv("GEMINI_API_KEY", "test-key")

	w := doAnalyzeRequest(router, `{"image_base64":"aGVsbG8=","mime_type":"image/jpeg"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Result foodAnalysisResult `json:"result"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Result.ItemCount != 1 {
		t.Errorf("itemCount = %d, want default 1", resp.Result.ItemCount)
	}
}

// TestAnalyze_FractionalValuesRounded verifies the model may return
// fractional numbers: 149.5 kcal parses and rounds to 150 instead of failing
// the decode. Every numeric field rounds once at the boundary.
func TestAnalyze_FractionalValuesRounded(t *testing.T) {
	router, _, mockServer, setMock := setupAnalyzeTest()
	defer mockServer.Close()

	analysis := `{"foodName":"Yogurt Parfait","calories":149.5,"protein":8.5,"carbs":22.3,"fat":3.2,"water":120.4,"itemCount":1.0,"exerciseSuggestions":[{"activity":"Walking","durationMinutes":32.6}]}`
	setMock(http.StatusOK, geminiResponse(analysis))
	t.Setenv("GEMINI_API_KEY", "test-key")

	w := doAnalyzeRequest(router, `{"image_base64":"aGVsbG8=","mime_type":"image/jpeg"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Result foodAnalysisResult `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Result.Calories != 150 {
		t.Errorf("calories = %d, want 150 (rounded from 149.5)", resp.Result.Calories)
	}
	if resp.Result.Protein != 9 {
		t.Errorf("protein = %d, want 9 (rounded from 8.5)", resp.Result.Protein)
	}
	if resp.Result.Carbs != 22 {
		t.Errorf("carbs = %d, want 22 (rounded from 22.3)", resp.Result.Carbs)
	}
	if resp.Result.Water != 120 {
		t.Errorf("water = %d, want 120 (rounded from 120.4)", resp.Result.Water)
	}
	if resp.Result.ExerciseSuggestions[0].DurationMinutes != 33 {
		t.Errorf("suggestion duration = %d, want 33 (rounded from 32.6)",
			resp.Result.ExerciseSuggestions[0].DurationMinutes)
	}
}

// TestAnalyze_HighSodiumWarning verifies the response carries the single-item
// warning list: 1955mg sodium against the default 2300mg goal is 85%.
func TestAnalyze_HighSodiumWarning(t *testing.T) {
	router, _, mockServer, setMock := setupAnalyzeTest()
	defer mockServer.Close()

	setMock(http.StatusOK, geminiResponse(`{"foodName":"Instant Ramen","calories":450,"sodium":1955,"exerciseSuggestions":[]}`))
	t.Setenv("GEMINI_API_KEY", "test-key")

	w := doAnalyzeRequest(router, `{"image_base64":"aGVsbG8=","mime_type":"image/jpeg"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Warnings []string `json:"warnings"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Warnings) != 1 || resp.Warnings[0] != "Sodium (85%)" {
		t.Errorf("warnings = %v, want [Sodium (85%%)]", resp.Warnings)
	}
}

// TestAnalyze_UpstreamError verifies a model failure maps to 502 with no log
// entry created.
func TestAnalyze_UpstreamError(t *testing.T) {
	router, store, mockServer, setMock := setupAnalyzeTest()
	defer mockServer.Close()

	setMock(http.StatusInternalServerError, map[string]string{"error": "overloaded"})
	t.Setenv("GEMINI_API_KEY", "test-key")

	w := doAnalyzeRequest(router, `{"image_base64":"aGVsbG8=","mime_type":"image/jpeg"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	if logs := store.FoodLogs(); len(logs) != 0 {
		t.Errorf("failed analysis created %d log entries", len(logs))
	}
}

// TestAnalyze_InvalidMode verifies an unrecognised mode is rejected.
func TestAnalyze_InvalidMode(t *testing.T) {
	router, _, mockServer, _ := setupAnalyzeTest()
	defer mockServer.Close()

	w := doAnalyzeRequest(router, `{"image_base64":"aGVsbG8=","mime_type":"image/jpeg","mode":"snack"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
