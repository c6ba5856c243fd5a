package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NagamManaswini/CALORIE-COUNTER/config"
)

// newTestGemini points a GeminiService at a stub generateContent endpoint.
func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiService {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc := NewGeminiService(config.Config{GeminiAPIKey: "test-key", GeminiModel: "test-model"})
	svc.baseURL = ts.URL
	return svc
}

// candidateBody wraps text the way generateContent responses carry it.
func candidateBody(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func TestEstimateCalories_Success(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateBody(`{"name":"Margherita Pizza (1 slice)","calories":285}`))
	})

	got := svc.EstimateCalories(context.Background(), "pizza slice")
	if got.Name != "Margherita Pizza (1 slice)" || got.Calories != 285 {
		t.Errorf("estimate = %+v", got)
	}
}

func TestEstimateCalories_StripsCodeFences(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateBody("```json\n{\"name\":\"Ramen\",\"calories\":436}\n```"))
	})

	got := svc.EstimateCalories(context.Background(), "ramen")
	if got.Name != "Ramen" || got.Calories != 436 {
		t.Errorf("estimate = %+v", got)
	}
}

func TestEstimateCalories_MissingName_KeysToQuery(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateBody(`{"name":"","calories":321}`))
	})

	got := svc.EstimateCalories(context.Background(), "mystery stew")
	if got.Name != "mystery stew" {
		t.Errorf("name = %q, want the literal query", got.Name)
	}
	if got.Calories != 321 {
		t.Errorf("calories = %d, want 321", got.Calories)
	}
}

func TestEstimateCalories_MissingKey(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	svc := NewGeminiService(config.Config{GeminiModel: "test-model"})
	svc.baseURL = ts.URL

	got := svc.EstimateCalories(context.Background(), "pizza")
	if got.Name != "pizza" || got.Calories != 100 {
		t.Errorf("estimate = %+v, want {pizza 100}", got)
	}
	if called {
		t.Error("upstream must not be called without a key")
	}
}

func TestEstimateCalories_APIError_FallsBack(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	got := svc.EstimateCalories(context.Background(), "pizza")
	if got.Name != "pizza" || got.Calories != 150 {
		t.Errorf("estimate = %+v, want {pizza 150}", got)
	}
}

func TestEstimateCalories_MalformedBody_FallsBack(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	})

	got := svc.EstimateCalories(context.Background(), "pizza")
	if got.Calories != 150 {
		t.Errorf("calories = %d, want fallback 150", got.Calories)
	}
}

func TestEstimateCalories_NoCandidates_FallsBack(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	})

	got := svc.EstimateCalories(context.Background(), "pizza")
	if got.Calories != 150 {
		t.Errorf("calories = %d, want fallback 150", got.Calories)
	}
}

func TestEstimateCalories_Unreachable_FallsBack(t *testing.T) {
	svc := NewGeminiService(config.Config{GeminiAPIKey: "test-key", GeminiModel: "test-model"})
	svc.baseURL = "http://127.0.0.1:1" // nothing listens here

	got := svc.EstimateCalories(context.Background(), "pizza")
	if got.Name != "pizza" || got.Calories != 150 {
		t.Errorf("estimate = %+v, want {pizza 150}", got)
	}
}
