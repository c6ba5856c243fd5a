package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NagamManaswini/CALORIE-COUNTER/config"
	"github.com/NagamManaswini/CALORIE-COUNTER/models"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// Fixed fallback estimates: one for a missing credential, a slightly higher
// one for a call that was attempted and failed.
const (
	missingKeyCalories = 100
	failedCallCalories = 150
)

// GeminiService estimates calories for a free-text food description through
// the generateContent endpoint. Every failure path resolves to a usable
// estimate keyed to the query text; callers never see an error.
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiService(cfg config.Config) *GeminiService {
	return &GeminiService{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// EstimateCalories returns a best-effort estimate for the query. With no API
// key configured it answers a flat default immediately; transport, API and
// parse failures degrade to a default keyed to the query.
func (s *GeminiService) EstimateCalories(ctx context.Context, query string) models.FoodEstimate {
	if s.apiKey == "" {
		log.Printf("gemini: no API key configured, returning default estimate")
		return models.FoodEstimate{Name: query, Calories: missingKeyCalories}
	}

	est, err := s.call(ctx, query)
	if err != nil {
		log.Printf("gemini: %v", err)
		return models.FoodEstimate{Name: query, Calories: failedCallCalories}
	}
	return est
}

func (s *GeminiService) call(ctx context.Context, query string) (models.FoodEstimate, error) {
	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": fmt.Sprintf("Estimate calories for: %s. Return a JSON object with 'name' and 'calories' (number).", query)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"name":     map[string]interface{}{"type": "STRING"},
					"calories": map[string]interface{}{"type": "NUMBER"},
				},
				"required": []string{"name", "calories"},
			},
		},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return models.FoodEstimate{}, fmt.Errorf("failed to marshal estimate payload: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.baseURL, s.model, url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return models.FoodEstimate{}, fmt.Errorf("failed to create estimate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.FoodEstimate{}, fmt.Errorf("failed to call Gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.FoodEstimate{}, fmt.Errorf("failed to read Gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.FoodEstimate{}, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return models.FoodEstimate{}, fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return models.FoodEstimate{}, fmt.Errorf("gemini returned no candidates")
	}

	text := stripCodeFences(gr.Candidates[0].Content.Parts[0].Text)
	var est struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
	}
	if err := json.Unmarshal([]byte(text), &est); err != nil {
		return models.FoodEstimate{}, fmt.Errorf("failed to parse estimate JSON: %w", err)
	}
	if est.Name == "" {
		// No confident name from the model; key the estimate to the query.
		est.Name = query
	}
	return models.FoodEstimate{Name: est.Name, Calories: int(math.Round(est.Calories))}, nil
}

// stripCodeFences removes the markdown fence wrapper some model replies carry
// despite the JSON mime type.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
