package services

import (
	"context"
	"strings"
	"sync"

	"github.com/NagamManaswini/CALORIE-COUNTER/models"
)

// CommonFoods is the static local lookup table, consulted before the
// external estimator.
var CommonFoods = []models.FoodEstimate{
	{Name: "Apple (Medium)", Calories: 95},
	{Name: "Banana (Medium)", Calories: 105},
	{Name: "Chicken Breast (100g)", Calories: 165},
	{Name: "Egg (Large)", Calories: 78},
	{Name: "White Rice (1 cup cooked)", Calories: 205},
	{Name: "Brown Rice (1 cup cooked)", Calories: 216},
	{Name: "Oatmeal (1 cup cooked)", Calories: 158},
	{Name: "Greek Yogurt (1 cup)", Calories: 150},
	{Name: "Almonds (1 oz / 28g)", Calories: 164},
	{Name: "Peanut Butter (1 tbsp)", Calories: 94},
	{Name: "Avocado (Medium)", Calories: 240},
	{Name: "Whole Wheat Bread (1 slice)", Calories: 69},
	{Name: "Salmon (100g)", Calories: 208},
	{Name: "Black Coffee", Calories: 2},
	{Name: "Orange Juice (1 cup)", Calories: 112},
}

// estimator is the external half of the food lookup. Satisfied by
// GeminiService; tests substitute fakes.
type estimator interface {
	EstimateCalories(ctx context.Context, query string) models.FoodEstimate
}

// FoodService resolves free-text food queries into name/calorie candidates.
// Searches may run asynchronously; starting a new search cancels any search
// still in flight, and a result that resolves after being superseded is
// dropped instead of delivered.
type FoodService struct {
	est estimator

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewFoodService(est estimator) *FoodService {
	return &FoodService{est: est}
}

// Lookup resolves a query synchronously: local table matches first, then the
// external estimate appended only when the table yields fewer than three hits
// and the query is long enough to be worth an upstream call.
func (s *FoodService) Lookup(ctx context.Context, query string) []models.FoodEstimate {
	local := filterCommonFoods(query)
	if len(local) < 3 && len(query) > 2 {
		return append(local, s.est.EstimateCalories(ctx, query))
	}
	return local
}

// Search starts an asynchronous lookup and hands the results to deliver.
// Only the most recently started search delivers; earlier ones are cancelled
// and their late results discarded.
func (s *FoodService) Search(query string, deliver func([]models.FoodEstimate)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	go func() {
		defer cancel()
		results := s.Lookup(ctx, query)

		s.mu.Lock()
		current := gen == s.gen
		s.mu.Unlock()
		if current {
			deliver(results)
		}
	}()
}

func filterCommonFoods(query string) []models.FoodEstimate {
	q := strings.ToLower(query)
	var matches []models.FoodEstimate
	for _, f := range CommonFoods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			matches = append(matches, f)
		}
	}
	return matches
}
