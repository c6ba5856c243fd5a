package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/NagamManaswini/CALORIE-COUNTER/models"
	"github.com/NagamManaswini/CALORIE-COUNTER/storage"
	"github.com/NagamManaswini/CALORIE-COUNTER/utils"
)

// LogService owns the ordered log entry collection. Entries are only ever
// appended and deleted by id; the whole collection is persisted after each
// mutation.
type LogService struct {
	store    *storage.Store
	validate *validator.Validate
	entries  []models.LogEntry
	now      func() time.Time
}

// NewLogService loads the persisted collection.
func NewLogService(store *storage.Store) (*LogService, error) {
	entries, err := store.LoadLogs()
	if err != nil {
		return nil, fmt.Errorf("load logs: %w", err)
	}
	return &LogService{
		store:    store,
		validate: validator.New(),
		entries:  entries,
		now:      time.Now,
	}, nil
}

// Append assigns a fresh id, stamps the current day key when the caller left
// Date empty, and stores the entry at the end of the collection. Duplicates
// are allowed; every append is a distinct entry.
func (s *LogService) Append(e models.LogEntry) (models.LogEntry, error) {
	if e.Date == "" {
		e.Date = utils.DayKey(s.now())
	}
	if err := s.validate.Struct(e); err != nil {
		return models.LogEntry{}, fmt.Errorf("invalid log entry: %w", err)
	}
	e.ID = uuid.NewString()
	s.entries = append(s.entries, e)
	s.persist()
	return e, nil
}

// AppendSelection logs a picked search result against a meal type with the
// fixed one-serving size used by the quick-add flow.
func (s *LogService) AppendSelection(item models.FoodEstimate, mt models.MealType) (models.LogEntry, error) {
	return s.Append(models.LogEntry{
		MealType:    mt,
		FoodName:    item.Name,
		Calories:    item.Calories,
		ServingSize: "1 serving",
	})
}

// Remove deletes the entry with the given id. Removing an unknown id is a
// no-op, not an error.
func (s *LogService) Remove(id string) {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			return
		}
	}
}

// All returns the full collection in insertion order.
func (s *LogService) All() []models.LogEntry {
	out := make([]models.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// EntriesForDay returns the entries logged on the given day key, preserving
// insertion order (which is not necessarily chronological within the day).
func (s *LogService) EntriesForDay(day string) []models.LogEntry {
	var out []models.LogEntry
	for _, e := range s.entries {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out
}

// TotalForDay sums calories over one day's entries.
func (s *LogService) TotalForDay(day string) int {
	return TotalCalories(s.EntriesForDay(day))
}

// TotalByMealType sums calories over entries matching both day and meal type.
func (s *LogService) TotalByMealType(day string, mt models.MealType) int {
	sum := 0
	for _, e := range s.entries {
		if e.Date == day && e.MealType == mt {
			sum += e.Calories
		}
	}
	return sum
}

// GroupByDay partitions the collection by day key. Each group keeps insertion
// order.
func (s *LogService) GroupByDay() map[string][]models.LogEntry {
	groups := make(map[string][]models.LogEntry)
	for _, e := range s.entries {
		groups[e.Date] = append(groups[e.Date], e)
	}
	return groups
}

// TotalCalories sums calories over a set of entries; an empty set sums to 0.
func TotalCalories(entries []models.LogEntry) int {
	sum := 0
	for _, e := range entries {
		sum += e.Calories
	}
	return sum
}

// SortedDays returns group keys newest first. Day keys sort lexicographically
// in chronological order, so a reverse string sort is a reverse date sort.
func SortedDays(groups map[string][]models.LogEntry) []string {
	days := make([]string, 0, len(groups))
	for d := range groups {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

func (s *LogService) persist() {
	if err := s.store.SaveLogs(s.entries); err != nil {
		log.Printf("logs: persist failed: %v", err)
	}
}
