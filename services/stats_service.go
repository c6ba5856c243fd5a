package services

import (
	"math"
	"time"

	"github.com/NagamManaswini/CALORIE-COUNTER/models"
	"github.com/NagamManaswini/CALORIE-COUNTER/utils"
)

// StatsService computes on-demand aggregates over the log collection against
// the current profile's target. Nothing here is persisted; historical days
// are always measured against today's target, not the target in effect when
// they were logged.
type StatsService struct {
	logs     *LogService
	profiles *ProfileService
	now      func() time.Time
}

func NewStatsService(logs *LogService, profiles *ProfileService) *StatsService {
	return &StatsService{logs: logs, profiles: profiles, now: time.Now}
}

// Summary returns one day's consumed total alongside the current target.
func (s *StatsService) Summary(day string) models.DailySummary {
	return models.DailySummary{
		Date:           day,
		TotalCalories:  s.logs.TotalForDay(day),
		TargetCalories: s.profiles.DailyTarget(),
	}
}

// RollingWindow produces per-day totals for numDays consecutive calendar days
// ending at and including endDay, oldest first. Days are generated by date
// arithmetic, so days without any entries appear with a zero total rather
// than being skipped.
func (s *StatsService) RollingWindow(endDay string, numDays int) []models.DayTotal {
	target := s.profiles.DailyTarget()
	out := make([]models.DayTotal, 0, numDays)
	for i := numDays - 1; i >= 0; i-- {
		day := utils.AddDays(endDay, -i)
		out = append(out, models.DayTotal{
			Day:      day,
			Label:    utils.WeekdayLabel(day),
			Consumed: s.logs.TotalForDay(day),
			Target:   target,
		})
	}
	return out
}

// LastSevenDays is the window behind the consumption chart and the weekly
// figures.
func (s *StatsService) LastSevenDays() []models.DayTotal {
	return s.RollingWindow(utils.DayKey(s.now()), 7)
}

// Dashboard assembles the landing-view numbers for one day.
func (s *StatsService) Dashboard(day string) models.Dashboard {
	entries := s.logs.EntriesForDay(day)
	target := s.profiles.DailyTarget()
	consumed := TotalCalories(entries)

	remaining := target - consumed
	if remaining < 0 {
		remaining = 0
	}

	percent := 0
	if target > 0 {
		percent = int(math.Round(float64(consumed) / float64(target) * 100))
		if percent > 100 {
			percent = 100
		}
	}

	byMeal := make(map[models.MealType]int, len(models.MealTypes))
	for _, mt := range models.MealTypes {
		byMeal[mt] = 0
	}
	for _, e := range entries {
		byMeal[e.MealType] += e.Calories
	}

	// Last three of the day, newest first.
	n := len(entries)
	if n > 3 {
		n = 3
	}
	recent := make([]models.LogEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		recent = append(recent, entries[i])
	}

	return models.Dashboard{
		Date:      day,
		Target:    target,
		Consumed:  consumed,
		Remaining: remaining,
		Percent:   percent,
		ByMeal:    byMeal,
		Recent:    recent,
	}
}

// Today is the dashboard for the current day key.
func (s *StatsService) Today() models.Dashboard {
	return s.Dashboard(utils.DayKey(s.now()))
}

// WeeklyAverage is the mean consumption over the window, zero days included,
// rounded to the nearest calorie.
func WeeklyAverage(window []models.DayTotal) int {
	if len(window) == 0 {
		return 0
	}
	sum := 0
	for _, d := range window {
		sum += d.Consumed
	}
	return int(math.Round(float64(sum) / float64(len(window))))
}

// Compliance is the rounded percentage of window days where something was
// logged and consumption stayed at or under target. Days with zero consumed
// calories are missing data, not successes, so they never count.
func Compliance(window []models.DayTotal) int {
	if len(window) == 0 {
		return 0
	}
	compliant := 0
	for _, d := range window {
		if d.Consumed > 0 && d.Consumed <= d.Target {
			compliant++
		}
	}
	return int(math.Round(float64(compliant) / float64(len(window)) * 100))
}
