package services

import (
	"testing"

	"github.com/NagamManaswini/CALORIE-COUNTER/models"
	"github.com/NagamManaswini/CALORIE-COUNTER/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func validProfile() models.UserProfile {
	return models.UserProfile{
		Name:          "Test",
		Age:           25,
		Gender:        models.GenderMale,
		Height:        175,
		Weight:        70,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	}
}

func TestProfileService_SetupGate(t *testing.T) {
	svc, err := NewProfileService(newTestStore(t))
	if err != nil {
		t.Fatalf("NewProfileService: %v", err)
	}

	if !svc.SetupRequired() {
		t.Error("expected SetupRequired before first save")
	}
	if got := svc.DailyTarget(); got != 2000 {
		t.Errorf("default target = %d, want 2000", got)
	}

	if err := svc.Save(validProfile()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if svc.SetupRequired() {
		t.Error("SetupRequired still true after save")
	}
	if got := svc.DailyTarget(); got != 2594 {
		t.Errorf("target after save = %d, want 2594", got)
	}
}

func TestProfileService_SaveRejectsMissingFields(t *testing.T) {
	svc, err := NewProfileService(newTestStore(t))
	if err != nil {
		t.Fatalf("NewProfileService: %v", err)
	}

	cases := []struct {
		name  string
		mutFn func(p *models.UserProfile)
	}{
		{"empty name", func(p *models.UserProfile) { p.Name = "" }},
		{"zero age", func(p *models.UserProfile) { p.Age = 0 }},
		{"unknown gender", func(p *models.UserProfile) { p.Gender = "other" }},
		{"zero height", func(p *models.UserProfile) { p.Height = 0 }},
		{"zero weight", func(p *models.UserProfile) { p.Weight = 0 }},
		{"unknown activity", func(p *models.UserProfile) { p.ActivityLevel = "couch" }},
		{"unknown goal", func(p *models.UserProfile) { p.Goal = "bulk" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutFn(&p)
			if err := svc.Save(p); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// A rejected save must not flip the setup gate.
	if !svc.SetupRequired() {
		t.Error("rejected save still marked the profile as set up")
	}
}

func TestProfileService_SavePersists(t *testing.T) {
	store := newTestStore(t)
	svc, err := NewProfileService(store)
	if err != nil {
		t.Fatalf("NewProfileService: %v", err)
	}

	want := validProfile()
	if err := svc.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A fresh service over the same store sees the saved profile.
	reloaded, err := NewProfileService(store)
	if err != nil {
		t.Fatalf("NewProfileService (reload): %v", err)
	}
	got, ok := reloaded.Get()
	if !ok {
		t.Fatal("reloaded service has no profile")
	}
	if got != want {
		t.Errorf("reloaded profile = %+v, want %+v", got, want)
	}
}

func TestProfileService_SaveReplacesWholesale(t *testing.T) {
	svc, err := NewProfileService(newTestStore(t))
	if err != nil {
		t.Fatalf("NewProfileService: %v", err)
	}
	if err := svc.Save(validProfile()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	next := validProfile()
	next.Weight = 80
	next.Goal = models.GoalLoseWeight
	if err := svc.Save(next); err != nil {
		t.Fatalf("Save (replace): %v", err)
	}

	got, _ := svc.Get()
	if got != next {
		t.Errorf("profile after replace = %+v, want %+v", got, next)
	}
	// 10*80+6.25*175-5*25+5 = 1773.75; *1.55 = 2749.3125; -500 → 2249.
	if target := svc.DailyTarget(); target != 2249 {
		t.Errorf("target after replace = %d, want 2249", target)
	}
}
