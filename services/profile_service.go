package services

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/NagamManaswini/CALORIE-COUNTER/models"
	"github.com/NagamManaswini/CALORIE-COUNTER/storage"
	"github.com/NagamManaswini/CALORIE-COUNTER/utils"
)

// ProfileService owns the single user profile. There is exactly one profile
// per installation; saving replaces it wholesale, and the daily target is
// always derived from whatever is currently stored.
type ProfileService struct {
	store    *storage.Store
	validate *validator.Validate

	profile models.UserProfile
	exists  bool
}

// NewProfileService loads the persisted profile, if any.
func NewProfileService(store *storage.Store) (*ProfileService, error) {
	p, ok, err := store.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &ProfileService{
		store:    store,
		validate: validator.New(),
		profile:  p,
		exists:   ok,
	}, nil
}

// Get returns the current profile; ok is false before setup has run.
func (s *ProfileService) Get() (models.UserProfile, bool) {
	return s.profile, s.exists
}

// SetupRequired reports whether profile setup must run before any other
// feature is usable.
func (s *ProfileService) SetupRequired() bool {
	return !s.exists
}

// Save checks the required fields and replaces the stored profile. The new
// profile takes effect immediately: the next DailyTarget call reflects it.
func (s *ProfileService) Save(p models.UserProfile) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	s.profile = p
	s.exists = true
	if err := s.store.SaveProfile(p); err != nil {
		// Persistence is assumed to succeed; a failed write only costs
		// durability, not the in-memory state.
		log.Printf("profile: persist failed: %v", err)
	}
	return nil
}

// DailyTarget returns the calorie target for the current profile, or the
// default before setup.
func (s *ProfileService) DailyTarget() int {
	if !s.exists {
		return utils.DefaultDailyTarget
	}
	return utils.CalculateDailyTarget(s.profile)
}
