package service

import (
	"time"

	"server-warden/internal/models"
	"server-warden/internal/repository"
)

// DailyReward is the balance credited by GrantDaily.
const DailyReward int64 = 100

// UserProfileService reads and updates user profiles.
type UserProfileService struct {
	repo repository.Repository[models.UserProfile]
}

func NewUserProfiles(repo repository.Repository[models.UserProfile]) *UserProfileService {
	return &UserProfileService{repo: repo}
}

// Profile returns the user's profile, seeding defaults on first use.
func (s *UserProfileService) Profile(userID string) (models.UserProfile, error) {
	return s.repo.Get(userID)
}

// GrantDaily credits the daily reward and stamps the claim time.
// Admission (the once-per-day window) is the dispatcher's cooldown
// gate, not ours.
func (s *UserProfileService) GrantDaily(userID string) (models.UserProfile, error) {
	profile, err := s.repo.Get(userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	return s.repo.Update(userID, map[string]any{
		"balance":    profile.Balance + DailyReward,
		"last_daily": time.Now().UTC(),
	})
}

// SetBio replaces the profile bio.
func (s *UserProfileService) SetBio(userID, bio string) error {
	_, err := s.repo.Update(userID, map[string]any{"bio": bio})
	return err
}

// Refresh drops any cached copy of the user's profile.
func (s *UserProfileService) Refresh(userID string) {
	s.repo.Invalidate(userID)
}
