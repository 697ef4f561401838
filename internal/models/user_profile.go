package models

import "time"

// UserProfile holds per-user progression and economy data.
type UserProfile struct {
	UserID     string    `json:"user_id"`
	XP         int64     `json:"xp"`
	Level      int       `json:"level"`
	Reputation int       `json:"reputation"`
	LastDaily  time.Time `json:"last_daily"`
	Badges     []string  `json:"badges"`
	Bio        string    `json:"bio"`
	Balance    int64     `json:"balance"`
}

// NewUserProfile returns the defaults applied on first access for an
// unknown user.
func NewUserProfile(userID string) UserProfile {
	return UserProfile{
		UserID: userID,
		Badges: []string{},
	}
}
