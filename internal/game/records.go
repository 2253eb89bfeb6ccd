package game

import "gorm.io/gorm"

// Profile stores a player's identity and aggregate combat stats.
type Profile struct {
	gorm.Model
	PlayerUUID   string `gorm:"uniqueIndex"`
	PlayerName   string
	FightsPlayed int
	Wins         int
	Losses       int
	// Draws counts simultaneous knockouts; they bump neither wins nor
	// losses.
	Draws int
}

// Unify the global players table name as "player_profiles".
func (Profile) TableName() string { return "player_profiles" }

// FightResult is the audit row written when a fight concludes. Mid-fight
// state is never persisted; only the outcome is.
type FightResult struct {
	gorm.Model
	FightID    string `gorm:"uniqueIndex"`
	PlayerID   string `gorm:"index"`
	OpponentID string
	WinnerID   string
	Rounds     int
}

func (FightResult) TableName() string { return "fight_results" }
