package storage

import "github.com/everdane/gauntlet/internal/game"

// Repository is the persistence surface the combat server needs: seeded
// card templates, player profiles and per-fight outcome rows.
type Repository interface {
	GetCardTemplates() ([]game.Card, error)

	UpsertProfile(playerUUID, playerName string) error
	GetStatsByUUID(playerUUID string) (*game.Profile, error)
	// UpdateStatsOnFightEnd bumps a player's aggregates after one fight.
	// An empty winnerID is a draw and counts against neither wins nor
	// losses.
	UpdateStatsOnFightEnd(playerUUID, winnerID string) error

	RecordFightResult(res *game.FightResult) error
	// GetTopPlayers returns the leaderboard ordered by wins.
	GetTopPlayers(limit int) ([]game.Profile, error)
}
