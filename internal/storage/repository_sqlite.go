package storage

import (
	"errors"

	"github.com/everdane/gauntlet/internal/game"

	"gorm.io/gorm"
)

// SQLiteRepository implements Repository over a GORM SQLite handle. The
// configured card list fills in the gameplay fields that are intentionally
// not persisted.
type SQLiteRepository struct {
	db          *gorm.DB
	configCards map[string]game.Card
}

// NewSQLiteRepository wraps the database handle.
func NewSQLiteRepository(db *gorm.DB, cardsFromConfig []game.Card) *SQLiteRepository {
	byID := make(map[string]game.Card, len(cardsFromConfig))
	for _, c := range cardsFromConfig {
		byID[c.CardID] = c
	}
	return &SQLiteRepository{db: db, configCards: byID}
}

// GetCardTemplates lists the persisted templates, hydrated with the
// config-sourced cost and effect data.
func (r *SQLiteRepository) GetCardTemplates() ([]game.Card, error) {
	var cards []game.Card
	if err := r.db.Order("id").Find(&cards).Error; err != nil {
		return nil, err
	}
	for i := range cards {
		if cfg, ok := r.configCards[cards[i].CardID]; ok {
			cards[i].Cost = cfg.Cost
			cards[i].Effect = cfg.Effect
		}
	}
	return cards, nil
}

// UpsertProfile creates or refreshes a player profile row.
func (r *SQLiteRepository) UpsertProfile(playerUUID, playerName string) error {
	var p game.Profile
	err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&game.Profile{PlayerUUID: playerUUID, PlayerName: playerName}).Error
	}
	if err != nil {
		return err
	}
	if playerName != "" && playerName != p.PlayerName {
		p.PlayerName = playerName
		return r.db.Save(&p).Error
	}
	return nil
}

// GetStatsByUUID returns a player's profile row.
func (r *SQLiteRepository) GetStatsByUUID(playerUUID string) (*game.Profile, error) {
	var p game.Profile
	if err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStatsOnFightEnd bumps fight and outcome counters for one player.
// An empty winnerID records a draw.
func (r *SQLiteRepository) UpdateStatsOnFightEnd(playerUUID, winnerID string) error {
	var p game.Profile
	err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = game.Profile{PlayerUUID: playerUUID}
		if err := r.db.Create(&p).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	p.FightsPlayed++
	switch winnerID {
	case playerUUID:
		p.Wins++
	case "":
		p.Draws++
	default:
		p.Losses++
	}
	return r.db.Save(&p).Error
}

// RecordFightResult writes the outcome audit row for a concluded fight.
func (r *SQLiteRepository) RecordFightResult(res *game.FightResult) error {
	return r.db.Create(res).Error
}

// GetTopPlayers returns up to limit profiles ordered by wins, then fights
// played (fewer fights ranks higher on equal wins).
func (r *SQLiteRepository) GetTopPlayers(limit int) ([]game.Profile, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []game.Profile
	if err := r.db.Order("wins DESC, fights_played ASC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
