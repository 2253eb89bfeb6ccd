package storage

import (
	"github.com/everdane/gauntlet/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database, keeps the schema updated via
// AutoMigrate and seeds card templates from the configured catalog.
func OpenAndMigrate(dataSourceName string, cardsFromConfig []game.Card) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.Card{}, &game.Profile{}, &game.FightResult{}); err != nil {
		return nil, err
	}

	seedCardTemplates(db, cardsFromConfig)
	return db, nil
}

// seedCardTemplates inserts any configured cards missing from the
// templates table. Gameplay fields live in the config (the single source
// of truth); only identity is persisted.
func seedCardTemplates(db *gorm.DB, cardsFromConfig []game.Card) {
	for _, c := range cardsFromConfig {
		var count int64
		db.Model(&game.Card{}).Where("card_id = ?", c.CardID).Count(&count)
		if count > 0 {
			continue
		}
		db.Create(&game.Card{CardID: c.CardID, Name: c.Name})
	}
}
