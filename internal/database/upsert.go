package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentcompass/server/internal/models"
)

// UpsertListings writes a batch of listings inside the given gorm
// transaction, replacing rows that collide on the primary key.
func UpsertListings(tx *gorm.DB, batch []*models.Listing) error {
	if len(batch) == 0 {
		return nil
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(batch).Error
	if err != nil {
		return fmt.Errorf("failed to upsert listings: %w", err)
	}

	return nil
}
