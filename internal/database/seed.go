package database

import (
	"encoding/json"
	"fmt"
	"os"

	"rentcompass/server/internal/models"
)

// SeedFromFile loads listings from a JSON file into the store. Intended for
// first-run bootstrapping; existing rows are left untouched.
func (d *Database) SeedFromFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO properties
		(address, city, rent, area_units, bedrooms, bathrooms, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, l := range listings {
		if l.Rent <= 0 || l.AreaUnits <= 0 {
			continue
		}
		_, err = stmt.Exec(
			l.Address,
			l.City,
			l.Rent,
			l.AreaUnits,
			l.Bedrooms,
			l.Bathrooms,
			l.Latitude,
			l.Longitude,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert listing: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return inserted, nil
}
