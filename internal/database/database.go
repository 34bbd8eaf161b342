package database

import (
	"context"
	"database/sql"

	"rentcompass/server/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// FindComparables returns stored listings matching the coarse comparable
// filters: bedrooms within ±1 when bedrooms >= 0, same city (case-insensitive)
// when city is non-empty, capped at limit. The query honors the caller's
// context deadline.
func (d *Database) FindComparables(ctx context.Context, bedrooms int, city string, limit int) ([]models.ComparableProperty, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
        SELECT
            rent,
            area_units,
            bedrooms,
            bathrooms,
            COALESCE(address, '') as address,
            latitude,
            longitude
        FROM properties
        WHERE rent > 0
        AND area_units > 0
        AND (? < 0 OR bedrooms BETWEEN ? - 1 AND ? + 1)
        AND (? = '' OR LOWER(city) = LOWER(?))
        ORDER BY created_at DESC
        LIMIT ?
    `
	rows, err := d.db.QueryContext(ctx, query, bedrooms, bedrooms, bedrooms, city, city, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comparables []models.ComparableProperty
	for rows.Next() {
		var c models.ComparableProperty
		var address sql.NullString
		var latitude, longitude sql.NullFloat64

		err := rows.Scan(
			&c.Rent,
			&c.AreaUnits,
			&c.Bedrooms,
			&c.Bathrooms,
			&address,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		if address.Valid {
			c.Address = address.String
		}
		if latitude.Valid {
			lat := latitude.Float64
			c.Latitude = &lat
		}
		if longitude.Valid {
			lng := longitude.Float64
			c.Longitude = &lng
		}

		comparables = append(comparables, c)
	}

	return comparables, rows.Err()
}

// CountProperties returns the number of stored listings.
func (d *Database) CountProperties() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM properties").Scan(&count)
	return count, err
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}

func (d *Database) Close() error {
	return d.db.Close()
}
