package database

import "fmt"

func (d *Database) RunMigrations() error {
	// Create listings table
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			address TEXT,
			city TEXT,
			rent REAL NOT NULL,
			area_units REAL NOT NULL,
			bedrooms INTEGER DEFAULT 0,
			bathrooms REAL DEFAULT 0,
			latitude REAL,
			longitude REAL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create properties table: %v", err)
	}

	// Index for the comparable filters (bedrooms range + city)
	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_bedrooms_city
		ON properties(bedrooms, city);
	`)
	if err != nil {
		return err
	}

	// Create spatial index on coordinates
	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_coordinates
		ON properties(latitude, longitude);
	`)
	if err != nil {
		return err
	}

	return nil
}
