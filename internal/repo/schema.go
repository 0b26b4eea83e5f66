package repo

import (
	"context"
	"strings"
)

// EnsureSchema creates the five tables of the store and applies additive
// column migrations. It is idempotent and safe to run on every start; the
// DDL keeps the exact column names and encodings of data files written by
// earlier versions of the app.
func (r *GormRepo) EnsureSchema(ctx context.Context) error {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.DB.Dialector.Name() == "postgres" {
		id = "SERIAL PRIMARY KEY"
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id ` + id + `,
			category TEXT NOT NULL,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			storage TEXT,
			ram TEXT,
			color TEXT,
			"screenSize" TEXT,
			camera TEXT,
			battery TEXT,
			os TEXT,
			warranty TEXT,
			price REAL,
			"buyingPrice" REAL,
			quantity INTEGER DEFAULT 1,
			"imageUri" TEXT,
			cosmetic TEXT,
			"batteryHealth" TEXT,
			"imeiStatus" TEXT,
			"hasBox" INTEGER,
			"hasChangedParts" INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id ` + id + `,
			text TEXT,
			date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS finance (
			id ` + id + `,
			type TEXT,
			amount REAL,
			description TEXT,
			date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id ` + id + `,
			name TEXT NOT NULL,
			phone TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS debts (
			id ` + id + `,
			customer_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			description TEXT,
			date TEXT,
			FOREIGN KEY (customer_id) REFERENCES customers (id) ON DELETE CASCADE
		)`,
	}

	for _, ddl := range tables {
		if err := r.DB.WithContext(ctx).Exec(ddl).Error; err != nil {
			return err
		}
	}

	// Additive migrations for columns that postdate the first schema
	// version, needed by data files created before the column joined the
	// CREATE statement. A failing ALTER on a column that already exists
	// is the expected steady state, not an error.
	migrations := []string{
		`ALTER TABLE products ADD COLUMN "buyingPrice" REAL`,
	}
	for _, ddl := range migrations {
		if err := r.DB.WithContext(ctx).Exec(ddl).Error; err != nil && !columnExists(err) {
			return err
		}
	}

	return nil
}

func columnExists(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
