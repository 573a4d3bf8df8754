package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Deals (the only persisted collection; deals are replaced in bulk, never updated)
CREATE TABLE IF NOT EXISTS deals(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  discount_percentage REAL NOT NULL CHECK (discount_percentage >= 0),
  original_price REAL CHECK (original_price IS NULL OR original_price >= 0),
  sale_price REAL CHECK (sale_price IS NULL OR sale_price >= 0),
  business_name TEXT NOT NULL,
  category TEXT NOT NULL,
  lat REAL NOT NULL,
  lng REAL NOT NULL,
  address TEXT NOT NULL,
  expiration_date TEXT,
  image_url TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_deals_discount ON deals(discount_percentage);
CREATE INDEX IF NOT EXISTS idx_deals_category ON deals(category);
CREATE INDEX IF NOT EXISTS idx_deals_business ON deals(business_name);
CREATE INDEX IF NOT EXISTS idx_deals_address  ON deals(LOWER(address));
`
	_, err := db.Exec(schema)
	return err
}
