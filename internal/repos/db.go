package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
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
	// Seed the stock counter on first boot (idempotent; safe to run every start)
	if err := seedStock(db); err != nil {
		return nil, err
	}
	// Ensure the built-in accounts exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Stock counter (singleton row, id=1)
CREATE TABLE IF NOT EXISTS stock(
  id INTEGER PRIMARY KEY CHECK (id = 1),
  quantity INTEGER NOT NULL
);

-- Chat messages (rolling retention window, pruned on room load)
CREATE TABLE IF NOT EXISTS messages(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  text TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at);

-- Sale events (immutable, one row per successful decrement)
CREATE TABLE IF NOT EXISTS sales(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  day TEXT NOT NULL                  -- YYYY-MM-DD
);
CREATE INDEX IF NOT EXISTS idx_sales_day ON sales(day);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedStock(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM stock`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	log.Println("[seed] inserting initial stock counter (100)")
	_, err := db.Exec(`INSERT INTO stock(id, quantity) VALUES (1, 100)`)
	return err
}

// seedUsers ensures the five built-in accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Username, Role, Hash string
	}
	mk := func(id, username, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Username: username, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin", "ADMIN", "admin123"),
		mk("u-user1", "user1", "USER", "senha1"),
		mk("u-user2", "user2", "USER", "senha2"),
		mk("u-user3", "user3", "USER", "senha3"),
		mk("u-user4", "user4", "USER", "senha4"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,username,password_hash,role)
			VALUES(?,?,?,?)
			ON CONFLICT(username) DO NOTHING
		`, x.ID, x.Username, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
