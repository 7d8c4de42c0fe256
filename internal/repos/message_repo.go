package repos

import (
	"time"

	"balcao/internal/domain"

	"github.com/jmoiron/sqlx"
)

// TimeLayout matches sqlite's CURRENT_TIMESTAMP so lexicographic
// comparisons on created_at order chronologically.
const TimeLayout = "2006-01-02 15:04:05"

type MessageRepo struct{ db *sqlx.DB }

func NewMessageRepo(db *sqlx.DB) *MessageRepo { return &MessageRepo{db: db} }

func (r *MessageRepo) Insert(username, text string, at time.Time) error {
	_, err := r.db.Exec(`INSERT INTO messages(username, text, created_at) VALUES (?, ?, ?)`,
		username, text, at.UTC().Format(TimeLayout))
	return err
}

// ListAsc returns all messages oldest-first.
func (r *MessageRepo) ListAsc() ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.Select(&msgs, `SELECT id, username, text, created_at FROM messages ORDER BY created_at ASC, id ASC`)
	return msgs, err
}

// PruneBefore deletes messages created before the cutoff.
func (r *MessageRepo) PruneBefore(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM messages WHERE created_at < ?`, cutoff.UTC().Format(TimeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *MessageRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM messages`)
	return n, err
}

func (r *MessageRepo) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM messages`)
	return err
}
