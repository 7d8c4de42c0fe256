package repos

import (
	"github.com/jmoiron/sqlx"
)

type StockRepo struct{ db *sqlx.DB }

func NewStockRepo(db *sqlx.DB) *StockRepo { return &StockRepo{db: db} }

// Quantity returns the current value of the singleton counter.
func (r *StockRepo) Quantity() (int, error) {
	var qty int
	err := r.db.Get(&qty, `SELECT quantity FROM stock WHERE id = 1`)
	return qty, err
}

// SellOne atomically decrements the counter and records one sale for the
// given day in the same transaction. The conditional UPDATE keeps the
// counter non-negative under concurrent sellers; when stock is exhausted
// the call is a no-op and sold is false.
func (r *StockRepo) SellOne(day string) (qty int, sold bool, err error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`UPDATE stock SET quantity = quantity - 1 WHERE id = 1 AND quantity > 0`)
	if err != nil {
		return 0, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, false, err
	}

	if n > 0 {
		if _, err := tx.Exec(`INSERT INTO sales(day) VALUES (?)`, day); err != nil {
			return 0, false, err
		}
	}

	if err := tx.Get(&qty, `SELECT quantity FROM stock WHERE id = 1`); err != nil {
		return 0, false, err
	}
	return qty, n > 0, tx.Commit()
}

// Reset overwrites the counter unconditionally. Bound checking is the
// caller's policy decision.
func (r *StockRepo) Reset(qty int) error {
	_, err := r.db.Exec(`UPDATE stock SET quantity = ? WHERE id = 1`, qty)
	return err
}
