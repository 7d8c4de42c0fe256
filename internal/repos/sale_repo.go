package repos

import (
	"balcao/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// CountOn returns how many sales were recorded for a calendar day (YYYY-MM-DD).
func (r *SaleRepo) CountOn(day string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM sales WHERE day = ?`, day)
	return n, err
}

// ByDay aggregates sale counts grouped by day, ascending. Days without
// sales simply do not appear.
func (r *SaleRepo) ByDay() ([]domain.DailySales, error) {
	var rows []domain.DailySales
	err := r.db.Select(&rows, `
		SELECT day, COUNT(id) AS count
		FROM sales
		GROUP BY day
		ORDER BY day ASC
	`)
	return rows, err
}
