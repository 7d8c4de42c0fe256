package domain

// Message is one persisted chat line. CreatedAt is a UTC timestamp in
// "2006-01-02 15:04:05" form (sqlite CURRENT_TIMESTAMP format).
type Message struct {
	ID        int64  `db:"id"`
	Username  string `db:"username"`
	Text      string `db:"text"`
	CreatedAt string `db:"created_at"`
}

// DailySales is one row of the sales-by-day report.
type DailySales struct {
	Day   string `db:"day"` // YYYY-MM-DD
	Count int    `db:"count"`
}

// StockStatus is the view model for the counter page.
type StockStatus struct {
	Quantity   int
	SalesToday int
}
