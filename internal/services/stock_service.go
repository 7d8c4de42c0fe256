package services

import (
	"errors"
	"time"

	"balcao/internal/domain"
	"balcao/internal/repos"
)

var ErrNegativeStock = errors.New("negative stock not allowed")

type SellResult struct {
	Quantity int
	Sold     bool
}

type StockService struct {
	Stock *repos.StockRepo
	Sales *repos.SaleRepo

	// AllowNegative permits admin resets below zero.
	AllowNegative bool
}

func NewStockService(stock *repos.StockRepo, sales *repos.SaleRepo, allowNegative bool) *StockService {
	return &StockService{Stock: stock, Sales: sales, AllowNegative: allowNegative}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Sell decrements the counter by one and records a sale for today.
// Selling at zero stock is a silent no-op: Sold is false, no sale row
// is written and the quantity stays put.
func (s *StockService) Sell() (SellResult, error) {
	qty, sold, err := s.Stock.SellOne(today())
	if err != nil {
		return SellResult{}, err
	}
	return SellResult{Quantity: qty, Sold: sold}, nil
}

// Status returns the current quantity and today's sale count.
func (s *StockService) Status() (domain.StockStatus, error) {
	qty, err := s.Stock.Quantity()
	if err != nil {
		return domain.StockStatus{}, err
	}
	n, err := s.Sales.CountOn(today())
	if err != nil {
		return domain.StockStatus{}, err
	}
	return domain.StockStatus{Quantity: qty, SalesToday: n}, nil
}

// Reset overwrites the counter. Negative values are rejected unless the
// service was built with AllowNegative.
func (s *StockService) Reset(qty int) error {
	if qty < 0 && !s.AllowNegative {
		return ErrNegativeStock
	}
	return s.Stock.Reset(qty)
}
