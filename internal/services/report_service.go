package services

import (
	"balcao/internal/domain"
	"balcao/internal/repos"
)

type ReportService struct {
	Sales *repos.SaleRepo
}

func NewReportService(sales *repos.SaleRepo) *ReportService {
	return &ReportService{Sales: sales}
}

// Daily returns sale counts grouped by day, oldest day first. Days with
// no sales are omitted.
func (s *ReportService) Daily() ([]domain.DailySales, error) {
	return s.Sales.ByDay()
}
