package services

import (
	"solemart/internal/domain"
	"solemart/internal/repos"
)

// LowStockThreshold marks products worth restocking on the dashboard.
const LowStockThreshold = 5

type StockService struct {
	Prods *repos.ProductRepo
}

func NewStockService(prods *repos.ProductRepo) *StockService {
	return &StockService{Prods: prods}
}

// Availability buckets a product's pair count.
func (s *StockService) Availability(productID string) (domain.Availability, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return domain.Availability{}, err
	}
	status := "OUT_OF_STOCK"
	switch {
	case p.QuantityPairs >= LowStockThreshold:
		status = "IN_STOCK"
	case p.QuantityPairs > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Pairs: p.QuantityPairs}, nil
}

// LowStock lists products below the restock threshold, matching the
// LOW_STOCK and OUT_OF_STOCK buckets exactly.
func (s *StockService) LowStock() ([]domain.Product, error) {
	return s.Prods.LowStock(LowStockThreshold)
}
