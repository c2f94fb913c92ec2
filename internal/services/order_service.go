package services

import (
	"solemart/internal/repos"

	"github.com/shopspring/decimal"
)

type OrderService struct {
	Orders *repos.OrderRepo
	Items  *repos.OrderItemRepo
	Prods  *repos.ProductRepo
}

func NewOrderService(orders *repos.OrderRepo, items *repos.OrderItemRepo, prods *repos.ProductRepo) *OrderService {
	return &OrderService{Orders: orders, Items: items, Prods: prods}
}

// Line is one order line with its derived total.
type Line struct {
	Product  string
	Quantity int
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// Lines returns the order's items priced at the products' current prices.
func (s *OrderService) Lines(orderID string) ([]Line, error) {
	rows, err := s.Orders.ItemLines(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]Line, 0, len(rows))
	for _, r := range rows {
		out = append(out, Line{
			Product:  r.Product,
			Quantity: r.Quantity,
			Price:    r.Price,
			Total:    r.Price.Mul(decimal.NewFromInt(int64(r.Quantity))),
		})
	}
	return out, nil
}

// TotalPrice sums the line totals. Nothing is cached or stored: editing a
// referenced product's price changes the result on the next call.
func (s *OrderService) TotalPrice(orderID string) (decimal.Decimal, error) {
	lines, err := s.Lines(orderID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total)
	}
	return total, nil
}

// ItemTotal is the derived total for a single order item.
func (s *OrderService) ItemTotal(itemID string) (decimal.Decimal, error) {
	oi, err := s.Items.Get(itemID)
	if err != nil {
		return decimal.Zero, err
	}
	p, err := s.Prods.Get(oi.ProductID)
	if err != nil {
		return decimal.Zero, err
	}
	return p.Price.Mul(decimal.NewFromInt(int64(oi.Quantity))), nil
}
