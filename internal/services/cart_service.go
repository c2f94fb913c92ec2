package services

import (
	"errors"

	"solemart/internal/domain"
	"solemart/internal/repos"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrQuantity rejects line quantities below one. Writes fail outright;
// nothing is clamped.
var ErrQuantity = errors.New("quantity must be at least 1")

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add puts qty of a product into a user's cart. An existing (user, product)
// row gains the quantity instead of being duplicated.
func (s *CartService) Add(userID, productID string, qty int) error {
	if qty < 1 {
		return ErrQuantity
	}
	if _, err := s.Prods.Get(productID); err != nil {
		return err
	}
	return s.Carts.Upsert(domain.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	})
}

// SetQuantity rewrites an existing row's quantity.
func (s *CartService) SetQuantity(cartID string, qty int) error {
	if qty < 1 {
		return ErrQuantity
	}
	c, err := s.Carts.Get(cartID)
	if err != nil {
		return err
	}
	c.Quantity = qty
	return s.Carts.Update(c)
}

// TotalPrice is the live product price times the row quantity, recomputed
// on every call; a product price edit shows up on the next read.
func (s *CartService) TotalPrice(cartID string) (decimal.Decimal, error) {
	c, err := s.Carts.Get(cartID)
	if err != nil {
		return decimal.Zero, err
	}
	p, err := s.Prods.Get(c.ProductID)
	if err != nil {
		return decimal.Zero, err
	}
	return p.Price.Mul(decimal.NewFromInt(int64(c.Quantity))), nil
}
