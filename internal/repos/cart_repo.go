package repos

import (
	"solemart/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartRow carries display labels plus the product's live price; the row
// total is derived from these at read time.
type CartRow struct {
	ID       string          `db:"id"`
	Nickname string          `db:"nickname"`
	Product  string          `db:"product"`
	Quantity int             `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
	AddedAt  string          `db:"added_at"`
}

func (r *CartRepo) List() ([]CartRow, error) {
	var out []CartRow
	err := r.db.Select(&out, `
	  SELECT c.id, u.nickname, p.name AS product, c.quantity, p.price, c.added_at
	  FROM carts c
	  JOIN users u ON u.id = c.user_id
	  JOIN products p ON p.id = c.product_id
	  ORDER BY u.nickname, p.name
	`)
	return out, err
}

func (r *CartRepo) Get(id string) (domain.Cart, error) {
	var c domain.Cart
	err := r.db.Get(&c, `
	  SELECT id, user_id, product_id, quantity, added_at FROM carts WHERE id=?
	`, id)
	return c, err
}

func (r *CartRepo) GetByPair(userID, productID string) (domain.Cart, error) {
	var c domain.Cart
	err := r.db.Get(&c, `
	  SELECT id, user_id, product_id, quantity, added_at
	  FROM carts WHERE user_id=? AND product_id=?
	`, userID, productID)
	return c, err
}

// Upsert adds the quantity onto an existing (user, product) row instead of
// duplicating it; added_at keeps the first insert's value.
func (r *CartRepo) Upsert(c domain.Cart) error {
	_, err := r.db.Exec(`
	  INSERT INTO carts(id, user_id, product_id, quantity)
	  VALUES(?,?,?,?)
	  ON CONFLICT(user_id, product_id) DO UPDATE
	  SET quantity = carts.quantity + excluded.quantity
	`, c.ID, c.UserID, c.ProductID, c.Quantity)
	return AsConstraint(err)
}

// Update sets the row as given; repointing it at another (user, product)
// pair that already has a row fails on the unique index.
func (r *CartRepo) Update(c domain.Cart) error {
	_, err := r.db.Exec(`
	  UPDATE carts SET user_id=?, product_id=?, quantity=? WHERE id=?
	`, c.UserID, c.ProductID, c.Quantity, c.ID)
	return AsConstraint(err)
}

func (r *CartRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM carts WHERE id=?`, id)
	return err
}
