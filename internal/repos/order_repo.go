package repos

import (
	"solemart/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderSummary carries display labels for the admin list.
type OrderSummary struct {
	ID        string `db:"id"`
	Nickname  string `db:"nickname"`
	Payment   string `db:"payment"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r *OrderRepo) List() ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT o.id, u.nickname, pm.name AS payment, o.created_at,
	         COALESCE(o.updated_at,'') AS updated_at
	  FROM orders o
	  JOIN users u ON u.id = o.user_id
	  JOIN payment_methods pm ON pm.id = o.payment_method_id
	  ORDER BY datetime(o.created_at) DESC
	`)
	return out, err
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT id, user_id, delivery_id, payment_method_id, created_at,
	         COALESCE(updated_at,'') AS updated_at
	  FROM orders
	  WHERE id = ?
	`, id)
	return o, err
}

func (r *OrderRepo) Create(o domain.Order) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, user_id, delivery_id, payment_method_id)
	  VALUES(?,?,?,?)
	`, o.ID, o.UserID, o.DeliveryID, o.PaymentMethodID)
	return AsConstraint(err)
}

// Update rewrites the header and touches updated_at; created_at never changes.
func (r *OrderRepo) Update(o domain.Order) error {
	_, err := r.db.Exec(`
	  UPDATE orders
	  SET user_id=?, delivery_id=?, payment_method_id=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, o.UserID, o.DeliveryID, o.PaymentMethodID, o.ID)
	return AsConstraint(err)
}

// Delete removes the order and, via cascade, its items.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM orders WHERE id=?`, id)
	return err
}

// ItemLine is one order line with the product's live price; totals are
// computed from these on every read, never persisted.
type ItemLine struct {
	ProductID string          `db:"product_id"`
	Product   string          `db:"product"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

func (r *OrderRepo) ItemLines(orderID string) ([]ItemLine, error) {
	var out []ItemLine
	err := r.db.Select(&out, `
	  SELECT oi.product_id, p.name AS product, oi.quantity, p.price
	  FROM order_items oi
	  JOIN products p ON p.id = oi.product_id
	  WHERE oi.order_id = ?
	  ORDER BY p.name
	`, orderID)
	return out, err
}

type OrderItemRepo struct{ db *sqlx.DB }

func NewOrderItemRepo(db *sqlx.DB) *OrderItemRepo { return &OrderItemRepo{db: db} }

// OrderItemRow carries display labels plus the derived line total.
type OrderItemRow struct {
	ID       string          `db:"id"`
	OrderID  string          `db:"order_id"`
	Product  string          `db:"product"`
	Quantity int             `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
}

func (r *OrderItemRepo) List() ([]OrderItemRow, error) {
	var out []OrderItemRow
	err := r.db.Select(&out, `
	  SELECT oi.id, oi.order_id, p.name AS product, oi.quantity, p.price
	  FROM order_items oi
	  JOIN products p ON p.id = oi.product_id
	  ORDER BY oi.order_id, p.name
	`)
	return out, err
}

func (r *OrderItemRepo) Get(id string) (domain.OrderItem, error) {
	var oi domain.OrderItem
	err := r.db.Get(&oi, `SELECT id, order_id, product_id, quantity FROM order_items WHERE id=?`, id)
	return oi, err
}

func (r *OrderItemRepo) Create(oi domain.OrderItem) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(id, order_id, product_id, quantity)
	  VALUES(?,?,?,?)
	`, oi.ID, oi.OrderID, oi.ProductID, oi.Quantity)
	return AsConstraint(err)
}

func (r *OrderItemRepo) Update(oi domain.OrderItem) error {
	_, err := r.db.Exec(`
	  UPDATE order_items SET order_id=?, product_id=?, quantity=? WHERE id=?
	`, oi.OrderID, oi.ProductID, oi.Quantity, oi.ID)
	return AsConstraint(err)
}

func (r *OrderItemRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM order_items WHERE id=?`, id)
	return err
}
