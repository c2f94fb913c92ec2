package domain

// Cart holds one row per (user, product) pair; adding the same product
// again updates the quantity of the existing row.
type Cart struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
	AddedAt   string `db:"added_at"`
}
