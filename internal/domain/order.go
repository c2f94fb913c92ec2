package domain

type Address struct {
	ID   string `db:"id"`
	Name string `db:"name"` // free-text address line
}

type PaymentMethod struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

// Delivery binds a user to one of the stored addresses.
type Delivery struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	AddressID string `db:"address_id"`
}

// Order is a flat header; its total is never stored, it is recomputed
// from the live order items on every read.
type Order struct {
	ID              string `db:"id"`
	UserID          string `db:"user_id"`
	DeliveryID      string `db:"delivery_id"`
	PaymentMethodID string `db:"payment_method_id"`
	CreatedAt       string `db:"created_at"`
	UpdatedAt       string `db:"updated_at"`
}

type OrderItem struct {
	ID        string `db:"id"`
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
}
