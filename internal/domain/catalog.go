package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

// Size is a shoe size label ("38", "42.5", "M").
type Size struct {
	ID    string `db:"id"`
	Label string `db:"label"`
}

type Product struct {
	ID            string          `db:"id"`
	CategoryID    string          `db:"category_id"`
	Name          string          `db:"name"`
	Material      string          `db:"material"`
	Price         decimal.Decimal `db:"price"`
	Gender        string          `db:"gender"` // M | F | U
	Color         string          `db:"color"`
	QuantityPairs int             `db:"quantity_pairs"`
	CreatedAt     string          `db:"created_at"`
}

// SizeProduct links a Size to a Product. Duplicate (size, product) pairs
// are allowed; the table carries no uniqueness over the two FKs.
type SizeProduct struct {
	ID        string `db:"id"`
	SizeID    string `db:"size_id"`
	ProductID string `db:"product_id"`
}

// Availability buckets for the dashboard stock glance.
type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Pairs  int    `json:"pairs"`
}
