package repos

import (
	"solemart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, category_id, name, material, price, gender, color, quantity_pairs, created_at
	  FROM products
	  ORDER BY name
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, category_id, name, material, price, gender, color, quantity_pairs, created_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, category_id, name, material, price, gender, color, quantity_pairs)
	  VALUES(?,?,?,?,?,?,?,?)
	`, p.ID, p.CategoryID, p.Name, p.Material, p.Price.StringFixed(2), p.Gender, p.Color, p.QuantityPairs)
	return AsConstraint(err)
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET category_id=?, name=?, material=?, price=?, gender=?, color=?, quantity_pairs=?
	  WHERE id=?
	`, p.CategoryID, p.Name, p.Material, p.Price.StringFixed(2), p.Gender, p.Color, p.QuantityPairs, p.ID)
	return AsConstraint(err)
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}

// LowStock lists products below the given pair count, emptiest first.
func (r *ProductRepo) LowStock(threshold int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, category_id, name, material, price, gender, color, quantity_pairs, created_at
	  FROM products
	  WHERE quantity_pairs < ?
	  ORDER BY quantity_pairs, name
	`, threshold)
	return out, err
}
