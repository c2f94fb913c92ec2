package repos

import (
	"solemart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT id, name FROM categories ORDER BY name`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT id, name FROM categories WHERE id=?`, id)
	return c, err
}

func (r *CategoryRepo) Create(c domain.Category) error {
	_, err := r.db.Exec(`INSERT INTO categories(id, name) VALUES(?,?)`, c.ID, c.Name)
	return AsConstraint(err)
}

func (r *CategoryRepo) Update(c domain.Category) error {
	_, err := r.db.Exec(`UPDATE categories SET name=? WHERE id=?`, c.Name, c.ID)
	return AsConstraint(err)
}

func (r *CategoryRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id=?`, id)
	return err
}

type SizeRepo struct{ db *sqlx.DB }

func NewSizeRepo(db *sqlx.DB) *SizeRepo { return &SizeRepo{db: db} }

func (r *SizeRepo) List() ([]domain.Size, error) {
	var out []domain.Size
	err := r.db.Select(&out, `SELECT id, label FROM sizes ORDER BY label`)
	return out, err
}

func (r *SizeRepo) Get(id string) (domain.Size, error) {
	var s domain.Size
	err := r.db.Get(&s, `SELECT id, label FROM sizes WHERE id=?`, id)
	return s, err
}

func (r *SizeRepo) Create(s domain.Size) error {
	_, err := r.db.Exec(`INSERT INTO sizes(id, label) VALUES(?,?)`, s.ID, s.Label)
	return AsConstraint(err)
}

func (r *SizeRepo) Update(s domain.Size) error {
	_, err := r.db.Exec(`UPDATE sizes SET label=? WHERE id=?`, s.Label, s.ID)
	return AsConstraint(err)
}

func (r *SizeRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM sizes WHERE id=?`, id)
	return err
}

type SizeProductRepo struct{ db *sqlx.DB }

func NewSizeProductRepo(db *sqlx.DB) *SizeProductRepo { return &SizeProductRepo{db: db} }

// SizeProductRow carries display labels for the admin list.
type SizeProductRow struct {
	ID      string `db:"id"`
	Size    string `db:"size"`
	Product string `db:"product"`
}

func (r *SizeProductRepo) List() ([]SizeProductRow, error) {
	var out []SizeProductRow
	err := r.db.Select(&out, `
	  SELECT sp.id, s.label AS size, p.name AS product
	  FROM size_products sp
	  JOIN sizes s ON s.id = sp.size_id
	  JOIN products p ON p.id = sp.product_id
	  ORDER BY p.name, s.label
	`)
	return out, err
}

func (r *SizeProductRepo) Get(id string) (domain.SizeProduct, error) {
	var sp domain.SizeProduct
	err := r.db.Get(&sp, `SELECT id, size_id, product_id FROM size_products WHERE id=?`, id)
	return sp, err
}

// Create allows duplicate (size, product) pairs; the table declares no
// uniqueness over the two FKs.
func (r *SizeProductRepo) Create(sp domain.SizeProduct) error {
	_, err := r.db.Exec(`INSERT INTO size_products(id, size_id, product_id) VALUES(?,?,?)`,
		sp.ID, sp.SizeID, sp.ProductID)
	return AsConstraint(err)
}

func (r *SizeProductRepo) Update(sp domain.SizeProduct) error {
	_, err := r.db.Exec(`UPDATE size_products SET size_id=?, product_id=? WHERE id=?`,
		sp.SizeID, sp.ProductID, sp.ID)
	return AsConstraint(err)
}

func (r *SizeProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM size_products WHERE id=?`, id)
	return err
}
