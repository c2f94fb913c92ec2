package repos

import (
	"solemart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.db.Select(&out, `
	  SELECT id, nickname, email, phone, first_name, last_name, created_at
	  FROM users
	  ORDER BY nickname
	`)
	return out, err
}

func (r *UserRepo) Get(id string) (domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
	  SELECT id, nickname, email, phone, first_name, last_name, created_at
	  FROM users
	  WHERE id = ?
	`, id)
	return u, err
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.db.Exec(`
	  INSERT INTO users(id, nickname, email, phone, first_name, last_name)
	  VALUES(?,?,?,?,?,?)
	`, u.ID, u.Nickname, u.Email, u.Phone, u.FirstName, u.LastName)
	return AsConstraint(err)
}

func (r *UserRepo) Update(u domain.User) error {
	_, err := r.db.Exec(`
	  UPDATE users
	  SET nickname=?, email=?, phone=?, first_name=?, last_name=?
	  WHERE id=?
	`, u.Nickname, u.Email, u.Phone, u.FirstName, u.LastName, u.ID)
	return AsConstraint(err)
}

// Delete removes the user; deliveries, orders (and their items) and cart
// rows go with it via the declared cascades.
func (r *UserRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id=?`, id)
	return err
}
