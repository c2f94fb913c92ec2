package repos

import (
	"solemart/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AddressRepo struct{ db *sqlx.DB }

func NewAddressRepo(db *sqlx.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) List() ([]domain.Address, error) {
	var out []domain.Address
	err := r.db.Select(&out, `SELECT id, name FROM addresses ORDER BY name`)
	return out, err
}

func (r *AddressRepo) Get(id string) (domain.Address, error) {
	var a domain.Address
	err := r.db.Get(&a, `SELECT id, name FROM addresses WHERE id=?`, id)
	return a, err
}

func (r *AddressRepo) Create(a domain.Address) error {
	_, err := r.db.Exec(`INSERT INTO addresses(id, name) VALUES(?,?)`, a.ID, a.Name)
	return AsConstraint(err)
}

func (r *AddressRepo) Update(a domain.Address) error {
	_, err := r.db.Exec(`UPDATE addresses SET name=? WHERE id=?`, a.Name, a.ID)
	return AsConstraint(err)
}

func (r *AddressRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM addresses WHERE id=?`, id)
	return err
}

type PaymentMethodRepo struct{ db *sqlx.DB }

func NewPaymentMethodRepo(db *sqlx.DB) *PaymentMethodRepo { return &PaymentMethodRepo{db: db} }

func (r *PaymentMethodRepo) List() ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	err := r.db.Select(&out, `SELECT id, name FROM payment_methods ORDER BY name`)
	return out, err
}

func (r *PaymentMethodRepo) Get(id string) (domain.PaymentMethod, error) {
	var pm domain.PaymentMethod
	err := r.db.Get(&pm, `SELECT id, name FROM payment_methods WHERE id=?`, id)
	return pm, err
}

func (r *PaymentMethodRepo) Create(pm domain.PaymentMethod) error {
	_, err := r.db.Exec(`INSERT INTO payment_methods(id, name) VALUES(?,?)`, pm.ID, pm.Name)
	return AsConstraint(err)
}

func (r *PaymentMethodRepo) Update(pm domain.PaymentMethod) error {
	_, err := r.db.Exec(`UPDATE payment_methods SET name=? WHERE id=?`, pm.Name, pm.ID)
	return AsConstraint(err)
}

func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM payment_methods WHERE id=?`, id)
	return err
}

type DeliveryRepo struct{ db *sqlx.DB }

func NewDeliveryRepo(db *sqlx.DB) *DeliveryRepo { return &DeliveryRepo{db: db} }

// DeliveryRow carries display labels for the admin list.
type DeliveryRow struct {
	ID       string `db:"id"`
	Nickname string `db:"nickname"`
	Address  string `db:"address"`
}

func (r *DeliveryRepo) List() ([]DeliveryRow, error) {
	var out []DeliveryRow
	err := r.db.Select(&out, `
	  SELECT d.id, u.nickname, a.name AS address
	  FROM deliveries d
	  JOIN users u ON u.id = d.user_id
	  JOIN addresses a ON a.id = d.address_id
	  ORDER BY u.nickname
	`)
	return out, err
}

func (r *DeliveryRepo) Get(id string) (domain.Delivery, error) {
	var d domain.Delivery
	err := r.db.Get(&d, `SELECT id, user_id, address_id FROM deliveries WHERE id=?`, id)
	return d, err
}

func (r *DeliveryRepo) Create(d domain.Delivery) error {
	_, err := r.db.Exec(`INSERT INTO deliveries(id, user_id, address_id) VALUES(?,?,?)`,
		d.ID, d.UserID, d.AddressID)
	return AsConstraint(err)
}

func (r *DeliveryRepo) Update(d domain.Delivery) error {
	_, err := r.db.Exec(`UPDATE deliveries SET user_id=?, address_id=? WHERE id=?`,
		d.UserID, d.AddressID, d.ID)
	return AsConstraint(err)
}

func (r *DeliveryRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM deliveries WHERE id=?`, id)
	return err
}
