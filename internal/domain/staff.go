package domain

// Staff is a back-office account, not a shop customer.
type Staff struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"` // STAFF | ADMIN
}
