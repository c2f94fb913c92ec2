package domain

// User is a shop customer. Nickname and email are unique store-wide.
type User struct {
	ID        string `db:"id"`
	Nickname  string `db:"nickname"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	CreatedAt string `db:"created_at"`
}
