package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: keeps PRAGMA foreign_keys in force for every
	// statement and keeps :memory: databases stable under the pool.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (categories/sizes/payment methods/products)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure staff accounts exist (idempotent; safe to run every start)
	if err := seedStaff(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Customers
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  nickname TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_nickname ON users(LOWER(nickname));
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email    ON users(LOWER(email));

-- Catalog
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sizes(
  id TEXT PRIMARY KEY,
  label TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  material TEXT NOT NULL,
  price NUMERIC NOT NULL,
  gender TEXT NOT NULL CHECK (gender IN ('M','F','U')),
  color TEXT NOT NULL,
  quantity_pairs INTEGER NOT NULL DEFAULT 0 CHECK (quantity_pairs >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);

-- Size links; (size_id, product_id) is deliberately not unique
CREATE TABLE IF NOT EXISTS size_products(
  id TEXT PRIMARY KEY,
  size_id TEXT NOT NULL REFERENCES sizes(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_size_products_product ON size_products(product_id);

-- Logistics
CREATE TABLE IF NOT EXISTS addresses(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payment_methods(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS deliveries(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  address_id TEXT NOT NULL REFERENCES addresses(id) ON DELETE CASCADE
);

-- Orders; total is derived from order_items on read, never stored
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  delivery_id TEXT NOT NULL REFERENCES deliveries(id) ON DELETE CASCADE,
  payment_method_id TEXT NOT NULL REFERENCES payment_methods(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id);

CREATE TABLE IF NOT EXISTS order_items(
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  quantity INTEGER NOT NULL CHECK (quantity >= 1)
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

-- Carts; one row per (user, product)
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
  added_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_user_product ON carts(user_id, product_id);

-- Back-office accounts & sessions
CREATE TABLE IF NOT EXISTS staff(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('STAFF','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_email ON staff(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  staff_id TEXT NULL REFERENCES staff(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_staff ON sessions(staff_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('sneakers','Sneakers'),
	  ('boots','Boots'),
	  ('sandals','Sandals')`)

	tx.MustExec(`INSERT INTO sizes(id,label) VALUES
	  ('size-38','38'),
	  ('size-40','40'),
	  ('size-42','42'),
	  ('size-44','44')`)

	tx.MustExec(`INSERT INTO payment_methods(id,name) VALUES
	  ('pm-card','Card'),
	  ('pm-cash','Cash on delivery')`)

	tx.MustExec(`INSERT INTO products(id,category_id,name,material,price,gender,color,quantity_pairs) VALUES
	  ('run-classic','sneakers','Runner Classic','mesh','89.90','U','white',12),
	  ('trail-m','boots','Trail Master','leather','149.00','M','brown',4),
	  ('beach-f','sandals','Beachline','rubber','24.50','F','coral',0)`)

	tx.MustExec(`INSERT INTO size_products(id,size_id,product_id) VALUES
	  ('sp-1','size-40','run-classic'),
	  ('sp-2','size-42','run-classic'),
	  ('sp-3','size-44','trail-m')`)

	return tx.Commit()
}

// seedStaff ensures one ADMIN and one STAFF account exist (idempotent).
func seedStaff(db *sqlx.DB) error {
	type acct struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) acct {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return acct{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	accts := []acct{
		mk("st-admin", "admin@solemart.test", "Admin", "ADMIN", "Passw0rd!"),
		mk("st-clerk", "clerk@solemart.test", "Clerk", "STAFF", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, a := range accts {
		if _, err := tx.Exec(`
			INSERT INTO staff(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, a.ID, a.Email, a.Name, a.Hash, a.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
