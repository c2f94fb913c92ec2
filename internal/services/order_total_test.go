package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"solemart/internal/domain"
	"solemart/internal/repos"
	"solemart/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedOrder builds user -> delivery -> order with no items yet.
func seedOrder(t *testing.T, db *sqlx.DB) {
	t.Helper()
	if err := repos.NewUserRepo(db).Create(domain.User{
		ID: "u-1", Nickname: "u1", Email: "a@x.com",
		Phone: "+1 555 0100", FirstName: "Ada", LastName: "Shopper",
	}); err != nil {
		t.Fatal(err)
	}
	if err := repos.NewAddressRepo(db).Create(domain.Address{ID: "addr-1", Name: "1 Main St"}); err != nil {
		t.Fatal(err)
	}
	if err := repos.NewDeliveryRepo(db).Create(domain.Delivery{ID: "d-1", UserID: "u-1", AddressID: "addr-1"}); err != nil {
		t.Fatal(err)
	}
	if err := repos.NewOrderRepo(db).Create(domain.Order{
		ID: "o-1", UserID: "u-1", DeliveryID: "d-1", PaymentMethodID: "pm-card",
	}); err != nil {
		t.Fatal(err)
	}
}

func mkProduct(t *testing.T, db *sqlx.DB, id, price string) {
	t.Helper()
	if err := repos.NewProductRepo(db).Create(domain.Product{
		ID: id, CategoryID: "sneakers", Name: "P " + id, Material: "mesh",
		Price: decimal.RequireFromString(price), Gender: "U", Color: "white", QuantityPairs: 10,
	}); err != nil {
		t.Fatal(err)
	}
}

func TestOrderTotalPrice(t *testing.T) {
	db := memdb(t)
	seedOrder(t, db)
	mkProduct(t, db, "p-ten", "10.00")
	mkProduct(t, db, "p-five", "5.00")

	items := repos.NewOrderItemRepo(db)
	if err := items.Create(domain.OrderItem{ID: "oi-1", OrderID: "o-1", ProductID: "p-ten", Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	if err := items.Create(domain.OrderItem{ID: "oi-2", OrderID: "o-1", ProductID: "p-five", Quantity: 3}); err != nil {
		t.Fatal(err)
	}

	svc := services.NewOrderService(repos.NewOrderRepo(db), items, repos.NewProductRepo(db))
	total, err := svc.TotalPrice("o-1")
	if err != nil {
		t.Fatal(err)
	}
	if total.StringFixed(2) != "25.00" {
		t.Fatalf("want 25.00, got %s", total.StringFixed(2))
	}

	itemTotal, err := svc.ItemTotal("oi-2")
	if err != nil {
		t.Fatal(err)
	}
	if itemTotal.StringFixed(2) != "15.00" {
		t.Fatalf("want 15.00, got %s", itemTotal.StringFixed(2))
	}
}

func TestOrderTotalFollowsPriceEdit(t *testing.T) {
	db := memdb(t)
	seedOrder(t, db)
	mkProduct(t, db, "p-ten", "10.00")

	items := repos.NewOrderItemRepo(db)
	if err := items.Create(domain.OrderItem{ID: "oi-1", OrderID: "o-1", ProductID: "p-ten", Quantity: 2}); err != nil {
		t.Fatal(err)
	}

	prods := repos.NewProductRepo(db)
	svc := services.NewOrderService(repos.NewOrderRepo(db), items, prods)

	total, err := svc.TotalPrice("o-1")
	if err != nil {
		t.Fatal(err)
	}
	if total.StringFixed(2) != "20.00" {
		t.Fatalf("want 20.00, got %s", total.StringFixed(2))
	}

	// Edit only the product; the order total follows on the next read.
	p, err := prods.Get("p-ten")
	if err != nil {
		t.Fatal(err)
	}
	p.Price = decimal.RequireFromString("15.00")
	if err := prods.Update(p); err != nil {
		t.Fatal(err)
	}

	total, err = svc.TotalPrice("o-1")
	if err != nil {
		t.Fatal(err)
	}
	if total.StringFixed(2) != "30.00" {
		t.Fatalf("after price edit want 30.00, got %s", total.StringFixed(2))
	}
}

func TestCartTotalFollowsPriceEdit(t *testing.T) {
	db := memdb(t)
	seedOrder(t, db)
	mkProduct(t, db, "p-ten", "10.00")

	carts := repos.NewCartRepo(db)
	prods := repos.NewProductRepo(db)
	svc := services.NewCartService(carts, prods)

	if err := svc.Add("u-1", "p-ten", 2); err != nil {
		t.Fatal(err)
	}
	row, err := carts.GetByPair("u-1", "p-ten")
	if err != nil {
		t.Fatal(err)
	}

	total, err := svc.TotalPrice(row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if total.StringFixed(2) != "20.00" {
		t.Fatalf("want 20.00, got %s", total.StringFixed(2))
	}

	p, err := prods.Get("p-ten")
	if err != nil {
		t.Fatal(err)
	}
	p.Price = decimal.RequireFromString("15.00")
	if err := prods.Update(p); err != nil {
		t.Fatal(err)
	}

	total, err = svc.TotalPrice(row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if total.StringFixed(2) != "30.00" {
		t.Fatalf("after price edit want 30.00, got %s", total.StringFixed(2))
	}
}

func TestCartAddRejectsZeroQuantity(t *testing.T) {
	db := memdb(t)
	seedOrder(t, db)
	mkProduct(t, db, "p-ten", "10.00")

	svc := services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db))
	if err := svc.Add("u-1", "p-ten", 0); !errors.Is(err, services.ErrQuantity) {
		t.Fatalf("want ErrQuantity, got %v", err)
	}
	if err := svc.SetQuantity("whatever", -3); !errors.Is(err, services.ErrQuantity) {
		t.Fatalf("want ErrQuantity, got %v", err)
	}
}

func TestCartAddFoldsIntoExistingRow(t *testing.T) {
	db := memdb(t)
	seedOrder(t, db)
	mkProduct(t, db, "p-ten", "10.00")

	carts := repos.NewCartRepo(db)
	svc := services.NewCartService(carts, repos.NewProductRepo(db))

	if err := svc.Add("u-1", "p-ten", 1); err != nil {
		t.Fatal(err)
	}
	if err := svc.Add("u-1", "p-ten", 4); err != nil {
		t.Fatal(err)
	}

	row, err := carts.GetByPair("u-1", "p-ten")
	if err != nil {
		t.Fatal(err)
	}
	if row.Quantity != 5 {
		t.Fatalf("want folded qty 5, got %d", row.Quantity)
	}
}
