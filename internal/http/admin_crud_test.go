package handlers_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"solemart/internal/domain"
	"solemart/internal/repos"
)

func TestAdminCreateAndListUser(t *testing.T) {
	app, db := newTestApp(t)
	sess := loginAdmin(t, app)

	resp := postForm(t, app, sess, "/admin/users", url.Values{
		"nickname":   {"u1"},
		"email":      {"a@x.com"},
		"phone":      {"+1 555 0100"},
		"first_name": {"Ada"},
		"last_name":  {"Shopper"},
	})
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("create user: want 302, got %d body=%s", resp.StatusCode, body)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE nickname='u1'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 user, got %d", n)
	}

	resp = get(t, app, sess, "/admin/users")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "u1") {
		t.Fatal("list should show the new user")
	}
}

func TestAdminRejectsDuplicateNickname(t *testing.T) {
	app, _ := newTestApp(t)
	sess := loginAdmin(t, app)

	form := url.Values{
		"nickname":   {"u1"},
		"email":      {"a@x.com"},
		"phone":      {"+1 555 0100"},
		"first_name": {"Ada"},
		"last_name":  {"Shopper"},
	}
	if resp := postForm(t, app, sess, "/admin/users", form); resp.StatusCode != http.StatusFound {
		t.Fatalf("first create: want 302, got %d", resp.StatusCode)
	}

	form.Set("email", "b@x.com")
	resp := postForm(t, app, sess, "/admin/users", form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate nickname: want 400, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "already in use") {
		t.Fatal("form should explain the uniqueness failure")
	}
}

func TestAdminRejectsZeroQuantityItem(t *testing.T) {
	app, db := newTestApp(t)
	sess := loginAdmin(t, app)

	seedOrderFixture(t, db)

	resp := postForm(t, app, sess, "/admin/order-items", url.Values{
		"order_id":   {"o-1"},
		"product_id": {"run-classic"},
		"quantity":   {"0"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("zero qty: want 400, got %d", resp.StatusCode)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM order_items`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("nothing should be written, got %d rows", n)
	}
}

func TestAdminCartCreateFoldsDuplicatePair(t *testing.T) {
	app, db := newTestApp(t)
	sess := loginAdmin(t, app)

	seedOrderFixture(t, db)

	form := url.Values{
		"user_id":    {"u-1"},
		"product_id": {"run-classic"},
		"quantity":   {"2"},
	}
	if resp := postForm(t, app, sess, "/admin/carts", form); resp.StatusCode != http.StatusFound {
		t.Fatalf("first cart add: want 302, got %d", resp.StatusCode)
	}
	if resp := postForm(t, app, sess, "/admin/carts", form); resp.StatusCode != http.StatusFound {
		t.Fatalf("second cart add: want 302, got %d", resp.StatusCode)
	}

	var n, qty int
	if err := db.Get(&n, `SELECT COUNT(*) FROM carts WHERE user_id='u-1'`); err != nil {
		t.Fatal(err)
	}
	if err := db.Get(&qty, `SELECT quantity FROM carts WHERE user_id='u-1' AND product_id='run-classic'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 || qty != 4 {
		t.Fatalf("want 1 row with qty 4, got %d rows qty %d", n, qty)
	}
}

func TestAdminCartEditSetsQuantity(t *testing.T) {
	app, db := newTestApp(t)
	sess := loginAdmin(t, app)

	seedOrderFixture(t, db)
	if err := repos.NewCartRepo(db).Upsert(domain.Cart{
		ID: "c-1", UserID: "u-1", ProductID: "run-classic", Quantity: 2,
	}); err != nil {
		t.Fatal(err)
	}

	// Editing the row rewrites the quantity; it does not fold.
	resp := postForm(t, app, sess, "/admin/carts/c-1", url.Values{
		"user_id":    {"u-1"},
		"product_id": {"run-classic"},
		"quantity":   {"7"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("edit: want 302, got %d", resp.StatusCode)
	}
	var qty int
	if err := db.Get(&qty, `SELECT quantity FROM carts WHERE id='c-1'`); err != nil {
		t.Fatal(err)
	}
	if qty != 7 {
		t.Fatalf("want qty 7 after edit, got %d", qty)
	}

	resp = postForm(t, app, sess, "/admin/carts/c-1", url.Values{
		"user_id":    {"u-1"},
		"product_id": {"run-classic"},
		"quantity":   {"0"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("zero qty edit: want 400, got %d", resp.StatusCode)
	}
}

func TestAdminDeleteCascades(t *testing.T) {
	app, db := newTestApp(t)
	sess := loginAdmin(t, app)

	seedOrderFixture(t, db)
	if err := repos.NewOrderItemRepo(db).Create(domain.OrderItem{
		ID: "oi-1", OrderID: "o-1", ProductID: "run-classic", Quantity: 2,
	}); err != nil {
		t.Fatal(err)
	}

	resp := postForm(t, app, sess, "/admin/users/u-1/delete", url.Values{})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("delete: want 302, got %d", resp.StatusCode)
	}

	for _, table := range []string{"orders", "order_items", "deliveries"} {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Fatalf("%s: want 0 after cascade, got %d", table, n)
		}
	}
}

func TestUnknownResourceIs404(t *testing.T) {
	app, _ := newTestApp(t)
	sess := loginAdmin(t, app)

	resp := get(t, app, sess, "/admin/gizmos")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

// seedOrderFixture creates user -> delivery -> order over the seeded catalog.
func seedOrderFixture(t *testing.T, db *sqlx.DB) {
	t.Helper()
	if err := repos.NewUserRepo(db).Create(domain.User{
		ID: "u-1", Nickname: "fixture", Email: "fixture@x.com",
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
