package admin

import (
	"strconv"

	"solemart/internal/domain"
	"solemart/internal/repos"
	"solemart/internal/services"
	"solemart/internal/validate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func orderResource(orders *repos.OrderRepo, svc *services.OrderService,
	users *repos.UserRepo, delivs *repos.DeliveryRepo, pays *repos.PaymentMethodRepo) *Resource {

	parse := func(vals map[string]string) (domain.Order, error) {
		userID, ok := validate.ID(vals["user_id"])
		if !ok {
			return domain.Order{}, invalid("pick a user")
		}
		delivID, ok := validate.ID(vals["delivery_id"])
		if !ok {
			return domain.Order{}, invalid("pick a delivery")
		}
		payID, ok := validate.ID(vals["payment_method_id"])
		if !ok {
			return domain.Order{}, invalid("pick a payment method")
		}
		return domain.Order{UserID: userID, DeliveryID: delivID, PaymentMethodID: payID}, nil
	}

	return &Resource{
		Slug:    "orders",
		Title:   "Orders",
		Columns: []string{"User", "Payment", "Created", "Updated", "Total"},
		Fields: []Field{
			{Name: "user_id", Label: "User", Kind: "select", Required: true, Options: userOptions(users)},
			{Name: "delivery_id", Label: "Delivery", Kind: "select", Required: true, Options: deliveryOptions(delivs)},
			{Name: "payment_method_id", Label: "Payment method", Kind: "select", Required: true, Options: paymentOptions(pays)},
		},
		List: func() ([]Row, error) {
			list, err := orders.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, o := range list {
				// Derived on every read; a product price edit moves it.
				total, err := svc.TotalPrice(o.ID)
				if err != nil {
					return nil, err
				}
				out = append(out, Row{ID: o.ID, Cells: []string{
					o.Nickname, o.Payment, o.CreatedAt, o.UpdatedAt, total.StringFixed(2),
				}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			o, err := orders.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"user_id": o.UserID, "delivery_id": o.DeliveryID, "payment_method_id": o.PaymentMethodID,
			}, nil
		},
		Create: func(vals map[string]string) error {
			o, err := parse(vals)
			if err != nil {
				return err
			}
			o.ID = uuid.NewString()
			return orders.Create(o)
		},
		Update: func(id string, vals map[string]string) error {
			o, err := parse(vals)
			if err != nil {
				return err
			}
			o.ID = id
			return orders.Update(o)
		},
		Delete: orders.Delete,
	}
}

func orderItemResource(items *repos.OrderItemRepo, svc *services.OrderService,
	orders *repos.OrderRepo, prods *repos.ProductRepo) *Resource {
	parse := func(vals map[string]string) (domain.OrderItem, error) {
		orderID, ok := validate.ID(vals["order_id"])
		if !ok {
			return domain.OrderItem{}, invalid("pick an order")
		}
		prodID, ok := validate.ID(vals["product_id"])
		if !ok {
			return domain.OrderItem{}, invalid("pick a product")
		}
		qty, ok := validate.Qty(vals["quantity"])
		if !ok {
			return domain.OrderItem{}, invalid("quantity must be at least 1")
		}
		return domain.OrderItem{OrderID: orderID, ProductID: prodID, Quantity: qty}, nil
	}

	return &Resource{
		Slug:    "order-items",
		Title:   "Order items",
		Columns: []string{"Order", "Product", "Quantity", "Total"},
		Fields: []Field{
			{Name: "order_id", Label: "Order", Kind: "select", Required: true, Options: orderOptions(orders)},
			{Name: "product_id", Label: "Product", Kind: "select", Required: true, Options: productOptions(prods)},
			{Name: "quantity", Label: "Quantity", Kind: "number", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := items.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, it := range list {
				total, err := svc.ItemTotal(it.ID)
				if err != nil {
					return nil, err
				}
				short := it.OrderID
				if len(short) > 8 {
					short = short[:8]
				}
				out = append(out, Row{ID: it.ID, Cells: []string{
					"#" + short, it.Product, strconv.Itoa(it.Quantity), total.StringFixed(2),
				}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			it, err := items.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"order_id": it.OrderID, "product_id": it.ProductID,
				"quantity": strconv.Itoa(it.Quantity),
			}, nil
		},
		Create: func(vals map[string]string) error {
			it, err := parse(vals)
			if err != nil {
				return err
			}
			it.ID = uuid.NewString()
			return items.Create(it)
		},
		Update: func(id string, vals map[string]string) error {
			it, err := parse(vals)
			if err != nil {
				return err
			}
			it.ID = id
			return items.Update(it)
		},
		Delete: items.Delete,
	}
}

func cartResource(carts *repos.CartRepo, svc *services.CartService,
	users *repos.UserRepo, prods *repos.ProductRepo) *Resource {

	parseRefs := func(vals map[string]string) (userID, prodID string, qty int, err error) {
		userID, ok := validate.ID(vals["user_id"])
		if !ok {
			return "", "", 0, invalid("pick a user")
		}
		prodID, ok = validate.ID(vals["product_id"])
		if !ok {
			return "", "", 0, invalid("pick a product")
		}
		qty, ok = validate.Qty(vals["quantity"])
		if !ok {
			return "", "", 0, invalid("quantity must be at least 1")
		}
		return userID, prodID, qty, nil
	}

	return &Resource{
		Slug:    "carts",
		Title:   "Carts",
		Columns: []string{"User", "Product", "Quantity", "Total", "Added"},
		Fields: []Field{
			{Name: "user_id", Label: "User", Kind: "select", Required: true, Options: userOptions(users)},
			{Name: "product_id", Label: "Product", Kind: "select", Required: true, Options: productOptions(prods)},
			{Name: "quantity", Label: "Quantity", Kind: "number", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := carts.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, c := range list {
				total := c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
				out = append(out, Row{ID: c.ID, Cells: []string{
					c.Nickname, c.Product, strconv.Itoa(c.Quantity), total.StringFixed(2), c.AddedAt,
				}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			c, err := carts.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"user_id": c.UserID, "product_id": c.ProductID,
				"quantity": strconv.Itoa(c.Quantity),
			}, nil
		},
		// Create folds into an existing (user, product) row rather than
		// duplicating it.
		Create: func(vals map[string]string) error {
			userID, prodID, qty, err := parseRefs(vals)
			if err != nil {
				return err
			}
			return svc.Add(userID, prodID, qty)
		},
		Update: func(id string, vals map[string]string) error {
			userID, prodID, qty, err := parseRefs(vals)
			if err != nil {
				return err
			}
			cur, err := carts.Get(id)
			if err != nil {
				return err
			}
			if cur.UserID == userID && cur.ProductID == prodID {
				return svc.SetQuantity(id, qty)
			}
			// Re-pointing the row at a pair another row already holds is a
			// uniqueness violation, not a fold.
			return carts.Update(domain.Cart{ID: id, UserID: userID, ProductID: prodID, Quantity: qty})
		},
		Delete: carts.Delete,
	}
}
