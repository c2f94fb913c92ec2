package admin

import (
	"solemart/internal/repos"
	"solemart/internal/services"

	"github.com/jmoiron/sqlx"
)

// BuildRegistry wires every entity type to its CRUD screen. The list is
// the whole administrative surface; adding an entity means adding a
// constructor call here and nowhere else.
func BuildRegistry(db *sqlx.DB) *Registry {
	users := repos.NewUserRepo(db)
	cats := repos.NewCategoryRepo(db)
	sizes := repos.NewSizeRepo(db)
	prods := repos.NewProductRepo(db)
	sizeProds := repos.NewSizeProductRepo(db)
	addrs := repos.NewAddressRepo(db)
	pays := repos.NewPaymentMethodRepo(db)
	delivs := repos.NewDeliveryRepo(db)
	orders := repos.NewOrderRepo(db)
	items := repos.NewOrderItemRepo(db)
	carts := repos.NewCartRepo(db)

	cartSvc := services.NewCartService(carts, prods)
	orderSvc := services.NewOrderService(orders, items, prods)

	return NewRegistry(
		userResource(users),
		categoryResource(cats),
		sizeResource(sizes),
		productResource(prods, cats),
		sizeProductResource(sizeProds, sizes, prods),
		addressResource(addrs),
		paymentMethodResource(pays),
		deliveryResource(delivs, users, addrs),
		orderResource(orders, orderSvc, users, delivs, pays),
		orderItemResource(items, orderSvc, orders, prods),
		cartResource(carts, cartSvc, users, prods),
	)
}

func userOptions(users *repos.UserRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := users.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, u := range list {
			out = append(out, Option{Value: u.ID, Label: u.Nickname + " (" + u.Email + ")"})
		}
		return out, nil
	}
}

func categoryOptions(cats *repos.CategoryRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := cats.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, c := range list {
			out = append(out, Option{Value: c.ID, Label: c.Name})
		}
		return out, nil
	}
}

func sizeOptions(sizes *repos.SizeRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := sizes.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, s := range list {
			out = append(out, Option{Value: s.ID, Label: s.Label})
		}
		return out, nil
	}
}

func productOptions(prods *repos.ProductRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := prods.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, p := range list {
			out = append(out, Option{Value: p.ID, Label: p.Name + " / " + p.Color})
		}
		return out, nil
	}
}

func addressOptions(addrs *repos.AddressRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := addrs.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, a := range list {
			out = append(out, Option{Value: a.ID, Label: a.Name})
		}
		return out, nil
	}
}

func deliveryOptions(delivs *repos.DeliveryRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := delivs.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, d := range list {
			out = append(out, Option{Value: d.ID, Label: d.Nickname + " -> " + d.Address})
		}
		return out, nil
	}
}

func paymentOptions(pays *repos.PaymentMethodRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := pays.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, pm := range list {
			out = append(out, Option{Value: pm.ID, Label: pm.Name})
		}
		return out, nil
	}
}

func orderOptions(orders *repos.OrderRepo) func() ([]Option, error) {
	return func() ([]Option, error) {
		list, err := orders.List()
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(list))
		for _, o := range list {
			short := o.ID
			if len(short) > 8 {
				short = short[:8]
			}
			out = append(out, Option{Value: o.ID, Label: "#" + short + " " + o.Nickname})
		}
		return out, nil
	}
}

func genderOptions() ([]Option, error) {
	return []Option{
		{Value: "M", Label: "Men"},
		{Value: "F", Label: "Women"},
		{Value: "U", Label: "Unisex"},
	}, nil
}
