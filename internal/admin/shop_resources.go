package admin

import (
	"errors"

	"solemart/internal/domain"
	"solemart/internal/repos"
	"solemart/internal/validate"

	"github.com/google/uuid"
)

func userResource(users *repos.UserRepo) *Resource {
	parse := func(vals map[string]string) (domain.User, error) {
		nick, ok := validate.Nickname(vals["nickname"])
		if !ok {
			return domain.User{}, invalid("nickname must be 1-50 letters, digits, '._-'")
		}
		email, ok := validate.Email(vals["email"])
		if !ok {
			return domain.User{}, invalid("enter a valid email")
		}
		phone, ok := validate.Phone(vals["phone"])
		if !ok {
			return domain.User{}, invalid("enter a valid phone number")
		}
		first, ok := validate.Name(vals["first_name"])
		if !ok {
			return domain.User{}, invalid("first name is required")
		}
		last, ok := validate.Name(vals["last_name"])
		if !ok {
			return domain.User{}, invalid("last name is required")
		}
		return domain.User{Nickname: nick, Email: email, Phone: phone, FirstName: first, LastName: last}, nil
	}

	uniq := func(err error) error {
		if errors.Is(err, repos.ErrConstraint) {
			return invalid("nickname or email already in use")
		}
		return err
	}

	return &Resource{
		Slug:    "users",
		Title:   "Users",
		Columns: []string{"Nickname", "Email", "Phone", "First name", "Last name"},
		Fields: []Field{
			{Name: "nickname", Label: "Nickname", Kind: "text", Required: true},
			{Name: "email", Label: "Email", Kind: "text", Required: true},
			{Name: "phone", Label: "Phone", Kind: "text", Required: true},
			{Name: "first_name", Label: "First name", Kind: "text", Required: true},
			{Name: "last_name", Label: "Last name", Kind: "text", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := users.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, u := range list {
				out = append(out, Row{ID: u.ID, Cells: []string{u.Nickname, u.Email, u.Phone, u.FirstName, u.LastName}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			u, err := users.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"nickname": u.Nickname, "email": u.Email, "phone": u.Phone,
				"first_name": u.FirstName, "last_name": u.LastName,
			}, nil
		},
		Create: func(vals map[string]string) error {
			u, err := parse(vals)
			if err != nil {
				return err
			}
			u.ID = uuid.NewString()
			return uniq(users.Create(u))
		},
		Update: func(id string, vals map[string]string) error {
			u, err := parse(vals)
			if err != nil {
				return err
			}
			u.ID = id
			return uniq(users.Update(u))
		},
		Delete: users.Delete,
	}
}

func addressResource(addrs *repos.AddressRepo) *Resource {
	return &Resource{
		Slug:    "addresses",
		Title:   "Addresses",
		Columns: []string{"Address"},
		Fields: []Field{
			{Name: "name", Label: "Address", Kind: "text", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := addrs.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, a := range list {
				out = append(out, Row{ID: a.ID, Cells: []string{a.Name}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			a, err := addrs.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{"name": a.Name}, nil
		},
		Create: func(vals map[string]string) error {
			name, ok := validate.Name(vals["name"])
			if !ok {
				return invalid("address is required")
			}
			return addrs.Create(domain.Address{ID: uuid.NewString(), Name: name})
		},
		Update: func(id string, vals map[string]string) error {
			name, ok := validate.Name(vals["name"])
			if !ok {
				return invalid("address is required")
			}
			return addrs.Update(domain.Address{ID: id, Name: name})
		},
		Delete: addrs.Delete,
	}
}

func paymentMethodResource(pays *repos.PaymentMethodRepo) *Resource {
	return &Resource{
		Slug:    "payment-methods",
		Title:   "Payment methods",
		Columns: []string{"Name"},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: "text", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := pays.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, pm := range list {
				out = append(out, Row{ID: pm.ID, Cells: []string{pm.Name}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			pm, err := pays.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{"name": pm.Name}, nil
		},
		Create: func(vals map[string]string) error {
			name, ok := validate.Name(vals["name"])
			if !ok {
				return invalid("name is required")
			}
			return pays.Create(domain.PaymentMethod{ID: uuid.NewString(), Name: name})
		},
		Update: func(id string, vals map[string]string) error {
			name, ok := validate.Name(vals["name"])
			if !ok {
				return invalid("name is required")
			}
			return pays.Update(domain.PaymentMethod{ID: id, Name: name})
		},
		Delete: pays.Delete,
	}
}

func deliveryResource(delivs *repos.DeliveryRepo, users *repos.UserRepo, addrs *repos.AddressRepo) *Resource {
	parse := func(vals map[string]string) (domain.Delivery, error) {
		userID, ok := validate.ID(vals["user_id"])
		if !ok {
			return domain.Delivery{}, invalid("pick a user")
		}
		addrID, ok := validate.ID(vals["address_id"])
		if !ok {
			return domain.Delivery{}, invalid("pick an address")
		}
		return domain.Delivery{UserID: userID, AddressID: addrID}, nil
	}

	return &Resource{
		Slug:    "deliveries",
		Title:   "Deliveries",
		Columns: []string{"User", "Address"},
		Fields: []Field{
			{Name: "user_id", Label: "User", Kind: "select", Required: true, Options: userOptions(users)},
			{Name: "address_id", Label: "Address", Kind: "select", Required: true, Options: addressOptions(addrs)},
		},
		List: func() ([]Row, error) {
			list, err := delivs.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, d := range list {
				out = append(out, Row{ID: d.ID, Cells: []string{d.Nickname, d.Address}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			d, err := delivs.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{"user_id": d.UserID, "address_id": d.AddressID}, nil
		},
		Create: func(vals map[string]string) error {
			d, err := parse(vals)
			if err != nil {
				return err
			}
			d.ID = uuid.NewString()
			return delivs.Create(d)
		},
		Update: func(id string, vals map[string]string) error {
			d, err := parse(vals)
			if err != nil {
				return err
			}
			d.ID = id
			return delivs.Update(d)
		},
		Delete: delivs.Delete,
	}
}
