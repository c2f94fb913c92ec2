package admin

import (
	"strconv"

	"solemart/internal/domain"
	"solemart/internal/repos"
	"solemart/internal/validate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func categoryResource(cats *repos.CategoryRepo) *Resource {
	return &Resource{
		Slug:    "categories",
		Title:   "Categories",
		Columns: []string{"Name"},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: "text", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := cats.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, c := range list {
				out = append(out, Row{ID: c.ID, Cells: []string{c.Name}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			c, err := cats.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{"name": c.Name}, nil
		},
		Create: func(vals map[string]string) error {
			name, ok := validate.Name(vals["name"])
			if !ok {
				return invalid("name is required")
			}
			return cats.Create(domain.Category{ID: uuid.NewString(), Name: name})
		},
		Update: func(id string, vals map[string]string) error {
			name, ok := validate.Name(vals["name"])
			if !ok {
				return invalid("name is required")
			}
			return cats.Update(domain.Category{ID: id, Name: name})
		},
		Delete: cats.Delete,
	}
}

func sizeResource(sizes *repos.SizeRepo) *Resource {
	return &Resource{
		Slug:    "sizes",
		Title:   "Sizes",
		Columns: []string{"Label"},
		Fields: []Field{
			{Name: "label", Label: "Label", Kind: "text", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := sizes.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, s := range list {
				out = append(out, Row{ID: s.ID, Cells: []string{s.Label}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			s, err := sizes.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{"label": s.Label}, nil
		},
		Create: func(vals map[string]string) error {
			label, ok := validate.Name(vals["label"])
			if !ok {
				return invalid("label is required")
			}
			return sizes.Create(domain.Size{ID: uuid.NewString(), Label: label})
		},
		Update: func(id string, vals map[string]string) error {
			label, ok := validate.Name(vals["label"])
			if !ok {
				return invalid("label is required")
			}
			return sizes.Update(domain.Size{ID: id, Label: label})
		},
		Delete: sizes.Delete,
	}
}

func productResource(prods *repos.ProductRepo, cats *repos.CategoryRepo) *Resource {
	parse := func(vals map[string]string) (domain.Product, error) {
		catID, ok := validate.ID(vals["category_id"])
		if !ok {
			return domain.Product{}, invalid("pick a category")
		}
		name, ok := validate.Name(vals["name"])
		if !ok {
			return domain.Product{}, invalid("name is required")
		}
		material, ok := validate.Name(vals["material"])
		if !ok {
			return domain.Product{}, invalid("material is required")
		}
		priceStr, ok := validate.Price(vals["price"])
		if !ok {
			return domain.Product{}, invalid("price must be a decimal with at most two places")
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return domain.Product{}, invalid("price must be a decimal with at most two places")
		}
		gender, ok := validate.Gender(vals["gender"])
		if !ok {
			return domain.Product{}, invalid("gender must be M, F or U")
		}
		color, ok := validate.Name(vals["color"])
		if !ok {
			return domain.Product{}, invalid("color is required")
		}
		pairs, ok := validate.Pairs(vals["quantity_pairs"])
		if !ok {
			return domain.Product{}, invalid("pairs in stock must be zero or more")
		}
		return domain.Product{
			CategoryID: catID, Name: name, Material: material, Price: price,
			Gender: gender, Color: color, QuantityPairs: pairs,
		}, nil
	}

	return &Resource{
		Slug:    "products",
		Title:   "Products",
		Columns: []string{"Name", "Material", "Price", "Gender", "Color", "Pairs"},
		Fields: []Field{
			{Name: "category_id", Label: "Category", Kind: "select", Required: true, Options: categoryOptions(cats)},
			{Name: "name", Label: "Name", Kind: "text", Required: true},
			{Name: "material", Label: "Material", Kind: "text", Required: true},
			{Name: "price", Label: "Price", Kind: "number", Required: true},
			{Name: "gender", Label: "Gender", Kind: "select", Required: true, Options: genderOptions},
			{Name: "color", Label: "Color", Kind: "text", Required: true},
			{Name: "quantity_pairs", Label: "Pairs in stock", Kind: "number", Required: true},
		},
		List: func() ([]Row, error) {
			list, err := prods.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, p := range list {
				out = append(out, Row{ID: p.ID, Cells: []string{
					p.Name, p.Material, p.Price.StringFixed(2), p.Gender, p.Color,
					strconv.Itoa(p.QuantityPairs),
				}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			p, err := prods.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"category_id": p.CategoryID, "name": p.Name, "material": p.Material,
				"price": p.Price.StringFixed(2), "gender": p.Gender, "color": p.Color,
				"quantity_pairs": strconv.Itoa(p.QuantityPairs),
			}, nil
		},
		Create: func(vals map[string]string) error {
			p, err := parse(vals)
			if err != nil {
				return err
			}
			p.ID = uuid.NewString()
			return prods.Create(p)
		},
		Update: func(id string, vals map[string]string) error {
			p, err := parse(vals)
			if err != nil {
				return err
			}
			p.ID = id
			return prods.Update(p)
		},
		Delete: prods.Delete,
	}
}

func sizeProductResource(sizeProds *repos.SizeProductRepo, sizes *repos.SizeRepo, prods *repos.ProductRepo) *Resource {
	parse := func(vals map[string]string) (domain.SizeProduct, error) {
		sizeID, ok := validate.ID(vals["size_id"])
		if !ok {
			return domain.SizeProduct{}, invalid("pick a size")
		}
		prodID, ok := validate.ID(vals["product_id"])
		if !ok {
			return domain.SizeProduct{}, invalid("pick a product")
		}
		return domain.SizeProduct{SizeID: sizeID, ProductID: prodID}, nil
	}

	return &Resource{
		Slug:    "size-products",
		Title:   "Size links",
		Columns: []string{"Size", "Product"},
		Fields: []Field{
			{Name: "size_id", Label: "Size", Kind: "select", Required: true, Options: sizeOptions(sizes)},
			{Name: "product_id", Label: "Product", Kind: "select", Required: true, Options: productOptions(prods)},
		},
		List: func() ([]Row, error) {
			list, err := sizeProds.List()
			if err != nil {
				return nil, err
			}
			out := make([]Row, 0, len(list))
			for _, sp := range list {
				out = append(out, Row{ID: sp.ID, Cells: []string{sp.Size, sp.Product}})
			}
			return out, nil
		},
		Get: func(id string) (map[string]string, error) {
			sp, err := sizeProds.Get(id)
			if err != nil {
				return nil, err
			}
			return map[string]string{"size_id": sp.SizeID, "product_id": sp.ProductID}, nil
		},
		Create: func(vals map[string]string) error {
			sp, err := parse(vals)
			if err != nil {
				return err
			}
			sp.ID = uuid.NewString()
			return sizeProds.Create(sp)
		},
		Update: func(id string, vals map[string]string) error {
			sp, err := parse(vals)
			if err != nil {
				return err
			}
			sp.ID = id
			return sizeProds.Update(sp)
		},
		Delete: sizeProds.Delete,
	}
}
