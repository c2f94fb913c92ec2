package handlers

import (
	"database/sql"
	"errors"

	"solemart/internal/admin"
	applog "solemart/internal/log"
	"solemart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves every entity through the same five screens; the
// registry decides what a resource looks like, the handler never does.
type AdminHandler struct {
	Registry *admin.Registry
	Stock    *services.StockService
}

type formField struct {
	Name     string
	Label    string
	Kind     string
	Required bool
	Value    string
	Options  []admin.Option
}

func (h *AdminHandler) resource(c *fiber.Ctx) (*admin.Resource, error) {
	res, ok := h.Registry.Lookup(c.Params("resource"))
	if !ok {
		return nil, c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "No such section"})
	}
	return res, nil
}

func (h *AdminHandler) formFields(res *admin.Resource, vals map[string]string) ([]formField, error) {
	out := make([]formField, 0, len(res.Fields))
	for _, f := range res.Fields {
		ff := formField{Name: f.Name, Label: f.Label, Kind: f.Kind, Required: f.Required, Value: vals[f.Name]}
		if f.Options != nil {
			opts, err := f.Options()
			if err != nil {
				return nil, err
			}
			ff.Options = opts
		}
		out = append(out, ff)
	}
	return out, nil
}

func formValues(c *fiber.Ctx, res *admin.Resource) map[string]string {
	vals := make(map[string]string, len(res.Fields))
	for _, f := range res.Fields {
		vals[f.Name] = c.FormValue(f.Name)
	}
	return vals
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	low, err := h.Stock.LowStock()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	return render(c, "admin_dashboard", fiber.Map{
		"Resources": h.Registry.All(),
		"LowStock":  low,
	})
}

// GET /admin/:resource
func (h *AdminHandler) List(c *fiber.Ctx) error {
	res, err := h.resource(c)
	if res == nil {
		return err
	}
	rows, err := res.List()
	if err != nil {
		applog.Error(c, "admin.list.fail", err, map[string]any{"resource": res.Slug})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load " + res.Title})
	}
	return render(c, "admin_list", fiber.Map{
		"Resource": res, "Rows": rows, "Resources": h.Registry.All(),
	})
}

// GET /admin/:resource/new
func (h *AdminHandler) New(c *fiber.Ctx) error {
	res, err := h.resource(c)
	if res == nil {
		return err
	}
	fields, err := h.formFields(res, map[string]string{})
	if err != nil {
		applog.Error(c, "admin.form.fail", err, map[string]any{"resource": res.Slug})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load form"})
	}
	return render(c, "admin_form", fiber.Map{
		"Resource": res, "Fields": fields, "Action": "/admin/" + res.Slug, "Err": "",
	})
}

// POST /admin/:resource
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	res, err := h.resource(c)
	if res == nil {
		return err
	}
	vals := formValues(c, res)
	if err := res.Create(vals); err != nil {
		return h.writeFailed(c, res, vals, "/admin/"+res.Slug, "admin.create.fail", err)
	}
	applog.Audit(c, "admin.create", map[string]any{"resource": res.Slug})
	return c.Redirect("/admin/" + res.Slug)
}

// GET /admin/:resource/:id/edit
func (h *AdminHandler) Edit(c *fiber.Ctx) error {
	res, err := h.resource(c)
	if res == nil {
		return err
	}
	id := c.Params("id")
	vals, err := res.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Record not found"})
		}
		applog.Error(c, "admin.edit.fail", err, map[string]any{"resource": res.Slug, "id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load record"})
	}
	fields, err := h.formFields(res, vals)
	if err != nil {
		applog.Error(c, "admin.form.fail", err, map[string]any{"resource": res.Slug})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load form"})
	}
	return render(c, "admin_form", fiber.Map{
		"Resource": res, "Fields": fields, "Action": "/admin/" + res.Slug + "/" + id, "Err": "",
	})
}

// POST /admin/:resource/:id
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	res, err := h.resource(c)
	if res == nil {
		return err
	}
	id := c.Params("id")
	vals := formValues(c, res)
	if err := res.Update(id, vals); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Record not found"})
		}
		return h.writeFailed(c, res, vals, "/admin/"+res.Slug+"/"+id, "admin.update.fail", err)
	}
	applog.Audit(c, "admin.update", map[string]any{"resource": res.Slug, "id": id})
	return c.Redirect("/admin/" + res.Slug)
}

// POST /admin/:resource/:id/delete
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	res, err := h.resource(c)
	if res == nil {
		return err
	}
	id := c.Params("id")
	if err := res.Delete(id); err != nil {
		applog.Error(c, "admin.delete.fail", err, map[string]any{"resource": res.Slug, "id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not delete record"})
	}
	applog.Audit(c, "admin.delete", map[string]any{"resource": res.Slug, "id": id})
	return c.Redirect("/admin/" + res.Slug)
}

// writeFailed re-renders the form for fixable input, logs everything else.
func (h *AdminHandler) writeFailed(c *fiber.Ctx, res *admin.Resource, vals map[string]string, action, logAction string, err error) error {
	if !admin.IsValidation(err) {
		applog.Error(c, logAction, err, map[string]any{"resource": res.Slug})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save record"})
	}
	applog.Security(c, logAction, map[string]any{"resource": res.Slug, "reason": err.Error()})
	fields, ferr := h.formFields(res, vals)
	if ferr != nil {
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load form"})
	}
	return c.Status(fiber.StatusBadRequest).Render("admin_form", fiber.Map{
		"Resource": res, "Fields": fields, "Action": action, "Err": err.Error(),
		"CSRFToken": c.Cookies("csrf_"),
	})
}
