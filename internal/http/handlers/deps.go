package handlers

import (
	"solemart/internal/admin"
	"solemart/internal/config"
	"solemart/internal/repos"
	"solemart/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler  *AuthHandler
	AdminHandler *AdminHandler
	Auth         *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	staffRepo := repos.NewStaffRepo(db)
	authSvc := &services.AuthService{Staff: staffRepo}
	stockSvc := services.NewStockService(repos.NewProductRepo(db))

	return &Deps{
		AuthHandler:  &AuthHandler{Auth: authSvc},
		AdminHandler: &AdminHandler{Registry: admin.BuildRegistry(db), Stock: stockSvc},
		Auth:         authSvc,
	}
}
