package handlers

import (
	"github.com/jmoiron/sqlx"

	"catalogo/internal/auth"
	"catalogo/internal/repos"
	"catalogo/internal/services"
)

type Deps struct {
	AuthHandler     *AuthHandler
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	BrandHandler    *BrandHandler
	Tokens          *auth.TokenIssuer
}

func NewDeps(db *sqlx.DB, tokens *auth.TokenIssuer) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	brandRepo := repos.NewBrandRepo(db)

	catSvc := services.NewCategoryService(catRepo)
	prodSvc := services.NewProductService(prodRepo, catSvc)
	authSvc := services.NewAuthService(userRepo, tokens)

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: authSvc},
		ProductHandler:  &ProductHandler{Products: prodSvc},
		CategoryHandler: &CategoryHandler{Categories: catSvc},
		BrandHandler:    &BrandHandler{Brands: brandRepo},
		Tokens:          tokens,
	}
}
