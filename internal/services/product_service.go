package services

import (
	"database/sql"
	"errors"
	"strings"

	"catalogo/internal/domain"
	"catalogo/internal/listing"
	"catalogo/internal/repos"
	"catalogo/internal/validate"
)

// ProductInput is the decoded request body for create and update. Precio and
// Stock stay `any` because clients send them as JSON numbers or as numeric
// strings; coercion happens during validation. On update, nil fields fall
// back to the stored value (partial input, full replace).
type ProductInput struct {
	Nombre          *string `json:"nombre"`
	Descripcion     *string `json:"descripcion"`
	CodigoBarra     *string `json:"codigoBarra"`
	Precio          any     `json:"precio"`
	Stock           any     `json:"stock"`
	MarcaID         *int64  `json:"marcaId"`
	CategoriaID     *int64  `json:"categoriaId"`
	CategoriaNombre *string `json:"categoriaNombre"`
}

type PageResult struct {
	Items      []domain.Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type ProductService struct {
	Products   *repos.ProductRepo
	Categories *CategoryService
}

func NewProductService(products *repos.ProductRepo, categories *CategoryService) *ProductService {
	return &ProductService{Products: products, Categories: categories}
}

func (s *ProductService) Get(id int64) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (s *ProductService) List(p listing.Params) (PageResult, error) {
	items, total, err := s.Products.List(p)
	if err != nil {
		return PageResult{}, err
	}
	return PageResult{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: listing.TotalPages(total, p.PageSize),
	}, nil
}

func (s *ProductService) Create(in ProductInput) (domain.Product, error) {
	p := domain.Product{
		Nombre:      strings.TrimSpace(deref(in.Nombre)),
		Descripcion: in.Descripcion,
		CodigoBarra: strings.TrimSpace(deref(in.CodigoBarra)),
		MarcaID:     in.MarcaID,
		CategoriaID: in.CategoriaID,
	}
	if err := s.validate(&p, in.Precio, in.Stock); err != nil {
		return domain.Product{}, err
	}
	if err := s.resolveCategoria(&p, in); err != nil {
		return domain.Product{}, err
	}
	if err := s.Products.Insert(&p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update loads the stored row first; request fields left nil keep the stored
// value, then every column is rewritten.
func (s *ProductService) Update(id int64, in ProductInput) (domain.Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return domain.Product{}, err
	}

	if in.Nombre != nil {
		p.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.CodigoBarra != nil {
		p.CodigoBarra = strings.TrimSpace(*in.CodigoBarra)
	}
	if in.Descripcion != nil {
		p.Descripcion = in.Descripcion
	}
	if in.MarcaID != nil {
		p.MarcaID = in.MarcaID
	}
	if in.CategoriaID != nil {
		p.CategoriaID = in.CategoriaID
	}
	precio := in.Precio
	if precio == nil {
		precio = p.Precio
	}
	stock := in.Stock
	if stock == nil {
		stock = p.Stock
	}
	if err := s.validate(&p, precio, stock); err != nil {
		return domain.Product{}, err
	}
	if err := s.resolveCategoria(&p, in); err != nil {
		return domain.Product{}, err
	}
	if err := s.Products.Update(&p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Delete(id int64) error {
	ok, err := s.Products.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.Products.Delete(id)
}

// validate collects every problem before returning, so one response names
// all invalid fields.
func (s *ProductService) validate(p *domain.Product, precio, stock any) error {
	var problems []string
	if p.Nombre == "" {
		problems = append(problems, "El nombre es obligatorio.")
	}
	if p.CodigoBarra == "" {
		problems = append(problems, "El código de barra es obligatorio.")
	}
	if f, ok := validate.Decimal(precio); ok && f >= 0 {
		p.Precio = f
	} else {
		problems = append(problems, "precio inválido")
	}
	if n, ok := validate.Entero(stock); ok && n >= 0 {
		p.Stock = n
	} else {
		problems = append(problems, "stock inválido")
	}
	if len(problems) > 0 {
		return validationErr(problems...)
	}
	return nil
}

// resolveCategoria applies lookup-or-create when a category name arrives and
// no category id is in effect (neither supplied nor already stored).
func (s *ProductService) resolveCategoria(p *domain.Product, in ProductInput) error {
	nombre := strings.TrimSpace(deref(in.CategoriaNombre))
	if nombre == "" || p.CategoriaID != nil {
		return nil
	}
	id, err := s.Categories.FindOrCreate(nombre)
	if err != nil {
		return err
	}
	p.CategoriaID = &id
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
