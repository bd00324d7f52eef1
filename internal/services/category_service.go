package services

import (
	"database/sql"
	"errors"
	"strings"

	"catalogo/internal/domain"
	"catalogo/internal/repos"
)

type CategoryService struct {
	Categories *repos.CategoryRepo
}

func NewCategoryService(categories *repos.CategoryRepo) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) List() ([]domain.Category, error) {
	return s.Categories.List()
}

func (s *CategoryService) Create(nombre string) (domain.Category, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.Category{}, validationErr("nombre obligatorio")
	}
	id, err := s.Categories.Insert(nombre)
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: id, Nombre: nombre}, nil
}

func (s *CategoryService) Update(id int64, nombre string) (domain.Category, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.Category{}, validationErr("nombre obligatorio")
	}
	ok, err := s.Categories.Update(id, nombre)
	if err != nil {
		return domain.Category{}, err
	}
	if !ok {
		return domain.Category{}, ErrNotFound
	}
	return domain.Category{ID: id, Nombre: nombre}, nil
}

func (s *CategoryService) Delete(id int64) error {
	ok, err := s.Categories.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// FindOrCreate resolves a category by exact name, creating it when absent.
// Two concurrent calls with the same new name can both miss the lookup and
// insert twice; duplicate names are an accepted limitation since the table
// carries no unique constraint.
func (s *CategoryService) FindOrCreate(nombre string) (int64, error) {
	id, err := s.Categories.IDByNombre(nombre)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	return s.Categories.Insert(nombre)
}
