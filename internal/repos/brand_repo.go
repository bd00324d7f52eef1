package repos

import (
	"github.com/jmoiron/sqlx"

	"catalogo/internal/domain"
)

// BrandRepo is read-only: brands are reference data seeded at startup.
type BrandRepo struct{ db *sqlx.DB }

func NewBrandRepo(db *sqlx.DB) *BrandRepo { return &BrandRepo{db: db} }

func (r *BrandRepo) List() ([]domain.Brand, error) {
	out := []domain.Brand{}
	err := r.db.Select(&out, `SELECT id, nombre FROM marcas ORDER BY nombre ASC`)
	return out, err
}
