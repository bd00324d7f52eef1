package repos

import (
	"github.com/jmoiron/sqlx"

	"catalogo/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `SELECT id, nombre FROM categorias ORDER BY nombre ASC`)
	return out, err
}

// IDByNombre resolves a category by exact name. sql.ErrNoRows when absent.
func (r *CategoryRepo) IDByNombre(nombre string) (int64, error) {
	var id int64
	err := r.db.Get(&id, r.db.Rebind(`SELECT id FROM categorias WHERE nombre = ?`), nombre)
	return id, err
}

func (r *CategoryRepo) Insert(nombre string) (int64, error) {
	return insertID(r.db, `INSERT INTO categorias(nombre) VALUES (?)`, nombre)
}

func (r *CategoryRepo) Update(id int64, nombre string) (bool, error) {
	res, err := r.db.Exec(r.db.Rebind(`UPDATE categorias SET nombre = ? WHERE id = ?`), nombre, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *CategoryRepo) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(r.db.Rebind(`DELETE FROM categorias WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
