package repos

import (
	"github.com/jmoiron/sqlx"

	"catalogo/internal/domain"
	"catalogo/internal/listing"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, nombre, descripcion, codigo_barra, precio, stock,
  marca_id, categoria_id, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, r.db.Rebind(`
  SELECT`+productCols+`
  FROM productos
  WHERE id = ?`), id)
	return p, err
}

// List runs the count and data queries produced by the listing builder and
// returns the page of products plus the unpaginated total.
func (r *ProductRepo) List(p listing.Params) ([]domain.Product, int, error) {
	count, data, err := listing.Build(p)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.Get(&total, r.db.Rebind(count.SQL), count.Args...); err != nil {
		return nil, 0, err
	}

	items := []domain.Product{}
	if err := r.db.Select(&items, r.db.Rebind(data.SQL), data.Args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ProductRepo) Insert(p *domain.Product) error {
	p.CreatedAt = now()
	id, err := insertID(r.db, `
  INSERT INTO productos(nombre, descripcion, codigo_barra, precio, stock, marca_id, categoria_id, created_at)
  VALUES (?,?,?,?,?,?,?,?)`,
		p.Nombre, p.Descripcion, p.CodigoBarra, p.Precio, p.Stock, p.MarcaID, p.CategoriaID, p.CreatedAt)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update rewrites every column of the row; callers supply the full record.
func (r *ProductRepo) Update(p *domain.Product) error {
	p.UpdatedAt = now()
	_, err := r.db.Exec(r.db.Rebind(`
  UPDATE productos
     SET nombre = ?, descripcion = ?, codigo_barra = ?,
         precio = ?, stock = ?, marca_id = ?, categoria_id = ?, updated_at = ?
   WHERE id = ?`),
		p.Nombre, p.Descripcion, p.CodigoBarra, p.Precio, p.Stock, p.MarcaID, p.CategoriaID, p.UpdatedAt, p.ID)
	return err
}

func (r *ProductRepo) Exists(id int64) (bool, error) {
	var n int
	if err := r.db.Get(&n, r.db.Rebind(`SELECT COUNT(*) FROM productos WHERE id = ?`), id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(r.db.Rebind(`DELETE FROM productos WHERE id = ?`), id)
	return err
}
