package repos

import (
	"github.com/jmoiron/sqlx"

	"catalogo/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) ByUsuario(usuario string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, r.db.Rebind(`SELECT id, usuario, password_hash, rol FROM usuarios WHERE usuario = ?`), usuario)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Exists(usuario string) (bool, error) {
	var n int
	if err := r.db.Get(&n, r.db.Rebind(`SELECT COUNT(*) FROM usuarios WHERE usuario = ?`), usuario); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepo) Insert(usuario, hash, rol string) (int64, error) {
	return insertID(r.db, `INSERT INTO usuarios(usuario, password_hash, rol, created_at) VALUES (?,?,?,?)`,
		usuario, hash, rol, now())
}
