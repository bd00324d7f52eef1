package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"catalogo/internal/domain"
)

// Open connects the pool, bootstraps the schema and seeds reference data.
// driver is "postgres" or "sqlite"; the sqlite driver exists so tests and
// local runs need no server.
func Open(driver, dsn string) (*sqlx.DB, error) {
	name := "sqlite"
	if driver == "postgres" {
		name = "postgres"
	}
	db, err := sqlx.Open(name, dsn)
	if err != nil {
		return nil, err
	}
	if name == "sqlite" {
		// One writer; also keeps a :memory: database on a single connection.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedBrands(db); err != nil {
		return nil, err
	}
	return db, nil
}

const schemaSQLite = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS usuarios(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  usuario TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  rol TEXT NOT NULL CHECK (rol IN ('admin','empleado')),
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS marcas(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categorias(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS productos(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL,
  descripcion TEXT,
  codigo_barra TEXT NOT NULL,
  precio NUMERIC NOT NULL CHECK (precio >= 0),
  stock INTEGER NOT NULL CHECK (stock >= 0),
  marca_id INTEGER REFERENCES marcas(id),
  categoria_id INTEGER REFERENCES categorias(id),
  created_at TEXT NOT NULL,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_productos_nombre     ON productos(LOWER(nombre));
CREATE INDEX IF NOT EXISTS idx_productos_created_at ON productos(created_at);
CREATE INDEX IF NOT EXISTS idx_productos_marca      ON productos(marca_id);
CREATE INDEX IF NOT EXISTS idx_productos_categoria  ON productos(categoria_id);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS usuarios(
  id BIGSERIAL PRIMARY KEY,
  usuario TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  rol TEXT NOT NULL CHECK (rol IN ('admin','empleado')),
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS marcas(
  id BIGSERIAL PRIMARY KEY,
  nombre TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categorias(
  id BIGSERIAL PRIMARY KEY,
  nombre TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS productos(
  id BIGSERIAL PRIMARY KEY,
  nombre TEXT NOT NULL,
  descripcion TEXT,
  codigo_barra TEXT NOT NULL,
  precio NUMERIC NOT NULL CHECK (precio >= 0),
  stock INTEGER NOT NULL CHECK (stock >= 0),
  marca_id BIGINT REFERENCES marcas(id),
  categoria_id BIGINT REFERENCES categorias(id),
  created_at TEXT NOT NULL,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_productos_nombre     ON productos(LOWER(nombre));
CREATE INDEX IF NOT EXISTS idx_productos_created_at ON productos(created_at);
CREATE INDEX IF NOT EXISTS idx_productos_marca      ON productos(marca_id);
CREATE INDEX IF NOT EXISTS idx_productos_categoria  ON productos(categoria_id);
`

// Barcode and category name deliberately carry no UNIQUE constraint; the
// duplicate race on concurrent lookup-or-create is accepted application
// behavior.
func ensureSchema(db *sqlx.DB) error {
	schema := schemaSQLite
	if db.DriverName() == "postgres" {
		schema = schemaPostgres
	}
	_, err := db.Exec(schema)
	return err
}

// seedBrands inserts the reference brand list on an empty table. Brands have
// no write endpoints, so an empty table would leave the UI selects useless.
func seedBrands(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM marcas`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	log.Println("[seed] inserting reference marcas")
	for _, nombre := range []string{"Arcor", "La Serenísima", "Coca-Cola", "Quilmes", "Marolio"} {
		if _, err := db.Exec(db.Rebind(`INSERT INTO marcas(nombre) VALUES (?)`), nombre); err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap admin user if no admin exists yet.
// Register requires an admin token, so a fresh install needs one seeded.
func SeedAdmin(db *sqlx.DB, usuario, password string) error {
	var n int
	if err := db.Get(&n, db.Rebind(`SELECT COUNT(*) FROM usuarios WHERE rol = ?`), domain.RolAdmin); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	log.Printf("[seed] creating admin user %q", usuario)
	_, err = db.Exec(db.Rebind(`INSERT INTO usuarios(usuario, password_hash, rol, created_at) VALUES (?,?,?,?)`),
		usuario, string(hash), domain.RolAdmin, now())
	return err
}

// now returns the timestamp format stored in created_at/updated_at. RFC 3339
// in UTC sorts lexicographically in chronological order, which the listing
// sort relies on.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// insertID runs an INSERT and returns the generated key, papering over the
// driver split: lib/pq has no LastInsertId and needs RETURNING.
func insertID(db *sqlx.DB, query string, args ...any) (int64, error) {
	if db.DriverName() == "postgres" {
		var id int64
		err := db.Get(&id, db.Rebind(query+` RETURNING id`), args...)
		return id, err
	}
	res, err := db.Exec(db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
