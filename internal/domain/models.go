package domain

const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
)

// ValidRol reports whether s is one of the two enumerated roles.
func ValidRol(s string) bool {
	return s == RolAdmin || s == RolEmpleado
}

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Nombre      string  `db:"nombre" json:"nombre"`
	Descripcion *string `db:"descripcion" json:"descripcion"`
	CodigoBarra string  `db:"codigo_barra" json:"codigoBarra"`
	Precio      float64 `db:"precio" json:"precio"`
	Stock       int     `db:"stock" json:"stock"`
	MarcaID     *int64  `db:"marca_id" json:"marcaId"`
	CategoriaID *int64  `db:"categoria_id" json:"categoriaId"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at"`
}

type Category struct {
	ID     int64  `db:"id" json:"id"`
	Nombre string `db:"nombre" json:"nombre"`
}

// Brand is a read-only reference list used by the UI selects.
type Brand struct {
	ID     int64  `db:"id" json:"id"`
	Nombre string `db:"nombre" json:"nombre"`
}

type User struct {
	ID      int64  `db:"id" json:"id"`
	Usuario string `db:"usuario" json:"usuario"`
	Hash    string `db:"password_hash" json:"-"`
	Rol     string `db:"rol" json:"rol"`
}
