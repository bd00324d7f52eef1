// Package listing turns untrusted product-listing parameters into a safe,
// parameterized count query and data query. Filter values (q, marcaId,
// categoriaId) only ever travel as bound arguments; the sort column and
// direction are the single spliced tokens and both are checked against a
// fixed allow-list first.
package listing

import (
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"

	"catalogo/internal/validate"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultSortBy  = "created_at"
	DefaultSortDir = "desc"
)

// sortColumns is the allow-list for sortBy. Anything not in here falls back
// to created_at, which is what keeps this field injection-proof.
var sortColumns = map[string]string{
	"nombre":     "p.nombre",
	"precio":     "p.precio",
	"stock":      "p.stock",
	"created_at": "p.created_at",
}

var productColumns = []string{
	"p.id",
	"p.nombre",
	"p.descripcion",
	"p.codigo_barra",
	"p.precio",
	"p.stock",
	"p.marca_id",
	"p.categoria_id",
	"p.created_at",
	"COALESCE(p.updated_at,'') AS updated_at",
}

// Params is a fully normalized set of listing parameters. Zero raw request
// strings survive into this struct.
type Params struct {
	Q           string
	Page        int
	PageSize    int
	SortBy      string // allow-listed key of sortColumns
	SortDir     string // asc | desc
	MarcaID     *int64
	CategoriaID *int64
}

// ParseParams normalizes raw query-string values. It never fails: bad pages
// fall back to defaults, oversized page sizes are capped, unknown sort
// fields fall back to created_at, unparsable id filters are dropped.
func ParseParams(query func(string) string) Params {
	p := Params{
		Q:        strings.TrimSpace(query("q")),
		Page:     positiveOr(query("page"), DefaultPage),
		PageSize: positiveOr(query("pageSize"), DefaultPageSize),
		SortBy:   strings.ToLower(strings.TrimSpace(query("sortBy"))),
		SortDir:  DefaultSortDir,
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if _, ok := sortColumns[p.SortBy]; !ok {
		p.SortBy = DefaultSortBy
	}
	if strings.EqualFold(strings.TrimSpace(query("sortDir")), "asc") {
		p.SortDir = "asc"
	}
	if id, ok := validate.PositiveInt(query("marcaId")); ok {
		p.MarcaID = &id
	}
	if id, ok := validate.PositiveInt(query("categoriaId")); ok {
		p.CategoriaID = &id
	}
	return p
}

func positiveOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (p Params) Offset() int { return (p.Page - 1) * p.PageSize }

// Query is a SQL statement plus its bound arguments, written with `?`
// placeholders; callers rebind for the active driver.
type Query struct {
	SQL  string
	Args []any
}

// Build produces the count and data queries. Both share the same WHERE
// fragment and argument list; the data query appends ORDER BY, LIMIT and
// OFFSET, with limit and offset as two trailing bound arguments.
func Build(p Params) (count Query, data Query, err error) {
	conds := conditions(p)

	countB := squirrel.Select("COUNT(*)").From("productos p")
	dataB := squirrel.Select(productColumns...).From("productos p")
	for _, c := range conds {
		countB = countB.Where(c)
		dataB = dataB.Where(c)
	}
	col, known := sortColumns[p.SortBy]
	if !known {
		col = sortColumns[DefaultSortBy]
	}
	dir := "desc"
	if p.SortDir == "asc" {
		dir = "asc"
	}
	// Suffix instead of Limit/Offset so both travel as bound arguments.
	dataB = dataB.
		OrderBy(col + " " + dir).
		Suffix("LIMIT ? OFFSET ?", p.PageSize, p.Offset())

	count.SQL, count.Args, err = countB.ToSql()
	if err != nil {
		return Query{}, Query{}, err
	}
	data.SQL, data.Args, err = dataB.ToSql()
	if err != nil {
		return Query{}, Query{}, err
	}
	return count, data, nil
}

func conditions(p Params) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if p.Q != "" {
		like := "%" + strings.ToLower(p.Q) + "%"
		conds = append(conds, squirrel.Or{
			squirrel.Expr("LOWER(p.nombre) LIKE ?", like),
			squirrel.Expr("LOWER(p.descripcion) LIKE ?", like),
			squirrel.Expr("LOWER(p.codigo_barra) LIKE ?", like),
		})
	}
	if p.MarcaID != nil {
		conds = append(conds, squirrel.Eq{"p.marca_id": *p.MarcaID})
	}
	if p.CategoriaID != nil {
		conds = append(conds, squirrel.Eq{"p.categoria_id": *p.CategoriaID})
	}
	return conds
}

// TotalPages is ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
