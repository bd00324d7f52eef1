package listing_test

import (
	"strings"
	"testing"

	"catalogo/internal/listing"
)

func queryFn(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestParseParamsDefaults(t *testing.T) {
	p := listing.ParseParams(queryFn(nil))
	if p.Page != 1 || p.PageSize != 10 {
		t.Fatalf("want page=1 pageSize=10, got %d/%d", p.Page, p.PageSize)
	}
	if p.SortBy != "created_at" || p.SortDir != "desc" {
		t.Fatalf("want created_at desc, got %s %s", p.SortBy, p.SortDir)
	}
	if p.Q != "" || p.MarcaID != nil || p.CategoriaID != nil {
		t.Fatalf("want empty filters, got %+v", p)
	}
}

func TestParseParamsNormalization(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]string
		want func(t *testing.T, p listing.Params)
	}{
		{"pageSize capped at 100", map[string]string{"pageSize": "500"}, func(t *testing.T, p listing.Params) {
			if p.PageSize != 100 {
				t.Fatalf("want 100, got %d", p.PageSize)
			}
		}},
		{"non-positive page falls back", map[string]string{"page": "-3"}, func(t *testing.T, p listing.Params) {
			if p.Page != 1 {
				t.Fatalf("want 1, got %d", p.Page)
			}
		}},
		{"non-numeric page falls back", map[string]string{"page": "abc", "pageSize": "x"}, func(t *testing.T, p listing.Params) {
			if p.Page != 1 || p.PageSize != 10 {
				t.Fatalf("want 1/10, got %d/%d", p.Page, p.PageSize)
			}
		}},
		{"sortBy injection falls back", map[string]string{"sortBy": "precio; DROP TABLE productos--"}, func(t *testing.T, p listing.Params) {
			if p.SortBy != "created_at" {
				t.Fatalf("want created_at, got %s", p.SortBy)
			}
		}},
		{"sortBy allow-listed", map[string]string{"sortBy": "PRECIO"}, func(t *testing.T, p listing.Params) {
			if p.SortBy != "precio" {
				t.Fatalf("want precio, got %s", p.SortBy)
			}
		}},
		{"sortDir asc case-insensitive", map[string]string{"sortDir": "ASC"}, func(t *testing.T, p listing.Params) {
			if p.SortDir != "asc" {
				t.Fatalf("want asc, got %s", p.SortDir)
			}
		}},
		{"sortDir anything else is desc", map[string]string{"sortDir": "ascending"}, func(t *testing.T, p listing.Params) {
			if p.SortDir != "desc" {
				t.Fatalf("want desc, got %s", p.SortDir)
			}
		}},
		{"unparsable marcaId dropped", map[string]string{"marcaId": "x", "categoriaId": "-1"}, func(t *testing.T, p listing.Params) {
			if p.MarcaID != nil || p.CategoriaID != nil {
				t.Fatalf("want nil filters, got %+v", p)
			}
		}},
		{"valid id filters kept", map[string]string{"marcaId": "3", "categoriaId": "7"}, func(t *testing.T, p listing.Params) {
			if p.MarcaID == nil || *p.MarcaID != 3 || p.CategoriaID == nil || *p.CategoriaID != 7 {
				t.Fatalf("want 3/7, got %+v", p)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.want(t, listing.ParseParams(queryFn(tc.in)))
		})
	}
}

func TestBuildNeverSplicesSearchText(t *testing.T) {
	p := listing.ParseParams(queryFn(map[string]string{"q": "abc", "marcaId": "5"}))
	count, data, err := listing.Build(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []listing.Query{count, data} {
		if strings.Contains(q.SQL, "abc") {
			t.Fatalf("search text spliced into SQL: %s", q.SQL)
		}
		if !strings.Contains(q.SQL, "p.marca_id = ?") {
			t.Fatalf("marca filter must be a placeholder: %s", q.SQL)
		}
	}
	// %abc% bound three times (nombre, descripcion, codigo_barra) plus marca_id
	if len(count.Args) != 4 {
		t.Fatalf("want 4 count args, got %v", count.Args)
	}
	for i := 0; i < 3; i++ {
		if count.Args[i] != "%abc%" {
			t.Fatalf("arg %d: want %%abc%%, got %v", i, count.Args[i])
		}
	}
}

func TestBuildCountAndDataShareWhere(t *testing.T) {
	p := listing.ParseParams(queryFn(map[string]string{"q": "tv", "categoriaId": "2", "page": "3", "pageSize": "20"}))
	count, data, err := listing.Build(p)
	if err != nil {
		t.Fatal(err)
	}
	// data args = count args + pageSize + offset trailing
	if len(data.Args) != len(count.Args)+2 {
		t.Fatalf("want %d data args, got %d", len(count.Args)+2, len(data.Args))
	}
	for i := range count.Args {
		if data.Args[i] != count.Args[i] {
			t.Fatalf("arg %d differs: %v vs %v", i, count.Args[i], data.Args[i])
		}
	}
	if data.Args[len(data.Args)-2] != 20 || data.Args[len(data.Args)-1] != 40 {
		t.Fatalf("want trailing args 20/40, got %v", data.Args)
	}
	if strings.Contains(count.SQL, "ORDER BY") || strings.Contains(count.SQL, "LIMIT") {
		t.Fatalf("count query must not order or limit: %s", count.SQL)
	}
}

func TestBuildSortTokens(t *testing.T) {
	p := listing.ParseParams(queryFn(map[string]string{"sortBy": "precio", "sortDir": "asc"}))
	_, data, err := listing.Build(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(data.SQL, "ORDER BY p.precio asc") {
		t.Fatalf("want ORDER BY p.precio asc, got %s", data.SQL)
	}

	p = listing.ParseParams(queryFn(map[string]string{"sortBy": "id); DROP TABLE productos"}))
	_, data, err = listing.Build(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(data.SQL, "ORDER BY p.created_at desc") {
		t.Fatalf("injection must fall back to created_at desc: %s", data.SQL)
	}
	if strings.Contains(data.SQL, "DROP") {
		t.Fatalf("raw sort input reached SQL: %s", data.SQL)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ total, size, want int }{
		{25, 10, 3},
		{30, 10, 3},
		{0, 10, 0},
		{1, 100, 1},
	}
	for _, tc := range cases {
		if got := listing.TotalPages(tc.total, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d,%d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}
