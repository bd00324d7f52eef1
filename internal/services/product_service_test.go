package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"catalogo/internal/listing"
	"catalogo/internal/repos"
	"catalogo/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newProductService(t *testing.T) *services.ProductService {
	t.Helper()
	db := memdb(t)
	catSvc := services.NewCategoryService(repos.NewCategoryRepo(db))
	return services.NewProductService(repos.NewProductRepo(db), catSvc)
}

func str(s string) *string { return &s }

func TestCreateAggregatesAllValidationProblems(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.Create(services.ProductInput{
		Nombre:      str("Yerba"),
		CodigoBarra: str("779000001"),
		Precio:      float64(-1),
		Stock:       "x",
	})
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	msg := verr.Error()
	if !strings.Contains(msg, "precio") || !strings.Contains(msg, "stock") {
		t.Fatalf("message must name both bad fields, got %q", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Fatalf("problems must be joined with '; ', got %q", msg)
	}
}

func TestCreateMissingNameAndBarcode(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.Create(services.ProductInput{
		Nombre:      str("   "),
		CodigoBarra: nil,
		Precio:      float64(10),
		Stock:       float64(1),
	})
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(verr.Problems) != 2 {
		t.Fatalf("want 2 problems, got %v", verr.Problems)
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.Create(services.ProductInput{
		Nombre:      str("  Yerba Mate  "),
		Descripcion: str("Paquete 1kg"),
		CodigoBarra: str(" 7790000000017 "),
		Precio:      "149.99", // numeric string is accepted
		Stock:       float64(30),
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("want generated id")
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nombre != "Yerba Mate" || got.CodigoBarra != "7790000000017" {
		t.Fatalf("strings not trimmed: %+v", got)
	}
	if got.Precio != 149.99 || got.Stock != 30 {
		t.Fatalf("numeric coercion lost: %+v", got)
	}
	if got.Descripcion == nil || *got.Descripcion != "Paquete 1kg" {
		t.Fatalf("descripcion mismatch: %+v", got.Descripcion)
	}
	if got.CreatedAt == "" {
		t.Fatal("want created_at set")
	}
}

func TestUpdatePartialInputFullReplace(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.Create(services.ProductInput{
		Nombre:      str("Fideos"),
		CodigoBarra: str("100"),
		Precio:      float64(200),
		Stock:       float64(5),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Only precio supplied; everything else keeps the stored value.
	updated, err := svc.Update(created.ID, services.ProductInput{Precio: float64(250)})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Precio != 250 {
		t.Fatalf("want precio 250, got %v", updated.Precio)
	}
	if updated.Nombre != "Fideos" || updated.CodigoBarra != "100" || updated.Stock != 5 {
		t.Fatalf("omitted fields must keep stored values: %+v", updated)
	}
	if updated.UpdatedAt == "" {
		t.Fatal("want updated_at set")
	}
}

func TestUpdateMissing(t *testing.T) {
	svc := newProductService(t)
	if _, err := svc.Update(9999, services.ProductInput{}); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.Create(services.ProductInput{
		Nombre:      str("Azúcar"),
		CodigoBarra: str("200"),
		Precio:      float64(90),
		Stock:       float64(2),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestCategoriaLookupOrCreate(t *testing.T) {
	svc := newProductService(t)

	first, err := svc.Create(services.ProductInput{
		Nombre:          str("Pan"),
		CodigoBarra:     str("300"),
		Precio:          float64(50),
		Stock:           float64(1),
		CategoriaNombre: str("Panadería"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.CategoriaID == nil {
		t.Fatal("want category created and assigned")
	}

	// Same name resolves to the same id, no duplicate.
	second, err := svc.Create(services.ProductInput{
		Nombre:          str("Facturas"),
		CodigoBarra:     str("301"),
		Precio:          float64(80),
		Stock:           float64(12),
		CategoriaNombre: str("Panadería"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if *second.CategoriaID != *first.CategoriaID {
		t.Fatalf("want same category id, got %d vs %d", *first.CategoriaID, *second.CategoriaID)
	}

	// Explicit categoriaId wins over the name.
	id := *first.CategoriaID
	third, err := svc.Create(services.ProductInput{
		Nombre:          str("Criollitos"),
		CodigoBarra:     str("302"),
		Precio:          float64(60),
		Stock:           float64(3),
		CategoriaID:     &id,
		CategoriaNombre: str("Otra"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if *third.CategoriaID != id {
		t.Fatalf("explicit id must win, got %d", *third.CategoriaID)
	}
}

func TestListPagination(t *testing.T) {
	svc := newProductService(t)

	for i := 0; i < 25; i++ {
		_, err := svc.Create(services.ProductInput{
			Nombre:      str(fmt.Sprintf("Producto %02d", i)),
			CodigoBarra: str(fmt.Sprintf("90000%02d", i)),
			Precio:      float64(i),
			Stock:       float64(i),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	page1, err := svc.List(listing.Params{Page: 1, PageSize: 10, SortBy: "precio", SortDir: "asc"})
	if err != nil {
		t.Fatal(err)
	}
	if page1.Total != 25 || page1.TotalPages != 3 || len(page1.Items) != 10 {
		t.Fatalf("page1: total=%d totalPages=%d len=%d", page1.Total, page1.TotalPages, len(page1.Items))
	}
	if page1.Items[0].Precio != 0 {
		t.Fatalf("asc sort broken: %+v", page1.Items[0])
	}

	page3, err := svc.List(listing.Params{Page: 3, PageSize: 10, SortBy: "precio", SortDir: "asc"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page3.Items) != 5 {
		t.Fatalf("page3: want 5 items, got %d", len(page3.Items))
	}

	page4, err := svc.List(listing.Params{Page: 4, PageSize: 10, SortBy: "precio", SortDir: "asc"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page4.Items) != 0 || page4.Total != 25 {
		t.Fatalf("page4: want empty with total 25, got len=%d total=%d", len(page4.Items), page4.Total)
	}
}

func TestListSearchMatchesSubstring(t *testing.T) {
	svc := newProductService(t)

	for _, p := range []struct{ nombre, desc, code string }{
		{"Gaseosa Cola", "Botella 2L", "111"},
		{"Agua Mineral", "Con gas, abc premium", "222"},
		{"Galletitas", "Surtidas", "abc-333"},
		{"Detergente", "Limón", "444"},
	} {
		d := p.desc
		if _, err := svc.Create(services.ProductInput{
			Nombre:      str(p.nombre),
			Descripcion: &d,
			CodigoBarra: str(p.code),
			Precio:      float64(10),
			Stock:       float64(1),
		}); err != nil {
			t.Fatal(err)
		}
	}

	res, err := svc.List(listing.Params{Q: "ABC", Page: 1, PageSize: 10, SortBy: "nombre", SortDir: "asc"})
	if err != nil {
		t.Fatal(err)
	}
	// matches descripcion of one and codigo_barra of another, case-insensitive
	if res.Total != 2 {
		t.Fatalf("want 2 matches, got %d", res.Total)
	}
}
