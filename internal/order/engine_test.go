package order

import (
	"errors"
	"math"
	"testing"

	"adminboard/internal/domain"
)

func strPtr(v string) *string {
	return &v
}

func TestAddItemDefaults(t *testing.T) {
	var o domain.Order
	it := AddItem(&o)
	if it.ID == "" {
		t.Fatalf("expected fresh id")
	}
	if it.ProductID != nil {
		t.Fatalf("expected unselected item, got %v", *it.ProductID)
	}
	if it.Quantity != 1 || it.UnitPriceCents != 0 {
		t.Fatalf("unexpected defaults: %+v", it)
	}
	AddItem(&o)
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}
	if o.Items[0].ID == o.Items[1].ID {
		t.Fatalf("item ids must be distinct")
	}
}

func TestRemoveItemLastIsRejected(t *testing.T) {
	var o domain.Order
	it := AddItem(&o)
	err := RemoveItem(&o, it.ID)
	if !errors.Is(err, domain.ErrLastItem) {
		t.Fatalf("expected ErrLastItem, got %v", err)
	}
	if len(o.Items) != 1 {
		t.Fatalf("order must be unchanged, got %d items", len(o.Items))
	}
}

func TestRemoveItemUnknownID(t *testing.T) {
	var o domain.Order
	AddItem(&o)
	AddItem(&o)
	if err := RemoveItem(&o, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveItemPreservesOthers(t *testing.T) {
	var o domain.Order
	first := AddItem(&o)
	second := AddItem(&o)
	third := AddItem(&o)
	firstID, thirdID := first.ID, third.ID
	SelectProduct(&o.Items[0], domain.Product{ID: "p1", Name: "A", PriceCents: 100})
	SelectProduct(&o.Items[2], domain.Product{ID: "p3", Name: "C", PriceCents: 300})

	if err := RemoveItem(&o, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}
	if o.Items[0].ID != firstID || o.Items[1].ID != thirdID {
		t.Fatalf("remaining items reordered: %+v", o.Items)
	}
	if o.Items[0].UnitPriceCents != 100 || o.Items[1].UnitPriceCents != 300 {
		t.Fatalf("remaining item values changed: %+v", o.Items)
	}
}

func TestSelectProductSnapshotsAndResetsQuantity(t *testing.T) {
	it := domain.LineItem{ID: "li", Quantity: 7, UnitPriceCents: 55}
	SelectProduct(&it, domain.Product{ID: "p1", Name: "iPhone 15", PriceCents: 99900, Stock: 3})
	if it.ProductID == nil || *it.ProductID != "p1" {
		t.Fatalf("product not selected: %+v", it)
	}
	if it.ProductName != "iPhone 15" || it.UnitPriceCents != 99900 {
		t.Fatalf("snapshot not captured: %+v", it)
	}
	if it.Quantity != 1 {
		t.Fatalf("quantity must reset to 1, got %d", it.Quantity)
	}
}

func TestSetQuantityFloor(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{5, 5},
		{1, 1},
		{0, 1},
		{-3, 1},
		{2.9, 2},
		{0.4, 1},
		{1.0001, 1},
		{math.NaN(), 1},
		{math.Inf(-1), 1},
		{math.Inf(1), math.MaxInt32},
		{1e30, math.MaxInt32},
		{math.MaxFloat64, math.MaxInt32},
	}
	for _, tc := range cases {
		it := domain.LineItem{Quantity: 9}
		SetQuantity(&it, tc.in)
		if it.Quantity != tc.want {
			t.Fatalf("SetQuantity(%v) = %d, want %d", tc.in, it.Quantity, tc.want)
		}
	}
}

func TestSetQuantityAppliesWithoutSelectedProduct(t *testing.T) {
	it := domain.LineItem{}
	SetQuantity(&it, 4)
	if it.Quantity != 4 {
		t.Fatalf("floor rule is unconditional, got %d", it.Quantity)
	}
}

func TestSetUnitPriceRejectsNegative(t *testing.T) {
	it := domain.LineItem{UnitPriceCents: 500}
	SetUnitPrice(&it, -1)
	if it.UnitPriceCents != 500 {
		t.Fatalf("negative price must be a no-op, got %d", it.UnitPriceCents)
	}
	SetUnitPrice(&it, 0)
	if it.UnitPriceCents != 0 {
		t.Fatalf("zero price is allowed, got %d", it.UnitPriceCents)
	}
	SetUnitPrice(&it, 123456789)
	if it.UnitPriceCents != 123456789 {
		t.Fatalf("no upper bound expected, got %d", it.UnitPriceCents)
	}
}

func TestStockCeiling(t *testing.T) {
	catalog := NewCatalog([]domain.Product{{ID: "p1", Stock: 5}})

	if got := catalog.StockCeiling(domain.LineItem{}); got != 0 {
		t.Fatalf("unselected item ceiling = %d, want 0", got)
	}
	if got := catalog.StockCeiling(domain.LineItem{ProductID: strPtr("missing")}); got != 0 {
		t.Fatalf("unknown product ceiling = %d, want 0", got)
	}
	if got := catalog.StockCeiling(domain.LineItem{ProductID: strPtr("p1")}); got != 5 {
		t.Fatalf("ceiling = %d, want 5", got)
	}
}

func TestClampToStock(t *testing.T) {
	catalog := NewCatalog([]domain.Product{{ID: "p1", Stock: 2}})

	it := domain.LineItem{ProductID: strPtr("p1"), Quantity: 10}
	catalog.ClampToStock(&it)
	if it.Quantity != 2 {
		t.Fatalf("expected clamp to 2, got %d", it.Quantity)
	}

	it = domain.LineItem{ProductID: strPtr("p1"), Quantity: 1}
	catalog.ClampToStock(&it)
	if it.Quantity != 1 {
		t.Fatalf("clamp must never raise quantity, got %d", it.Quantity)
	}

	// Ceiling of zero stays advisory: the floor of 1 wins.
	empty := NewCatalog([]domain.Product{{ID: "p1", Stock: 0}})
	it = domain.LineItem{ProductID: strPtr("p1"), Quantity: 3}
	empty.ClampToStock(&it)
	if it.Quantity != 3 {
		t.Fatalf("zero ceiling must not clamp, got %d", it.Quantity)
	}
}

func TestComputeTotalSkipsUnselected(t *testing.T) {
	o := domain.Order{Items: []domain.LineItem{
		{ID: "a", ProductID: strPtr("p1"), Quantity: 3, UnitPriceCents: 1000},
		{ID: "b", Quantity: 4, UnitPriceCents: 9999},
		{ID: "c", ProductID: strPtr("p2"), Quantity: 1, UnitPriceCents: 2000},
	}}
	if got := ComputeTotal(&o); got != 5000 {
		t.Fatalf("total = %d, want 5000", got)
	}
	// Idempotent over an unchanged item sequence.
	if got := ComputeTotal(&o); got != 5000 {
		t.Fatalf("recompute = %d, want 5000", got)
	}
}

func TestComputeTotalEmptyOrder(t *testing.T) {
	var o domain.Order
	if got := ComputeTotal(&o); got != 0 {
		t.Fatalf("empty total = %d, want 0", got)
	}
}

func TestValidateForCommit(t *testing.T) {
	valid := domain.Order{
		CustomerID: "c1",
		EmployeeID: "e1",
		Items:      []domain.LineItem{{ID: "a", ProductID: strPtr("p1"), Quantity: 1}},
	}
	if err := ValidateForCommit(&valid); err != nil {
		t.Fatalf("expected valid order, got %v", err)
	}

	noCustomer := valid
	noCustomer.CustomerID = ""
	assertMissing(t, ValidateForCommit(&noCustomer), "customer")

	noEmployee := valid
	noEmployee.EmployeeID = ""
	assertMissing(t, ValidateForCommit(&noEmployee), "employee")

	noItems := valid
	noItems.Items = nil
	assertMissing(t, ValidateForCommit(&noItems), "items")

	cleared := valid
	cleared.Items = []domain.LineItem{{ID: "a", Quantity: 1}}
	assertMissing(t, ValidateForCommit(&cleared), "product selection")

	everything := domain.Order{Items: []domain.LineItem{{ID: "a"}}}
	err := ValidateForCommit(&everything)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Missing) != 3 {
		t.Fatalf("expected 3 missing parts, got %v", verr.Missing)
	}
}

func assertMissing(t *testing.T, err error, part string) {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, m := range verr.Missing {
		if m == part {
			return
		}
	}
	t.Fatalf("expected %q in missing parts, got %v", part, verr.Missing)
}

func TestEditScenario(t *testing.T) {
	catalog := NewCatalog([]domain.Product{
		{ID: "p1", Name: "Lightning Cable", PriceCents: 1000, Stock: 5},
		{ID: "p2", Name: "20W Charger", PriceCents: 2000, Stock: 1},
	})

	o := domain.Order{CustomerID: "c1", EmployeeID: "e1"}
	AddItem(&o)
	AddItem(&o)

	SelectProduct(&o.Items[0], catalog["p1"])
	SetQuantity(&o.Items[0], 3)
	catalog.ClampToStock(&o.Items[0])

	SelectProduct(&o.Items[1], catalog["p2"])
	SetQuantity(&o.Items[1], 10)
	catalog.ClampToStock(&o.Items[1])

	if o.Items[0].Quantity != 3 {
		t.Fatalf("item1 quantity = %d, want 3", o.Items[0].Quantity)
	}
	if o.Items[1].Quantity != 1 {
		t.Fatalf("item2 quantity = %d, want 1 (clamped to stock)", o.Items[1].Quantity)
	}
	if err := ValidateForCommit(&o); err != nil {
		t.Fatalf("expected committable order, got %v", err)
	}
	if got := ComputeTotal(&o); got != 5000 {
		t.Fatalf("total = %d, want 5000", got)
	}
}
