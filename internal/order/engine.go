// Package order implements the composition rules that keep an order's line
// items, stock availability, and total mutually consistent while it is being
// edited. It operates purely on in-memory snapshots; persistence lives in the
// repository layer.
package order

import (
	"math"

	"github.com/google/uuid"

	"adminboard/internal/domain"
)

// Catalog is a read-only snapshot of the products an order may reference.
type Catalog map[string]domain.Product

func NewCatalog(products []domain.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

// AddItem appends a fresh, unselected line item with quantity 1 and price 0.
// It always succeeds and returns the new item.
func AddItem(o *domain.Order) *domain.LineItem {
	o.Items = append(o.Items, domain.LineItem{
		ID:       uuid.NewString(),
		Quantity: 1,
	})
	return &o.Items[len(o.Items)-1]
}

// RemoveItem removes the item with the given id. An order must retain at
// least one line item during editing, so removing the last one returns
// ErrLastItem and leaves the order unchanged.
func RemoveItem(o *domain.Order, itemID string) error {
	idx := -1
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	if len(o.Items) <= 1 {
		return domain.ErrLastItem
	}
	o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
	return nil
}

// SelectProduct points the item at a product, snapshotting its name and
// price. Quantity resets to 1: whatever was chosen against the previous
// product's stock is no longer meaningful.
func SelectProduct(it *domain.LineItem, p domain.Product) {
	id := p.ID
	it.ProductID = &id
	it.ProductName = p.Name
	it.UnitPriceCents = p.PriceCents
	it.Quantity = 1
}

// SetQuantity applies the unconditional lower bound: the result is
// max(1, floor(requested)) for any real input, selected product or not.
// Inputs beyond the representable range saturate at math.MaxInt32 so the
// floor of 1 holds even when float conversion would otherwise overflow.
// The stock ceiling is a separate, advisory rule (see ClampToStock).
func SetQuantity(it *domain.LineItem, requested float64) {
	q := 1
	switch {
	case requested >= math.MaxInt32:
		q = math.MaxInt32
	case requested >= 1:
		q = int(math.Floor(requested))
	}
	it.Quantity = q
}

// SetUnitPrice accepts only non-negative prices; a negative request is a
// no-op and the previous value is retained. There is no upper bound.
func SetUnitPrice(it *domain.LineItem, cents int64) {
	if cents < 0 {
		return
	}
	it.UnitPriceCents = cents
}

// StockCeiling returns the effective upper bound on the item's quantity:
// the selected product's stock, or 0 when no product is selected or the
// product is not in the snapshot.
func (c Catalog) StockCeiling(it domain.LineItem) int {
	if it.ProductID == nil {
		return 0
	}
	p, ok := c[*it.ProductID]
	if !ok {
		return 0
	}
	return p.Stock
}

// ClampToStock lowers the quantity to the stock ceiling where one applies.
// Callers compose this with SetQuantity to get a fully bounded value; the
// ceiling alone never raises a quantity above the floor of 1.
func (c Catalog) ClampToStock(it *domain.LineItem) {
	ceiling := c.StockCeiling(*it)
	if it.ProductID == nil || ceiling <= 0 {
		return
	}
	if it.Quantity > ceiling {
		it.Quantity = ceiling
	}
}

// ComputeTotal derives the order total from its items. Items with no product
// selected contribute zero. This is the single source of truth for
// Order.TotalCents; the field is never set independently at commit time.
func ComputeTotal(o *domain.Order) int64 {
	var total int64
	for i := range o.Items {
		if o.Items[i].ProductID == nil {
			continue
		}
		total += o.Items[i].UnitPriceCents * int64(o.Items[i].Quantity)
	}
	return total
}

// ValidateForCommit checks the four commit preconditions together: a
// customer, an employee, at least one item, and a selected product on every
// item. It returns a ValidationError naming everything that is missing.
func ValidateForCommit(o *domain.Order) error {
	var missing []string
	if o.CustomerID == "" {
		missing = append(missing, "customer")
	}
	if o.EmployeeID == "" {
		missing = append(missing, "employee")
	}
	if len(o.Items) == 0 {
		missing = append(missing, "items")
	}
	for i := range o.Items {
		if o.Items[i].ProductID == nil {
			missing = append(missing, "product selection")
			break
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}
	return nil
}
