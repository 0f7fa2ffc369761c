package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the ordered collection of line items for exactly one owner, either
// the anonymous session or the authenticated user. It holds at most one line
// per distinct product variant.
type Cart struct {
	Items []LineItem `json:"items"`
}

// MergeAdd folds a candidate line into the cart. If a line with the same
// variant already exists, its quantity becomes the clamped sum and the line is
// replaced in place; otherwise the candidate is appended. The returned line is
// the one now in the cart.
func (c *Cart) MergeAdd(item LineItem) LineItem {
	for i, existing := range c.Items {
		if existing.VariantID == item.VariantID {
			existing.Quantity = ClampQuantity(existing.Quantity+item.Quantity, existing.Stock)
			c.Items[i] = existing

			return existing
		}
	}

	item.Quantity = ClampQuantity(item.Quantity, item.Stock)
	c.Items = append(c.Items, item)

	return item
}

// Remove filters out the line with the given local id. It reports whether a
// line was removed.
func (c *Cart) Remove(lineID uuid.UUID) bool {
	for i, item := range c.Items {
		if item.ID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

// FindByID returns the line with the given local id.
func (c *Cart) FindByID(lineID uuid.UUID) (LineItem, bool) {
	for _, item := range c.Items {
		if item.ID == lineID {
			return item, true
		}
	}

	return LineItem{}, false
}

// SetQuantity replaces the quantity of the identified line with the clamped
// value. It reports whether the line exists.
func (c *Cart) SetQuantity(lineID uuid.UUID, quantity int) bool {
	for i, item := range c.Items {
		if item.ID == lineID {
			c.Items[i] = item.WithQuantity(quantity)

			return true
		}
	}

	return false
}

// Contains reports whether any line references the given variant.
func (c *Cart) Contains(variantID string) bool {
	for _, item := range c.Items {
		if item.VariantID == variantID {
			return true
		}
	}

	return false
}

// TotalQuantity is the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// TotalPrice is the sum of unit price times quantity over all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}
