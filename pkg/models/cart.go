package models

import "fmt"

// LineItem is one cart entry: an offering plus, when the offering is tiered,
// the chosen pricing option. The same offering may appear on several lines
// with different options.
type LineItem struct {
	Offering
	SelectedOption *PricingOption `json:"selectedOption,omitempty"`
}

// EffectivePrice is the amount actually billed for the line: the selected
// tier's price when one is chosen, the offering's base price otherwise.
func (li *LineItem) EffectivePrice() int {
	if li.SelectedOption != nil {
		return li.SelectedOption.Price
	}
	return li.Price
}

// Cart is an ordered sequence of line items; order reflects the add sequence
// and only matters for display and positional removal, never for pricing.
type Cart struct {
	SessionID string     `json:"session_id,omitempty"`
	Items     []LineItem `json:"items"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []LineItem{}}
}

// Add appends a new line item. No de-duplication: adding the same offering
// twice yields two independent lines.
func (c *Cart) Add(offering Offering, option *PricingOption) {
	c.Items = append(c.Items, LineItem{Offering: offering, SelectedOption: option})
}

// Remove deletes the line at the given position. An out-of-range index is a
// caller bug; the cart is left untouched and the error reports it.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Items) {
		return fmt.Errorf("cart: index %d out of range (%d items)", index, len(c.Items))
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// Total sums the effective prices of all current lines. Recomputed on every
// call; carts stay small enough that caching would buy nothing.
func (c *Cart) Total() int {
	var total int
	for i := range c.Items {
		total += c.Items[i].EffectivePrice()
	}
	return total
}

func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

func (c *Cart) Len() int {
	return len(c.Items)
}
