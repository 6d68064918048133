package model

import (
	"strconv"
	"strings"
)

// MenuItem is implemented by everything the food counter can sell: single
// products and combos composed of other menu items.  Price and Description
// are pure computations over the in-memory tree; nothing is cached, so a
// query always reflects the current children.
type MenuItem interface {
	// Name returns the display name of the item.
	Name() string
	// Price returns the current price.  Combos recompute the sum of their
	// children on every call.
	Price() float64
	// Description returns the human readable description used on tickets
	// and in the menu listing.
	Description() string
}

// Item is a leaf product with a fixed unit price.
type Item struct {
	name  string
	price float64
}

// NewItem builds a leaf menu item.
func NewItem(name string, price float64) *Item {
	return &Item{name: name, price: price}
}

func (i *Item) Name() string        { return i.name }
func (i *Item) Price() float64      { return i.price }
func (i *Item) Description() string { return i.name }

// Combo is a composite menu item: an ordered bundle of children sold at the
// sum of their prices plus an adjustment.  The adjustment is usually negative
// (a bundle discount) but may hold any value.  Children may themselves be
// combos; callers must not build cycles, the tree is assumed finite.
type Combo struct {
	name       string
	adjustment float64
	items      []MenuItem
}

// NewCombo builds a combo with the given price adjustment and initial
// children, kept in the order given.
func NewCombo(name string, adjustment float64, items ...MenuItem) *Combo {
	return &Combo{name: name, adjustment: adjustment, items: items}
}

// AddItem appends a child to the combo.  Duplicates are allowed; the same
// product can appear in a bundle more than once.
func (c *Combo) AddItem(item MenuItem) {
	c.items = append(c.items, item)
}

func (c *Combo) Name() string { return c.name }

// Price returns the adjustment plus the recursive sum of the children.
func (c *Combo) Price() float64 {
	total := c.adjustment
	for _, it := range c.items {
		total += it.Price()
	}
	return total
}

// Description renders "Nombre (ajuste)[hijo, hijo]".  The parenthetical
// adjustment appears only when it is non-zero, and a combo with no children
// reads "Nombre (vacío)".
func (c *Combo) Description() string {
	if len(c.items) == 0 {
		return c.name + " (vacío)"
	}
	var b strings.Builder
	b.WriteString(c.name)
	if c.adjustment != 0 {
		b.WriteString(" (")
		if c.adjustment > 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.FormatFloat(c.adjustment, 'g', -1, 64))
		b.WriteByte(')')
	}
	b.WriteByte('[')
	for i, it := range c.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.Description())
	}
	b.WriteByte(']')
	return b.String()
}
