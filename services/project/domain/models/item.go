package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/services/project/domain"
)

const maxItemNameLength = 255

// MaxQuantity is the largest quantity storage can hold.
const MaxQuantity = math.MaxInt32

// Item is one priced line of a Project. It is owned exclusively by its project.
type Item struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	ItemType  string
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	Quantity  int
}

// NewItem constructs a valid Item with a generated ID.
// Quantities below 1 and negative prices are rejected, never clamped.
func NewItem(projectID uuid.UUID, name, itemType string, unitPrice, unitCost decimal.Decimal, quantity int) (*Item, error) {
	item := &Item{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      strings.TrimSpace(name),
		ItemType:  strings.TrimSpace(itemType),
		UnitPrice: unitPrice,
		UnitCost:  unitCost,
		Quantity:  quantity,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks the item invariants. Errors wrap domain.ErrInvalidItem.
func (i *Item) Validate() error {
	switch {
	case i.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidItem)
	case len(i.Name) > maxItemNameLength:
		return fmt.Errorf("%w: name must not exceed %d characters", domain.ErrInvalidItem, maxItemNameLength)
	case ValidateQuantity(i.Quantity) != nil:
		return ValidateQuantity(i.Quantity)
	case i.UnitPrice.IsNegative():
		return fmt.Errorf("%w: unit price must not be negative", domain.ErrInvalidItem)
	case i.UnitCost.IsNegative():
		return fmt.Errorf("%w: unit cost must not be negative", domain.ErrInvalidItem)
	}
	return nil
}

// SetQuantity changes the quantity, keeping the item unchanged on error.
func (i *Item) SetQuantity(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	i.Quantity = quantity
	return nil
}

// ValidateQuantity rejects quantities outside 1..MaxQuantity.
func ValidateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return fmt.Errorf("%w: quantity must be between 1 and %d, got %d", domain.ErrInvalidItem, MaxQuantity, quantity)
	}
	return nil
}

// LineSubtotal is unit price times quantity.
func (i *Item) LineSubtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineCost is unit cost times quantity.
func (i *Item) LineCost() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
