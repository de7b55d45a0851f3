package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/services/project/domain"
)

const maxProjectNameLength = 255

var hundred = decimal.NewFromInt(100)

// Project is the quote aggregate root: client details, project-wide
// discount and tax rates, and the ordered list of items.
// Derived money values are never stored here; see services.Summarize.
type Project struct {
	ID          uuid.UUID
	Name        string
	Client      string
	DiscountPct decimal.Decimal
	TaxPct      decimal.Decimal
	Notes       string
	IsArchived  bool
	CreatedAt   time.Time
	Items       []*Item // insertion order is display order
}

// NewProject constructs a valid Project with no items, a generated ID and
// the current timestamp.
func NewProject(name, client string, discountPct, taxPct decimal.Decimal, notes string) (*Project, error) {
	p := &Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Client:      strings.TrimSpace(client),
		DiscountPct: discountPct,
		TaxPct:      taxPct,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the project-level invariants. Errors wrap domain.ErrInvalidProject.
func (p *Project) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidProject)
	case len(p.Name) > maxProjectNameLength:
		return fmt.Errorf("%w: name must not exceed %d characters", domain.ErrInvalidProject, maxProjectNameLength)
	case p.DiscountPct.IsNegative() || p.DiscountPct.GreaterThan(hundred):
		return fmt.Errorf("%w: discount must be between 0 and 100, got %s", domain.ErrInvalidProject, p.DiscountPct)
	case p.TaxPct.IsNegative():
		return fmt.Errorf("%w: tax must not be negative, got %s", domain.ErrInvalidProject, p.TaxPct)
	}
	return nil
}

// Item returns the item with the given ID.
func (p *Project) Item(id uuid.UUID) (*Item, bool) {
	for _, it := range p.Items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// ProjectPatch is a partial update: only non-nil fields are applied.
type ProjectPatch struct {
	Name        *string
	Client      *string
	DiscountPct *decimal.Decimal
	TaxPct      *decimal.Decimal
	Notes       *string
	IsArchived  *bool
}

// Apply patches p in place. The patched result is validated first and p is
// left untouched when it would be invalid. ID, CreatedAt and Items never change.
func (p *Project) Apply(patch ProjectPatch) error {
	next := *p
	if patch.Name != nil {
		next.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Client != nil {
		next.Client = strings.TrimSpace(*patch.Client)
	}
	if patch.DiscountPct != nil {
		next.DiscountPct = *patch.DiscountPct
	}
	if patch.TaxPct != nil {
		next.TaxPct = *patch.TaxPct
	}
	if patch.Notes != nil {
		next.Notes = *patch.Notes
	}
	if patch.IsArchived != nil {
		next.IsArchived = *patch.IsArchived
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*p = next
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (pp ProjectPatch) IsEmpty() bool {
	return pp.Name == nil && pp.Client == nil && pp.DiscountPct == nil &&
		pp.TaxPct == nil && pp.Notes == nil && pp.IsArchived == nil
}
