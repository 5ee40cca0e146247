// Package costs computes spare part line totals and the subtotal, tax and
// total of an inspection or quotation.
//
// Rounding to entities.MoneyScale happens once per displayed or stored value,
// never on intermediate sums.
package costs

import (
	"strings"

	"scale_workshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied when no rate is configured.
var DefaultTaxRate = decimal.RequireFromString("0.10")

// Totals is the financial breakdown of a set of line items.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

type Aggregator struct {
	TaxRate decimal.Decimal
}

// NewAggregator rejects negative or over-unity tax rates.
func NewAggregator(taxRate decimal.Decimal) (Aggregator, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return Aggregator{}, entities.NewValidationError("tax_rate", "must be between 0 and 1")
	}
	return Aggregator{TaxRate: taxRate}, nil
}

// Default returns an aggregator with DefaultTaxRate.
func Default() Aggregator {
	return Aggregator{TaxRate: DefaultTaxRate}
}

// LineTotal is quantity × unit price rounded half-up to 2 places.
func LineTotal(p entities.SparePart) decimal.Decimal {
	return lineTotal(p).Round(entities.MoneyScale)
}

func lineTotal(p entities.SparePart) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Subtotal sums the unrounded line totals and rounds the result once.
func Subtotal(parts []entities.SparePart) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i, p := range parts {
		if err := checkLineItem(i, p); err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(lineTotal(p))
	}
	return sum.Round(entities.MoneyScale), nil
}

// Aggregate computes subtotal, tax and total. An empty slice yields zeros.
func (a Aggregator) Aggregate(parts []entities.SparePart) (Totals, error) {
	subtotal, err := Subtotal(parts)
	if err != nil {
		return Totals{}, err
	}
	tax := a.Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

// Tax applies the rate to an already rounded subtotal.
func (a Aggregator) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(a.TaxRate).Round(entities.MoneyScale)
}

// checkLineItem keeps Σ LineTotal equal to Subtotal: with unit prices in
// whole cents every line total is exact.
func checkLineItem(i int, p entities.SparePart) error {
	if strings.TrimSpace(p.Name) == "" {
		return &entities.LineItemError{Index: i, Name: p.Name, Field: "name", Reason: "is required"}
	}
	if p.Quantity <= 0 {
		return &entities.LineItemError{Index: i, Name: p.Name, Field: "quantity", Reason: "must be greater than zero"}
	}
	if p.UnitPrice.IsNegative() {
		return &entities.LineItemError{Index: i, Name: p.Name, Field: "unit_price", Reason: "must not be negative"}
	}
	if !p.UnitPrice.Equal(p.UnitPrice.Round(entities.MoneyScale)) {
		return &entities.LineItemError{Index: i, Name: p.Name, Field: "unit_price", Reason: "must have at most 2 decimal places"}
	}
	return nil
}
