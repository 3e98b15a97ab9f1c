package domain

import (
	"github.com/ebdocs/ebinvoice/shared/models"
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const maxDescriptionLength = 255

var oneHundred = decimal.NewFromInt(100)

// ListLineItem represents one invoiced position.
type ListLineItem struct {
	description string
	quantity    decimal.Decimal
	unit        string
	unitPrice   models.Money
	taxPercent  decimal.Decimal
}

// NewListLineItem creates a line item. Quantity must not be negative and the
// description is capped at 255 characters.
func NewListLineItem(description string, quantity decimal.Decimal, unit string, unitPrice models.Money) (*ListLineItem, error) {
	if err := validateMaxLength("Description", description, maxDescriptionLength); err != nil {
		return nil, err
	}
	if quantity.IsNegative() {
		return nil, errors.Errorf("Quantity %s must not be negative", quantity)
	}
	if unit == "" {
		return nil, errors.New("Unit must not be empty")
	}
	if unitPrice.IsNegative() {
		return nil, errors.Errorf("UnitPrice %s must not be negative", unitPrice)
	}
	return &ListLineItem{
		description: description,
		quantity:    quantity,
		unit:        unit,
		unitPrice:   unitPrice,
	}, nil
}

// SetTaxPercent sets the tax rate applied to the line, between 0 and 100.
func (li *ListLineItem) SetTaxPercent(taxPercent decimal.Decimal) error {
	if taxPercent.IsNegative() || taxPercent.GreaterThan(oneHundred) {
		return errors.Errorf("TaxPercent %s is not between 0 and 100", taxPercent)
	}
	li.taxPercent = taxPercent
	return nil
}

// LineItemAmount returns quantity times unit price, rounded to two decimals.
func (li *ListLineItem) LineItemAmount() models.Money {
	return li.unitPrice.Multiply(li.quantity).Round()
}

// XML renders the line item.
func (li *ListLineItem) XML() *xmldoc.Element {
	return xmldoc.NewElement("ListLineItem").
		WithTextElement("Description", li.description).
		WithElement(xmldoc.NewElement("Quantity").
			WithText(li.quantity.String()).
			WithAttr("Unit", li.unit)).
		WithTextElement("UnitPrice", li.unitPrice.String()).
		WithTextElement("TaxPercent", li.taxPercent.String()).
		WithTextElement("LineItemAmount", li.LineItemAmount().String())
}

// TaxItem represents the taxable amount accumulated for one tax rate.
type TaxItem struct {
	TaxPercent    decimal.Decimal
	TaxableAmount models.Money
	TaxAmount     models.Money
}

// XML renders the tax item.
func (ti TaxItem) XML() *xmldoc.Element {
	return xmldoc.NewElement("TaxItem").
		WithTextElement("TaxableAmount", ti.TaxableAmount.String()).
		WithTextElement("TaxPercent", ti.TaxPercent.String()).
		WithTextElement("TaxAmount", ti.TaxAmount.String())
}

// Details represents the ordered invoice line items and their derived totals.
// All lines share the currency of the first line added.
type Details struct {
	currency  string
	lineItems []*ListLineItem
}

// NewDetails creates an empty item list.
func NewDetails() *Details {
	return &Details{}
}

// AddLineItem appends a line item. Lines render in insertion order; a line
// in a different currency than the first one is rejected.
func (d *Details) AddLineItem(lineItem *ListLineItem) error {
	if d.currency == "" {
		d.currency = lineItem.unitPrice.Currency
	} else if d.currency != lineItem.unitPrice.Currency {
		return errors.Errorf(
			"line item currency %s doesn't match invoice currency %s",
			lineItem.unitPrice.Currency, d.currency,
		)
	}
	d.lineItems = append(d.lineItems, lineItem)
	return nil
}

// Currency returns the currency shared by all line items, empty while the
// item list is empty.
func (d *Details) Currency() string {
	return d.currency
}

// TaxItems aggregates taxable amounts per tax rate, in first-seen order.
// Tax amounts are rounded to two decimals per rate.
func (d *Details) TaxItems() []TaxItem {
	var order []string
	grouped := make(map[string]*TaxItem)

	for _, lineItem := range d.lineItems {
		key := lineItem.taxPercent.String()
		item, ok := grouped[key]
		if !ok {
			item = &TaxItem{
				TaxPercent:    lineItem.taxPercent,
				TaxableAmount: models.Zero(d.currency),
			}
			grouped[key] = item
			order = append(order, key)
		}
		item.TaxableAmount, _ = item.TaxableAmount.Add(lineItem.LineItemAmount())
	}

	items := make([]TaxItem, 0, len(order))
	for _, key := range order {
		item := grouped[key]
		item.TaxAmount = item.TaxableAmount.Multiply(item.TaxPercent.Div(oneHundred)).Round()
		items = append(items, *item)
	}
	return items
}

// TotalGrossAmount returns the sum of all line amounts plus all tax amounts.
func (d *Details) TotalGrossAmount() models.Money {
	total := models.Zero(d.currency)
	for _, item := range d.TaxItems() {
		total, _ = total.Add(item.TaxableAmount)
		total, _ = total.Add(item.TaxAmount)
	}
	return total
}

// XML renders the item list.
func (d *Details) XML() *xmldoc.Element {
	itemList := xmldoc.NewElement("ItemList")
	for _, lineItem := range d.lineItems {
		itemList.WithElement(lineItem.XML())
	}
	return xmldoc.NewElement("Details").WithElement(itemList)
}
