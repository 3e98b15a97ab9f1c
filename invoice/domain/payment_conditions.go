package domain

import (
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Discount represents an early-payment discount: a percentage granted when
// the invoice is settled by the given date.
type Discount struct {
	PaymentDate string
	Percentage  decimal.Decimal
}

// PaymentConditions represents due date and discount terms.
type PaymentConditions struct {
	dueDate  *string
	discount *Discount
}

// NewPaymentConditions creates empty payment conditions.
func NewPaymentConditions() *PaymentConditions {
	return &PaymentConditions{}
}

// SetDueDate sets the due date in YYYY-MM-DD shape.
func (pc *PaymentConditions) SetDueDate(dueDate string) error {
	if err := validateDate("DueDate", dueDate); err != nil {
		return err
	}
	pc.dueDate = &dueDate
	return nil
}

// SetDiscount sets the early-payment discount.
func (pc *PaymentConditions) SetDiscount(discount Discount) error {
	if err := validateDate("PaymentDate", discount.PaymentDate); err != nil {
		return err
	}
	if discount.Percentage.IsNegative() || discount.Percentage.GreaterThan(oneHundred) {
		return errors.Errorf("Percentage %s is not between 0 and 100", discount.Percentage)
	}
	pc.discount = &discount
	return nil
}

// XML renders the payment conditions; unset parts are omitted.
func (pc *PaymentConditions) XML() *xmldoc.Element {
	e := xmldoc.NewElement("PaymentConditions")

	if pc.dueDate != nil {
		e.WithTextElement("DueDate", *pc.dueDate)
	}
	if pc.discount != nil {
		e.WithElement(xmldoc.NewElement("Discount").
			WithTextElement("PaymentDate", pc.discount.PaymentDate).
			WithTextElement("Percentage", pc.discount.Percentage.String()))
	}

	return e
}
