package domain

import (
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
	"github.com/pkg/errors"
)

// PaymentCard represents a card payment. The primary account number must be
// masked: at most the first 6 and last 4 digits, separated with a "*".
type PaymentCard struct {
	primaryAccountNumber string
	cardHolderName       *string
}

// NewPaymentCard creates a payment card after validating the masked primary
// account number.
func NewPaymentCard(primaryAccountNumber string) (*PaymentCard, error) {
	if !maskedPANPattern.MatchString(primaryAccountNumber) {
		return nil, errors.Errorf(
			"invalid primary account number %q, only provide at most the first 6 and last 4 digits, separated with a \"*\"",
			primaryAccountNumber,
		)
	}
	return &PaymentCard{primaryAccountNumber: primaryAccountNumber}, nil
}

// SetCardHolderName sets the card holder name.
func (c *PaymentCard) SetCardHolderName(cardHolderName string) *PaymentCard {
	c.cardHolderName = &cardHolderName
	return c
}

// XML renders the card; the primary account number is always present.
func (c *PaymentCard) XML() *xmldoc.Element {
	e := xmldoc.NewElement("PaymentCard").
		WithTextElement("PrimaryAccountNumber", c.primaryAccountNumber)

	if c.cardHolderName != nil {
		e.WithTextElement("CardHolderName", *c.cardHolderName)
	}

	return e
}
