package domain

import (
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
	"github.com/pkg/errors"
)

const maxOrderReferenceLength = 255

// Biller represents the invoicing party.
type Biller struct {
	vatIdentificationNumber string
	address                 *Address
}

// NewBiller creates a biller with its VAT identification number.
func NewBiller(vatIdentificationNumber string) (*Biller, error) {
	if vatIdentificationNumber == "" {
		return nil, errors.New("VATIdentificationNumber must not be empty")
	}
	return &Biller{vatIdentificationNumber: vatIdentificationNumber}, nil
}

// SetAddress sets the biller address.
func (b *Biller) SetAddress(address *Address) *Biller {
	b.address = address
	return b
}

// XML renders the biller.
func (b *Biller) XML() *xmldoc.Element {
	e := xmldoc.NewElement("Biller").
		WithTextElement("VATIdentificationNumber", b.vatIdentificationNumber)

	if b.address != nil {
		e.WithElement(b.address.XML())
	}

	return e
}

// InvoiceRecipient represents the invoiced party.
type InvoiceRecipient struct {
	vatIdentificationNumber string
	orderReference          *string
	address                 *Address
}

// NewInvoiceRecipient creates a recipient with its VAT identification number.
func NewInvoiceRecipient(vatIdentificationNumber string) (*InvoiceRecipient, error) {
	if vatIdentificationNumber == "" {
		return nil, errors.New("VATIdentificationNumber must not be empty")
	}
	return &InvoiceRecipient{vatIdentificationNumber: vatIdentificationNumber}, nil
}

// SetOrderReference sets the recipient's order reference, at most 255 characters.
func (r *InvoiceRecipient) SetOrderReference(orderReference string) error {
	if err := validateMaxLength("OrderReference", orderReference, maxOrderReferenceLength); err != nil {
		return err
	}
	r.orderReference = &orderReference
	return nil
}

// SetAddress sets the recipient address.
func (r *InvoiceRecipient) SetAddress(address *Address) *InvoiceRecipient {
	r.address = address
	return r
}

// XML renders the recipient.
func (r *InvoiceRecipient) XML() *xmldoc.Element {
	e := xmldoc.NewElement("InvoiceRecipient").
		WithTextElement("VATIdentificationNumber", r.vatIdentificationNumber)

	if r.orderReference != nil {
		e.WithTextElement("OrderReference", *r.orderReference)
	}
	if r.address != nil {
		e.WithElement(r.address.XML())
	}

	return e
}
