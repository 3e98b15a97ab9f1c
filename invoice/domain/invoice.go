package domain

import (
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
	"github.com/pkg/errors"
)

// DefaultDocumentType is used when no document type was set.
const DefaultDocumentType = "Invoice"

// Invoice represents the complete e-invoice document that embeds the
// payment method fragment.
type Invoice struct {
	generatingSystem  *string
	documentType      string
	invoiceCurrency   *string
	language          *string
	invoiceNumber     string
	invoiceDate       string
	deliveryDate      *string
	comment           *string
	biller            *Biller
	invoiceRecipient  *InvoiceRecipient
	details           *Details
	paymentMethod     *PaymentMethod
	paymentConditions *PaymentConditions
}

// NewInvoice creates an invoice with its number and date. The payment
// method defaults to NoPayment until one is set.
func NewInvoice(invoiceNumber, invoiceDate string) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, errors.New("InvoiceNumber must not be empty")
	}
	if err := validateDate("InvoiceDate", invoiceDate); err != nil {
		return nil, err
	}
	return &Invoice{
		invoiceNumber: invoiceNumber,
		invoiceDate:   invoiceDate,
		documentType:  DefaultDocumentType,
		paymentMethod: NoPayment(),
	}, nil
}

// SetGeneratingSystem names the system that produced the document.
func (inv *Invoice) SetGeneratingSystem(generatingSystem string) *Invoice {
	inv.generatingSystem = &generatingSystem
	return inv
}

// SetDocumentType overrides the default "Invoice" document type.
func (inv *Invoice) SetDocumentType(documentType string) *Invoice {
	inv.documentType = documentType
	return inv
}

// SetInvoiceCurrency sets the ISO 4217 currency code, exactly 3 characters.
func (inv *Invoice) SetInvoiceCurrency(currency string) error {
	if err := validateExactLength("InvoiceCurrency", currency, 3); err != nil {
		return err
	}
	inv.invoiceCurrency = &currency
	return nil
}

// SetLanguage sets the ISO 639-1 document language, exactly 2 characters.
func (inv *Invoice) SetLanguage(language string) error {
	if err := validateExactLength("Language", language, 2); err != nil {
		return err
	}
	inv.language = &language
	return nil
}

// SetDeliveryDate sets the delivery date in YYYY-MM-DD shape.
func (inv *Invoice) SetDeliveryDate(deliveryDate string) error {
	if err := validateDate("DeliveryDate", deliveryDate); err != nil {
		return err
	}
	inv.deliveryDate = &deliveryDate
	return nil
}

// SetComment sets the document level comment.
func (inv *Invoice) SetComment(comment string) *Invoice {
	inv.comment = &comment
	return inv
}

// SetBiller sets the invoicing party.
func (inv *Invoice) SetBiller(biller *Biller) *Invoice {
	inv.biller = biller
	return inv
}

// SetInvoiceRecipient sets the invoiced party.
func (inv *Invoice) SetInvoiceRecipient(recipient *InvoiceRecipient) *Invoice {
	inv.invoiceRecipient = recipient
	return inv
}

// SetDetails sets the invoice line items. The details' currency must match
// the invoice currency when both are set.
func (inv *Invoice) SetDetails(details *Details) error {
	if inv.invoiceCurrency != nil && details.Currency() != "" && details.Currency() != *inv.invoiceCurrency {
		return errors.Errorf(
			"details currency %s doesn't match invoice currency %s",
			details.Currency(), *inv.invoiceCurrency,
		)
	}
	inv.details = details
	return nil
}

// SetPaymentMethod sets the payment method fragment.
func (inv *Invoice) SetPaymentMethod(paymentMethod *PaymentMethod) *Invoice {
	inv.paymentMethod = paymentMethod
	return inv
}

// SetPaymentConditions sets the payment conditions.
func (inv *Invoice) SetPaymentConditions(conditions *PaymentConditions) *Invoice {
	inv.paymentConditions = conditions
	return inv
}

// XML renders the document with a fixed element order.
func (inv *Invoice) XML() *xmldoc.Element {
	e := xmldoc.NewElement("Invoice")

	if inv.generatingSystem != nil {
		e.WithAttr("GeneratingSystem", *inv.generatingSystem)
	}
	e.WithAttr("DocumentType", inv.documentType)
	if inv.invoiceCurrency != nil {
		e.WithAttr("InvoiceCurrency", *inv.invoiceCurrency)
	}
	if inv.language != nil {
		e.WithAttr("Language", *inv.language)
	}

	e.WithTextElement("InvoiceNumber", inv.invoiceNumber)
	e.WithTextElement("InvoiceDate", inv.invoiceDate)

	if inv.deliveryDate != nil {
		e.WithElement(xmldoc.NewElement("Delivery").
			WithTextElement("Date", *inv.deliveryDate))
	}
	if inv.biller != nil {
		e.WithElement(inv.biller.XML())
	}
	if inv.invoiceRecipient != nil {
		e.WithElement(inv.invoiceRecipient.XML())
	}
	if inv.details != nil {
		e.WithElement(inv.details.XML())

		tax := xmldoc.NewElement("Tax")
		for _, item := range inv.details.TaxItems() {
			tax.WithElement(item.XML())
		}
		e.WithElement(tax)

		total := inv.details.TotalGrossAmount()
		e.WithTextElement("TotalGrossAmount", total.String())
		e.WithTextElement("PayableAmount", total.String())
	}

	e.WithElement(inv.paymentMethod.XML())

	if inv.paymentConditions != nil {
		e.WithElement(inv.paymentConditions.XML())
	}
	if inv.comment != nil {
		e.WithTextElement("Comment", *inv.comment)
	}

	return e
}

// Render produces the full document markup.
func (inv *Invoice) Render() string {
	return inv.XML().String()
}
