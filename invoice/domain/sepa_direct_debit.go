package domain

import (
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
)

const (
	maxIBANLength             = 34
	maxBankAccountOwnerLength = 70
	maxCreditorIDLength       = 35
	maxMandateReferenceLength = 35
)

// DefaultDirectDebitType is rendered when no direct debit type was set.
const DefaultDirectDebitType = "B2C"

// SEPADirectDebit represents a SEPA mandate based debit instruction,
// B2B or B2C variant.
type SEPADirectDebit struct {
	directDebitType     *string
	bic                 *string
	iban                *string
	bankAccountOwner    *string
	creditorID          *string
	mandateReference    *string
	debitCollectionDate *string
}

// NewSEPADirectDebit creates an empty SEPA direct debit instruction.
func NewSEPADirectDebit() *SEPADirectDebit {
	return &SEPADirectDebit{}
}

// SetDirectDebitType sets the mandate variant, usually "B2B" or "B2C".
func (d *SEPADirectDebit) SetDirectDebitType(directDebitType string) *SEPADirectDebit {
	d.directDebitType = &directDebitType
	return d
}

// SetBIC sets the bank identifier code. Rejected values leave the record unchanged.
func (d *SEPADirectDebit) SetBIC(bic string) error {
	if err := validateBIC(bic); err != nil {
		return err
	}
	d.bic = &bic
	return nil
}

// SetIBAN sets the debtor account IBAN, at most 34 characters.
func (d *SEPADirectDebit) SetIBAN(iban string) error {
	if err := validateMaxLength("IBAN", iban, maxIBANLength); err != nil {
		return err
	}
	d.iban = &iban
	return nil
}

// SetBankAccountOwner sets the account owner name, at most 70 characters.
func (d *SEPADirectDebit) SetBankAccountOwner(bankAccountOwner string) error {
	if err := validateMaxLength("BankAccountOwner", bankAccountOwner, maxBankAccountOwnerLength); err != nil {
		return err
	}
	d.bankAccountOwner = &bankAccountOwner
	return nil
}

// SetCreditorID sets the SEPA creditor identifier, at most 35 characters.
func (d *SEPADirectDebit) SetCreditorID(creditorID string) error {
	if err := validateMaxLength("CreditorID", creditorID, maxCreditorIDLength); err != nil {
		return err
	}
	d.creditorID = &creditorID
	return nil
}

// SetMandateReference sets the mandate reference, at most 35 characters.
func (d *SEPADirectDebit) SetMandateReference(mandateReference string) error {
	if err := validateMaxLength("MandateReference", mandateReference, maxMandateReferenceLength); err != nil {
		return err
	}
	d.mandateReference = &mandateReference
	return nil
}

// SetDebitCollectionDate sets the collection date in YYYY-MM-DD shape.
// Only the lexical shape is checked.
func (d *SEPADirectDebit) SetDebitCollectionDate(debitCollectionDate string) error {
	if err := validateDate("DebitCollectionDate", debitCollectionDate); err != nil {
		return err
	}
	d.debitCollectionDate = &debitCollectionDate
	return nil
}

// XML renders the instruction. Type is always emitted, defaulting to "B2C";
// unset optional fields are omitted.
func (d *SEPADirectDebit) XML() *xmldoc.Element {
	e := xmldoc.NewElement("SEPADirectDebit")

	directDebitType := DefaultDirectDebitType
	if d.directDebitType != nil {
		directDebitType = *d.directDebitType
	}
	e.WithTextElement("Type", directDebitType)

	if d.bic != nil {
		e.WithTextElement("BIC", *d.bic)
	}
	if d.iban != nil {
		e.WithTextElement("IBAN", *d.iban)
	}
	if d.bankAccountOwner != nil {
		e.WithTextElement("BankAccountOwner", *d.bankAccountOwner)
	}
	if d.creditorID != nil {
		e.WithTextElement("CreditorID", *d.creditorID)
	}
	if d.mandateReference != nil {
		e.WithTextElement("MandateReference", *d.mandateReference)
	}
	if d.debitCollectionDate != nil {
		e.WithTextElement("DebitCollectionDate", *d.debitCollectionDate)
	}

	return e
}
