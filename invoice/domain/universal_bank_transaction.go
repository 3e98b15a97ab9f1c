package domain

import (
	"strconv"

	"github.com/ebdocs/ebinvoice/shared/xmldoc"
)

const maxPaymentReferenceLength = 35

// UniversalBankTransaction represents a plain bank transfer to one or more
// beneficiary accounts.
type UniversalBankTransaction struct {
	consolidatorPayable      bool
	beneficiaryAccounts      []*BeneficiaryAccount
	paymentReference         *string
	paymentReferenceChecksum *string
}

// NewUniversalBankTransaction creates an empty bank transaction.
func NewUniversalBankTransaction() *UniversalBankTransaction {
	return &UniversalBankTransaction{}
}

// SetConsolidatorPayable marks the transaction as payable through a payment
// consolidator. Defaults to false.
func (t *UniversalBankTransaction) SetConsolidatorPayable(consolidatorPayable bool) *UniversalBankTransaction {
	t.consolidatorPayable = consolidatorPayable
	return t
}

// AddBeneficiaryAccount appends an account. Accounts render in insertion order.
func (t *UniversalBankTransaction) AddBeneficiaryAccount(account *BeneficiaryAccount) *UniversalBankTransaction {
	t.beneficiaryAccounts = append(t.beneficiaryAccounts, account)
	return t
}

// SetPaymentReference sets the remittance reference, at most 35 characters.
func (t *UniversalBankTransaction) SetPaymentReference(paymentReference string) error {
	if err := validateMaxLength("PaymentReference", paymentReference, maxPaymentReferenceLength); err != nil {
		return err
	}
	t.paymentReference = &paymentReference
	return nil
}

// SetPaymentReferenceChecksum sets the checksum rendered on the payment
// reference. It is only emitted when a payment reference is present.
func (t *UniversalBankTransaction) SetPaymentReferenceChecksum(checksum string) *UniversalBankTransaction {
	t.paymentReferenceChecksum = &checksum
	return t
}

// XML renders the transaction. ConsolidatorPayable is always emitted as the
// literal "true" or "false".
func (t *UniversalBankTransaction) XML() *xmldoc.Element {
	e := xmldoc.NewElement("UniversalBankTransaction").
		WithAttr("ConsolidatorPayable", strconv.FormatBool(t.consolidatorPayable))

	for _, account := range t.beneficiaryAccounts {
		e.WithElement(account.XML())
	}

	if t.paymentReference != nil {
		reference := xmldoc.NewElement("PaymentReference").WithText(*t.paymentReference)
		if t.paymentReferenceChecksum != nil {
			reference.WithAttr("CheckSum", *t.paymentReferenceChecksum)
		}
		e.WithElement(reference)
	}

	return e
}
