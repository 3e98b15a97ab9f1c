package domain

import (
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
)

// PaymentMethodType represents the active payment method variant
type PaymentMethodType string

const (
	PaymentMethodTypeNoPayment                PaymentMethodType = "no_payment"
	PaymentMethodTypeSEPADirectDebit          PaymentMethodType = "sepa_direct_debit"
	PaymentMethodTypeBeneficiaryAccount       PaymentMethodType = "universal_bank_transaction_beneficiary_account"
	PaymentMethodTypeUniversalBankTransaction PaymentMethodType = "universal_bank_transaction"
	PaymentMethodTypePaymentCard              PaymentMethodType = "payment_card"
	PaymentMethodTypeOtherPayment             PaymentMethodType = "other_payment"
)

func (pt PaymentMethodType) String() string {
	return string(pt)
}

// Every record shares the single serialization contract.
var (
	_ xmldoc.Renderer = (*PaymentMethod)(nil)
	_ xmldoc.Renderer = (*SEPADirectDebit)(nil)
	_ xmldoc.Renderer = (*BeneficiaryAccount)(nil)
	_ xmldoc.Renderer = (*UniversalBankTransaction)(nil)
	_ xmldoc.Renderer = (*PaymentCard)(nil)
	_ xmldoc.Renderer = (*Invoice)(nil)
)

// PaymentMethod wraps exactly one payment variant plus an optional
// free-text comment. The zero value renders as NoPayment.
type PaymentMethod struct {
	methodType PaymentMethodType
	comment    *string

	sepaDirectDebit          *SEPADirectDebit
	beneficiaryAccount       *BeneficiaryAccount
	universalBankTransaction *UniversalBankTransaction
	paymentCard              *PaymentCard
}

// NoPayment creates a payment method carrying no payment instruction.
func NoPayment() *PaymentMethod {
	return &PaymentMethod{methodType: PaymentMethodTypeNoPayment}
}

// OtherPayment creates a payment method for instructions outside the schema.
func OtherPayment() *PaymentMethod {
	return &PaymentMethod{methodType: PaymentMethodTypeOtherPayment}
}

// SEPADirectDebitPayment wraps a SEPA direct debit instruction.
func SEPADirectDebitPayment(directDebit *SEPADirectDebit) *PaymentMethod {
	return &PaymentMethod{
		methodType:      PaymentMethodTypeSEPADirectDebit,
		sepaDirectDebit: directDebit,
	}
}

// BeneficiaryAccountPayment wraps a bare beneficiary account, used when no
// outer transaction wrapper is needed.
func BeneficiaryAccountPayment(account *BeneficiaryAccount) *PaymentMethod {
	return &PaymentMethod{
		methodType:         PaymentMethodTypeBeneficiaryAccount,
		beneficiaryAccount: account,
	}
}

// UniversalBankTransactionPayment wraps a universal bank transaction.
func UniversalBankTransactionPayment(transaction *UniversalBankTransaction) *PaymentMethod {
	return &PaymentMethod{
		methodType:               PaymentMethodTypeUniversalBankTransaction,
		universalBankTransaction: transaction,
	}
}

// PaymentCardPayment wraps a payment card instruction.
func PaymentCardPayment(card *PaymentCard) *PaymentMethod {
	return &PaymentMethod{
		methodType:  PaymentMethodTypePaymentCard,
		paymentCard: card,
	}
}

// WithComment sets the free-text comment rendered ahead of the variant.
func (p *PaymentMethod) WithComment(comment string) *PaymentMethod {
	p.comment = &comment
	return p
}

// Type returns the active variant.
func (p *PaymentMethod) Type() PaymentMethodType {
	if p.methodType == "" {
		return PaymentMethodTypeNoPayment
	}
	return p.methodType
}

// XML renders the wrapper element with the active variant nested inside.
func (p *PaymentMethod) XML() *xmldoc.Element {
	e := xmldoc.NewElement("PaymentMethod")

	if p.comment != nil {
		e.WithTextElement("Comment", *p.comment)
	}

	e.WithElement(p.methodXML())
	return e
}

// Render produces the markup fragment embedded in the invoice document.
func (p *PaymentMethod) Render() string {
	return p.XML().String()
}

func (p *PaymentMethod) methodXML() *xmldoc.Element {
	switch p.methodType {
	case PaymentMethodTypeSEPADirectDebit:
		return p.sepaDirectDebit.XML()
	case PaymentMethodTypeBeneficiaryAccount:
		return p.beneficiaryAccount.XML()
	case PaymentMethodTypeUniversalBankTransaction:
		return p.universalBankTransaction.XML()
	case PaymentMethodTypePaymentCard:
		return p.paymentCard.XML()
	case PaymentMethodTypeOtherPayment:
		return xmldoc.NewElement("OtherPayment")
	default:
		return xmldoc.NewElement("NoPayment")
	}
}
