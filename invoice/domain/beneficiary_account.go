package domain

import (
	"strconv"

	"github.com/ebdocs/ebinvoice/shared/xmldoc"
)

const maxBankNameLength = 255

// BankCode represents a national bank code qualified by the ISO 3166-1
// country code it belongs to.
type BankCode struct {
	Code     int64
	CodeType string
}

// NewBankCode creates a bank code. The code type is validated when the
// bank code is attached to a beneficiary account.
func NewBankCode(code int64, codeType string) BankCode {
	return BankCode{Code: code, CodeType: codeType}
}

// BeneficiaryAccount represents the receiving account of a universal bank
// transaction.
type BeneficiaryAccount struct {
	bankName          *string
	bankCode          *BankCode
	bic               *string
	bankAccountNumber *string
	iban              *string
	bankAccountOwner  *string
}

// NewBeneficiaryAccount creates an empty beneficiary account.
func NewBeneficiaryAccount() *BeneficiaryAccount {
	return &BeneficiaryAccount{}
}

// SetBankName sets the bank name, at most 255 characters.
func (a *BeneficiaryAccount) SetBankName(bankName string) error {
	if err := validateMaxLength("BankName", bankName, maxBankNameLength); err != nil {
		return err
	}
	a.bankName = &bankName
	return nil
}

// SetBankCode sets the bank code. The code type must be exactly 2 characters.
func (a *BeneficiaryAccount) SetBankCode(bankCode BankCode) error {
	if err := validateExactLength("BankCodeType", bankCode.CodeType, 2); err != nil {
		return err
	}
	a.bankCode = &bankCode
	return nil
}

// SetBIC sets the bank identifier code.
func (a *BeneficiaryAccount) SetBIC(bic string) error {
	if err := validateBIC(bic); err != nil {
		return err
	}
	a.bic = &bic
	return nil
}

// SetBankAccountNumber sets the plain account number. The schema puts no
// constraint on it.
func (a *BeneficiaryAccount) SetBankAccountNumber(bankAccountNumber string) *BeneficiaryAccount {
	a.bankAccountNumber = &bankAccountNumber
	return a
}

// SetIBAN sets the account IBAN, at most 34 characters.
func (a *BeneficiaryAccount) SetIBAN(iban string) error {
	if err := validateMaxLength("IBAN", iban, maxIBANLength); err != nil {
		return err
	}
	a.iban = &iban
	return nil
}

// SetBankAccountOwner sets the account owner name, at most 70 characters.
func (a *BeneficiaryAccount) SetBankAccountOwner(bankAccountOwner string) error {
	if err := validateMaxLength("BankAccountOwner", bankAccountOwner, maxBankAccountOwnerLength); err != nil {
		return err
	}
	a.bankAccountOwner = &bankAccountOwner
	return nil
}

// XML renders the account; unset optional fields are omitted.
func (a *BeneficiaryAccount) XML() *xmldoc.Element {
	e := xmldoc.NewElement("BeneficiaryAccount")

	if a.bankName != nil {
		e.WithTextElement("BankName", *a.bankName)
	}
	if a.bankCode != nil {
		e.WithElement(xmldoc.NewElement("BankCode").
			WithText(strconv.FormatInt(a.bankCode.Code, 10)).
			WithAttr("BankCodeType", a.bankCode.CodeType))
	}
	if a.bic != nil {
		e.WithTextElement("BIC", *a.bic)
	}
	if a.bankAccountNumber != nil {
		e.WithTextElement("BankAccountNr", *a.bankAccountNumber)
	}
	if a.iban != nil {
		e.WithTextElement("IBAN", *a.iban)
	}
	if a.bankAccountOwner != nil {
		e.WithTextElement("BankAccountOwner", *a.bankAccountOwner)
	}

	return e
}
