package main

import (
	"github.com/ebdocs/ebinvoice/invoice/config"
	"github.com/ebdocs/ebinvoice/invoice/domain"
	"github.com/ebdocs/ebinvoice/shared/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// invoiceDocument mirrors the JSON description of a single invoice.
type invoiceDocument struct {
	InvoiceNumber string              `json:"invoice_number"`
	InvoiceDate   string              `json:"invoice_date"`
	DeliveryDate  string              `json:"delivery_date"`
	Currency      string              `json:"currency"`
	Language      string              `json:"language"`
	Comment       string              `json:"comment"`
	Biller        *partyDocument      `json:"biller"`
	Recipient     *partyDocument      `json:"recipient"`
	Lines         []lineDocument      `json:"lines"`
	Payment       *paymentDocument    `json:"payment"`
	Conditions    *conditionsDocument `json:"conditions"`
}

type partyDocument struct {
	VATID          string `json:"vat_id"`
	Name           string `json:"name"`
	Street         string `json:"street"`
	Town           string `json:"town"`
	ZIP            string `json:"zip"`
	Country        string `json:"country"`
	CountryCode    string `json:"country_code"`
	OrderReference string `json:"order_reference"`
}

type lineDocument struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unit_price"`
	TaxPercent  string `json:"tax_percent"`
}

type paymentDocument struct {
	Method   string            `json:"method"`
	Comment  string            `json:"comment"`
	SEPA     *sepaDocument     `json:"sepa"`
	Account  *accountDocument  `json:"account"`
	Transfer *transferDocument `json:"transfer"`
	Card     *cardDocument     `json:"card"`
}

type sepaDocument struct {
	Type                string `json:"type"`
	BIC                 string `json:"bic"`
	IBAN                string `json:"iban"`
	BankAccountOwner    string `json:"bank_account_owner"`
	CreditorID          string `json:"creditor_id"`
	MandateReference    string `json:"mandate_reference"`
	DebitCollectionDate string `json:"debit_collection_date"`
}

type accountDocument struct {
	BankName          string `json:"bank_name"`
	BankCode          int64  `json:"bank_code"`
	BankCodeType      string `json:"bank_code_type"`
	BIC               string `json:"bic"`
	BankAccountNumber string `json:"bank_account_number"`
	IBAN              string `json:"iban"`
	BankAccountOwner  string `json:"bank_account_owner"`
}

type transferDocument struct {
	ConsolidatorPayable      bool              `json:"consolidator_payable"`
	Accounts                 []accountDocument `json:"accounts"`
	PaymentReference         string            `json:"payment_reference"`
	PaymentReferenceChecksum string            `json:"payment_reference_checksum"`
}

type cardDocument struct {
	PrimaryAccountNumber string `json:"primary_account_number"`
	CardHolderName       string `json:"card_holder_name"`
}

type conditionsDocument struct {
	DueDate         string `json:"due_date"`
	DiscountDate    string `json:"discount_date"`
	DiscountPercent string `json:"discount_percent"`
}

// buildInvoice assembles a domain invoice from the JSON description,
// falling back to the configured defaults for unset document fields.
func buildInvoice(cfg *config.Config, doc *invoiceDocument) (*domain.Invoice, error) {
	invoiceNumber := doc.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = models.GenerateUUID().String()
	}

	inv, err := domain.NewInvoice(invoiceNumber, doc.InvoiceDate)
	if err != nil {
		return nil, err
	}

	inv.SetGeneratingSystem(cfg.GeneratingSystem)
	if cfg.DocumentType != "" {
		inv.SetDocumentType(cfg.DocumentType)
	}

	currency := doc.Currency
	if currency == "" {
		currency = cfg.Currency
	}
	if err := inv.SetInvoiceCurrency(currency); err != nil {
		return nil, err
	}

	language := doc.Language
	if language == "" {
		language = cfg.Language
	}
	if err := inv.SetLanguage(language); err != nil {
		return nil, err
	}

	if doc.DeliveryDate != "" {
		if err := inv.SetDeliveryDate(doc.DeliveryDate); err != nil {
			return nil, err
		}
	}
	if doc.Comment != "" {
		inv.SetComment(doc.Comment)
	}

	if doc.Biller != nil {
		biller, err := buildBiller(doc.Biller)
		if err != nil {
			return nil, errors.Wrap(err, "invalid biller")
		}
		inv.SetBiller(biller)
	}

	if doc.Recipient != nil {
		recipient, err := buildRecipient(doc.Recipient)
		if err != nil {
			return nil, errors.Wrap(err, "invalid recipient")
		}
		inv.SetInvoiceRecipient(recipient)
	}

	if len(doc.Lines) > 0 {
		details, err := buildDetails(doc.Lines, currency)
		if err != nil {
			return nil, errors.Wrap(err, "invalid line items")
		}
		if err := inv.SetDetails(details); err != nil {
			return nil, err
		}
	}

	if doc.Payment != nil {
		method, err := buildPaymentMethod(doc.Payment)
		if err != nil {
			return nil, errors.Wrap(err, "invalid payment method")
		}
		inv.SetPaymentMethod(method)
	}

	if doc.Conditions != nil {
		conditions, err := buildConditions(doc.Conditions)
		if err != nil {
			return nil, errors.Wrap(err, "invalid payment conditions")
		}
		inv.SetPaymentConditions(conditions)
	}

	return inv, nil
}

func buildAddress(doc *partyDocument) (*domain.Address, error) {
	address := domain.NewAddress()
	if doc.Name != "" {
		if err := address.SetName(doc.Name); err != nil {
			return nil, err
		}
	}
	if doc.Street != "" {
		address.SetStreet(doc.Street)
	}
	if doc.Town != "" {
		address.SetTown(doc.Town)
	}
	if doc.ZIP != "" {
		address.SetZIP(doc.ZIP)
	}
	if doc.CountryCode != "" {
		if err := address.SetCountry(domain.Country{Name: doc.Country, Code: doc.CountryCode}); err != nil {
			return nil, err
		}
	}
	return address, nil
}

func buildBiller(doc *partyDocument) (*domain.Biller, error) {
	biller, err := domain.NewBiller(doc.VATID)
	if err != nil {
		return nil, err
	}
	address, err := buildAddress(doc)
	if err != nil {
		return nil, err
	}
	return biller.SetAddress(address), nil
}

func buildRecipient(doc *partyDocument) (*domain.InvoiceRecipient, error) {
	recipient, err := domain.NewInvoiceRecipient(doc.VATID)
	if err != nil {
		return nil, err
	}
	if doc.OrderReference != "" {
		if err := recipient.SetOrderReference(doc.OrderReference); err != nil {
			return nil, err
		}
	}
	address, err := buildAddress(doc)
	if err != nil {
		return nil, err
	}
	return recipient.SetAddress(address), nil
}

func buildDetails(lines []lineDocument, currency string) (*domain.Details, error) {
	details := domain.NewDetails()

	for _, line := range lines {
		quantity, err := decimal.NewFromString(line.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid quantity %q", line.Quantity)
		}
		unitPrice, err := decimal.NewFromString(line.UnitPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid unit price %q", line.UnitPrice)
		}

		lineItem, err := domain.NewListLineItem(line.Description, quantity, line.Unit, models.NewMoney(unitPrice, currency))
		if err != nil {
			return nil, err
		}

		if line.TaxPercent != "" {
			taxPercent, err := decimal.NewFromString(line.TaxPercent)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid tax percent %q", line.TaxPercent)
			}
			if err := lineItem.SetTaxPercent(taxPercent); err != nil {
				return nil, err
			}
		}

		if err := details.AddLineItem(lineItem); err != nil {
			return nil, err
		}
	}

	return details, nil
}

func buildPaymentMethod(doc *paymentDocument) (*domain.PaymentMethod, error) {
	var method *domain.PaymentMethod

	switch domain.PaymentMethodType(doc.Method) {
	case domain.PaymentMethodTypeNoPayment, domain.PaymentMethodType(""):
		method = domain.NoPayment()
	case domain.PaymentMethodTypeOtherPayment:
		method = domain.OtherPayment()
	case domain.PaymentMethodTypeSEPADirectDebit:
		directDebit, err := buildSEPADirectDebit(doc.SEPA)
		if err != nil {
			return nil, err
		}
		method = domain.SEPADirectDebitPayment(directDebit)
	case domain.PaymentMethodTypeBeneficiaryAccount:
		account, err := buildBeneficiaryAccount(doc.Account)
		if err != nil {
			return nil, err
		}
		method = domain.BeneficiaryAccountPayment(account)
	case domain.PaymentMethodTypeUniversalBankTransaction:
		transaction, err := buildUniversalBankTransaction(doc.Transfer)
		if err != nil {
			return nil, err
		}
		method = domain.UniversalBankTransactionPayment(transaction)
	case domain.PaymentMethodTypePaymentCard:
		card, err := buildPaymentCard(doc.Card)
		if err != nil {
			return nil, err
		}
		method = domain.PaymentCardPayment(card)
	default:
		return nil, errors.Errorf("unknown payment method type %q", doc.Method)
	}

	if doc.Comment != "" {
		method.WithComment(doc.Comment)
	}
	return method, nil
}

func buildSEPADirectDebit(doc *sepaDocument) (*domain.SEPADirectDebit, error) {
	if doc == nil {
		return nil, errors.New("sepa section is missing")
	}

	directDebit := domain.NewSEPADirectDebit()
	if doc.Type != "" {
		directDebit.SetDirectDebitType(doc.Type)
	}
	if doc.BIC != "" {
		if err := directDebit.SetBIC(doc.BIC); err != nil {
			return nil, err
		}
	}
	if doc.IBAN != "" {
		if err := directDebit.SetIBAN(doc.IBAN); err != nil {
			return nil, err
		}
	}
	if doc.BankAccountOwner != "" {
		if err := directDebit.SetBankAccountOwner(doc.BankAccountOwner); err != nil {
			return nil, err
		}
	}
	if doc.CreditorID != "" {
		if err := directDebit.SetCreditorID(doc.CreditorID); err != nil {
			return nil, err
		}
	}
	if doc.MandateReference != "" {
		if err := directDebit.SetMandateReference(doc.MandateReference); err != nil {
			return nil, err
		}
	}
	if doc.DebitCollectionDate != "" {
		if err := directDebit.SetDebitCollectionDate(doc.DebitCollectionDate); err != nil {
			return nil, err
		}
	}
	return directDebit, nil
}

func buildBeneficiaryAccount(doc *accountDocument) (*domain.BeneficiaryAccount, error) {
	if doc == nil {
		return nil, errors.New("account section is missing")
	}

	account := domain.NewBeneficiaryAccount()
	if doc.BankName != "" {
		if err := account.SetBankName(doc.BankName); err != nil {
			return nil, err
		}
	}
	if doc.BankCodeType != "" {
		if err := account.SetBankCode(domain.NewBankCode(doc.BankCode, doc.BankCodeType)); err != nil {
			return nil, err
		}
	}
	if doc.BIC != "" {
		if err := account.SetBIC(doc.BIC); err != nil {
			return nil, err
		}
	}
	if doc.BankAccountNumber != "" {
		account.SetBankAccountNumber(doc.BankAccountNumber)
	}
	if doc.IBAN != "" {
		if err := account.SetIBAN(doc.IBAN); err != nil {
			return nil, err
		}
	}
	if doc.BankAccountOwner != "" {
		if err := account.SetBankAccountOwner(doc.BankAccountOwner); err != nil {
			return nil, err
		}
	}
	return account, nil
}

func buildUniversalBankTransaction(doc *transferDocument) (*domain.UniversalBankTransaction, error) {
	if doc == nil {
		return nil, errors.New("transfer section is missing")
	}

	transaction := domain.NewUniversalBankTransaction().
		SetConsolidatorPayable(doc.ConsolidatorPayable)

	for i := range doc.Accounts {
		account, err := buildBeneficiaryAccount(&doc.Accounts[i])
		if err != nil {
			return nil, err
		}
		transaction.AddBeneficiaryAccount(account)
	}

	if doc.PaymentReference != "" {
		if err := transaction.SetPaymentReference(doc.PaymentReference); err != nil {
			return nil, err
		}
	}
	if doc.PaymentReferenceChecksum != "" {
		transaction.SetPaymentReferenceChecksum(doc.PaymentReferenceChecksum)
	}
	return transaction, nil
}

func buildPaymentCard(doc *cardDocument) (*domain.PaymentCard, error) {
	if doc == nil {
		return nil, errors.New("card section is missing")
	}

	card, err := domain.NewPaymentCard(doc.PrimaryAccountNumber)
	if err != nil {
		return nil, err
	}
	if doc.CardHolderName != "" {
		card.SetCardHolderName(doc.CardHolderName)
	}
	return card, nil
}

func buildConditions(doc *conditionsDocument) (*domain.PaymentConditions, error) {
	conditions := domain.NewPaymentConditions()

	if doc.DueDate != "" {
		if err := conditions.SetDueDate(doc.DueDate); err != nil {
			return nil, err
		}
	}
	if doc.DiscountDate != "" {
		percentage, err := decimal.NewFromString(doc.DiscountPercent)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid discount percent %q", doc.DiscountPercent)
		}
		if err := conditions.SetDiscount(domain.Discount{PaymentDate: doc.DiscountDate, Percentage: percentage}); err != nil {
			return nil, err
		}
	}
	return conditions, nil
}
