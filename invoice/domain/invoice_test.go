package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice_Validation(t *testing.T) {
	_, err := NewInvoice("", "2020-01-01")
	assert.Error(t, err)

	_, err = NewInvoice("R-1", "01.01.2020")
	assert.Error(t, err)

	inv, err := NewInvoice("R-1", "2020-01-01")
	require.NoError(t, err)
	assert.NotNil(t, inv)
}

func TestInvoice_FieldValidation(t *testing.T) {
	inv, err := NewInvoice("R-1", "2020-01-01")
	require.NoError(t, err)

	assert.Error(t, inv.SetInvoiceCurrency("EURO"))
	assert.NoError(t, inv.SetInvoiceCurrency("EUR"))

	assert.Error(t, inv.SetLanguage("ger"))
	assert.NoError(t, inv.SetLanguage("de"))

	assert.Error(t, inv.SetDeliveryDate("2020-1-1"))
	assert.NoError(t, inv.SetDeliveryDate("2020-02-02"))
}

func TestInvoice_DefaultPaymentMethodIsNoPayment(t *testing.T) {
	inv, err := NewInvoice("R-1", "2020-01-01")
	require.NoError(t, err)

	assert.Contains(t, inv.Render(), "<PaymentMethod><NoPayment></NoPayment></PaymentMethod>")
}

func TestInvoice_SetDetailsRejectsCurrencyMismatch(t *testing.T) {
	inv, err := NewInvoice("R-1", "2020-01-01")
	require.NoError(t, err)
	require.NoError(t, inv.SetInvoiceCurrency("EUR"))

	details := NewDetails()
	require.NoError(t, details.AddLineItem(mustLineItem(t, "a", "1", "STK", "10", "20", "USD")))

	assert.Error(t, inv.SetDetails(details))
}

func TestInvoice_Render(t *testing.T) {
	inv, err := NewInvoice("R-2020-0042", "2020-01-01")
	require.NoError(t, err)
	inv.SetGeneratingSystem("ebinvoice")
	require.NoError(t, inv.SetInvoiceCurrency("EUR"))
	require.NoError(t, inv.SetLanguage("de"))
	require.NoError(t, inv.SetDeliveryDate("2020-01-15"))

	billerAddress := NewAddress()
	require.NoError(t, billerAddress.SetName("Muster GmbH"))
	billerAddress.SetStreet("Hauptstrasse 1").SetTown("Wien").SetZIP("1010")
	require.NoError(t, billerAddress.SetCountry(Country{Name: "Österreich", Code: "AT"}))

	biller, err := NewBiller("ATU12345678")
	require.NoError(t, err)
	biller.SetAddress(billerAddress)
	inv.SetBiller(biller)

	recipient, err := NewInvoiceRecipient("ATU87654321")
	require.NoError(t, err)
	require.NoError(t, recipient.SetOrderReference("PO-77"))
	inv.SetInvoiceRecipient(recipient)

	details := NewDetails()
	require.NoError(t, details.AddLineItem(mustLineItem(t, "hosting", "1", "STK", "100", "20", "EUR")))
	require.NoError(t, inv.SetDetails(details))

	directDebit := NewSEPADirectDebit()
	require.NoError(t, directDebit.SetIBAN("AT491200011111111111"))
	inv.SetPaymentMethod(SEPADirectDebitPayment(directDebit))

	conditions := NewPaymentConditions()
	require.NoError(t, conditions.SetDueDate("2020-02-01"))
	require.NoError(t, conditions.SetDiscount(Discount{
		PaymentDate: "2020-01-20",
		Percentage:  decimal.NewFromInt(2),
	}))
	inv.SetPaymentConditions(conditions)
	inv.SetComment("Vielen Dank")

	rendered := inv.Render()

	assert.True(t, strings.HasPrefix(rendered,
		`<Invoice GeneratingSystem="ebinvoice" DocumentType="Invoice" InvoiceCurrency="EUR" Language="de">`))
	assert.Contains(t, rendered, "<InvoiceNumber>R-2020-0042</InvoiceNumber><InvoiceDate>2020-01-01</InvoiceDate>")
	assert.Contains(t, rendered, "<Delivery><Date>2020-01-15</Date></Delivery>")
	assert.Contains(t, rendered,
		"<Biller><VATIdentificationNumber>ATU12345678</VATIdentificationNumber>"+
			"<Address><Name>Muster GmbH</Name><Street>Hauptstrasse 1</Street><Town>Wien</Town>"+
			`<ZIP>1010</ZIP><Country CountryCode="AT">Österreich</Country></Address></Biller>`)
	assert.Contains(t, rendered,
		"<InvoiceRecipient><VATIdentificationNumber>ATU87654321</VATIdentificationNumber>"+
			"<OrderReference>PO-77</OrderReference></InvoiceRecipient>")
	assert.Contains(t, rendered,
		"<Tax><TaxItem><TaxableAmount>100.00</TaxableAmount><TaxPercent>20</TaxPercent>"+
			"<TaxAmount>20.00</TaxAmount></TaxItem></Tax>")
	assert.Contains(t, rendered, "<TotalGrossAmount>120.00</TotalGrossAmount><PayableAmount>120.00</PayableAmount>")
	assert.Contains(t, rendered, "<SEPADirectDebit><Type>B2C</Type><IBAN>AT491200011111111111</IBAN></SEPADirectDebit>")
	assert.Contains(t, rendered,
		"<PaymentConditions><DueDate>2020-02-01</DueDate><Discount>"+
			"<PaymentDate>2020-01-20</PaymentDate><Percentage>2</Percentage></Discount></PaymentConditions>")
	assert.True(t, strings.HasSuffix(rendered, "<Comment>Vielen Dank</Comment></Invoice>"))

	// No hidden state: rendering twice yields identical text.
	assert.Equal(t, rendered, inv.Render())
}

func TestAddress_Validation(t *testing.T) {
	assert.Error(t, NewAddress().SetName(strings.Repeat("n", 256)))
	assert.NoError(t, NewAddress().SetName(strings.Repeat("n", 255)))

	assert.Error(t, NewAddress().SetCountry(Country{Name: "Austria", Code: "AUT"}))
	assert.NoError(t, NewAddress().SetCountry(Country{Name: "Austria", Code: "AT"}))
}

func TestParty_Validation(t *testing.T) {
	_, err := NewBiller("")
	assert.Error(t, err)

	_, err = NewInvoiceRecipient("")
	assert.Error(t, err)

	recipient, err := NewInvoiceRecipient("ATU87654321")
	require.NoError(t, err)
	assert.Error(t, recipient.SetOrderReference(strings.Repeat("o", 256)))
}

func TestPaymentConditions_Validation(t *testing.T) {
	conditions := NewPaymentConditions()
	assert.Error(t, conditions.SetDueDate("soon"))
	assert.NoError(t, conditions.SetDueDate("2020-13-40")) // lexical shape only

	assert.Error(t, conditions.SetDiscount(Discount{PaymentDate: "never", Percentage: decimal.NewFromInt(2)}))
	assert.Error(t, conditions.SetDiscount(Discount{PaymentDate: "2020-01-20", Percentage: decimal.NewFromInt(101)}))
	assert.NoError(t, conditions.SetDiscount(Discount{PaymentDate: "2020-01-20", Percentage: decimal.NewFromInt(2)}))
}
