package domain

import (
	"testing"

	"github.com/ebdocs/ebinvoice/shared/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, description, quantity, unit, unitPrice, taxPercent, currency string) *ListLineItem {
	t.Helper()

	lineItem, err := NewListLineItem(
		description,
		decimal.RequireFromString(quantity),
		unit,
		models.NewMoney(decimal.RequireFromString(unitPrice), currency),
	)
	require.NoError(t, err)
	require.NoError(t, lineItem.SetTaxPercent(decimal.RequireFromString(taxPercent)))
	return lineItem
}

func TestNewListLineItem_Validation(t *testing.T) {
	price := models.NewMoney(decimal.NewFromInt(10), "EUR")

	_, err := NewListLineItem("ok", decimal.NewFromInt(-1), "STK", price)
	assert.Error(t, err)

	_, err = NewListLineItem("ok", decimal.NewFromInt(1), "", price)
	assert.Error(t, err)

	_, err = NewListLineItem("ok", decimal.NewFromInt(1), "STK", models.NewMoney(decimal.NewFromInt(-10), "EUR"))
	assert.Error(t, err)
}

func TestListLineItem_SetTaxPercent(t *testing.T) {
	lineItem := mustLineItem(t, "x", "1", "STK", "10", "0", "EUR")

	assert.NoError(t, lineItem.SetTaxPercent(decimal.NewFromInt(100)))
	assert.Error(t, lineItem.SetTaxPercent(decimal.NewFromInt(101)))
	assert.Error(t, lineItem.SetTaxPercent(decimal.NewFromInt(-1)))
}

func TestListLineItem_LineItemAmount(t *testing.T) {
	lineItem := mustLineItem(t, "hosting", "2.5", "h", "19.99", "20", "EUR")
	assert.Equal(t, "49.98", lineItem.LineItemAmount().String())
}

func TestDetails_RejectsMixedCurrencies(t *testing.T) {
	details := NewDetails()
	require.NoError(t, details.AddLineItem(mustLineItem(t, "a", "1", "STK", "10", "20", "EUR")))

	err := details.AddLineItem(mustLineItem(t, "b", "1", "STK", "10", "20", "USD"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency")
}

func TestDetails_TaxItemsGroupByRateInFirstSeenOrder(t *testing.T) {
	details := NewDetails()
	require.NoError(t, details.AddLineItem(mustLineItem(t, "a", "1", "STK", "100", "20", "EUR")))
	require.NoError(t, details.AddLineItem(mustLineItem(t, "b", "2", "STK", "10", "10", "EUR")))
	require.NoError(t, details.AddLineItem(mustLineItem(t, "c", "1", "STK", "50", "20", "EUR")))

	items := details.TaxItems()
	require.Len(t, items, 2)

	assert.Equal(t, "20", items[0].TaxPercent.String())
	assert.Equal(t, "150.00", items[0].TaxableAmount.String())
	assert.Equal(t, "30.00", items[0].TaxAmount.String())

	assert.Equal(t, "10", items[1].TaxPercent.String())
	assert.Equal(t, "20.00", items[1].TaxableAmount.String())
	assert.Equal(t, "2.00", items[1].TaxAmount.String())
}

func TestDetails_TotalGrossAmount(t *testing.T) {
	details := NewDetails()
	require.NoError(t, details.AddLineItem(mustLineItem(t, "a", "1", "STK", "100", "20", "EUR")))
	require.NoError(t, details.AddLineItem(mustLineItem(t, "b", "2", "STK", "10", "10", "EUR")))

	assert.Equal(t, "142.00", details.TotalGrossAmount().String())
}

func TestDetails_XML(t *testing.T) {
	details := NewDetails()
	require.NoError(t, details.AddLineItem(mustLineItem(t, "hosting", "2", "h", "10", "20", "EUR")))

	assert.Equal(t,
		"<Details><ItemList><ListLineItem><Description>hosting</Description>"+
			`<Quantity Unit="h">2</Quantity><UnitPrice>10.00</UnitPrice>`+
			"<TaxPercent>20</TaxPercent><LineItemAmount>20.00</LineItemAmount>"+
			"</ListLineItem></ItemList></Details>",
		details.XML().String(),
	)
}
