package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniversalBankTransaction_ConsolidatorPayableAlwaysRendered(t *testing.T) {
	assert.Equal(t,
		`<UniversalBankTransaction ConsolidatorPayable="false"></UniversalBankTransaction>`,
		NewUniversalBankTransaction().XML().String(),
	)
	assert.Equal(t,
		`<UniversalBankTransaction ConsolidatorPayable="true"></UniversalBankTransaction>`,
		NewUniversalBankTransaction().SetConsolidatorPayable(true).XML().String(),
	)
}

func TestUniversalBankTransaction_SetPaymentReference(t *testing.T) {
	assert.NoError(t, NewUniversalBankTransaction().SetPaymentReference(strings.Repeat("1", 35)))

	err := NewUniversalBankTransaction().SetPaymentReference(strings.Repeat("1", 36))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PaymentReference")
	assert.Contains(t, err.Error(), "too long")
}

func TestUniversalBankTransaction_ChecksumWithoutReferenceIsNotRendered(t *testing.T) {
	transaction := NewUniversalBankTransaction().SetPaymentReferenceChecksum("X")
	assert.NotContains(t, transaction.XML().String(), "CheckSum")
}

func TestUniversalBankTransaction_ReferenceWithoutChecksum(t *testing.T) {
	transaction := NewUniversalBankTransaction()
	require.NoError(t, transaction.SetPaymentReference("123"))

	assert.Equal(t,
		`<UniversalBankTransaction ConsolidatorPayable="false">`+
			"<PaymentReference>123</PaymentReference></UniversalBankTransaction>",
		transaction.XML().String(),
	)
}

func TestUniversalBankTransaction_AccountsRenderInInsertionOrder(t *testing.T) {
	first := NewBeneficiaryAccount()
	require.NoError(t, first.SetBankName("First"))
	second := NewBeneficiaryAccount()
	require.NoError(t, second.SetBankName("Second"))

	rendered := NewUniversalBankTransaction().
		AddBeneficiaryAccount(first).
		AddBeneficiaryAccount(second).
		XML().String()

	assert.Less(t,
		strings.Index(rendered, "<BankName>First</BankName>"),
		strings.Index(rendered, "<BankName>Second</BankName>"),
	)
}
