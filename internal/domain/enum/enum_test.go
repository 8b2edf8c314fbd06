package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodRejectsOutOfRange(t *testing.T) {
	var m PaymentMethod
	assert.Error(t, json.Unmarshal([]byte("99"), &m))
	assert.Error(t, json.Unmarshal([]byte("-1"), &m))
	assert.Error(t, json.Unmarshal([]byte(`"Cheque"`), &m))

	require.NoError(t, json.Unmarshal([]byte("2"), &m))
	assert.Equal(t, PaymentMethodTransfer, m)
	require.NoError(t, json.Unmarshal([]byte(`"Card"`), &m))
	assert.Equal(t, PaymentMethodCard, m)
}

func TestPaymentStatusRejectsOutOfRange(t *testing.T) {
	var s PaymentStatus
	assert.Error(t, json.Unmarshal([]byte("7"), &s))
	assert.Error(t, json.Unmarshal([]byte(`"Overdue"`), &s))

	require.NoError(t, json.Unmarshal([]byte(`"Pending"`), &s))
	assert.Equal(t, PaymentStatusPending, s)
}

func TestProductCategoryRejectsOutOfRange(t *testing.T) {
	var c ProductCategory
	assert.Error(t, json.Unmarshal([]byte("3"), &c))
	assert.Error(t, json.Unmarshal([]byte(`"Bundle"`), &c))

	require.NoError(t, json.Unmarshal([]byte(`"Service"`), &c))
	assert.Equal(t, ProductCategoryService, c)
}

func TestEnumStringNeverPanics(t *testing.T) {
	assert.Equal(t, "Unknown", PaymentMethod(99).String())
	assert.Equal(t, "Unknown", PaymentStatus(-1).String())
	assert.Equal(t, "Unknown", ProductCategory(42).String())

	// Marshaling an out-of-range value degrades instead of panicking.
	data, err := json.Marshal(PaymentMethod(99))
	require.NoError(t, err)
	assert.Equal(t, `"Unknown"`, string(data))
}

func TestEnumScanClampsUnknownValues(t *testing.T) {
	var m PaymentMethod
	require.NoError(t, m.Scan(int64(99)))
	assert.True(t, m.Valid())

	var s PaymentStatus
	require.NoError(t, s.Scan(int64(-3)))
	assert.True(t, s.Valid())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, PaymentStatusPaid, StatusFor(0))
	assert.Equal(t, PaymentStatusPending, StatusFor(1))
	// Overpayment stays Pending.
	assert.Equal(t, PaymentStatusPending, StatusFor(-500))
}
