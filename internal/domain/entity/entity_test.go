package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleRecalculate(t *testing.T) {
	sale := Sale{Quantity: 3, UnitCost: 150000, Paid: 450000}
	sale.Recalculate()

	assert.Equal(t, int64(450000), sale.TotalCost)
	assert.Equal(t, int64(0), sale.OutstandingBalance)
	assert.Equal(t, enum.PaymentStatusPaid, sale.PaymentStatus)

	sale.Paid = 100000
	sale.Recalculate()
	assert.Equal(t, int64(350000), sale.OutstandingBalance)
	assert.Equal(t, enum.PaymentStatusPending, sale.PaymentStatus)
}

func TestSaleRecalculateOverpaid(t *testing.T) {
	sale := Sale{Quantity: 1, UnitCost: 100000, Paid: 150000}
	sale.Recalculate()

	// Overpayment stays visible as a negative balance, and the record is
	// still not Paid because the balance is nonzero.
	assert.Equal(t, int64(-50000), sale.OutstandingBalance)
	assert.Equal(t, enum.PaymentStatusPending, sale.PaymentStatus)
}

func TestInvoiceSnapshotTotals(t *testing.T) {
	invoice := Invoice{
		TotalPaid: 200000,
		Lines: []InvoiceLine{
			{Position: 0, ProductName: "Passport Photo", Quantity: 4, UnitCost: 50000},
			{Position: 1, ProductName: "Lamination", Quantity: 2, UnitCost: 25000},
		},
	}
	invoice.SnapshotTotals()

	assert.Equal(t, int64(200000), invoice.Lines[0].TotalCost)
	assert.Equal(t, int64(50000), invoice.Lines[1].TotalCost)
	assert.Equal(t, int64(250000), invoice.TotalCost)
	assert.Equal(t, int64(50000), invoice.OutstandingBalance)
	assert.Equal(t, enum.PaymentStatusPending, invoice.PaymentStatus)
}

func TestProductEffectiveUnitPrice(t *testing.T) {
	gen := int64(80000)
	custom := int64(60000)
	product := Product{Price: 70000, GenPrice: &gen}

	// Base price when the generator is off.
	assert.Equal(t, int64(70000), product.EffectiveUnitPrice(false, nil))
	// Generator price when the toggle is on.
	assert.Equal(t, int64(80000), product.EffectiveUnitPrice(true, nil))
	// A custom override beats both.
	assert.Equal(t, int64(60000), product.EffectiveUnitPrice(true, &custom))

	zero := int64(0)
	product.GenPrice = &zero
	assert.Equal(t, int64(70000), product.EffectiveUnitPrice(true, nil))

	product.GenPrice = nil
	assert.Equal(t, int64(70000), product.EffectiveUnitPrice(true, nil))
}

func TestSaleJSONAmountsAreDecimal(t *testing.T) {
	sale := Sale{ProductName: "Printing", Quantity: 2, UnitCost: 12550}
	sale.Recalculate()

	data, err := json.Marshal(sale)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 125.5, got["unit_cost"])
	assert.Equal(t, 251.0, got["total_cost"])
}

func TestProductJSONOmitsGenPriceWhenUnset(t *testing.T) {
	product := Product{Name: "Photocopy", Price: 5000}

	data, err := json.Marshal(product)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 50.0, got["price"])
	_, present := got["gen_price"]
	assert.False(t, present)
}

func TestPasswordResetTokenLifecycle(t *testing.T) {
	token := NewPasswordResetToken("owner@mercibizhub.com", "abc123")
	assert.True(t, token.Usable())
	assert.WithinDuration(t, time.Now().Add(PasswordResetTokenTTL), token.ExpiresAt, time.Minute)

	token.Used = true
	assert.False(t, token.Usable())

	expired := NewPasswordResetToken("owner@mercibizhub.com", "def456")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	assert.False(t, expired.Usable())
}
