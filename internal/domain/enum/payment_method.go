package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a sale or invoice was paid
type PaymentMethod int

const (
	PaymentMethodCash     PaymentMethod = 0
	PaymentMethodCard     PaymentMethod = 1
	PaymentMethodTransfer PaymentMethod = 2
)

var paymentMethodNames = [...]string{"Cash", "Card", "Transfer"}

// Valid reports whether the value is one of the declared methods.
func (m PaymentMethod) Valid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodTransfer
}

func (m PaymentMethod) String() string {
	if !m.Valid() {
		return "Unknown"
	}
	return paymentMethodNames[m]
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either the name or the numeric value. Anything
// outside the declared set is rejected so a bad value cannot reach the
// store.
func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		v := PaymentMethod(i)
		if !v.Valid() {
			return fmt.Errorf("invalid payment method: %d", i)
		}
		*m = v
		return nil
	}
	switch str {
	case "Cash":
		*m = PaymentMethodCash
	case "Card":
		*m = PaymentMethodCard
	case "Transfer":
		*m = PaymentMethodTransfer
	default:
		return fmt.Errorf("invalid payment method: %q", str)
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	if !m.Valid() {
		*m = PaymentMethodCash
	}
	return nil
}
