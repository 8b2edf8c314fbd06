package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentStatus represents whether a sale or invoice is settled.
// It is derived state: Paid if and only if the outstanding balance is zero.
type PaymentStatus int

const (
	PaymentStatusPaid    PaymentStatus = 0
	PaymentStatusPending PaymentStatus = 1
)

var paymentStatusNames = [...]string{"Paid", "Pending"}

// Valid reports whether the value is one of the declared statuses.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusPending
}

func (s PaymentStatus) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return paymentStatusNames[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either the name or the numeric value and rejects
// anything outside the declared set.
func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		v := PaymentStatus(i)
		if !v.Valid() {
			return fmt.Errorf("invalid payment status: %d", i)
		}
		*s = v
		return nil
	}
	switch str {
	case "Paid":
		*s = PaymentStatusPaid
	case "Pending":
		*s = PaymentStatusPending
	default:
		return fmt.Errorf("invalid payment status: %q", str)
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	if !s.Valid() {
		*s = PaymentStatusPending
	}
	return nil
}

// StatusFor derives the payment status from an outstanding balance.
func StatusFor(outstandingBalance int64) PaymentStatus {
	if outstandingBalance == 0 {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}
