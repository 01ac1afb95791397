package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when a stored or submitted status is not one of
// the known variants.
var ErrUnknownStatus = errors.New("estado desconocido")

// AmortizationStatus is the settlement state of a scheduled period.
type AmortizationStatus string

const (
	AmortizationStatusPending   AmortizationStatus = "PENDING"
	AmortizationStatusCompleted AmortizationStatus = "COMPLETED"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusDraft     PaymentStatus = "DRAFT"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// EntryType tells accrual journal batches apart from payment batches.
type EntryType string

const (
	EntryTypeAmortization EntryType = "AMORTIZATION"
	EntryTypePayment      EntryType = "PAYMENT"
)

func ParseAmortizationStatus(s string) (AmortizationStatus, error) {
	switch v := AmortizationStatus(strings.ToUpper(strings.TrimSpace(s))); v {
	case AmortizationStatusPending, AmortizationStatusCompleted:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch v := PaymentStatus(strings.ToUpper(strings.TrimSpace(s))); v {
	case PaymentStatusDraft, PaymentStatusConfirmed, PaymentStatusCancelled:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func ParseEntryType(s string) (EntryType, error) {
	switch v := EntryType(strings.ToUpper(strings.TrimSpace(s))); v {
	case EntryTypeAmortization, EntryTypePayment:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrUnknownStatus, src)
	}
}

// Scan implements sql.Scanner.
func (s *AmortizationStatus) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	v, err := ParseAmortizationStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value implements driver.Valuer.
func (s AmortizationStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *AmortizationStatus) UnmarshalText(b []byte) error {
	v, err := ParseAmortizationStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *PaymentStatus) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	v, err := ParsePaymentStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *PaymentStatus) UnmarshalText(b []byte) error {
	v, err := ParsePaymentStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (t *EntryType) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	v, err := ParseEntryType(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t EntryType) Value() (driver.Value, error) { return string(t), nil }

func (t *EntryType) UnmarshalText(b []byte) error {
	v, err := ParseEntryType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
