// Package ledger holds the financial arithmetic for a sale: total, balance
// and status derivation, plus payment application. It is the single place
// this logic lives — services, handlers and tests all derive through here
// so the persisted state and any preview can never disagree.
//
// All amounts are integer cents.
package ledger

import (
	"github.com/cratetracker/cratetracker-api/internal/domain/enum"
	"github.com/cratetracker/cratetracker-api/pkg/apperror"
)

// Totals is the derived financial state of a sale.
type Totals struct {
	TotalAmount int64
	AmountPaid  int64
	Balance     int64
	Status      enum.SaleStatus
}

// DeriveStatus classifies a sale's payment state. The paid check runs
// before the partial check: a zero or negative balance is always paid,
// regardless of amountPaid.
func DeriveStatus(balance, amountPaid int64) enum.SaleStatus {
	if balance <= 0 {
		return enum.SaleStatusPaid
	}
	if amountPaid > 0 {
		return enum.SaleStatusPartial
	}
	return enum.SaleStatusUnpaid
}

// Compute derives the full financial state of a sale from its inputs.
// Used at creation and, with full-replacement semantics, on edit.
// Overpayment at creation is rejected rather than clamped.
func Compute(cratesSold int, pricePerCrate, amountPaid int64) (Totals, error) {
	var fieldErrors []apperror.FieldError
	if cratesSold <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "crates_sold", Message: "must be greater than zero"})
	}
	if pricePerCrate <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price_per_crate", Message: "must be greater than zero"})
	}
	if amountPaid < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount_paid", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return Totals{}, apperror.NewValidationError(fieldErrors)
	}

	total := int64(cratesSold) * pricePerCrate
	if amountPaid > total {
		return Totals{}, apperror.NewFieldValidationError("amount_paid", "must not exceed the total amount")
	}

	balance := total - amountPaid
	return Totals{
		TotalAmount: total,
		AmountPaid:  amountPaid,
		Balance:     balance,
		Status:      DeriveStatus(balance, amountPaid),
	}, nil
}

// ApplyPayment returns the totals after applying one payment. A payment
// that would push amountPaid past totalAmount is rejected, never clamped.
func (t Totals) ApplyPayment(amount int64) (Totals, error) {
	if amount <= 0 {
		return Totals{}, apperror.NewFieldValidationError("amount", "must be greater than zero")
	}
	if amount > t.Balance {
		return Totals{}, apperror.NewFieldValidationError("amount", "exceeds the outstanding balance")
	}

	paid := t.AmountPaid + amount
	balance := t.TotalAmount - paid
	return Totals{
		TotalAmount: t.TotalAmount,
		AmountPaid:  paid,
		Balance:     balance,
		Status:      DeriveStatus(balance, paid),
	}, nil
}

// FromSale rebuilds totals from persisted scalar fields.
func FromSale(totalAmount, amountPaid int64) Totals {
	balance := totalAmount - amountPaid
	return Totals{
		TotalAmount: totalAmount,
		AmountPaid:  amountPaid,
		Balance:     balance,
		Status:      DeriveStatus(balance, amountPaid),
	}
}
