// Package payment derives the amount a guest owes for a booking.
//
// Amounts are whole currency units. A deposit is half of the discounted total,
// rounded up so the hotel never collects less than half.
package payment

import (
	"fmt"
	"stayadmin/shared/failure"
)

type Type string

const (
	TypeFull    Type = "full"
	TypeDeposit Type = "deposit"
)

// Validate implements the "domain" validation tag.
func (t Type) Validate() error {
	switch t {
	case TypeFull, TypeDeposit:
		return nil
	default:
		// nolint:wrapcheck
		return failure.BadRequestFromString(fmt.Sprintf("payment type must be one of %s %s", TypeFull, TypeDeposit))
	}
}

// Label returns the admin facing name of the payment type.
func (t Type) Label() string {
	switch t {
	case TypeFull:
		return "Full payment"
	case TypeDeposit:
		return "50% deposit"
	default:
		return string(t)
	}
}

// ValidateDiscount checks 0 <= discount <= total.
func ValidateDiscount(total, discount int64) error {
	if total < 0 {
		return failure.BadRequestFromString("total price must not be negative") // nolint:wrapcheck
	}

	if discount < 0 {
		return failure.BadRequestFromString("discount amount must not be negative") // nolint:wrapcheck
	}

	if discount > total {
		// nolint:wrapcheck
		return failure.BadRequestFromString(fmt.Sprintf("discount amount %d exceeds total price %d", discount, total))
	}

	return nil
}

// Compute returns total - discount for full payment and ceil((total - discount) / 2) for a deposit.
func Compute(total int64, paymentType Type, discount int64) (int64, error) {
	if err := paymentType.Validate(); err != nil {
		return 0, err
	}

	if err := ValidateDiscount(total, discount); err != nil {
		return 0, err
	}

	net := total - discount

	if paymentType == TypeDeposit {
		return (net + 1) / 2, nil
	}

	return net, nil
}

// Outstanding is the part of total not covered by the payment amount.
func Outstanding(total, discount, amount int64) int64 {
	return max(total-discount-amount, 0)
}
