package payment_test

import (
	"math"
	"stayadmin/internal/domains/payment"
	"stayadmin/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		paymentType payment.Type
		discount    int64
		expected    int64
		wantErr     bool
	}{
		{name: "deposit without discount", total: 14000, paymentType: payment.TypeDeposit, expected: 7000},
		{name: "deposit with loyalty discount", total: 14000, paymentType: payment.TypeDeposit, discount: 2000, expected: 6000},
		{name: "deposit rounds odd totals up", total: 14001, paymentType: payment.TypeDeposit, expected: 7001},
		{name: "deposit of one unit", total: 1, paymentType: payment.TypeDeposit, expected: 1},
		{name: "full without discount", total: 14000, paymentType: payment.TypeFull, expected: 14000},
		{name: "full with discount", total: 14000, paymentType: payment.TypeFull, discount: 2000, expected: 12000},
		{name: "full with discount equal to total", total: 5000, paymentType: payment.TypeFull, discount: 5000, expected: 0},
		{name: "deposit with discount equal to total", total: 5000, paymentType: payment.TypeDeposit, discount: 5000, expected: 0},
		{name: "zero total", total: 0, paymentType: payment.TypeDeposit, expected: 0},
		{name: "discount above total", total: 5000, paymentType: payment.TypeFull, discount: 5001, wantErr: true},
		{name: "negative discount", total: 5000, paymentType: payment.TypeFull, discount: -1, wantErr: true},
		{name: "negative total", total: -1, paymentType: payment.TypeFull, wantErr: true},
		{name: "unknown payment type", total: 5000, paymentType: "installment", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := payment.Compute(tt.total, tt.paymentType, tt.discount)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindValidation))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompute_MatchesCeilingFormula(t *testing.T) {
	for total := int64(0); total <= 301; total++ {
		for discount := int64(0); discount <= total; discount += 7 {
			full, err := payment.Compute(total, payment.TypeFull, discount)
			assert.NoError(t, err)
			assert.Equal(t, total-discount, full)

			deposit, err := payment.Compute(total, payment.TypeDeposit, discount)
			assert.NoError(t, err)
			assert.Equal(t, int64(math.Ceil(float64(total-discount)*0.5)), deposit)
		}
	}
}

func TestType_Validate(t *testing.T) {
	assert.NoError(t, payment.TypeFull.Validate())
	assert.NoError(t, payment.TypeDeposit.Validate())
	assert.Error(t, payment.Type("").Validate())
	assert.Equal(t, "50% deposit", payment.TypeDeposit.Label())
}

func TestOutstanding(t *testing.T) {
	assert.Equal(t, int64(6000), payment.Outstanding(14000, 2000, 6000))
	assert.Equal(t, int64(0), payment.Outstanding(14000, 2000, 12000))
	assert.Equal(t, int64(0), payment.Outstanding(100, 0, 500))
}
