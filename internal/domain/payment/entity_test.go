//go:build unit

package payment_test

import (
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod_Validate(t *testing.T) {
	assert.NoError(t, payment.MethodCard.Validate())
	assert.NoError(t, payment.MethodApplePay.Validate())
	assert.NoError(t, payment.MethodGooglePay.Validate())
	assert.ErrorIs(t, payment.Method("").Validate(), payment.ErrMissingPaymentMethod)
	assert.ErrorIs(t, payment.Method("cash").Validate(), payment.ErrUnsupportedPaymentMethod)
}

func TestPayment_MarkReturned(t *testing.T) {
	paidAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p := payment.NewPayment(uuid.New(), uuid.New(), 2350, payment.MethodCard, paidAt)
	assert.Equal(t, payment.StatusCompleted, p.Status())

	returnedAt := paidAt.Add(time.Hour)
	require.NoError(t, p.MarkReturned(returnedAt))
	assert.Equal(t, payment.StatusReturned, p.Status())
	assert.Equal(t, returnedAt, p.UpdatedAt())
	assert.Equal(t, paidAt, p.PaidAt())

	assert.ErrorIs(t, p.MarkReturned(returnedAt), payment.ErrAlreadyReturned)
}
