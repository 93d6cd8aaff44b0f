package fulfillment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreFulfillment(t *testing.T) {
	id, err := kernel.NewID(1)
	require.NoError(t, err)

	t.Run("should restore valid fulfillment", func(t *testing.T) {
		f, err := fulfillment.RestoreFulfillment(id, fulfillment.StockPickUp, fulfillment.New)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, id, f.ID())
		assert.Equal(t, fulfillment.StockPickUp, f.Type())
		assert.Equal(t, fulfillment.New, f.Status())
		assert.True(t, f.AcceptsLineItems())
	})

	t.Run("should not accept line items once advanced", func(t *testing.T) {
		f, err := fulfillment.RestoreFulfillment(id, fulfillment.StockDelivery, fulfillment.InProgress)

		require.NoError(t, err)
		assert.False(t, f.AcceptsLineItems())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		f, err := fulfillment.RestoreFulfillment(kernel.ID{}, fulfillment.UnknownType, fulfillment.UnknownStatus)

		assert.Nil(t, f)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "fulfillment type is invalid")
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestFulfillment_Validate(t *testing.T) {
	var f *fulfillment.Fulfillment
	require.ErrorIs(t, f.Validate(), fulfillment.ErrFulfillmentIsNotConstructed)

	require.ErrorIs(t, (&fulfillment.Fulfillment{}).Validate(), fulfillment.ErrFulfillmentIsNotConstructed)
}
