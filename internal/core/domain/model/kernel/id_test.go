package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should accept positive identifiers", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject zero", func(t *testing.T) {
		_, err := kernel.NewID(0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative identifiers", func(t *testing.T) {
		_, err := kernel.NewID(-7)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-7 is not greater than 0")
	})
}

func TestIDFromString(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "decimal", input: "17", want: 17},
		{name: "zero", input: "0", wantErr: errs.ErrValueIsRequired},
		{name: "negative", input: "-1", wantErr: errs.ErrValueIsInvalid},
		{name: "not a number", input: "abc", wantErr: errs.ErrValueIsInvalid},
		{name: "empty", input: "", wantErr: errs.ErrValueIsInvalid},
		{name: "overflow", input: "9223372036854775808", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.IDFromString(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id.Int64())
		})
	}
}

func TestID_Comparison(t *testing.T) {
	first, err := kernel.NewID(1)
	require.NoError(t, err)
	second, err := kernel.NewID(2)
	require.NoError(t, err)
	again, err := kernel.NewID(1)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(again))
	assert.False(t, first.IsEqual(second))
	assert.True(t, first.Less(second))
	assert.False(t, second.Less(first))
	assert.False(t, first.Less(again))
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	assert.Equal(t, "0", id.String())
}
