package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_MarshalJSON(t *testing.T) {
	tests := []struct {
		stored   string
		expected string
	}{
		{stored: "10", expected: `"10.00"`},
		{stored: "10.00", expected: `"10.00"`},
		{stored: "19.9", expected: `"19.90"`},
		{stored: "0", expected: `"0.00"`},
		{stored: "12345678.99", expected: `"12345678.99"`},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			raw, err := json.Marshal(NewPrice(decimal.RequireFromString(tt.stored)))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(raw))
		})
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"order_id":1,"price":"49.50"}`), &o))

	assert.True(t, decimal.RequireFromString("49.5").Equal(o.Price.Decimal))
	assert.Equal(t, "49.50", o.Price.String())
}
