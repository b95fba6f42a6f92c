package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleStatusJSONRoundTrip(t *testing.T) {
	for _, status := range []SaleStatus{SaleStatusUnpaid, SaleStatusPartial, SaleStatusPaid} {
		data, err := json.Marshal(status)
		require.NoError(t, err)

		var got SaleStatus
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, status, got)
	}
}

func TestSaleStatusMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(SaleStatusPartial)
	require.NoError(t, err)
	assert.Equal(t, `"partial"`, string(data))
}

func TestSaleStatusUnmarshalAcceptsInt(t *testing.T) {
	var got SaleStatus
	require.NoError(t, json.Unmarshal([]byte(`2`), &got))
	assert.Equal(t, SaleStatusPaid, got)
}
