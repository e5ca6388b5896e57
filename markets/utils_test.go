package markets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "markets:top:1000", topCacheKey(1000))
	assert.Equal(t, "markets:page:2:50", pageCacheKey(2, 50))
	assert.NotEqual(t, pageCacheKey(1, 25), pageCacheKey(25, 1))
}

func TestMarshalRecords_RoundTrip(t *testing.T) {
	records := [][]byte{
		[]byte(`{"id":"bitcoin","current_price":42000.5}`),
		[]byte(`{"id":"ethereum","current_price":null}`),
	}

	data, err := marshalRecords(records)
	require.NoError(t, err)

	decoded, err := unmarshalRecords(data)
	require.NoError(t, err)

	require.Len(t, decoded, 2)
	assert.JSONEq(t, string(records[0]), string(decoded[0]))
	assert.JSONEq(t, string(records[1]), string(decoded[1]))
}

func TestMarshalRecords_Empty(t *testing.T) {
	data, err := marshalRecords(nil)
	require.NoError(t, err)

	decoded, err := unmarshalRecords(data)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestUnmarshalRecords_Malformed(t *testing.T) {
	_, err := unmarshalRecords([]byte(`{"not":"an array"}`))
	assert.Error(t, err)
}
