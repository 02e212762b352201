package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeID_JSON(t *testing.T) {
	// Marshals as a string so ids above 2^53 survive JavaScript clients.
	id := SnowflakeID(1879968847568777216)
	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"1879968847568777216"`, string(b))

	var fromString SnowflakeID
	require.NoError(t, json.Unmarshal([]byte(`"1879968847568777216"`), &fromString))
	assert.Equal(t, id, fromString)

	// Numeric payloads from non-browser clients still parse.
	var fromNumber SnowflakeID
	require.NoError(t, json.Unmarshal([]byte(`12345`), &fromNumber))
	assert.Equal(t, SnowflakeID(12345), fromNumber)

	var bad SnowflakeID
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
}

func TestSnowflakeID_Scan(t *testing.T) {
	var id SnowflakeID
	require.NoError(t, id.Scan(int64(77)))
	assert.Equal(t, SnowflakeID(77), id)

	require.NoError(t, id.Scan([]byte("88")))
	assert.Equal(t, SnowflakeID(88), id)

	assert.Error(t, id.Scan("99"))
}
