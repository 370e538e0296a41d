package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestIndicesRoundTrip(t *testing.T) {
	raw, err := EncodeIndices([]int{0, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, "[0,2,4]", string(raw))

	decoded, err := DecodeIndices(raw)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, decoded)
}

func TestStringsRoundTripKeepsUTF8(t *testing.T) {
	in := []string{"고가용성", "Multi-AZ", "읽기 전용 복제본", "S3 \"Glacier\""}
	raw, err := EncodeStrings(in)
	require.NoError(t, err)

	out, err := DecodeStrings(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeNilProducesEmptyArray(t *testing.T) {
	raw, err := EncodeIndices(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	raw, err = EncodeStrings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestDecodeBlankValues(t *testing.T) {
	for _, raw := range []datatypes.JSON{nil, datatypes.JSON(""), datatypes.JSON("null")} {
		idx, err := DecodeIndices(raw)
		require.NoError(t, err)
		assert.Empty(t, idx)
		assert.NotNil(t, idx)

		kw, err := DecodeStrings(raw)
		require.NoError(t, err)
		assert.Empty(t, kw)
		assert.NotNil(t, kw)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := DecodeIndices(datatypes.JSON(`["a"]`))
	assert.Error(t, err)

	_, err = DecodeStrings(datatypes.JSON(`{not json`))
	assert.Error(t, err)
}
