package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalDatumDeterministic(t *testing.T) {
	out := Output{
		Address: Address{Payment: ScriptCredential(MustHex("aa"))},
		Value:   Value{BaseCurrency: 2_000_000},
	}

	first, err := MarshalDatum(out)
	require.NoError(t, err)
	second, err := MarshalDatum(out)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDatumRoundTrip(t *testing.T) {
	ref := OutRef{TxHash: MustHex("0011223344"), Index: 7}

	data, err := MarshalDatum(ref)
	require.NoError(t, err)

	var decoded OutRef
	require.NoError(t, UnmarshalDatum(data, &decoded))
	assert.True(t, decoded.Equal(ref))
}

func TestUnmarshalDatumRejectsGarbage(t *testing.T) {
	var ref OutRef
	assert.Error(t, UnmarshalDatum([]byte{0xff, 0x00, 0x13}, &ref))
}
