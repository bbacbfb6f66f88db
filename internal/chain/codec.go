package chain

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Datums and redeemers must encode identically for
// identical logical content or snapshot comparison breaks.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Extra fields in array-encoded structs are an
// error: a datum with trailing garbage is not the datum it claims to be.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("chain: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic("chain: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalDatum encodes v as deterministic CBOR.
func MarshalDatum(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// UnmarshalDatum decodes CBOR bytes into v, rejecting unknown fields.
func UnmarshalDatum(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
