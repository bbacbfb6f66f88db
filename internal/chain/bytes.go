package chain

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HexBytes is a byte slice that marshals to and from lowercase hex in JSON.
// CBOR encodes it as a plain byte string.
type HexBytes []byte

// MarshalJSON implements json.Marshaler
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// UnmarshalJSON implements json.Unmarshaler
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hex bytes: %w", err)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("hex bytes: %w", err)
	}
	*h = decoded
	return nil
}

// String returns the lowercase hex encoding
func (h HexBytes) String() string {
	return hex.EncodeToString(h)
}

// Equal reports whether two byte strings are identical
func (h HexBytes) Equal(other HexBytes) bool {
	return bytes.Equal(h, other)
}

// MustHex decodes a hex literal, panicking on malformed input. Intended for
// constants and test fixtures.
func MustHex(s string) HexBytes {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		panic("chain: invalid hex literal: " + s)
	}
	return decoded
}
