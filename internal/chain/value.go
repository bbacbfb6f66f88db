package chain

import (
	"fmt"
	"sort"
	"strings"
)

// AssetID identifies a single asset class as "<policy-hex>.<name-hex>". The
// base currency is the empty AssetID. String keys keep Value comparable and
// JSON-friendly; use NewAssetID/Parts to move between forms.
type AssetID string

// BaseCurrency is the ledger's native unit of account.
const BaseCurrency AssetID = ""

// NewAssetID builds an AssetID from a policy id and an asset name.
func NewAssetID(policy, name HexBytes) AssetID {
	return AssetID(policy.String() + "." + name.String())
}

// Parts splits an AssetID back into policy id and asset name. The base
// currency returns two empty byte strings.
func (a AssetID) Parts() (policy, name HexBytes, err error) {
	if a == BaseCurrency {
		return nil, nil, nil
	}
	idx := strings.IndexByte(string(a), '.')
	if idx < 0 {
		return nil, nil, fmt.Errorf("malformed asset id %q", string(a))
	}
	policy, err = parseHex(string(a)[:idx])
	if err != nil {
		return nil, nil, err
	}
	name, err = parseHex(string(a)[idx+1:])
	if err != nil {
		return nil, nil, err
	}
	return policy, name, nil
}

// Policy returns the policy id half of the AssetID, or nil for the base
// currency or a malformed id.
func (a AssetID) Policy() HexBytes {
	policy, _, err := a.Parts()
	if err != nil {
		return nil
	}
	return policy
}

func parseHex(s string) (HexBytes, error) {
	var h HexBytes
	if err := h.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return nil, err
	}
	return h, nil
}

// Value is a multi-asset bundle. Entries with quantity zero are legal and
// meaningful: a transition can declare "this asset moved by zero" explicitly
// rather than omitting it.
type Value map[AssetID]int64

// Get returns the quantity of an asset, zero when absent.
func (v Value) Get(asset AssetID) int64 {
	return v[asset]
}

// Clone returns an independent copy.
func (v Value) Clone() Value {
	out := make(Value, len(v))
	for asset, qty := range v {
		out[asset] = qty
	}
	return out
}

// Add returns v + other over the union of asset classes.
func (v Value) Add(other Value) Value {
	out := v.Clone()
	for asset, qty := range other {
		out[asset] += qty
	}
	return out
}

// Sub returns v - other over the union of asset classes. Entries are kept
// even when the difference is zero so callers can assert explicit deltas.
func (v Value) Sub(other Value) Value {
	out := v.Clone()
	for asset := range other {
		if _, ok := out[asset]; !ok {
			out[asset] = 0
		}
	}
	for asset, qty := range other {
		out[asset] -= qty
	}
	return out
}

// Equal reports whether two values hold the same quantities, treating absent
// entries as zero.
func (v Value) Equal(other Value) bool {
	for asset, qty := range v {
		if other.Get(asset) != qty {
			return false
		}
	}
	for asset, qty := range other {
		if v.Get(asset) != qty {
			return false
		}
	}
	return true
}

// AssetsUnderPolicy returns the asset ids in v minted under the given policy,
// sorted for deterministic iteration.
func (v Value) AssetsUnderPolicy(policy HexBytes) []AssetID {
	var out []AssetID
	for asset := range v {
		if asset == BaseCurrency {
			continue
		}
		if asset.Policy().Equal(policy) {
			out = append(out, asset)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
