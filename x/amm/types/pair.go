package types

import (
	"strings"
)

// Slot identifies which stored reserve of a pool backs a requested asset.
// Callers supply assets in arbitrary order; every read and write of a reserve
// re-derives the slot through Pair.SlotOf rather than caching it.
type Slot int8

const (
	// SlotX is the reserve slot of the lexicographically smaller asset.
	SlotX Slot = iota
	// SlotY is the reserve slot of the lexicographically larger asset.
	SlotY
)

// Other returns the opposite reserve slot.
func (s Slot) Other() Slot {
	if s == SlotX {
		return SlotY
	}
	return SlotX
}

// Pair is the canonical identifier of an unordered asset pair.
// AssetX is always the lexicographically smaller denomination, so
// NewPair(a, b) and NewPair(b, a) produce the same Pair.
type Pair struct {
	AssetX string `json:"asset_x"`
	AssetY string `json:"asset_y"`
}

// NewPair canonicalizes two asset denominations into a Pair.
// Returns ErrIdenticalAssets when both denominations are equal and
// ErrInvalidInput when either is empty or contains the '/' separator,
// which would make the pair identifier ambiguous.
func NewPair(assetA, assetB string) (Pair, error) {
	if assetA == "" || assetB == "" {
		return Pair{}, ErrInvalidInput.Wrap("asset denomination cannot be empty")
	}
	if strings.Contains(assetA, "/") || strings.Contains(assetB, "/") {
		return Pair{}, ErrInvalidInput.Wrap("asset denomination cannot contain '/'")
	}
	if assetA == assetB {
		return Pair{}, ErrIdenticalAssets.Wrapf("asset %q supplied for both sides", assetA)
	}
	if assetA > assetB {
		assetA, assetB = assetB, assetA
	}
	return Pair{AssetX: assetA, AssetY: assetB}, nil
}

// MustNewPair is NewPair that panics on error. Test helper.
func MustNewPair(assetA, assetB string) Pair {
	p, err := NewPair(assetA, assetB)
	if err != nil {
		panic(err)
	}
	return p
}

// ID returns the canonical order-independent pair identifier.
func (p Pair) ID() string {
	return p.AssetX + "/" + p.AssetY
}

// SlotOf maps a requested asset to its stored reserve slot. The second
// return is false when the asset does not belong to the pair.
func (p Pair) SlotOf(asset string) (Slot, bool) {
	switch asset {
	case p.AssetX:
		return SlotX, true
	case p.AssetY:
		return SlotY, true
	default:
		return SlotX, false
	}
}

// Asset returns the denomination stored in the given slot.
func (p Pair) Asset(s Slot) string {
	if s == SlotX {
		return p.AssetX
	}
	return p.AssetY
}

// Validate checks that the pair is canonical and well-formed.
func (p Pair) Validate() error {
	if p.AssetX == "" || p.AssetY == "" {
		return ErrInvalidInput.Wrap("pair asset cannot be empty")
	}
	if p.AssetX == p.AssetY {
		return ErrIdenticalAssets.Wrapf("pair %q lists the same asset twice", p.ID())
	}
	if p.AssetX > p.AssetY {
		return ErrInvalidInput.Wrapf("pair %q is not in canonical order", p.ID())
	}
	if strings.Contains(p.AssetX, "/") || strings.Contains(p.AssetY, "/") {
		return ErrInvalidInput.Wrap("asset denomination cannot contain '/'")
	}
	return nil
}
