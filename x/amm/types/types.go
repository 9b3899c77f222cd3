package types

import (
	"cosmossdk.io/math"
)

// Pool is the reserve ledger for one canonical asset pair. ReserveX holds
// Pair.AssetX, ReserveY holds Pair.AssetY. TotalShares is the outstanding
// supply of this pool's shares across all holders.
type Pool struct {
	Pair        Pair     `json:"pair"`
	ReserveX    math.Int `json:"reserve_x"`
	ReserveY    math.Int `json:"reserve_y"`
	TotalShares math.Int `json:"total_shares"`
}

// NewPool returns an untouched pool for the pair: zero reserves, zero shares.
func NewPool(pair Pair) Pool {
	return Pool{
		Pair:        pair,
		ReserveX:    math.ZeroInt(),
		ReserveY:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// Reserve returns the reserve stored in the given slot.
func (p Pool) Reserve(s Slot) math.Int {
	if s == SlotX {
		return p.ReserveX
	}
	return p.ReserveY
}

// SetReserve overwrites the reserve stored in the given slot.
func (p *Pool) SetReserve(s Slot, v math.Int) {
	if s == SlotX {
		p.ReserveX = v
	} else {
		p.ReserveY = v
	}
}

// IsUntouched reports whether the pool holds no shares and no reserves.
func (p Pool) IsUntouched() bool {
	return p.TotalShares.IsZero() && p.ReserveX.IsZero() && p.ReserveY.IsZero()
}

// Validate checks the structural pool invariants: canonical pair,
// non-negative amounts, and shares-reserves zero coupling (a pool either has
// both reserves and shares, or none of them).
func (p Pool) Validate() error {
	if err := p.Pair.Validate(); err != nil {
		return err
	}
	if p.ReserveX.IsNil() || p.ReserveY.IsNil() || p.TotalShares.IsNil() {
		return ErrPoolCorrupted.Wrapf("pool %s has nil amounts", p.Pair.ID())
	}
	if p.ReserveX.IsNegative() || p.ReserveY.IsNegative() {
		return ErrPoolCorrupted.Wrapf("pool %s has negative reserves", p.Pair.ID())
	}
	if p.TotalShares.IsNegative() {
		return ErrPoolCorrupted.Wrapf("pool %s has negative total shares", p.Pair.ID())
	}
	if p.TotalShares.IsZero() != (p.ReserveX.IsZero() && p.ReserveY.IsZero()) {
		return ErrPoolCorrupted.Wrapf(
			"pool %s violates shares-reserves coupling: reserves %s/%s, shares %s",
			p.Pair.ID(), p.ReserveX, p.ReserveY, p.TotalShares,
		)
	}
	return nil
}

// SharePosition is one account's share balance in one pool. Share balances
// are tagged by pair: shares of different pools are not fungible with each
// other.
type SharePosition struct {
	PairID  string   `json:"pair_id"`
	Address string   `json:"address"`
	Shares  math.Int `json:"shares"`
}

// ShareAllowance authorizes a spender to move up to Amount of the owner's
// shares in one pool via TransferSharesFrom.
type ShareAllowance struct {
	PairID  string   `json:"pair_id"`
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}
