package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the full exported state of the amm module.
type GenesisState struct {
	Params     Params           `json:"params"`
	Pools      []Pool           `json:"pools"`
	Positions  []SharePosition  `json:"positions"`
	Allowances []ShareAllowance `json:"allowances"`
}

// DefaultGenesis returns the default genesis state: default fee tier, no pools.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Positions:  []SharePosition{},
		Allowances: []ShareAllowance{},
	}
}

// Validate ensures the genesis state is well-formed: valid params, valid
// unique pools, and share positions that sum exactly to each pool's
// outstanding shares.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	pools := make(map[string]Pool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %s: %w", pool.Pair.ID(), err)
		}
		if _, ok := pools[pool.Pair.ID()]; ok {
			return fmt.Errorf("duplicate pool %s", pool.Pair.ID())
		}
		pools[pool.Pair.ID()] = pool
	}

	type positionKey struct{ pairID, address string }
	seen := make(map[positionKey]struct{}, len(gs.Positions))
	sums := make(map[string]SharePosition, len(gs.Pools))
	for _, pos := range gs.Positions {
		if _, err := sdk.AccAddressFromBech32(pos.Address); err != nil {
			return fmt.Errorf("invalid position address %q: %w", pos.Address, err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("position %s/%s must hold positive shares", pos.PairID, pos.Address)
		}
		pool, ok := pools[pos.PairID]
		if !ok {
			return fmt.Errorf("position references unknown pool %s", pos.PairID)
		}
		key := positionKey{pos.PairID, pos.Address}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate position %s/%s", pos.PairID, pos.Address)
		}
		seen[key] = struct{}{}

		sum, ok := sums[pos.PairID]
		if !ok {
			sum = SharePosition{PairID: pos.PairID, Shares: pos.Shares}
		} else {
			sum.Shares = sum.Shares.Add(pos.Shares)
		}
		sums[pos.PairID] = sum
		if sum.Shares.GT(pool.TotalShares) {
			return fmt.Errorf("positions of pool %s exceed total shares %s", pos.PairID, pool.TotalShares)
		}
	}
	for id, pool := range pools {
		sum, ok := sums[id]
		if !ok {
			if !pool.TotalShares.IsZero() {
				return fmt.Errorf("pool %s has %s outstanding shares but no positions", id, pool.TotalShares)
			}
			continue
		}
		if !sum.Shares.Equal(pool.TotalShares) {
			return fmt.Errorf("positions of pool %s sum to %s, total shares are %s", id, sum.Shares, pool.TotalShares)
		}
	}

	type allowanceKey struct{ pairID, owner, spender string }
	seenAllowances := make(map[allowanceKey]struct{}, len(gs.Allowances))
	for _, al := range gs.Allowances {
		if _, err := sdk.AccAddressFromBech32(al.Owner); err != nil {
			return fmt.Errorf("invalid allowance owner %q: %w", al.Owner, err)
		}
		if _, err := sdk.AccAddressFromBech32(al.Spender); err != nil {
			return fmt.Errorf("invalid allowance spender %q: %w", al.Spender, err)
		}
		if al.Amount.IsNil() || !al.Amount.IsPositive() {
			return fmt.Errorf("allowance %s/%s must be positive", al.Owner, al.Spender)
		}
		if _, ok := pools[al.PairID]; !ok {
			return fmt.Errorf("allowance references unknown pool %s", al.PairID)
		}
		key := allowanceKey{al.PairID, al.Owner, al.Spender}
		if _, dup := seenAllowances[key]; dup {
			return fmt.Errorf("duplicate allowance %s/%s/%s", al.PairID, al.Owner, al.Spender)
		}
		seenAllowances[key] = struct{}{}
	}

	return nil
}
