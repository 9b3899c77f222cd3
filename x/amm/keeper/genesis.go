package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState ammtypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("failed to set pool %s: %w", pool.Pair.ID(), err)
		}
	}

	for _, pos := range genState.Positions {
		addr, err := sdk.AccAddressFromBech32(pos.Address)
		if err != nil {
			return fmt.Errorf("invalid share position address %s: %w", pos.Address, err)
		}
		k.setShares(ctx, pos.PairID, addr, pos.Shares)
	}

	for _, allowance := range genState.Allowances {
		owner, err := sdk.AccAddressFromBech32(allowance.Owner)
		if err != nil {
			return fmt.Errorf("invalid allowance owner address %s: %w", allowance.Owner, err)
		}
		spender, err := sdk.AccAddressFromBech32(allowance.Spender)
		if err != nil {
			return fmt.Errorf("invalid allowance spender address %s: %w", allowance.Spender, err)
		}
		k.setShareAllowance(ctx, allowance.PairID, owner, spender, allowance.Amount)
	}

	return nil
}

// ExportGenesis returns the amm module's state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *ammtypes.GenesisState {
	genState := ammtypes.GenesisState{
		Params:     k.GetParams(ctx),
		Pools:      k.GetAllPools(ctx),
		Positions:  []ammtypes.SharePosition{},
		Allowances: []ammtypes.ShareAllowance{},
	}

	k.IterateShares(ctx, func(pos ammtypes.SharePosition) bool {
		genState.Positions = append(genState.Positions, pos)
		return false
	})

	k.IterateShareAllowances(ctx, func(allowance ammtypes.ShareAllowance) bool {
		genState.Allowances = append(genState.Allowances, allowance)
		return false
	})

	return &genState
}
