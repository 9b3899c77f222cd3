package keeper

import (
	"context"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// GetParams returns the pool family parameters, falling back to the defaults
// when none have been stored yet.
func (k Keeper) GetParams(ctx context.Context) ammtypes.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return ammtypes.DefaultParams()
	}

	var params ammtypes.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams stores the pool family parameters after validating them.
func (k Keeper) SetParams(ctx context.Context, params ammtypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return err
	}
	store.Set(ParamsKey, bz)
	return nil
}
