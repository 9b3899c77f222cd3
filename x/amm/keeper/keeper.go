package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// Keeper owns the amm module store: the pool ledger, the share ledger and the
// pool family parameters. Asset movement is delegated to the bank keeper; the
// Keeper itself never holds balances outside its module account.
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper ammtypes.BankKeeper
	metrics    *Metrics
}

// NewKeeper creates a new amm Keeper instance.
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper ammtypes.BankKeeper,
) Keeper {
	return Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		metrics:    GetMetrics(),
	}
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// checkDeadline enforces the caller-supplied expiry precondition. A deadline
// of zero or below disables the check. Checked once at operation entry; there
// is no scheduler behind it.
func (k Keeper) checkDeadline(ctx context.Context, deadline int64) error {
	if deadline <= 0 {
		return nil
	}
	blockTime := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if blockTime > deadline {
		return ammtypes.ErrExpired.Wrapf("deadline %d passed at block time %d", deadline, blockTime)
	}
	return nil
}
