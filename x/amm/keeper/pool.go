package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// GetPool retrieves the pool record for a canonical pair. The second return
// is false when the pair has never held liquidity.
func (k Keeper) GetPool(ctx context.Context, pair ammtypes.Pair) (ammtypes.Pool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(pair.ID()))
	if bz == nil {
		return ammtypes.Pool{}, false
	}

	var pool ammtypes.Pool
	k.cdc.MustUnmarshal(bz, &pool)
	return pool, true
}

// getOrCreatePool returns the existing pool record or a zero-initialized one.
// Creation has no side effect; the record is only persisted by SetPool after
// a successful deposit.
func (k Keeper) getOrCreatePool(ctx context.Context, pair ammtypes.Pair) ammtypes.Pool {
	if pool, found := k.GetPool(ctx, pair); found {
		return pool
	}
	return ammtypes.NewPool(pair)
}

// SetPool persists a pool record. A pool drained back to the untouched state
// (zero shares, zero reserves) is deleted, reverting the pair to
// never-touched for all reads.
func (k Keeper) SetPool(ctx context.Context, pool ammtypes.Pool) error {
	if err := pool.Validate(); err != nil {
		return fmt.Errorf("SetPool %s: %w", pool.Pair.ID(), err)
	}

	store := k.getStore(ctx)
	key := PoolKey(pool.Pair.ID())
	existed := store.Has(key)

	if pool.IsUntouched() {
		store.Delete(key)
		if existed {
			k.recordPoolGauges(pool, -1)
		}
		return nil
	}

	bz, err := k.cdc.Marshal(&pool)
	if err != nil {
		return fmt.Errorf("SetPool %s: marshal: %w", pool.Pair.ID(), err)
	}
	store.Set(key, bz)
	delta := 0
	if !existed {
		delta = 1
	}
	k.recordPoolGauges(pool, delta)
	return nil
}

// recordPoolGauges mirrors a pool record into the reserve and share supply
// gauges. delta adjusts the live-pool count on create (+1) and drain (-1).
func (k Keeper) recordPoolGauges(pool ammtypes.Pool, delta int) {
	if k.metrics == nil {
		return
	}
	id := pool.Pair.ID()
	k.metrics.PoolReserves.WithLabelValues(id, pool.Pair.AssetX).Set(intToFloat(pool.ReserveX))
	k.metrics.PoolReserves.WithLabelValues(id, pool.Pair.AssetY).Set(intToFloat(pool.ReserveY))
	k.metrics.ShareSupply.WithLabelValues(id).Set(intToFloat(pool.TotalShares))
	if delta != 0 {
		k.metrics.PoolsTotal.Add(float64(delta))
	}
}

// IteratePools iterates over all pool records.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool ammtypes.Pool) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool ammtypes.Pool
		k.cdc.MustUnmarshal(iterator.Value(), &pool)
		if cb(pool) {
			break
		}
	}
}

// GetAllPools returns every pool record.
func (k Keeper) GetAllPools(ctx context.Context) []ammtypes.Pool {
	var pools []ammtypes.Pool
	k.IteratePools(ctx, func(pool ammtypes.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}
