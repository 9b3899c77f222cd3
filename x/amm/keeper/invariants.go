package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(ammtypes.ModuleName, "pool-integrity", PoolIntegrityInvariant(k))
	ir.RegisterRoute(ammtypes.ModuleName, "share-supply", ShareSupplyInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolIntegrityInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ShareSupplyInvariant(k)(ctx)
	}
}

// PoolIntegrityInvariant checks that every stored pool is well formed: a
// canonical pair, non-negative reserves, and reserves coupled to the share
// supply so that an untouched pool holds nothing.
func PoolIntegrityInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IteratePools(ctx, func(pool ammtypes.Pool) bool {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("\tpool %s is malformed: %v\n", pool.Pair.ID(), err)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(ammtypes.ModuleName, "pool-integrity",
			fmt.Sprintf("found %d malformed pool(s)\n%s", count, msg)), broken
	}
}

// ShareSupplyInvariant checks that per-account share positions sum exactly to
// each pool's recorded total, with no positions against unknown pools.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		known := make(map[string]bool)
		k.IteratePools(ctx, func(pool ammtypes.Pool) bool {
			pairID := pool.Pair.ID()
			known[pairID] = true

			sum := math.ZeroInt()
			k.IterateSharesByPool(ctx, pairID, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})
			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("\tpool %s records %s total shares but positions sum to %s\n",
					pairID, pool.TotalShares, sum)
			}
			return false
		})

		k.IterateShares(ctx, func(pos ammtypes.SharePosition) bool {
			if !known[pos.PairID] {
				count++
				msg += fmt.Sprintf("\tposition for %s in unknown pool %s\n", pos.Address, pos.PairID)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(ammtypes.ModuleName, "share-supply",
			fmt.Sprintf("found %d share supply violation(s)\n%s", count, msg)), broken
	}
}
