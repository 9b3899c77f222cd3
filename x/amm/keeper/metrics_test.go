package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridianswap/meridian/testutil/keeper"
	"github.com/meridianswap/meridian/x/amm/keeper"
)

func TestPoolGaugesTrackLifecycle(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := addr(1)
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("ujuno", math.NewInt(10_000)),
		sdk.NewCoin("uscrt", math.NewInt(10_000)),
	))

	m := keeper.GetMetrics()
	poolsBefore := testutil.ToFloat64(m.PoolsTotal)

	_, _, shares, err := k.AddLiquidity(ctx, provider, "ujuno", "uscrt",
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(), provider, 0)
	require.NoError(t, err)

	require.Equal(t, poolsBefore+1, testutil.ToFloat64(m.PoolsTotal))
	require.Equal(t, float64(1000), testutil.ToFloat64(m.PoolReserves.WithLabelValues("ujuno/uscrt", "ujuno")))
	require.Equal(t, float64(4000), testutil.ToFloat64(m.PoolReserves.WithLabelValues("ujuno/uscrt", "uscrt")))
	require.Equal(t, float64(2000), testutil.ToFloat64(m.ShareSupply.WithLabelValues("ujuno/uscrt")))

	_, _, err = k.RemoveLiquidity(ctx, provider, "ujuno", "uscrt",
		shares, math.ZeroInt(), math.ZeroInt(), provider, 0)
	require.NoError(t, err)

	require.Equal(t, poolsBefore, testutil.ToFloat64(m.PoolsTotal))
	require.Equal(t, float64(0), testutil.ToFloat64(m.PoolReserves.WithLabelValues("ujuno/uscrt", "ujuno")))
	require.Equal(t, float64(0), testutil.ToFloat64(m.PoolReserves.WithLabelValues("ujuno/uscrt", "uscrt")))
	require.Equal(t, float64(0), testutil.ToFloat64(m.ShareSupply.WithLabelValues("ujuno/uscrt")))
}
