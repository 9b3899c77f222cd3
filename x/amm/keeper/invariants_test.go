package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridianswap/meridian/testutil/keeper"
	"github.com/meridianswap/meridian/x/amm/keeper"
)

func TestInvariantsHoldOnLiveState(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := seedPool(t, k, bank, ctx, 1_000_000, 4_000_000)

	trader := addr(1)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))
	_, err := k.SwapExactIn(ctx, trader, "uatom", "uusdc",
		math.NewInt(100_000), math.ZeroInt(), trader, 0)
	require.NoError(t, err)

	require.NoError(t, k.TransferShares(ctx, "uatom/uusdc", provider, trader, math.NewInt(1000)))

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestInvariantsHoldOnEmptyState(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}
