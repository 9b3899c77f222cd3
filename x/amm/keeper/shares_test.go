package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridianswap/meridian/testutil/keeper"
	"github.com/meridianswap/meridian/x/amm/types"
)

const pairID = "uatom/uusdc"

func TestTransferShares(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := seedPool(t, k, bank, ctx, 1000, 4000)
	receiver := addr(2)

	require.NoError(t, k.TransferShares(ctx, pairID, provider, receiver, math.NewInt(600)))

	require.Equal(t, math.NewInt(1400), k.GetShares(ctx, pairID, provider))
	require.Equal(t, math.NewInt(600), k.GetShares(ctx, pairID, receiver))

	// Supply is conserved by transfers.
	require.Equal(t, math.NewInt(2000), k.TotalShares(ctx, types.MustNewPair("uatom", "uusdc")))

	// The receiver can redeem what it was sent.
	amountA, amountB, err := k.RemoveLiquidity(ctx, receiver, "uatom", "uusdc",
		math.NewInt(600), math.ZeroInt(), math.ZeroInt(), receiver, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(300), amountA)
	require.Equal(t, math.NewInt(1200), amountB)
}

func TestTransferSharesInsufficient(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := seedPool(t, k, bank, ctx, 1000, 4000)

	err := k.TransferShares(ctx, pairID, provider, addr(2), math.NewInt(2001))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	err = k.TransferShares(ctx, pairID, provider, addr(2), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestApproveAndTransferFrom(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	owner := seedPool(t, k, bank, ctx, 1000, 4000)
	spender := addr(2)
	receiver := addr(3)

	require.NoError(t, k.ApproveShares(ctx, pairID, owner, spender, math.NewInt(500)))
	require.Equal(t, math.NewInt(500), k.GetShareAllowance(ctx, pairID, owner, spender))

	require.NoError(t, k.TransferSharesFrom(ctx, pairID, spender, owner, receiver, math.NewInt(300)))

	require.Equal(t, math.NewInt(1700), k.GetShares(ctx, pairID, owner))
	require.Equal(t, math.NewInt(300), k.GetShares(ctx, pairID, receiver))
	// The allowance is consumed by the amount moved.
	require.Equal(t, math.NewInt(200), k.GetShareAllowance(ctx, pairID, owner, spender))

	err := k.TransferSharesFrom(ctx, pairID, spender, owner, receiver, math.NewInt(201))
	require.ErrorIs(t, err, types.ErrInvalidAllowance)
}

func TestApproveSharesReplacesAndRevokes(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	owner := seedPool(t, k, bank, ctx, 1000, 4000)
	spender := addr(2)

	require.NoError(t, k.ApproveShares(ctx, pairID, owner, spender, math.NewInt(500)))
	require.NoError(t, k.ApproveShares(ctx, pairID, owner, spender, math.NewInt(100)))
	require.Equal(t, math.NewInt(100), k.GetShareAllowance(ctx, pairID, owner, spender))

	require.NoError(t, k.ApproveShares(ctx, pairID, owner, spender, math.ZeroInt()))
	require.True(t, k.GetShareAllowance(ctx, pairID, owner, spender).IsZero())

	err := k.TransferSharesFrom(ctx, pairID, spender, owner, addr(3), math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInvalidAllowance)
}

func TestTransferFromWithoutBalance(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	owner := seedPool(t, k, bank, ctx, 1000, 4000)
	spender := addr(2)

	// Allowance can exceed the balance; the transfer still fails on balance.
	require.NoError(t, k.ApproveShares(ctx, pairID, owner, spender, math.NewInt(5000)))
	err := k.TransferSharesFrom(ctx, pairID, spender, owner, addr(3), math.NewInt(3000))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestIterateShares(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := seedPool(t, k, bank, ctx, 1000, 4000)
	require.NoError(t, k.TransferShares(ctx, pairID, provider, addr(2), math.NewInt(500)))

	var positions []types.SharePosition
	k.IterateShares(ctx, func(pos types.SharePosition) bool {
		positions = append(positions, pos)
		return false
	})
	require.Len(t, positions, 2)

	sum := math.ZeroInt()
	for _, pos := range positions {
		require.Equal(t, pairID, pos.PairID)
		sum = sum.Add(pos.Shares)
	}
	require.Equal(t, math.NewInt(2000), sum)
}

func TestShareBalancesAcrossPools(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := addr(1)
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(10_000)),
		sdk.NewCoin("uusdc", math.NewInt(10_000)),
		sdk.NewCoin("uosmo", math.NewInt(10_000)),
	))

	_, _, _, err := k.AddLiquidity(ctx, provider, "uatom", "uusdc",
		math.NewInt(100), math.NewInt(400), math.ZeroInt(), math.ZeroInt(), provider, 0)
	require.NoError(t, err)
	_, _, _, err = k.AddLiquidity(ctx, provider, "uatom", "uosmo",
		math.NewInt(900), math.NewInt(100), math.ZeroInt(), math.ZeroInt(), provider, 0)
	require.NoError(t, err)

	// Shares are tagged by pool, never fungible across pools.
	require.Equal(t, math.NewInt(200), k.GetShares(ctx, "uatom/uusdc", provider))
	require.Equal(t, math.NewInt(300), k.GetShares(ctx, "uatom/uosmo", provider))
	require.True(t, k.GetShares(ctx, "uosmo/uusdc", provider).IsZero())

	// Pool-scoped iteration sees only its own positions.
	var seen []math.Int
	k.IterateSharesByPool(ctx, "uatom/uosmo", func(addr sdk.AccAddress, shares math.Int) bool {
		require.Equal(t, provider, addr)
		seen = append(seen, shares)
		return false
	})
	require.Len(t, seen, 1)
	require.Equal(t, math.NewInt(300), seen[0])
}
