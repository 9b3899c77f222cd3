package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// SwapExactIn swaps a fixed amountIn of assetIn for assetOut at the pool's
// constant-product price and pushes the output to recipient. The full input,
// fee included, is added to the input reserve, so the reserve product never
// decreases across a swap and strictly increases while a fee is charged.
//
// The reserve slot backing each asset is re-derived from the canonical pair
// at the mutation site with the same pure mapping used for the read; the
// mapping is never carried across the call.
func (k Keeper) SwapExactIn(
	ctx context.Context,
	trader sdk.AccAddress,
	assetIn, assetOut string,
	amountIn, minAmountOut math.Int,
	recipient sdk.AccAddress,
	deadline int64,
) (math.Int, error) {
	zero := math.ZeroInt()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return zero, err
	}

	pair, err := ammtypes.NewPair(assetIn, assetOut)
	if err != nil {
		return zero, err
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return zero, ammtypes.ErrInvalidInput.Wrap("swap input amount must be positive")
	}
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		return zero, ammtypes.ErrInvalidInput.Wrap("minimum output cannot be negative")
	}

	pool, found := k.GetPool(ctx, pair)
	if !found || pool.TotalShares.IsZero() {
		k.countSwap(pair, assetIn, assetOut, "failed")
		return zero, ammtypes.ErrInvalidInput.Wrapf("pool %s holds no liquidity", pair.ID())
	}

	slotIn, _ := pair.SlotOf(assetIn)
	reserveIn := pool.Reserve(slotIn)
	reserveOut := pool.Reserve(slotIn.Other())

	params := k.GetParams(ctx)
	amountOut, err := ammtypes.QuoteOut(amountIn, reserveIn, reserveOut, params.FeeNumerator, params.FeeDenominator)
	if err != nil {
		return zero, err
	}

	if amountOut.LT(minAmountOut) {
		k.countSwap(pair, assetIn, assetOut, "failed")
		return zero, ammtypes.ErrSlippageExceeded.Wrapf("expected at least %s, got %s", minAmountOut, amountOut)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	coinIn := sdk.NewCoins(sdk.NewCoin(assetIn, amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, ammtypes.ModuleName, coinIn); err != nil {
		return zero, ammtypes.ErrTransferFailed.Wrapf("pull %s from %s: %v", coinIn, trader, err)
	}

	if !amountOut.IsZero() {
		coinOut := sdk.NewCoins(sdk.NewCoin(assetOut, amountOut))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, ammtypes.ModuleName, recipient, coinOut); err != nil {
			// Hand the pulled input back so an aborted swap leaves the trader whole
			// even on hosts without transaction-level store rollback.
			if refundErr := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, ammtypes.ModuleName, trader, coinIn); refundErr != nil {
				sdkCtx.Logger().Error("failed to refund swap input after push failure",
					"pair", pair.ID(), "trader", trader.String(), "error", refundErr)
			}
			return zero, ammtypes.ErrTransferFailed.Wrapf("push %s to %s: %v", coinOut, recipient, err)
		}
	}

	oldProduct := reserveIn.Mul(reserveOut)

	// Same mapping, recomputed at the write site.
	writeSlotIn, ok := pool.Pair.SlotOf(assetIn)
	if !ok {
		return zero, ammtypes.ErrPoolCorrupted.Wrapf("pool %s does not hold %s", pair.ID(), assetIn)
	}
	pool.SetReserve(writeSlotIn, reserveIn.Add(amountIn))
	pool.SetReserve(writeSlotIn.Other(), reserveOut.Sub(amountOut))

	newProduct := pool.Reserve(writeSlotIn).Mul(pool.Reserve(writeSlotIn.Other()))
	if newProduct.LT(oldProduct) {
		return zero, ammtypes.ErrPoolCorrupted.Wrapf(
			"constant product decreased across swap on %s: %s -> %s", pair.ID(), oldProduct, newProduct)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeSwap,
			sdk.NewAttribute(ammtypes.AttributeKeyPairID, pair.ID()),
			sdk.NewAttribute(ammtypes.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAssetIn, assetIn),
			sdk.NewAttribute(ammtypes.AttributeKeyAssetOut, assetOut),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	k.countSwap(pair, assetIn, assetOut, "success")
	if k.metrics != nil {
		k.metrics.SwapVolume.WithLabelValues(pair.ID(), assetIn).Add(intToFloat(amountIn))
	}

	return amountOut, nil
}

// SimulateSwap quotes a swap against the pool's live reserves without
// executing it.
func (k Keeper) SimulateSwap(ctx context.Context, assetIn, assetOut string, amountIn math.Int) (math.Int, error) {
	pair, err := ammtypes.NewPair(assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), err
	}

	pool, found := k.GetPool(ctx, pair)
	if !found || pool.TotalShares.IsZero() {
		return math.ZeroInt(), ammtypes.ErrInvalidInput.Wrapf("pool %s holds no liquidity", pair.ID())
	}

	slotIn, _ := pair.SlotOf(assetIn)
	params := k.GetParams(ctx)
	return ammtypes.QuoteOut(amountIn, pool.Reserve(slotIn), pool.Reserve(slotIn.Other()),
		params.FeeNumerator, params.FeeDenominator)
}

// SpotPrice returns the pool's instantaneous price of the quote asset in
// units of the base asset, scaled by 10^18. Fails with ErrNoLiquidity on an
// untouched pool; an empty pool has no price.
func (k Keeper) SpotPrice(ctx context.Context, assetBase, assetQuote string) (math.Int, error) {
	pair, err := ammtypes.NewPair(assetBase, assetQuote)
	if err != nil {
		return math.Int{}, err
	}

	pool, found := k.GetPool(ctx, pair)
	if !found {
		return math.Int{}, ammtypes.ErrNoLiquidity.Wrapf("pool %s does not exist", pair.ID())
	}

	slotBase, _ := pair.SlotOf(assetBase)
	return ammtypes.SpotPrice(pool.Reserve(slotBase), pool.Reserve(slotBase.Other()))
}

func (k Keeper) countSwap(pair ammtypes.Pair, assetIn, assetOut, status string) {
	if k.metrics == nil {
		return
	}
	k.metrics.SwapsTotal.WithLabelValues(pair.ID(), assetIn, assetOut, status).Inc()
}
