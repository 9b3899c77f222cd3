package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// AddLiquidity deposits up to desiredA/desiredB of the two assets into the
// pair's pool and mints shares to recipient. The first deposit into an
// untouched pair fixes the pool's initial exchange rate and mints
// floor(sqrt(usedA*usedB)) shares; subsequent deposits keep the reserve ratio
// by maxing out the A leg first and reducing the B leg to the pool ratio,
// falling back to the mirrored computation when desiredB is the binding side.
//
// The asset pulls happen before the first store write, so a failed pull
// leaves no pool or share state behind.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	assetA, assetB string,
	desiredA, desiredB, minA, minB math.Int,
	recipient sdk.AccAddress,
	deadline int64,
) (usedA, usedB, sharesMinted math.Int, err error) {
	zero := math.ZeroInt()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return zero, zero, zero, err
	}

	pair, err := ammtypes.NewPair(assetA, assetB)
	if err != nil {
		return zero, zero, zero, err
	}

	if desiredA.IsNil() || !desiredA.IsPositive() || desiredB.IsNil() || !desiredB.IsPositive() {
		return zero, zero, zero, ammtypes.ErrInvalidInput.Wrap("desired deposit amounts must be positive")
	}
	if minA.IsNil() || minA.IsNegative() || minB.IsNil() || minB.IsNegative() {
		return zero, zero, zero, ammtypes.ErrInvalidInput.Wrap("minimum amounts cannot be negative")
	}

	pool := k.getOrCreatePool(ctx, pair)

	slotA, _ := pair.SlotOf(assetA)
	reserveA := pool.Reserve(slotA)
	reserveB := pool.Reserve(slotA.Other())

	if pool.TotalShares.IsZero() {
		if !reserveA.IsZero() || !reserveB.IsZero() {
			return zero, zero, zero, ammtypes.ErrPoolCorrupted.Wrapf("pool %s has reserves but no shares", pair.ID())
		}

		// First depositor sets the price ratio at their own discretion.
		usedA, usedB = desiredA, desiredB
		sharesMinted, err = ammtypes.IntegerSqrt(usedA.Mul(usedB))
		if err != nil {
			return zero, zero, zero, err
		}
	} else {
		if reserveA.IsZero() || reserveB.IsZero() {
			return zero, zero, zero, ammtypes.ErrPoolCorrupted.Wrapf("pool %s has shares but a zero reserve", pair.ID())
		}

		optimalB := desiredA.Mul(reserveB).Quo(reserveA)
		if optimalB.LTE(desiredB) {
			if optimalB.LT(minB) {
				return zero, zero, zero, ammtypes.ErrSlippageExceeded.Wrapf(
					"pool ratio allows %s of %s, minimum is %s", optimalB, assetB, minB)
			}
			usedA, usedB = desiredA, optimalB
		} else {
			optimalA := desiredB.Mul(reserveA).Quo(reserveB)
			if optimalA.LT(minA) {
				return zero, zero, zero, ammtypes.ErrSlippageExceeded.Wrapf(
					"pool ratio allows %s of %s, minimum is %s", optimalA, assetA, minA)
			}
			usedA, usedB = optimalA, desiredB
		}

		// Minimum of the two proportional mints; a lopsided leg never earns
		// more than its proportional claim.
		sharesMinted = math.MinInt(
			usedA.Mul(pool.TotalShares).Quo(reserveA),
			usedB.Mul(pool.TotalShares).Quo(reserveB),
		)
	}

	if sharesMinted.IsZero() {
		return zero, zero, zero, ammtypes.ErrZeroShares.Wrap("deposit too small to earn shares")
	}

	deposit := sdk.NewCoins(sdk.NewCoin(assetA, usedA), sdk.NewCoin(assetB, usedB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, ammtypes.ModuleName, deposit); err != nil {
		return zero, zero, zero, ammtypes.ErrTransferFailed.Wrapf("pull %s from %s: %v", deposit, provider, err)
	}

	pool.SetReserve(slotA, reserveA.Add(usedA))
	pool.SetReserve(slotA.Other(), reserveB.Add(usedB))
	pool.TotalShares = pool.TotalShares.Add(sharesMinted)
	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, zero, err
	}

	k.mintShares(ctx, pair.ID(), recipient, sharesMinted)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeAddLiquidity,
			sdk.NewAttribute(ammtypes.AttributeKeyPairID, pair.ID()),
			sdk.NewAttribute(ammtypes.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountA, usedA.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountB, usedB.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, sharesMinted.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(pair.ID(), assetA).Add(intToFloat(usedA))
		k.metrics.LiquidityAdded.WithLabelValues(pair.ID(), assetB).Add(intToFloat(usedB))
	}

	return usedA, usedB, sharesMinted, nil
}

// RemoveLiquidity burns shares of the pair's pool held by provider and pushes
// the proportional reserves to recipient. Both withdrawal amounts round down;
// the pool keeps the remainder. The pushes happen before the first store
// write, so a failed push leaves no half-applied burn behind.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	assetA, assetB string,
	shares, minA, minB math.Int,
	recipient sdk.AccAddress,
	deadline int64,
) (amountA, amountB math.Int, err error) {
	zero := math.ZeroInt()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return zero, zero, err
	}

	pair, err := ammtypes.NewPair(assetA, assetB)
	if err != nil {
		return zero, zero, err
	}

	if shares.IsNil() || !shares.IsPositive() {
		return zero, zero, ammtypes.ErrInvalidInput.Wrap("shares to burn must be positive")
	}
	if minA.IsNil() || minA.IsNegative() || minB.IsNil() || minB.IsNegative() {
		return zero, zero, ammtypes.ErrInvalidInput.Wrap("minimum amounts cannot be negative")
	}

	pool, found := k.GetPool(ctx, pair)
	if !found || pool.TotalShares.IsZero() {
		return zero, zero, ammtypes.ErrNoLiquidity.Wrapf("pool %s holds no liquidity", pair.ID())
	}

	providerShares := k.GetShares(ctx, pair.ID(), provider)
	if providerShares.LT(shares) {
		return zero, zero, ammtypes.ErrInsufficientShares.Wrapf("have %s, burning %s", providerShares, shares)
	}

	slotA, _ := pair.SlotOf(assetA)
	reserveA := pool.Reserve(slotA)
	reserveB := pool.Reserve(slotA.Other())

	amountA = shares.Mul(reserveA).Quo(pool.TotalShares)
	amountB = shares.Mul(reserveB).Quo(pool.TotalShares)

	if amountA.LT(minA) {
		return zero, zero, ammtypes.ErrSlippageExceeded.Wrapf("withdrawal yields %s of %s, minimum is %s", amountA, assetA, minA)
	}
	if amountB.LT(minB) {
		return zero, zero, ammtypes.ErrSlippageExceeded.Wrapf("withdrawal yields %s of %s, minimum is %s", amountB, assetB, minB)
	}

	withdrawal := sdk.NewCoins(sdk.NewCoin(assetA, amountA), sdk.NewCoin(assetB, amountB))
	if !withdrawal.IsZero() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, ammtypes.ModuleName, recipient, withdrawal); err != nil {
			return zero, zero, ammtypes.ErrTransferFailed.Wrapf("push %s to %s: %v", withdrawal, recipient, err)
		}
	}

	if err := k.burnShares(ctx, pair.ID(), provider, shares); err != nil {
		return zero, zero, err
	}

	pool.SetReserve(slotA, reserveA.Sub(amountA))
	pool.SetReserve(slotA.Other(), reserveB.Sub(amountB))
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeRemoveLiquidity,
			sdk.NewAttribute(ammtypes.AttributeKeyPairID, pair.ID()),
			sdk.NewAttribute(ammtypes.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, shares.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(pair.ID(), assetA).Add(intToFloat(amountA))
		k.metrics.LiquidityRemoved.WithLabelValues(pair.ID(), assetB).Add(intToFloat(amountB))
	}

	return amountA, amountB, nil
}
