package types

import (
	"cosmossdk.io/math"
)

// Pricing primitives for the constant-product pool family. All arithmetic is
// integer arithmetic over math.Int; every division truncates toward zero,
// which biases rounding remainders to the pool rather than the caller.

// QuoteOut computes the constant-product swap output for the given input and
// reserves, independent of any pool state:
//
//	amountOut = amountIn*feeNum*reserveOut / (reserveIn*feeDen + amountIn*feeNum)
//
// feeNum/feeDen is the retained fraction of the input (997/1000 charges a
// 0.3% fee, 1/1 is fee-less). Fails with ErrInvalidInput on a zero amount,
// zero reserve, or zero fee component.
func QuoteOut(amountIn, reserveIn, reserveOut math.Int, feeNum, feeDen uint64) (math.Int, error) {
	if feeNum == 0 || feeDen == 0 || feeNum > feeDen {
		return math.Int{}, ErrInvalidInput.Wrapf("invalid fee fraction %d/%d", feeNum, feeDen)
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, ErrInvalidInput.Wrap("input amount must be positive")
	}
	if reserveIn.IsNil() || !reserveIn.IsPositive() || reserveOut.IsNil() || !reserveOut.IsPositive() {
		return math.Int{}, ErrInvalidInput.Wrap("reserves must be positive")
	}

	amountInEff := amountIn.Mul(math.NewIntFromUint64(feeNum))
	numerator := amountInEff.Mul(reserveOut)
	denominator := reserveIn.Mul(math.NewIntFromUint64(feeDen)).Add(amountInEff)

	return numerator.Quo(denominator), nil
}

// SpotPrice returns reserveQuote scaled by 10^SpotPriceScale and divided by
// reserveBase. Fails with ErrNoLiquidity unless both reserves are positive;
// an empty pool has no price, not a zero price.
func SpotPrice(reserveBase, reserveQuote math.Int) (math.Int, error) {
	if reserveBase.IsNil() || !reserveBase.IsPositive() || reserveQuote.IsNil() || !reserveQuote.IsPositive() {
		return math.Int{}, ErrNoLiquidity.Wrap("spot price requires positive reserves on both sides")
	}
	scale := math.NewIntWithDecimal(1, SpotPriceScale)
	return reserveQuote.Mul(scale).Quo(reserveBase), nil
}

// IntegerSqrt computes floor(sqrt(n)) exactly via Babylonian iteration seeded
// at n/2 + 1; the estimate decreases monotonically to the root. Used to
// bootstrap the share count of a pool's first deposit.
func IntegerSqrt(n math.Int) (math.Int, error) {
	if n.IsNil() || n.IsNegative() {
		return math.Int{}, ErrInvalidInput.Wrap("square root of a negative amount")
	}
	if n.IsZero() {
		return math.ZeroInt(), nil
	}
	// For 1..3 the seed n/2+1 does not exceed the initial estimate and the
	// iteration would never start; the root is 1 for all of them.
	if n.LTE(math.NewInt(3)) {
		return math.OneInt(), nil
	}

	two := math.NewInt(2)
	sqrt := n
	next := n.Quo(two).AddRaw(1)
	for next.LT(sqrt) {
		sqrt = next
		next = n.Quo(next).Add(next).Quo(two)
	}
	return sqrt, nil
}
