package types

import (
	"fmt"
)

// Default fee tier: 997/1000 retained, a 0.3% swap fee.
const (
	DefaultFeeNumerator   uint64 = 997
	DefaultFeeDenominator uint64 = 1000
)

// Params configure the pool family. The fee tier is a construction-time
// parameter shared by every pool, not per-pool state.
type Params struct {
	// FeeNumerator/FeeDenominator is the fraction of a swap input retained
	// after the fee. 1/1 disables the fee.
	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`
}

// DefaultParams returns the default pool family parameters.
func DefaultParams() Params {
	return Params{
		FeeNumerator:   DefaultFeeNumerator,
		FeeDenominator: DefaultFeeDenominator,
	}
}

// Validate checks that the fee fraction is a sane retained fraction in (0, 1].
func (p Params) Validate() error {
	if p.FeeNumerator == 0 {
		return fmt.Errorf("fee numerator must be positive")
	}
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee denominator must be positive")
	}
	if p.FeeNumerator > p.FeeDenominator {
		return fmt.Errorf("fee numerator %d exceeds denominator %d", p.FeeNumerator, p.FeeDenominator)
	}
	return nil
}
