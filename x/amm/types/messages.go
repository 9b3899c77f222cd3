package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgAddLiquidity deposits up to DesiredA/DesiredB of the two assets into the
// pair's pool. A zero Deadline disables the expiry check.
type MsgAddLiquidity struct {
	Provider  string   `json:"provider"`
	AssetA    string   `json:"asset_a"`
	AssetB    string   `json:"asset_b"`
	DesiredA  math.Int `json:"desired_a"`
	DesiredB  math.Int `json:"desired_b"`
	MinA      math.Int `json:"min_a"`
	MinB      math.Int `json:"min_b"`
	Recipient string   `json:"recipient"`
	Deadline  int64    `json:"deadline"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance.
func NewMsgAddLiquidity(provider, assetA, assetB string, desiredA, desiredB, minA, minB math.Int, recipient string, deadline int64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:  provider,
		AssetA:    assetA,
		AssetB:    assetB,
		DesiredA:  desiredA,
		DesiredB:  desiredB,
		MinA:      minA,
		MinB:      minB,
		Recipient: recipient,
		Deadline:  deadline,
	}
}

// ValidateBasic performs stateless validation of MsgAddLiquidity.
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.Recipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
			return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
		}
	}
	if _, err := NewPair(msg.AssetA, msg.AssetB); err != nil {
		return err
	}
	if msg.DesiredA.IsNil() || !msg.DesiredA.IsPositive() {
		return ErrInvalidInput.Wrap("desired amount A must be positive")
	}
	if msg.DesiredB.IsNil() || !msg.DesiredB.IsPositive() {
		return ErrInvalidInput.Wrap("desired amount B must be positive")
	}
	if msg.MinA.IsNil() || msg.MinA.IsNegative() || msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return ErrInvalidInput.Wrap("minimum amounts cannot be negative")
	}
	if msg.MinA.GT(msg.DesiredA) || msg.MinB.GT(msg.DesiredB) {
		return ErrInvalidInput.Wrap("minimum amount exceeds desired amount")
	}
	return nil
}

// MsgRemoveLiquidity burns Shares of the pair's pool and withdraws the
// proportional reserves.
type MsgRemoveLiquidity struct {
	Provider  string   `json:"provider"`
	AssetA    string   `json:"asset_a"`
	AssetB    string   `json:"asset_b"`
	Shares    math.Int `json:"shares"`
	MinA      math.Int `json:"min_a"`
	MinB      math.Int `json:"min_b"`
	Recipient string   `json:"recipient"`
	Deadline  int64    `json:"deadline"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance.
func NewMsgRemoveLiquidity(provider, assetA, assetB string, shares, minA, minB math.Int, recipient string, deadline int64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:  provider,
		AssetA:    assetA,
		AssetB:    assetB,
		Shares:    shares,
		MinA:      minA,
		MinB:      minB,
		Recipient: recipient,
		Deadline:  deadline,
	}
}

// ValidateBasic performs stateless validation of MsgRemoveLiquidity.
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.Recipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
			return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
		}
	}
	if _, err := NewPair(msg.AssetA, msg.AssetB); err != nil {
		return err
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return ErrInsufficientShares.Wrap("shares to burn must be positive")
	}
	if msg.MinA.IsNil() || msg.MinA.IsNegative() || msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return ErrInvalidInput.Wrap("minimum amounts cannot be negative")
	}
	return nil
}

// MsgSwapExactIn swaps a fixed AmountIn of AssetIn for at least MinAmountOut
// of AssetOut.
type MsgSwapExactIn struct {
	Trader       string   `json:"trader"`
	AssetIn      string   `json:"asset_in"`
	AssetOut     string   `json:"asset_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Recipient    string   `json:"recipient"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapExactIn creates a new MsgSwapExactIn instance.
func NewMsgSwapExactIn(trader, assetIn, assetOut string, amountIn, minAmountOut math.Int, recipient string, deadline int64) *MsgSwapExactIn {
	return &MsgSwapExactIn{
		Trader:       trader,
		AssetIn:      assetIn,
		AssetOut:     assetOut,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Recipient:    recipient,
		Deadline:     deadline,
	}
}

// ValidateBasic performs stateless validation of MsgSwapExactIn.
func (msg MsgSwapExactIn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}
	if msg.Recipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
			return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
		}
	}
	if _, err := NewPair(msg.AssetIn, msg.AssetOut); err != nil {
		return err
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidInput.Wrap("swap input amount must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return ErrInvalidInput.Wrap("minimum output cannot be negative")
	}
	return nil
}

// MsgTransferShares moves pool shares between accounts.
type MsgTransferShares struct {
	Owner     string   `json:"owner"`
	AssetA    string   `json:"asset_a"`
	AssetB    string   `json:"asset_b"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// ValidateBasic performs stateless validation of MsgTransferShares.
func (msg MsgTransferShares) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
	}
	if _, err := NewPair(msg.AssetA, msg.AssetB); err != nil {
		return err
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidInput.Wrap("share transfer amount must be positive")
	}
	return nil
}

// MsgApproveShares authorizes a spender over the owner's pool shares. Amount
// replaces any prior allowance; zero revokes it.
type MsgApproveShares struct {
	Owner   string   `json:"owner"`
	AssetA  string   `json:"asset_a"`
	AssetB  string   `json:"asset_b"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

// ValidateBasic performs stateless validation of MsgApproveShares.
func (msg MsgApproveShares) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid spender address: %s", err)
	}
	if msg.Owner == msg.Spender {
		return ErrInvalidAllowance.Wrap("owner cannot approve itself")
	}
	if _, err := NewPair(msg.AssetA, msg.AssetB); err != nil {
		return err
	}
	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return ErrInvalidAllowance.Wrap("allowance cannot be negative")
	}
	return nil
}

// MsgTransferSharesFrom moves pool shares out of Owner's balance on the
// strength of a prior approval granted to Spender.
type MsgTransferSharesFrom struct {
	Spender   string   `json:"spender"`
	Owner     string   `json:"owner"`
	AssetA    string   `json:"asset_a"`
	AssetB    string   `json:"asset_b"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// ValidateBasic performs stateless validation of MsgTransferSharesFrom.
func (msg MsgTransferSharesFrom) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid spender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
	}
	if _, err := NewPair(msg.AssetA, msg.AssetB); err != nil {
		return err
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidInput.Wrap("share transfer amount must be positive")
	}
	return nil
}
