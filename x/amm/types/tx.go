package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the transaction-envelope surface of the amm module.
type MsgServer interface {
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	SwapExactIn(context.Context, *MsgSwapExactIn) (*MsgSwapExactInResponse, error)
	TransferShares(context.Context, *MsgTransferShares) (*MsgTransferSharesResponse, error)
	ApproveShares(context.Context, *MsgApproveShares) (*MsgApproveSharesResponse, error)
	TransferSharesFrom(context.Context, *MsgTransferSharesFrom) (*MsgTransferSharesFromResponse, error)
}

// MsgAddLiquidityResponse reports the amounts actually deposited and the
// shares minted for them.
type MsgAddLiquidityResponse struct {
	UsedA        math.Int `json:"used_a"`
	UsedB        math.Int `json:"used_b"`
	SharesMinted math.Int `json:"shares_minted"`
}

// MsgRemoveLiquidityResponse reports the amounts withdrawn.
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapExactInResponse reports the output amount delivered.
type MsgSwapExactInResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgTransferSharesResponse is the empty transfer acknowledgement.
type MsgTransferSharesResponse struct{}

// MsgApproveSharesResponse is the empty approval acknowledgement.
type MsgApproveSharesResponse struct{}

// MsgTransferSharesFromResponse is the empty delegated-transfer acknowledgement.
type MsgTransferSharesFromResponse struct{}
