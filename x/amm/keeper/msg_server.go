package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) ammtypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ ammtypes.MsgServer = msgServer{}

func (m msgServer) AddLiquidity(ctx context.Context, msg *ammtypes.MsgAddLiquidity) (*ammtypes.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider := sdk.MustAccAddressFromBech32(msg.Provider)
	recipient := provider
	if msg.Recipient != "" {
		recipient = sdk.MustAccAddressFromBech32(msg.Recipient)
	}

	usedA, usedB, minted, err := m.Keeper.AddLiquidity(ctx, provider, msg.AssetA, msg.AssetB,
		msg.DesiredA, msg.DesiredB, msg.MinA, msg.MinB, recipient, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &ammtypes.MsgAddLiquidityResponse{UsedA: usedA, UsedB: usedB, SharesMinted: minted}, nil
}

func (m msgServer) RemoveLiquidity(ctx context.Context, msg *ammtypes.MsgRemoveLiquidity) (*ammtypes.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider := sdk.MustAccAddressFromBech32(msg.Provider)
	recipient := provider
	if msg.Recipient != "" {
		recipient = sdk.MustAccAddressFromBech32(msg.Recipient)
	}

	amountA, amountB, err := m.Keeper.RemoveLiquidity(ctx, provider, msg.AssetA, msg.AssetB,
		msg.Shares, msg.MinA, msg.MinB, recipient, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &ammtypes.MsgRemoveLiquidityResponse{AmountA: amountA, AmountB: amountB}, nil
}

func (m msgServer) SwapExactIn(ctx context.Context, msg *ammtypes.MsgSwapExactIn) (*ammtypes.MsgSwapExactInResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader := sdk.MustAccAddressFromBech32(msg.Trader)
	recipient := trader
	if msg.Recipient != "" {
		recipient = sdk.MustAccAddressFromBech32(msg.Recipient)
	}

	amountOut, err := m.Keeper.SwapExactIn(ctx, trader, msg.AssetIn, msg.AssetOut,
		msg.AmountIn, msg.MinAmountOut, recipient, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &ammtypes.MsgSwapExactInResponse{AmountOut: amountOut}, nil
}

func (m msgServer) TransferShares(ctx context.Context, msg *ammtypes.MsgTransferShares) (*ammtypes.MsgTransferSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	pair := ammtypes.MustNewPair(msg.AssetA, msg.AssetB)
	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	recipient := sdk.MustAccAddressFromBech32(msg.Recipient)

	if err := m.Keeper.TransferShares(ctx, pair.ID(), owner, recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &ammtypes.MsgTransferSharesResponse{}, nil
}

func (m msgServer) ApproveShares(ctx context.Context, msg *ammtypes.MsgApproveShares) (*ammtypes.MsgApproveSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	pair := ammtypes.MustNewPair(msg.AssetA, msg.AssetB)
	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	spender := sdk.MustAccAddressFromBech32(msg.Spender)

	if err := m.Keeper.ApproveShares(ctx, pair.ID(), owner, spender, msg.Amount); err != nil {
		return nil, err
	}
	return &ammtypes.MsgApproveSharesResponse{}, nil
}

func (m msgServer) TransferSharesFrom(ctx context.Context, msg *ammtypes.MsgTransferSharesFrom) (*ammtypes.MsgTransferSharesFromResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	pair := ammtypes.MustNewPair(msg.AssetA, msg.AssetB)
	spender := sdk.MustAccAddressFromBech32(msg.Spender)
	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	recipient := sdk.MustAccAddressFromBech32(msg.Recipient)

	if err := m.Keeper.TransferSharesFrom(ctx, pair.ID(), spender, owner, recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &ammtypes.MsgTransferSharesFromResponse{}, nil
}
