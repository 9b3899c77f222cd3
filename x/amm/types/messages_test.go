package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meridianswap/meridian/x/amm/types"
)

func testAddr(b byte) string {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20)).String()
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	valid := types.NewMsgAddLiquidity(
		testAddr(1), "uatom", "uusdc",
		math.NewInt(1000), math.NewInt(4000), math.NewInt(900), math.NewInt(3600),
		"", 0,
	)

	tests := []struct {
		name    string
		mutate  func(msg *types.MsgAddLiquidity)
		wantErr error
	}{
		{name: "valid", mutate: func(*types.MsgAddLiquidity) {}},
		{name: "valid with recipient", mutate: func(m *types.MsgAddLiquidity) { m.Recipient = testAddr(2) }},
		{name: "bad provider", mutate: func(m *types.MsgAddLiquidity) { m.Provider = "nonsense" }, wantErr: types.ErrInvalidAddress},
		{name: "bad recipient", mutate: func(m *types.MsgAddLiquidity) { m.Recipient = "nonsense" }, wantErr: types.ErrInvalidAddress},
		{name: "identical assets", mutate: func(m *types.MsgAddLiquidity) { m.AssetB = m.AssetA }, wantErr: types.ErrIdenticalAssets},
		{name: "zero desired A", mutate: func(m *types.MsgAddLiquidity) { m.DesiredA = math.ZeroInt() }, wantErr: types.ErrInvalidInput},
		{name: "zero desired B", mutate: func(m *types.MsgAddLiquidity) { m.DesiredB = math.ZeroInt() }, wantErr: types.ErrInvalidInput},
		{name: "negative min A", mutate: func(m *types.MsgAddLiquidity) { m.MinA = math.NewInt(-1) }, wantErr: types.ErrInvalidInput},
		{name: "min exceeds desired", mutate: func(m *types.MsgAddLiquidity) { m.MinA = math.NewInt(1001) }, wantErr: types.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := *valid
			tc.mutate(&msg)
			err := msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	valid := types.NewMsgRemoveLiquidity(
		testAddr(1), "uatom", "uusdc",
		math.NewInt(500), math.ZeroInt(), math.ZeroInt(),
		"", 0,
	)
	require.NoError(t, valid.ValidateBasic())

	msg := *valid
	msg.Shares = math.ZeroInt()
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInsufficientShares)

	msg = *valid
	msg.MinB = math.NewInt(-5)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = *valid
	msg.Provider = ""
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgSwapExactInValidateBasic(t *testing.T) {
	valid := types.NewMsgSwapExactIn(
		testAddr(1), "uatom", "uusdc",
		math.NewInt(1000), math.ZeroInt(),
		"", 0,
	)
	require.NoError(t, valid.ValidateBasic())

	msg := *valid
	msg.AssetOut = "uatom"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrIdenticalAssets)

	msg = *valid
	msg.AmountIn = math.ZeroInt()
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = *valid
	msg.MinAmountOut = math.NewInt(-1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)
}

func TestMsgShareOpsValidateBasic(t *testing.T) {
	transfer := types.MsgTransferShares{
		Owner:     testAddr(1),
		AssetA:    "uatom",
		AssetB:    "uusdc",
		Recipient: testAddr(2),
		Amount:    math.NewInt(100),
	}
	require.NoError(t, transfer.ValidateBasic())

	transfer.Amount = math.ZeroInt()
	require.ErrorIs(t, transfer.ValidateBasic(), types.ErrInvalidInput)

	approve := types.MsgApproveShares{
		Owner:   testAddr(1),
		AssetA:  "uatom",
		AssetB:  "uusdc",
		Spender: testAddr(2),
		Amount:  math.ZeroInt(),
	}
	// Zero allowance is a revocation, not an error.
	require.NoError(t, approve.ValidateBasic())

	approve.Spender = approve.Owner
	require.ErrorIs(t, approve.ValidateBasic(), types.ErrInvalidAllowance)

	approve.Spender = testAddr(2)
	approve.Amount = math.NewInt(-1)
	require.ErrorIs(t, approve.ValidateBasic(), types.ErrInvalidAllowance)

	transferFrom := types.MsgTransferSharesFrom{
		Spender:   testAddr(2),
		Owner:     testAddr(1),
		AssetA:    "uatom",
		AssetB:    "uusdc",
		Recipient: testAddr(3),
		Amount:    math.NewInt(50),
	}
	require.NoError(t, transferFrom.ValidateBasic())

	transferFrom.Amount = math.ZeroInt()
	require.ErrorIs(t, transferFrom.ValidateBasic(), types.ErrInvalidInput)
}
