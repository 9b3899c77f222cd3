package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the module's message types on the amino
// codec. Pool and share records are stored amino-encoded under the module's
// store prefixes, so the same codec backs both signing and persistence.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwapExactIn{}, "amm/MsgSwapExactIn", nil)
	cdc.RegisterConcrete(&MsgTransferShares{}, "amm/MsgTransferShares", nil)
	cdc.RegisterConcrete(&MsgApproveShares{}, "amm/MsgApproveShares", nil)
	cdc.RegisterConcrete(&MsgTransferSharesFrom{}, "amm/MsgTransferSharesFrom", nil)
}

// ModuleCdc is the module's amino codec instance.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
