package types

// Event types emitted by the amm module
const (
	EventTypeAddLiquidity    = "amm_add_liquidity"
	EventTypeRemoveLiquidity = "amm_remove_liquidity"
	EventTypeSwap            = "amm_swap"
	EventTypeTransferShares  = "amm_transfer_shares"
	EventTypeApproveShares   = "amm_approve_shares"
)

// Event attribute keys
const (
	AttributeKeyPairID       = "pair_id"
	AttributeKeyProvider     = "provider"
	AttributeKeyTrader       = "trader"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyAssetIn      = "asset_in"
	AttributeKeyAssetOut     = "asset_out"
	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyAmountA      = "amount_a"
	AttributeKeyAmountB      = "amount_b"
	AttributeKeyShares       = "shares"
	AttributeKeyOwner        = "owner"
	AttributeKeySpender      = "spender"
)
