package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// SpotPriceScale is the fixed-point decimal scale of spot-price queries:
// price = reserveQuote * 10^SpotPriceScale / reserveBase.
const SpotPriceScale = 18
