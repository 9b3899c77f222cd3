package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PoolKeyPrefix is the prefix for pool records, keyed by canonical pair ID
	PoolKeyPrefix = []byte{0x01}

	// ParamsKey is the key for the pool family parameters
	ParamsKey = []byte{0x02}

	// ShareBalanceKeyPrefix is the prefix for per-account pool share balances
	ShareBalanceKeyPrefix = []byte{0x03}

	// ShareAllowanceKeyPrefix is the prefix for share spend allowances
	ShareAllowanceKeyPrefix = []byte{0x04}
)

// lengthPrefixed prepends a one-byte length so variable-size segments cannot
// collide across key boundaries.
func lengthPrefixed(segment []byte) []byte {
	if len(segment) > 0xFF {
		panic("key segment exceeds 255 bytes")
	}
	return append([]byte{byte(len(segment))}, segment...)
}

// PoolKey returns the store key for a pool by canonical pair ID.
func PoolKey(pairID string) []byte {
	return append(PoolKeyPrefix, []byte(pairID)...)
}

// ShareBalanceKey returns the store key for one account's shares in one pool.
func ShareBalanceKey(pairID string, addr sdk.AccAddress) []byte {
	key := append([]byte{}, ShareBalanceKeyPrefix...)
	key = append(key, lengthPrefixed([]byte(pairID))...)
	return append(key, addr.Bytes()...)
}

// ShareBalanceKeyByPoolPrefix returns the prefix of all share balances in one pool.
func ShareBalanceKeyByPoolPrefix(pairID string) []byte {
	key := append([]byte{}, ShareBalanceKeyPrefix...)
	return append(key, lengthPrefixed([]byte(pairID))...)
}

// ShareAllowanceKey returns the store key for one owner/spender allowance in one pool.
func ShareAllowanceKey(pairID string, owner, spender sdk.AccAddress) []byte {
	key := append([]byte{}, ShareAllowanceKeyPrefix...)
	key = append(key, lengthPrefixed([]byte(pairID))...)
	key = append(key, lengthPrefixed(owner.Bytes())...)
	return append(key, spender.Bytes()...)
}
