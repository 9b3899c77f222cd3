package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrIdenticalAssets    = errors.Register(ModuleName, 2, "pair assets must be distinct")
	ErrInvalidInput       = errors.Register(ModuleName, 3, "invalid input")
	ErrExpired            = errors.Register(ModuleName, 4, "deadline has passed")
	ErrSlippageExceeded   = errors.Register(ModuleName, 5, "amount violates slippage bound")
	ErrInsufficientShares = errors.Register(ModuleName, 6, "insufficient pool shares")
	ErrZeroShares         = errors.Register(ModuleName, 7, "deposit rounds to zero shares")
	ErrTransferFailed     = errors.Register(ModuleName, 8, "asset transfer failed")
	ErrNoLiquidity        = errors.Register(ModuleName, 9, "pool has no liquidity")
	ErrInvalidAddress     = errors.Register(ModuleName, 10, "invalid address")
	ErrPoolCorrupted      = errors.Register(ModuleName, 11, "pool state corrupted")
	ErrInvalidAllowance   = errors.Register(ModuleName, 12, "invalid share allowance")
)
