package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the external fungible-asset ledger the pool engine moves
// assets through. SendCoinsFromAccountToModule pulls a caller-authorized
// deposit into the pool's module account; SendCoinsFromModuleToAccount pushes
// pool holdings out. A returned error aborts the enclosing operation before
// any pool state is written.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}
