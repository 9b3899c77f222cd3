package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/meridianswap/meridian/x/amm/types"
)

// GetShares returns addr's share balance in the pool identified by pairID.
// Accounts with no position read as zero.
func (k Keeper) GetShares(ctx context.Context, pairID string, addr sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(ShareBalanceKey(pairID, addr))
	if bz == nil {
		return math.ZeroInt()
	}
	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

// setShares writes addr's share balance, deleting the record at zero so the
// store never accumulates empty positions.
func (k Keeper) setShares(ctx context.Context, pairID string, addr sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := ShareBalanceKey(pairID, addr)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

func (k Keeper) mintShares(ctx context.Context, pairID string, addr sdk.AccAddress, shares math.Int) {
	k.setShares(ctx, pairID, addr, k.GetShares(ctx, pairID, addr).Add(shares))
}

func (k Keeper) burnShares(ctx context.Context, pairID string, addr sdk.AccAddress, shares math.Int) error {
	balance := k.GetShares(ctx, pairID, addr)
	if balance.LT(shares) {
		return ammtypes.ErrInsufficientShares.Wrapf("%s holds %s shares in %s, needs %s", addr, balance, pairID, shares)
	}
	k.setShares(ctx, pairID, addr, balance.Sub(shares))
	return nil
}

// TransferShares moves pool shares between accounts without touching the
// underlying reserves.
func (k Keeper) TransferShares(ctx context.Context, pairID string, from, to sdk.AccAddress, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return ammtypes.ErrInvalidInput.Wrap("share transfer amount must be positive")
	}
	if err := k.burnShares(ctx, pairID, from, shares); err != nil {
		return err
	}
	k.mintShares(ctx, pairID, to, shares)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeTransferShares,
			sdk.NewAttribute(ammtypes.AttributeKeyPairID, pairID),
			sdk.NewAttribute(ammtypes.AttributeKeyOwner, from.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, shares.String()),
		),
	)
	return nil
}

// ApproveShares sets the absolute number of owner's shares that spender may
// move on owner's behalf, replacing any prior allowance. Zero clears it.
func (k Keeper) ApproveShares(ctx context.Context, pairID string, owner, spender sdk.AccAddress, shares math.Int) error {
	if shares.IsNil() || shares.IsNegative() {
		return ammtypes.ErrInvalidInput.Wrap("share allowance cannot be negative")
	}
	k.setShareAllowance(ctx, pairID, owner, spender, shares)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeApproveShares,
			sdk.NewAttribute(ammtypes.AttributeKeyPairID, pairID),
			sdk.NewAttribute(ammtypes.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(ammtypes.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, shares.String()),
		),
	)
	return nil
}

// GetShareAllowance returns how many of owner's shares spender may still move.
func (k Keeper) GetShareAllowance(ctx context.Context, pairID string, owner, spender sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(ShareAllowanceKey(pairID, owner, spender))
	if bz == nil {
		return math.ZeroInt()
	}
	var allowance math.Int
	if err := allowance.Unmarshal(bz); err != nil {
		panic(err)
	}
	return allowance
}

func (k Keeper) setShareAllowance(ctx context.Context, pairID string, owner, spender sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := ShareAllowanceKey(pairID, owner, spender)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// TransferSharesFrom moves owner's shares to recipient on the strength of a
// prior allowance to spender, consuming the allowance by the amount moved.
func (k Keeper) TransferSharesFrom(ctx context.Context, pairID string, spender, owner, to sdk.AccAddress, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return ammtypes.ErrInvalidInput.Wrap("share transfer amount must be positive")
	}
	allowance := k.GetShareAllowance(ctx, pairID, owner, spender)
	if allowance.LT(shares) {
		return ammtypes.ErrInvalidAllowance.Wrapf("%s may move %s of %s's shares in %s, needs %s",
			spender, allowance, owner, pairID, shares)
	}
	if err := k.burnShares(ctx, pairID, owner, shares); err != nil {
		return err
	}
	k.mintShares(ctx, pairID, to, shares)
	k.setShareAllowance(ctx, pairID, owner, spender, allowance.Sub(shares))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeTransferShares,
			sdk.NewAttribute(ammtypes.AttributeKeyPairID, pairID),
			sdk.NewAttribute(ammtypes.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(ammtypes.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyShares, shares.String()),
		),
	)
	return nil
}

// TotalShares returns the outstanding share supply for a pool, zero when the
// pool does not exist.
func (k Keeper) TotalShares(ctx context.Context, pair ammtypes.Pair) math.Int {
	pool, found := k.GetPool(ctx, pair)
	if !found {
		return math.ZeroInt()
	}
	return pool.TotalShares
}

// IterateShares walks every share position in the store. Stop iteration by
// returning true from cb.
func (k Keeper) IterateShares(ctx context.Context, cb func(pos ammtypes.SharePosition) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ShareBalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		pairID, addr := parseShareBalanceKey(iterator.Key())
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(ammtypes.SharePosition{PairID: pairID, Address: addr.String(), Shares: shares}) {
			break
		}
	}
}

// IterateSharesByPool walks the share positions of a single pool.
func (k Keeper) IterateSharesByPool(ctx context.Context, pairID string, cb func(addr sdk.AccAddress, shares math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ShareBalanceKeyByPoolPrefix(pairID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		_, addr := parseShareBalanceKey(iterator.Key())
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(addr, shares) {
			break
		}
	}
}

// IterateShareAllowances walks every share allowance in the store.
func (k Keeper) IterateShareAllowances(ctx context.Context, cb func(allowance ammtypes.ShareAllowance) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ShareAllowanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		pairID, owner, spender := parseShareAllowanceKey(iterator.Key())
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(ammtypes.ShareAllowance{
			PairID:  pairID,
			Owner:   owner.String(),
			Spender: spender.String(),
			Amount:  amount,
		}) {
			break
		}
	}
}

func parseShareBalanceKey(key []byte) (string, sdk.AccAddress) {
	rest := key[len(ShareBalanceKeyPrefix):]
	pairLen := int(rest[0])
	pairID := string(rest[1 : 1+pairLen])
	return pairID, sdk.AccAddress(rest[1+pairLen:])
}

func parseShareAllowanceKey(key []byte) (string, sdk.AccAddress, sdk.AccAddress) {
	rest := key[len(ShareAllowanceKeyPrefix):]
	pairLen := int(rest[0])
	pairID := string(rest[1 : 1+pairLen])
	rest = rest[1+pairLen:]
	ownerLen := int(rest[0])
	owner := sdk.AccAddress(rest[1 : 1+ownerLen])
	return pairID, owner, sdk.AccAddress(rest[1+ownerLen:])
}
