package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MockBankKeeper is an in-memory asset ledger standing in for the bank
// module. It tracks account and module balances and can be told to fail
// specific transfer directions to exercise abort paths.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// FailPull rejects SendCoinsFromAccountToModule when set.
	FailPull bool
	// FailPush rejects SendCoinsFromModuleToAccount when set. PushFailures
	// limits the rejection to the first N pushes when positive.
	FailPush     bool
	PushFailures int
}

// NewMockBankKeeper creates an empty mock ledger.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an account out of thin air.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// Balance returns an account's balance of one denom.
func (m *MockBankKeeper) Balance(addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

// ModuleBalance returns a module account's balance of one denom.
func (m *MockBankKeeper) ModuleBalance(moduleName, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances["module/"+moduleName].AmountOf(denom))
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	if m.FailPull {
		return fmt.Errorf("pull rejected by test ledger")
	}
	return m.move(senderAddr.String(), "module/"+recipientModule, amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if m.FailPush {
		if m.PushFailures == 0 {
			return fmt.Errorf("push rejected by test ledger")
		}
		m.PushFailures--
		if m.PushFailures == 0 {
			m.FailPush = false
		}
		return fmt.Errorf("push rejected by test ledger")
	}
	return m.move("module/"+senderModule, recipientAddr.String(), amt)
}

func (m *MockBankKeeper) move(from, to string, amt sdk.Coins) error {
	balance := m.balances[from]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s holds %s, needs %s", from, balance, amt)
	}
	m.balances[from] = balance.Sub(amt...)
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}
