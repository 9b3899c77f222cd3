package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/meridianswap/meridian/x/amm/types"
)

func validGenesis() types.GenesisState {
	pool := types.NewPool(types.MustNewPair("uatom", "uusdc"))
	pool.ReserveX = math.NewInt(1_000_000)
	pool.ReserveY = math.NewInt(4_000_000)
	pool.TotalShares = math.NewInt(2_000_000)

	return types.GenesisState{
		Params: types.DefaultParams(),
		Pools:  []types.Pool{pool},
		Positions: []types.SharePosition{
			{PairID: "uatom/uusdc", Address: testAddr(1), Shares: math.NewInt(1_500_000)},
			{PairID: "uatom/uusdc", Address: testAddr(2), Shares: math.NewInt(500_000)},
		},
		Allowances: []types.ShareAllowance{
			{PairID: "uatom/uusdc", Owner: testAddr(1), Spender: testAddr(2), Amount: math.NewInt(1000)},
		},
	}
}

func TestGenesisValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(gs *types.GenesisState)
		wantErr bool
	}{
		{name: "default", mutate: func(gs *types.GenesisState) { *gs = *types.DefaultGenesis() }},
		{name: "populated", mutate: func(*types.GenesisState) {}},
		{
			name: "bad params",
			mutate: func(gs *types.GenesisState) {
				gs.Params.FeeNumerator = 0
			},
			wantErr: true,
		},
		{
			name: "duplicate pool",
			mutate: func(gs *types.GenesisState) {
				gs.Pools = append(gs.Pools, gs.Pools[0])
			},
			wantErr: true,
		},
		{
			name: "non-canonical pool pair",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].Pair = types.Pair{AssetX: "uusdc", AssetY: "uatom"}
			},
			wantErr: true,
		},
		{
			name: "reserves without shares",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].TotalShares = math.ZeroInt()
				gs.Positions = nil
			},
			wantErr: true,
		},
		{
			name: "positions undershoot total shares",
			mutate: func(gs *types.GenesisState) {
				gs.Positions = gs.Positions[:1]
			},
			wantErr: true,
		},
		{
			name: "positions overshoot total shares",
			mutate: func(gs *types.GenesisState) {
				gs.Positions[1].Shares = math.NewInt(600_000)
			},
			wantErr: true,
		},
		{
			name: "position against unknown pool",
			mutate: func(gs *types.GenesisState) {
				gs.Positions[0].PairID = "uakt/uosmo"
			},
			wantErr: true,
		},
		{
			name: "duplicate position",
			mutate: func(gs *types.GenesisState) {
				gs.Positions[1].Address = gs.Positions[0].Address
				gs.Positions[0].Shares = math.NewInt(1_000_000)
				gs.Positions[1].Shares = math.NewInt(1_000_000)
			},
			wantErr: true,
		},
		{
			name: "allowance against unknown pool",
			mutate: func(gs *types.GenesisState) {
				gs.Allowances[0].PairID = "uakt/uosmo"
			},
			wantErr: true,
		},
		{
			name: "non-positive allowance",
			mutate: func(gs *types.GenesisState) {
				gs.Allowances[0].Amount = math.ZeroInt()
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(&gs)
			err := gs.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
