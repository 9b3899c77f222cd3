package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridianswap/meridian/x/amm/types"
)

func TestNewPairCanonicalizes(t *testing.T) {
	tests := []struct {
		name    string
		assetA  string
		assetB  string
		wantX   string
		wantY   string
		wantID  string
		wantErr bool
	}{
		{name: "already ordered", assetA: "uatom", assetB: "uusdc", wantX: "uatom", wantY: "uusdc", wantID: "uatom/uusdc"},
		{name: "reversed input", assetA: "uusdc", assetB: "uatom", wantX: "uatom", wantY: "uusdc", wantID: "uatom/uusdc"},
		{name: "identical assets", assetA: "uatom", assetB: "uatom", wantErr: true},
		{name: "empty first asset", assetA: "", assetB: "uatom", wantErr: true},
		{name: "empty second asset", assetA: "uatom", assetB: "", wantErr: true},
		{name: "separator in first asset", assetA: "ibc/27394FB092D2EC", assetB: "uatom", wantErr: true},
		{name: "separator in second asset", assetA: "uatom", assetB: "factory/creator/token", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pair, err := types.NewPair(tc.assetA, tc.assetB)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantX, pair.AssetX)
			require.Equal(t, tc.wantY, pair.AssetY)
			require.Equal(t, tc.wantID, pair.ID())
		})
	}
}

func TestPairOrderSymmetry(t *testing.T) {
	forward, err := types.NewPair("uosmo", "uakt")
	require.NoError(t, err)
	reversed, err := types.NewPair("uakt", "uosmo")
	require.NoError(t, err)

	require.Equal(t, forward, reversed)
	require.Equal(t, forward.ID(), reversed.ID())
}

func TestPairSlotOf(t *testing.T) {
	pair := types.MustNewPair("uatom", "uusdc")

	slot, ok := pair.SlotOf("uatom")
	require.True(t, ok)
	require.Equal(t, types.SlotX, slot)
	require.Equal(t, "uatom", pair.Asset(slot))

	slot, ok = pair.SlotOf("uusdc")
	require.True(t, ok)
	require.Equal(t, types.SlotY, slot)
	require.Equal(t, "uusdc", pair.Asset(slot))

	_, ok = pair.SlotOf("uakt")
	require.False(t, ok)

	require.Equal(t, types.SlotY, types.SlotX.Other())
	require.Equal(t, types.SlotX, types.SlotY.Other())
}

func TestPairValidate(t *testing.T) {
	require.NoError(t, types.MustNewPair("uatom", "uusdc").Validate())

	// Hand-built pairs can violate canonical ordering.
	require.Error(t, types.Pair{AssetX: "uusdc", AssetY: "uatom"}.Validate())
	require.Error(t, types.Pair{AssetX: "uatom", AssetY: "uatom"}.Validate())
	require.Error(t, types.Pair{AssetX: "a/b", AssetY: "c"}.Validate())
}
