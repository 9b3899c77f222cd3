package api

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meridianswap/meridian/x/amm/types"
)

// SnapshotPoolReader serves quotes from a fixed state snapshot, typically a
// genesis export. It implements PoolReader.
type SnapshotPoolReader struct {
	params types.Params
	pools  map[string]types.Pool
}

// NewSnapshotPoolReader builds a reader over an in-memory genesis state.
func NewSnapshotPoolReader(genState types.GenesisState) (*SnapshotPoolReader, error) {
	if err := genState.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state snapshot: %w", err)
	}

	pools := make(map[string]types.Pool, len(genState.Pools))
	for _, pool := range genState.Pools {
		pools[pool.Pair.ID()] = pool
	}
	return &SnapshotPoolReader{params: genState.Params, pools: pools}, nil
}

// LoadSnapshot reads a genesis-export JSON file into a SnapshotPoolReader.
func LoadSnapshot(path string) (*SnapshotPoolReader, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return NewSnapshotPoolReader(genState)
}

func (r *SnapshotPoolReader) Pool(assetA, assetB string) (types.Pool, bool) {
	pair, err := types.NewPair(assetA, assetB)
	if err != nil {
		return types.Pool{}, false
	}
	pool, ok := r.pools[pair.ID()]
	return pool, ok
}

func (r *SnapshotPoolReader) Pools() []types.Pool {
	pools := make([]types.Pool, 0, len(r.pools))
	for _, pool := range r.pools {
		pools = append(pools, pool)
	}
	return pools
}

func (r *SnapshotPoolReader) Params() types.Params {
	return r.params
}
