package api

import (
	"net/http"

	"cosmossdk.io/math"
	"github.com/gin-gonic/gin"

	"github.com/meridianswap/meridian/x/amm/types"
)

// PoolView is the JSON rendering of one pool.
type PoolView struct {
	PairID      string `json:"pair_id"`
	AssetX      string `json:"asset_x"`
	AssetY      string `json:"asset_y"`
	ReserveX    string `json:"reserve_x"`
	ReserveY    string `json:"reserve_y"`
	TotalShares string `json:"total_shares"`
}

// QuoteResponse reports a simulated swap outcome.
type QuoteResponse struct {
	PairID    string `json:"pair_id"`
	AssetIn   string `json:"asset_in"`
	AssetOut  string `json:"asset_out"`
	AmountIn  string `json:"amount_in"`
	AmountOut string `json:"amount_out"`
}

// PriceResponse reports a pool's instantaneous price, scaled by 10^18.
type PriceResponse struct {
	PairID     string `json:"pair_id"`
	AssetBase  string `json:"asset_base"`
	AssetQuote string `json:"asset_quote"`
	Price      string `json:"price"`
	Scale      int    `json:"scale"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePools(c *gin.Context) {
	pools := s.pools.Pools()
	views := make([]PoolView, 0, len(pools))
	for _, pool := range pools {
		views = append(views, poolView(pool))
	}
	c.JSON(http.StatusOK, gin.H{"pools": views})
}

func (s *Server) handlePool(c *gin.Context) {
	assetA := c.Param("asset_a")
	assetB := c.Param("asset_b")

	pool, found := s.pools.Pool(assetA, assetB)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool not found"})
		return
	}
	c.JSON(http.StatusOK, poolView(pool))
}

func (s *Server) handleQuote(c *gin.Context) {
	assetIn := c.Query("asset_in")
	assetOut := c.Query("asset_out")
	amountIn, ok := math.NewIntFromString(c.Query("amount_in"))
	if assetIn == "" || assetOut == "" || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset_in, asset_out and integer amount_in are required"})
		return
	}

	pair, err := types.NewPair(assetIn, assetOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pool, found := s.pools.Pool(assetIn, assetOut)
	if !found || pool.TotalShares.IsZero() {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool holds no liquidity"})
		return
	}

	slotIn, _ := pool.Pair.SlotOf(assetIn)
	params := s.pools.Params()
	amountOut, err := types.QuoteOut(amountIn, pool.Reserve(slotIn), pool.Reserve(slotIn.Other()),
		params.FeeNumerator, params.FeeDenominator)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{
		PairID:    pair.ID(),
		AssetIn:   assetIn,
		AssetOut:  assetOut,
		AmountIn:  amountIn.String(),
		AmountOut: amountOut.String(),
	})
}

func (s *Server) handleSpotPrice(c *gin.Context) {
	assetBase := c.Query("base")
	assetQuote := c.Query("quote")

	pair, err := types.NewPair(assetBase, assetQuote)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pool, found := s.pools.Pool(assetBase, assetQuote)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool not found"})
		return
	}

	slotBase, _ := pool.Pair.SlotOf(assetBase)
	price, err := types.SpotPrice(pool.Reserve(slotBase), pool.Reserve(slotBase.Other()))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "pool holds no liquidity"})
		return
	}

	c.JSON(http.StatusOK, PriceResponse{
		PairID:     pair.ID(),
		AssetBase:  assetBase,
		AssetQuote: assetQuote,
		Price:      price.String(),
		Scale:      types.SpotPriceScale,
	})
}

func poolView(pool types.Pool) PoolView {
	return PoolView{
		PairID:      pool.Pair.ID(),
		AssetX:      pool.Pair.AssetX,
		AssetY:      pool.Pair.AssetY,
		ReserveX:    pool.ReserveX.String(),
		ReserveY:    pool.ReserveY.String(),
		TotalShares: pool.TotalShares.String(),
	}
}
