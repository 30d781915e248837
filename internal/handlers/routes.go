package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mollybeach/honeyvaiult/internal/middleware"
)

// Router groups the handlers served by the API
type Router struct {
	Vaults *VaultHandler
	Tokens *TokenHandler
	Assets *AssetHandler
	Users  *UserHandler
	Audit  *AuditHandler
}

// Register mounts every route on r. Mutating routes require a caller.
func (h *Router) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.RequireAuth()

	// Factory routes
	r.GET("/factory", h.Vaults.GetFactory)
	r.POST("/factory/ownership", auth, h.Vaults.TransferFactoryOwnership)

	// Vault routes
	r.GET("/vaults", h.Vaults.List)
	r.POST("/vaults", auth, h.Vaults.Create)
	r.POST("/vaults/import", auth, h.Vaults.Import)
	r.GET("/vaults/:address", h.Vaults.Get)
	r.GET("/vaults/:address/allocations", h.Vaults.GetAllocations)
	r.POST("/vaults/:address/assets", auth, h.Vaults.AddAsset)
	r.PUT("/vaults/:address/assets/:asset", auth, h.Vaults.UpdateAllocation)
	r.DELETE("/vaults/:address/assets/:asset", auth, h.Vaults.RemoveAsset)
	r.POST("/vaults/:address/ownership", auth, h.Vaults.TransferOwnership)
	r.POST("/vaults/:address/deposit", auth, h.Vaults.Deposit)
	r.GET("/vaults/:address/preview-deposit", h.Vaults.PreviewDeposit)
	r.GET("/vaults/:address/shares/:holder", h.Vaults.GetShares)
	r.GET("/vaults/:address/events", h.Vaults.GetEvents)
	r.GET("/vaults/:address/history", h.Audit.History)
	r.GET("/vaults/:address/snapshot", h.Audit.Snapshot)

	// Token routes
	r.GET("/tokens", h.Tokens.List)
	r.POST("/tokens/:address/mint", auth, h.Tokens.Mint)
	r.POST("/tokens/:address/approve", auth, h.Tokens.Approve)
	r.GET("/tokens/:address/balances/:holder", h.Tokens.Balance)

	// Asset catalog routes
	r.GET("/assets", h.Assets.List)
	r.POST("/assets", auth, h.Assets.Register)
	r.GET("/assets/risk", h.Assets.ListRisk)
	r.GET("/assets/:address/risk", h.Assets.GetRisk)
	r.POST("/assets/:address/risk", h.Assets.SimulateRisk)

	// User routes
	r.GET("/users/:address/positions", h.Users.ListPositions)
	r.GET("/recommendations", h.Users.Recommendations)
}
