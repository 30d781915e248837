package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mollybeach/honeyvaiult/internal/services"
)

// UserHandler handles wallet-centric endpoints
type UserHandler struct {
	vaultSvc          *services.VaultService
	recommendationSvc *services.RecommendationService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(vaultSvc *services.VaultService, recommendationSvc *services.RecommendationService) *UserHandler {
	return &UserHandler{
		vaultSvc:          vaultSvc,
		recommendationSvc: recommendationSvc,
	}
}

// ListPositions handles GET /users/:address/positions
// @Summary List a wallet's vault positions
// @Description Every vault where the wallet holds shares, with the shares' value in base units
// @Tags users
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {array} models.Position
// @Failure 400 {object} models.ErrorResponse
// @Router /users/{address}/positions [get]
func (h *UserHandler) ListPositions(c *gin.Context) {
	holder, ok := addressParam(c, "address")
	if !ok {
		return
	}

	positions, err := h.vaultSvc.Positions(c.Request.Context(), holder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

// Recommendations handles GET /recommendations
// @Summary Suggested vaults
// @Tags users
// @Produce json
// @Param max_risk_tier query int false "Only suggest vaults at or below this tier (1-5)"
// @Success 200 {array} models.RecommendedVault
// @Failure 400 {object} models.ErrorResponse
// @Router /recommendations [get]
func (h *UserHandler) Recommendations(c *gin.Context) {
	var maxTier uint64
	if s := c.Query("max_risk_tier"); s != "" {
		var err error
		maxTier, err = strconv.ParseUint(s, 10, 8)
		if err != nil || maxTier > 5 {
			badRequest(c, "max_risk_tier must be between 0 and 5")
			return
		}
	}
	c.JSON(http.StatusOK, h.recommendationSvc.Recommend(c.Request.Context(), uint8(maxTier)))
}
