package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/services"
)

// AssetHandler serves the RWA asset catalog and its risk signatures
type AssetHandler struct {
	tokenSvc *services.TokenService
	riskSvc  *services.RiskService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(tokenSvc *services.TokenService, riskSvc *services.RiskService) *AssetHandler {
	return &AssetHandler{
		tokenSvc: tokenSvc,
		riskSvc:  riskSvc,
	}
}

// List handles GET /assets
// @Summary List RWA assets
// @Description RWA tokens with their product metadata, lowest risk tier first
// @Tags assets
// @Produce json
// @Success 200 {array} models.TokenInfo
// @Router /assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	assets, err := h.tokenSvc.ListAssets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// Register handles POST /assets
// @Summary Register an RWA asset
// @Description Deploys an RWA token from the factory owner and mints the initial supply to them
// @Tags assets
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Factory owner wallet"
// @Param request body models.RegisterAssetRequest true "Asset metadata"
// @Success 201 {object} models.TokenInfo
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /assets [post]
func (h *AssetHandler) Register(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req models.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	info, err := h.tokenSvc.RegisterAsset(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.riskSvc.Simulate(c.Request.Context(), info.Address); err != nil {
		log.WithError(err).WithField("asset", info.Address.String()).Warn("failed to simulate risk for new asset")
	}
	c.JSON(http.StatusCreated, info)
}

// ListRisk handles GET /assets/risk
// @Summary List risk signatures
// @Description Latest simulated risk signature of every RWA asset, in first-simulated order
// @Tags assets
// @Produce json
// @Success 200 {array} models.RiskSignature
// @Router /assets/risk [get]
func (h *AssetHandler) ListRisk(c *gin.Context) {
	c.JSON(http.StatusOK, h.riskSvc.Signatures())
}

// GetRisk handles GET /assets/:address/risk
// @Summary Get an asset's risk signature
// @Tags assets
// @Produce json
// @Param address path string true "RWA token address"
// @Success 200 {object} models.RiskSignature
// @Failure 404 {object} models.ErrorResponse
// @Router /assets/{address}/risk [get]
func (h *AssetHandler) GetRisk(c *gin.Context) {
	asset, ok := addressParam(c, "address")
	if !ok {
		return
	}
	sig, err := h.riskSvc.Signature(asset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

// SimulateRisk handles POST /assets/:address/risk
// @Summary Re-simulate an asset's risk signature
// @Description Recomputes the signature from the token's current metadata and remaining term
// @Tags assets
// @Produce json
// @Param address path string true "RWA token address"
// @Success 200 {object} models.RiskSignature
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /assets/{address}/risk [post]
func (h *AssetHandler) SimulateRisk(c *gin.Context) {
	asset, ok := addressParam(c, "address")
	if !ok {
		return
	}
	sig, err := h.riskSvc.Simulate(c.Request.Context(), asset)
	if err != nil {
		respondTokenError(c, err)
		return
	}
	c.JSON(http.StatusOK, sig)
}
