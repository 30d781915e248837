package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/services"
)

// VaultHandler handles factory and vault endpoints
type VaultHandler struct {
	vaultSvc *services.VaultService
}

// NewVaultHandler creates a new VaultHandler
func NewVaultHandler(vaultSvc *services.VaultService) *VaultHandler {
	return &VaultHandler{
		vaultSvc: vaultSvc,
	}
}

// GetFactory handles GET /factory
// @Summary Describe the vault factory
// @Tags factory
// @Produce json
// @Success 200 {object} models.FactoryResponse
// @Router /factory [get]
func (h *VaultHandler) GetFactory(c *gin.Context) {
	resp, err := h.vaultSvc.Factory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TransferFactoryOwnership handles POST /factory/ownership
// @Summary Transfer factory ownership
// @Tags factory
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param request body models.TransferOwnershipRequest true "New owner"
// @Success 200 {object} models.TxResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /factory/ownership [post]
func (h *VaultHandler) TransferFactoryOwnership(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req models.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.vaultSvc.TransferFactoryOwnership(c.Request.Context(), caller, req.NewOwner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /vaults
// @Summary Create a vault
// @Description Deploy a vault with a validated initial allocation. The vault is owned by the caller.
// @Tags vaults
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param request body models.CreateVaultRequest true "Vault configuration"
// @Success 201 {object} models.TxResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /vaults [post]
func (h *VaultHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req models.CreateVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.create(c, caller, req.Config())
}

// Import handles POST /vaults/import
// @Summary Create a vault from a CSV allocation file
// @Description Multipart form: a "metadata" field holding a CreateVaultRequest without assets, and an "allocations" CSV file with asset and weight_bps columns.
// @Tags vaults
// @Accept multipart/form-data
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param metadata formData string true "CreateVaultRequest JSON"
// @Param allocations formData file true "Allocation CSV"
// @Success 201 {object} models.TxResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /vaults/import [post]
func (h *VaultHandler) Import(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req models.CreateVaultRequest
	if err := json.Unmarshal([]byte(c.PostForm("metadata")), &req); err != nil {
		badRequest(c, "invalid metadata: "+err.Error())
		return
	}
	if req.Name == "" || req.Symbol == "" {
		badRequest(c, "metadata requires name and symbol")
		return
	}

	fileHeader, err := c.FormFile("allocations")
	if err != nil {
		badRequest(c, "allocations file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "failed to read allocations file")
		return
	}
	defer file.Close()

	rows, err := ParseAllocationCSV(file)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	cfg := req.Config()
	cfg.Assets = make([]models.Address, len(rows))
	cfg.Weights = make([]models.BasisPoints, len(rows))
	for i, row := range rows {
		cfg.Assets[i] = row.Asset
		cfg.Weights[i] = row.WeightBps
	}
	h.create(c, caller, cfg)
}

func (h *VaultHandler) create(c *gin.Context, caller models.Address, cfg models.VaultConfig) {
	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.vaultSvc.CreateVault(ctx, caller, cfg)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Warnings = wc.List()
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /vaults
// @Summary List vaults
// @Tags vaults
// @Produce json
// @Success 200 {object} models.VaultListResponse
// @Router /vaults [get]
func (h *VaultHandler) List(c *gin.Context) {
	ctx, wc := services.NewWarningContext(c.Request.Context())
	vaults, err := h.vaultSvc.ListVaults(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VaultListResponse{
		Vaults:   vaults,
		Warnings: wc.List(),
	})
}

// Get handles GET /vaults/:address
// @Summary Get a vault
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Success 200 {object} models.VaultResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /vaults/{address} [get]
func (h *VaultHandler) Get(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	ctx, wc := services.NewWarningContext(c.Request.Context())
	summary, err := h.vaultSvc.GetVault(ctx, addr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VaultResponse{
		VaultSummary: *summary,
		Warnings:     wc.List(),
	})
}

// GetAllocations handles GET /vaults/:address/allocations
// @Summary Get a vault's allocation table
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Success 200 {object} models.AllocationsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /vaults/{address}/allocations [get]
func (h *VaultHandler) GetAllocations(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	ctx, wc := services.NewWarningContext(c.Request.Context())
	allocs, err := h.vaultSvc.GetAllocations(ctx, addr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AllocationsResponse{
		Allocations: *allocs,
		Warnings:    wc.List(),
	})
}

// AddAsset handles POST /vaults/:address/assets
// @Summary Add an asset to a vault
// @Tags vaults
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param address path string true "Vault address"
// @Param request body models.AddAssetRequest true "Asset and weight"
// @Success 200 {object} models.TxResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /vaults/{address}/assets [post]
func (h *VaultHandler) AddAsset(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req models.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.vaultSvc.AddAsset(ctx, caller, addr, req.Asset, req.WeightBps)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Warnings = wc.List()
	c.JSON(http.StatusOK, resp)
}

// UpdateAllocation handles PUT /vaults/:address/assets/:asset
// @Summary Change an asset's weight
// @Tags vaults
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param address path string true "Vault address"
// @Param asset path string true "Asset address"
// @Param request body models.UpdateAllocationRequest true "New weight"
// @Success 200 {object} models.TxResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /vaults/{address}/assets/{asset} [put]
func (h *VaultHandler) UpdateAllocation(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	asset, ok := addressParam(c, "asset")
	if !ok {
		return
	}
	var req models.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.vaultSvc.UpdateAllocation(ctx, caller, addr, asset, req.WeightBps)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Warnings = wc.List()
	c.JSON(http.StatusOK, resp)
}

// RemoveAsset handles DELETE /vaults/:address/assets/:asset
// @Summary Remove an asset from a vault
// @Tags vaults
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param address path string true "Vault address"
// @Param asset path string true "Asset address"
// @Success 200 {object} models.TxResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /vaults/{address}/assets/{asset} [delete]
func (h *VaultHandler) RemoveAsset(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	asset, ok := addressParam(c, "asset")
	if !ok {
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.vaultSvc.RemoveAsset(ctx, caller, addr, asset)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Warnings = wc.List()
	c.JSON(http.StatusOK, resp)
}

// TransferOwnership handles POST /vaults/:address/ownership
// @Summary Transfer vault ownership
// @Tags vaults
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param address path string true "Vault address"
// @Param request body models.TransferOwnershipRequest true "New owner"
// @Success 200 {object} models.TxResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /vaults/{address}/ownership [post]
func (h *VaultHandler) TransferOwnership(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req models.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.vaultSvc.TransferVaultOwnership(c.Request.Context(), caller, addr, req.NewOwner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deposit handles POST /vaults/:address/deposit
// @Summary Deposit base asset for shares
// @Description The caller must have approved the vault for at least amount of the base asset.
// @Tags vaults
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param address path string true "Vault address"
// @Param request body models.DepositRequest true "Amount in base units"
// @Success 200 {object} models.DepositResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /vaults/{address}/deposit [post]
func (h *VaultHandler) Deposit(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	amount, ok := amountValue(c, req.Amount)
	if !ok {
		return
	}

	resp, err := h.vaultSvc.Deposit(c.Request.Context(), caller, addr, amount, req.Receiver)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreviewDeposit handles GET /vaults/:address/preview-deposit
// @Summary Preview the shares a deposit would mint
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Param amount query string true "Amount in base units"
// @Success 200 {object} models.PreviewDepositResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /vaults/{address}/preview-deposit [get]
func (h *VaultHandler) PreviewDeposit(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	amount, ok := amountValue(c, c.Query("amount"))
	if !ok {
		return
	}

	resp, err := h.vaultSvc.PreviewDeposit(c.Request.Context(), addr, amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetShares handles GET /vaults/:address/shares/:holder
// @Summary Get a holder's shares
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Param holder path string true "Holder address"
// @Success 200 {object} models.SharesResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /vaults/{address}/shares/{holder} [get]
func (h *VaultHandler) GetShares(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	holder, ok := addressParam(c, "holder")
	if !ok {
		return
	}

	resp, err := h.vaultSvc.Shares(c.Request.Context(), addr, holder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetEvents handles GET /vaults/:address/events
// @Summary List events emitted by a vault
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} events.Record
// @Failure 404 {object} models.ErrorResponse
// @Router /vaults/{address}/events [get]
func (h *VaultHandler) GetEvents(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	records, err := h.vaultSvc.Events(c.Request.Context(), addr, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
