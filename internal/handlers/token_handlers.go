package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/services"
	"github.com/mollybeach/honeyvaiult/internal/token"
)

// TokenHandler handles the token faucet, approvals and the RWA catalog
type TokenHandler struct {
	tokenSvc *services.TokenService
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenSvc *services.TokenService) *TokenHandler {
	return &TokenHandler{
		tokenSvc: tokenSvc,
	}
}

// respondTokenError reports an unknown token addressed by the URL as 404
func respondTokenError(c *gin.Context, err error) {
	if errors.Is(err, token.ErrUnknownToken) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}
	respondError(c, err)
}

// List handles GET /tokens
// @Summary List deployed tokens
// @Tags tokens
// @Produce json
// @Param kind query string false "base or rwa"
// @Success 200 {array} models.TokenInfo
// @Failure 400 {object} models.ErrorResponse
// @Router /tokens [get]
func (h *TokenHandler) List(c *gin.Context) {
	kind := models.TokenKind(c.Query("kind"))
	if kind != "" && kind != models.TokenKindBase && kind != models.TokenKindRWA {
		badRequest(c, "kind must be 'base' or 'rwa'")
		return
	}

	tokens, err := h.tokenSvc.ListTokens(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Mint handles POST /tokens/:address/mint
// @Summary Mint tokens
// @Description Base-asset tokens are an open faucet. RWA tokens can only be minted by their issuer.
// @Tags tokens
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param address path string true "Token address"
// @Param request body models.MintRequest true "Recipient and amount in base units"
// @Success 200 {object} models.TokenBalance
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tokens/{address}/mint [post]
func (h *TokenHandler) Mint(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	tokenAddr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req models.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	amount, ok := amountValue(c, req.Amount)
	if !ok {
		return
	}
	to := caller
	if req.To != nil {
		to = *req.To
	}

	balance, err := h.tokenSvc.Mint(c.Request.Context(), caller, tokenAddr, to, amount)
	if err != nil {
		respondTokenError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// Approve handles POST /tokens/:address/approve
// @Summary Approve a spender
// @Tags tokens
// @Accept json
// @Produce json
// @Param X-Wallet-Address header string true "Caller wallet"
// @Param address path string true "Token address"
// @Param request body models.ApproveRequest true "Spender and allowance in base units"
// @Success 200 {object} models.TokenBalance
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tokens/{address}/approve [post]
func (h *TokenHandler) Approve(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	tokenAddr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req models.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	amount, ok := amountValue(c, req.Amount)
	if !ok {
		return
	}

	balance, err := h.tokenSvc.Approve(c.Request.Context(), caller, tokenAddr, req.Spender, amount)
	if err != nil {
		respondTokenError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// Balance handles GET /tokens/:address/balances/:holder
// @Summary Get a token balance
// @Tags tokens
// @Produce json
// @Param address path string true "Token address"
// @Param holder path string true "Holder address"
// @Param spender query string false "Include the allowance granted to this spender"
// @Success 200 {object} models.TokenBalance
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tokens/{address}/balances/{holder} [get]
func (h *TokenHandler) Balance(c *gin.Context) {
	tokenAddr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	holder, ok := addressParam(c, "holder")
	if !ok {
		return
	}
	var spender *models.Address
	if s := c.Query("spender"); s != "" {
		addr, err := models.ParseAddress(s)
		if err != nil {
			badRequest(c, "invalid spender: "+err.Error())
			return
		}
		spender = &addr
	}

	balance, err := h.tokenSvc.Balance(c.Request.Context(), tokenAddr, holder, spender)
	if err != nil {
		respondTokenError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}
