package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/mollybeach/honeyvaiult/internal/middleware"
	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/services"
	"github.com/mollybeach/honeyvaiult/internal/util"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

// respondError maps a service error onto the API error taxonomy
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch vault.KindOf(err) {
	case vault.KindValidation:
		status, code = http.StatusBadRequest, "bad_request"
	case vault.KindAuthorization:
		status, code = http.StatusForbidden, "forbidden"
	case vault.KindNotFound:
		status, code = http.StatusNotFound, "not_found"
	case vault.KindState:
		status, code = http.StatusConflict, "conflict"
	case vault.KindDependency:
		status, code = http.StatusUnprocessableEntity, "dependency_failed"
	default:
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			status, code = http.StatusBadRequest, "bad_request"
		case errors.Is(err, services.ErrNoRiskSignature):
			status, code = http.StatusNotFound, "not_found"
		case errors.Is(err, services.ErrAuditDisabled):
			status, code = http.StatusServiceUnavailable, "unavailable"
		}
	}
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
	}
	c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// callerFrom returns the authenticated wallet or writes a 401
func callerFrom(c *gin.Context) (models.Address, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return models.ZeroAddress, false
	}
	return caller, true
}

// addressParam parses a path parameter as an address or writes a 400
func addressParam(c *gin.Context, name string) (models.Address, bool) {
	addr, err := models.ParseAddress(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name+": "+err.Error())
		return models.ZeroAddress, false
	}
	return addr, true
}

// amountValue parses a base-unit amount or writes a 400
func amountValue(c *gin.Context, s string) (decimal.Decimal, bool) {
	amount, err := util.ParseAmount(s)
	if err != nil {
		badRequest(c, err.Error())
		return decimal.Zero, false
	}
	return amount, true
}

// intQuery parses an optional non-negative integer query parameter
func intQuery(c *gin.Context, name string) (int, bool) {
	s := c.Query(name)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		badRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}
