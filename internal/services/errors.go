package services

import (
	"errors"
)

var (
	// ErrInvalidRequest marks service-level input validation failures
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAuditDisabled is returned by audit reads when no database is configured
	ErrAuditDisabled = errors.New("audit persistence is disabled")
	// ErrNoRiskSignature is returned for assets that have not been simulated
	ErrNoRiskSignature = errors.New("no risk signature found")
)
