package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventLogEntry is a persisted event from the audit log
type EventLogEntry struct {
	ID       uuid.UUID       `json:"id"`
	Seq      uint64          `json:"seq"`
	Name     string          `json:"name"`
	Contract Address         `json:"contract"`
	Payload  json.RawMessage `json:"payload"`
	At       time.Time       `json:"at"`
}
