package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey scopes a client supplied key to the endpoint path.
type IdempotencyKey struct {
	Resource string
	Key      string
}

type IdempotencyStatus string

const (
	IdempotencyStatusProcessing IdempotencyStatus = "processing"
	IdempotencyStatusCompleted  IdempotencyStatus = "completed"
)

// IdempotencyCacheEntry is what the idempotency middleware keeps per key.
type IdempotencyCacheEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
