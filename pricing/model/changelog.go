package model

import (
	"encoding/json"
	"time"
)

// PricingType names the rule table a change log entry refers to.
type PricingType string

const (
	PricingTypeGlobal       PricingType = "Global"
	PricingTypeZone         PricingType = "Zone"
	PricingTypeClientZone   PricingType = "ClientZone"
	PricingTypePackageExtra PricingType = "PackageExtra"
)

func (t PricingType) Valid() bool {
	switch t {
	case PricingTypeGlobal, PricingTypeZone, PricingTypeClientZone, PricingTypePackageExtra:
		return true
	}
	return false
}

type ChangeAction string

const (
	ChangeActionInsert ChangeAction = "Insert"
	ChangeActionUpdate ChangeAction = "Update"
	ChangeActionDelete ChangeAction = "Delete"
)

func (a ChangeAction) Valid() bool {
	switch a {
	case ChangeActionInsert, ChangeActionUpdate, ChangeActionDelete:
		return true
	}
	return false
}

// ChangeLogEntry is one append-only audit record. OldValues is empty on
// Insert and NewValues is empty on Delete.
type ChangeLogEntry struct {
	ID            int64           `json:"id"`
	PricingType   PricingType     `json:"pricingType"`
	Action        ChangeAction    `json:"action"`
	EntityID      string          `json:"entityId"`
	OldValues     json.RawMessage `json:"oldValues,omitempty"`
	NewValues     json.RawMessage `json:"newValues,omitempty"`
	ChangedFields []string        `json:"changedFields"`
	ChangedBy     string          `json:"changedBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RuleChange describes a mutation before it is turned into a log entry.
// Old and New hold the rule rows themselves; either may be nil.
type RuleChange struct {
	PricingType PricingType
	Action      ChangeAction
	EntityID    string
	Old         any
	New         any
	ChangedBy   string
}

// ChangeLogPage is one newest-first page of the audit feed. NextBeforeID is
// set only when older entries matching the filter exist.
type ChangeLogPage struct {
	Entries      []ChangeLogEntry `json:"entries"`
	NextBeforeID int64            `json:"nextBeforeId,omitempty"`
}

// ChangeLogFilter narrows the audit feed. BeforeID pages backwards.
type ChangeLogFilter struct {
	PricingType *PricingType  `json:"pricingType,omitempty"`
	Action      *ChangeAction `json:"action,omitempty"`
	EntityID    *string       `json:"entityId,omitempty"`
	ChangedBy   *string       `json:"changedBy,omitempty"`
	Since       *time.Time    `json:"since,omitempty"`
	BeforeID    *int64        `json:"beforeId,omitempty"`
}
