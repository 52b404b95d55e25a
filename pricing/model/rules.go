package model

import (
	"slices"
	"time"
)

type PackageType string

const (
	PackageTypeParcel   PackageType = "Parcel"
	PackageTypeDocument PackageType = "Document"
	PackageTypeBulky    PackageType = "Bulky"
)

// PackageTypes lists every supported package type.
var PackageTypes = []PackageType{PackageTypeParcel, PackageTypeDocument, PackageTypeBulky}

func (p PackageType) Valid() bool {
	return slices.Contains(PackageTypes, p)
}

// ExtraScope tells whether a package extra applies to every client or to one.
type ExtraScope string

const (
	ExtraScopeGlobal ExtraScope = "Global"
	ExtraScopeClient ExtraScope = "Client"
)

// GlobalDefaults is the singleton fallback fee.
type GlobalDefaults struct {
	DefaultFee CurrencyAmount `json:"defaultFee"`
	Version    int32          `json:"version"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	UpdatedBy  string         `json:"updatedBy"`
}

type ZonePricing struct {
	ID            string         `json:"id"`
	GovernorateID string         `json:"governorateId"`
	Fee           CurrencyAmount `json:"fee"`
	Version       int32          `json:"version"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type ClientZoneOverride struct {
	ID             string         `json:"id"`
	ClientID       string         `json:"clientId"`
	GovernorateIDs []string       `json:"governorateIds"`
	Fee            CurrencyAmount `json:"fee"`
	Version        int32          `json:"version"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Covers reports whether the override applies to the governorate.
func (o ClientZoneOverride) Covers(governorateID string) bool {
	return slices.Contains(o.GovernorateIDs, governorateID)
}

// Overlap returns the governorates the two overrides have in common.
func (o ClientZoneOverride) Overlap(governorateIDs []string) []string {
	var shared []string
	for _, id := range governorateIDs {
		if o.Covers(id) && !slices.Contains(shared, id) {
			shared = append(shared, id)
		}
	}
	return shared
}

type PackageTypeExtra struct {
	ID          string         `json:"id"`
	Scope       ExtraScope     `json:"scope"`
	ClientID    *string        `json:"clientId,omitempty"`
	PackageType PackageType    `json:"packageType"`
	Extra       CurrencyAmount `json:"extra"`
	Version     int32          `json:"version"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ScopeOf derives the extra scope from an optional client.
func ScopeOf(clientID *string) ExtraScope {
	if clientID != nil {
		return ExtraScopeClient
	}
	return ExtraScopeGlobal
}
