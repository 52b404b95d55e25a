package admin

import (
	"context"

	"logistics.app/pricing/business/changelog"
	"logistics.app/pricing/domain"
	"logistics.app/pricing/model"
)

// Business mutates the rule tables. Every mutation validates its amounts,
// checks uniqueness and the optional expected version, then writes the row
// and its change log entry in one transaction.
type Business interface {
	GetGlobalDefaults(ctx context.Context) (*model.GlobalDefaults, error)
	SetGlobalDefaults(ctx context.Context, input GlobalDefaultsInput) (*model.GlobalDefaults, error)

	ListZonePricing(ctx context.Context) ([]model.ZonePricing, error)
	UpsertZonePricing(ctx context.Context, input ZonePricingInput) (*model.ZonePricing, error)
	BatchUpsertZonePricing(ctx context.Context, inputs []ZonePricingInput) ([]model.ZonePricing, error)
	DeleteZonePricing(ctx context.Context, governorateID string, target Target) error

	ListClientOverrides(ctx context.Context, clientID *string) ([]model.ClientZoneOverride, error)
	UpsertClientOverride(ctx context.Context, input ClientOverrideInput) (*model.ClientZoneOverride, error)
	DeleteClientOverride(ctx context.Context, id string, target Target) error

	ListPackageExtras(ctx context.Context, clientID *string) ([]model.PackageTypeExtra, error)
	UpsertPackageExtra(ctx context.Context, input PackageExtraInput) (*model.PackageTypeExtra, error)
	DeletePackageExtra(ctx context.Context, id string, target Target) error
}

type GlobalDefaultsInput struct {
	Fee             model.CurrencyAmount
	ExpectedVersion *int32
	ChangedBy       string
}

type ZonePricingInput struct {
	GovernorateID   string
	Fee             model.CurrencyAmount
	ExpectedVersion *int32
	ChangedBy       string
}

// ClientOverrideInput creates a new override when ID is nil.
type ClientOverrideInput struct {
	ID              *string
	ClientID        string
	GovernorateIDs  []string
	Fee             model.CurrencyAmount
	ExpectedVersion *int32
	ChangedBy       string
}

// PackageExtraInput is keyed by scope and package type. A nil ClientID
// targets the global row.
type PackageExtraInput struct {
	ClientID        *string
	PackageType     model.PackageType
	Extra           model.CurrencyAmount
	ExpectedVersion *int32
	ChangedBy       string
}

// Target identifies who deletes a row and which version they saw.
type Target struct {
	ExpectedVersion *int32
	ChangedBy       string
}

type business struct {
	transactor domain.Transactor
	changeLog  changelog.Business
}

func NewAdminBusiness(transactor domain.Transactor, changeLog changelog.Business) Business {
	return &business{
		transactor: transactor,
		changeLog:  changeLog,
	}
}
