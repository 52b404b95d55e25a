package resolver

import (
	"context"

	"encore.dev/rlog"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

type baseRule struct {
	fee     model.CurrencyAmount
	source  model.BaseSource
	id      *string
	version int32
}

type extraRule struct {
	extra   model.CurrencyAmount
	source  model.ExtraSource
	id      *string
	version int32
}

// Resolve computes base and extra inside one point-in-time read so both come
// from the same rule generation.
func (b *business) Resolve(ctx context.Context, req model.ResolveRequest) (*model.PriceBreakdown, error) {
	if req.PackageType != nil && !req.PackageType.Valid() {
		return nil, apierr.Validation("invalid package type", apierr.FieldErrors{
			"packageType": "must be one of Parcel, Document, Bulky",
		})
	}

	clientID := present(req.ClientID)
	governorateID := present(req.GovernorateID)

	var (
		base  baseRule
		extra extraRule
	)
	err := b.transactor.ReadSnapshot(ctx, func(tx repository.Tx) error {
		var err error
		if base, err = resolveBase(ctx, tx.Rules, clientID, governorateID); err != nil {
			return err
		}
		extra, err = resolveExtra(ctx, tx.Rules, clientID, req.PackageType)
		return err
	})
	if err != nil {
		rlog.Error("failed to resolve delivery fee", "error", err, "client_id", orEmpty(clientID), "governorate_id", orEmpty(governorateID))
		return nil, apierr.Repository("resolve delivery fee", err)
	}

	rlog.Debug("resolved delivery fee",
		"client_id", orEmpty(clientID),
		"governorate_id", orEmpty(governorateID),
		"base_source", base.source,
		"extra_source", extra.source,
	)

	return &model.PriceBreakdown{
		Base:        base.fee,
		Extra:       extra.extra,
		Total:       base.fee.Add(extra.extra),
		BaseSource:  base.source,
		ExtraSource: extra.source,
		RuleDetails: model.RuleDetails{
			BaseRuleID:       base.id,
			BaseRuleVersion:  base.version,
			ExtraRuleID:      extra.id,
			ExtraRuleVersion: extra.version,
			CurrencyContext:  req.CurrencyContext,
		},
	}, nil
}

// resolveBase: client override for the governorate, then the zone row, then
// the global default. First match wins.
func resolveBase(ctx context.Context, rules repository.RuleReader, clientID, governorateID *string) (baseRule, error) {
	if clientID != nil && governorateID != nil {
		override, err := rules.FindClientZoneOverride(ctx, *clientID, *governorateID)
		if err != nil {
			return baseRule{}, err
		}
		if override != nil {
			return baseRule{
				fee:     override.Fee,
				source:  model.BaseSourceClientZoneOverride,
				id:      &override.ID,
				version: override.Version,
			}, nil
		}
	}

	if governorateID != nil {
		zone, err := rules.FindZonePricing(ctx, *governorateID)
		if err != nil {
			return baseRule{}, err
		}
		if zone != nil {
			return baseRule{
				fee:     zone.Fee,
				source:  model.BaseSourceZonePricing,
				id:      &zone.ID,
				version: zone.Version,
			}, nil
		}
	}

	defaults, err := rules.GetGlobalDefaults(ctx)
	if err != nil {
		return baseRule{}, err
	}
	if defaults == nil {
		// An unseeded table still resolves; free delivery is a valid state.
		return baseRule{fee: model.ZeroAmount(), source: model.BaseSourceGlobalDefault}, nil
	}
	return baseRule{
		fee:     defaults.DefaultFee,
		source:  model.BaseSourceGlobalDefault,
		version: defaults.Version,
	}, nil
}

// resolveExtra: client scoped extra, then the global extra, then nothing.
func resolveExtra(ctx context.Context, rules repository.RuleReader, clientID *string, packageType *model.PackageType) (extraRule, error) {
	none := extraRule{extra: model.ZeroAmount(), source: model.ExtraSourceNone}
	if packageType == nil {
		return none, nil
	}

	if clientID != nil {
		extra, err := rules.FindPackageExtra(ctx, clientID, *packageType)
		if err != nil {
			return extraRule{}, err
		}
		if extra != nil {
			return extraRule{
				extra:   extra.Extra,
				source:  model.ExtraSourceClient,
				id:      &extra.ID,
				version: extra.Version,
			}, nil
		}
	}

	extra, err := rules.FindPackageExtra(ctx, nil, *packageType)
	if err != nil {
		return extraRule{}, err
	}
	if extra != nil {
		return extraRule{
			extra:   extra.Extra,
			source:  model.ExtraSourceGlobal,
			id:      &extra.ID,
			version: extra.Version,
		}, nil
	}
	return none, nil
}

// present treats an empty identifier the same as an absent one.
func present(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
