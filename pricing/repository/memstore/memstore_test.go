package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

func TestReadSnapshotIgnoresConcurrentCommit(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.ReadSnapshot(ctx, func(tx repository.Tx) error {
		require.NoError(t, s.WithinTx(ctx, func(w repository.Tx) error {
			_, err := w.Rules.UpdateGlobalDefaults(ctx, model.Amount(4.0, 0), "admin")
			return err
		}))

		defaults, err := tx.Rules.GetGlobalDefaults(ctx)
		require.NoError(t, err)
		assert.True(t, defaults.DefaultFee.IsZero())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.ReadSnapshot(ctx, func(tx repository.Tx) error {
		defaults, err := tx.Rules.GetGlobalDefaults(ctx)
		require.NoError(t, err)
		assert.True(t, defaults.DefaultFee.Equal(model.Amount(4.0, 0)))
		assert.Equal(t, int32(2), defaults.Version)
		return nil
	}))
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(tx repository.Tx) error {
		if _, err := tx.Rules.CreateZonePricing(ctx, "beirut", model.Amount(2.0, 60000)); err != nil {
			return err
		}
		if _, err := tx.ChangeLog.AppendChangeLog(ctx, model.ChangeLogEntry{PricingType: model.PricingTypeZone}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.ReadSnapshot(ctx, func(tx repository.Tx) error {
		zone, err := tx.Rules.FindZonePricing(ctx, "beirut")
		require.NoError(t, err)
		assert.Nil(t, zone)

		entries, err := tx.ChangeLog.ListChangeLog(ctx, model.ChangeLogFilter{}, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
		return nil
	}))
}

func TestUniqueRows(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx repository.Tx) error {
		if _, err := tx.Rules.CreateZonePricing(ctx, "beirut", model.ZeroAmount()); err != nil {
			return err
		}
		_, err := tx.Rules.CreateZonePricing(ctx, "beirut", model.ZeroAmount())
		return err
	})
	require.Error(t, err)

	clientID := "C1"
	err = s.WithinTx(ctx, func(tx repository.Tx) error {
		if _, err := tx.Rules.CreatePackageExtra(ctx, nil, model.PackageTypeParcel, model.ZeroAmount()); err != nil {
			return err
		}
		// Client scope is a separate key.
		if _, err := tx.Rules.CreatePackageExtra(ctx, &clientID, model.PackageTypeParcel, model.ZeroAmount()); err != nil {
			return err
		}
		_, err := tx.Rules.CreatePackageExtra(ctx, &clientID, model.PackageTypeParcel, model.ZeroAmount())
		return err
	})
	require.Error(t, err)
}
