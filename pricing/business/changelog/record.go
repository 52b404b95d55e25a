package changelog

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"slices"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
	"logistics.app/pricing/repository"
)

// bookkeeping fields move on every write and say nothing about what changed.
var bookkeeping = []string{"id", "version", "createdAt", "updatedAt", "updatedBy"}

func (b *business) Record(ctx context.Context, store repository.ChangeLogStore, change model.RuleChange) (*model.ChangeLogEntry, error) {
	fields := apierr.FieldErrors{}
	if !change.PricingType.Valid() {
		fields["pricingType"] = "unknown pricing type"
	}
	if !change.Action.Valid() {
		fields["action"] = "unknown action"
	}
	if change.ChangedBy == "" {
		fields["changedBy"] = "is required"
	}
	if len(fields) > 0 {
		return nil, apierr.Validation("invalid change log entry", fields)
	}

	oldValues, err := encode(change.Old)
	if err != nil {
		return nil, apierr.Repository("encode old values", err)
	}
	newValues, err := encode(change.New)
	if err != nil {
		return nil, apierr.Repository("encode new values", err)
	}

	changedFields, err := diff(oldValues, newValues)
	if err != nil {
		return nil, apierr.Repository("diff rule values", err)
	}

	return store.AppendChangeLog(ctx, model.ChangeLogEntry{
		PricingType:   change.PricingType,
		Action:        change.Action,
		EntityID:      change.EntityID,
		OldValues:     oldValues,
		NewValues:     newValues,
		ChangedFields: changedFields,
		ChangedBy:     change.ChangedBy,
	})
}

func encode(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	return raw, nil
}

// diff lists the top level keys whose values differ between the two rows,
// sorted. A missing side counts as every key changing.
func diff(oldValues, newValues json.RawMessage) ([]string, error) {
	before, err := fields(oldValues)
	if err != nil {
		return nil, err
	}
	after, err := fields(newValues)
	if err != nil {
		return nil, err
	}

	changed := []string{}
	for _, key := range slices.Sorted(maps.Keys(union(before, after))) {
		if slices.Contains(bookkeeping, key) {
			continue
		}
		if !bytes.Equal(before[key], after[key]) {
			changed = append(changed, key)
		}
	}
	return changed, nil
}

func fields(raw json.RawMessage) (map[string]json.RawMessage, error) {
	m := map[string]json.RawMessage{}
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func union(a, b map[string]json.RawMessage) map[string]json.RawMessage {
	out := maps.Clone(a)
	maps.Copy(out, b)
	return out
}
