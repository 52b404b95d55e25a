package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageTypeValid(t *testing.T) {
	assert.True(t, PackageTypeParcel.Valid())
	assert.True(t, PackageTypeDocument.Valid())
	assert.True(t, PackageTypeBulky.Valid())
	assert.False(t, PackageType("bulky").Valid())
	assert.False(t, PackageType("").Valid())
}

func TestClientZoneOverrideOverlap(t *testing.T) {
	override := ClientZoneOverride{GovernorateIDs: []string{"beirut", "mount-lebanon"}}

	assert.True(t, override.Covers("beirut"))
	assert.False(t, override.Covers("north"))
	assert.Empty(t, override.Overlap([]string{"north", "south"}))
	assert.Equal(t, []string{"beirut"}, override.Overlap([]string{"north", "beirut", "beirut"}))
}

func TestScopeOf(t *testing.T) {
	client := "C1"

	assert.Equal(t, ExtraScopeGlobal, ScopeOf(nil))
	assert.Equal(t, ExtraScopeClient, ScopeOf(&client))
}
