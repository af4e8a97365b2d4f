// internal/prestige/facets_test.go
package prestige

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpgradeAmenity(t *testing.T) {
	s := NewPrestigeState(300, 55)

	s = UpgradeAmenity(s, "driving_range")
	assert.Equal(t, 80.0, s.AmenityScore)

	s = UpgradeAmenity(s, "restaurant")
	assert.Equal(t, 180.0, s.AmenityScore)

	// Owning it already is a no-op.
	again := UpgradeAmenity(s, "driving_range")
	assert.Equal(t, s, again)

	// Unknown ids are ignored, not stored.
	unknown := UpgradeAmenity(s, "helipad")
	assert.Equal(t, s, unknown)
}

func TestExclusivityRecomputedByEachMutator(t *testing.T) {
	s := NewPrestigeState(300, 55)

	s = UpdateMembership(s, 500)
	assert.InDelta(t, 300, s.ExclusivityScore, 1e-9) // scarcity capped at 300

	s = UpdateMembership(s, 3000)
	assert.InDelta(t, 50, s.ExclusivityScore, 1e-9)

	s = UpdateWaitlist(s, 40)
	assert.InDelta(t, 150, s.ExclusivityScore, 1e-9) // +100 waitlist

	s = UpdateBookingWindow(s, 10)
	assert.InDelta(t, 230, s.ExclusivityScore, 1e-9) // +80 window

	s = UpdateDressCode(s, DressFormal)
	assert.InDelta(t, 430, s.ExclusivityScore, 1e-9) // +200 dress
}

func TestAwardPrestigeDeduplicates(t *testing.T) {
	s := NewPrestigeState(300, 55)
	base := s.ReputationScore

	s = AwardPrestige(s, "state_top_100")
	assert.Equal(t, base+120, s.ReputationScore)

	// Re-awarding is a no-op.
	again := AwardPrestige(s, "state_top_100")
	assert.Equal(t, s, again)

	// Unknown award ids are ignored, never stored.
	unknown := AwardPrestige(s, "galactic_top_10")
	assert.Equal(t, s, unknown)
	assert.Len(t, s.Awards, 1)
}

func TestRevokeAward(t *testing.T) {
	s := NewPrestigeState(300, 55)
	s = AwardPrestige(s, "state_top_100")
	s = AwardPrestige(s, "magazine_feature")

	s = RevokeAward(s, "state_top_100")
	assert.Equal(t, []string{"magazine_feature"}, s.Awards)
	assert.Equal(t, DefaultReputationScore+80, s.ReputationScore)

	// Revoking an award not held is a no-op.
	out := RevokeAward(s, "state_top_100")
	assert.Equal(t, s, out)
}

func TestCatalogsAreCopies(t *testing.T) {
	amenities := AmenityCatalog()
	amenities[0].Points = 9999
	assert.NotEqual(t, 9999.0, AmenityCatalog()[0].Points)

	awards := AwardCatalog()
	awards[0].Points = 9999
	assert.NotEqual(t, 9999.0, AwardCatalog()[0].Points)
}
