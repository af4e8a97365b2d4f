// internal/prestige/facets.go
package prestige

import "math"

// Amenity is a facility upgrade contributing to the amenity sub-score.
type Amenity struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// Award is an external recognition contributing to the reputation
// sub-score.
type Award struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// amenityEntries is the flat amenity catalog, rebuilt as a map at load.
var amenityEntries = []Amenity{
	{ID: "practice_green", Name: "Practice Green", Points: 50},
	{ID: "driving_range", Name: "Driving Range", Points: 80},
	{ID: "pro_shop", Name: "Pro Shop", Points: 60},
	{ID: "locker_room", Name: "Locker Room", Points: 40},
	{ID: "restaurant", Name: "Restaurant", Points: 100},
	{ID: "caddie_service", Name: "Caddie Service", Points: 120},
	{ID: "clubhouse", Name: "Grand Clubhouse", Points: 140},
	{ID: "spa", Name: "Spa & Wellness", Points: 150},
}

// awardEntries is the fixed award catalog; unknown award ids are ignored,
// never stored.
var awardEntries = []Award{
	{ID: "regional_best_value", Name: "Regional Best Value", Points: 60},
	{ID: "environmental_cert", Name: "Environmental Certification", Points: 70},
	{ID: "magazine_feature", Name: "Golf Monthly Feature", Points: 80},
	{ID: "state_top_100", Name: "State Top 100", Points: 120},
	{ID: "national_top_100", Name: "National Top 100", Points: 250},
	{ID: "pga_event_host", Name: "PGA Event Host", Points: 300},
}

var (
	amenityCatalog = func() map[string]Amenity {
		m := make(map[string]Amenity, len(amenityEntries))
		for _, a := range amenityEntries {
			m[a.ID] = a
		}
		return m
	}()
	awardCatalog = func() map[string]Award {
		m := make(map[string]Award, len(awardEntries))
		for _, a := range awardEntries {
			m[a.ID] = a
		}
		return m
	}()
)

// AmenityCatalog returns the amenity catalog in declaration order.
func AmenityCatalog() []Amenity {
	return append([]Amenity(nil), amenityEntries...)
}

// AwardCatalog returns the award catalog in declaration order.
func AwardCatalog() []Award {
	return append([]Award(nil), awardEntries...)
}

// UpgradeAmenity adds an amenity and recomputes the amenity score. Unknown
// ids and amenities already owned are no-ops.
func UpgradeAmenity(s PrestigeState, id string) PrestigeState {
	if _, ok := amenityCatalog[id]; !ok {
		return s
	}
	for _, owned := range s.Amenities {
		if owned == id {
			return s
		}
	}
	out := s.clone()
	out.Amenities = append(out.Amenities, id)
	out.AmenityScore = amenityScore(out.Amenities)
	return out
}

func amenityScore(owned []string) float64 {
	sum := 0.0
	for _, id := range owned {
		sum += amenityCatalog[id].Points
	}
	return math.Min(1000, sum)
}

// UpdateMembership sets the membership count and recomputes exclusivity.
func UpdateMembership(s PrestigeState, count int) PrestigeState {
	out := s.clone()
	out.MembershipCount = count
	out.ExclusivityScore = exclusivityScore(out)
	return out
}

// UpdateWaitlist sets the waitlist length and recomputes exclusivity.
func UpdateWaitlist(s PrestigeState, count int) PrestigeState {
	out := s.clone()
	out.WaitlistCount = count
	out.ExclusivityScore = exclusivityScore(out)
	return out
}

// UpdateBookingWindow sets the member advance-booking window length and
// recomputes exclusivity.
func UpdateBookingWindow(s PrestigeState, days int) PrestigeState {
	out := s.clone()
	out.BookingWindowDays = days
	out.ExclusivityScore = exclusivityScore(out)
	return out
}

// UpdateDressCode sets the dress code level and recomputes exclusivity.
func UpdateDressCode(s PrestigeState, level string) PrestigeState {
	out := s.clone()
	out.DressCode = level
	out.ExclusivityScore = exclusivityScore(out)
	return out
}

// exclusivityScore blends scarcity of membership, waitlist pressure,
// booking-window privilege, and dress formality into 0–1000.
func exclusivityScore(s PrestigeState) float64 {
	scarcity := 0.0
	if s.MembershipCount > 0 {
		scarcity = math.Min(300, 150000/float64(s.MembershipCount))
	}
	waitlist := math.Min(250, float64(s.WaitlistCount)*2.5)
	window := math.Min(250, float64(s.BookingWindowDays)*8)

	dress := 0.0
	switch s.DressCode {
	case DressCasual:
		dress = 50
	case DressCollared:
		dress = 120
	case DressFormal:
		dress = 200
	}

	return clampScore(scarcity + waitlist + window + dress)
}

// AwardPrestige grants an award and recomputes the reputation score.
// Unknown ids are ignored; re-awarding an award already held is a no-op.
func AwardPrestige(s PrestigeState, id string) PrestigeState {
	if _, ok := awardCatalog[id]; !ok {
		return s
	}
	for _, held := range s.Awards {
		if held == id {
			return s
		}
	}
	out := s.clone()
	out.Awards = append(out.Awards, id)
	out.ReputationScore = reputationScore(out.Awards)
	return out
}

// RevokeAward withdraws an award and recomputes the reputation score;
// revoking an award not held is a no-op.
func RevokeAward(s PrestigeState, id string) PrestigeState {
	for i, held := range s.Awards {
		if held == id {
			out := s.clone()
			out.Awards = append(out.Awards[:i], out.Awards[i+1:]...)
			out.ReputationScore = reputationScore(out.Awards)
			return out
		}
	}
	return s
}

func reputationScore(awards []string) float64 {
	sum := DefaultReputationScore
	for _, id := range awards {
		sum += awardCatalog[id].Points
	}
	return math.Min(1000, sum)
}
