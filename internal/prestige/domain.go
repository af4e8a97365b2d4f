// internal/prestige/domain.go
package prestige

// Reputation tiers, in ascending order of prestige band.
const (
	TierMunicipal    = "municipal"
	TierPublic       = "public"
	TierSemiPrivate  = "semi_private"
	TierPrivateClub  = "private_club"
	TierChampionship = "championship"
)

// Condition ratings derived from a 0–100 daily health score.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingFair      = "fair"
	RatingPoor      = "poor"
)

// Dress code levels feeding the exclusivity facet.
const (
	DressNone     = "none"
	DressCasual   = "casual"
	DressCollared = "collared"
	DressFormal   = "formal"
)

// FeeTolerance describes how much green fee a tier's clientele will bear:
// full demand up to SweetSpot, sharp falloff past RejectionThreshold,
// near-total rejection past MaxTolerance.
type FeeTolerance struct {
	SweetSpot          float64 `json:"sweet_spot"`
	RejectionThreshold float64 `json:"rejection_threshold"`
	MaxTolerance       float64 `json:"max_tolerance"`
}

// CurrentConditionsScore is the summarized terrain condition handed in by
// the terrain collaborator: six 0–100 sub-scores plus a 0–1000 composite.
// This package never reaches into per-cell terrain data.
type CurrentConditionsScore struct {
	Fairways   float64 `json:"fairways"`
	Greens     float64 `json:"greens"`
	Tees       float64 `json:"tees"`
	Rough      float64 `json:"rough"`
	Bunkers    float64 `json:"bunkers"`
	Aesthetics float64 `json:"aesthetics"`
	Composite  float64 `json:"composite"`
}

// DailySnapshot is one appended day of the historical quality record.
type DailySnapshot struct {
	Day    int     `json:"day"`
	Health float64 `json:"health"`
	Rating string  `json:"rating"`
}

// HistoricalState is the multi-day rolling quality record: append-only
// snapshots with incrementally maintained streaks and rolling windows.
// DaysSinceLastPoor is -1 while no poor day has ever been recorded.
type HistoricalState struct {
	Snapshots                []DailySnapshot `json:"snapshots"`
	ConsecutiveExcellentDays int             `json:"consecutive_excellent_days"`
	ConsecutiveGoodDays      int             `json:"consecutive_good_days"`
	LongestExcellentStreak   int             `json:"longest_excellent_streak"`
	DaysSinceLastPoor        int             `json:"days_since_last_poor"`
	RollingAverage30         float64         `json:"rolling_average_30"`
	PoorDaysInLast90         int             `json:"poor_days_in_last_90"`
	Composite                float64         `json:"composite"`
}

// NewHistoricalState returns an empty record with no poor day on file.
func NewHistoricalState() HistoricalState {
	return HistoricalState{DaysSinceLastPoor: neverPoor}
}

// PrestigeState is the whole reputation engine state. Tier, tolerance, and
// star rating are pure functions of CurrentScore and are recomputed on
// demand, never cached here.
type PrestigeState struct {
	CurrentScore float64 `json:"current_score"`
	TargetScore  float64 `json:"target_score"`
	GreenFee     float64 `json:"green_fee"`

	GolfersToday         int     `json:"golfers_today"`
	GolfersRejectedToday int     `json:"golfers_rejected_today"`
	RevenueToday         float64 `json:"revenue_today"`
	RevenueLostToday     float64 `json:"revenue_lost_today"`

	AmenityScore     float64 `json:"amenity_score"`
	ExclusivityScore float64 `json:"exclusivity_score"`
	ReputationScore  float64 `json:"reputation_score"`

	Amenities []string `json:"amenities"`
	Awards    []string `json:"awards"`

	MembershipCount   int    `json:"membership_count"`
	WaitlistCount     int    `json:"waitlist_count"`
	BookingWindowDays int    `json:"booking_window_days"`
	DressCode         string `json:"dress_code"`

	Historical HistoricalState `json:"historical"`
}

// NewPrestigeState returns a modest public course starting position.
func NewPrestigeState(startScore, greenFee float64) PrestigeState {
	return PrestigeState{
		CurrentScore:     clampScore(startScore),
		TargetScore:      clampScore(startScore),
		GreenFee:         greenFee,
		ExclusivityScore: DefaultExclusivityScore,
		ReputationScore:  DefaultReputationScore,
		DressCode:        DressNone,
		Historical:       NewHistoricalState(),
	}
}

func (s PrestigeState) clone() PrestigeState {
	out := s
	out.Amenities = append([]string(nil), s.Amenities...)
	out.Awards = append([]string(nil), s.Awards...)
	out.Historical = s.Historical.clone()
	return out
}

func (s HistoricalState) clone() HistoricalState {
	out := s
	out.Snapshots = append([]DailySnapshot(nil), s.Snapshots...)
	return out
}

// Tier is the reputation band for the current score.
func (s PrestigeState) Tier() string {
	return TierFor(s.CurrentScore)
}

// Tolerance is the fee tolerance of the current tier.
func (s PrestigeState) Tolerance() FeeTolerance {
	return ToleranceFor(s.Tier())
}

// Stars is the current star rating.
func (s PrestigeState) Stars() float64 {
	return StarRating(s.CurrentScore)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1000 {
		return 1000
	}
	return v
}
