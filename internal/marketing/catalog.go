// internal/marketing/catalog.go
package marketing

// Campaign types drive the prestige payout rules in PrestigeDelta.
const (
	TypeAwareness  = "awareness"
	TypeDiscount   = "discount"
	TypeVoucher    = "voucher"
	TypeCelebrity  = "celebrity"
	TypeTournament = "tournament"
)

// catalogEntries is the flat campaign catalog. It is rebuilt as a map keyed
// by id at load time; lookups report explicit absence, never panic.
var catalogEntries = []CampaignDefinition{
	{
		ID: "social_media", Name: "Social Media Push", Type: TypeAwareness,
		DailyCost: 150, SetupCost: 200, MinDuration: 7, MaxDuration: 30,
		DemandMultiplier: 1.10, PriceElasticityEffect: 0,
		TargetAudience: []string{"casual", "tourist"},
		CooldownDays:   7, MaxConcurrent: 1,
	},
	{
		ID: "radio_spot", Name: "Radio Spot", Type: TypeAwareness,
		DailyCost: 300, SetupCost: 500, MinDuration: 14, MaxDuration: 60,
		DemandMultiplier: 1.15, PriceElasticityEffect: 0.05,
		TargetAudience: []string{"casual", "senior"},
		CooldownDays:   14, MaxConcurrent: 1,
	},
	{
		ID: "newspaper_ad", Name: "Newspaper Ad", Type: TypeAwareness,
		DailyCost: 200, SetupCost: 350, MinDuration: 7, MaxDuration: 45,
		DemandMultiplier: 1.12, PriceElasticityEffect: 0.05,
		TargetAudience: []string{"senior", "member"},
		CooldownDays:   10, MaxConcurrent: 1,
	},
	{
		ID: "billboard", Name: "Highway Billboard", Type: TypeAwareness,
		DailyCost: 400, SetupCost: 1200, MinDuration: 30, MaxDuration: 90,
		DemandMultiplier: 1.20, PriceElasticityEffect: 0.10,
		TargetAudience: []string{"tourist", "corporate"},
		CooldownDays:   30, MaxConcurrent: 2,
	},
	{
		ID: "twilight_special", Name: "Twilight Special", Type: TypeDiscount,
		DailyCost: 50, SetupCost: 100, MinDuration: 7, MaxDuration: 21,
		DemandMultiplier: 1.25, PriceElasticityEffect: -0.15,
		TargetAudience: []string{"casual", "junior"},
		CooldownDays:   7, MaxConcurrent: 1, TwilightOnly: true,
	},
	{
		ID: "free_vouchers", Name: "Free Round Vouchers", Type: TypeVoucher,
		DailyCost: 250, SetupCost: 150, MinDuration: 5, MaxDuration: 14,
		DemandMultiplier: 1.30, PriceElasticityEffect: -0.25,
		TargetAudience: []string{"casual", "tourist"},
		CooldownDays:   21, MaxConcurrent: 1,
	},
	{
		ID: "celebrity_visit", Name: "Celebrity Exhibition", Type: TypeCelebrity,
		DailyCost: 2000, SetupCost: 5000, MinDuration: 1, MaxDuration: 3,
		DemandMultiplier: 1.50, PriceElasticityEffect: 0.20,
		TargetAudience: []string{"corporate", "member", "tourist"},
		CooldownDays:   90, MaxConcurrent: 1, IsEvent: true,
	},
	{
		// Event campaigns carry no demand multiplier of their own; they are
		// excluded from the combined product rather than multiplied as zero.
		ID: "club_championship", Name: "Club Championship", Type: TypeTournament,
		DailyCost: 800, SetupCost: 2500, MinDuration: 2, MaxDuration: 4,
		DemandMultiplier: 0, PriceElasticityEffect: 0.15,
		TargetAudience: []string{"member", "corporate"},
		CooldownDays:   60, MaxConcurrent: 1, IsEvent: true,
	},
}

var catalog = func() map[string]CampaignDefinition {
	m := make(map[string]CampaignDefinition, len(catalogEntries))
	for _, def := range catalogEntries {
		m[def.ID] = def
	}
	return m
}()

// Definition looks up a campaign definition by id.
func Definition(id string) (CampaignDefinition, bool) {
	def, ok := catalog[id]
	return def, ok
}

// Catalog returns the campaign catalog in declaration order.
func Catalog() []CampaignDefinition {
	return append([]CampaignDefinition(nil), catalogEntries...)
}
