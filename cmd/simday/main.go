// cmd/simday/main.go

// simday is the daily-tick driver. It gathers the day's inputs from the
// terrain and slot-feed collaborators, runs the marketing and prestige
// ticks against the shared event store, and logs the derived demand
// figures. It runs once with -once, or on a cron schedule otherwise.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"fairlinks/internal/clients"
	"fairlinks/internal/config"
	"fairlinks/internal/marketing"
	"fairlinks/internal/prestige"
	"fairlinks/internal/teetime"
	"fairlinks/internal/telemetry"
	"fairlinks/pkg/eventstore"
)

type driver struct {
	logger    *slog.Logger
	marketing marketing.Service
	prestige  prestige.Service
	terrain   *clients.TerrainClient
	slotFeed  *clients.SlotFeedClient
	pricing   teetime.DynamicPricingConfig
	day       int
}

// tick runs one simulated day across the subsystems. Ordering mirrors
// the close-of-day flow: read the daily counters before the prestige
// tick resets them, feed them to marketing, then derive tomorrow's
// pricing posture.
func (d *driver) tick(ctx context.Context) error {
	day := d.day

	pState, err := d.prestige.GetState(ctx)
	if err != nil {
		return err
	}

	mRes, err := d.marketing.TickDay(ctx, day, float64(pState.GolfersToday), pState.RevenueToday)
	if err != nil {
		return err
	}

	conditions, err := d.terrain.GetConditions(ctx, day)
	if err != nil {
		return err
	}

	pAfter, err := d.prestige.TickDay(ctx, day, *conditions)
	if err != nil {
		return err
	}

	slots, err := d.slotFeed.GetSlots(ctx, day)
	if err != nil {
		return err
	}
	rate := teetime.BookingRate(slots)
	priceMult := teetime.DynamicMultiplier(d.pricing, rate)

	campaignMult := marketing.CombinedDemandMultiplier(mRes.State)
	elasticity := marketing.CombinedElasticityEffect(mRes.State)
	effectiveFee := pAfter.GreenFee * priceMult * (1 + elasticity)
	if effectiveFee < 0 {
		effectiveFee = 0
	}
	demand := campaignMult * prestige.DemandMultiplier(effectiveFee, pAfter.Tolerance())

	d.logger.Info("day ticked",
		slog.Int("day", day),
		slog.Float64("booking_rate", rate),
		slog.Float64("marketing_daily_cost", mRes.DailyCost),
		slog.Any("completed_campaigns", mRes.CompletedNames),
		slog.Float64("prestige_score", pAfter.CurrentScore),
		slog.Float64("effective_green_fee", effectiveFee),
		slog.Float64("demand_multiplier", demand),
	)

	d.day++
	return nil
}

func main() {
	once := flag.Bool("once", false, "run a single day tick and exit")
	startDay := flag.Int("day", 1, "calendar day of the first tick")
	schedule := flag.String("schedule", "5 0 * * *", "cron schedule for the daily tick")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var handler slog.Handler
	level := cfg.Log.SlogLevel()
	switch cfg.Log.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, "fairlinks-simday", cfg.Telemetry)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		os.Exit(1)
	}
	defer shutdownTracing(context.Background())

	db, err := sql.Open("postgres", cfg.Psql.Addr)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	es := eventstore.NewEventStore(db)

	terrainURL := getEnv("TERRAIN_SERVICE_URL", "http://localhost:8091")
	slotFeedURL := getEnv("SLOTFEED_SERVICE_URL", "http://localhost:8092")

	d := &driver{
		logger: logger,
		marketing: marketing.NewService(es,
			uuid.NewSHA1(cfg.Course.ID, []byte("marketing")),
			cfg.Course.BaselineBookings, cfg.Course.BaselineRevenue),
		prestige: prestige.NewService(es,
			uuid.NewSHA1(cfg.Course.ID, []byte("prestige")),
			cfg.Course.StartPrestige, cfg.Course.GreenFee),
		terrain:  clients.NewTerrainClient(terrainURL),
		slotFeed: clients.NewSlotFeedClient(slotFeedURL),
		pricing: teetime.DynamicPricingConfig{
			Enabled:           true,
			MinMultiplier:     0.7,
			MaxMultiplier:     1.3,
			TargetBookingRate: 0.6,
		},
		day: *startDay,
	}

	if *once {
		if err := d.tick(ctx); err != nil {
			logger.Error("day tick failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(*schedule, func() {
		if err := d.tick(ctx); err != nil {
			logger.Error("day tick failed", slog.Any("error", err), slog.Int("day", d.day))
		}
	}); err != nil {
		logger.Error("invalid cron schedule", slog.Any("error", err))
		os.Exit(1)
	}

	c.Start()
	logger.Info("daily-tick scheduler started", slog.String("schedule", *schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("scheduler stopped")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
