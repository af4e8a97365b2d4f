// internal/config/configs/course.go
package configs

import "github.com/google/uuid"

// Course holds the simulated course's opening parameters. Services use
// these when no persisted state exists yet.
type Course struct {
	// ID is the course aggregate id shared by every subsystem service.
	ID uuid.UUID `env:"ID" envDefault:"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"`

	// GreenFee is the posted public green fee in dollars.
	GreenFee float64 `env:"GREEN_FEE" envDefault:"45"`

	// StartPrestige is the opening prestige score on the 0-1000 scale.
	StartPrestige float64 `env:"START_PRESTIGE" envDefault:"250"`

	// BaselineBookings is the expected daily bookings with no campaigns
	// running, used as the campaign lift baseline.
	BaselineBookings float64 `env:"BASELINE_BOOKINGS" envDefault:"20"`

	// BaselineRevenue is the expected daily revenue with no campaigns
	// running.
	BaselineRevenue float64 `env:"BASELINE_REVENUE" envDefault:"1800"`
}
