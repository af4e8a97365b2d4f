// internal/member/domain.go
package member

import (
	"time"

	"github.com/google/uuid"
)

// Playing categories. The category determines the booking-window head
// start a member gets over the public.
const (
	CategoryWeekday = "weekday"
	CategoryFull    = "full"
	CategoryPremier = "premier"
)

// maxInitialHandicap is the WHS ceiling a new member starts at until
// posted scores bring it down.
const maxInitialHandicap = 54.0

// Member represents a club member account.
type Member struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PlayingCategory string    `json:"playing_category"`
	Status          string    `json:"status"`
	Handicap        float64   `json:"handicap"`
	OutstandingDues float64   `json:"outstanding_dues"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Version         int       `json:"version"`
}

// Credential represents a member's login credentials.
type Credential struct {
	MemberID     uuid.UUID `json:"member_id"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
}

// MemberRegisteredEvent is journaled when a new member joins.
type MemberRegisteredEvent struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// MemberCategoryChangedEvent is journaled when a member's playing
// category changes.
type MemberCategoryChangedEvent struct {
	ID          uuid.UUID `json:"id"`
	NewCategory string    `json:"new_category"`
}
