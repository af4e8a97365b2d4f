// internal/member/service.go
package member

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for the member-account service.
type Service interface {
	RegisterMember(ctx context.Context, email, name, password string) (*Member, error)
	Authenticate(ctx context.Context, email, password string) (*Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*Member, error)
	UpdatePlayingCategory(ctx context.Context, id uuid.UUID, newCategory string) error
}
