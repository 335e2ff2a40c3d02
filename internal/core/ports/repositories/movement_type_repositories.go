package repositories

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// MovementTypeReader defines read operations for movement types
type MovementTypeReader interface {
	// FindMovementTypeByID loads a movement type with its debit and credit accounts attached.
	FindMovementTypeByID(ctx context.Context, movementTypeID string) (*domain.MovementType, error)

	// ListMovementTypes returns one page of movement types and the total match count.
	ListMovementTypes(ctx context.Context, filter domain.MovementTypeFilter) ([]domain.MovementType, int, error)

	// CountTitlesByMovementType counts titles that reference the movement type.
	CountTitlesByMovementType(ctx context.Context, movementTypeID string) (int, error)
}

// MovementTypeWriter defines write operations for movement types
type MovementTypeWriter interface {
	SaveMovementType(ctx context.Context, movementType domain.MovementType) error
	UpdateMovementType(ctx context.Context, movementType domain.MovementType) error
	DeleteMovementType(ctx context.Context, movementTypeID string) error
}

// MovementTypeRepositoryFacade combines all movement type repository interfaces
type MovementTypeRepositoryFacade interface {
	MovementTypeReader
	MovementTypeWriter
}
