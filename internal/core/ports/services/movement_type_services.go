package services

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/dto"
)

// MovementTypeReaderSvc defines read operations for movement types
type MovementTypeReaderSvc interface {
	GetMovementTypeByID(ctx context.Context, caps domain.Capabilities, movementTypeID string) (*domain.MovementType, error)
	ListMovementTypes(ctx context.Context, caps domain.Capabilities, params dto.ListMovementTypesParams) (*dto.ListMovementTypesResponse, error)
}

// MovementTypeWriterSvc defines write operations for movement types
type MovementTypeWriterSvc interface {
	// CreateMovementType persists a movement type whose two accounts exist, are postable and differ.
	CreateMovementType(ctx context.Context, caps domain.Capabilities, req dto.CreateMovementTypeRequest, userID string) (*domain.MovementType, error)
	UpdateMovementType(ctx context.Context, caps domain.Capabilities, movementTypeID string, req dto.UpdateMovementTypeRequest, userID string) (*domain.MovementType, error)
	// InactivateMovementType hides a movement type from new titles without touching existing ones.
	InactivateMovementType(ctx context.Context, caps domain.Capabilities, movementTypeID string, userID string) (*domain.MovementType, error)
	// DeleteMovementType removes a movement type no title references.
	DeleteMovementType(ctx context.Context, caps domain.Capabilities, movementTypeID string) error
}

// MovementTypeSvcFacade combines all movement type service interfaces
type MovementTypeSvcFacade interface {
	MovementTypeReaderSvc
	MovementTypeWriterSvc
}
