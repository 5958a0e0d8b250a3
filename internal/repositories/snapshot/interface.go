package snapshot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/touchline/internal/repositories/snapshot Repository

import (
	"context"
)

// Repository persists the single "current match" snapshot used to resume after an interruption
type Repository interface {
	// SaveSnapshot overwrites the slot with the full match state
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// LoadSnapshot reads the slot, Found is false when the slot is empty
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error)

	// ClearSnapshot empties the slot
	ClearSnapshot(ctx context.Context, input *ClearSnapshotInput) error
}
