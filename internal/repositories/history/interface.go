package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/touchline/internal/repositories/history Repository

import (
	"context"

	"github.com/KirkDiggler/touchline/internal/models"
)

// Repository stores finished match records
type Repository interface {
	// SaveRecord persists a finished match
	SaveRecord(ctx context.Context, input *SaveRecordInput) error

	// GetRecord retrieves a finished match by ID
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.MatchRecord, error)

	// ListRecords returns finished matches, most recent first
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)
}
