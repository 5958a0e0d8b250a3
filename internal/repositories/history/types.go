package history

import (
	"errors"

	"github.com/KirkDiggler/touchline/internal/models"
)

// ErrRecordNotFound is returned when a match record is not found
var ErrRecordNotFound = errors.New("match record not found")

type SaveRecordInput struct {
	Record *models.MatchRecord
}

type GetRecordInput struct {
	RecordID string
}

type ListRecordsInput struct {
	// Limit caps the number of records returned, zero means no limit
	Limit int
}

type ListRecordsOutput struct {
	Records []*models.MatchRecord
}

func validateRecord(input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}
	if input.Record.ID == "" {
		return errors.New("record ID cannot be empty")
	}
	return nil
}
