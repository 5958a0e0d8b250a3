package snapshot

import "github.com/KirkDiggler/touchline/internal/models"

type SaveSnapshotInput struct {
	Snapshot *models.Snapshot
}

type LoadSnapshotInput struct {
}

type LoadSnapshotOutput struct {
	Snapshot *models.Snapshot
	Found    bool
}

type ClearSnapshotInput struct {
}
