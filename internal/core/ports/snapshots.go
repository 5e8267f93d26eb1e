package ports

import (
	"context"

	"procompare/internal/core/domain"
)

// SnapshotSource resolves process ids to already-pulled configuration
// snapshots. Passing no ids to LoadAll loads every snapshot the source
// knows about, in stable order.
type SnapshotSource interface {
	Type() string
	Load(ctx context.Context, processID string) (*domain.ProcessSnapshot, error)
	LoadAll(ctx context.Context, processIDs []string) ([]domain.SnapshotPair, error)
}
