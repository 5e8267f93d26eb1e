package ports

import (
	"context"

	"procompare/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, result *domain.ComparisonResult) error
}
