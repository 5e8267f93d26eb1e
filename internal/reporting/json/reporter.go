package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"procompare/internal/core/domain"
	"procompare/internal/core/ports"
)

const ReporterTypeJSON = "json"

type Config struct {
	Compact bool `mapstructure:"compact"`
}

// Reporter writes the full aggregated comparison result as JSON. Output is
// deterministic: encoding/json orders map keys, and every slice in the
// result is emitted in its documented sort order.
type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}, nil
}

func (r *Reporter) Report(ctx context.Context, result *domain.ComparisonResult) error {
	encoder := json.NewEncoder(r.writer)
	if !r.config.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(result); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debugf(ctx, "JSON report generated.")
	return nil
}
