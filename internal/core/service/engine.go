package service

import (
	"context"

	"procompare/internal/core/domain"
	"procompare/internal/core/ports"
	"procompare/internal/errors"
	"procompare/internal/process/diff"
)

// ProcessComparisonEngine loads the configured snapshots, runs the pure
// comparison, and hands the result to the reporter. The comparison itself
// lives in internal/process/diff and stays callable without this service.
type ProcessComparisonEngine struct {
	source     ports.SnapshotSource
	reporter   ports.Reporter
	logger     ports.Logger
	processIDs []string
}

func NewProcessComparisonEngine(
	source ports.SnapshotSource,
	reporter ports.Reporter,
	logger ports.Logger,
	processIDs []string,
) (*ProcessComparisonEngine, error) {
	if source == nil {
		return nil, errors.New(errors.CodeConfigValidation, "snapshot source cannot be nil")
	}
	if reporter == nil {
		return nil, errors.New(errors.CodeConfigValidation, "reporter cannot be nil")
	}

	return &ProcessComparisonEngine{
		source:     source,
		reporter:   reporter,
		logger:     logger,
		processIDs: processIDs,
	}, nil
}

func (e *ProcessComparisonEngine) Run(ctx context.Context) error {
	e.logger.Infof(ctx, "Starting process comparison using %s snapshot source", e.source.Type())

	pairs, err := e.source.LoadAll(ctx, e.processIDs)
	if err != nil {
		return err
	}
	if len(pairs) < 2 {
		return errors.NewUserFacing(errors.CodePrecondition,
			"comparison requires at least two process snapshots",
			"Pull at least two process snapshots into the snapshot directory, or list two or more processes in the configuration.")
	}

	processIDs := make([]string, 0, len(pairs))
	for _, p := range pairs {
		processIDs = append(processIDs, p.ProcessID)
	}
	e.logger.Debugf(ctx, "Comparing processes: %v", processIDs)

	result, err := diff.Compare(pairs, processIDs)
	if err != nil {
		return errors.Wrap(err, errors.CodeComparisonError, "comparison failed")
	}

	e.logResult(ctx, result)

	if err := e.reporter.Report(ctx, result); err != nil {
		return errors.Wrap(err, errors.CodeReportingError, "failed to report comparison result")
	}
	return nil
}

func (e *ProcessComparisonEngine) logResult(ctx context.Context, result *domain.ComparisonResult) {
	s := result.Comparison.Summary
	e.logger.Infof(ctx, "Comparison finished: %d total differences (wit=%d fields=%d states=%d behaviors=%d witBehaviors=%d)",
		s.TotalDifferences, s.WitDifferences, s.FieldDifferences, s.StateDifferences,
		s.BehaviorDifferences, s.WitBehaviorDifferences)
}
