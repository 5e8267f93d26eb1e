package diff

import (
	"fmt"

	"procompare/internal/core/domain"
	"procompare/internal/errors"
	"procompare/internal/process/normalize"
)

// Compare is the single entry point of the comparison engine: it normalizes
// each supplied snapshot, runs the five passes, and aggregates them into one
// result. processIDs fixes the order every per-process list and map follows.
//
// The only error condition is the caller-facing precondition: at least two
// process ids, each resolvable to a supplied snapshot. Beyond that the
// computation is total; malformed entries degrade to fallback keys rather
// than failing.
func Compare(pairs []domain.SnapshotPair, processIDs []string) (*domain.ComparisonResult, error) {
	if len(processIDs) < 2 {
		return nil, errors.New(errors.CodePrecondition, "comparison requires at least two processes")
	}

	byID := make(map[string]*domain.ProcessSnapshot, len(pairs))
	for _, p := range pairs {
		byID[p.ProcessID] = p.Snapshot
	}

	snaps := make([]*normalize.Snapshot, 0, len(processIDs))
	processes := make([]domain.ProcessRef, 0, len(processIDs))
	for _, pid := range processIDs {
		src, ok := byID[pid]
		if !ok {
			return nil, errors.New(errors.CodePrecondition, fmt.Sprintf("no snapshot supplied for process %q", pid))
		}
		snaps = append(snaps, normalize.New(pid, src))

		ref := domain.ProcessRef{ProcessID: pid, ProcessName: pid}
		if src != nil {
			if src.Name != "" {
				ref.ProcessName = src.Name
			}
			ref.OrgURL = src.OrgURL
		}
		processes = append(processes, ref)
	}

	comparison := domain.Comparison{
		WorkItemTypes:         CompareWorkItemTypes(snaps, processIDs),
		Fields:                CompareFields(snaps, processIDs),
		States:                CompareStates(snaps, processIDs),
		Behaviors:             CompareBehaviors(snaps, processIDs),
		WorkItemTypeBehaviors: CompareBindings(snaps, processIDs),
	}
	comparison.Summary = summarize(&comparison)

	return &domain.ComparisonResult{Processes: processes, Comparison: comparison}, nil
}

// summarize counts difference records per dimension; every record counts
// equally.
func summarize(c *domain.Comparison) domain.Summary {
	s := domain.Summary{
		WitDifferences:      len(c.WorkItemTypes.Differences),
		BehaviorDifferences: len(c.Behaviors.Differences),
	}
	for _, fc := range c.Fields {
		s.FieldDifferences += len(fc.Differences)
	}
	for _, sc := range c.States {
		s.StateDifferences += len(sc.Differences)
	}
	for _, bc := range c.WorkItemTypeBehaviors {
		s.WitBehaviorDifferences += len(bc.Differences)
	}
	s.TotalDifferences = s.WitDifferences + s.FieldDifferences + s.StateDifferences +
		s.BehaviorDifferences + s.WitBehaviorDifferences
	return s
}
