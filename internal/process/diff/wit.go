package diff

import (
	"procompare/internal/core/domain"
	"procompare/internal/process/normalize"
	"procompare/pkg/names"
)

// CompareWorkItemTypes aligns work item types across processes by display
// name. This pass reports presence only: attribute drift on an aligned type
// (a disabled "Bug" in one process, say) is intentionally not a difference
// record, because callers detect enabling/disabling through the per-process
// attribute map instead.
func CompareWorkItemTypes(snaps []*normalize.Snapshot, processIDs []string) domain.WorkItemTypeComparison {
	byName := make(map[string]map[string]domain.WorkItemTypeAttributes)
	for _, s := range snaps {
		for name, attrs := range s.WitByName {
			perProcess := byName[name]
			if perProcess == nil {
				perProcess = make(map[string]domain.WorkItemTypeAttributes, len(processIDs))
				byName[name] = perProcess
			}
			perProcess[s.ProcessID] = attrs
		}
	}

	all := names.SortedKeys(byName)
	differences := make([]domain.WorkItemTypeDifference, 0)
	for _, name := range all {
		perProcess := byName[name]
		presentIn, missingFrom := splitPresence(processIDs, func(pid string) bool {
			_, ok := perProcess[pid]
			return ok
		})
		if len(missingFrom) == 0 {
			continue
		}
		differences = append(differences, domain.WorkItemTypeDifference{
			WitName:     name,
			PresentIn:   presentIn,
			MissingFrom: missingFrom,
		})
	}

	return domain.WorkItemTypeComparison{
		All:         all,
		ByName:      byName,
		Differences: differences,
	}
}
