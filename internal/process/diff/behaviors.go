package diff

import (
	"sort"

	"procompare/internal/core/domain"
	"procompare/internal/process/normalize"
	"procompare/pkg/names"
)

// CompareBehaviors aligns process-level behaviors by identifier (behavior
// identifiers are stable well-known constants, unlike display names) and
// reports presence only.
func CompareBehaviors(snaps []*normalize.Snapshot, processIDs []string) domain.BehaviorComparison {
	byID := make(map[string]map[string]domain.PropertyBag)
	for _, s := range snaps {
		for _, b := range s.Behaviors {
			id := domain.BehaviorID(b)
			if id == "" {
				continue
			}
			perProcess := byID[id]
			if perProcess == nil {
				perProcess = make(map[string]domain.PropertyBag, len(processIDs))
				byID[id] = perProcess
			}
			perProcess[s.ProcessID] = b
		}
	}

	type entry struct {
		id   string
		name string
	}
	entries := make([]entry, 0, len(byID))
	for id, perProcess := range byID {
		name := ""
		for _, pid := range processIDs {
			if b, ok := perProcess[pid]; ok {
				name = b.String(domain.PropName)
				break
			}
		}
		if name == "" {
			name = id
		}
		entries = append(entries, entry{id: id, name: name})
	}
	names.SortBy(entries, func(e entry) string { return e.name })

	all := make([]string, 0, len(entries))
	differences := make([]domain.BehaviorDifference, 0)
	for _, e := range entries {
		all = append(all, e.name)
		perProcess := byID[e.id]
		presentIn, missingFrom := splitPresence(processIDs, func(pid string) bool {
			_, ok := perProcess[pid]
			return ok
		})
		if len(missingFrom) == 0 {
			continue
		}
		differences = append(differences, domain.BehaviorDifference{
			BehaviorID:   e.id,
			BehaviorName: e.name,
			PresentIn:    presentIn,
			MissingFrom:  missingFrom,
		})
	}

	return domain.BehaviorComparison{All: all, Differences: differences}
}

// CompareBindings aligns work-item-type behavior bindings by the bound
// behavior's identifier, per work item type. Exactly two properties are
// comparable on a binding: isDefault and isLegacyDefault.
func CompareBindings(snaps []*normalize.Snapshot, processIDs []string) map[string]*domain.BindingComparison {
	out := make(map[string]*domain.BindingComparison)
	for _, witName := range unionWitNames(snaps) {
		out[witName] = compareBindingsForType(witName, snaps, processIDs)
	}
	return out
}

func compareBindingsForType(witName string, snaps []*normalize.Snapshot, processIDs []string) *domain.BindingComparison {
	bc := &domain.BindingComparison{
		All:         []string{},
		ByBehavior:  make(map[string]map[string]domain.PropertyBag),
		Differences: make([]domain.BindingDifference, 0),
	}

	for _, s := range snaps {
		for _, b := range s.BindingsByType[witName] {
			id := domain.BindingBehaviorID(b)
			if id == "" {
				continue
			}
			perProcess := bc.ByBehavior[id]
			if perProcess == nil {
				perProcess = make(map[string]domain.PropertyBag, len(processIDs))
				bc.ByBehavior[id] = perProcess
			}
			perProcess[s.ProcessID] = b
		}
	}

	bc.All = make([]string, 0, len(bc.ByBehavior))
	for id := range bc.ByBehavior {
		bc.All = append(bc.All, id)
	}
	sort.Strings(bc.All)

	for _, id := range bc.All {
		perProcess := bc.ByBehavior[id]
		presentIn, missingFrom := splitPresence(processIDs, func(pid string) bool {
			_, ok := perProcess[pid]
			return ok
		})

		propDiffs := make([]domain.PropertyDifference, 0)
		if len(presentIn) >= 2 {
			propDiffs = diffProperties(domain.BindingComparedProperties, presentIn, perProcess)
		}

		if len(missingFrom) == 0 && len(propDiffs) == 0 {
			continue
		}
		bc.Differences = append(bc.Differences, domain.BindingDifference{
			BehaviorID:          id,
			PresentIn:           presentIn,
			MissingFrom:         missingFrom,
			PropertyDifferences: propDiffs,
		})
	}

	return bc
}
