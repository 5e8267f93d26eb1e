package diff

import (
	"procompare/internal/core/domain"
	"procompare/internal/process/normalize"
	"procompare/pkg/compare"
	"procompare/pkg/names"
)

// CompareStates runs the state pass for every work item type defined by any
// process. Structurally the field pass minus the layout cross-reference:
// states align by name, the process-local id is carried but never diffed,
// and customizationType is excluded because system-vs-custom status is an
// expected cross-process asymmetry.
func CompareStates(snaps []*normalize.Snapshot, processIDs []string) map[string]*domain.StateComparison {
	out := make(map[string]*domain.StateComparison)
	for _, witName := range unionWitNames(snaps) {
		out[witName] = compareStatesForType(witName, snaps, processIDs)
	}
	return out
}

func stateKey(st domain.PropertyBag) string {
	if name := st.String(domain.PropName); name != "" {
		return name
	}
	return st.String(domain.PropID)
}

func compareStatesForType(witName string, snaps []*normalize.Snapshot, processIDs []string) *domain.StateComparison {
	sc := &domain.StateComparison{
		All:         []string{},
		ByState:     make(map[string]map[string]domain.PropertyBag),
		Differences: make([]domain.StateDifference, 0),
		WitRefNames: make(map[string]string),
	}
	stateIDs := make(map[string]map[string]string)

	for _, s := range snaps {
		if attrs, ok := s.WitByName[witName]; ok {
			sc.WitRefNames[s.ProcessID] = attrs.ReferenceName
		}
		for _, st := range s.StatesByType[witName] {
			name := stateKey(st)

			perProcess := sc.ByState[name]
			if perProcess == nil {
				perProcess = make(map[string]domain.PropertyBag, len(processIDs))
				sc.ByState[name] = perProcess
			}
			perProcess[s.ProcessID] = st

			perProcessIDs := stateIDs[name]
			if perProcessIDs == nil {
				perProcessIDs = make(map[string]string, len(processIDs))
				stateIDs[name] = perProcessIDs
			}
			perProcessIDs[s.ProcessID] = st.String(domain.PropID)
		}
	}

	sc.All = names.SortedKeys(sc.ByState)

	for _, name := range sc.All {
		perProcess := sc.ByState[name]
		presentIn, missingFrom := splitPresence(processIDs, func(pid string) bool {
			_, ok := perProcess[pid]
			return ok
		})

		propDiffs := make([]domain.PropertyDifference, 0)
		if len(presentIn) >= 2 {
			present := make([]map[string]any, 0, len(presentIn))
			for _, pid := range presentIn {
				present = append(present, perProcess[pid])
			}
			props := compare.UnionKeys(present, domain.StateIgnoredProperties)
			propDiffs = diffProperties(props, presentIn, perProcess)
		}

		if len(missingFrom) == 0 && len(propDiffs) == 0 {
			continue
		}
		sc.Differences = append(sc.Differences, domain.StateDifference{
			StateID:             firstValue(processIDs, stateIDs[name]),
			StateName:           name,
			PresentIn:           presentIn,
			MissingFrom:         missingFrom,
			PropertyDifferences: propDiffs,
		})
	}

	return sc
}
