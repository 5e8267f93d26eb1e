package diff

import (
	"procompare/internal/core/domain"
	"procompare/internal/process/normalize"
	"procompare/pkg/compare"
	"procompare/pkg/names"
)

// CompareFields runs the field pass for every work item type defined by any
// process, keyed by the type's display name.
func CompareFields(snaps []*normalize.Snapshot, processIDs []string) map[string]*domain.FieldComparison {
	out := make(map[string]*domain.FieldComparison)
	for _, witName := range unionWitNames(snaps) {
		out[witName] = compareFieldsForType(witName, snaps, processIDs)
	}
	return out
}

// fieldRef derives a field's process-local identifier. A descriptor with no
// reference name falls back to its id so it still groups somewhere.
func fieldRef(f domain.PropertyBag) string {
	if ref := f.String(domain.PropReferenceName); ref != "" {
		return ref
	}
	return f.String(domain.PropID)
}

// fieldKey derives the cross-process alignment key: display name, falling
// back to the reference-name chain for malformed descriptors. Alignment is
// name-based because the same logical field can carry different reference
// names in different processes.
func fieldKey(f domain.PropertyBag) string {
	if name := f.String(domain.PropName); name != "" {
		return name
	}
	return fieldRef(f)
}

func compareFieldsForType(witName string, snaps []*normalize.Snapshot, processIDs []string) *domain.FieldComparison {
	fc := &domain.FieldComparison{
		All:          []string{},
		ByField:      make(map[string]map[string]domain.FieldInfo),
		Differences:  make([]domain.FieldDifference, 0),
		WitRefNames:  make(map[string]string),
		LayoutGroups: make(map[string][]domain.LayoutGroup),
	}
	refNames := make(map[string]map[string]string)

	for _, s := range snaps {
		if attrs, ok := s.WitByName[witName]; ok {
			fc.WitRefNames[s.ProcessID] = attrs.ReferenceName
		}
		if groups, ok := s.LayoutGroupsByType[witName]; ok {
			fc.LayoutGroups[s.ProcessID] = groups
		}
		placements := s.PlacementsByType[witName]

		// Group by reference name within the process first; a descriptor
		// repeated under one reference name collapses to the last copy.
		byRef := make(map[string]domain.PropertyBag)
		refOrder := make([]string, 0, len(s.FieldsByType[witName]))
		for _, f := range s.FieldsByType[witName] {
			ref := fieldRef(f)
			if _, seen := byRef[ref]; !seen {
				refOrder = append(refOrder, ref)
			}
			byRef[ref] = f
		}

		for _, ref := range refOrder {
			f := byRef[ref]
			name := fieldKey(f)

			info := domain.FieldInfo{Properties: f}
			if placement, ok := placements[ref]; ok {
				visible := placement.Visible
				info.OnLayout = true
				info.LayoutVisible = &visible
				info.LayoutGroupID = placement.GroupID
				info.LayoutGroupLabel = placement.GroupLabel
				info.LayoutControlType = placement.ControlType
				info.LayoutLabel = placement.Label
			}

			perProcess := fc.ByField[name]
			if perProcess == nil {
				perProcess = make(map[string]domain.FieldInfo, len(processIDs))
				fc.ByField[name] = perProcess
			}
			perProcess[s.ProcessID] = info

			perProcessRefs := refNames[name]
			if perProcessRefs == nil {
				perProcessRefs = make(map[string]string, len(processIDs))
				refNames[name] = perProcessRefs
			}
			perProcessRefs[s.ProcessID] = f.String(domain.PropReferenceName)
		}
	}

	fc.All = names.SortedKeys(fc.ByField)

	for _, name := range fc.All {
		perProcess := fc.ByField[name]
		presentIn, missingFrom := splitPresence(processIDs, func(pid string) bool {
			_, ok := perProcess[pid]
			return ok
		})

		propDiffs := make([]domain.PropertyDifference, 0)
		if len(presentIn) >= 2 {
			bags := make(map[string]domain.PropertyBag, len(presentIn))
			present := make([]map[string]any, 0, len(presentIn))
			for _, pid := range presentIn {
				bags[pid] = perProcess[pid].Properties
				present = append(present, perProcess[pid].Properties)
			}
			props := compare.UnionKeys(present, domain.FieldIgnoredProperties)
			propDiffs = diffProperties(props, presentIn, bags)
			propDiffs = append(propDiffs, layoutDifferences(presentIn, perProcess)...)
		}

		if len(missingFrom) == 0 && len(propDiffs) == 0 {
			continue
		}
		fc.Differences = append(fc.Differences, domain.FieldDifference{
			FieldRefName:        firstValue(processIDs, refNames[name]),
			FieldName:           name,
			PresentIn:           presentIn,
			MissingFrom:         missingFrom,
			PropertyDifferences: propDiffs,
		})
	}

	return fc
}

// layoutDifferences computes the two layout parity checks, independent of
// the raw property diff: onLayout across present processes, and
// layoutVisible only when every present process has the field on layout.
func layoutDifferences(presentIn []string, perProcess map[string]domain.FieldInfo) []domain.PropertyDifference {
	diffs := make([]domain.PropertyDifference, 0, 2)

	onSerialized := make([]string, 0, len(presentIn))
	onValues := make(map[string]any, len(presentIn))
	allOnLayout := true
	for _, pid := range presentIn {
		info := perProcess[pid]
		onSerialized = append(onSerialized, compare.Serialize(info.OnLayout, true))
		onValues[pid] = info.OnLayout
		if !info.OnLayout {
			allOnLayout = false
		}
	}
	if !compare.AllEqual(onSerialized) {
		diffs = append(diffs, domain.PropertyDifference{Property: domain.PropOnLayout, Values: onValues})
	}

	if !allOnLayout {
		return diffs
	}

	visSerialized := make([]string, 0, len(presentIn))
	visValues := make(map[string]any, len(presentIn))
	for _, pid := range presentIn {
		visible := perProcess[pid].LayoutVisible != nil && *perProcess[pid].LayoutVisible
		visSerialized = append(visSerialized, compare.Serialize(visible, true))
		visValues[pid] = visible
	}
	if !compare.AllEqual(visSerialized) {
		diffs = append(diffs, domain.PropertyDifference{Property: domain.PropLayoutVisible, Values: visValues})
	}

	return diffs
}
