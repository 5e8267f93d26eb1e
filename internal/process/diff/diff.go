// Package diff implements the five comparison passes over normalized
// process snapshots: work item types, fields, states, process behaviors,
// and work-item-type behavior bindings, plus the aggregation into one
// comparison result. Every pass is a pure function over the supplied
// snapshots; nothing here performs I/O or mutates its input.
package diff

import (
	"procompare/internal/core/domain"
	"procompare/internal/process/normalize"
	"procompare/pkg/compare"
	"procompare/pkg/names"
)

// splitPresence partitions the ordered process id list into the processes
// an entity is present in and the ones it is missing from. The two slices
// together always cover the full list exactly once.
func splitPresence(processIDs []string, has func(pid string) bool) (presentIn, missingFrom []string) {
	presentIn = make([]string, 0, len(processIDs))
	missingFrom = make([]string, 0)
	for _, pid := range processIDs {
		if has(pid) {
			presentIn = append(presentIn, pid)
		} else {
			missingFrom = append(missingFrom, pid)
		}
	}
	return presentIn, missingFrom
}

// unionWitNames collects every work item type display name defined by any
// process, sorted case-insensitively.
func unionWitNames(snaps []*normalize.Snapshot) []string {
	seen := make(map[string]struct{})
	for _, s := range snaps {
		for name := range s.WitByName {
			seen[name] = struct{}{}
		}
	}
	all := make([]string, 0, len(seen))
	for name := range seen {
		all = append(all, name)
	}
	names.SortCaseInsensitive(all)
	return all
}

// diffProperties applies the serialize-and-compare rule over the given
// property names for an entity present in the given processes. A property
// differs when the serialized forms are not identical across every present
// process; absent values serialize as null. Values in the emitted record
// cover present processes only.
func diffProperties(props []string, presentIn []string, bags map[string]domain.PropertyBag) []domain.PropertyDifference {
	diffs := make([]domain.PropertyDifference, 0)
	for _, prop := range props {
		serialized := make([]string, 0, len(presentIn))
		for _, pid := range presentIn {
			v, ok := bags[pid][prop]
			serialized = append(serialized, compare.Serialize(v, ok))
		}
		if compare.AllEqual(serialized) {
			continue
		}
		values := make(map[string]any, len(presentIn))
		for _, pid := range presentIn {
			values[pid] = bags[pid][prop]
		}
		diffs = append(diffs, domain.PropertyDifference{Property: prop, Values: values})
	}
	return diffs
}

// firstValue returns the value recorded for the first process (in supplied
// order) that has one.
func firstValue(processIDs []string, perProcess map[string]string) string {
	for _, pid := range processIDs {
		if v, ok := perProcess[pid]; ok {
			return v
		}
	}
	return ""
}
