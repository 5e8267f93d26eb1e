// Package normalize reshapes a raw process snapshot into the per-work-item-type
// indices the comparison passes consume. The input snapshot is never mutated:
// derived indices live in a companion Snapshot value, so snapshots held in a
// shared cache survive concurrent comparisons.
package normalize

import (
	"procompare/internal/core/domain"
)

// Snapshot is one process's normalized view: the caller-supplied snapshot
// plus derived per-type indices, all keyed by work item type display name.
type Snapshot struct {
	ProcessID string
	Source    *domain.ProcessSnapshot

	WitByName      map[string]domain.WorkItemTypeAttributes
	FieldsByType   map[string][]domain.PropertyBag
	StatesByType   map[string][]domain.PropertyBag
	BindingsByType map[string][]domain.PropertyBag
	LayoutByType   map[string]*domain.Layout

	// Flattened layout views, derived from LayoutByType.
	PlacementsByType   map[string]map[string]domain.LayoutPlacement
	LayoutGroupsByType map[string][]domain.LayoutGroup

	Behaviors []domain.PropertyBag
}

// WitNames returns the display names of every work item type this process
// defines (unsorted).
func (s *Snapshot) WitNames() []string {
	out := make([]string, 0, len(s.WitByName))
	for name := range s.WitByName {
		out = append(out, name)
	}
	return out
}

// New normalizes one snapshot. Index entries follow a first-writer-wins
// rule per display name: a pre-existing top-level map entry in the source
// document is preferred outright, otherwise the first non-empty nested
// collection found while iterating work item types fills the slot and later
// same-name types do not overwrite it. Two types sharing a display name
// (the same logical type under two process variants) therefore merge into
// one key. Missing collections stay absent and read as empty; nothing here
// errors.
func New(processID string, src *domain.ProcessSnapshot) *Snapshot {
	s := &Snapshot{
		ProcessID:          processID,
		Source:             src,
		WitByName:          make(map[string]domain.WorkItemTypeAttributes),
		FieldsByType:       make(map[string][]domain.PropertyBag),
		StatesByType:       make(map[string][]domain.PropertyBag),
		BindingsByType:     make(map[string][]domain.PropertyBag),
		LayoutByType:       make(map[string]*domain.Layout),
		PlacementsByType:   make(map[string]map[string]domain.LayoutPlacement),
		LayoutGroupsByType: make(map[string][]domain.LayoutGroup),
	}
	if src == nil {
		return s
	}

	s.Behaviors = append(s.Behaviors, src.Behaviors...)

	// Pre-populated top-level indices win over anything derivable.
	for name, fields := range src.FieldsByType {
		s.FieldsByType[name] = fields
	}
	for name, states := range src.StatesByType {
		s.StatesByType[name] = states
	}
	for name, bindings := range src.BindingsByType {
		s.BindingsByType[name] = bindings
	}
	for name, layout := range src.LayoutByType {
		s.LayoutByType[name] = layout
	}

	for i := range src.WorkItemTypes {
		wit := &src.WorkItemTypes[i]
		name := witKey(wit)
		if name == "" {
			continue
		}

		if _, ok := s.WitByName[name]; !ok {
			s.WitByName[name] = domain.WorkItemTypeAttributes{
				ReferenceName: wit.ReferenceName,
				Description:   wit.Description,
				Color:         wit.Color,
				Icon:          wit.Icon,
				IsDisabled:    wit.IsDisabled,
				IsDefault:     wit.IsDefault,
			}
		}

		if _, ok := s.FieldsByType[name]; !ok && len(wit.Fields) > 0 {
			s.FieldsByType[name] = wit.Fields
		}
		if _, ok := s.StatesByType[name]; !ok && len(wit.States) > 0 {
			s.StatesByType[name] = wit.States
		}
		if _, ok := s.BindingsByType[name]; !ok && len(wit.Behaviors) > 0 {
			s.BindingsByType[name] = wit.Behaviors
		}
		if _, ok := s.LayoutByType[name]; !ok && wit.Layout != nil && len(wit.Layout.Pages) > 0 {
			s.LayoutByType[name] = wit.Layout
		}
	}

	for name, layout := range s.LayoutByType {
		placements, groups := FlattenLayout(layout)
		s.PlacementsByType[name] = placements
		s.LayoutGroupsByType[name] = groups
	}

	return s
}

// A type with no display name still needs a derivable key; reference name
// then the empty string (skipped) keeps malformed entries from crashing
// the pass.
func witKey(wit *domain.WorkItemType) string {
	if wit.Name != "" {
		return wit.Name
	}
	return wit.ReferenceName
}
