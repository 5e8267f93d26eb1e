package domain

import "fmt"

// PropertyBag is a loosely-structured entity as pulled from the source
// system. Fields, states, behaviors and behavior bindings all arrive as
// property bags; typed access goes through the helpers below.
type PropertyBag map[string]any

// String returns the value under key rendered as a string, or "" when the
// key is absent or nil.
func (b PropertyBag) String(key string) string {
	v, ok := b[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Bool returns the value under key when it is a bool, false otherwise.
func (b PropertyBag) Bool(key string) bool {
	v, ok := b[key].(bool)
	return ok && v
}

func (b PropertyBag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// WorkItemType is one type definition inside a process. Display name is the
// cross-process alignment key; ReferenceName is process-local and may differ
// between processes for the same logical type.
type WorkItemType struct {
	Name          string        `json:"name"`
	ReferenceName string        `json:"referenceName"`
	Description   string        `json:"description,omitempty"`
	Color         string        `json:"color,omitempty"`
	Icon          string        `json:"icon,omitempty"`
	IsDisabled    bool          `json:"isDisabled"`
	IsDefault     bool          `json:"isDefault"`
	Fields        []PropertyBag `json:"fields,omitempty"`
	States        []PropertyBag `json:"states,omitempty"`
	Behaviors     []PropertyBag `json:"behaviors,omitempty"`
	Layout        *Layout       `json:"layout,omitempty"`
}

// ProcessSnapshot is one process's full pulled configuration, as cached by
// the puller. The per-type index maps are optional: when the document
// already carries them they are preferred over re-deriving from the nested
// work item type records.
type ProcessSnapshot struct {
	ProcessID     string         `json:"processId,omitempty"`
	Name          string         `json:"name,omitempty"`
	OrgURL        string         `json:"orgUrl,omitempty"`
	WorkItemTypes []WorkItemType `json:"workItemTypes,omitempty"`
	Behaviors     []PropertyBag  `json:"behaviors,omitempty"`

	FieldsByType   map[string][]PropertyBag `json:"fieldsByType,omitempty"`
	StatesByType   map[string][]PropertyBag `json:"statesByType,omitempty"`
	BindingsByType map[string][]PropertyBag `json:"behaviorsByType,omitempty"`
	LayoutByType   map[string]*Layout       `json:"layoutByType,omitempty"`
}

// SnapshotPair couples a snapshot with the process id the caller resolved it
// under. The pair's id wins over any id embedded in the document.
type SnapshotPair struct {
	ProcessID string
	Snapshot  *ProcessSnapshot
}

// BindingBehaviorID extracts the bound behavior's identifier from a
// work-item-type behavior binding. Bindings arrive either flat
// ({behaviorId: ...}) or with the behavior nested ({behavior: {id: ...}});
// a binding with neither falls back to its own id so it is never dropped.
func BindingBehaviorID(b PropertyBag) string {
	if id := b.String(PropBehaviorID); id != "" {
		return id
	}
	if nested, ok := b["behavior"].(map[string]any); ok {
		if id := PropertyBag(nested).String(PropID); id != "" {
			return id
		}
	}
	if nested, ok := b["behavior"].(PropertyBag); ok {
		if id := nested.String(PropID); id != "" {
			return id
		}
	}
	return b.String(PropID)
}

// BehaviorID extracts a process-level behavior's identifier. Behavior
// identifiers are stable well-known constants, which is why behaviors align
// by id rather than display name.
func BehaviorID(b PropertyBag) string {
	if id := b.String(PropID); id != "" {
		return id
	}
	if ref := b.String(PropReferenceName); ref != "" {
		return ref
	}
	return b.String(PropName)
}
