package domain

// ProcessRef identifies one compared process in the aggregated result.
type ProcessRef struct {
	ProcessID   string `json:"processId"`
	ProcessName string `json:"processName"`
	OrgURL      string `json:"orgUrl,omitempty"`
}

// PropertyDifference records one property whose serialized value is not
// identical across every process the owning entity is present in. Values
// holds the raw per-process values, keyed by process id, for present
// processes only.
type PropertyDifference struct {
	Property string         `json:"property"`
	Values   map[string]any `json:"values"`
}

// WorkItemTypeAttributes is the per-process attribute snapshot of an
// aligned work item type. Attribute drift (isDisabled and friends) is
// deliberately not emitted as a difference record; callers compare these
// per-process attributes directly.
type WorkItemTypeAttributes struct {
	ReferenceName string `json:"referenceName"`
	Description   string `json:"description,omitempty"`
	Color         string `json:"color,omitempty"`
	Icon          string `json:"icon,omitempty"`
	IsDisabled    bool   `json:"isDisabled"`
	IsDefault     bool   `json:"isDefault"`
}

type WorkItemTypeDifference struct {
	WitName     string   `json:"witName"`
	PresentIn   []string `json:"presentIn"`
	MissingFrom []string `json:"missingFrom"`
}

type WorkItemTypeComparison struct {
	All         []string                                     `json:"all"`
	ByName      map[string]map[string]WorkItemTypeAttributes `json:"byName"`
	Differences []WorkItemTypeDifference                     `json:"differences"`
}

// FieldInfo merges a field's raw descriptor with its derived layout
// placement for one process. LayoutVisible is nil when the field is not on
// the layout at all.
type FieldInfo struct {
	Properties        PropertyBag `json:"properties"`
	OnLayout          bool        `json:"onLayout"`
	LayoutVisible     *bool       `json:"layoutVisible,omitempty"`
	LayoutGroupID     string      `json:"layoutGroupId,omitempty"`
	LayoutGroupLabel  string      `json:"layoutGroupLabel,omitempty"`
	LayoutControlType string      `json:"layoutControlType,omitempty"`
	LayoutLabel       string      `json:"layoutLabel,omitempty"`
}

type FieldDifference struct {
	FieldRefName        string               `json:"fieldRefName"`
	FieldName           string               `json:"fieldName"`
	PresentIn           []string             `json:"presentIn"`
	MissingFrom         []string             `json:"missingFrom"`
	PropertyDifferences []PropertyDifference `json:"propertyDifferences"`
}

// FieldComparison is the field pass output for one work item type.
// WitRefNames records the type's process-local reference name per process;
// LayoutGroups lists every eligible group per process, for callers wanting
// to place a missing field.
type FieldComparison struct {
	All          []string                        `json:"all"`
	ByField      map[string]map[string]FieldInfo `json:"byField"`
	Differences  []FieldDifference               `json:"differences"`
	WitRefNames  map[string]string               `json:"witRefNames"`
	LayoutGroups map[string][]LayoutGroup        `json:"layoutGroups"`
}

type StateDifference struct {
	StateID             string               `json:"stateId,omitempty"`
	StateName           string               `json:"stateName"`
	PresentIn           []string             `json:"presentIn"`
	MissingFrom         []string             `json:"missingFrom"`
	PropertyDifferences []PropertyDifference `json:"propertyDifferences"`
}

type StateComparison struct {
	All         []string                          `json:"all"`
	ByState     map[string]map[string]PropertyBag `json:"byState"`
	Differences []StateDifference                 `json:"differences"`
	WitRefNames map[string]string                 `json:"witRefNames"`
}

type BehaviorDifference struct {
	BehaviorID   string   `json:"behaviorId"`
	BehaviorName string   `json:"behaviorName"`
	PresentIn    []string `json:"presentIn"`
	MissingFrom  []string `json:"missingFrom"`
}

// BehaviorComparison is presence-only: process-level behaviors carry
// little mutable state worth diffing.
type BehaviorComparison struct {
	All         []string             `json:"all"`
	Differences []BehaviorDifference `json:"differences"`
}

type BindingDifference struct {
	BehaviorID          string               `json:"behaviorId"`
	PresentIn           []string             `json:"presentIn"`
	MissingFrom         []string             `json:"missingFrom"`
	PropertyDifferences []PropertyDifference `json:"propertyDifferences"`
}

type BindingComparison struct {
	All         []string                          `json:"all"`
	ByBehavior  map[string]map[string]PropertyBag `json:"byBehavior"`
	Differences []BindingDifference               `json:"differences"`
}

// Summary counts difference records per dimension. Every record counts
// equally; there is no severity weighting.
type Summary struct {
	WitDifferences         int `json:"witDifferences"`
	FieldDifferences       int `json:"fieldDifferences"`
	StateDifferences       int `json:"stateDifferences"`
	BehaviorDifferences    int `json:"behaviorDifferences"`
	WitBehaviorDifferences int `json:"witBehaviorDifferences"`
	TotalDifferences       int `json:"totalDifferences"`
}

type Comparison struct {
	WorkItemTypes         WorkItemTypeComparison        `json:"workItemTypes"`
	Fields                map[string]*FieldComparison   `json:"fields"`
	States                map[string]*StateComparison   `json:"states"`
	Behaviors             BehaviorComparison            `json:"behaviors"`
	WorkItemTypeBehaviors map[string]*BindingComparison `json:"workItemTypeBehaviors"`
	Summary               Summary                       `json:"summary"`
}

type ComparisonResult struct {
	Processes  []ProcessRef `json:"processes"`
	Comparison Comparison   `json:"comparison"`
}
