package domain

// Layout is the hierarchical form definition of a work item type:
// ordered pages holding sections holding groups holding controls.
type Layout struct {
	Pages []Page `json:"pages,omitempty"`
}

type Page struct {
	ID       string    `json:"id,omitempty"`
	Label    string    `json:"label,omitempty"`
	PageType string    `json:"pageType,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

type Section struct {
	ID     string  `json:"id,omitempty"`
	Groups []Group `json:"groups,omitempty"`
}

type Group struct {
	ID             string    `json:"id,omitempty"`
	Label          string    `json:"label,omitempty"`
	IsContribution bool      `json:"isContribution,omitempty"`
	Controls       []Control `json:"controls,omitempty"`
}

// Control places a field (or a contribution) on the form. For field
// controls the id is the field's reference name. Visible is a pointer
// because the source omits the property for visible controls.
type Control struct {
	ID             string `json:"id,omitempty"`
	Label          string `json:"label,omitempty"`
	ControlType    string `json:"controlType,omitempty"`
	Visible        *bool  `json:"visible,omitempty"`
	IsContribution bool   `json:"isContribution,omitempty"`
}

// LayoutPlacement is the derived placement of one field on a form:
// where a control referencing the field's reference name was found.
type LayoutPlacement struct {
	GroupID     string `json:"groupId"`
	GroupLabel  string `json:"groupLabel,omitempty"`
	Visible     bool   `json:"visible"`
	ControlType string `json:"controlType,omitempty"`
	Label       string `json:"label,omitempty"`
}

// LayoutGroup identifies a group a field control could be placed into.
type LayoutGroup struct {
	GroupID string `json:"groupId"`
	Label   string `json:"label,omitempty"`
}
