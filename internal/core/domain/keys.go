package domain

const (
	// Common property keys
	PropID            = "id"
	PropName          = "name"
	PropReferenceName = "referenceName"
	PropURL           = "url"

	// Field property keys
	PropType         = "type"
	PropRequired     = "required"
	PropReadOnly     = "readOnly"
	PropDefaultValue = "defaultValue"
	PropHidden       = "hidden"
	PropIsLocked     = "isLocked"

	// State property keys
	PropColor             = "color"
	PropStateCategory     = "stateCategory"
	PropOrder             = "order"
	PropCustomization     = "customization"
	PropCustomizationType = "customizationType"

	// Binding property keys
	PropBehaviorID      = "behaviorId"
	PropIsDefault       = "isDefault"
	PropIsLegacyDefault = "isLegacyDefault"

	// Derived layout property names used in difference records
	PropOnLayout      = "onLayout"
	PropLayoutVisible = "layoutVisible"
)

// Expected-variance properties, excluded from diffing per entity kind.
// These differ between processes by construction and are not drift signals.
var (
	// url and customization are process-scoped; hidden/isLocked vary with
	// the pull context.
	FieldIgnoredProperties = []string{PropURL, PropCustomization, PropHidden, PropIsLocked}

	// customizationType reflects system-vs-custom status, an expected
	// cross-process asymmetry; id is the process-local identifier.
	StateIgnoredProperties = []string{PropURL, PropCustomization, PropCustomizationType, PropID}

	// Bindings carry exactly two comparable properties.
	BindingComparedProperties = []string{PropIsDefault, PropIsLegacyDefault}
)
