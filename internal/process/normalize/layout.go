package normalize

import (
	"strings"

	"procompare/internal/core/domain"
)

// Pages that never carry field controls.
var skippedPageTypes = map[string]struct{}{
	"history":     {},
	"links":       {},
	"attachments": {},
}

// FlattenLayout walks a layout tree and derives the field placement index
// (field reference name -> placement) together with the list of eligible
// groups per the walk order. History/links/attachments pages and
// contribution groups are skipped; contribution controls inside ordinary
// groups are skipped for placement but do not disqualify the group. A field
// referenced by more than one control keeps its first placement.
func FlattenLayout(layout *domain.Layout) (map[string]domain.LayoutPlacement, []domain.LayoutGroup) {
	placements := make(map[string]domain.LayoutPlacement)
	groups := make([]domain.LayoutGroup, 0)
	if layout == nil {
		return placements, groups
	}

	for _, page := range layout.Pages {
		if _, skip := skippedPageTypes[strings.ToLower(page.PageType)]; skip {
			continue
		}
		for _, section := range page.Sections {
			for _, group := range section.Groups {
				if group.IsContribution {
					continue
				}
				groups = append(groups, domain.LayoutGroup{GroupID: group.ID, Label: group.Label})

				for _, control := range group.Controls {
					if control.IsContribution || control.ID == "" {
						continue
					}
					if _, exists := placements[control.ID]; exists {
						continue
					}
					placements[control.ID] = domain.LayoutPlacement{
						GroupID:     group.ID,
						GroupLabel:  group.Label,
						Visible:     control.Visible == nil || *control.Visible,
						ControlType: control.ControlType,
						Label:       control.Label,
					}
				}
			}
		}
	}

	return placements, groups
}
