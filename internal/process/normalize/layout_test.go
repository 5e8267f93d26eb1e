package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestFlattenLayout(t *testing.T) {
	layout := &domain.Layout{
		Pages: []domain.Page{
			{
				ID:       "page-details",
				Label:    "Details",
				PageType: "custom",
				Sections: []domain.Section{
					{
						ID: "Section1",
						Groups: []domain.Group{
							{
								ID:    "group-planning",
								Label: "Planning",
								Controls: []domain.Control{
									{ID: "Microsoft.VSTS.Common.Priority", Label: "Priority", ControlType: "FieldControl"},
									{ID: "Custom.Hidden", Label: "Hidden", Visible: boolPtr(false)},
									{ID: "ext.widget", IsContribution: true},
								},
							},
							{
								ID:             "group-ext",
								Label:          "Extension",
								IsContribution: true,
								Controls: []domain.Control{
									{ID: "Custom.Inside"},
								},
							},
							{
								ID:    "group-status",
								Label: "Status",
								Controls: []domain.Control{
									// Second control for an already-placed field.
									{ID: "Microsoft.VSTS.Common.Priority", Label: "Priority (again)"},
								},
							},
						},
					},
				},
			},
			{
				ID:       "page-history",
				PageType: "history",
				Sections: []domain.Section{
					{Groups: []domain.Group{{ID: "history-group", Controls: []domain.Control{{ID: "System.History"}}}}},
				},
			},
		},
	}

	placements, groups := FlattenLayout(layout)

	t.Run("skips history pages and contribution groups", func(t *testing.T) {
		assert.NotContains(t, placements, "System.History")
		assert.NotContains(t, placements, "Custom.Inside")
		assert.Equal(t, []domain.LayoutGroup{
			{GroupID: "group-planning", Label: "Planning"},
			{GroupID: "group-status", Label: "Status"},
		}, groups)
	})

	t.Run("first placement wins", func(t *testing.T) {
		p, ok := placements["Microsoft.VSTS.Common.Priority"]
		require.True(t, ok)
		assert.Equal(t, "group-planning", p.GroupID)
		assert.Equal(t, "Planning", p.GroupLabel)
		assert.Equal(t, "Priority", p.Label)
		assert.Equal(t, "FieldControl", p.ControlType)
	})

	t.Run("visible defaults to true when absent", func(t *testing.T) {
		assert.True(t, placements["Microsoft.VSTS.Common.Priority"].Visible)
		assert.False(t, placements["Custom.Hidden"].Visible)
	})

	t.Run("contribution controls are not placed", func(t *testing.T) {
		assert.NotContains(t, placements, "ext.widget")
	})

	t.Run("nil layout yields empty indices", func(t *testing.T) {
		p, g := FlattenLayout(nil)
		assert.Empty(t, p)
		assert.Empty(t, g)
	})
}
