package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/domain"
	"procompare/internal/process/normalize"
)

func stateSnapshot(pid string, states []domain.PropertyBag) *normalize.Snapshot {
	return normalized(pid, &domain.ProcessSnapshot{
		WorkItemTypes: []domain.WorkItemType{
			{Name: "Bug", ReferenceName: "Ref." + pid + ".Bug", States: states},
		},
	})
}

func TestCompareStates(t *testing.T) {
	processIDs := []string{"A", "B"}

	t.Run("order drift on a shared state", func(t *testing.T) {
		snaps := []*normalize.Snapshot{
			stateSnapshot("A", []domain.PropertyBag{
				{"id": "a-1", "name": "Closed", "stateCategory": "Completed", "order": 3, "color": "339933"},
			}),
			stateSnapshot("B", []domain.PropertyBag{
				{"id": "b-9", "name": "Closed", "stateCategory": "Completed", "order": 4, "color": "339933"},
			}),
		}

		out := CompareStates(snaps, processIDs)
		sc := out["Bug"]
		require.Len(t, sc.Differences, 1)

		d := sc.Differences[0]
		assert.Equal(t, "Closed", d.StateName)
		assert.Equal(t, "a-1", d.StateID)
		assert.Empty(t, d.MissingFrom)
		require.Len(t, d.PropertyDifferences, 1)
		assert.Equal(t, "order", d.PropertyDifferences[0].Property)
		assert.Equal(t, map[string]any{"A": 3, "B": 4}, d.PropertyDifferences[0].Values)
	})

	t.Run("id and customizationType are expected variance", func(t *testing.T) {
		snaps := []*normalize.Snapshot{
			stateSnapshot("A", []domain.PropertyBag{
				{"id": "a-1", "name": "New", "stateCategory": "Proposed", "order": 1, "customizationType": "system"},
			}),
			stateSnapshot("B", []domain.PropertyBag{
				{"id": "b-7", "name": "New", "stateCategory": "Proposed", "order": 1, "customizationType": "custom"},
			}),
		}

		out := CompareStates(snaps, processIDs)
		assert.Empty(t, out["Bug"].Differences)
	})

	t.Run("state missing from one process", func(t *testing.T) {
		snaps := []*normalize.Snapshot{
			stateSnapshot("A", []domain.PropertyBag{
				{"id": "a-1", "name": "Triage", "stateCategory": "Proposed", "order": 2},
			}),
			stateSnapshot("B", nil),
		}

		out := CompareStates(snaps, processIDs)
		require.Len(t, out["Bug"].Differences, 1)
		d := out["Bug"].Differences[0]
		assert.Equal(t, []string{"A"}, d.PresentIn)
		assert.Equal(t, []string{"B"}, d.MissingFrom)
		assert.Empty(t, d.PropertyDifferences)
	})

	t.Run("nameless state groups under its id", func(t *testing.T) {
		snaps := []*normalize.Snapshot{
			stateSnapshot("A", []domain.PropertyBag{{"id": "odd-1", "order": 5}}),
			stateSnapshot("B", nil),
		}

		out := CompareStates(snaps, processIDs)
		assert.Equal(t, []string{"odd-1"}, out["Bug"].All)
	})

	t.Run("witRefNames carried like the field pass", func(t *testing.T) {
		snaps := []*normalize.Snapshot{
			stateSnapshot("A", nil),
			stateSnapshot("B", nil),
		}

		out := CompareStates(snaps, processIDs)
		assert.Equal(t, map[string]string{"A": "Ref.A.Bug", "B": "Ref.B.Bug"}, out["Bug"].WitRefNames)
	})
}
