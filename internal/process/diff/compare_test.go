package diff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/domain"
	"procompare/internal/errors"
)

func twoProcessPairs() []domain.SnapshotPair {
	return []domain.SnapshotPair{
		{ProcessID: "A", Snapshot: &domain.ProcessSnapshot{
			Name:   "Agile Variant A",
			OrgURL: "https://dev.azure.com/org-a",
			WorkItemTypes: []domain.WorkItemType{
				{
					Name:          "Bug",
					ReferenceName: "Custom.Bug.A",
					Fields: []domain.PropertyBag{
						{"referenceName": "Microsoft.VSTS.Common.Priority", "name": "Priority", "type": "integer", "required": false},
					},
					States: []domain.PropertyBag{
						{"id": "a-1", "name": "Closed", "stateCategory": "Completed", "order": 3},
					},
					Behaviors: []domain.PropertyBag{
						{"behaviorId": "System.RequirementBacklogBehavior", "isDefault": true},
					},
				},
				{Name: "Task", ReferenceName: "Custom.Task.A"},
			},
			Behaviors: []domain.PropertyBag{
				{"id": "System.TaskBacklogBehavior", "name": "Tasks"},
			},
		}},
		{ProcessID: "B", Snapshot: &domain.ProcessSnapshot{
			WorkItemTypes: []domain.WorkItemType{
				{
					Name:          "Bug",
					ReferenceName: "Custom.Bug.B",
					Fields: []domain.PropertyBag{
						{"referenceName": "Microsoft.VSTS.Common.Priority", "name": "Priority", "type": "integer", "required": true},
					},
					States: []domain.PropertyBag{
						{"id": "b-1", "name": "Closed", "stateCategory": "Completed", "order": 4},
					},
					Behaviors: []domain.PropertyBag{
						{"behaviorId": "System.RequirementBacklogBehavior", "isDefault": false},
					},
				},
			},
		}},
	}
}

func TestCompare(t *testing.T) {
	processIDs := []string{"A", "B"}

	t.Run("aggregates all five passes with summary counts", func(t *testing.T) {
		result, err := Compare(twoProcessPairs(), processIDs)
		require.NoError(t, err)

		// Task missing from B; Priority required drift; Closed order drift;
		// Tasks behavior missing from B; binding isDefault drift.
		s := result.Comparison.Summary
		assert.Equal(t, 1, s.WitDifferences)
		assert.Equal(t, 1, s.FieldDifferences)
		assert.Equal(t, 1, s.StateDifferences)
		assert.Equal(t, 1, s.BehaviorDifferences)
		assert.Equal(t, 1, s.WitBehaviorDifferences)
		assert.Equal(t, 5, s.TotalDifferences)
	})

	t.Run("process refs carry name and org url with id fallback", func(t *testing.T) {
		result, err := Compare(twoProcessPairs(), processIDs)
		require.NoError(t, err)

		require.Len(t, result.Processes, 2)
		assert.Equal(t, domain.ProcessRef{ProcessID: "A", ProcessName: "Agile Variant A", OrgURL: "https://dev.azure.com/org-a"}, result.Processes[0])
		assert.Equal(t, domain.ProcessRef{ProcessID: "B", ProcessName: "B"}, result.Processes[1])
	})

	t.Run("fewer than two process ids is a precondition violation", func(t *testing.T) {
		_, err := Compare(twoProcessPairs(), []string{"A"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodePrecondition))
	})

	t.Run("unresolvable process id is a precondition violation", func(t *testing.T) {
		_, err := Compare(twoProcessPairs(), []string{"A", "missing"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodePrecondition))
	})

	t.Run("deterministic output on repeated runs", func(t *testing.T) {
		first, err := Compare(twoProcessPairs(), processIDs)
		require.NoError(t, err)
		second, err := Compare(twoProcessPairs(), processIDs)
		require.NoError(t, err)

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(secondJSON))
	})

	t.Run("presence partitions cover the process list exactly", func(t *testing.T) {
		result, err := Compare(twoProcessPairs(), processIDs)
		require.NoError(t, err)

		checkPartition := func(presentIn, missingFrom []string) {
			t.Helper()
			combined := append(append([]string{}, presentIn...), missingFrom...)
			assert.ElementsMatch(t, processIDs, combined)
		}

		for _, d := range result.Comparison.WorkItemTypes.Differences {
			checkPartition(d.PresentIn, d.MissingFrom)
		}
		for _, fc := range result.Comparison.Fields {
			for _, d := range fc.Differences {
				checkPartition(d.PresentIn, d.MissingFrom)
			}
		}
		for _, sc := range result.Comparison.States {
			for _, d := range sc.Differences {
				checkPartition(d.PresentIn, d.MissingFrom)
			}
		}
		for _, d := range result.Comparison.Behaviors.Differences {
			checkPartition(d.PresentIn, d.MissingFrom)
		}
		for _, bc := range result.Comparison.WorkItemTypeBehaviors {
			for _, d := range bc.Differences {
				checkPartition(d.PresentIn, d.MissingFrom)
			}
		}
	})
}
