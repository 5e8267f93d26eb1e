package json

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/domain"
	"procompare/internal/core/ports"
)

type noopLogger struct{}

func (noopLogger) Debugf(ctx context.Context, format string, args ...any)            {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)             {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)             {}
func (noopLogger) Errorf(ctx context.Context, err error, format string, args ...any) {}
func (l noopLogger) WithFields(fields map[string]any) ports.Logger                   { return l }

func sampleResult() *domain.ComparisonResult {
	return &domain.ComparisonResult{
		Processes: []domain.ProcessRef{
			{ProcessID: "proc-a", ProcessName: "Agile A", OrgURL: "https://dev.azure.com/org-a"},
			{ProcessID: "proc-b", ProcessName: "Agile B"},
		},
		Comparison: domain.Comparison{
			WorkItemTypes: domain.WorkItemTypeComparison{
				All: []string{"Bug"},
				ByName: map[string]map[string]domain.WorkItemTypeAttributes{
					"Bug": {
						"proc-a": {ReferenceName: "Custom.Bug.A"},
						"proc-b": {ReferenceName: "Custom.Bug.B", IsDisabled: true},
					},
				},
				Differences: []domain.WorkItemTypeDifference{},
			},
			Fields: map[string]*domain.FieldComparison{
				"Bug": {
					All: []string{"Priority"},
					ByField: map[string]map[string]domain.FieldInfo{
						"Custom.Priority": {
							"proc-a": {
								Properties: domain.PropertyBag{"name": "Priority", "required": true},
							},
						},
					},
					Differences: []domain.FieldDifference{
						{
							FieldRefName:        "Custom.Priority",
							FieldName:           "Priority",
							PresentIn:           []string{"proc-a"},
							MissingFrom:         []string{"proc-b"},
							PropertyDifferences: []domain.PropertyDifference{},
						},
					},
					WitRefNames: map[string]string{
						"proc-a": "Custom.Bug.A",
						"proc-b": "Custom.Bug.B",
					},
					LayoutGroups: map[string][]domain.LayoutGroup{},
				},
			},
			States: map[string]*domain.StateComparison{},
			Behaviors: domain.BehaviorComparison{
				All:         []string{},
				Differences: []domain.BehaviorDifference{},
			},
			WorkItemTypeBehaviors: map[string]*domain.BindingComparison{},
			Summary: domain.Summary{
				FieldDifferences: 1,
				TotalDifferences: 1,
			},
		},
	}
}

func TestReporterReport(t *testing.T) {
	ctx := context.Background()

	t.Run("pretty output matches the golden report", func(t *testing.T) {
		reporter, err := NewReporter(Config{}, noopLogger{})
		require.NoError(t, err)

		var buf bytes.Buffer
		reporter.writer = &buf
		require.NoError(t, reporter.Report(ctx, sampleResult()))

		g := goldie.New(t,
			goldie.WithFixtureDir("testdata"),
			goldie.WithNameSuffix(".golden"),
		)
		g.Assert(t, "report", buf.Bytes())
	})

	t.Run("compact output is a single line", func(t *testing.T) {
		reporter, err := NewReporter(Config{Compact: true}, noopLogger{})
		require.NoError(t, err)

		var buf bytes.Buffer
		reporter.writer = &buf
		require.NoError(t, reporter.Report(ctx, sampleResult()))

		out := buf.String()
		assert.Equal(t, 1, strings.Count(out, "\n"))
		assert.True(t, strings.HasSuffix(out, "\n"))

		var decoded domain.ComparisonResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, 1, decoded.Comparison.Summary.TotalDifferences)
	})
}
