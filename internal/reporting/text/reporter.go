package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"procompare/internal/core/domain"
	"procompare/internal/core/ports"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, _ := f.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, result *domain.ComparisonResult) error {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(r.writer, "Process Comparison Report")
	fmt.Fprintln(r.writer, "=========================")
	for _, p := range result.Processes {
		fmt.Fprintf(r.writer, "  %s (%s)\n", cyan(p.ProcessName), p.ProcessID)
	}
	fmt.Fprintln(r.writer)

	s := result.Comparison.Summary
	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Dimension\tDifferences")
	fmt.Fprintln(tw, "---------\t-----------")
	fmt.Fprintf(tw, "Work item types\t%s\n", countColor(s.WitDifferences, red, green))
	fmt.Fprintf(tw, "Fields\t%s\n", countColor(s.FieldDifferences, red, green))
	fmt.Fprintf(tw, "States\t%s\n", countColor(s.StateDifferences, red, green))
	fmt.Fprintf(tw, "Behaviors\t%s\n", countColor(s.BehaviorDifferences, red, green))
	fmt.Fprintf(tw, "Type behaviors\t%s\n", countColor(s.WitBehaviorDifferences, red, green))
	fmt.Fprintf(tw, "Total\t%s\n", countColor(s.TotalDifferences, red, green))
	if err := tw.Flush(); err != nil {
		return err
	}

	if s.TotalDifferences == 0 {
		fmt.Fprintf(r.writer, "\n%s\n", green("No differences found."))
		return nil
	}

	r.reportWorkItemTypes(result)
	r.reportBehaviors(result)
	r.reportPerType(ctx, result)

	return nil
}

func countColor(n int, red, green func(a ...interface{}) string) string {
	if n > 0 {
		return red(n)
	}
	return green(n)
}

func (r *Reporter) reportWorkItemTypes(result *domain.ComparisonResult) {
	diffs := result.Comparison.WorkItemTypes.Differences
	if len(diffs) == 0 {
		return
	}
	fmt.Fprintln(r.writer, "\nWork item types:")
	for _, d := range diffs {
		fmt.Fprintf(r.writer, "  %s: missing from %s\n", d.WitName, strings.Join(d.MissingFrom, ", "))
	}
}

func (r *Reporter) reportBehaviors(result *domain.ComparisonResult) {
	diffs := result.Comparison.Behaviors.Differences
	if len(diffs) == 0 {
		return
	}
	fmt.Fprintln(r.writer, "\nBehaviors:")
	for _, d := range diffs {
		fmt.Fprintf(r.writer, "  %s (%s): missing from %s\n", d.BehaviorName, d.BehaviorID, strings.Join(d.MissingFrom, ", "))
	}
}

func (r *Reporter) reportPerType(ctx context.Context, result *domain.ComparisonResult) {
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, witName := range result.Comparison.WorkItemTypes.All {
		if ctx.Err() != nil {
			return
		}
		fieldDiffs := diffCountForType(result, witName)
		if fieldDiffs == 0 {
			continue
		}
		fmt.Fprintf(r.writer, "\n%s:\n", yellow(witName))

		if fc, ok := result.Comparison.Fields[witName]; ok {
			for _, d := range fc.Differences {
				r.printEntityDiff("field", d.FieldName, d.MissingFrom, d.PropertyDifferences)
			}
		}
		if sc, ok := result.Comparison.States[witName]; ok {
			for _, d := range sc.Differences {
				r.printEntityDiff("state", d.StateName, d.MissingFrom, d.PropertyDifferences)
			}
		}
		if bc, ok := result.Comparison.WorkItemTypeBehaviors[witName]; ok {
			for _, d := range bc.Differences {
				r.printEntityDiff("behavior", d.BehaviorID, d.MissingFrom, d.PropertyDifferences)
			}
		}
	}
}

func diffCountForType(result *domain.ComparisonResult, witName string) int {
	n := 0
	if fc, ok := result.Comparison.Fields[witName]; ok {
		n += len(fc.Differences)
	}
	if sc, ok := result.Comparison.States[witName]; ok {
		n += len(sc.Differences)
	}
	if bc, ok := result.Comparison.WorkItemTypeBehaviors[witName]; ok {
		n += len(bc.Differences)
	}
	return n
}

func (r *Reporter) printEntityDiff(kind, name string, missingFrom []string, propDiffs []domain.PropertyDifference) {
	if len(missingFrom) > 0 {
		fmt.Fprintf(r.writer, "  %s %s: missing from %s\n", kind, name, strings.Join(missingFrom, ", "))
	}
	for _, pd := range propDiffs {
		fmt.Fprintf(r.writer, "  %s %s: %s differs", kind, name, pd.Property)
		first := true
		for _, pid := range sortedValueKeys(pd.Values) {
			if first {
				fmt.Fprint(r.writer, " (")
			} else {
				fmt.Fprint(r.writer, ", ")
			}
			fmt.Fprintf(r.writer, "%s=%v", pid, pd.Values[pid])
			first = false
		}
		if !first {
			fmt.Fprint(r.writer, ")")
		}
		fmt.Fprintln(r.writer)
	}
}

func sortedValueKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
