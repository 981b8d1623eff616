package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/goal-planner/internal/agents"
	"github.com/example/goal-planner/internal/models"
)

func newPlanCmd(configPath *string) *cobra.Command {
	var table bool
	cmd := &cobra.Command{
		Use:   "plan <goal>",
		Short: "Generate one plan and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, ok := models.NormalizeGoal(strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("no goal provided")
			}

			a, err := bootstrap(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			plan, err := a.planner.GeneratePlan(cmd.Context(), goal)
			if err != nil {
				pe := agents.AsPlanError(err)
				_ = writeJSON(cmd.OutOrStdout(), models.ErrorDescriptor{Error: pe.Message})
				return pe
			}
			if table {
				return writeTable(cmd.OutOrStdout(), plan.Tasks())
			}
			return writeJSON(cmd.OutOrStdout(), plan)
		},
	}
	cmd.Flags().BoolVar(&table, "table", false, "print tasks as a table instead of JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, tasks []models.Task) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTASK\tDAYS\tDEADLINE\tDEPENDS ON")
	for i, t := range tasks {
		deps := strings.Join(t.Dependencies, ", ")
		if deps == "" {
			deps = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", i+1, t.Task, t.DurationDays, t.DeadlineDays, deps)
	}
	return tw.Flush()
}
