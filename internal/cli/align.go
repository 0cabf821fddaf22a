package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarlow/pkgalign/internal/engine"
)

var (
	alignRootPackage string
	alignDryRun      bool
	alignVerbose     bool
)

var alignCmd = &cobra.Command{
	Use:   "align [project-root]",
	Short: "Plan and perform the moves that align a project's source tree",
	Long: `Align the project at [project-root] (default: current directory).

Every source file's package declaration is compared with the directory it
sits in, and misplaced files are moved. If any file cannot be planned, or
two files want the same destination, nothing moves at all.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot := ""
		if len(args) > 0 {
			projectRoot = args[0]
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			projectRoot = cwd
		}

		eng, err := newEngine(projectRoot, alignVerbose)
		if err != nil {
			return err
		}

		result, err := eng.Align(&engine.AlignRequest{
			ProjectRoot: projectRoot,
			RootPackage: alignRootPackage,
			DryRun:      alignDryRun,
		})
		if err != nil {
			if result != nil && len(result.Moved) > 0 {
				PrintWarning(fmt.Sprintf("Aborted after %s", PrintCount(len(result.Moved), "move", "moves")))
			}
			return err
		}

		plan := result.Plan
		if plan.HasProblems() {
			PrintSection("Problems Detected")
			for _, problem := range plan.Problems {
				PrintError(problem.Message())
			}
			fmt.Println()
			PrintWarning(fmt.Sprintf("%s cannot proceed; fix the problems above and re-run.",
				PrintCount(len(plan.Moves), "move", "moves")))
			return nil
		}

		if len(plan.Moves) == 0 {
			PrintSuccess("All source files are already in place")
			return nil
		}

		if alignDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would perform %s", PrintCount(len(plan.Moves), "move", "moves")))
			moves := make([]string, 0, len(plan.Moves))
			for _, m := range plan.Moves {
				moves = append(moves, fmt.Sprintf("%s -> %s", m.Source, m.Dest))
			}
			PrintList(moves, 1)
			return nil
		}

		for _, m := range result.Moved {
			PrintInfo(fmt.Sprintf("moved %s -> %s", m.Source, m.Dest))
		}
		PrintSuccess(fmt.Sprintf("Performed %s", PrintCount(len(result.Moved), "move", "moves")))
		return nil
	},
}

func init() {
	alignCmd.Flags().StringVarP(&alignRootPackage, "root-package", "p", "", "Require every file's package to live under this dotted prefix")
	alignCmd.Flags().BoolVar(&alignDryRun, "dry-run", false, "Show what would move without moving anything")
	alignCmd.Flags().BoolVarP(&alignVerbose, "verbose", "v", false, "Trace scanning and move execution")
}
