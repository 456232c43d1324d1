package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fanout/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [root]",
		Short: "Compute and publish the stage plan for a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			changes, _ := cmd.Flags().GetString("changes")
			gitBase, _ := cmd.Flags().GetString("git-base")
			all, _ := cmd.Flags().GetBool("all")
			capacity, _ := cmd.Flags().GetInt("capacity")
			return c.app.Run(cmd.Context(), app.RunOptions{
				Root:        root,
				ChangesPath: changes,
				GitBase:     gitBase,
				ForceAll:    all,
				Capacity:    capacity,
			})
		},
	}
	cmd.Flags().StringP("changes", "c", "", "Path to a newline-separated list of changed files")
	cmd.Flags().String("git-base", "", "Diff the working tree against this ref to find changed files")
	cmd.Flags().BoolP("all", "a", false, "Select every project regardless of changes")
	cmd.Flags().Int("capacity", 0, "Override the configured stage slot count")
	return cmd
}
