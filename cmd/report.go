package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/report"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize epics and stories",
		Long:  "Summarize every epic and its stories as markdown, rendered for the terminal.",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}

	cmd.Flags().Bool("raw", false, "Print the markdown without rendering it")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	raw, _ := cmd.Flags().GetBool("raw")

	repo, err := openStore(ctx, configFrom(ctx))
	if err != nil {
		return err
	}
	defer closeStore(repo)

	state, err := repo.ReadDB(ctx)
	if err != nil {
		return err
	}

	markdown := report.Build(state)
	if !raw {
		markdown = report.Render(markdown, report.TermWidth())
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), markdown)
	return err
}
