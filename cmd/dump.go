package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the database document as JSON",
		Long:  "Print every epic and story, and the id counter, in the persisted JSON format.",
		Args:  cobra.NoArgs,
		RunE:  runDump,
	}
}

func runDump(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	repo, err := openStore(ctx, configFrom(ctx))
	if err != nil {
		return err
	}
	defer closeStore(repo)

	state, err := repo.ReadDB(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}
