package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every word in the data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("reset deletes every word; rerun with --yes to confirm")
		}

		out := cmd.OutOrStdout()
		repo, _, err := loadVocabulary(out, cfg.DataFile)
		if err != nil {
			return err
		}
		n := repo.Len()
		repo.Clear()
		fmt.Fprintf(out, "cleared %d words\n", n)
		return saveVocabulary(out, cfg.DataFile, repo)
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all words")
}
