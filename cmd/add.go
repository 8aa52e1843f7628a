package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocamaster/vocamaster/internal/vocab"
)

var addCmd = &cobra.Command{
	Use:   "add WORD MEANING [EXPLANATION]",
	Short: "Add a word without opening the menu",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		word, meaning := args[0], args[1]
		var explanation string
		if len(args) == 3 {
			explanation = args[2]
		}
		if err := vocab.ValidateFields(word, meaning, explanation); err != nil {
			return err
		}

		repo, _, err := loadVocabulary(out, cfg.DataFile)
		if err != nil {
			return err
		}
		if err := repo.Add(word, meaning, explanation); err != nil {
			if errors.Is(err, vocab.ErrDuplicateWord) {
				return fmt.Errorf("%q is already registered", word)
			}
			return err
		}
		fmt.Fprintf(out, "added %q (%d words)\n", word, repo.Len())
		return saveVocabulary(out, cfg.DataFile, repo)
	},
}
