package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocamaster/vocamaster/internal/vocab"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the vocabulary (optionally one page of it)",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		page, _ := cmd.Flags().GetInt("page")

		repo, _, err := loadVocabulary(out, cfg.DataFile)
		if err != nil {
			return err
		}

		first := 0
		var entries []*vocab.Entry
		if page > 0 {
			entries, err = repo.Page(page-1, cfg.PageSize)
			first = (page - 1) * cfg.PageSize
		} else {
			entries, err = repo.Page(0, max(repo.Len(), 1))
		}
		switch {
		case errors.Is(err, vocab.ErrEmptyRepository):
			fmt.Fprintln(out, "empty list")
			return nil
		case errors.Is(err, vocab.ErrIndexOutOfRange):
			return fmt.Errorf("page %d does not exist (%d pages)", page, repo.PageCount(cfg.PageSize))
		case err != nil:
			return err
		}

		fmt.Fprintf(out, "%4s  %-20s  %-24s  %2s  %3s  %s\n",
			"#", "Word", "Meaning", "Lv", "Exp", "Explanation")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for i, e := range entries {
			fmt.Fprintf(out, "%4d  %-20s  %-24s  %2d  %3d  %s\n",
				first+i+1, truncate(e.Word(), 20), truncate(e.Meaning(), 24),
				e.Level(), e.Experience(), e.Explanation())
		}

		if page > 0 {
			fmt.Fprintf(out, "\npage %d / %d, %d words\n", page, repo.PageCount(cfg.PageSize), repo.Len())
		} else {
			fmt.Fprintf(out, "\n%d words\n", repo.Len())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Int("page", 0, "Print only this page (1-based, page_size entries each)")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
