package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocamaster/vocamaster/internal/store"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level distribution and recent test sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		limit, _ := cmd.Flags().GetInt("sessions")

		repo, _, err := loadVocabulary(out, cfg.DataFile)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%d words\n", repo.Len())
		counts := repo.LevelCounts()
		for lvl := vocab.MinLevel; lvl <= vocab.MaxLevel; lvl++ {
			fmt.Fprintf(out, "  Lv %d  %4d  %s\n", lvl, counts[lvl], strings.Repeat("■", counts[lvl]*40/max(repo.Len(), 1)))
		}

		st, err := openHistory()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.EventRepo().QuerySessionSummaries(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		fmt.Fprintln(out)
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No test sessions yet.")
			return nil
		}
		fmt.Fprintf(out, "%-17s  %6s  %5s  %7s  %5s\n", "Finished", "Length", "Total", "Correct", "Rate")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		var total, correct int
		for _, s := range sessions {
			secs := int(s.EndedAt.Sub(s.StartedAt).Seconds())
			rate := 0
			if s.Total > 0 {
				rate = s.Correct * 100 / s.Total
			}
			fmt.Fprintf(out, "%-17s  %3d:%02d  %5d  %7d  %4d%%\n",
				s.EndedAt.Local().Format("2006-01-02 15:04"), secs/60, secs%60, s.Total, s.Correct, rate)
			total += s.Total
			correct += s.Correct
		}
		if total > 0 {
			fmt.Fprintf(out, "\n%d sessions, %d questions, %d%% correct\n", len(sessions), total, correct*100/total)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to show (0 = all)")
}
