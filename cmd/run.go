package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vocamaster/vocamaster/internal/app"
	"github.com/vocamaster/vocamaster/internal/quiz"
	"github.com/vocamaster/vocamaster/internal/vocab"
	"github.com/vocamaster/vocamaster/internal/vocafile"
)

// runApp loads the vocabulary, opens the history store and launches the
// TUI. Changes still unsaved when the TUI exits are written out.
func runApp(cmd *cobra.Command, startQuiz bool) error {
	out := cmd.OutOrStdout()

	repo, created, err := loadVocabulary(out, cfg.DataFile)
	if err != nil {
		return err
	}

	opts := app.Options{
		Repo:      repo,
		Selector:  quiz.NewSeededSelector(),
		PageSize:  cfg.PageSize,
		StartQuiz: startQuiz,
		FirstRun:  created,
		DataFile:  cfg.DataFile,
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		st, err := openHistory()
		if err != nil {
			slog.Warn("quiz history unavailable", "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), "Quiz history unavailable:", err)
		} else {
			defer st.Close()
			opts.EventRepo = st.EventRepo()
		}
	}

	saved := false
	opts.Save = func() error {
		if err := vocafile.Save(cfg.DataFile, repo); err != nil {
			return err
		}
		slog.Info("vocabulary saved", "path", cfg.DataFile, "words", repo.Len())
		saved = true
		return nil
	}

	if err := app.Run(opts); err != nil {
		return err
	}

	if repo.Dirty() {
		if err := opts.Save(); err != nil {
			return fmt.Errorf("save %s: %w", cfg.DataFile, err)
		}
	}
	reportSave(out, saved)
	return nil
}

// loadVocabulary reads the data file. A corrupt file is fatal.
func loadVocabulary(out io.Writer, path string) (*vocab.Repository, bool, error) {
	repo, created, err := vocafile.Load(path)
	if err != nil {
		return nil, false, fmt.Errorf("read vocabulary: %w", err)
	}
	if created {
		fmt.Fprintln(out, "CREATE NEW DATA FILE")
	} else {
		fmt.Fprintln(out, "DATA FILE LOADING COMPLETE")
	}
	slog.Info("vocabulary loaded", "path", path, "words", repo.Len(), "new", created)
	return repo, created, nil
}

// saveVocabulary writes the data file if it has unsaved changes.
func saveVocabulary(out io.Writer, path string, repo *vocab.Repository) error {
	if !repo.Dirty() {
		reportSave(out, false)
		return nil
	}
	if err := vocafile.Save(path, repo); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	slog.Info("vocabulary saved", "path", path, "words", repo.Len())
	reportSave(out, true)
	return nil
}

func reportSave(out io.Writer, saved bool) {
	if saved {
		fmt.Fprintln(out, "SAVE DATA...")
		return
	}
	fmt.Fprintln(out, "NO SAVE")
}
