package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vocamaster/vocamaster/internal/config"
	"github.com/vocamaster/vocamaster/internal/logger"
	"github.com/vocamaster/vocamaster/internal/store"
)

var (
	cfg      *config.Config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "vocamaster",
	Short: "Vocabulary flashcards in the terminal",
	Long: "VocaMaster: terminal flashcards that quiz you on the words you know least.\n\n" +
		"Run without a subcommand to open the menu (ADD / LIST / TEST / EXIT).",
	SilenceUsage: true,
	RunE:         func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	defer func() { _ = closeLog() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentPreRunE = setup

	rootCmd.PersistentFlags().String("file", "", "Path to the vocabulary data file (default voca.dat)")
	rootCmd.PersistentFlags().String("db", "", "Path to the quiz history database")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("no-history", false, "Do not record quiz history")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies flag overrides and installs the
// logger. While the TUI owns the terminal, logs without a log file are
// discarded.
func setup(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd {
		return nil
	}

	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("file"); v != "" {
		c.DataFile = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		c.HistoryDB = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		c.LogLevel = v
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	fallback := cmd.ErrOrStderr()
	if cmd == rootCmd || cmd == playCmd {
		fallback = io.Discard
	}
	_, closer, err := logger.Setup(cfg.LogLevel, cfg.LogFile, fallback)
	if err != nil {
		return err
	}
	closeLog = closer
	return nil
}

// resolveDBPath returns the history database path from config or flag,
// then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.HistoryDB != "" {
		return cfg.HistoryDB, store.EnsureDir(cfg.HistoryDB)
	}
	return store.DefaultDBPath()
}

// openHistory opens the quiz history store.
func openHistory() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
