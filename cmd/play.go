package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "test",
	Short: "Start a test session straight away",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}
