package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vocamaster/vocamaster/internal/vocab"
)

// exportEntry is the YAML shape of one exported word.
type exportEntry struct {
	Word        string `yaml:"word"`
	Meaning     string `yaml:"meaning"`
	Explanation string `yaml:"explanation,omitempty"`
	Level       int    `yaml:"level"`
	Experience  int    `yaml:"experience"`
}

type exportDoc struct {
	Words []exportEntry `yaml:"words"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the vocabulary as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		repo, _, err := loadVocabulary(cmd.ErrOrStderr(), cfg.DataFile)
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			return writeExport(cmd.OutOrStdout(), repo)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		if err := writeExportFile(f, repo); err != nil {
			return fmt.Errorf("export %s: %w", output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "exported %d words to %s\n", repo.Len(), output)
		return nil
	},
}

// writeExportFile encodes the repository to wc and closes it, returning the
// close error.
func writeExportFile(wc io.WriteCloser, repo *vocab.Repository) error {
	if err := writeExport(wc, repo); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}

// writeExport encodes the repository in insertion order.
func writeExport(w io.Writer, repo *vocab.Repository) error {
	doc := exportDoc{Words: make([]exportEntry, 0, repo.Len())}
	for _, e := range repo.Entries() {
		doc.Words = append(doc.Words, exportEntry{
			Word:        e.Word(),
			Meaning:     e.Meaning(),
			Explanation: e.Explanation(),
			Level:       e.Level(),
			Experience:  e.Experience(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
