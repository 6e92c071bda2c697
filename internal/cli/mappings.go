package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/simonhull/commontags"
	"github.com/simonhull/commontags/internal/types"
)

type mappingRow struct {
	Native string `json:"native" yaml:"native"`
	Key    string `json:"key" yaml:"key"`
}

func mappingRows(m *commontags.Mapper, name string) ([]mappingRow, error) {
	vocab, err := types.ParseVocabulary(name)
	if err != nil {
		return nil, err
	}
	table := m.TagMap(vocab)
	if table == nil {
		return nil, fmt.Errorf("no tag map for vocabulary %q", name)
	}

	rows := make([]mappingRow, 0, len(table))
	for native, k := range table {
		rows = append(rows, mappingRow{Native: native, Key: k.Name()})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Native < rows[j].Native })
	return rows, nil
}

// activeMapper returns the mapper built from the configured overrides.
func activeMapper() (*commontags.Mapper, error) {
	m, err := cfg.mapper()
	if err != nil || m != nil {
		return m, err
	}
	return commontags.DefaultMapper(), nil
}

var mappingsCmd = &cobra.Command{
	Use:   "mappings [vocabulary]",
	Short: "Show the native-to-canonical tag map of a vocabulary",
	Long: `Show the native-to-canonical tag map of a vocabulary, including any
mappings added or removed in the configuration file. Without an argument the
known vocabularies are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := activeMapper()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			var names []string
			for _, v := range m.Vocabularies() {
				names = append(names, string(v))
			}
			return render(cmd.OutOrStdout(), cfg.Output, names)
		}
		rows, err := mappingRows(m, args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Output, rows)
	},
}

func init() {
	rootCmd.AddCommand(mappingsCmd)
}
