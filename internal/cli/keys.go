package cli

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/simonhull/commontags/internal/schema"
)

type keyRow struct {
	Name     string `json:"name" yaml:"name"`
	Multiple bool   `json:"multiple" yaml:"multiple"`
	Shape    string `json:"shape" yaml:"shape"`
}

// keyRows lists the canonical keys. A non-empty query keeps the keys that
// fuzzily match it, best match first.
func keyRows(query string) []keyRow {
	keys := schema.AllKeys()
	if query != "" {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.Name()
		}
		ranks := fuzzy.RankFindNormalizedFold(query, names)
		sort.Sort(ranks)

		keys = keys[:0:0]
		for _, r := range ranks {
			if k, ok := schema.Lookup(r.Target); ok {
				keys = append(keys, k)
			}
		}
	}

	rows := make([]keyRow, len(keys))
	for i, k := range keys {
		_, list := k.(schema.ListKey)
		rows[i] = keyRow{Name: k.Name(), Multiple: list, Shape: schema.ShapeOf(k).String()}
	}
	return rows
}

var keysCmd = &cobra.Command{
	Use:   "keys [query]",
	Short: "List canonical keys, optionally filtered by a fuzzy query",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		}
		return render(cmd.OutOrStdout(), cfg.Output, keyRows(query))
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
