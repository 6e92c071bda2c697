package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/commontags"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>...",
	Short: "Print the canonical tags and audio properties of files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.parseOptions()
		if err != nil {
			return err
		}
		if native, _ := cmd.Flags().GetBool("native"); native {
			opts = append(opts, commontags.WithIncludeNative())
		}
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			opts = append(opts, commontags.WithStrict())
		}

		results, err := commontags.ParseFiles(cmd.Context(), args, opts...)
		if err != nil {
			return err
		}
		if len(results) == 1 {
			return render(cmd.OutOrStdout(), cfg.Output, results[0])
		}
		return render(cmd.OutOrStdout(), cfg.Output, results)
	},
}

var nativeCmd = &cobra.Command{
	Use:   "native <file>",
	Short: "List the native tags of a file and the canonical key each maps to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.parseOptions()
		if err != nil {
			return err
		}
		m, err := activeMapper()
		if err != nil {
			return err
		}

		res, err := commontags.ParseFileContext(cmd.Context(), args[0], append(opts, commontags.WithIncludeNative())...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Output, nativeRows(m, res.Native))
	},
}

type nativeRow struct {
	Vocabulary string `json:"vocabulary" yaml:"vocabulary"`
	Key        string `json:"key" yaml:"key"`
	Canonical  string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Value      string `json:"value" yaml:"value"`
}

func nativeRows(m *commontags.Mapper, tags []commontags.NativeTag) []nativeRow {
	rows := make([]nativeRow, 0, len(tags))
	for _, tag := range tags {
		row := nativeRow{
			Vocabulary: string(tag.Vocabulary),
			Key:        tag.Key,
			Value:      describe(tag.Value),
		}
		if k, ok := m.Resolve(tag.Vocabulary, tag.Key); ok {
			row.Canonical = k.Name()
		}
		rows = append(rows, row)
	}
	return rows
}

func describe(v any) string {
	switch v := v.(type) {
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(v))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func init() {
	dumpCmd.Flags().Bool("native", false, "include the native tag stream")
	dumpCmd.Flags().Bool("strict", false, "fail on tag values that do not fit their key")
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(nativeCmd)
}
