package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/commontags"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := commontags.GetVersionInfo()
		if short, _ := cmd.Flags().GetBool("short"); short {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Output, info)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}
